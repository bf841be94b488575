package utils_test

import (
	"taskify/utils"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCheckPasswordHash(t *testing.T) {
	password := "SecurePass123!"

	// Generate a hash for testing
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to generate password hash: %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{
			name:     "Valid password should match hash",
			password: password,
			hash:     string(hash),
			want:     true,
		},
		{
			name:     "Invalid password should not match hash",
			password: "WrongPassword123!",
			hash:     string(hash),
			want:     false,
		},
		{
			name:     "Empty password should not match hash",
			password: "",
			hash:     string(hash),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utils.CheckPasswordHash(tt.password, tt.hash); got != tt.want {
				t.Errorf("CheckPasswordHash() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{
			name:  "Valid email should pass validation",
			email: "user@example.com",
			want:  true,
		},
		{
			name:  "Valid email with subdomain should pass validation",
			email: "user@subdomain.example.com",
			want:  true,
		},
		{
			name:  "Email without @ should fail validation",
			email: "userexample.com",
			want:  false,
		},
		{
			name:  "Empty email should fail validation",
			email: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidateEmail(tt.email)
			if (err == nil) != tt.want {
				t.Errorf("ValidateEmail(%q) error = %v, want valid %v", tt.email, err, tt.want)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{
			name:     "Strong password passes",
			password: "SecurePass123!",
			want:     true,
		},
		{
			name:     "Too short",
			password: "Ab1!",
			want:     false,
		},
		{
			name:     "Missing uppercase",
			password: "securepass123!",
			want:     false,
		},
		{
			name:     "Missing digit",
			password: "SecurePass!",
			want:     false,
		},
		{
			name:     "Missing special character",
			password: "SecurePass123",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidatePassword(tt.password)
			if (err == nil) != tt.want {
				t.Errorf("ValidatePassword(%q) error = %v, want valid %v", tt.password, err, tt.want)
			}
		})
	}
}

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name        string
		projectName string
		want        bool
	}{
		{
			name:        "Plain name passes",
			projectName: "Website redesign",
			want:        true,
		},
		{
			name:        "Empty name rejected",
			projectName: "",
			want:        false,
		},
		{
			name:        "Whitespace-only name rejected",
			projectName: "   ",
			want:        false,
		},
		{
			name:        "Markup characters rejected",
			projectName: "<script>",
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidateProjectName(tt.projectName)
			if (err == nil) != tt.want {
				t.Errorf("ValidateProjectName(%q) error = %v, want valid %v", tt.projectName, err, tt.want)
			}
		})
	}
}

func TestValidateCommentText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "Plain comment passes",
			text: "looks good",
			want: true,
		},
		{
			name: "Empty comment rejected",
			text: "",
			want: false,
		},
		{
			name: "Whitespace-only comment rejected",
			text: " \t\n ",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidateCommentText(tt.text)
			if (err == nil) != tt.want {
				t.Errorf("ValidateCommentText(%q) error = %v, want valid %v", tt.text, err, tt.want)
			}
		})
	}
}

func TestCanonicalDueDate(t *testing.T) {
	tests := []struct {
		name    string
		dueDate string
		want    string
		wantErr bool
	}{
		{
			name:    "ISO date passes through",
			dueDate: "2024-10-29",
			want:    "2024-10-29",
		},
		{
			name:    "Locale date is converted",
			dueDate: "29.10.2024",
			want:    "2024-10-29",
		},
		{
			name:    "Surrounding whitespace is trimmed",
			dueDate: " 2024-10-29 ",
			want:    "2024-10-29",
		},
		{
			name:    "Empty date rejected",
			dueDate: "",
			wantErr: true,
		},
		{
			name:    "Nonsense rejected",
			dueDate: "next tuesday",
			wantErr: true,
		},
		{
			name:    "Impossible day rejected",
			dueDate: "32.01.2024",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.CanonicalDueDate(tt.dueDate)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CanonicalDueDate(%q) error = %v, wantErr %v", tt.dueDate, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("CanonicalDueDate(%q) = %q, want %q", tt.dueDate, got, tt.want)
			}
		})
	}
}

func TestSamePassword(t *testing.T) {
	if !utils.SamePassword("abc", "abc") {
		t.Error("SamePassword() = false for identical passwords, want true")
	}
	if utils.SamePassword("abc", "abd") {
		t.Error("SamePassword() = true for different passwords, want false")
	}
}
