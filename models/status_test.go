package models_test

import (
	"taskify/models"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.Status
		wantErr bool
	}{
		{
			name:  "Exact column name",
			input: "To Do",
			want:  models.StatusToDo,
		},
		{
			name:  "Lowercase",
			input: "doing",
			want:  models.StatusDoing,
		},
		{
			name:  "Uppercase with trailing space",
			input: "DONE ",
			want:  models.StatusDone,
		},
		{
			name:  "No space variant",
			input: "ToDo",
			want:  models.StatusToDo,
		},
		{
			name:  "Surrounding whitespace",
			input: "  to do  ",
			want:  models.StatusToDo,
		},
		{
			name:    "Unknown status",
			input:   "Blocked",
			wantErr: true,
		},
		{
			name:    "Empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := models.ParseStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.Status
	}{
		{
			name:  "Recognized status passes through",
			input: "Done",
			want:  models.StatusDone,
		},
		{
			name:  "Case and spacing folded",
			input: " TO DO ",
			want:  models.StatusToDo,
		},
		{
			name:  "Unknown status folds into To Do",
			input: "In Review",
			want:  models.StatusToDo,
		},
		{
			name:  "Empty status folds into To Do",
			input: "",
			want:  models.StatusToDo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := models.NormalizeStatus(tt.input); got != tt.want {
				t.Errorf("NormalizeStatus(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	statuses := []models.Status{models.StatusToDo, models.StatusDoing, models.StatusDone}

	// Flat state model: every pair is allowed, including backwards moves
	for _, from := range statuses {
		for _, to := range statuses {
			if !models.CanTransition(from, to) {
				t.Errorf("CanTransition(%v, %v) = false, want true", from, to)
			}
		}
	}
}
