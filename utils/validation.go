package utils

import (
	"errors"
	"fmt"
	netmail "net/mail"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func ValidateEmail(email string) error {
	_, err := netmail.ParseAddress(email)

	return err
}

func ValidatePassword(password string) error {
	// Ensure password length is at least 8 characters
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	// Regex patterns for validation
	uppercase := regexp.MustCompile(`[A-Z]`)
	lowercase := regexp.MustCompile(`[a-z]`)
	digit := regexp.MustCompile(`\d`)
	specialChar := regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)

	// Check if password meets all conditions
	if !uppercase.MatchString(password) {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !lowercase.MatchString(password) {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !digit.MatchString(password) {
		return fmt.Errorf("password must contain at least one digit")
	}
	if !specialChar.MatchString(password) {
		return fmt.Errorf("password must contain at least one special character")
	}

	return nil
}

func ValidateTaskTitle(title string) error {
	if len(title) == 0 || len(title) > 255 {
		return errors.New("title must be between 1 and 255 characters")
	}
	if strings.ContainsAny(title, "<>\"'") {
		return errors.New("title contains invalid characters")
	}
	return nil
}

func ValidateProjectName(name string) error {
	if len(strings.TrimSpace(name)) == 0 || len(name) > 255 {
		return errors.New("project name must be between 1 and 255 characters")
	}
	if strings.ContainsAny(name, "<>\"'") {
		return errors.New("project name contains invalid characters")
	}
	return nil
}

func ValidateCommentText(text string) error {
	if len(strings.TrimSpace(text)) == 0 {
		return errors.New("comment cannot be empty")
	}
	if len(text) > 2000 {
		return errors.New("comment must be at most 2000 characters")
	}
	return nil
}

// CanonicalDueDate converts a due date to the canonical YYYY-MM-DD form.
// Both formats seen from clients are accepted: ISO 2024-10-29 and the
// locale form 29.10.2024. Everything else is rejected at the write boundary
// so reads never have to guess.
func CanonicalDueDate(dueDate string) (string, error) {
	dueDate = strings.TrimSpace(dueDate)
	if dueDate == "" {
		return "", errors.New("due date is required")
	}

	if t, err := time.Parse("2006-01-02", dueDate); err == nil {
		return t.Format("2006-01-02"), nil
	}
	if t, err := time.Parse("02.01.2006", dueDate); err == nil {
		return t.Format("2006-01-02"), nil
	}

	return "", fmt.Errorf("due date %q is not a valid date", dueDate)
}

func SamePassword(password string, confirmedPassword string) bool {
	return password == confirmedPassword
}
