package utils

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"taskify/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"golang.org/x/crypto/bcrypt"
)

// Authorize validates the request's session cookie against redis and checks
// the CSRF header. Returns the user id on success.
func Authorize(r *http.Request, client *redis.Client) (string, error) {
	st, err := r.Cookie("session_token")
	if err != nil || st.Value == "" {
		return "", errors.New("unauthorized: missing or empty session token")
	}
	exists, err := ValidateSession(client, st.Value)
	if err != nil {
		return "", errors.New("error: invalid session token")
	}
	if !exists {
		return "", errors.New("unauthorized: session token does not exist")
	}

	csrf := r.Header.Get("X-CSRF-Token")
	expectedCSRF, err := GetCSRFFromST(client, st.Value)
	if err != nil {
		return "", errors.New("unauthorized: could not fetch csrf token")
	}
	if csrf == "" || expectedCSRF == "" || csrf != expectedCSRF {
		return "", errors.New("unauthorized: invalid CSRF token")
	}

	userID, err := GetUserIDFromST(client, st.Value)
	if err != nil {
		return "", errors.New("unauthorized: could not resolve user")
	}
	return userID, nil
}

// RegisterUser provisions a user record with an empty project list.
func RegisterUser(email, password, firstName, lastName, username string, db *pgxpool.Pool) (string, error) {
	passwordHash, err := HashPassword(password)
	if err != nil {
		log.Println("error hashing password", err)
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userID := uuid.New().String()
	stmt := "INSERT INTO users (id, first_name, last_name, username, email, password_hash, projects) VALUES ($1, $2, $3, $4, $5, $6, '{}');"
	_, err = db.Exec(ctx, stmt, userID, firstName, lastName, username, email, passwordHash)
	if err != nil {
		log.Println("Error adding user:", err)
		return "", err
	}

	return userID, nil
}

// LoginUser checks credentials, then issues session and CSRF tokens as
// cookies and stores the session in redis for 24 hours.
func LoginUser(w http.ResponseWriter, r *http.Request, email string, password string, db *pgxpool.Pool, client *redis.Client) (string, error) {
	log.Printf("Login attempt for email: %s", email)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stmt := "SELECT id, password_hash FROM users WHERE email = $1;"
	row := db.QueryRow(ctx, stmt, email)
	var (
		userID string
		hash   string
	)
	if err := row.Scan(&userID, &hash); err != nil {
		log.Printf("User lookup failed: %v", err)
		return "", fmt.Errorf("invalid credentials")
	}

	if !CheckPasswordHash(password, hash) {
		log.Printf("Password verification failed for user: %s", email)
		return "", fmt.Errorf("invalid credentials")
	}

	sessionToken := GenerateToken(32)
	csrfToken := GenerateToken(32)

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    sessionToken,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   3600 * 24, // 24 hours
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "csrf_token",
		Value:    csrfToken,
		HttpOnly: false, // the client echoes this in X-CSRF-Token
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   3600 * 24,
	})

	session := models.Session{
		SessionToken: sessionToken,
		UserID:       userID,
		CreatedAt:    time.Now().Format(time.RFC3339),
		ExpiresAt:    time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		LastActivity: time.Now().Format(time.RFC3339),
		CSRFToken:    csrfToken,
		UserAgent:    GetUserAgent(r),
		IPAddress:    GetIP(r),
	}

	err := StoreSession(client, session, 24*time.Hour)
	if err != nil {
		log.Printf("Failed to store session: %v", err)
		return "", fmt.Errorf("login failed: %w", err)
	}

	log.Printf("Login successful for user: %s", email)
	return userID, nil
}

func GenerateToken(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

func GenerateOTP() string {
	return GenerateToken(32)
}

func SetOTP(email string, otp string, db *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stmt := "UPDATE users SET one_time_password = $1 WHERE email = $2 RETURNING id;"

	var updatedID string
	err := db.QueryRow(ctx, stmt, otp, email).Scan(&updatedID)
	if err != nil {
		log.Printf("failed to set otp: %s", err)
		return errors.New("unable to set otp")
	}

	return nil
}

func SendOTP(email string, otp string) error {
	from := mail.NewEmail("Taskify Support", "donotreply@taskify.app")
	subject := "Password Reset Code"

	to := mail.NewEmail("", email)

	plainTextContent := fmt.Sprintf("Your password reset code is: %s", otp)
	htmlContent := fmt.Sprintf("<strong>Your password reset code is: %s</strong>", otp)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	log.Println("OTP email sent, status:", response.StatusCode)
	return nil
}

// CheckOTP compares the submitted code with the stored one and consumes it
// on a match.
func CheckOTP(code string, email string, db *pgxpool.Pool) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var otp *string

	stmt := "SELECT one_time_password FROM users WHERE email = $1;"
	row := db.QueryRow(ctx, stmt, email)
	err := row.Scan(&otp)
	if err != nil {
		log.Printf("error getting otp from database: \nuser: %s \nerror: %s", email, err)
		return false, errors.New("unable to retrieve otp")
	}

	if otp == nil {
		log.Printf("no OTP found for user: %s", email)
		return false, errors.New("otp is null")
	}

	if code == *otp {
		stmt := "UPDATE users SET one_time_password = NULL WHERE email = $1 RETURNING email;"

		var updatedEmail string
		err := db.QueryRow(ctx, stmt, email).Scan(&updatedEmail)
		if err != nil {
			log.Printf("failed to clear otp for user: %s", email)
			return false, errors.New("unable to clear otp")
		}
	}

	return code == *otp, nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

// ChangePassword rehashes the credential and returns the affected user's id
// so the caller can revoke that user's sessions.
func ChangePassword(email string, password string, db *pgxpool.Pool) (string, error) {
	passwordHash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stmt := "UPDATE users SET password_hash = $1 WHERE email = $2 RETURNING id;"

	var updatedID string
	err = db.QueryRow(ctx, stmt, passwordHash, email).Scan(&updatedID)
	if err != nil {
		log.Printf("failed to update user password for user: %s", email)
		return "", errors.New("unable to update user password")
	}

	return updatedID, nil
}
