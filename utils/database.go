package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskify/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func OpenDB(dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		fmt.Printf("Error parsing DSN: %v\n", err)
		return nil, err
	}

	config.MaxConns = 50
	config.MaxConnIdleTime = 20 * time.Second
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		fmt.Printf("Unable to create connection pool: %v\n", err)
		return nil, err
	}

	// Test the connection
	err = pool.Ping(context.Background())
	if err != nil {
		return nil, err
	}

	return pool, nil
}

func EmailInUse(email string, db *pgxpool.Pool) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)"

	var exists bool
	err := db.QueryRow(ctx, stmt, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("database error checking email: %w", err)
	}

	return exists, nil
}

func UsernameInUse(username string, db *pgxpool.Pool) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)"

	var exists bool
	err := db.QueryRow(ctx, stmt, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("database error checking username: %w", err)
	}

	return exists, nil
}

// GetUser loads a user's profile. The password hash stays out of the result.
func GetUser(userID string, db *pgxpool.Pool) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "SELECT id, first_name, last_name, username, email, projects FROM users WHERE id = $1;"

	u := models.User{}
	row := db.QueryRow(ctx, stmt, userID)
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.Email, &u.Projects)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errors.New("no user found")
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	return &u, nil
}

// UpdateProfile overwrites the editable profile fields (names, username,
// email). Project membership and credentials have their own paths.
func UpdateProfile(userID string, firstName, lastName, username, email string, db *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "UPDATE users SET first_name = $1, last_name = $2, username = $3, email = $4 WHERE id = $5;"
	_, err := db.Exec(ctx, stmt, firstName, lastName, username, email, userID)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	return nil
}

func UpdateLastActivityDB(db *pgxpool.Pool, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "UPDATE users SET last_activity = NOW() WHERE id = $1"
	_, err := db.Exec(ctx, stmt, userID)
	if err != nil {
		return fmt.Errorf("error updating last activity: %w", err)
	}

	return nil
}
