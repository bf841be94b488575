package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"taskify/models"

	"github.com/redis/go-redis/v9"
)

// OpenRedisPool initializes a Redis connection pool
func OpenRedisPool(dsn string) *redis.Client {
	opt, err := redis.ParseURL(dsn)
	if err != nil {
		log.Fatalf("Failed to parse Redis DSN: %v", err)
	}

	opt.PoolSize = 100
	opt.MinIdleConns = 2
	opt.DialTimeout = 5 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err = client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to ping redis db 0: %v", err)
	}

	return client
}

// StoreSession saves a session in Redis
func StoreSession(client *redis.Client, session models.Session, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sessionMap := map[string]any{
		"user_id":       session.UserID,
		"created_at":    session.CreatedAt,
		"expires_at":    session.ExpiresAt,
		"last_activity": session.LastActivity,
		"csrf_token":    session.CSRFToken,
		"user_agent":    session.UserAgent,
		"ip_address":    session.IPAddress,
	}

	key := "session:" + session.SessionToken
	if err := client.HSet(ctx, key, sessionMap).Err(); err != nil {
		return err
	}

	if err := client.Expire(ctx, key, ttl).Err(); err != nil {
		return err
	}

	// Add to the user's session index
	return client.SAdd(ctx, "user_sessions:"+session.UserID, key).Err()
}

// DeleteSession removes a single session and its reference in the user index
func DeleteSession(client *redis.Client, sessionToken string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	userID, err := client.HGet(ctx, "session:"+sessionToken, "user_id").Result()
	if err != nil {
		return err
	}

	if err := client.SRem(ctx, "user_sessions:"+userID, "session:"+sessionToken).Err(); err != nil {
		return err
	}

	return client.Del(ctx, "session:"+sessionToken).Err()
}

// UpdateLastActivityRedis updates the last activity timestamp of a session
func UpdateLastActivityRedis(client *redis.Client, sessionToken string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return client.HSet(ctx, "session:"+sessionToken, "last_activity", time.Now().Format(time.RFC3339)).Err()
}

// ValidateSession checks if a session exists and is not expired
func ValidateSession(client *redis.Client, sessionToken string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := "session:" + sessionToken

	exists, err := client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if exists == 0 {
		return false, nil
	}

	data, err := client.HGetAll(ctx, key).Result()
	if err != nil {
		return false, err
	}

	expiresAt, err := time.Parse(time.RFC3339, data["expires_at"])
	if err != nil {
		return false, err
	}

	return time.Now().Before(expiresAt), nil
}

// DeleteAllUserSessions removes all sessions associated with a specific user
func DeleteAllUserSessions(client *redis.Client, userID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sessionKeys, err := client.SMembers(ctx, "user_sessions:"+userID).Result()
	if err != nil {
		return err
	}

	if len(sessionKeys) > 0 {
		if err := client.Del(ctx, sessionKeys...).Err(); err != nil {
			return err
		}
	}

	return client.Del(ctx, "user_sessions:"+userID).Err()
}

func GetCSRFFromST(client *redis.Client, sessionToken string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	csrfToken, err := client.HGet(ctx, "session:"+sessionToken, "csrf_token").Result()
	if err != nil {
		return "", fmt.Errorf("unable to retrieve csrf token from ST: %w", err)
	}

	return csrfToken, nil
}

func GetUserIDFromST(client *redis.Client, sessionToken string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	uID, err := client.HGet(ctx, "session:"+sessionToken, "user_id").Result()
	if err != nil {
		return "", err
	}

	return uID, nil
}
