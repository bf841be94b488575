package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"taskify/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrCommentNotFound = errors.New("comment not found")

// FetchComments is a one-shot read of a task's comment thread, oldest first.
// It also re-persists the task's comment_count from the real collection
// size; the stored count is a display denormalization that drifts between
// fetches, never a hard guarantee.
func FetchComments(taskID string, db *pgxpool.Pool) ([]models.Comment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "SELECT id, task_id, user_id, text, created_at FROM comments WHERE task_id = $1 ORDER BY created_at ASC"
	rows, err := db.Query(ctx, stmt, taskID)
	if err != nil {
		log.Println("Error querying comments:", err)
		return nil, errors.New("error querying comments")
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		c := models.Comment{}
		err := rows.Scan(&c.ID, &c.TaskID, &c.UserID, &c.Text, &c.CreatedAt)
		if err != nil {
			log.Println("Error scanning comment row:", err)
			return nil, errors.New("error processing comments")
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		log.Println("Error after scanning all rows:", err)
		return nil, errors.New("error processing comments")
	}

	// Re-sync the denormalized count on every fetch
	_, err = db.Exec(ctx, "UPDATE tasks SET comment_count = $1 WHERE id = $2;", len(comments), taskID)
	if err != nil {
		log.Println("Error updating comment count:", err)
	}

	return comments, nil
}

// GetComment loads a single comment, resolving its owning task.
func GetComment(commentID string, db *pgxpool.Pool) (*models.Comment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "SELECT id, task_id, user_id, text, created_at FROM comments WHERE id = $1;"
	c := models.Comment{}
	row := db.QueryRow(ctx, stmt, commentID)
	err := row.Scan(&c.ID, &c.TaskID, &c.UserID, &c.Text, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("error loading comment: %w", err)
	}
	return &c, nil
}

// AddComment appends a comment to the task's thread. The caller re-fetches
// to refresh the list and count; there is no optimistic update.
func AddComment(userID, taskID, text string, db *pgxpool.Pool) (*models.Comment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := models.Comment{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	stmt := "INSERT INTO comments (id, task_id, user_id, text, created_at) VALUES ($1, $2, $3, $4, $5);"
	_, err := db.Exec(ctx, stmt, c.ID, c.TaskID, c.UserID, c.Text, c.CreatedAt)
	if err != nil {
		log.Println("Error inserting comment:", err)
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	return &c, nil
}

// DeleteComment removes a single comment and returns its task id so the
// caller can trigger a re-fetch.
func DeleteComment(commentID string, db *pgxpool.Pool) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var taskID string
	err := db.QueryRow(ctx, "DELETE FROM comments WHERE id = $1 RETURNING task_id;", commentID).Scan(&taskID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", ErrCommentNotFound
		}
		log.Println("Failed to delete comment:", err)
		return "", err
	}
	return taskID, nil
}
