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

var ErrTaskNotFound = errors.New("task not found")

// BucketTasks partitions tasks into the three board columns. Stored statuses
// are normalized first, so a task never drops off the board because of casing
// or stray spaces.
func BucketTasks(tasks []models.Task) models.Board {
	board := models.Board{
		ToDo:  []models.Task{},
		Doing: []models.Task{},
		Done:  []models.Task{},
	}
	for _, task := range tasks {
		task.Status = models.NormalizeStatus(string(task.Status))
		switch task.Status {
		case models.StatusToDo:
			board.ToDo = append(board.ToDo, task)
		case models.StatusDoing:
			board.Doing = append(board.Doing, task)
		case models.StatusDone:
			board.Done = append(board.Done, task)
		}
	}
	return board
}

// GetBoard fetches the project's tasks and buckets them by status.
func GetBoard(projectID string, db *pgxpool.Pool) (models.Board, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "SELECT id, project_id, project_name, title, status, due_date, created_by, comment_count FROM tasks WHERE project_id = $1"
	rows, err := db.Query(ctx, stmt, projectID)
	if err != nil {
		log.Println("Error querying tasks:", err)
		return models.Board{}, errors.New("error querying tasks")
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		t := models.Task{}
		err := rows.Scan(&t.ID, &t.ProjectID, &t.ProjectName, &t.Title, &t.Status, &t.DueDate, &t.CreatedBy, &t.CommentCount)
		if err != nil {
			log.Println("Error scanning task row:", err)
			return models.Board{}, errors.New("error processing tasks")
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		log.Println("Error after scanning all rows:", err)
		return models.Board{}, errors.New("error processing tasks")
	}

	return BucketTasks(tasks), nil
}

func GetTask(taskID string, db *pgxpool.Pool) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "SELECT id, project_id, project_name, title, status, due_date, created_by, comment_count FROM tasks WHERE id = $1;"
	t := models.Task{}
	row := db.QueryRow(ctx, stmt, taskID)
	err := row.Scan(&t.ID, &t.ProjectID, &t.ProjectName, &t.Title, &t.Status, &t.DueDate, &t.CreatedBy, &t.CommentCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("error loading task: %w", err)
	}
	t.Status = models.NormalizeStatus(string(t.Status))
	return &t, nil
}

// CreateTask inserts a task into the project with default status To Do.
// dueDate must already be canonical (see CanonicalDueDate).
func CreateTask(userID string, project *models.Project, title, dueDate string, db *pgxpool.Pool) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t := models.Task{
		ID:          uuid.New().String(),
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Title:       title,
		Status:      models.StatusToDo,
		DueDate:     dueDate,
		CreatedBy:   userID,
	}

	stmt := "INSERT INTO tasks (id, project_id, project_name, title, status, due_date, created_by) VALUES ($1, $2, $3, $4, $5, $6, $7);"
	_, err := db.Exec(ctx, stmt, t.ID, t.ProjectID, t.ProjectName, t.Title, string(t.Status), t.DueDate, t.CreatedBy)
	if err != nil {
		log.Println("Error inserting task:", err)
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	return &t, nil
}

// MoveTask updates a task's status. Any column to any column is allowed.
func MoveTask(taskID string, status models.Status, db *pgxpool.Pool) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var projectID string
	err := db.QueryRow(ctx, "UPDATE tasks SET status = $1 WHERE id = $2 RETURNING project_id", string(status), taskID).Scan(&projectID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", ErrTaskNotFound
		}
		return "", err
	}
	return projectID, nil
}

// DeleteTask removes the task and its comments in one transaction, so a
// failure part-way leaves both in place rather than stranding orphans.
func DeleteTask(taskID string, db *pgxpool.Pool) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, "DELETE FROM comments WHERE task_id = $1;", taskID)
	if err != nil {
		log.Println("Failed to delete task comments:", err)
		return "", err
	}

	var projectID string
	err = tx.QueryRow(ctx, "DELETE FROM tasks WHERE id = $1 RETURNING project_id;", taskID).Scan(&projectID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", ErrTaskNotFound
		}
		log.Println("Failed to delete task:", err)
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to delete task: %w", err)
	}
	return projectID, nil
}
