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

var (
	// ErrAlreadyMember signals an idempotent join: the member list is
	// unchanged and the caller should show an informational message.
	ErrAlreadyMember = errors.New("already a member of this project")

	ErrProjectNotFound = errors.New("project not found")

	// ErrNotOwner rejects destructive project operations from non-owners.
	ErrNotOwner = errors.New("only the project owner may do that")
)

// GetProjects returns every project whose member list contains the user.
func GetProjects(userID string, db *pgxpool.Pool) ([]models.Project, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "SELECT id, project_name, description, owner_id, members FROM projects WHERE $1 = ANY(members)"
	rows, err := db.Query(ctx, stmt, userID)
	if err != nil {
		log.Println("Error querying projects:", err)
		return nil, errors.New("error querying projects")
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p := models.Project{}
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.OwnerID, &p.Members)
		if err != nil {
			log.Println("Error scanning project row:", err)
			return nil, errors.New("error processing projects")
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		log.Println("Error after scanning all rows:", err)
		return nil, errors.New("error processing projects")
	}

	return projects, nil
}

func GetProject(projectID string, db *pgxpool.Pool) (*models.Project, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "SELECT id, project_name, description, owner_id, members FROM projects WHERE id = $1;"
	p := models.Project{}
	row := db.QueryRow(ctx, stmt, projectID)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.OwnerID, &p.Members)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("error loading project: %w", err)
	}
	return &p, nil
}

// CreateProject inserts a project owned by the creator, with the creator as
// sole member, and mirrors the membership onto the user's project list.
func CreateProject(userID, name, description string, db *pgxpool.Pool) (*models.Project, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p := models.Project{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		OwnerID:     userID,
		Members:     []string{userID},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	stmt := "INSERT INTO projects (id, project_name, description, owner_id, members) VALUES ($1, $2, $3, $4, $5);"
	_, err = tx.Exec(ctx, stmt, p.ID, p.Name, p.Description, p.OwnerID, p.Members)
	if err != nil {
		log.Println("Error inserting project:", err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	stmt = "UPDATE users SET projects = array_append(projects, $1) WHERE id = $2;"
	_, err = tx.Exec(ctx, stmt, p.ID, userID)
	if err != nil {
		log.Println("Error linking project to user:", err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &p, nil
}

// JoinProject appends the user to the project's member list and the project
// to the user's project list in one transaction, so the two links never
// diverge. Joining a project the user already belongs to returns
// ErrAlreadyMember and changes nothing.
func JoinProject(userID, projectID string, db *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var members []string
	row := tx.QueryRow(ctx, "SELECT members FROM projects WHERE id = $1 FOR UPDATE;", projectID)
	if err := row.Scan(&members); err != nil {
		if err == pgx.ErrNoRows {
			return ErrProjectNotFound
		}
		return fmt.Errorf("error loading project members: %w", err)
	}

	for _, m := range members {
		if m == userID {
			return ErrAlreadyMember
		}
	}

	_, err = tx.Exec(ctx, "UPDATE projects SET members = array_append(members, $1) WHERE id = $2;", userID, projectID)
	if err != nil {
		log.Println("Error appending member:", err)
		return fmt.Errorf("failed to join project: %w", err)
	}

	_, err = tx.Exec(ctx, "UPDATE users SET projects = array_append(projects, $1) WHERE id = $2;", projectID, userID)
	if err != nil {
		log.Println("Error appending project to user:", err)
		return fmt.Errorf("failed to join project: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to join project: %w", err)
	}
	return nil
}

// DeleteProject removes the project and everything under it: comments of the
// project's tasks, the tasks, the member back-links, then the project row.
// Owner only.
func DeleteProject(userID, projectID string, db *pgxpool.Pool) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var ownerID string
	var members []string
	row := tx.QueryRow(ctx, "SELECT owner_id, members FROM projects WHERE id = $1 FOR UPDATE;", projectID)
	if err := row.Scan(&ownerID, &members); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("error loading project: %w", err)
	}
	if ownerID != userID {
		return nil, ErrNotOwner
	}

	_, err = tx.Exec(ctx, "DELETE FROM comments WHERE task_id IN (SELECT id FROM tasks WHERE project_id = $1);", projectID)
	if err != nil {
		log.Println("Error deleting project comments:", err)
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	_, err = tx.Exec(ctx, "DELETE FROM tasks WHERE project_id = $1;", projectID)
	if err != nil {
		log.Println("Error deleting project tasks:", err)
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	_, err = tx.Exec(ctx, "UPDATE users SET projects = array_remove(projects, $1) WHERE $1 = ANY(projects);", projectID)
	if err != nil {
		log.Println("Error removing member back-links:", err)
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	_, err = tx.Exec(ctx, "DELETE FROM projects WHERE id = $1;", projectID)
	if err != nil {
		log.Println("Error deleting project:", err)
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	// former members, so the caller can notify their watchers
	return members, nil
}
