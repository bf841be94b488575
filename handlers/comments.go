package handlers

import (
	"errors"
	"log"
	"net/http"
	"path"

	"taskify/models"
	"taskify/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// taskForViewer loads a task and checks the viewer belongs to its project.
func taskForViewer(w http.ResponseWriter, taskID, userID string, db *pgxpool.Pool) *models.Task {
	if taskID == "" {
		http.Error(w, "Missing task ID", http.StatusBadRequest)
		return nil
	}
	task, err := utils.GetTask(taskID, db)
	if errors.Is(err, utils.ErrTaskNotFound) {
		writeMessage(w, http.StatusNotFound, "Task not found")
		return nil
	}
	if err != nil {
		log.Println("Error loading task:", err)
		http.Error(w, "Failed to load task", http.StatusInternalServerError)
		return nil
	}
	if memberProject(w, task.ProjectID, userID, db) == nil {
		return nil
	}
	return task
}

// CommentsHandler is the one-shot read of a task's thread. No subscription:
// other viewers' comments appear on the next fetch, and the stored comment
// count is re-synced as a side effect.
func CommentsHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodGet {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUser(w, r, redisClient)
	if !ok {
		return
	}

	task := taskForViewer(w, r.URL.Query().Get("task"), userID, db)
	if task == nil {
		return
	}

	comments, err := utils.FetchComments(task.ID, db)
	if err != nil {
		log.Println("Error fetching comments:", err)
		http.Error(w, "Failed to load comments", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func AddCommentHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUser(w, r, redisClient)
	if !ok {
		return
	}

	var req struct {
		TaskID string `json:"taskId"`
		Text   string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := utils.ValidateCommentText(req.Text); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	task := taskForViewer(w, req.TaskID, userID, db)
	if task == nil {
		return
	}

	comment, err := utils.AddComment(userID, task.ID, req.Text, db)
	if err != nil {
		log.Println("Error adding comment:", err)
		http.Error(w, "Failed to add comment", http.StatusInternalServerError)
		return
	}

	// Boards show the comment count, so poke the project's watchers
	utils.NotifyTasksChanged(redisClient, task.ProjectID)
	utils.UpdateLastActivityDB(db, userID)

	writeJSON(w, http.StatusCreated, comment)
}

func DeleteCommentHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUser(w, r, redisClient)
	if !ok {
		return
	}

	commentID := path.Base(r.URL.Path)
	if commentID == "" {
		http.Error(w, "Missing comment ID", http.StatusBadRequest)
		return
	}

	// Resolve the owning task first: only project members may touch the thread
	comment, err := utils.GetComment(commentID, db)
	if errors.Is(err, utils.ErrCommentNotFound) {
		writeMessage(w, http.StatusNotFound, "Comment not found")
		return
	}
	if err != nil {
		log.Println("Error loading comment:", err)
		http.Error(w, "Failed to delete comment", http.StatusInternalServerError)
		return
	}

	task := taskForViewer(w, comment.TaskID, userID, db)
	if task == nil {
		return
	}

	if _, err := utils.DeleteComment(commentID, db); err != nil && !errors.Is(err, utils.ErrCommentNotFound) {
		log.Println("Error deleting comment:", err)
		http.Error(w, "Failed to delete comment", http.StatusInternalServerError)
		return
	}

	utils.NotifyTasksChanged(redisClient, task.ProjectID)
	utils.UpdateLastActivityDB(db, userID)

	w.WriteHeader(http.StatusOK)
}
