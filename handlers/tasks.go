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

// memberProject loads a project and checks the current user can see it.
// Writes the error response itself; callers just return on nil.
func memberProject(w http.ResponseWriter, projectID, userID string, db *pgxpool.Pool) *models.Project {
	if projectID == "" {
		http.Error(w, "Missing project ID", http.StatusBadRequest)
		return nil
	}
	project, err := utils.GetProject(projectID, db)
	if errors.Is(err, utils.ErrProjectNotFound) {
		writeMessage(w, http.StatusNotFound, "Project not found")
		return nil
	}
	if err != nil {
		log.Println("Error loading project:", err)
		http.Error(w, "Failed to load project", http.StatusInternalServerError)
		return nil
	}
	if !project.IsMember(userID) {
		writeMessage(w, http.StatusForbidden, "You are not a member of this project")
		return nil
	}
	return project
}

// BoardHandler returns the current project's tasks bucketed into the three
// board columns.
func BoardHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodGet {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUser(w, r, redisClient)
	if !ok {
		return
	}

	project := memberProject(w, r.URL.Query().Get("project"), userID, db)
	if project == nil {
		return
	}

	board, err := utils.GetBoard(project.ID, db)
	if err != nil {
		log.Println("Error retrieving tasks for project:", project.ID, ":", err)
		http.Error(w, "Failed to load tasks", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, board)
}

// AddTaskHandler receives post methods for adding tasks and parses them to be added to the database
func AddTaskHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUser(w, r, redisClient)
	if !ok {
		return
	}

	var req struct {
		Title     string `json:"title"`
		DueDate   string `json:"dueDate"`
		ProjectID string `json:"projectId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := utils.ValidateTaskTitle(req.Title); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	dueDate, err := utils.CanonicalDueDate(req.DueDate)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	project := memberProject(w, req.ProjectID, userID, db)
	if project == nil {
		return
	}

	task, err := utils.CreateTask(userID, project, req.Title, dueDate, db)
	if err != nil {
		log.Println("Error creating task:", err)
		http.Error(w, "Failed to create task", http.StatusInternalServerError)
		return
	}

	utils.NotifyTasksChanged(redisClient, project.ID)
	utils.UpdateLastActivityDB(db, userID)

	writeJSON(w, http.StatusCreated, task)
}

func MoveTaskHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodPatch {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUser(w, r, redisClient)
	if !ok {
		return
	}

	taskID := path.Base(r.URL.Path)
	if taskID == "" {
		http.Error(w, "Missing task ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	status, err := models.ParseStatus(req.Status)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Status must be one of To Do, Doing, Done")
		return
	}

	task, err := utils.GetTask(taskID, db)
	if errors.Is(err, utils.ErrTaskNotFound) {
		writeMessage(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		log.Println("Error loading task:", err)
		http.Error(w, "Failed to move task", http.StatusInternalServerError)
		return
	}
	if memberProject(w, task.ProjectID, userID, db) == nil {
		return
	}

	projectID, err := utils.MoveTask(taskID, status, db)
	if err != nil {
		log.Println("error moving task:", err)
		http.Error(w, "Failed to move task", http.StatusInternalServerError)
		return
	}

	utils.NotifyTasksChanged(redisClient, projectID)
	utils.UpdateLastActivityDB(db, userID)

	w.WriteHeader(http.StatusOK)
}

func DeleteTaskHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUser(w, r, redisClient)
	if !ok {
		return
	}

	taskID := path.Base(r.URL.Path)
	if taskID == "" {
		http.Error(w, "Missing task ID", http.StatusBadRequest)
		return
	}

	task, err := utils.GetTask(taskID, db)
	if errors.Is(err, utils.ErrTaskNotFound) {
		writeMessage(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		log.Println("Error loading task:", err)
		http.Error(w, "Failed to delete task", http.StatusInternalServerError)
		return
	}
	if memberProject(w, task.ProjectID, userID, db) == nil {
		return
	}

	projectID, err := utils.DeleteTask(taskID, db)
	if err != nil {
		log.Println("Error deleting task:", err)
		http.Error(w, "Failed to delete task", http.StatusInternalServerError)
		return
	}

	utils.NotifyTasksChanged(redisClient, projectID)
	utils.UpdateLastActivityDB(db, userID)

	w.WriteHeader(http.StatusOK)
}
