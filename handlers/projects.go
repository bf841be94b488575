package handlers

import (
	"errors"
	"log"
	"net/http"
	"path"

	"taskify/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// ProjectsHandler serves the directory: the projects whose member list
// contains the current user.
func ProjectsHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	userID, ok := requireUser(w, r, redisClient)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		projects, err := utils.GetProjects(userID, db)
		if err != nil {
			log.Println("Error retrieving projects for user:", userID, ":", err)
			http.Error(w, "Failed to load projects", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, projects)

	case http.MethodPost:
		var req struct {
			ProjectName string `json:"projectName"`
			Description string `json:"description"`
		}
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := utils.ValidateProjectName(req.ProjectName); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		project, err := utils.CreateProject(userID, req.ProjectName, req.Description, db)
		if err != nil {
			log.Println("Error creating project:", err)
			http.Error(w, "Failed to create project", http.StatusInternalServerError)
			return
		}

		utils.NotifyProjectsChanged(redisClient, userID)
		utils.UpdateLastActivityDB(db, userID)

		writeJSON(w, http.StatusCreated, project)

	default:
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
	}
}

func JoinProjectHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUser(w, r, redisClient)
	if !ok {
		return
	}

	var req struct {
		ProjectID string `json:"projectId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ProjectID == "" {
		http.Error(w, "Missing project ID", http.StatusBadRequest)
		return
	}

	err := utils.JoinProject(userID, req.ProjectID, db)
	switch {
	case errors.Is(err, utils.ErrAlreadyMember):
		writeMessage(w, http.StatusOK, "You are already a member of this project")
		return
	case errors.Is(err, utils.ErrProjectNotFound):
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	case err != nil:
		log.Println("Error joining project:", err)
		http.Error(w, "Failed to join project", http.StatusInternalServerError)
		return
	}

	// Every member's directory view changed
	project, err := utils.GetProject(req.ProjectID, db)
	if err == nil {
		utils.NotifyProjectsChanged(redisClient, project.Members...)
	}
	utils.UpdateLastActivityDB(db, userID)

	writeMessage(w, http.StatusOK, "Joined project")
}

func DeleteProjectHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUser(w, r, redisClient)
	if !ok {
		return
	}

	projectID := path.Base(r.URL.Path)
	if projectID == "" || projectID == "projects" {
		http.Error(w, "Missing project ID", http.StatusBadRequest)
		return
	}

	members, err := utils.DeleteProject(userID, projectID, db)
	switch {
	case errors.Is(err, utils.ErrProjectNotFound):
		writeMessage(w, http.StatusNotFound, "Project not found")
		return
	case errors.Is(err, utils.ErrNotOwner):
		writeMessage(w, http.StatusForbidden, "Only the project owner can delete a project")
		return
	case err != nil:
		log.Println("Error deleting project:", err)
		http.Error(w, "Failed to delete project", http.StatusInternalServerError)
		return
	}

	utils.NotifyProjectsChanged(redisClient, members...)
	utils.NotifyTasksChanged(redisClient, projectID)
	utils.UpdateLastActivityDB(db, userID)

	w.WriteHeader(http.StatusOK)
}
