package handlers

import (
	"log"
	"net/http"

	"taskify/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func ProfileHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	userID, ok := requireUser(w, r, redisClient)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		user, err := utils.GetUser(userID, db)
		if err != nil {
			log.Println("Error loading profile:", err)
			http.Error(w, "Failed to load profile", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, user)

	case http.MethodPut:
		var req struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Username  string `json:"username"`
			Email     string `json:"email"`
		}
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := utils.ValidateEmail(req.Email); err != nil {
			writeMessage(w, http.StatusBadRequest, "Please enter a valid email address")
			return
		}
		if req.Username == "" {
			writeMessage(w, http.StatusBadRequest, "Username is required")
			return
		}

		if err := utils.UpdateProfile(userID, req.FirstName, req.LastName, req.Username, req.Email, db); err != nil {
			log.Println("Error updating profile:", err)
			http.Error(w, "Failed to update profile", http.StatusInternalServerError)
			return
		}

		user, err := utils.GetUser(userID, db)
		if err != nil {
			log.Println("Error reloading profile:", err)
			http.Error(w, "Failed to load profile", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, user)

	default:
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
	}
}
