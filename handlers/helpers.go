package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"taskify/utils"

	"github.com/redis/go-redis/v9"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// writeMessage is the generic user-facing message envelope.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.New("invalid request body")
	}
	return nil
}

// requireUser authorizes the request's session and CSRF token. On failure it
// writes a 401 and returns ok=false; handlers should just return.
func requireUser(w http.ResponseWriter, r *http.Request, redisClient *redis.Client) (string, bool) {
	userID, err := utils.Authorize(r, redisClient)
	if err != nil {
		log.Println("Authorization failed:", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}

	// Stamp session activity on every authorized request
	if st, err := r.Cookie("session_token"); err == nil {
		if err := utils.UpdateLastActivityRedis(redisClient, st.Value); err != nil {
			log.Println("Error updating last activity in Redis:", err)
		}
	}

	return userID, true
}
