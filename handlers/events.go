package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"taskify/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Live queries are streamed as server-sent events: each event is a full
// snapshot of the current result set, delivered immediately on subscribe and
// again after every change. Subscription lifetime is the request context.

func sseHeaders(w http.ResponseWriter) (http.Flusher, bool) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return nil, false
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	return flusher, true
}

func sendEvent(w http.ResponseWriter, flusher http.Flusher, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Println("Error encoding snapshot:", err)
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
	flusher.Flush()
}

// ProjectEventsHandler streams the current user's project directory.
func ProjectEventsHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
	if r.Method != http.MethodGet {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUser(w, r, redisClient)
	if !ok {
		return
	}

	flusher, ok := sseHeaders(w)
	if !ok {
		return
	}

	for projects := range utils.WatchProjects(r.Context(), userID, db, redisClient) {
		sendEvent(w, flusher, projects)
	}
}

// TaskEventsHandler streams the board of the given project.
func TaskEventsHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
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

	flusher, ok := sseHeaders(w)
	if !ok {
		return
	}

	for board := range utils.WatchTasks(r.Context(), project.ID, db, redisClient) {
		sendEvent(w, flusher, board)
	}
}
