package handlers

import (
	"log"
	"net/http"

	"taskify/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// CalendarHandler returns the project's due dates as calendar markings: one
// colored dot per task due that day. With ?date= it instead returns the
// tasks due on that day for the detail view.
func CalendarHandler(w http.ResponseWriter, r *http.Request, db *pgxpool.Pool, redisClient *redis.Client) {
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
		http.Error(w, "Failed to load calendar", http.StatusInternalServerError)
		return
	}

	if date := r.URL.Query().Get("date"); date != "" {
		writeJSON(w, http.StatusOK, utils.TasksDueOn(board, date))
		return
	}

	writeJSON(w, http.StatusOK, utils.MarkedDates(board))
}
