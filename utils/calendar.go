package utils

import (
	"time"

	"taskify/models"
)

// Calendar dot colors per board column.
const (
	ColorToDo  = "#f72a25"
	ColorDoing = "#fbbc04"
	ColorDone  = "#188038"
)

// MarkedDate is one calendar day carrying a dot per task due that day.
type MarkedDate struct {
	Marked bool     `json:"marked"`
	Dots   []string `json:"dots"`
}

// StatusColor maps a board column to its calendar dot color.
func StatusColor(status models.Status) string {
	switch status {
	case models.StatusDoing:
		return ColorDoing
	case models.StatusDone:
		return ColorDone
	default:
		return ColorToDo
	}
}

// MarkedDates derives the calendar view from a board: due date to one dot
// per task due that day, colored by the task's column. Dates are expected in
// canonical YYYY-MM-DD form; anything unparseable is skipped rather than
// shown on a wrong day.
func MarkedDates(board models.Board) map[string]MarkedDate {
	marked := map[string]MarkedDate{}

	for _, task := range board.All() {
		if _, err := time.Parse("2006-01-02", task.DueDate); err != nil {
			continue
		}
		day := marked[task.DueDate]
		day.Marked = true
		day.Dots = append(day.Dots, StatusColor(task.Status))
		marked[task.DueDate] = day
	}

	return marked
}

// TasksDueOn returns the board's tasks with the given canonical due date,
// backing the day-press detail view.
func TasksDueOn(board models.Board, date string) []models.Task {
	due := []models.Task{}
	for _, task := range board.All() {
		if task.DueDate == date {
			due = append(due, task)
		}
	}
	return due
}
