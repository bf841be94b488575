package models

import (
	"fmt"
	"strings"
)

// Status is the closed set of board columns a task can occupy.
type Status string

const (
	StatusToDo  Status = "To Do"
	StatusDoing Status = "Doing"
	StatusDone  Status = "Done"
)

// ParseStatus maps user input onto a Status, forgiving case and spacing
// ("to do", "DOING ", "ToDo" all parse). Unknown values are an error.
func ParseStatus(s string) (Status, error) {
	switch normalizeStatusKey(s) {
	case "todo":
		return StatusToDo, nil
	case "doing":
		return StatusDoing, nil
	case "done":
		return StatusDone, nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// NormalizeStatus is the read-side counterpart of ParseStatus: stored values
// that don't match any column fold into To Do instead of disappearing from
// the board.
func NormalizeStatus(s string) Status {
	status, err := ParseStatus(s)
	if err != nil {
		return StatusToDo
	}
	return status
}

// CanTransition reports whether a task may move between the two statuses.
// The state model is flat: any column to any column, including itself.
func CanTransition(from, to Status) bool {
	return true
}

func normalizeStatusKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
}
