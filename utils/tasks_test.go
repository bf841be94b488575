package utils_test

import (
	"taskify/models"
	"taskify/utils"
	"testing"
)

func TestBucketTasks(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", ProjectID: "p1", Title: "Task 1", Status: models.StatusToDo},
		{ID: "t2", ProjectID: "p1", Title: "Task 2", Status: models.StatusDoing},
		{ID: "t3", ProjectID: "p1", Title: "Task 3", Status: models.StatusDone},
		{ID: "t4", ProjectID: "p1", Title: "Task 4", Status: "to do "},   // sloppy casing from an old writer
		{ID: "t5", ProjectID: "p1", Title: "Task 5", Status: "Blocked"}, // unknown status folds into To Do
	}

	board := utils.BucketTasks(tasks)

	if got := len(board.ToDo); got != 3 {
		t.Errorf("len(ToDo) = %d, want 3", got)
	}
	if got := len(board.Doing); got != 1 {
		t.Errorf("len(Doing) = %d, want 1", got)
	}
	if got := len(board.Done); got != 1 {
		t.Errorf("len(Done) = %d, want 1", got)
	}

	// The partition is a complete, disjoint cover of the input
	seen := map[string]int{}
	for _, task := range board.All() {
		seen[task.ID]++
	}
	if len(seen) != len(tasks) {
		t.Errorf("partition covers %d tasks, want %d", len(seen), len(tasks))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("task %s appears %d times across buckets, want 1", id, n)
		}
	}
}

func TestBucketTasksNormalizesStoredStatus(t *testing.T) {
	board := utils.BucketTasks([]models.Task{
		{ID: "t1", Status: " DONE "},
	})

	if len(board.Done) != 1 {
		t.Fatalf("len(Done) = %d, want 1", len(board.Done))
	}
	if board.Done[0].Status != models.StatusDone {
		t.Errorf("bucketed status = %q, want %q", board.Done[0].Status, models.StatusDone)
	}
}

func TestBucketTasksEmptyInput(t *testing.T) {
	board := utils.BucketTasks(nil)

	// Buckets render as empty lists, never null
	if board.ToDo == nil || board.Doing == nil || board.Done == nil {
		t.Error("empty board has nil buckets, want empty slices")
	}
	if got := len(board.All()); got != 0 {
		t.Errorf("len(All()) = %d, want 0", got)
	}
}

func TestBoardAfterStatusChange(t *testing.T) {
	// create task T1 "To Do", then change to Done: it appears only in Done
	task := models.Task{ID: "t1", ProjectID: "p1", Title: "Task 1", Status: models.StatusToDo, DueDate: "2024-10-29"}

	if !models.CanTransition(task.Status, models.StatusDone) {
		t.Fatal("transition To Do -> Done not allowed, want allowed")
	}
	task.Status = models.StatusDone

	board := utils.BucketTasks([]models.Task{task})
	if len(board.ToDo) != 0 || len(board.Doing) != 0 {
		t.Errorf("task still present in other buckets: ToDo=%d Doing=%d", len(board.ToDo), len(board.Doing))
	}
	if len(board.Done) != 1 || board.Done[0].ID != "t1" {
		t.Fatalf("Done bucket = %+v, want exactly t1", board.Done)
	}
}
