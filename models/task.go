package models

type Task struct {
	ID           string `db:"id" json:"id"`
	ProjectID    string `db:"project_id" json:"projectId"`
	ProjectName  string `db:"project_name" json:"projectName"`
	Title        string `db:"title" json:"title"`
	Status       Status `db:"status" json:"status"`
	DueDate      string `db:"due_date" json:"dueDate"`
	CreatedBy    string `db:"created_by" json:"createdBy"`
	CommentCount int    `db:"comment_count" json:"commentCount"`
}

// Board is the three-way partition of a project's tasks used for rendering.
// Every task of the project lands in exactly one bucket.
type Board struct {
	ToDo  []Task `json:"toDo"`
	Doing []Task `json:"doing"`
	Done  []Task `json:"done"`
}

// All returns the board's tasks as a single flat list.
func (b Board) All() []Task {
	all := make([]Task, 0, len(b.ToDo)+len(b.Doing)+len(b.Done))
	all = append(all, b.ToDo...)
	all = append(all, b.Doing...)
	all = append(all, b.Done...)
	return all
}
