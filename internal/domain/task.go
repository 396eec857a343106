package domain

import "time"

// Task is a to-do item scoped to a project. Like Expense.ProjectID, the
// reference is not enforced; tasks of a deleted project stay in the store.
type Task struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}
