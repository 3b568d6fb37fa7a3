package types

import "time"

// Task represents a single to-do item owned by a user.
type Task struct {
	// ID is the unique identifier of the task.
	ID string `json:"id"`

	// UserID references the owning user. Tasks are never shared.
	UserID string `json:"user_id"`

	// Title is the short summary of the task.
	Title string `json:"title"`

	// Description is the optional free-form body of the task.
	Description string `json:"description"`

	// Completed reports whether the task has been marked done.
	Completed bool `json:"completed"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the task.
	UpdatedAt time.Time `json:"updated_at"`
}
