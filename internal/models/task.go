// internal/models/task.go
package models

import (
	"strings"
	"time"
)

// TaskStatus defines the possible statuses for a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

// ParseTaskStatus maps a raw status string onto the enum, case-insensitively.
// Anything that matches none of the three values is ErrInvalidStatus.
func ParseTaskStatus(raw string) (TaskStatus, error) {
	switch TaskStatus(strings.ToUpper(raw)) {
	case StatusPending:
		return StatusPending, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusCompleted:
		return StatusCompleted, nil
	}
	return "", ErrInvalidStatus
}

// Task represents the structure of a task in the system.
type Task struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Status      TaskStatus `json:"status"`
	Description string     `json:"description"`
	UserID      string     `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskUpdate is a partial update payload: nil fields are left untouched.
// Status is the only field with extra rules (validated before persisting).
type TaskUpdate struct {
	Name        *string `json:"name"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
	UserID      *string `json:"user_id"`
}

// TaskQuery defines the available parameters for listing tasks.
// Name is a substring match (empty matches everything), Status and ID
// are exact matches applied only when non-empty.
type TaskQuery struct {
	Name   string
	Status string
	ID     string
	Page   int
	Limit  int
}

// PagedTasks is the envelope returned by list operations.
// TotalPage is ceil(Total/Limit); Total counts matches ignoring pagination.
type PagedTasks struct {
	Data      []Task `json:"data"`
	Limit     int    `json:"limit"`
	Total     int    `json:"total"`
	TotalPage int    `json:"totalPage"`
	Page      int    `json:"page"`
}

// TaskResult wraps a single fetched task. The envelope shape is part of
// the public contract of GET /tasks/:id.
type TaskResult struct {
	Task *Task `json:"task"`
}

// TaskUpdatedEvent is the payload published to the update topic after a
// successful update, carrying the acting user and the post-update record.
type TaskUpdatedEvent struct {
	UserID string `json:"userId"`
	Data   *Task  `json:"data"`
}
