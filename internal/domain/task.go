package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

// Valid task status values.
const (
	TaskStatusUnknown    TaskStatus = "Unknown"
	TaskStatusWaiting    TaskStatus = "Waiting"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusDone       TaskStatus = "Done"
)

// ParseTaskStatus converts a status string into a TaskStatus.
// Returns ErrInvalidStatus if the string is not a known status value.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case TaskStatusUnknown, TaskStatusWaiting, TaskStatusInProgress, TaskStatusDone:
		return TaskStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// IsValid reports whether the status is one of the known values.
func (s TaskStatus) IsValid() bool {
	_, err := ParseTaskStatus(string(s))
	return err == nil
}

// Task represents a single tracked task. The ID and Owner are immutable after
// creation; ownership never transfers. All other fields are mutated only
// through the task service's update path, which also refreshes UpdatedAt.
type Task struct {
	ID          string     `json:"id"`
	Owner       string     `json:"owner"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Priority    int        `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a Task owned by the given user with a freshly generated
// unique ID and CreatedAt == UpdatedAt == now.
func NewTask(
	owner, title, description string,
	status TaskStatus,
	priority int,
	now time.Time,
) (*Task, error) {
	if owner == "" {
		return nil, ErrEmptyUsername
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	return &Task{
		ID:          uuid.New().String(),
		Owner:       owner,
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
