package api

import "github.com/taskwell/taskwell-api/internal/domain"

// Request payloads. Fields are pointers so a missing field is
// distinguishable from a zero value; on create every field is required,
// on update each is optional (omit means leave unchanged).

// CredentialsRequest is the payload for registration and login.
type CredentialsRequest struct {
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// CreateTaskRequest is the payload for task creation.
type CreateTaskRequest struct {
	Title       *string `json:"title"       validate:"required"`
	Description *string `json:"description" validate:"required"`
	Status      *string `json:"status"      validate:"required"`
	Priority    *int    `json:"priority"    validate:"required"`
}

// UpdateTaskRequest is the payload for task update. Any subset of fields may
// be present.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *int    `json:"priority"`
}

// Response payloads.

// EmptyResponse is the `{}` body returned by mutations without output.
type EmptyResponse struct{}

// TaskResponse wraps a single task.
type TaskResponse struct {
	Task *domain.Task `json:"task"`
}

// TasksResponse wraps a task collection.
type TasksResponse struct {
	Tasks []*domain.Task `json:"tasks"`
}

// CreateTaskResponse carries the id of a freshly created task.
type CreateTaskResponse struct {
	TaskID string `json:"task_id"`
}
