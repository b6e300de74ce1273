package store

import (
	"context"

	"github.com/taskwell/taskwell-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
//
// The store performs no ownership checks and no filtering beyond what each
// method documents; authorization and sorting live in the service layer.
type TaskStore interface {
	// Create saves a new task to the store.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID regardless of owner.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// ListByOwner retrieves all tasks owned by the given username, in
	// whatever order the backend returns them.
	ListByOwner(ctx context.Context, owner string) ([]*domain.Task, error)

	// Update overwrites the stored record for task.ID with the full given
	// record. The read-modify-write around this call is not atomic; the last
	// writer's record wins.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Deleting an absent ID is not an error.
	Delete(ctx context.Context, id string) error
}
