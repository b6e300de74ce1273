package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/store"
)

// TaskUpdate carries the optional fields of an update. A nil field means
// "leave unchanged"; there is no way to clear a field to its zero value and
// that is intentional (omit semantics, not null-means-clear).
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *int
}

// TaskService provides ownership-checked task operations.
//
// None of the read-modify-write sequences here are synchronized: two
// concurrent requests touching the same task id can interleave between the
// fetch and the write, producing a lost update or a duplicate-delete race.
// That is an accepted property of this design, not a bug to fix here; a
// stronger guarantee would need a per-row version check or a transaction at
// the store boundary.
type TaskService interface {
	// Create makes a new task owned by the given user.
	Create(
		ctx context.Context,
		owner, title, description string,
		status domain.TaskStatus,
		priority int,
	) (*domain.Task, error)

	// Get fetches a task by id. Returns ErrTaskNotFound if the task does
	// not exist or is owned by someone other than the requester.
	Get(ctx context.Context, id, requester string) (*domain.Task, error)

	// List returns the requester's tasks sorted by priority descending
	// (stable: fetch order is preserved among equal priorities). A
	// non-negative count truncates the result; a negative count is a
	// validation error; nil means no limit.
	List(ctx context.Context, requester string, count *int) ([]*domain.Task, error)

	// Search returns the requester's tasks whose title or description
	// contains text as a case-sensitive substring. Empty text is a
	// validation error.
	Search(ctx context.Context, requester, text string) ([]*domain.Task, error)

	// Update applies the provided fields to the task and refreshes
	// UpdatedAt. Same not-found/ownership rule as Get.
	Update(ctx context.Context, id, requester string, update TaskUpdate) error

	// Delete removes the task if it exists and is owned by the requester;
	// in every other case it succeeds without doing anything. Within one
	// process lifetime, repeating a delete that already succeeded is a
	// no-op backed by the idempotency cache.
	Delete(ctx context.Context, id, requester string) error
}

// deleteKey identifies a completed delete: which task, deleted by whom.
type deleteKey struct {
	id        string
	requester string
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
	timeFunc  func() time.Time // Injectable for testing

	// deleted records (id, requester) pairs whose delete already ran in this
	// process. Unbounded, never evicted, never shared across processes; it
	// exists only to make a repeated delete in the same process a silent
	// no-op. A restarted process starts empty.
	mu      sync.Mutex
	deleted map[deleteKey]struct{}
}

// Ensure TaskServiceImpl implements TaskService interface
var _ TaskService = (*TaskServiceImpl)(nil)

// NewTaskService creates a new TaskService.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) *TaskServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
		timeFunc:  time.Now,
		deleted:   make(map[deleteKey]struct{}),
	}
}

// Create implements TaskService.Create.
func (s *TaskServiceImpl) Create(
	ctx context.Context,
	owner, title, description string,
	status domain.TaskStatus,
	priority int,
) (*domain.Task, error) {
	task, err := domain.NewTask(owner, title, description, status, priority, s.timeFunc())
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task",
			"error", err,
			"owner", owner)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("task created",
		"task_id", task.ID,
		"owner", owner)

	return task, nil
}

// Get implements TaskService.Get.
func (s *TaskServiceImpl) Get(ctx context.Context, id, requester string) (*domain.Task, error) {
	task, err := s.fetchOwned(ctx, id, requester)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// List implements TaskService.List.
func (s *TaskServiceImpl) List(
	ctx context.Context,
	requester string,
	count *int,
) ([]*domain.Task, error) {
	if count != nil && *count < 0 {
		return nil, domain.ErrNegativeCount
	}

	tasks, err := s.taskStore.ListByOwner(ctx, requester)
	if err != nil {
		s.logger.Error("failed to list tasks",
			"error", err,
			"owner", requester)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	// Sorting happens here rather than in the query; the stable sort keeps
	// fetch order among equal priorities.
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority > tasks[j].Priority
	})

	if count != nil && *count < len(tasks) {
		tasks = tasks[:*count]
	}

	return tasks, nil
}

// Search implements TaskService.Search.
func (s *TaskServiceImpl) Search(
	ctx context.Context,
	requester, text string,
) ([]*domain.Task, error) {
	if text == "" {
		return nil, domain.ErrEmptySearchText
	}

	tasks, err := s.taskStore.ListByOwner(ctx, requester)
	if err != nil {
		s.logger.Error("failed to fetch tasks for search",
			"error", err,
			"owner", requester)
		return nil, fmt.Errorf("failed to fetch tasks for search: %w", err)
	}

	// No index; a linear scan over the owner's tasks, case-sensitive.
	matched := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if strings.Contains(task.Title, text) || strings.Contains(task.Description, text) {
			matched = append(matched, task)
		}
	}

	return matched, nil
}

// Update implements TaskService.Update. The fetch and the write are separate
// store calls; the last writer's full record wins.
func (s *TaskServiceImpl) Update(
	ctx context.Context,
	id, requester string,
	update TaskUpdate,
) error {
	task, err := s.fetchOwned(ctx, id, requester)
	if err != nil {
		return err
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	task.UpdatedAt = s.timeFunc()

	if err := s.taskStore.Update(ctx, task); err != nil {
		s.logger.Error("failed to update task",
			"error", err,
			"task_id", id)
		return fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Debug("task updated",
		"task_id", id,
		"owner", requester)

	return nil
}

// Delete implements TaskService.Delete.
func (s *TaskServiceImpl) Delete(ctx context.Context, id, requester string) error {
	key := deleteKey{id: id, requester: requester}

	s.mu.Lock()
	_, done := s.deleted[key]
	s.mu.Unlock()
	if done {
		return nil
	}

	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			// Deleting an absent or foreign task looks like success; the
			// cache is not populated in this case.
			return nil
		}
		s.logger.Error("failed to fetch task for delete",
			"error", err,
			"task_id", id)
		return fmt.Errorf("failed to fetch task for delete: %w", err)
	}
	if task.Owner != requester {
		return nil
	}

	if err := s.taskStore.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete task",
			"error", err,
			"task_id", id)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.mu.Lock()
	s.deleted[key] = struct{}{}
	s.mu.Unlock()

	s.logger.Info("task deleted",
		"task_id", id,
		"owner", requester)

	return nil
}

// fetchOwned fetches a task and applies the ownership rule shared by Get and
// Update: absence and foreign ownership produce the same ErrTaskNotFound.
func (s *TaskServiceImpl) fetchOwned(
	ctx context.Context,
	id, requester string,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
		}
		s.logger.Error("failed to fetch task",
			"error", err,
			"task_id", id)
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}

	if task.Owner != requester {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	return task, nil
}
