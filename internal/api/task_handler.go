package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/service"
)

// TaskHandler handles task CRUD, listing, and search. Every operation
// requires a resolved identity; tasks are only ever visible to their owner.
type TaskHandler struct {
	taskService service.TaskService
	validate    *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validate:    validator.New(),
	}
}

// Create handles POST /tasks/create.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) error {
	username, err := requireIdentity(r)
	if err != nil {
		return err
	}

	var req CreateTaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		return err
	}
	if err := validateRequest(h.validate, req); err != nil {
		return err
	}

	status, err := domain.ParseTaskStatus(*req.Status)
	if err != nil {
		return err
	}

	task, err := h.taskService.Create(r.Context(), username, *req.Title, *req.Description, status, *req.Priority)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CreateTaskResponse{TaskID: task.ID})
	return nil
}

// Get handles GET /tasks/get/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) error {
	username, err := requireIdentity(r)
	if err != nil {
		return err
	}

	task, err := h.taskService.Get(r.Context(), chi.URLParam(r, "id"), username)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskResponse{Task: task})
	return nil
}

// List handles GET /tasks/list. The optional "count" query parameter caps
// how many tasks come back after the priority sort.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) error {
	username, err := requireIdentity(r)
	if err != nil {
		return err
	}

	var count *int
	if r.URL.Query().Has("count") {
		n, err := strconv.Atoi(r.URL.Query().Get("count"))
		if err != nil {
			return badRequest("invalid count")
		}
		count = &n
	}

	tasks, err := h.taskService.List(r.Context(), username, count)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTasksResponse(tasks))
	return nil
}

// Search handles GET /tasks/search. The "text" query parameter is required;
// matching is a case-sensitive substring check on title and description.
func (h *TaskHandler) Search(w http.ResponseWriter, r *http.Request) error {
	username, err := requireIdentity(r)
	if err != nil {
		return err
	}

	if !r.URL.Query().Has("text") {
		return badRequest("invalid text")
	}

	tasks, err := h.taskService.Search(r.Context(), username, r.URL.Query().Get("text"))
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTasksResponse(tasks))
	return nil
}

// Update handles POST /tasks/update/{id}. Only the fields present in the
// body change; everything else keeps its stored value.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) error {
	username, err := requireIdentity(r)
	if err != nil {
		return err
	}

	var req UpdateTaskRequest
	if err := DecodeJSON(r, &req); err != nil {
		return err
	}

	update := service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	}
	if req.Status != nil {
		status, err := domain.ParseTaskStatus(*req.Status)
		if err != nil {
			return err
		}
		update.Status = &status
	}

	if err := h.taskService.Update(r.Context(), chi.URLParam(r, "id"), username, update); err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EmptyResponse{})
	return nil
}

// Delete handles POST /tasks/delete/{id}. Deleting a task that is already
// gone, or that belongs to someone else, succeeds with an empty response.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	username, err := requireIdentity(r)
	if err != nil {
		return err
	}

	if err := h.taskService.Delete(r.Context(), chi.URLParam(r, "id"), username); err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EmptyResponse{})
	return nil
}

// newTasksResponse builds a list payload that serializes as [] rather than
// null when there are no tasks.
func newTasksResponse(tasks []*domain.Task) TasksResponse {
	if tasks == nil {
		tasks = make([]*domain.Task, 0)
	}
	return TasksResponse{Tasks: tasks}
}
