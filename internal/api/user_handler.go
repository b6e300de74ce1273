package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/service"
)

// UserHandler handles registration, login, and logout.
type UserHandler struct {
	userService service.UserService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

// Register handles POST /users/register. On success the session identity is
// set so the middleware issues a cookie with the response.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) error {
	var req CredentialsRequest
	if err := DecodeJSON(r, &req); err != nil {
		return err
	}
	if err := validateRequest(h.validate, req); err != nil {
		return err
	}

	user, err := h.userService.Register(r.Context(), *req.Username, *req.Password)
	if err != nil {
		return err
	}

	if session := shared.SessionFromContext(r.Context()); session != nil {
		session.Username = user.Username
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EmptyResponse{})
	return nil
}

// Login handles POST /users/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) error {
	var req CredentialsRequest
	if err := DecodeJSON(r, &req); err != nil {
		return err
	}
	if err := validateRequest(h.validate, req); err != nil {
		return err
	}

	user, err := h.userService.Login(r.Context(), *req.Username, *req.Password)
	if err != nil {
		return err
	}

	if session := shared.SessionFromContext(r.Context()); session != nil {
		session.Username = user.Username
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EmptyResponse{})
	return nil
}

// Logout handles POST /users/logout. Clearing the identity makes the
// middleware clear the cookie if one came in; an anonymous logout is a no-op.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) error {
	if session := shared.SessionFromContext(r.Context()); session != nil {
		session.Username = ""
	}

	shared.RespondWithJSON(w, r, http.StatusOK, EmptyResponse{})
	return nil
}
