package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/taskwell/taskwell-api/internal/api"
	apimiddleware "github.com/taskwell/taskwell-api/internal/api/middleware"
	"github.com/taskwell/taskwell-api/internal/api/shared"
)

// setupRouter configures the middleware chain and the route table.
// The session middleware wraps recovery, so even a panicking request gets
// both the uniform error shape and its outbound cookie decision: the
// recovered 400 is written through the session middleware's response writer.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(apimiddleware.TraceMiddleware)

	sessionMW := apimiddleware.NewSessionMiddleware(app.tokenCodec, app.config.Auth.CookieName)
	r.Use(sessionMW.Authenticate)
	r.Use(apimiddleware.RecoverMiddleware)

	r.Post("/users/register", api.Handle(app.userHandler.Register))
	r.Post("/users/login", api.Handle(app.userHandler.Login))
	r.Post("/users/logout", api.Handle(app.userHandler.Logout))

	r.Get("/tasks/list", api.Handle(app.taskHandler.List))
	r.Get("/tasks/search", api.Handle(app.taskHandler.Search))
	r.Get("/tasks/get/{id}", api.Handle(app.taskHandler.Get))
	r.Post("/tasks/create", api.Handle(app.taskHandler.Create))
	r.Post("/tasks/update/{id}", api.Handle(app.taskHandler.Update))
	r.Post("/tasks/delete/{id}", api.Handle(app.taskHandler.Delete))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, "hello, world")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
