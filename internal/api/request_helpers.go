package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/taskwell/taskwell-api/internal/api/shared"
)

// DecodeJSON parses the request body into v. A field carrying the wrong JSON
// type rejects with "invalid <field>", matching the per-field messages the
// validation layer produces; anything else unparseable is a generic client
// error.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return badRequest("invalid " + strings.ToLower(typeErr.Field))
		}
		return badRequest("invalid request body")
	}
	return nil
}

// validateRequest runs the struct validation tags and converts the first
// failure into an "invalid <field>" request error matching the JSON field
// name.
func validateRequest(validate *validator.Validate, req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return badRequest("invalid " + strings.ToLower(fieldErrs[0].Field()))
	}

	return badRequest("invalid request body")
}

// requireIdentity returns the request's resolved identity, or
// ErrUnauthenticated when the session is anonymous or absent.
func requireIdentity(r *http.Request) (string, error) {
	session := shared.SessionFromContext(r.Context())
	if !session.Authenticated() {
		return "", ErrUnauthenticated
	}
	return session.Username, nil
}
