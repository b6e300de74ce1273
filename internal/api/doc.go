// Package api implements the HTTP handlers for the task tracker along with
// the error normalization that flattens every internal failure into the
// uniform 400 response shape.
package api
