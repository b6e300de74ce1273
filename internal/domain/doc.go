// Package domain defines the core business entities of the task tracker
// and the validation errors they can produce.
package domain
