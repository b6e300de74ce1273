// Package store defines the persistence interfaces for users and tasks,
// along with the sentinel errors their implementations return. Services
// depend on these interfaces; the HTTP layer never touches them directly.
package store
