// Package mocks provides hand-written test doubles for the store and auth
// interfaces. Each mock carries optional function fields for per-test
// behavior and an in-memory default implementation.
package mocks
