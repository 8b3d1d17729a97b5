// Package mocks provides in-memory store implementations for handler
// tests. Each mock uses optional function fields to override behavior
// per test, with a map-backed default implementation.
package mocks
