// Package store defines persistence interfaces and the sentinel errors
// shared by all store implementations. Handlers depend on these
// interfaces rather than on a concrete database.
package store
