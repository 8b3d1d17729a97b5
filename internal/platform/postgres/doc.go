// Package postgres provides PostgreSQL implementations of the store
// interfaces. All driver errors are translated to the sentinel errors
// defined in the store package before they leave this package.
package postgres
