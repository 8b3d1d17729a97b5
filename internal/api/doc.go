// Package api contains the HTTP handlers and the request/response
// models for the public JSON surface. Each handler is a single-shot
// validate, query, mutate-or-read, respond sequence; errors from the
// store layer are mapped to the published status codes and raw error
// detail never reaches the client.
package api
