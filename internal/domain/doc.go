// Package domain defines the core business entities and their
// validation rules. Users and books are exercised by working handlers;
// blogs, chapters, comments and likes are declared ahead of routes that
// do not exist yet.
package domain
