package repository

import "context"

//go:generate mockery --name Storage
type Storage interface {
	// ReadLines loads the whole file as a line slice.
	ReadLines(ctx context.Context, path string) ([]string, error)

	// WriteLines replaces the whole file with lines, newline-terminated.
	WriteLines(ctx context.Context, path string, lines []string) error

	// Exists reports whether path names an existing file.
	Exists(path string) bool

	// MkdirAll creates the directory path and any missing parents.
	MkdirAll(path string) error

	// ListDir returns the entry names inside dir.
	ListDir(dir string) ([]string, error)
}
