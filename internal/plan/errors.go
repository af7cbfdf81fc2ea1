package plan

import "errors"

var (
	ErrNotFound        = errors.New("plan file not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrTaskNotFound    = errors.New("task not found")
)
