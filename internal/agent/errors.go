package agent

import "errors"

var (
	ErrToolNotFound     = errors.New("tool not found")
	ErrInvalidArguments = errors.New("invalid tool arguments")
	ErrDuplicateTool    = errors.New("tool already registered")
	ErrInvalidSchema    = errors.New("invalid tool parameter schema")
)
