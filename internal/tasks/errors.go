package tasks

import "errors"

var (
	ErrNotFound    = errors.New("task not found")
	ErrInvalidTask = errors.New("invalid task")
)
