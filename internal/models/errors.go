package models

import "errors"

var (
	// ErrTaskNotFound indicates the referenced task does not exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrInvalidStatus indicates a status string outside the enum.
	ErrInvalidStatus = errors.New("invalid task status")
)
