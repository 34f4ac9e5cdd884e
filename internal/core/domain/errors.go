package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrTransport          = errors.New("transport failure")
	ErrInvalidDueDate     = errors.New("invalid due date")
	ErrInvalidTaskPayload = errors.New("invalid task payload")
)
