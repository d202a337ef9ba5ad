package board

import "errors"

// Domain-specific errors for the board package.
var (
	ErrListNotFound    = errors.New("list not found")
	ErrEmptyTitle      = errors.New("title is empty")
	ErrInvalidDue      = errors.New("invalid due date")
	ErrInvalidTime     = errors.New("invalid time, expected HH:MM")
	ErrIndexOutOfRange = errors.New("task index out of range")
	ErrInvalidSide     = errors.New("side must be top or bottom")
	ErrInvalidMonth    = errors.New("month must be between 1 and 12")
	ErrDuplicateID     = errors.New("list and task ids must be unique and non-empty")
)
