package domain

import "errors"

// User-input validation errors. The command layer renders these back to the
// caller; they are rejected before any store access.
var (
	ErrInvalidPlatform = errors.New("unknown platform")
	ErrDaysOutOfRange  = errors.New("days must be between 1 and 30")
	ErrLimitOutOfRange = errors.New("limit must be between 1 and 25")
	ErrInvalidTime     = errors.New("time must be in HH:MM format")
)
