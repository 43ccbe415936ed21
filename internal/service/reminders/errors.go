package reminders

import "errors"

var (
	ErrInvalidInput = errors.New("reminders: invalid input")
	ErrInternal     = errors.New("reminders: internal error")
)
