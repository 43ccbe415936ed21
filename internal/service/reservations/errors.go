package reservations

import "errors"

var (
	ErrInvalidInput        = errors.New("reservations: invalid input")
	ErrReservationNotFound = errors.New("reservations: reservation not found")
	ErrAccessDenied        = errors.New("reservations: access denied")
	ErrInternal            = errors.New("reservations: internal error")
)
