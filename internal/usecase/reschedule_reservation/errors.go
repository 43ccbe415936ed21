package reschedule_reservation

import "errors"

var (
	ErrInvalidInput        = errors.New("reschedule_reservation: invalid input")
	ErrReservationNotFound = errors.New("reschedule_reservation: reservation not found")
	ErrAccessDenied        = errors.New("reschedule_reservation: reservation belongs to another user")
	ErrStudioClosed        = errors.New("reschedule_reservation: studio is closed on this day")
	ErrOutsideHours        = errors.New("reschedule_reservation: slot is outside operating hours")
	ErrSlotNotAvailable    = errors.New("reschedule_reservation: slot is not available")
	ErrInternal            = errors.New("reschedule_reservation: internal error")
)
