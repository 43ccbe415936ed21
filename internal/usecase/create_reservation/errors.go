package create_reservation

import "errors"

var (
	ErrInvalidInput      = errors.New("create_reservation: invalid input")
	ErrStudioNotFound    = errors.New("create_reservation: studio not found")
	ErrFacilityNotFound  = errors.New("create_reservation: facility not found")
	ErrFacilityInactive  = errors.New("create_reservation: facility is inactive")
	ErrStudioClosed      = errors.New("create_reservation: studio is closed on this day")
	ErrOutsideHours      = errors.New("create_reservation: slot is outside operating hours")
	ErrSlotNotAvailable  = errors.New("create_reservation: slot is not available")
	ErrAddonNotAvailable = errors.New("create_reservation: addon slot is not available")
	ErrInternal          = errors.New("create_reservation: internal error")
)
