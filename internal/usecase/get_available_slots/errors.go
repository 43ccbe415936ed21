package get_available_slots

import "errors"

var (
	// ErrStudioNotFound is returned when the studio is unknown
	ErrStudioNotFound = errors.New("get_available_slots: studio not found")

	// ErrFacilityNotFound is returned when the facility is unknown or does
	// not belong to the studio
	ErrFacilityNotFound = errors.New("get_available_slots: facility not found")

	// ErrFacilityInactive is returned when the facility is disabled for booking
	ErrFacilityInactive = errors.New("get_available_slots: facility is not active")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned when an upstream fetch fails, so callers can
	// distinguish "no slots" from "could not determine slots"
	ErrInternal = errors.New("get_available_slots: internal error")
)
