package studiocatalog

import "errors"

var (
	// ErrStudioNotFound is returned when the studio does not exist
	ErrStudioNotFound = errors.New("studio not found")

	// ErrFacilityNotFound is returned when the facility does not exist in the studio
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrInternal is returned on client-side failures
	ErrInternal = errors.New("studiocatalog client: internal error")

	// ErrInvalidResponse is returned when the catalog service responds with
	// an unexpected status or body
	ErrInvalidResponse = errors.New("studiocatalog client: invalid response")
)
