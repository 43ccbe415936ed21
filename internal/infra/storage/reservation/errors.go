package reservation

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrDuplicateCode is returned when the generated reservation code collides
	ErrDuplicateCode = errors.New("reservation.repository: duplicate reservation code")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
