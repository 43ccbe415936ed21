package addonbooking

import "errors"

var (
	// ErrAddonBookingNotFound is returned when the addon booking does not exist
	ErrAddonBookingNotFound = errors.New("addonbooking.repository: addon booking not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("addonbooking.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("addonbooking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("addonbooking.repository: failed to scan row")
)
