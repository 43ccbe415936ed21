package domain

import "github.com/lensastudio/booking-service/pkg/types"

// SlotCandidate represents a generated start time for a booking of a
// requested duration. Candidates are computed fresh on every availability
// query and never persisted.
type SlotCandidate struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Available       bool
}
