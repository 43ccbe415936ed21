package get_available_slots

import (
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
)

// Request is the availability query
type Request struct {
	StudioID        int64
	FacilityID      int64
	Date            time.Time // calendar date, no time component
	DurationMinutes int       // requested session length

	// ExcludeReservationID skips one reservation's occupied ranges.
	// Set by the reschedule flow so a reservation does not conflict
	// with itself.
	ExcludeReservationID *int64
}

// Response is the ordered list of slot candidates for the date
type Response struct {
	StudioID   int64
	FacilityID int64
	Date       time.Time
	Closed     bool // true when the studio has no operating hours that day
	Slots      []domain.SlotCandidate
}
