package domain

import (
	"time"

	"github.com/lensastudio/booking-service/pkg/types"
)

// AddonBooking represents an extra facility-time booking made alongside a
// package reservation. It consumes the same facility's physical
// availability as package reservations do.
type AddonBooking struct {
	ID            int64
	ReservationID int64
	FacilityID    int64
	AddonID       int64
	AddonName     string
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Price         float64
	Status        ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the addon booking still occupies its time range
func (a *AddonBooking) IsActive() bool {
	return a.Status != StatusCancelled
}

// Interval returns the occupied time range of the addon booking
func (a *AddonBooking) Interval() TimeInterval {
	return TimeInterval{
		Date:  a.BookingDate,
		Start: a.StartTime,
		End:   a.EndTime,
	}
}
