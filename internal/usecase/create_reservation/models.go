package create_reservation

import (
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/pkg/types"
)

// AddonRequest is one addon booked together with the package slot.
// Addons consume facility time on their own windows (extra hour, extra
// session), so each carries its own start time and duration.
type AddonRequest struct {
	AddonID         int64
	AddonName       string
	StartTime       types.TimeString
	DurationMinutes int
	Price           float64
}

// Request is the reservation creation request
type Request struct {
	UserID          int64
	StudioID        int64
	FacilityID      int64
	PackageID       int64
	PackageName     string
	PackagePrice    float64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	CustomerName    string
	CustomerPhone   string
	Notes           *string
	Addons          []AddonRequest
}

// Response is the created reservation with its addon bookings
type Response struct {
	Reservation *domain.Reservation
	Addons      []*domain.AddonBooking
}
