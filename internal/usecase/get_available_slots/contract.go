package get_available_slots

import (
	"context"
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/internal/integrations/studiocatalog"
)

// ReservationRepository is the reservation fetch contract of the resolver
type ReservationRepository interface {
	// GetByFacilityAndDate returns all non-cancelled reservations occupying
	// the facility on the date, minus the excluded reservation if any
	GetByFacilityAndDate(ctx context.Context, facilityID int64, date time.Time, excludeID *int64) ([]*domain.Reservation, error)
}

// AddonBookingRepository is the addon booking fetch contract of the resolver
type AddonBookingRepository interface {
	GetByFacilityAndDate(ctx context.Context, facilityID int64, date time.Time, excludeReservationID *int64) ([]*domain.AddonBooking, error)
}

// StudioCatalogClient is the studio catalog contract of the resolver
type StudioCatalogClient interface {
	GetStudio(ctx context.Context, studioID int64) (*studiocatalog.Studio, error)
	GetFacility(ctx context.Context, studioID, facilityID int64) (*studiocatalog.Facility, error)
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract of the usecase
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
