package create_reservation

import (
	"context"
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/internal/integrations/studiocatalog"
)

// ReservationRepository is the reservation storage contract
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByFacilityAndDate(ctx context.Context, facilityID int64, date time.Time, excludeID *int64) ([]*domain.Reservation, error)
}

// AddonBookingRepository is the addon booking storage contract
type AddonBookingRepository interface {
	Create(ctx context.Context, booking *domain.AddonBooking) (*domain.AddonBooking, error)
	GetByFacilityAndDate(ctx context.Context, facilityID int64, date time.Time, excludeReservationID *int64) ([]*domain.AddonBooking, error)
}

// StudioCatalogClient is the studio catalog contract
type StudioCatalogClient interface {
	GetStudio(ctx context.Context, studioID int64) (*studiocatalog.Studio, error)
	GetFacility(ctx context.Context, studioID, facilityID int64) (*studiocatalog.Facility, error)
}

// TransactionManager runs the availability re-check and the insert in one
// serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
