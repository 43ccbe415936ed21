package reservations

import (
	"context"
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
)

// ReservationRepository is the reservation storage contract
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetByStudioWithFilter(ctx context.Context, filter domain.StudioReservationsFilter) ([]*domain.Reservation, error)
	UpdatePayment(ctx context.Context, id int64, status domain.PaymentStatus, method *string, remaining float64) error
	Cancel(ctx context.Context, id int64, reason string, paymentStatus domain.PaymentStatus) error
}

// AddonBookingRepository is the addon booking storage contract
type AddonBookingRepository interface {
	GetByReservationID(ctx context.Context, reservationID int64) ([]*domain.AddonBooking, error)
	CancelByReservationID(ctx context.Context, reservationID int64) error
}

// TransactionManager groups the reservation and addon cancellation writes
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract of the service
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
