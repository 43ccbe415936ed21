package jobs

import (
	"context"
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/pkg/types"
)

// ReservationRepository is the reservation storage contract
type ReservationRepository interface {
	GetExpiredPending(ctx context.Context, cutoff time.Time) ([]*domain.Reservation, error)
	GetConfirmedPastEndTime(ctx context.Context, today time.Time, nowTime types.TimeString) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, reason string, paymentStatus domain.PaymentStatus) error
}

// AddonBookingRepository is the addon booking storage contract
type AddonBookingRepository interface {
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

// Logger is the logging contract of the jobs
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
