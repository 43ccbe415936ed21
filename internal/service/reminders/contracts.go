package reminders

import (
	"context"
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
)

// ReservationRepository is the reservation storage contract
type ReservationRepository interface {
	GetPendingPaymentSince(ctx context.Context, studioID int64, since time.Time) ([]*domain.Reservation, error)
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
