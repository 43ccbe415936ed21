package reschedule_reservation

import (
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/pkg/types"
)

// Request is the reschedule request. The new window keeps the original
// duration; only the date and start time move.
type Request struct {
	UserID        int64
	ReservationID int64
	NewDate       time.Time
	NewStartTime  types.TimeString
}

// Response is the reservation after rescheduling
type Response struct {
	Reservation *domain.Reservation
}
