package complete_payment

import (
	"context"

	"github.com/lensastudio/booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	CompletePayment(ctx context.Context, reservationID int64, req *models.CompletePaymentRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
