package get_studio_reservations

import (
	"context"

	"github.com/lensastudio/booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	GetStudioReservations(ctx context.Context, req *models.GetStudioReservationsRequest) (*models.StudioReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
