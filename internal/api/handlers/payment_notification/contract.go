package payment_notification

import (
	"context"

	"github.com/lensastudio/booking-service/internal/service/payments/models"
)

type PaymentService interface {
	HandleNotification(ctx context.Context, payload *models.NotificationPayload) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
