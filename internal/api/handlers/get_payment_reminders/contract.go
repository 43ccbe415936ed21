package get_payment_reminders

import (
	"context"

	"github.com/lensastudio/booking-service/internal/service/reminders/models"
)

type ReminderService interface {
	GetActiveReminders(ctx context.Context, studioID int64) (*models.ReminderListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
