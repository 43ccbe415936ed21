package create_payment_invoice

import (
	"context"

	"github.com/lensastudio/booking-service/internal/service/payments/models"
)

type PaymentService interface {
	CreateInvoice(ctx context.Context, reservationID int64, req *models.CreateInvoiceRequest) (*models.InvoiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
