package complete_payment

import "github.com/lensastudio/booking-service/internal/service/reservations/models"

// CompletePaymentRequest HTTP request model
type CompletePaymentRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// ToServiceRequest converts the HTTP request into the service request
func (r *CompletePaymentRequest) ToServiceRequest(userID int64) *models.CompletePaymentRequest {
	return &models.CompletePaymentRequest{
		UserID:        userID,
		PaymentMethod: r.PaymentMethod,
	}
}
