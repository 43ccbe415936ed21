package payment_notification

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lensastudio/booking-service/internal/api/handlers"
	"github.com/lensastudio/booking-service/internal/service/payments"
	"github.com/lensastudio/booking-service/internal/service/payments/models"
)

const (
	msgInvalidRequestBody = "invalid notification payload"
	msgInvalidSignature   = "invalid signature"
	msgUnknownOrder       = "unknown order"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/midtrans/notification
//
// Called by the payment gateway, not by users. Midtrans retries on any
// non-2xx, so state that cannot move (unknown order after expiry cleanup)
// still answers with an error to trigger a retry, while replays of an
// already-applied status answer 200.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var payload models.NotificationPayload
	// The gateway payload carries many fields this service ignores, so no
	// DisallowUnknownFields here
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Warn("POST /payments/midtrans/notification - Invalid payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.HandleNotification(r.Context(), &payload)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidSignature):
			handlers.RespondForbidden(w, msgInvalidSignature)

		case errors.Is(err, payments.ErrUnknownOrder):
			handlers.RespondNotFound(w, msgUnknownOrder)

		default:
			h.logger.Error("POST /payments/midtrans/notification - Failed: order=%s, error=%v",
				payload.OrderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}
