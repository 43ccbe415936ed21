package complete_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lensastudio/booking-service/internal/api/handlers"
	"github.com/lensastudio/booking-service/internal/api/middleware"
	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/internal/service/reservations"
)

const (
	msgInvalidReservationID = "ID reservasi tidak valid"
	msgInvalidRequestBody   = "body permintaan tidak valid"
	msgUnauthorized         = "autentikasi diperlukan"
	msgNotFound             = "reservasi tidak ditemukan"
	msgForbidden            = "akses ditolak"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/complete-payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/complete-payment - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req CompletePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/complete-payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.CompletePayment(r.Context(), reservationID, req.ToServiceRequest(userID))
	if err != nil {
		var policyErr *domain.PolicyViolationError
		switch {
		case errors.As(err, &policyErr):
			handlers.RespondUnprocessable(w, policyErr.Message)

		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations/{id}/complete-payment - Failed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/complete-payment - Settled: reservation_id=%d, user_id=%d",
		reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
