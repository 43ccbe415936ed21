package create_payment_invoice

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lensastudio/booking-service/internal/api/handlers"
	"github.com/lensastudio/booking-service/internal/api/middleware"
	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/internal/service/payments"
	"github.com/lensastudio/booking-service/internal/service/payments/models"
)

const (
	msgInvalidReservationID = "ID reservasi tidak valid"
	msgInvalidRequestBody   = "body permintaan tidak valid"
	msgUnauthorized         = "autentikasi diperlukan"
	msgNotFound             = "reservasi tidak ditemukan"
	msgForbidden            = "akses ditolak"
	msgGatewayError         = "gagal membuat tagihan pembayaran"
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

// InvoiceRequest HTTP request model
type InvoiceRequest struct {
	Kind string `json:"kind"` // "dp" or "settlement"
}

// Handle POST /api/v1/reservations/{reservationId}/invoice
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/invoice - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req InvoiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/invoice - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.CreateInvoice(r.Context(), reservationID, &models.CreateInvoiceRequest{
		UserID: userID,
		Kind:   models.PaymentKind(req.Kind),
	})
	if err != nil {
		var policyErr *domain.PolicyViolationError
		switch {
		case errors.As(err, &policyErr):
			handlers.RespondUnprocessable(w, policyErr.Message)

		case errors.Is(err, payments.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, payments.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, payments.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, payments.ErrGatewayError):
			h.logger.Error("POST /reservations/{id}/invoice - Gateway error: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgGatewayError)

		default:
			h.logger.Error("POST /reservations/{id}/invoice - Failed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/invoice - Invoice created: reservation_id=%d, order=%s",
		reservationID, resp.OrderID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
