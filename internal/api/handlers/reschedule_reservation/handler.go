package reschedule_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lensastudio/booking-service/internal/api/handlers"
	"github.com/lensastudio/booking-service/internal/api/middleware"
	"github.com/lensastudio/booking-service/internal/domain"
	rescheduleReservation "github.com/lensastudio/booking-service/internal/usecase/reschedule_reservation"
)

const (
	msgInvalidReservationID = "ID reservasi tidak valid"
	msgInvalidRequestBody   = "body permintaan tidak valid"
	msgUnauthorized         = "autentikasi diperlukan"
	msgNotFound             = "reservasi tidak ditemukan"
	msgForbidden            = "akses ditolak"
	msgStudioClosed         = "studio tutup pada tanggal tersebut"
	msgOutsideHours         = "jadwal berada di luar jam operasional studio"
	msgSlotNotAvailable     = "slot waktu sudah tidak tersedia"
)

type Handler struct {
	useCase RescheduleUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, reservationID)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var policyErr *domain.PolicyViolationError
		switch {
		case errors.As(err, &policyErr):
			handlers.RespondUnprocessable(w, policyErr.Message)

		case errors.Is(err, rescheduleReservation.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleReservation.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleReservation.ErrStudioClosed):
			handlers.RespondBadRequest(w, msgStudioClosed)

		case errors.Is(err, rescheduleReservation.ErrOutsideHours):
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, rescheduleReservation.ErrSlotNotAvailable):
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, rescheduleReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /reservations/{id}/reschedule - Failed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/reschedule - Rescheduled: reservation_id=%d, user_id=%d",
		reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
