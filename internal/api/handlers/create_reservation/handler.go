package create_reservation

import (
	"errors"
	"net/http"

	"github.com/lensastudio/booking-service/internal/api/handlers"
	"github.com/lensastudio/booking-service/internal/api/middleware"
	createReservation "github.com/lensastudio/booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "body permintaan tidak valid"
	msgUnauthorized       = "autentikasi diperlukan"
	msgStudioNotFound     = "studio tidak ditemukan"
	msgFacilityNotFound   = "fasilitas tidak ditemukan"
	msgFacilityInactive   = "fasilitas sedang tidak aktif"
	msgStudioClosed       = "studio tutup pada tanggal tersebut"
	msgOutsideHours       = "jadwal berada di luar jam operasional studio"
	msgSlotNotAvailable   = "slot waktu sudah tidak tersedia"
	msgAddonNotAvailable  = "slot waktu addon sudah tidak tersedia"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrStudioNotFound):
			handlers.RespondNotFound(w, msgStudioNotFound)

		case errors.Is(err, createReservation.ErrFacilityNotFound):
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, createReservation.ErrFacilityInactive):
			handlers.RespondNotFound(w, msgFacilityInactive)

		case errors.Is(err, createReservation.ErrStudioClosed):
			handlers.RespondBadRequest(w, msgStudioClosed)

		case errors.Is(err, createReservation.ErrOutsideHours):
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createReservation.ErrAddonNotAvailable):
			handlers.RespondConflict(w, msgAddonNotAvailable)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, code=%s, user_id=%d",
		resp.Reservation.ID, resp.Reservation.Code, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
