package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lensastudio/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/lensastudio/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidStudioID    = "ID studio tidak valid"
	msgInvalidFacilityID  = "ID fasilitas tidak valid"
	msgInvalidDate        = "parameter date wajib diisi dengan format YYYY-MM-DD"
	msgInvalidDuration    = "parameter durationMinutes tidak valid"
	msgInvalidExcludeID   = "parameter excludeReservationId tidak valid"
	msgStudioNotFound     = "studio tidak ditemukan"
	msgFacilityNotFound   = "fasilitas tidak ditemukan"
	msgFacilityInactive   = "fasilitas sedang tidak aktif"
	msgInvalidSlotRequest = "permintaan slot tidak valid"
)

type Handler struct {
	useCase AvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase AvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/studios/{studioId}/facilities/{facilityId}/available-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	studioID, err := strconv.ParseInt(vars["studioId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid studio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudioID)
		return
	}

	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	query := r.URL.Query()

	durationMinutes, err := strconv.Atoi(query.Get("durationMinutes"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	var excludeReservationID *int64
	if raw := query.Get("excludeReservationId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /available-slots - Invalid exclude ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		excludeReservationID = &id
	}

	req, err := ToUseCaseRequest(studioID, facilityID, query.Get("date"), durationMinutes, excludeReservationID)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrStudioNotFound):
			handlers.RespondNotFound(w, msgStudioNotFound)

		case errors.Is(err, getAvailableSlots.ErrFacilityNotFound):
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, getAvailableSlots.ErrFacilityInactive):
			handlers.RespondNotFound(w, msgFacilityInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSlotRequest)

		default:
			h.logger.Error("GET /available-slots - Failed: studio_id=%d, facility_id=%d, error=%v",
				studioID, facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
