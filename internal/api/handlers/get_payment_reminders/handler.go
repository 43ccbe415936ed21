package get_payment_reminders

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lensastudio/booking-service/internal/api/handlers"
	"github.com/lensastudio/booking-service/internal/service/reminders"
)

const msgInvalidStudioID = "ID studio tidak valid"

type Handler struct {
	service ReminderService
	logger  Logger
}

func NewHandler(service ReminderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/studios/{studioId}/payment-reminders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	studioID, err := strconv.ParseInt(vars["studioId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /studios/{id}/payment-reminders - Invalid studio ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStudioID)
		return
	}

	resp, err := h.service.GetActiveReminders(r.Context(), studioID)
	if err != nil {
		switch {
		case errors.Is(err, reminders.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStudioID)

		default:
			h.logger.Error("GET /studios/{id}/payment-reminders - Failed: studio_id=%d, error=%v", studioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
