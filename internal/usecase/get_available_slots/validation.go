package get_available_slots

import (
	"fmt"

	"github.com/lensastudio/booking-service/internal/domain"
)

// validateRequest validates the availability query
func validateRequest(req *Request) error {
	if req.StudioID <= 0 {
		return fmt.Errorf("%w: studioID must be positive", ErrInvalidInput)
	}

	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.ExcludeReservationID != nil && *req.ExcludeReservationID <= 0 {
		return fmt.Errorf("%w: excludeReservationId must be positive", ErrInvalidInput)
	}

	return nil
}
