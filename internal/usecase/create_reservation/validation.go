package create_reservation

import (
	"fmt"

	"github.com/lensastudio/booking-service/internal/domain"
)

// validateRequest validates the reservation creation request
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.StudioID <= 0 {
		return fmt.Errorf("%w: studioID must be positive", ErrInvalidInput)
	}

	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.PackageID <= 0 {
		return fmt.Errorf("%w: packageID must be positive", ErrInvalidInput)
	}

	if req.PackageName == "" {
		return fmt.Errorf("%w: packageName is required", ErrInvalidInput)
	}

	if req.PackagePrice <= 0 {
		return fmt.Errorf("%w: packagePrice must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	for i, addon := range req.Addons {
		if addon.AddonID <= 0 {
			return fmt.Errorf("%w: addons[%d].addonID must be positive", ErrInvalidInput, i)
		}
		if addon.AddonName == "" {
			return fmt.Errorf("%w: addons[%d].addonName is required", ErrInvalidInput, i)
		}
		if err := addon.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: addons[%d].startTime: %v", ErrInvalidInput, i, err)
		}
		if addon.DurationMinutes < domain.MinDurationMinutes || addon.DurationMinutes > domain.MaxDurationMinutes {
			return fmt.Errorf("%w: addons[%d].durationMinutes must be between %d and %d",
				ErrInvalidInput, i, domain.MinDurationMinutes, domain.MaxDurationMinutes)
		}
		if addon.Price < 0 {
			return fmt.Errorf("%w: addons[%d].price must not be negative", ErrInvalidInput, i)
		}
	}

	return nil
}
