package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/internal/integrations/studiocatalog"
	"github.com/lensastudio/booking-service/pkg/ptr"
	"github.com/lensastudio/booking-service/pkg/types"
)

// UseCase resolves the available slots of a facility for a date.
//
// The result is advisory: it is computed outside any transaction and can
// go stale between display and booking. The create/reschedule flows repeat
// the overlap check inside a serializable transaction before writing.
type UseCase struct {
	reservationRepo ReservationRepository
	addonRepo       AddonBookingRepository
	catalogClient   StudioCatalogClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the availability usecase
func NewUseCase(
	reservationRepo ReservationRepository,
	addonRepo AddonBookingRepository,
	catalogClient StudioCatalogClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		addonRepo:       addonRepo,
		catalogClient:   catalogClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the availability query
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: studio=%d, facility=%d, date=%s, duration=%d, exclude=%v",
		req.StudioID, req.FacilityID, req.Date.Format(domain.DateFormat), req.DurationMinutes, req.ExcludeReservationID)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Fetch the studio (operating hours live there)
	studio, err := uc.catalogClient.GetStudio(ctx, req.StudioID)
	if err != nil {
		if errors.Is(err, studiocatalog.ErrStudioNotFound) {
			uc.logger.Warn("GetAvailableSlots: studio id=%d not found", req.StudioID)
			return nil, ErrStudioNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get studio id=%d: %v", req.StudioID, err)
		return nil, fmt.Errorf("%w: failed to get studio: %v", ErrInternal, err)
	}

	// 3. Fetch the facility and check it belongs to the studio
	facility, err := uc.catalogClient.GetFacility(ctx, req.StudioID, req.FacilityID)
	if err != nil {
		if errors.Is(err, studiocatalog.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailableSlots: facility id=%d not found in studio id=%d", req.FacilityID, req.StudioID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	if !facility.IsActive {
		uc.logger.Warn("GetAvailableSlots: facility id=%d is inactive", req.FacilityID)
		return nil, ErrFacilityInactive
	}

	// 4. Past dates have no bookable slots
	if isDateInPast(req.Date, now) {
		return &Response{
			StudioID:   req.StudioID,
			FacilityID: req.FacilityID,
			Date:       req.Date,
			Slots:      []domain.SlotCandidate{},
		}, nil
	}

	// 5. Operating hours for the weekday; closed day is a successful
	// empty result, distinct from a fetch failure
	hours := studio.OperatingHours.ForDate(req.Date)
	if !hours.IsOpen {
		uc.logger.Info("GetAvailableSlots: studio id=%d closed on %s", req.StudioID, req.Date.Format(domain.DateFormat))
		return &Response{
			StudioID:   req.StudioID,
			FacilityID: req.FacilityID,
			Date:       req.Date,
			Closed:     true,
			Slots:      []domain.SlotCandidate{},
		}, nil
	}

	// 6. Fetch both occupied-range sources: package reservations and
	// addon bookings consume the same physical facility
	reservations, err := uc.reservationRepo.GetByFacilityAndDate(ctx, req.FacilityID, req.Date, req.ExcludeReservationID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	addons, err := uc.addonRepo.GetByFacilityAndDate(ctx, req.FacilityID, req.Date, req.ExcludeReservationID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get addon bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get addon bookings: %v", ErrInternal, err)
	}

	occupied, dropped := domain.CollectOccupiedRanges(reservations, addons)
	if dropped > 0 {
		uc.logger.Warn("GetAvailableSlots: dropped %d occupied ranges with invalid time windows (facility=%d, date=%s)",
			dropped, req.FacilityID, req.Date.Format(domain.DateFormat))
	}

	// 7. Today's candidates that already started are not bookable
	var minStart *types.TimeString
	if domain.IsSameDay(req.Date, now) {
		minStart = ptr.Ptr(types.NewTimeString(now))
	}

	// 8. Generate candidates
	slots, err := generateSlotCandidates(hours, req.Date, req.DurationMinutes, occupied, minStart)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slot candidates: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slot candidates: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d candidates (%d occupied ranges) for facility=%d, date=%s",
		len(slots), len(occupied), req.FacilityID, req.Date.Format(domain.DateFormat))

	return &Response{
		StudioID:   req.StudioID,
		FacilityID: req.FacilityID,
		Date:       req.Date,
		Slots:      slots,
	}, nil
}
