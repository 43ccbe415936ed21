package reschedule_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/internal/infra/storage/reservation"
	"github.com/lensastudio/booking-service/pkg/types"
)

// UseCase moves a reservation to a new date and start time.
//
// The window length never changes: the new end time is derived from the
// original duration. The reschedule deadline (H-3) is enforced before any
// availability work, and the overlap re-check runs inside a serializable
// transaction excluding the reservation's own ranges.
type UseCase struct {
	reservationRepo ReservationRepository
	addonRepo       AddonBookingRepository
	catalogClient   StudioCatalogClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the reschedule usecase
func NewUseCase(
	reservationRepo ReservationRepository,
	addonRepo AddonBookingRepository,
	catalogClient StudioCatalogClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		addonRepo:       addonRepo,
		catalogClient:   catalogClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the reschedule flow
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleReservation: user=%d, reservation=%d, newDate=%s, newStart=%s",
		req.UserID, req.ReservationID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Fetch the reservation and check ownership
	res, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("RescheduleReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	if res.UserID != req.UserID {
		uc.logger.Warn("RescheduleReservation: user=%d tried to reschedule reservation id=%d of user=%d",
			req.UserID, res.ID, res.UserID)
		return nil, ErrAccessDenied
	}

	// 3. Policy gate: terminal states and the H-3 deadline block the move
	perm := res.EvaluateReschedule(now)
	if !perm.Allowed {
		uc.logger.Warn("RescheduleReservation: reservation id=%d blocked by policy: %s", res.ID, perm.Reason)
		return nil, domain.NewPolicyViolation(perm.Reason)
	}

	if isDateInPast(req.NewDate, now) {
		return nil, fmt.Errorf("%w: newDate is in the past", ErrInvalidInput)
	}

	// 4. Derive the new window from the original duration
	durationMinutes, err := res.StartTime.MinutesUntil(res.EndTime)
	if err != nil || durationMinutes <= 0 {
		uc.logger.Error("RescheduleReservation: reservation id=%d has invalid stored window %s-%s",
			res.ID, res.StartTime, res.EndTime)
		return nil, fmt.Errorf("%w: stored reservation window is invalid", ErrInternal)
	}

	// 5. The new window must fit inside the operating hours
	studio, err := uc.catalogClient.GetStudio(ctx, res.StudioID)
	if err != nil {
		uc.logger.Error("RescheduleReservation: failed to get studio id=%d: %v", res.StudioID, err)
		return nil, fmt.Errorf("%w: failed to get studio: %v", ErrInternal, err)
	}

	hours := studio.OperatingHours.ForDate(req.NewDate)
	if !hours.IsOpen || hours.OpenTime == nil || hours.CloseTime == nil {
		return nil, ErrStudioClosed
	}

	openTime, err := types.NewTimeStringFromString(*hours.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid open time %q: %v", ErrInternal, *hours.OpenTime, err)
	}
	closeTime, err := types.NewTimeStringFromString(*hours.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid close time %q: %v", ErrInternal, *hours.CloseTime, err)
	}

	if req.NewStartTime.IsBefore(openTime) {
		return nil, fmt.Errorf("%w: starts before opening time %s", ErrOutsideHours, openTime)
	}

	newEnd, err := req.NewStartTime.AddMinutes(durationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutsideHours, err)
	}
	if newEnd.IsAfter(closeTime) {
		return nil, fmt.Errorf("%w: ends after closing time %s", ErrOutsideHours, closeTime)
	}

	if domain.IsSameDay(req.NewDate, now) && req.NewStartTime.IsBefore(types.NewTimeString(now)) {
		return nil, fmt.Errorf("%w: start time already passed", ErrSlotNotAvailable)
	}

	newInterval, err := domain.NewTimeInterval(req.NewDate, req.NewStartTime, newEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 6. Re-check availability and move atomically, excluding the
	// reservation's own occupied ranges from the conflict set
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservations, err := uc.reservationRepo.GetByFacilityAndDate(txCtx, res.FacilityID, req.NewDate, &res.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		addonBookings, err := uc.addonRepo.GetByFacilityAndDate(txCtx, res.FacilityID, req.NewDate, &res.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to get addon bookings: %v", ErrInternal, err)
		}

		occupied, dropped := domain.CollectOccupiedRanges(reservations, addonBookings)
		if dropped > 0 {
			uc.logger.Warn("RescheduleReservation: dropped %d occupied ranges with invalid time windows (facility=%d, date=%s)",
				dropped, res.FacilityID, req.NewDate.Format(domain.DateFormat))
		}

		if newInterval.OverlapsAny(occupied) {
			return ErrSlotNotAvailable
		}

		return uc.reservationRepo.UpdateSchedule(txCtx, res.ID, req.NewDate, req.NewStartTime, newEnd)
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("RescheduleReservation: new slot taken during re-check (reservation=%d, date=%s, start=%s)",
				res.ID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)
			return nil, err
		}
		uc.logger.Error("RescheduleReservation: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
	}

	updated, err := uc.reservationRepo.GetByID(ctx, res.ID)
	if err != nil {
		uc.logger.Error("RescheduleReservation: failed to re-read reservation id=%d: %v", res.ID, err)
		return nil, fmt.Errorf("%w: failed to re-read reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("RescheduleReservation: reservation id=%d moved to %s %s-%s",
		res.ID, req.NewDate.Format(domain.DateFormat), req.NewStartTime, newEnd)

	return &Response{Reservation: updated}, nil
}

func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
