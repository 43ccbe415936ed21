package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/internal/integrations/studiocatalog"
	"github.com/lensastudio/booking-service/pkg/types"
)

// UseCase creates a reservation with optional addon bookings.
//
// Availability shown to the user is advisory, so the overlap check runs
// again here inside a serializable transaction with the day's rows locked
// FOR UPDATE. Two concurrent requests for the same window cannot both
// pass the re-check.
type UseCase struct {
	reservationRepo ReservationRepository
	addonRepo       AddonBookingRepository
	catalogClient   StudioCatalogClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the reservation creation usecase
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

// Execute runs the reservation creation flow
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, studio=%d, facility=%d, date=%s, start=%s, duration=%d, addons=%d",
		req.UserID, req.StudioID, req.FacilityID, req.Date.Format(domain.DateFormat),
		req.StartTime, req.DurationMinutes, len(req.Addons))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		return nil, fmt.Errorf("%w: date is in the past", ErrInvalidInput)
	}

	// 2. Fetch the studio and the facility
	studio, err := uc.catalogClient.GetStudio(ctx, req.StudioID)
	if err != nil {
		if errors.Is(err, studiocatalog.ErrStudioNotFound) {
			return nil, ErrStudioNotFound
		}
		uc.logger.Error("CreateReservation: failed to get studio id=%d: %v", req.StudioID, err)
		return nil, fmt.Errorf("%w: failed to get studio: %v", ErrInternal, err)
	}

	facility, err := uc.catalogClient.GetFacility(ctx, req.StudioID, req.FacilityID)
	if err != nil {
		if errors.Is(err, studiocatalog.ErrFacilityNotFound) {
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateReservation: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	if !facility.IsActive {
		return nil, ErrFacilityInactive
	}

	// 3. The requested windows must fit inside the operating hours
	hours := studio.OperatingHours.ForDate(req.Date)
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

	packageEnd, err := checkWithinHours(req.StartTime, req.DurationMinutes, openTime, closeTime)
	if err != nil {
		return nil, err
	}

	packageInterval, err := domain.NewTimeInterval(req.Date, req.StartTime, packageEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	addonIntervals := make([]domain.TimeInterval, 0, len(req.Addons))
	for i, addon := range req.Addons {
		addonEnd, err := checkWithinHours(addon.StartTime, addon.DurationMinutes, openTime, closeTime)
		if err != nil {
			return nil, fmt.Errorf("addons[%d]: %w", i, err)
		}
		interval, err := domain.NewTimeInterval(req.Date, addon.StartTime, addonEnd)
		if err != nil {
			return nil, fmt.Errorf("%w: addons[%d]: %v", ErrInvalidInput, i, err)
		}
		// addons may run inside the package window but not on top of each other
		for j, prev := range addonIntervals {
			if interval.Overlaps(prev) {
				return nil, fmt.Errorf("%w: addons[%d] overlaps addons[%d]", ErrInvalidInput, i, j)
			}
		}
		addonIntervals = append(addonIntervals, interval)
	}

	// 4. Slots starting in the past are not bookable today
	if domain.IsSameDay(req.Date, now) && req.StartTime.IsBefore(types.NewTimeString(now)) {
		return nil, fmt.Errorf("%w: start time already passed", ErrSlotNotAvailable)
	}

	// 5. Compute payment amounts
	totalAmount := req.PackagePrice
	for _, addon := range req.Addons {
		totalAmount += addon.Price
	}
	dpAmount := roundDownPayment(totalAmount)
	remainingAmount := totalAmount - dpAmount

	reservation := &domain.Reservation{
		Code:            generateCode(),
		UserID:          req.UserID,
		StudioID:        req.StudioID,
		FacilityID:      req.FacilityID,
		PackageID:       req.PackageID,
		ReservationDate: req.Date,
		StartTime:       req.StartTime,
		EndTime:         packageEnd,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentPending,
		TotalAmount:     totalAmount,
		DPAmount:        dpAmount,
		RemainingAmount: remainingAmount,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		PackageName:     req.PackageName,
		Notes:           req.Notes,
	}

	// 6. Re-check availability and insert atomically. Inside the
	// transaction the repositories lock the day's rows FOR UPDATE.
	var created *domain.Reservation
	var createdAddons []*domain.AddonBooking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservations, err := uc.reservationRepo.GetByFacilityAndDate(txCtx, req.FacilityID, req.Date, nil)
		if err != nil {
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		addonBookings, err := uc.addonRepo.GetByFacilityAndDate(txCtx, req.FacilityID, req.Date, nil)
		if err != nil {
			return fmt.Errorf("%w: failed to get addon bookings: %v", ErrInternal, err)
		}

		occupied, dropped := domain.CollectOccupiedRanges(reservations, addonBookings)
		if dropped > 0 {
			uc.logger.Warn("CreateReservation: dropped %d occupied ranges with invalid time windows (facility=%d, date=%s)",
				dropped, req.FacilityID, req.Date.Format(domain.DateFormat))
		}

		if packageInterval.OverlapsAny(occupied) {
			return ErrSlotNotAvailable
		}

		for i, interval := range addonIntervals {
			if interval.OverlapsAny(occupied) {
				return fmt.Errorf("%w: addons[%d]", ErrAddonNotAvailable, i)
			}
		}

		created, err = uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		createdAddons = make([]*domain.AddonBooking, 0, len(req.Addons))
		for i, addon := range req.Addons {
			booking := &domain.AddonBooking{
				ReservationID: created.ID,
				FacilityID:    req.FacilityID,
				AddonID:       addon.AddonID,
				AddonName:     addon.AddonName,
				BookingDate:   req.Date,
				StartTime:     addon.StartTime,
				EndTime:       addonIntervals[i].End,
				Price:         addon.Price,
				Status:        domain.StatusPending,
			}
			createdBooking, err := uc.addonRepo.Create(txCtx, booking)
			if err != nil {
				return fmt.Errorf("%w: failed to create addon booking: %v", ErrInternal, err)
			}
			createdAddons = append(createdAddons, createdBooking)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrAddonNotAvailable) {
			uc.logger.Warn("CreateReservation: slot taken during re-check (facility=%d, date=%s, start=%s)",
				req.FacilityID, req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, err
		}
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d, code=%s, total=%.0f, dp=%.0f",
		created.ID, created.Code, created.TotalAmount, created.DPAmount)

	return &Response{
		Reservation: created,
		Addons:      createdAddons,
	}, nil
}

// checkWithinHours validates that a window starting at start with the
// given duration fits inside [open, close) and returns its end time
func checkWithinHours(start types.TimeString, durationMinutes int, openTime, closeTime types.TimeString) (types.TimeString, error) {
	if start.IsBefore(openTime) {
		return "", fmt.Errorf("%w: starts before opening time %s", ErrOutsideHours, openTime)
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		// crossing midnight never fits a same-day operating window
		return "", fmt.Errorf("%w: %v", ErrOutsideHours, err)
	}

	if end.IsAfter(closeTime) {
		return "", fmt.Errorf("%w: ends after closing time %s", ErrOutsideHours, closeTime)
	}

	return end, nil
}

// roundDownPayment computes the down payment share rounded to the
// nearest thousand rupiah
func roundDownPayment(totalAmount float64) float64 {
	raw := totalAmount * domain.DownPaymentRate
	return math.Round(raw/domain.DownPaymentRounding) * domain.DownPaymentRounding
}

// generateCode produces the externally visible reservation code
func generateCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "RSV-" + id[:10]
}

func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
