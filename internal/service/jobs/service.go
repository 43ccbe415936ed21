package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/pkg/types"
)

const autoCancelReason = "dibatalkan otomatis: pembayaran DP tidak diterima dalam batas waktu"

// Service holds the cron-driven maintenance jobs: auto-cancelling unpaid
// reservations past their payment window and completing reservations whose
// session already ended.
type Service struct {
	reservationRepo ReservationRepository
	addonRepo       AddonBookingRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates the jobs service
func NewService(
	reservationRepo ReservationRepository,
	addonRepo AddonBookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		addonRepo:       addonRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// AutoCancelExpiredReservations cancels pending reservations whose DP never
// arrived within the auto-cancel window. Each reservation is cancelled in
// its own transaction together with its addon bookings; one failure does
// not block the rest of the sweep.
func (s *Service) AutoCancelExpiredReservations(ctx context.Context) {
	now := s.timeProvider.Now()
	cutoff := now.Add(-domain.AutoCancelOffset)

	expired, err := s.reservationRepo.GetExpiredPending(ctx, cutoff)
	if err != nil {
		s.logger.Error("AutoCancelExpiredReservations: failed to fetch expired reservations: %v", err)
		return
	}

	if len(expired) == 0 {
		return
	}

	s.logger.Info("AutoCancelExpiredReservations: sweeping %d expired reservations", len(expired))

	cancelled := 0
	for _, res := range expired {
		err := s.txManager.Do(ctx, func(txCtx context.Context) error {
			if err := s.reservationRepo.Cancel(txCtx, res.ID, autoCancelReason, res.PaymentStatus); err != nil {
				return fmt.Errorf("cancel reservation: %w", err)
			}
			if err := s.addonRepo.CancelByReservationID(txCtx, res.ID); err != nil {
				return fmt.Errorf("cancel addon bookings: %w", err)
			}
			return nil
		})
		if err != nil {
			s.logger.Error("AutoCancelExpiredReservations: failed to cancel reservation id=%d: %v", res.ID, err)
			continue
		}
		cancelled++
		s.logger.Info("AutoCancelExpiredReservations: cancelled reservation id=%d, code=%s (created %s)",
			res.ID, res.Code, res.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	s.logger.Info("AutoCancelExpiredReservations: cancelled %d of %d", cancelled, len(expired))
}

// CompletePastReservations marks confirmed reservations whose end time has
// passed as completed
func (s *Service) CompletePastReservations(ctx context.Context) {
	now := s.timeProvider.Now()
	nowTime := types.NewTimeString(now)

	// reservation_date is a DATE column; the bound must be the bare date or
	// today's rows slip into the strictly-before branch and sessions that
	// have not ended yet get completed
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	past, err := s.reservationRepo.GetConfirmedPastEndTime(ctx, today, nowTime)
	if err != nil {
		s.logger.Error("CompletePastReservations: failed to fetch past reservations: %v", err)
		return
	}

	if len(past) == 0 {
		return
	}

	completed := 0
	for _, res := range past {
		if err := s.reservationRepo.UpdateStatus(ctx, res.ID, domain.StatusCompleted); err != nil {
			s.logger.Error("CompletePastReservations: failed to complete reservation id=%d: %v", res.ID, err)
			continue
		}
		completed++
	}

	s.logger.Info("CompletePastReservations: completed %d of %d", completed, len(past))
}
