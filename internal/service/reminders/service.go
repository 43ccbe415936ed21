package reminders

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/internal/integrations/whatsapp"
	"github.com/lensastudio/booking-service/internal/service/reminders/models"
)

// Service builds the staff payment-reminder dashboard: unpaid reservations
// whose reminder window is active, each with a live countdown to
// auto-cancellation and a prefilled WhatsApp link.
type Service struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates the reminders service
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetActiveReminders returns the reminders for a studio, soonest
// auto-cancellation first. Reservations past their cancellation moment
// stay listed as "Expired" for a short grace period so staff see what the
// auto-cancel job is about to sweep.
func (s *Service) GetActiveReminders(ctx context.Context, studioID int64) (*models.ReminderListResponse, error) {
	if studioID <= 0 {
		return nil, fmt.Errorf("%w: studioID must be positive", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	since := now.Add(-time.Duration(domain.ReminderLookbackHours) * time.Hour)

	reservations, err := s.reservationRepo.GetPendingPaymentSince(ctx, studioID, since)
	if err != nil {
		s.logger.Error("GetActiveReminders: repository error for studio=%d: %v", studioID, err)
		return nil, fmt.Errorf("%w: GetActiveReminders - repository error: %v", ErrInternal, err)
	}

	items := make([]models.ReminderItem, 0, len(reservations))
	for _, res := range reservations {
		window := domain.NewReminderWindow(res.CreatedAt)

		expired := window.IsExpired(now)
		if expired && now.After(window.CancelAt.Add(domain.ReminderGracePeriod)) {
			continue
		}
		if !expired && !window.ShouldRemind(now) {
			continue
		}

		items = append(items, models.ReminderItem{
			ReservationID:   res.ID,
			ReservationCode: res.Code,
			CustomerName:    res.CustomerName,
			CustomerPhone:   res.CustomerPhone,
			PackageName:     res.PackageName,
			ReservationDate: res.ReservationDate.Format(domain.DateFormat),
			StartTime:       res.StartTime.String(),
			DPAmount:        res.DPAmount,
			CreatedAt:       res.CreatedAt,
			RemindAt:        window.RemindAt,
			CancelAt:        window.CancelAt,
			Countdown:       window.Countdown(now),
			Expired:         expired,
			WhatsAppLink:    whatsapp.Link(res.CustomerPhone, reminderMessage(res, window, now)),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CancelAt.Before(items[j].CancelAt)
	})

	s.logger.Info("GetActiveReminders: %d reminders for studio=%d (%d candidates)", len(items), studioID, len(reservations))
	return &models.ReminderListResponse{Reminders: items}, nil
}

// reminderMessage builds the prefilled WhatsApp text for one reservation
func reminderMessage(res *domain.Reservation, window domain.ReminderWindow, now time.Time) string {
	return fmt.Sprintf(
		"Halo %s, reservasi %s (%s, %s %s) menunggu pembayaran DP sebesar Rp%.0f. "+
			"Mohon selesaikan pembayaran dalam %s atau reservasi akan dibatalkan otomatis.",
		res.CustomerName,
		res.Code,
		res.PackageName,
		res.ReservationDate.Format(domain.DateFormat),
		res.StartTime.String(),
		res.DPAmount,
		window.Countdown(now),
	)
}
