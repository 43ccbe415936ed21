package reservations

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/lensastudio/booking-service/internal/domain"
	reservationRepo "github.com/lensastudio/booking-service/internal/infra/storage/reservation"
	"github.com/lensastudio/booking-service/internal/service/reservations/models"
)

// Service covers the read and lifecycle operations of reservations:
// detail views with evaluated policy state, listings, cancellation with
// the DP policy applied, and manual payment completion.
type Service struct {
	reservationRepo ReservationRepository
	addonRepo       AddonBookingRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates the reservations service
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

// GetByID returns the reservation detail with its addons and the policy
// evaluations the detail page renders (deadline, payment, reschedule,
// cancellation). Owners only.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationDetailResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	res, err := s.getOwned(ctx, id, userID, "GetByID")
	if err != nil {
		return nil, err
	}

	addons, err := s.addonRepo.GetByReservationID(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to get addon bookings for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	return &models.ReservationDetailResponse{
		Reservation: *models.FromDomainReservation(res),
		Addons:      models.FromDomainAddonBookingList(addons),
		Deadline:    models.FromDeadlineInfo(res.DeadlineInfo(now)),
		Payment:     models.FromPermissionResult(res.EvaluatePaymentCompletion(now)),
		Reschedule:  models.FromPermissionResult(res.EvaluateReschedule(now)),
		Cancel:      models.FromCancellationResult(res.EvaluateCancellation(now)),
	}, nil
}

// GetUserReservations returns the user's reservation history, optionally
// filtered by status
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: fetched %d reservations for user=%d", len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// GetStudioReservations returns the studio's reservations for staff,
// each annotated with its deadline urgency and triage priority, ordered
// most urgent first
func (s *Service) GetStudioReservations(ctx context.Context, req *models.GetStudioReservationsRequest) (*models.StudioReservationListResponse, error) {
	s.logger.Info("GetStudioReservations: fetching reservations for studio=%d", req.StudioID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetStudioReservations: invalid filter for studio=%d: %v", req.StudioID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByStudioWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetStudioReservations: repository error for studio=%d: %v", req.StudioID, err)
		return nil, fmt.Errorf("%w: GetStudioReservations - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	items := make([]models.StudioReservationItem, 0, len(reservations))
	for _, res := range reservations {
		items = append(items, models.StudioReservationItem{
			Reservation: *models.FromDomainReservation(res),
			Deadline:    models.FromDeadlineInfo(res.DeadlineInfo(now)),
			Priority:    models.FromPriorityInfo(res.EvaluatePriority(now)),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		pi := priorityRank(items[i].Priority.Priority)
		pj := priorityRank(items[j].Priority.Priority)
		if pi != pj {
			return pi < pj
		}
		if items[i].Reservation.ReservationDate != items[j].Reservation.ReservationDate {
			return items[i].Reservation.ReservationDate < items[j].Reservation.ReservationDate
		}
		return items[i].Reservation.StartTime < items[j].Reservation.StartTime
	})

	s.logger.Info("GetStudioReservations: fetched %d reservations for studio=%d", len(items), req.StudioID)
	return &models.StudioReservationListResponse{Reservations: items}, nil
}

// Cancel cancels a reservation under the DP policy: money already received
// is forfeited, otherwise there is nothing to forfeit. Addon bookings are
// cancelled in the same transaction so their time ranges free up together.
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) (*models.CancelReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellationReason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	res, err := s.getOwned(ctx, reservationID, req.UserID, "Cancel")
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()

	policy := res.EvaluateCancellation(now)
	if !policy.CanCancel {
		s.logger.Warn("Cancel: reservation id=%d blocked by policy: %s", reservationID, policy.Message)
		return nil, domain.NewPolicyViolation(policy.Message)
	}

	// Forfeited money keeps its payment status; with nothing received the
	// payment status stays untouched as well
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.reservationRepo.Cancel(txCtx, reservationID, req.CancellationReason, res.PaymentStatus); err != nil {
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
		if err := s.addonRepo.CancelByReservationID(txCtx, reservationID); err != nil {
			return fmt.Errorf("%w: Cancel - failed to cancel addon bookings: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Cancel: transaction failed for reservation id=%d: %v", reservationID, err)
		return nil, err
	}

	s.logger.Info("Cancel: cancelled reservation id=%d, dpPolicy=%s", reservationID, policy.DPPolicy)
	return &models.CancelReservationResponse{
		DPPolicy: string(policy.DPPolicy),
		Message:  policy.Message,
	}, nil
}

// CompletePayment settles the remaining amount manually (bank transfer or
// cash confirmed by staff). Blocked past the H-3 deadline.
func (s *Service) CompletePayment(ctx context.Context, reservationID int64, req *models.CompletePaymentRequest) (*models.ReservationResponse, error) {
	s.logger.Info("CompletePayment: reservation id=%d by user=%d, method=%s",
		reservationID, req.UserID, req.PaymentMethod)

	if req.PaymentMethod == "" {
		return nil, fmt.Errorf("%w: paymentMethod is required", ErrInvalidInput)
	}

	res, err := s.getOwned(ctx, reservationID, req.UserID, "CompletePayment")
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()

	perm := res.EvaluatePaymentCompletion(now)
	if !perm.Allowed {
		s.logger.Warn("CompletePayment: reservation id=%d blocked by policy: %s", reservationID, perm.Reason)
		return nil, domain.NewPolicyViolation(perm.Reason)
	}

	if err := s.reservationRepo.UpdatePayment(ctx, reservationID, domain.PaymentCompleted, &req.PaymentMethod, 0); err != nil {
		s.logger.Error("CompletePayment: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: CompletePayment - repository error: %v", ErrInternal, err)
	}

	updated, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		s.logger.Error("CompletePayment: failed to re-read reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: CompletePayment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CompletePayment: reservation id=%d settled", reservationID)
	return models.FromDomainReservation(updated), nil
}

// getOwned fetches a reservation and checks the requester owns it
func (s *Service) getOwned(ctx context.Context, id int64, userID int64, op string) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if res.UserID != userID {
		s.logger.Warn("%s: access denied for user=%d to reservation id=%d", op, userID, id)
		return nil, ErrAccessDenied
	}

	return res, nil
}

// priorityRank orders priorities for the staff listing, most urgent first
func priorityRank(p string) int {
	switch domain.Priority(p) {
	case domain.PriorityUrgent:
		return 0
	case domain.PriorityHigh:
		return 1
	case domain.PriorityMedium:
		return 2
	default:
		return 3
	}
}
