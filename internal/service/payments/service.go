package payments

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/lensastudio/booking-service/internal/domain"
	reservationRepo "github.com/lensastudio/booking-service/internal/infra/storage/reservation"
	"github.com/lensastudio/booking-service/internal/service/payments/models"
)

const orderIDPrefix = "LENSA"

// Service creates Snap payment links and applies gateway notifications to
// the reservation payment state. An invoice covers either the down payment
// or the remaining settlement; the share is encoded in the order id so the
// notification handler knows which transition to apply.
type Service struct {
	reservationRepo ReservationRepository
	snapClient      SnapClient
	serverKey       string
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates the payments service
func NewService(
	reservationRepo ReservationRepository,
	snapClient SnapClient,
	serverKey string,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		snapClient:      snapClient,
		serverKey:       serverKey,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// CreateInvoice creates a Snap transaction for the reservation's down
// payment or remaining settlement and returns the payment link
func (s *Service) CreateInvoice(ctx context.Context, reservationID int64, req *models.CreateInvoiceRequest) (*models.InvoiceResponse, error) {
	s.logger.Info("CreateInvoice: reservation id=%d, user=%d, kind=%s", reservationID, req.UserID, req.Kind)

	if req.Kind != models.KindDownPayment && req.Kind != models.KindSettlement {
		return nil, fmt.Errorf("%w: kind must be %q or %q", ErrInvalidInput, models.KindDownPayment, models.KindSettlement)
	}

	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("CreateInvoice: repository error for reservation id=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: CreateInvoice - repository error: %v", ErrInternal, err)
	}

	if res.UserID != req.UserID {
		s.logger.Warn("CreateInvoice: access denied for user=%d to reservation id=%d", req.UserID, reservationID)
		return nil, ErrAccessDenied
	}

	now := s.timeProvider.Now()

	var amount float64
	var label string
	switch req.Kind {
	case models.KindDownPayment:
		if res.Status != domain.StatusPending || res.PaymentStatus != domain.PaymentPending {
			return nil, domain.NewPolicyViolation("DP hanya dapat dibayar untuk reservasi yang masih menunggu pembayaran")
		}
		amount = res.DPAmount
		label = fmt.Sprintf("DP %s", res.PackageName)
	case models.KindSettlement:
		perm := res.EvaluatePaymentCompletion(now)
		if !perm.Allowed {
			s.logger.Warn("CreateInvoice: reservation id=%d blocked by policy: %s", reservationID, perm.Reason)
			return nil, domain.NewPolicyViolation(perm.Reason)
		}
		amount = res.RemainingAmount
		label = fmt.Sprintf("Pelunasan %s", res.PackageName)
	}

	orderID := fmt.Sprintf("%s-%d-%s-%d", orderIDPrefix, res.ID, req.Kind, now.Unix())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: res.CustomerName,
			Phone: res.CustomerPhone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    res.Code,
				Name:  label,
				Price: int64(amount),
				Qty:   1,
			},
		},
	}

	snapResp, midErr := s.snapClient.CreateTransaction(snapReq)
	if midErr != nil {
		s.logger.Error("CreateInvoice: snap transaction failed for reservation id=%d: %v", reservationID, midErr.Message)
		return nil, fmt.Errorf("%w: %s", ErrGatewayError, midErr.Message)
	}

	s.logger.Info("CreateInvoice: created order=%s, amount=%.0f for reservation id=%d", orderID, amount, reservationID)
	return &models.InvoiceResponse{
		OrderID:     orderID,
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
		Amount:      amount,
	}, nil
}

// HandleNotification applies a Midtrans HTTP notification to the
// reservation payment state. The signature is verified before any write;
// notifications replayed after the state already moved are no-ops.
func (s *Service) HandleNotification(ctx context.Context, payload *models.NotificationPayload) error {
	s.logger.Info("HandleNotification: order=%s, status=%s, fraud=%s",
		payload.OrderID, payload.TransactionStatus, payload.FraudStatus)

	if !s.verifySignature(payload) {
		s.logger.Warn("HandleNotification: invalid signature for order=%s", payload.OrderID)
		return ErrInvalidSignature
	}

	reservationID, kind, err := parseOrderID(payload.OrderID)
	if err != nil {
		s.logger.Warn("HandleNotification: unparseable order=%s: %v", payload.OrderID, err)
		return fmt.Errorf("%w: %v", ErrUnknownOrder, err)
	}

	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrUnknownOrder
		}
		s.logger.Error("HandleNotification: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: HandleNotification - repository error: %v", ErrInternal, err)
	}

	switch payload.TransactionStatus {
	case "capture":
		if payload.FraudStatus != "accept" {
			s.logger.Warn("HandleNotification: capture with fraud=%s for order=%s, ignoring",
				payload.FraudStatus, payload.OrderID)
			return nil
		}
		return s.applySuccessfulPayment(ctx, res, kind, payload.PaymentType)
	case "settlement":
		return s.applySuccessfulPayment(ctx, res, kind, payload.PaymentType)
	case "deny", "cancel", "expire", "failure":
		return s.applyFailedPayment(ctx, res)
	default:
		// pending and the rest carry no state change
		return nil
	}
}

// applySuccessfulPayment moves the payment state forward for a paid order
func (s *Service) applySuccessfulPayment(ctx context.Context, res *domain.Reservation, kind models.PaymentKind, method string) error {
	switch kind {
	case models.KindDownPayment:
		if res.PaymentStatus != domain.PaymentPending && res.PaymentStatus != domain.PaymentFailed {
			s.logger.Info("applySuccessfulPayment: reservation id=%d already past DP (payment=%s), skipping",
				res.ID, res.PaymentStatus)
			return nil
		}
		remaining := res.TotalAmount - res.DPAmount
		if err := s.reservationRepo.UpdatePayment(ctx, res.ID, domain.PaymentPartial, &method, remaining); err != nil {
			return fmt.Errorf("%w: failed to update payment: %v", ErrInternal, err)
		}
	case models.KindSettlement:
		if res.PaymentStatus == domain.PaymentCompleted {
			s.logger.Info("applySuccessfulPayment: reservation id=%d already settled, skipping", res.ID)
			return nil
		}
		if err := s.reservationRepo.UpdatePayment(ctx, res.ID, domain.PaymentCompleted, &method, 0); err != nil {
			return fmt.Errorf("%w: failed to update payment: %v", ErrInternal, err)
		}
	default:
		return fmt.Errorf("%w: unknown payment kind %q", ErrUnknownOrder, kind)
	}

	// Money received pins the slot
	if res.Status == domain.StatusPending {
		if err := s.reservationRepo.UpdateStatus(ctx, res.ID, domain.StatusConfirmed); err != nil {
			return fmt.Errorf("%w: failed to confirm reservation: %v", ErrInternal, err)
		}
	}

	s.logger.Info("applySuccessfulPayment: reservation id=%d, kind=%s applied", res.ID, kind)
	return nil
}

// applyFailedPayment marks the payment failed unless money already arrived
func (s *Service) applyFailedPayment(ctx context.Context, res *domain.Reservation) error {
	if res.PaymentStatus != domain.PaymentPending {
		s.logger.Info("applyFailedPayment: reservation id=%d has payment=%s, skipping", res.ID, res.PaymentStatus)
		return nil
	}

	if err := s.reservationRepo.UpdatePayment(ctx, res.ID, domain.PaymentFailed, nil, res.RemainingAmount); err != nil {
		return fmt.Errorf("%w: failed to update payment: %v", ErrInternal, err)
	}

	s.logger.Info("applyFailedPayment: reservation id=%d marked failed", res.ID)
	return nil
}

// verifySignature checks the Midtrans notification signature:
// sha512(order_id + status_code + gross_amount + server_key)
func (s *Service) verifySignature(payload *models.NotificationPayload) bool {
	raw := payload.OrderID + payload.StatusCode + payload.GrossAmount + s.serverKey
	sum := sha512.Sum512([]byte(raw))
	return hex.EncodeToString(sum[:]) == payload.SignatureKey
}

// parseOrderID extracts the reservation id and payment kind from an order
// id of the form "LENSA-{id}-{kind}-{unix}"
func parseOrderID(orderID string) (int64, models.PaymentKind, error) {
	parts := strings.Split(orderID, "-")
	if len(parts) != 4 || parts[0] != orderIDPrefix {
		return 0, "", fmt.Errorf("unexpected order id format")
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, "", fmt.Errorf("invalid reservation id in order id")
	}

	kind := models.PaymentKind(parts[2])
	if kind != models.KindDownPayment && kind != models.KindSettlement {
		return 0, "", fmt.Errorf("invalid payment kind in order id")
	}

	return id, kind, nil
}
