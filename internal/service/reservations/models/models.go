package models

import (
	"errors"
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown reservation status string
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request models

// GetUserReservationsRequest lists a user's reservation history
type GetUserReservationsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetStudioReservationsRequest lists a studio's reservations for staff
type GetStudioReservationsRequest struct {
	StudioID        int64      `json:"studioId"`
	FacilityID      *int64     `json:"facilityId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into the domain filter
func (r *GetStudioReservationsRequest) ToDomainFilter() (domain.StudioReservationsFilter, error) {
	filter := domain.StudioReservationsFilter{
		StudioID:        r.StudioID,
		FacilityID:      r.FacilityID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelReservationRequest cancels a reservation
type CancelReservationRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// CompletePaymentRequest settles the remaining amount of a reservation
type CompletePaymentRequest struct {
	UserID        int64  `json:"userId"`
	PaymentMethod string `json:"paymentMethod"`
}

// Response models

// AddonBookingResponse is one addon booking of a reservation
type AddonBookingResponse struct {
	ID        int64   `json:"id"`
	AddonID   int64   `json:"addonId"`
	AddonName string  `json:"addonName"`
	Date      string  `json:"date"`      // "2026-09-15"
	StartTime string  `json:"startTime"` // "10:00"
	EndTime   string  `json:"endTime"`   // "11:00"
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
}

// PermissionResponse is a date-gated permission with its reason
type PermissionResponse struct {
	Allowed       bool   `json:"allowed"`
	Reason        string `json:"reason,omitempty"`
	DaysRemaining int    `json:"daysRemaining"`
}

// CancellationPolicyResponse previews what cancellation would do to the DP
type CancellationPolicyResponse struct {
	CanCancel bool   `json:"canCancel"`
	DPPolicy  string `json:"dpPolicy,omitempty"`
	Message   string `json:"message"`
}

// DeadlineResponse classifies the urgency of the reservation date
type DeadlineResponse struct {
	DaysRemaining  int    `json:"daysRemaining"`
	IsUrgent       bool   `json:"isUrgent"`
	IsPastDeadline bool   `json:"isPastDeadline"`
	Message        string `json:"message"`
}

// PriorityResponse is the staff triage priority of a reservation
type PriorityResponse struct {
	Priority string `json:"priority"`
	Label    string `json:"label"`
}

// ReservationResponse is the reservation DTO
type ReservationResponse struct {
	ID              int64  `json:"id"`
	Code            string `json:"code"`
	UserID          int64  `json:"userId"`
	StudioID        int64  `json:"studioId"`
	FacilityID      int64  `json:"facilityId"`
	PackageID       int64  `json:"packageId"`
	ReservationDate string `json:"reservationDate"` // "2026-09-15"
	StartTime       string `json:"startTime"`       // "10:00"
	EndTime         string `json:"endTime"`         // "12:00"
	Status          string `json:"status"`

	PaymentStatus   string  `json:"paymentStatus"`
	PaymentMethod   *string `json:"paymentMethod,omitempty"`
	TotalAmount     float64 `json:"totalAmount"`
	DPAmount        float64 `json:"dpAmount"`
	RemainingAmount float64 `json:"remainingAmount"`

	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	PackageName   string  `json:"packageName"`
	Notes         *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationDetailResponse is the reservation with its addons and the
// evaluated policy state for the detail view
type ReservationDetailResponse struct {
	Reservation ReservationResponse        `json:"reservation"`
	Addons      []AddonBookingResponse     `json:"addons"`
	Deadline    DeadlineResponse           `json:"deadline"`
	Payment     PermissionResponse         `json:"paymentCompletion"`
	Reschedule  PermissionResponse         `json:"reschedule"`
	Cancel      CancellationPolicyResponse `json:"cancellation"`
}

// StudioReservationItem is one row of the staff listing
type StudioReservationItem struct {
	Reservation ReservationResponse `json:"reservation"`
	Deadline    DeadlineResponse    `json:"deadline"`
	Priority    PriorityResponse    `json:"priority"`
}

// ReservationListResponse is the user-facing listing
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// StudioReservationListResponse is the staff-facing listing
type StudioReservationListResponse struct {
	Reservations []StudioReservationItem `json:"reservations"`
}

// CancelReservationResponse reports the applied DP policy
type CancelReservationResponse struct {
	DPPolicy string `json:"dpPolicy"`
	Message  string `json:"message"`
}

// Converters

// FromDomainReservation converts the domain model into the DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		Code:               r.Code,
		UserID:             r.UserID,
		StudioID:           r.StudioID,
		FacilityID:         r.FacilityID,
		PackageID:          r.PackageID,
		ReservationDate:    r.ReservationDate.Format(domain.DateFormat),
		StartTime:          r.StartTime.String(),
		EndTime:            r.EndTime.String(),
		Status:             string(r.Status),
		PaymentStatus:      string(r.PaymentStatus),
		PaymentMethod:      r.PaymentMethod,
		TotalAmount:        r.TotalAmount,
		DPAmount:           r.DPAmount,
		RemainingAmount:    r.RemainingAmount,
		CustomerName:       r.CustomerName,
		CustomerPhone:      r.CustomerPhone,
		PackageName:        r.PackageName,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList converts a list of domain models into the DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if converted := FromDomainReservation(r); converted != nil {
			resp.Reservations = append(resp.Reservations, *converted)
		}
	}

	return resp
}

// FromDomainAddonBooking converts the addon booking domain model into the DTO
func FromDomainAddonBooking(a *domain.AddonBooking) *AddonBookingResponse {
	if a == nil {
		return nil
	}

	return &AddonBookingResponse{
		ID:        a.ID,
		AddonID:   a.AddonID,
		AddonName: a.AddonName,
		Date:      a.BookingDate.Format(domain.DateFormat),
		StartTime: a.StartTime.String(),
		EndTime:   a.EndTime.String(),
		Price:     a.Price,
		Status:    string(a.Status),
	}
}

// FromDomainAddonBookingList converts a list of addon bookings into DTOs
func FromDomainAddonBookingList(addons []*domain.AddonBooking) []AddonBookingResponse {
	resp := make([]AddonBookingResponse, 0, len(addons))
	for _, a := range addons {
		if converted := FromDomainAddonBooking(a); converted != nil {
			resp = append(resp, *converted)
		}
	}
	return resp
}

// FromPermissionResult converts the policy evaluation into the DTO
func FromPermissionResult(p domain.PermissionResult) PermissionResponse {
	return PermissionResponse{
		Allowed:       p.Allowed,
		Reason:        p.Reason,
		DaysRemaining: p.DaysRemaining,
	}
}

// FromCancellationResult converts the DP policy evaluation into the DTO
func FromCancellationResult(c domain.CancellationResult) CancellationPolicyResponse {
	return CancellationPolicyResponse{
		CanCancel: c.CanCancel,
		DPPolicy:  string(c.DPPolicy),
		Message:   c.Message,
	}
}

// FromDeadlineInfo converts the deadline classification into the DTO
func FromDeadlineInfo(d domain.DeadlineInfo) DeadlineResponse {
	return DeadlineResponse{
		DaysRemaining:  d.DaysRemaining,
		IsUrgent:       d.IsUrgent,
		IsPastDeadline: d.IsPastDeadline,
		Message:        d.Message,
	}
}

// FromPriorityInfo converts the triage priority into the DTO
func FromPriorityInfo(p domain.PriorityInfo) PriorityResponse {
	return PriorityResponse{
		Priority: string(p.Priority),
		Label:    p.Label,
	}
}

// ToDomainReservationStatus converts a string into a validated status
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	validStatuses := []domain.ReservationStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
