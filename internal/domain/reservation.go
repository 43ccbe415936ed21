package domain

import (
	"time"

	"github.com/lensastudio/booking-service/pkg/types"
)

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// PaymentStatus represents the payment state of a reservation,
// tracked independently of the reservation status
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPartial   PaymentStatus = "partial"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Reservation represents a photo session booking in the system
type Reservation struct {
	ID              int64
	Code            string // externally visible reservation code
	UserID          int64
	StudioID        int64
	FacilityID      int64
	PackageID       int64
	ReservationDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	Status          ReservationStatus

	PaymentStatus   PaymentStatus
	PaymentMethod   *string
	TotalAmount     float64
	DPAmount        float64
	RemainingAmount float64

	// Denormalized data for history
	CustomerName  string
	CustomerPhone string
	PackageName   string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its time range
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsFinished returns true if the reservation reached a terminal state
func (r *Reservation) IsFinished() bool {
	return r.Status == StatusCompleted || r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// HasReceivedMoney returns true if any payment has been collected
func (r *Reservation) HasReceivedMoney() bool {
	return r.PaymentStatus == PaymentPartial || r.PaymentStatus == PaymentCompleted
}

// Interval returns the occupied time range of the reservation
func (r *Reservation) Interval() TimeInterval {
	return TimeInterval{
		Date:  r.ReservationDate,
		Start: r.StartTime,
		End:   r.EndTime,
	}
}

// StudioReservationsFilter filters reservation listings for staff views
type StudioReservationsFilter struct {
	StudioID        int64
	FacilityID      *int64             // optional, nil = all facilities
	StartDate       *time.Time         // optional period start
	EndDate         *time.Time         // optional period end
	Status          *ReservationStatus // optional status filter
	IncludeInactive bool               // include cancelled reservations
}
