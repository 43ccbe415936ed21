package domain

import (
	"fmt"
	"time"
)

// Date-relative business rules for reservations. All functions here are
// pure in (reservation, now): the current time is always an explicit
// parameter, defaulted from the system clock only at the outermost edge.

// DPPolicy describes what happens to the down payment on cancellation
type DPPolicy string

const (
	DPRefund  DPPolicy = "refund"
	DPForfeit DPPolicy = "forfeit"
)

// PermissionResult is the outcome of a date-gated permission check
type PermissionResult struct {
	Allowed       bool
	Reason        string
	DaysRemaining int
}

// CancellationResult is the outcome of the cancellation policy check
type CancellationResult struct {
	CanCancel bool
	DPPolicy  DPPolicy
	Message   string
}

// DeadlineInfo classifies how urgent a reservation's payment deadline is
type DeadlineInfo struct {
	DaysRemaining  int
	IsUrgent       bool
	IsPastDeadline bool
	Message        string
}

// Priority is the staff-facing triage ordering of a reservation.
// It never gates any action.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PriorityInfo pairs a priority with its display label
type PriorityInfo struct {
	Priority Priority
	Label    string
}

// DaysUntil returns the whole calendar days from now until date, comparing
// midnights so the result is independent of the time of day. Negative for
// past dates. All deadline rules are expressed through this integer.
func DaysUntil(date, now time.Time) int {
	d := atMidnight(date)
	n := atMidnight(now)
	return int(d.Sub(n) / (24 * time.Hour))
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EvaluatePaymentCompletion decides whether the remaining amount can still
// be paid. Blocked once past the H-3 deadline, when already settled, or
// when nothing is owed.
func (r *Reservation) EvaluatePaymentCompletion(now time.Time) PermissionResult {
	days := DaysUntil(r.ReservationDate, now)

	if r.PaymentStatus == PaymentCompleted {
		return PermissionResult{
			Allowed:       false,
			Reason:        "pelunasan sudah dilakukan",
			DaysRemaining: days,
		}
	}

	if days < PaymentDeadlineDays {
		return PermissionResult{
			Allowed:       false,
			Reason:        "batas waktu pelunasan maksimal H-3 sudah terlewat",
			DaysRemaining: days,
		}
	}

	if r.RemainingAmount <= 0 {
		return PermissionResult{
			Allowed:       false,
			Reason:        "tidak ada sisa pembayaran",
			DaysRemaining: days,
		}
	}

	return PermissionResult{Allowed: true, DaysRemaining: days}
}

// EvaluateReschedule decides whether the reservation may be moved to a new
// date/time. Uses the same H-3 threshold and the same DaysUntil computation
// as the payment rule.
func (r *Reservation) EvaluateReschedule(now time.Time) PermissionResult {
	days := DaysUntil(r.ReservationDate, now)

	if r.Status == StatusCompleted {
		return PermissionResult{
			Allowed:       false,
			Reason:        "reservasi sudah selesai",
			DaysRemaining: days,
		}
	}

	if r.Status == StatusCancelled {
		return PermissionResult{
			Allowed:       false,
			Reason:        "reservasi sudah dibatalkan",
			DaysRemaining: days,
		}
	}

	if days < PaymentDeadlineDays {
		return PermissionResult{
			Allowed:       false,
			Reason:        "batas waktu reschedule maksimal H-3 sudah terlewat",
			DaysRemaining: days,
		}
	}

	return PermissionResult{Allowed: true, DaysRemaining: days}
}

// EvaluateCancellation applies the DP policy: any money already received is
// forfeited on cancellation, otherwise there is nothing to forfeit and the
// DP is treated as refunded. Every cancellation path must enforce this.
func (r *Reservation) EvaluateCancellation(now time.Time) CancellationResult {
	if r.Status == StatusCompleted {
		return CancellationResult{
			CanCancel: false,
			Message:   "reservasi sudah selesai dan tidak dapat dibatalkan",
		}
	}

	if r.Status == StatusCancelled {
		return CancellationResult{
			CanCancel: false,
			Message:   "reservasi sudah dibatalkan",
		}
	}

	if r.HasReceivedMoney() {
		return CancellationResult{
			CanCancel: true,
			DPPolicy:  DPForfeit,
			Message:   "reservasi dapat dibatalkan, DP hangus sesuai kebijakan",
		}
	}

	return CancellationResult{
		CanCancel: true,
		DPPolicy:  DPRefund,
		Message:   "reservasi dapat dibatalkan, belum ada pembayaran yang diterima",
	}
}

// DeadlineInfo classifies the urgency of the reservation date relative to
// now. IsPastDeadline is true only for dates already in the past.
func (r *Reservation) DeadlineInfo(now time.Time) DeadlineInfo {
	days := DaysUntil(r.ReservationDate, now)

	switch {
	case days < 0:
		return DeadlineInfo{
			DaysRemaining:  days,
			IsUrgent:       true,
			IsPastDeadline: true,
			Message:        fmt.Sprintf("acara sudah lewat %d hari", -days),
		}
	case days == 0:
		return DeadlineInfo{DaysRemaining: days, IsUrgent: true, Message: "acara hari ini"}
	case days == 1:
		return DeadlineInfo{DaysRemaining: days, IsUrgent: true, Message: "acara besok"}
	case days <= PaymentDeadlineDays:
		return DeadlineInfo{
			DaysRemaining: days,
			IsUrgent:      true,
			Message:       fmt.Sprintf("%d hari menuju acara", days),
		}
	default:
		return DeadlineInfo{
			DaysRemaining: days,
			Message:       fmt.Sprintf("%d hari menuju acara", days),
		}
	}
}

// EvaluatePriority orders reservations for staff triage views
func (r *Reservation) EvaluatePriority(now time.Time) PriorityInfo {
	days := DaysUntil(r.ReservationDate, now)

	switch {
	case days <= 2:
		return PriorityInfo{Priority: PriorityUrgent, Label: "mendesak"}
	case days == PaymentDeadlineDays && r.RemainingAmount > 0:
		return PriorityInfo{Priority: PriorityHigh, Label: "tinggi"}
	case days <= 7:
		return PriorityInfo{Priority: PriorityMedium, Label: "sedang"}
	default:
		return PriorityInfo{Priority: PriorityLow, Label: "rendah"}
	}
}

// ReminderWindow is the auto-cancellation window derived from a
// reservation's creation time: a reminder becomes active 10 minutes after
// creation and the booking is auto-cancelled at 15 minutes.
type ReminderWindow struct {
	RemindAt time.Time
	CancelAt time.Time
}

// NewReminderWindow derives the window from the creation timestamp
func NewReminderWindow(createdAt time.Time) ReminderWindow {
	return ReminderWindow{
		RemindAt: createdAt.Add(ReminderOffset),
		CancelAt: createdAt.Add(AutoCancelOffset),
	}
}

// ShouldRemind reports whether the reminder is active: at or past RemindAt
// and strictly before CancelAt. Monotonic in now.
func (w ReminderWindow) ShouldRemind(now time.Time) bool {
	return !now.Before(w.RemindAt) && now.Before(w.CancelAt)
}

// IsExpired reports whether the auto-cancellation moment has passed
func (w ReminderWindow) IsExpired(now time.Time) bool {
	return !now.Before(w.CancelAt)
}

// Countdown renders the time left before auto-cancellation as
// "{minutes} menit {seconds} detik", or "Expired" once past CancelAt.
func (w ReminderWindow) Countdown(now time.Time) string {
	if w.IsExpired(now) {
		return "Expired"
	}
	remaining := w.CancelAt.Sub(now)
	minutes := int(remaining / time.Minute)
	seconds := int(remaining%time.Minute) / int(time.Second)
	return fmt.Sprintf("%d menit %d detik", minutes, seconds)
}
