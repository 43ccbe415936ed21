package domain

import "time"

// Slot generation defaults
const (
	// SlotIntervalMinutes is the studio-wide granularity between candidate
	// slot start times.
	SlotIntervalMinutes = 30

	MinDurationMinutes = 15
	MaxDurationMinutes = 480 // 8 hours
)

// Payment and reschedule policy
const (
	// PaymentDeadlineDays is the H-3 rule: payment completion and
	// reschedule are allowed up to and including 3 days before the event.
	PaymentDeadlineDays = 3

	// DownPaymentRate is the DP share of the package price.
	DownPaymentRate = 0.5

	// DownPaymentRounding rounds DP amounts to whole thousands of rupiah.
	DownPaymentRounding = 1000
)

// Auto-cancellation window for unpaid pending reservations.
// The reminders view and the cron auto-cancel job MUST both read these;
// redefining the offsets elsewhere would let a reminder outlive its booking.
const (
	ReminderOffset   = 10 * time.Minute
	AutoCancelOffset = 15 * time.Minute

	// ReminderLookbackHours bounds how far back the reminder scan looks.
	ReminderLookbackHours = 24

	// ReminderGracePeriod keeps just-expired reminders visible to staff.
	ReminderGracePeriod = 5 * time.Minute
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists statuses that free up the occupied time range.
// Used when filtering bookings for availability computation.
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}

// ActiveStatuses lists statuses that keep the time range occupied
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
