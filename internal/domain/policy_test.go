package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 9, 10, 14, 30, 0, 0, time.UTC)

func reservationOn(date time.Time) *Reservation {
	return &Reservation{
		ID:              1,
		ReservationDate: date,
		StartTime:       "10:00",
		EndTime:         "12:00",
		Status:          StatusConfirmed,
		PaymentStatus:   PaymentPartial,
		TotalAmount:     500000,
		DPAmount:        250000,
		RemainingAmount: 250000,
	}
}

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, 1, DaysUntil(now.AddDate(0, 0, 1), now))
	assert.Equal(t, -2, DaysUntil(now.AddDate(0, 0, -2), now))

	// independent of time of day: late evening now vs early morning date
	lateNow := time.Date(2026, 9, 10, 23, 50, 0, 0, time.UTC)
	earlyDate := time.Date(2026, 9, 13, 0, 10, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysUntil(earlyDate, lateNow))
}

func TestEvaluatePaymentCompletion(t *testing.T) {
	t.Run("allowed exactly at H-3", func(t *testing.T) {
		res := reservationOn(now.AddDate(0, 0, 3))
		got := res.EvaluatePaymentCompletion(now)
		assert.True(t, got.Allowed)
		assert.Equal(t, 3, got.DaysRemaining)
	})

	t.Run("blocked at H-2", func(t *testing.T) {
		res := reservationOn(now.AddDate(0, 0, 2))
		got := res.EvaluatePaymentCompletion(now)
		assert.False(t, got.Allowed)
		assert.Equal(t, "batas waktu pelunasan maksimal H-3 sudah terlewat", got.Reason)
		assert.Equal(t, 2, got.DaysRemaining)
	})

	t.Run("blocked when already settled", func(t *testing.T) {
		res := reservationOn(now.AddDate(0, 0, 10))
		res.PaymentStatus = PaymentCompleted
		got := res.EvaluatePaymentCompletion(now)
		assert.False(t, got.Allowed)
		assert.Equal(t, "pelunasan sudah dilakukan", got.Reason)
	})

	t.Run("blocked when nothing owed", func(t *testing.T) {
		res := reservationOn(now.AddDate(0, 0, 10))
		res.RemainingAmount = 0
		got := res.EvaluatePaymentCompletion(now)
		assert.False(t, got.Allowed)
		assert.Equal(t, "tidak ada sisa pembayaran", got.Reason)
	})
}

func TestEvaluateReschedule(t *testing.T) {
	t.Run("allowed exactly at H-3", func(t *testing.T) {
		res := reservationOn(now.AddDate(0, 0, 3))
		assert.True(t, res.EvaluateReschedule(now).Allowed)
	})

	t.Run("blocked at H-2", func(t *testing.T) {
		res := reservationOn(now.AddDate(0, 0, 2))
		got := res.EvaluateReschedule(now)
		assert.False(t, got.Allowed)
		assert.Equal(t, "batas waktu reschedule maksimal H-3 sudah terlewat", got.Reason)
	})

	t.Run("blocked for terminal states", func(t *testing.T) {
		res := reservationOn(now.AddDate(0, 0, 10))
		res.Status = StatusCompleted
		assert.Equal(t, "reservasi sudah selesai", res.EvaluateReschedule(now).Reason)

		res.Status = StatusCancelled
		assert.Equal(t, "reservasi sudah dibatalkan", res.EvaluateReschedule(now).Reason)
	})
}

func TestEvaluateCancellation(t *testing.T) {
	cases := []struct {
		name      string
		status    ReservationStatus
		payment   PaymentStatus
		canCancel bool
		dpPolicy  DPPolicy
	}{
		{"pending unpaid refunds", StatusPending, PaymentPending, true, DPRefund},
		{"pending failed payment refunds", StatusPending, PaymentFailed, true, DPRefund},
		{"confirmed with DP forfeits", StatusConfirmed, PaymentPartial, true, DPForfeit},
		{"confirmed fully paid forfeits", StatusConfirmed, PaymentCompleted, true, DPForfeit},
		{"completed cannot cancel", StatusCompleted, PaymentCompleted, false, ""},
		{"cancelled cannot cancel again", StatusCancelled, PaymentPending, false, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := reservationOn(now.AddDate(0, 0, 5))
			res.Status = tc.status
			res.PaymentStatus = tc.payment

			got := res.EvaluateCancellation(now)

			assert.Equal(t, tc.canCancel, got.CanCancel)
			assert.Equal(t, tc.dpPolicy, got.DPPolicy)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestDeadlineInfo(t *testing.T) {
	cases := []struct {
		days    int
		urgent  bool
		past    bool
		message string
	}{
		{-2, true, true, "acara sudah lewat 2 hari"},
		{0, true, false, "acara hari ini"},
		{1, true, false, "acara besok"},
		{3, true, false, "3 hari menuju acara"},
		{7, false, false, "7 hari menuju acara"},
	}

	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			res := reservationOn(now.AddDate(0, 0, tc.days))
			got := res.DeadlineInfo(now)

			assert.Equal(t, tc.days, got.DaysRemaining)
			assert.Equal(t, tc.urgent, got.IsUrgent)
			assert.Equal(t, tc.past, got.IsPastDeadline)
			assert.Equal(t, tc.message, got.Message)
		})
	}
}

func TestEvaluatePriority(t *testing.T) {
	cases := []struct {
		name      string
		days      int
		remaining float64
		want      Priority
		label     string
	}{
		{"two days out is urgent", 2, 250000, PriorityUrgent, "mendesak"},
		{"H-3 with balance is high", 3, 250000, PriorityHigh, "tinggi"},
		{"H-3 fully paid is medium", 3, 0, PriorityMedium, "sedang"},
		{"a week out is medium", 7, 250000, PriorityMedium, "sedang"},
		{"two weeks out is low", 14, 250000, PriorityLow, "rendah"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := reservationOn(now.AddDate(0, 0, tc.days))
			res.RemainingAmount = tc.remaining

			got := res.EvaluatePriority(now)

			assert.Equal(t, tc.want, got.Priority)
			assert.Equal(t, tc.label, got.Label)
		})
	}
}

func TestReminderWindow(t *testing.T) {
	createdAt := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	window := NewReminderWindow(createdAt)

	assert.Equal(t, createdAt.Add(10*time.Minute), window.RemindAt)
	assert.Equal(t, createdAt.Add(15*time.Minute), window.CancelAt)

	t.Run("before reminder moment", func(t *testing.T) {
		at := createdAt.Add(9 * time.Minute)
		assert.False(t, window.ShouldRemind(at))
		assert.False(t, window.IsExpired(at))
	})

	t.Run("reminder becomes active at exactly ten minutes", func(t *testing.T) {
		at := createdAt.Add(10 * time.Minute)
		assert.True(t, window.ShouldRemind(at))
	})

	t.Run("active at twelve minutes with countdown", func(t *testing.T) {
		at := createdAt.Add(12 * time.Minute)
		assert.True(t, window.ShouldRemind(at))
		assert.Equal(t, "3 menit 0 detik", window.Countdown(at))
	})

	t.Run("countdown includes seconds", func(t *testing.T) {
		at := createdAt.Add(13*time.Minute + 15*time.Second)
		assert.Equal(t, "1 menit 45 detik", window.Countdown(at))
	})

	t.Run("expired at exactly fifteen minutes", func(t *testing.T) {
		at := createdAt.Add(15 * time.Minute)
		assert.False(t, window.ShouldRemind(at))
		assert.True(t, window.IsExpired(at))
		assert.Equal(t, "Expired", window.Countdown(at))
	})
}

func TestReminderWindow_Monotonic(t *testing.T) {
	window := NewReminderWindow(time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC))

	// once expired, later instants never flip back to active
	expiredSince := -1
	for minutes := 0; minutes <= 30; minutes++ {
		at := window.RemindAt.Add(time.Duration(minutes-10) * time.Minute)
		if window.IsExpired(at) {
			if expiredSince == -1 {
				expiredSince = minutes
			}
			assert.False(t, window.ShouldRemind(at))
		} else if expiredSince != -1 {
			t.Fatalf("window flipped back to non-expired at minute %d", minutes)
		}
	}
	assert.NotEqual(t, -1, expiredSince)
}
