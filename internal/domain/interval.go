package domain

import (
	"fmt"
	"time"

	"github.com/lensastudio/booking-service/pkg/types"
)

// RangeSource tags an occupied range with the kind of booking that owns it
type RangeSource string

const (
	RangeSourcePackage RangeSource = "package"
	RangeSourceAddon   RangeSource = "addon"
)

// TimeInterval is a half-open time range [Start, End) on a calendar date,
// in studio-local wall-clock time. Invariant: Start < End.
type TimeInterval struct {
	Date  time.Time
	Start types.TimeString
	End   types.TimeString
}

// NewTimeInterval builds a validated interval. Zero-duration and inverted
// ranges are rejected here so they can never reach the overlap checks.
func NewTimeInterval(date time.Time, start, end types.TimeString) (TimeInterval, error) {
	if err := start.Validate(); err != nil {
		return TimeInterval{}, fmt.Errorf("invalid interval start: %v", err)
	}
	if err := end.Validate(); err != nil {
		return TimeInterval{}, fmt.Errorf("invalid interval end: %v", err)
	}
	if !start.IsBefore(end) {
		return TimeInterval{}, fmt.Errorf("invalid interval: start %s must be before end %s", start, end)
	}
	return TimeInterval{Date: date, Start: start, End: end}, nil
}

// Overlaps reports whether two intervals share any instant.
//
// This is the single source of truth for "conflict" in the whole service.
// Half-open semantics: intervals overlap iff a.Start < b.End AND
// b.Start < a.End, both strict. Back-to-back ranges (a.End == b.Start)
// do not overlap, so a slot ending exactly when another begins is valid.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	if !IsSameDay(i.Date, other.Date) {
		return false
	}
	return i.Start.IsBefore(other.End) && other.Start.IsBefore(i.End)
}

// OccupiedRange is a TimeInterval tagged with its source booking, used for
// overlap checks and for excluding a reservation from its own reschedule.
type OccupiedRange struct {
	TimeInterval
	Source        RangeSource
	ReservationID int64
}

// OverlapsAny reports whether the interval conflicts with any occupied range
func (i TimeInterval) OverlapsAny(ranges []OccupiedRange) bool {
	for _, r := range ranges {
		if i.Overlaps(r.TimeInterval) {
			return true
		}
	}
	return false
}

// CollectOccupiedRanges maps package reservations and addon bookings into
// the shared occupied-range representation. Cancelled entries are skipped;
// entries with unparseable time windows are dropped and counted so the
// caller can log them.
func CollectOccupiedRanges(reservations []*Reservation, addons []*AddonBooking) (ranges []OccupiedRange, dropped int) {
	ranges = make([]OccupiedRange, 0, len(reservations)+len(addons))

	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		interval, err := NewTimeInterval(res.ReservationDate, res.StartTime, res.EndTime)
		if err != nil {
			dropped++
			continue
		}
		ranges = append(ranges, OccupiedRange{
			TimeInterval:  interval,
			Source:        RangeSourcePackage,
			ReservationID: res.ID,
		})
	}

	for _, addon := range addons {
		if !addon.IsActive() {
			continue
		}
		interval, err := NewTimeInterval(addon.BookingDate, addon.StartTime, addon.EndTime)
		if err != nil {
			dropped++
			continue
		}
		ranges = append(ranges, OccupiedRange{
			TimeInterval:  interval,
			Source:        RangeSourceAddon,
			ReservationID: addon.ReservationID,
		})
	}

	return ranges, dropped
}

// IsSameDay reports whether two timestamps fall on the same calendar day
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
