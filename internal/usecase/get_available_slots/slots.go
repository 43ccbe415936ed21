package get_available_slots

import (
	"time"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/internal/integrations/studiocatalog"
	"github.com/lensastudio/booking-service/pkg/types"
)

// generateSlotCandidates enumerates candidate start times between the
// operating hours at the studio-wide interval and flags each against the
// occupied ranges.
//
// Pure function: same inputs, same output. The walk starts at opening
// time and stops at the last start whose implied end still fits before
// closing; a slot spilling past closing time is never emitted, partial
// or otherwise. A candidate conflicts with an occupied range only under
// the strict half-open overlap test, so back-to-back bookings are fine.
//
// minStart, when non-nil, marks candidates starting before it as
// unavailable (used for today's already-passed times).
func generateSlotCandidates(
	hours studiocatalog.DaySchedule,
	date time.Time,
	durationMinutes int,
	occupied []domain.OccupiedRange,
	minStart *types.TimeString,
) ([]domain.SlotCandidate, error) {
	// Closed day: empty result, not an error
	if !hours.IsOpen || hours.OpenTime == nil || hours.CloseTime == nil {
		return []domain.SlotCandidate{}, nil
	}

	openTime, err := types.NewTimeStringFromString(*hours.OpenTime)
	if err != nil {
		return nil, err
	}

	closeTime, err := types.NewTimeStringFromString(*hours.CloseTime)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.SlotCandidate, 0)
	start := openTime

	for start.IsBefore(closeTime) {
		// AddMinutes fails when the end would cross midnight; such a
		// slot cannot fit inside any same-day operating window
		slotEnd, err := start.AddMinutes(durationMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		candidate := domain.TimeInterval{Date: date, Start: start, End: slotEnd}

		available := !candidate.OverlapsAny(occupied)
		if available && minStart != nil && start.IsBefore(*minStart) {
			available = false
		}

		candidates = append(candidates, domain.SlotCandidate{
			StartTime:       start,
			EndTime:         slotEnd,
			DurationMinutes: durationMinutes,
			Available:       available,
		})

		start, err = start.AddMinutes(domain.SlotIntervalMinutes)
		if err != nil {
			break
		}
	}

	return candidates, nil
}

// isDateInPast reports whether date falls before today
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
