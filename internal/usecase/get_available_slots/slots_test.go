package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/internal/integrations/studiocatalog"
	"github.com/lensastudio/booking-service/pkg/ptr"
	"github.com/lensastudio/booking-service/pkg/types"
)

var testDay = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func openHours(open, close string) studiocatalog.DaySchedule {
	return studiocatalog.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr(open),
		CloseTime: ptr.Ptr(close),
	}
}

func occupiedRange(t *testing.T, start, end string) domain.OccupiedRange {
	t.Helper()
	iv, err := domain.NewTimeInterval(testDay, types.TimeString(start), types.TimeString(end))
	require.NoError(t, err)
	return domain.OccupiedRange{TimeInterval: iv, Source: domain.RangeSourcePackage, ReservationID: 1}
}

func TestGenerateSlotCandidates_FullDay(t *testing.T) {
	slots, err := generateSlotCandidates(openHours("09:00", "17:00"), testDay, 60, nil, nil)

	require.NoError(t, err)
	// starts every 30 minutes from 09:00; the last 60-minute slot that
	// still ends by 17:00 starts at 16:00
	require.Len(t, slots, 15)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), slots[0].EndTime)
	assert.Equal(t, types.TimeString("16:00"), slots[14].StartTime)
	assert.Equal(t, types.TimeString("17:00"), slots[14].EndTime)

	for _, slot := range slots {
		assert.True(t, slot.Available)
		assert.Equal(t, 60, slot.DurationMinutes)
	}
}

func TestGenerateSlotCandidates_MarksConflicts(t *testing.T) {
	occupied := []domain.OccupiedRange{occupiedRange(t, "10:00", "11:30")}

	slots, err := generateSlotCandidates(openHours("09:00", "17:00"), testDay, 60, occupied, nil)

	require.NoError(t, err)

	bySlot := make(map[types.TimeString]bool, len(slots))
	for _, slot := range slots {
		bySlot[slot.StartTime] = slot.Available
	}

	// 09:00-10:00 ends exactly when the booking starts: available
	assert.True(t, bySlot["09:00"])
	// 09:30, 10:00, 10:30, 11:00 overlap the 10:00-11:30 booking
	assert.False(t, bySlot["09:30"])
	assert.False(t, bySlot["10:00"])
	assert.False(t, bySlot["10:30"])
	assert.False(t, bySlot["11:00"])
	// 11:30 starts exactly when the booking ends: available
	assert.True(t, bySlot["11:30"])
}

func TestGenerateSlotCandidates_SlotCountBound(t *testing.T) {
	// slot count never exceeds (window - duration) / interval + 1
	slots, err := generateSlotCandidates(openHours("09:00", "12:00"), testDay, 90, nil, nil)

	require.NoError(t, err)
	assert.Len(t, slots, 4) // 09:00, 09:30, 10:00, 10:30
	assert.Equal(t, types.TimeString("10:30"), slots[3].StartTime)
}

func TestGenerateSlotCandidates_DurationLongerThanWindow(t *testing.T) {
	slots, err := generateSlotCandidates(openHours("09:00", "10:00"), testDay, 120, nil, nil)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlotCandidates_ClosedDay(t *testing.T) {
	slots, err := generateSlotCandidates(studiocatalog.DaySchedule{IsOpen: false}, testDay, 60, nil, nil)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlotCandidates_MinStartMarksPassedSlots(t *testing.T) {
	minStart := ptr.Ptr(types.TimeString("11:15"))

	slots, err := generateSlotCandidates(openHours("09:00", "13:00"), testDay, 60, nil, minStart)

	require.NoError(t, err)

	for _, slot := range slots {
		if slot.StartTime.IsBefore(*minStart) {
			assert.False(t, slot.Available, "slot %s already started", slot.StartTime)
		} else {
			assert.True(t, slot.Available, "slot %s is in the future", slot.StartTime)
		}
	}
}

func TestGenerateSlotCandidates_LateWindowNearMidnight(t *testing.T) {
	// 23:30 + 60min would cross midnight; the walk stops instead of failing
	slots, err := generateSlotCandidates(openHours("22:00", "23:59"), testDay, 60, nil, nil)

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("22:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("22:30"), slots[1].StartTime)
}

func TestIsDateInPast(t *testing.T) {
	nowAt := time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)

	assert.True(t, isDateInPast(nowAt.AddDate(0, 0, -1), nowAt))
	// same day is not past even though the clock moved on
	assert.False(t, isDateInPast(testDay, nowAt))
	assert.False(t, isDateInPast(nowAt.AddDate(0, 0, 1), nowAt))
}
