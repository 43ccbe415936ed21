package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/internal/integrations/studiocatalog"
	"github.com/lensastudio/booking-service/pkg/types"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	gotExcludeID *int64
	err          error
}

func (f *fakeReservationRepo) GetByFacilityAndDate(_ context.Context, _ int64, _ time.Time, excludeID *int64) ([]*domain.Reservation, error) {
	f.gotExcludeID = excludeID
	return f.reservations, f.err
}

type fakeAddonRepo struct {
	bookings []*domain.AddonBooking
	err      error
}

func (f *fakeAddonRepo) GetByFacilityAndDate(_ context.Context, _ int64, _ time.Time, _ *int64) ([]*domain.AddonBooking, error) {
	return f.bookings, f.err
}

type fakeCatalog struct {
	studio      *studiocatalog.Studio
	studioErr   error
	facility    *studiocatalog.Facility
	facilityErr error
}

func (f *fakeCatalog) GetStudio(_ context.Context, _ int64) (*studiocatalog.Studio, error) {
	return f.studio, f.studioErr
}

func (f *fakeCatalog) GetFacility(_ context.Context, _, _ int64) (*studiocatalog.Facility, error) {
	return f.facility, f.facilityErr
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func weekOpen(open, close string) studiocatalog.WeekSchedule {
	day := openHours(open, close)
	return studiocatalog.WeekSchedule{
		Monday: day, Tuesday: day, Wednesday: day,
		Thursday: day, Friday: day, Saturday: day, Sunday: day,
	}
}

func newTestUseCase(resRepo *fakeReservationRepo, addonRepo *fakeAddonRepo, catalog *fakeCatalog, now time.Time) *UseCase {
	uc := NewUseCase(resRepo, addonRepo, catalog, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		StudioID:        1,
		FacilityID:      2,
		Date:            testDay,
		DurationMinutes: 60,
	}
}

func TestExecute_MarksOccupiedSlots(t *testing.T) {
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		{ID: 7, ReservationDate: testDay, StartTime: "10:00", EndTime: "11:30", Status: domain.StatusConfirmed},
	}}
	catalog := &fakeCatalog{
		studio:   &studiocatalog.Studio{ID: 1, OperatingHours: weekOpen("09:00", "17:00")},
		facility: &studiocatalog.Facility{ID: 2, StudioID: 1, IsActive: true},
	}
	uc := newTestUseCase(resRepo, &fakeAddonRepo{}, catalog, testDay.AddDate(0, 0, -1))

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.False(t, resp.Closed)

	bySlot := make(map[types.TimeString]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		bySlot[slot.StartTime] = slot.Available
	}

	assert.True(t, bySlot["09:00"])
	assert.False(t, bySlot["10:00"])
	assert.False(t, bySlot["11:00"])
	assert.True(t, bySlot["11:30"])
}

func TestExecute_AddonBookingsOccupyTheFacility(t *testing.T) {
	addonRepo := &fakeAddonRepo{bookings: []*domain.AddonBooking{
		{ID: 3, ReservationID: 7, BookingDate: testDay, StartTime: "14:00", EndTime: "15:00", Status: domain.StatusConfirmed},
	}}
	catalog := &fakeCatalog{
		studio:   &studiocatalog.Studio{ID: 1, OperatingHours: weekOpen("09:00", "17:00")},
		facility: &studiocatalog.Facility{ID: 2, StudioID: 1, IsActive: true},
	}
	uc := newTestUseCase(&fakeReservationRepo{}, addonRepo, catalog, testDay.AddDate(0, 0, -1))

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	for _, slot := range resp.Slots {
		if slot.StartTime == "14:00" || slot.StartTime == "13:30" || slot.StartTime == "14:30" {
			assert.False(t, slot.Available, "slot %s overlaps the addon booking", slot.StartTime)
		}
	}
}

func TestExecute_PassesExcludeReservationID(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	catalog := &fakeCatalog{
		studio:   &studiocatalog.Studio{ID: 1, OperatingHours: weekOpen("09:00", "17:00")},
		facility: &studiocatalog.Facility{ID: 2, StudioID: 1, IsActive: true},
	}
	uc := newTestUseCase(resRepo, &fakeAddonRepo{}, catalog, testDay.AddDate(0, 0, -1))

	excludeID := int64(42)
	req := validRequest()
	req.ExcludeReservationID = &excludeID

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resRepo.gotExcludeID)
	assert.Equal(t, excludeID, *resRepo.gotExcludeID)
}

func TestExecute_ClosedDay(t *testing.T) {
	week := weekOpen("09:00", "17:00")
	week.Tuesday = studiocatalog.DaySchedule{IsOpen: false} // testDay is a Tuesday
	catalog := &fakeCatalog{
		studio:   &studiocatalog.Studio{ID: 1, OperatingHours: week},
		facility: &studiocatalog.Facility{ID: 2, StudioID: 1, IsActive: true},
	}
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeAddonRepo{}, catalog, testDay.AddDate(0, 0, -1))

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDateHasNoSlots(t *testing.T) {
	catalog := &fakeCatalog{
		studio:   &studiocatalog.Studio{ID: 1, OperatingHours: weekOpen("09:00", "17:00")},
		facility: &studiocatalog.Facility{ID: 2, StudioID: 1, IsActive: true},
	}
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeAddonRepo{}, catalog, testDay.AddDate(0, 0, 1))

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TodayHidesPassedStarts(t *testing.T) {
	catalog := &fakeCatalog{
		studio:   &studiocatalog.Studio{ID: 1, OperatingHours: weekOpen("09:00", "17:00")},
		facility: &studiocatalog.Facility{ID: 2, StudioID: 1, IsActive: true},
	}
	nowAt := time.Date(testDay.Year(), testDay.Month(), testDay.Day(), 11, 15, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeAddonRepo{}, catalog, nowAt)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	for _, slot := range resp.Slots {
		if slot.StartTime.IsBefore("11:15") {
			assert.False(t, slot.Available, "slot %s already started", slot.StartTime)
		} else {
			assert.True(t, slot.Available, "slot %s has not started", slot.StartTime)
		}
	}
}

func TestExecute_StudioNotFound(t *testing.T) {
	catalog := &fakeCatalog{studioErr: studiocatalog.ErrStudioNotFound}
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeAddonRepo{}, catalog, testDay)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrStudioNotFound)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	catalog := &fakeCatalog{
		studio:      &studiocatalog.Studio{ID: 1, OperatingHours: weekOpen("09:00", "17:00")},
		facilityErr: studiocatalog.ErrFacilityNotFound,
	}
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeAddonRepo{}, catalog, testDay)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_FacilityInactive(t *testing.T) {
	catalog := &fakeCatalog{
		studio:   &studiocatalog.Studio{ID: 1, OperatingHours: weekOpen("09:00", "17:00")},
		facility: &studiocatalog.Facility{ID: 2, StudioID: 1, IsActive: false},
	}
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeAddonRepo{}, catalog, testDay)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrFacilityInactive)
}

func TestExecute_InvalidDuration(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeAddonRepo{}, &fakeCatalog{}, testDay)

	req := validRequest()
	req.DurationMinutes = 10 // below the minimum session length

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
