package reschedule_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/internal/infra/storage/reservation"
	"github.com/lensastudio/booking-service/internal/integrations/studiocatalog"
	"github.com/lensastudio/booking-service/pkg/ptr"
	"github.com/lensastudio/booking-service/pkg/types"
)

var now = time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

type fakeReservationRepo struct {
	byID         map[int64]*domain.Reservation
	onDate       []*domain.Reservation
	gotExcludeID *int64
	updatedID    int64
	updatedDate  time.Time
	updatedStart types.TimeString
	updatedEnd   types.TimeString
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservation.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeReservationRepo) GetByFacilityAndDate(_ context.Context, _ int64, _ time.Time, excludeID *int64) ([]*domain.Reservation, error) {
	f.gotExcludeID = excludeID
	return f.onDate, nil
}

func (f *fakeReservationRepo) UpdateSchedule(_ context.Context, id int64, date time.Time, startTime, endTime types.TimeString) error {
	f.updatedID = id
	f.updatedDate = date
	f.updatedStart = startTime
	f.updatedEnd = endTime

	res := f.byID[id]
	res.ReservationDate = date
	res.StartTime = startTime
	res.EndTime = endTime
	return nil
}

type fakeAddonRepo struct {
	onDate []*domain.AddonBooking
}

func (f *fakeAddonRepo) GetByFacilityAndDate(_ context.Context, _ int64, _ time.Time, _ *int64) ([]*domain.AddonBooking, error) {
	return f.onDate, nil
}

type fakeCatalog struct {
	studio *studiocatalog.Studio
}

func (f *fakeCatalog) GetStudio(_ context.Context, _ int64) (*studiocatalog.Studio, error) {
	return f.studio, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func openCatalog() *fakeCatalog {
	day := studiocatalog.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("09:00"),
		CloseTime: ptr.Ptr("17:00"),
	}
	return &fakeCatalog{
		studio: &studiocatalog.Studio{ID: 1, OperatingHours: studiocatalog.WeekSchedule{
			Monday: day, Tuesday: day, Wednesday: day,
			Thursday: day, Friday: day, Saturday: day, Sunday: day,
		}},
	}
}

func storedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:              7,
		Code:            "RSV-AB12CD34EF",
		UserID:          5,
		StudioID:        1,
		FacilityID:      2,
		ReservationDate: now.AddDate(0, 0, 5),
		StartTime:       "10:00",
		EndTime:         "11:30",
		Status:          domain.StatusConfirmed,
		PaymentStatus:   domain.PaymentPartial,
		TotalAmount:     350000,
		DPAmount:        175000,
		RemainingAmount: 175000,
	}
}

func newTestUseCase(resRepo *fakeReservationRepo, addonRepo *fakeAddonRepo, catalog *fakeCatalog) *UseCase {
	uc := NewUseCase(resRepo, addonRepo, catalog, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestExecute_MovesReservation(t *testing.T) {
	res := storedReservation()
	resRepo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{res.ID: res}}
	uc := newTestUseCase(resRepo, &fakeAddonRepo{}, openCatalog())

	newDate := now.AddDate(0, 0, 6)
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        5,
		ReservationID: 7,
		NewDate:       newDate,
		NewStartTime:  "14:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resRepo.updatedID)
	assert.Equal(t, types.TimeString("14:00"), resRepo.updatedStart)
	// the 90-minute duration carries over
	assert.Equal(t, types.TimeString("15:30"), resRepo.updatedEnd)
	assert.Equal(t, types.TimeString("14:00"), resp.Reservation.StartTime)

	// the overlap re-check excluded the reservation's own ranges
	require.NotNil(t, resRepo.gotExcludeID)
	assert.Equal(t, int64(7), *resRepo.gotExcludeID)
}

func TestExecute_BlockedInsideDeadline(t *testing.T) {
	res := storedReservation()
	res.ReservationDate = now.AddDate(0, 0, 2) // H-2, past the reschedule deadline
	resRepo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{res.ID: res}}
	uc := newTestUseCase(resRepo, &fakeAddonRepo{}, openCatalog())

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        5,
		ReservationID: 7,
		NewDate:       now.AddDate(0, 0, 10),
		NewStartTime:  "14:00",
	})

	var policyErr *domain.PolicyViolationError
	require.ErrorAs(t, err, &policyErr)
	assert.Equal(t, "batas waktu reschedule maksimal H-3 sudah terlewat", policyErr.Message)
	assert.Zero(t, resRepo.updatedID)
}

func TestExecute_BlockedWhenCancelled(t *testing.T) {
	res := storedReservation()
	res.Status = domain.StatusCancelled
	resRepo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{res.ID: res}}
	uc := newTestUseCase(resRepo, &fakeAddonRepo{}, openCatalog())

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        5,
		ReservationID: 7,
		NewDate:       now.AddDate(0, 0, 6),
		NewStartTime:  "14:00",
	})

	var policyErr *domain.PolicyViolationError
	require.ErrorAs(t, err, &policyErr)
}

func TestExecute_ReservationNotFound(t *testing.T) {
	resRepo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{}}
	uc := newTestUseCase(resRepo, &fakeAddonRepo{}, openCatalog())

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        5,
		ReservationID: 404,
		NewDate:       now.AddDate(0, 0, 6),
		NewStartTime:  "14:00",
	})

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_AccessDenied(t *testing.T) {
	res := storedReservation()
	resRepo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{res.ID: res}}
	uc := newTestUseCase(resRepo, &fakeAddonRepo{}, openCatalog())

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        99,
		ReservationID: 7,
		NewDate:       now.AddDate(0, 0, 6),
		NewStartTime:  "14:00",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_NewSlotTaken(t *testing.T) {
	res := storedReservation()
	newDate := now.AddDate(0, 0, 6)
	resRepo := &fakeReservationRepo{
		byID: map[int64]*domain.Reservation{res.ID: res},
		onDate: []*domain.Reservation{
			{ID: 8, ReservationDate: newDate, StartTime: "13:00", EndTime: "15:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(resRepo, &fakeAddonRepo{}, openCatalog())

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        5,
		ReservationID: 7,
		NewDate:       newDate,
		NewStartTime:  "14:00",
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, resRepo.updatedID)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	res := storedReservation()
	resRepo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{res.ID: res}}
	uc := newTestUseCase(resRepo, &fakeAddonRepo{}, openCatalog())

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        5,
		ReservationID: 7,
		NewDate:       now.AddDate(0, 0, 6),
		NewStartTime:  "16:00", // 90 minutes runs past the 17:00 close
	})

	assert.ErrorIs(t, err, ErrOutsideHours)
}

func TestExecute_PastNewDate(t *testing.T) {
	res := storedReservation()
	resRepo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{res.ID: res}}
	uc := newTestUseCase(resRepo, &fakeAddonRepo{}, openCatalog())

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        5,
		ReservationID: 7,
		NewDate:       now.AddDate(0, 0, -1),
		NewStartTime:  "14:00",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
