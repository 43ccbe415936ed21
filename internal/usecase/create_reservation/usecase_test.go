package create_reservation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/internal/integrations/studiocatalog"
	"github.com/lensastudio/booking-service/pkg/ptr"
	"github.com/lensastudio/booking-service/pkg/types"
)

var testDay = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC) // a Tuesday

type fakeReservationRepo struct {
	existing []*domain.Reservation
	created  *domain.Reservation
	nextID   int64
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	stored := *res
	if f.nextID == 0 {
		f.nextID = 100
	}
	stored.ID = f.nextID
	stored.CreatedAt = testDay
	f.created = &stored
	return &stored, nil
}

func (f *fakeReservationRepo) GetByFacilityAndDate(_ context.Context, _ int64, _ time.Time, _ *int64) ([]*domain.Reservation, error) {
	return f.existing, nil
}

type fakeAddonRepo struct {
	existing []*domain.AddonBooking
	created  []*domain.AddonBooking
}

func (f *fakeAddonRepo) Create(_ context.Context, booking *domain.AddonBooking) (*domain.AddonBooking, error) {
	stored := *booking
	stored.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeAddonRepo) GetByFacilityAndDate(_ context.Context, _ int64, _ time.Time, _ *int64) ([]*domain.AddonBooking, error) {
	return f.existing, nil
}

type fakeCatalog struct {
	studio   *studiocatalog.Studio
	facility *studiocatalog.Facility
}

func (f *fakeCatalog) GetStudio(_ context.Context, _ int64) (*studiocatalog.Studio, error) {
	return f.studio, nil
}

func (f *fakeCatalog) GetFacility(_ context.Context, _, _ int64) (*studiocatalog.Facility, error) {
	return f.facility, nil
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
		facility: &studiocatalog.Facility{ID: 2, StudioID: 1, IsActive: true},
	}
}

func newTestUseCase(resRepo *fakeReservationRepo, addonRepo *fakeAddonRepo, catalog *fakeCatalog, now time.Time) *UseCase {
	uc := NewUseCase(resRepo, addonRepo, catalog, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:          5,
		StudioID:        1,
		FacilityID:      2,
		PackageID:       3,
		PackageName:     "Paket Keluarga",
		PackagePrice:    350000,
		Date:            testDay,
		StartTime:       "10:00",
		DurationMinutes: 90,
		CustomerName:    "Budi Santoso",
		CustomerPhone:   "+628123456789",
	}
}

func TestExecute_CreatesReservation(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	uc := newTestUseCase(resRepo, &fakeAddonRepo{}, openCatalog(), testDay.AddDate(0, 0, -7))

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	res := resp.Reservation
	assert.True(t, strings.HasPrefix(res.Code, "RSV-"))
	assert.Len(t, res.Code, 14)
	assert.Equal(t, types.TimeString("11:30"), res.EndTime)
	assert.Equal(t, domain.StatusPending, res.Status)
	assert.Equal(t, domain.PaymentPending, res.PaymentStatus)
	assert.Equal(t, float64(350000), res.TotalAmount)
	assert.Equal(t, float64(175000), res.DPAmount)
	assert.Equal(t, float64(175000), res.RemainingAmount)
	assert.NotNil(t, resRepo.created)
}

func TestExecute_AddonsFoldIntoAmounts(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	addonRepo := &fakeAddonRepo{}
	uc := newTestUseCase(resRepo, addonRepo, openCatalog(), testDay.AddDate(0, 0, -7))

	req := validRequest()
	req.PackagePrice = 300000
	req.Addons = []AddonRequest{{
		AddonID:         9,
		AddonName:       "Jam Tambahan",
		StartTime:       "11:30",
		DurationMinutes: 60,
		Price:           75000,
	}}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	res := resp.Reservation
	assert.Equal(t, float64(375000), res.TotalAmount)
	// 50% of 375000 is 187500; rounded to the nearest thousand
	assert.Equal(t, float64(188000), res.DPAmount)
	assert.Equal(t, float64(187000), res.RemainingAmount)

	require.Len(t, resp.Addons, 1)
	booking := resp.Addons[0]
	assert.Equal(t, res.ID, booking.ReservationID)
	assert.Equal(t, types.TimeString("12:30"), booking.EndTime)
	assert.Equal(t, domain.StatusPending, booking.Status)
}

func TestExecute_SlotConflict(t *testing.T) {
	resRepo := &fakeReservationRepo{existing: []*domain.Reservation{
		{ID: 1, ReservationDate: testDay, StartTime: "10:30", EndTime: "12:00", Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(resRepo, &fakeAddonRepo{}, openCatalog(), testDay.AddDate(0, 0, -7))

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, resRepo.created)
}

func TestExecute_BackToBackIsNotAConflict(t *testing.T) {
	resRepo := &fakeReservationRepo{existing: []*domain.Reservation{
		{ID: 1, ReservationDate: testDay, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
		{ID: 2, ReservationDate: testDay, StartTime: "11:30", EndTime: "13:00", Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(resRepo, &fakeAddonRepo{}, openCatalog(), testDay.AddDate(0, 0, -7))

	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestExecute_CancelledReservationsDoNotBlock(t *testing.T) {
	resRepo := &fakeReservationRepo{existing: []*domain.Reservation{
		{ID: 1, ReservationDate: testDay, StartTime: "10:00", EndTime: "12:00", Status: domain.StatusCancelled},
	}}
	uc := newTestUseCase(resRepo, &fakeAddonRepo{}, openCatalog(), testDay.AddDate(0, 0, -7))

	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestExecute_AddonConflictBlocksWholeRequest(t *testing.T) {
	resRepo := &fakeReservationRepo{existing: []*domain.Reservation{
		{ID: 1, ReservationDate: testDay, StartTime: "13:00", EndTime: "14:00", Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(resRepo, &fakeAddonRepo{}, openCatalog(), testDay.AddDate(0, 0, -7))

	req := validRequest()
	req.Addons = []AddonRequest{{
		AddonID:         9,
		AddonName:       "Jam Tambahan",
		StartTime:       "13:30",
		DurationMinutes: 60,
		Price:           75000,
	}}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAddonNotAvailable)
	assert.Nil(t, resRepo.created)
}

func TestExecute_AddonMayOverlapOwnPackageWindow(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeAddonRepo{}, openCatalog(), testDay.AddDate(0, 0, -7))

	// package 10:00-11:30, addon 10:30-11:30 runs inside the same session
	req := validRequest()
	req.Addons = []AddonRequest{{
		AddonID:         9,
		AddonName:       "Sesi Tambahan",
		StartTime:       "10:30",
		DurationMinutes: 60,
		Price:           50000,
	}}

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestExecute_AddonsInOneRequestMayNotOverlapEachOther(t *testing.T) {
	resRepo := &fakeReservationRepo{}
	uc := newTestUseCase(resRepo, &fakeAddonRepo{}, openCatalog(), testDay.AddDate(0, 0, -7))

	req := validRequest()
	req.Addons = []AddonRequest{
		{AddonID: 9, AddonName: "Jam Tambahan", StartTime: "12:00", DurationMinutes: 60, Price: 75000},
		{AddonID: 10, AddonName: "Sesi Tambahan", StartTime: "12:30", DurationMinutes: 60, Price: 50000},
	}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resRepo.created)
}

func TestExecute_BackToBackAddonsAllowed(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeAddonRepo{}, openCatalog(), testDay.AddDate(0, 0, -7))

	req := validRequest()
	req.Addons = []AddonRequest{
		{AddonID: 9, AddonName: "Jam Tambahan", StartTime: "11:30", DurationMinutes: 60, Price: 75000},
		{AddonID: 10, AddonName: "Sesi Tambahan", StartTime: "12:30", DurationMinutes: 60, Price: 50000},
	}

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeAddonRepo{}, openCatalog(), testDay.AddDate(0, 0, -7))

	req := validRequest()
	req.StartTime = "16:30" // 90 minutes runs past the 17:00 close

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutsideHours)
}

func TestExecute_ClosedDay(t *testing.T) {
	catalog := openCatalog()
	catalog.studio.OperatingHours.Tuesday = studiocatalog.DaySchedule{IsOpen: false}
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeAddonRepo{}, catalog, testDay.AddDate(0, 0, -7))

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrStudioClosed)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeAddonRepo{}, openCatalog(), testDay.AddDate(0, 0, 1))

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SameDayPassedStart(t *testing.T) {
	nowAt := time.Date(testDay.Year(), testDay.Month(), testDay.Day(), 10, 30, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeAddonRepo{}, openCatalog(), nowAt)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_InactiveFacility(t *testing.T) {
	catalog := openCatalog()
	catalog.facility.IsActive = false
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeAddonRepo{}, catalog, testDay.AddDate(0, 0, -7))

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrFacilityInactive)
}

func TestRoundDownPayment(t *testing.T) {
	cases := []struct {
		total float64
		want  float64
	}{
		{500000, 250000},
		{375000, 188000}, // 187500 rounds up
		{374000, 187000},
		{101000, 51000}, // 50500 rounds up
		{1000, 1000},    // 500 rounds up to the full thousand
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, roundDownPayment(tc.total), "total %.0f", tc.total)
	}
}

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := generateCode()
		require.Len(t, code, 14)
		require.True(t, strings.HasPrefix(code, "RSV-"))
		require.Equal(t, strings.ToUpper(code), code)
		require.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
