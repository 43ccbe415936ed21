package addonbooking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/pkg/dbmetrics"
	"github.com/lensastudio/booking-service/pkg/psqlbuilder"
)

// Reuse the dbmetrics executor interface for database access
type DBExecutor = dbmetrics.DBExecutor

var addonColumns = []string{
	"id",
	"reservation_id",
	"facility_id",
	"addon_id",
	"addon_name",
	"booking_date",
	"start_time",
	"end_time",
	"price",
	"status",
	"created_at",
	"updated_at",
}

// Repository is the postgres repository for addon time bookings
type Repository struct {
	db DBExecutor
}

// NewRepository creates an addon booking repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new addon booking. Participates in the caller's
// transaction when one is active in the context.
func (r *Repository) Create(ctx context.Context, booking *domain.AddonBooking) (*domain.AddonBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("addon_bookings").
		Columns(
			"reservation_id",
			"facility_id",
			"addon_id",
			"addon_name",
			"booking_date",
			"start_time",
			"end_time",
			"price",
			"status",
		).
		Values(
			booking.ReservationID,
			booking.FacilityID,
			booking.AddonID,
			booking.AddonName,
			booking.BookingDate,
			booking.StartTime,
			booking.EndTime,
			booking.Price,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByFacilityAndDate fetches all non-cancelled addon bookings occupying
// the facility on the given date. excludeReservationID skips bookings owned
// by the reservation being rescheduled.
//
// Locked with FOR UPDATE inside transactions, same as the reservation
// fetch, so the write-path re-validation covers both occupied-range sources.
func (r *Repository) GetByFacilityAndDate(ctx context.Context, facilityID int64, date time.Time, excludeReservationID *int64) ([]*domain.AddonBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(addonColumns...).
		From("addon_bookings").
		Where(squirrel.Eq{"facility_id": facilityID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		OrderBy("start_time ASC")

	if excludeReservationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"reservation_id": *excludeReservationID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByReservationID fetches the addon bookings of a reservation
func (r *Repository) GetByReservationID(ctx context.Context, reservationID int64) ([]*domain.AddonBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(addonColumns...).
		From("addon_bookings").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("booking_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// CancelByReservationID cancels all addon bookings of a reservation.
// Called when the owning reservation is cancelled; affecting zero rows is
// fine (not every reservation has addons).
func (r *Repository) CancelByReservationID(ctx context.Context, reservationID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("addon_bookings").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reservation_id": reservationID}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CancelByReservationID - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CancelByReservationID - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// scanBookings scans query results into an addon booking slice
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.AddonBooking, error) {
	bookings := make([]*domain.AddonBooking, 0)

	for rows.Next() {
		var booking domain.AddonBooking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ReservationID,
			&booking.FacilityID,
			&booking.AddonID,
			&booking.AddonName,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Price,
			&booking.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
