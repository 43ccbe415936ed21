package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/lensastudio/booking-service/internal/domain"
	"github.com/lensastudio/booking-service/pkg/dbmetrics"
	"github.com/lensastudio/booking-service/pkg/psqlbuilder"
	"github.com/lensastudio/booking-service/pkg/types"
)

// reservationColumns is the full column list used by every SELECT
var reservationColumns = []string{
	"id",
	"code",
	"user_id",
	"studio_id",
	"facility_id",
	"package_id",
	"reservation_date",
	"start_time",
	"end_time",
	"status",
	"payment_status",
	"payment_method",
	"total_amount",
	"dp_amount",
	"remaining_amount",
	"customer_name",
	"customer_phone",
	"package_name",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository is the postgres repository for reservations
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new reservation.
// When the context carries an active transaction it is used, so the write
// shares the transaction with the availability re-check that precedes it.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"code",
			"user_id",
			"studio_id",
			"facility_id",
			"package_id",
			"reservation_date",
			"start_time",
			"end_time",
			"status",
			"payment_status",
			"payment_method",
			"total_amount",
			"dp_amount",
			"remaining_amount",
			"customer_name",
			"customer_phone",
			"package_name",
			"notes",
		).
		Values(
			res.Code,
			res.UserID,
			res.StudioID,
			res.FacilityID,
			res.PackageID,
			res.ReservationDate,
			res.StartTime,
			res.EndTime,
			res.Status,
			res.PaymentStatus,
			res.PaymentMethod,
			res.TotalAmount,
			res.DPAmount,
			res.RemainingAmount,
			res.CustomerName,
			res.CustomerPhone,
			res.PackageName,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID fetches a reservation by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByUserID fetches the reservation history of a user,
// optionally filtered by status
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("reservation_date DESC, start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetByFacilityAndDate fetches all non-cancelled reservations occupying the
// facility on the given date. excludeID skips the reservation being
// rescheduled so it does not conflict with itself.
//
// Inside a transaction the rows are locked with FOR UPDATE: this is the
// write-time re-validation that makes the advisory availability check safe
// against concurrent booking attempts.
func (r *Repository) GetByFacilityAndDate(ctx context.Context, facilityID int64, date time.Time, excludeID *int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"facility_id": facilityID}).
		Where(squirrel.Eq{"reservation_date": date}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		OrderBy("start_time ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
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

	return r.scanReservations(rows)
}

// GetByStudioWithFilter fetches studio reservations for staff views with
// optional facility, period and status filters
func (r *Repository) GetByStudioWithFilter(ctx context.Context, filter domain.StudioReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"studio_id": filter.StudioID})

	if filter.FacilityID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"facility_id": *filter.FacilityID})
	}

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"reservation_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"reservation_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	// Single-date listings are ordered by start time, period listings
	// newest first
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("reservation_date DESC, start_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStudioWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStudioWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetPendingPaymentSince fetches reservations awaiting their first payment,
// created at or after the given time. Input of the reminder scan.
func (r *Repository) GetPendingPaymentSince(ctx context.Context, studioID int64, since time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"studio_id": studioID}).
		Where(squirrel.Eq{"status": string(domain.StatusPending)}).
		Where(squirrel.Eq{"payment_status": string(domain.PaymentPending)}).
		Where(squirrel.GtOrEq{"created_at": since}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingPaymentSince - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingPaymentSince - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetExpiredPending fetches unpaid pending reservations created at or
// before the cutoff. Input of the auto-cancellation job.
func (r *Repository) GetExpiredPending(ctx context.Context, cutoff time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"status": string(domain.StatusPending)}).
		Where(squirrel.Eq{"payment_status": string(domain.PaymentPending)}).
		Where(squirrel.LtOrEq{"created_at": cutoff}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetExpiredPending - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetExpiredPending - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetConfirmedPastEndTime fetches confirmed reservations whose session has
// already ended. Input of the auto-completion job.
func (r *Repository) GetConfirmedPastEndTime(ctx context.Context, today time.Time, nowTime types.TimeString) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"status": string(domain.StatusConfirmed)}).
		Where(squirrel.Or{
			squirrel.Lt{"reservation_date": today},
			squirrel.And{
				squirrel.Eq{"reservation_date": today},
				squirrel.Lt{"end_time": nowTime},
			},
		}).
		OrderBy("reservation_date ASC, end_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedPastEndTime - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedPastEndTime - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// UpdateStatus updates the reservation lifecycle status
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// UpdateSchedule moves a reservation to a new date and time window.
// Used by the reschedule flow inside its serializable transaction.
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, date time.Time, start, end types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("reservation_date", date).
		Set("start_time", start).
		Set("end_time", end).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateSchedule")
}

// UpdatePayment updates the payment state of a reservation
func (r *Repository) UpdatePayment(ctx context.Context, id int64, status domain.PaymentStatus, method *string, remaining float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("payment_status", status).
		Set("remaining_amount", remaining).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if method != nil {
		updateBuilder = updateBuilder.Set("payment_method", *method)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdatePayment - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdatePayment")
}

// Cancel cancels a reservation, recording the reason and the resulting
// payment status (refunded or unchanged, per the DP policy)
func (r *Repository) Cancel(ctx context.Context, id int64, reason string, paymentStatus domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("payment_status", paymentStatus).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Cancel")
}

// execExpectingRow runs an update that must affect exactly one row
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// scanOne scans a single reservation row
func (r *Repository) scanOne(row *sql.Row, op string) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Code,
		&res.UserID,
		&res.StudioID,
		&res.FacilityID,
		&res.PackageID,
		&res.ReservationDate,
		&res.StartTime,
		&res.EndTime,
		&res.Status,
		&res.PaymentStatus,
		&res.PaymentMethod,
		&res.TotalAmount,
		&res.DPAmount,
		&res.RemainingAmount,
		&res.CustomerName,
		&res.CustomerPhone,
		&res.PackageName,
		&res.Notes,
		&res.CancellationReason,
		&res.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations scans query results into a reservation slice
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.Code,
			&res.UserID,
			&res.StudioID,
			&res.FacilityID,
			&res.PackageID,
			&res.ReservationDate,
			&res.StartTime,
			&res.EndTime,
			&res.Status,
			&res.PaymentStatus,
			&res.PaymentMethod,
			&res.TotalAmount,
			&res.DPAmount,
			&res.RemainingAmount,
			&res.CustomerName,
			&res.CustomerPhone,
			&res.PackageName,
			&res.Notes,
			&res.CancellationReason,
			&res.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
