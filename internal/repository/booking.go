package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/talabi-dev/StayBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, property_id, requester_id, owner_id, kind,
		check_in, check_out, status, payment_status, hold_expires_at,
		cancelled_by, cancelled_at, cancellation_reason, created_at, updated_at`

type BookingRepository struct {
	db            *dbpg.DB
	strategy      retry.Strategy
	inspectionGap time.Duration
}

func NewBookingRepo(db *dbpg.DB, inspectionGap time.Duration) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		inspectionGap: inspectionGap,
	}
}

// Create inserts a pending booking. The conflict check re-runs here under
// a per-property advisory lock, so two instances racing past their own
// in-process locks still cannot both commit overlapping holds.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT pg_advisory_xact_lock(hashtext($1))`
	if _, err = tx.ExecContext(ctx, lockQuery, b.PropertyID); err != nil {
		return fmt.Errorf("lock property: %w", err)
	}

	var conflictQuery string
	var args []any
	if b.Kind.IsStay() {
		conflictQuery = `SELECT check_in, check_out FROM bookings
			WHERE property_id = $1 AND status = ANY($2)
			  AND kind IN ('shortlet', 'rental')
			  AND check_in < $3 AND $4 < check_out
			LIMIT 1`
		args = []any{b.PropertyID, pq.Array(domain.ActiveStatuses), b.Range.CheckOut, b.Range.CheckIn}
	} else {
		conflictQuery = `SELECT check_in, check_out FROM bookings
			WHERE property_id = $1 AND status = ANY($2)
			  AND kind = 'sale_inspection'
			  AND abs(extract(epoch FROM (check_in - $3::timestamptz))) < $4
			LIMIT 1`
		args = []any{b.PropertyID, pq.Array(domain.ActiveStatuses), b.Range.CheckIn, r.inspectionGap.Seconds()}
	}

	var held domain.DateRange
	err = tx.QueryRowContext(ctx, conflictQuery, args...).Scan(&held.CheckIn, &held.CheckOut)
	switch {
	case err == nil:
		return &domain.ConflictError{PropertyID: b.PropertyID, Conflicting: held}
	case errors.Is(err, sql.ErrNoRows):
		// range is free
	default:
		return fmt.Errorf("check conflicts: %w", err)
	}

	insertQuery := `INSERT INTO bookings (id, property_id, requester_id, owner_id, kind,
			check_in, check_out, status, payment_status, hold_expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = tx.ExecContext(ctx, insertQuery,
		b.ID, b.PropertyID, b.RequesterID, b.OwnerID, b.Kind,
		b.Range.CheckIn, b.Range.CheckOut, b.Status, b.PaymentStatus,
		b.HoldExpiresAt, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ActiveHolds(ctx context.Context, propertyID string) ([]domain.Hold, error) {
	query := `SELECT id, kind, check_in, check_out FROM bookings
			  WHERE property_id = $1 AND status = ANY($2)
			  ORDER BY check_in`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, propertyID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("list active holds: %w", err)
	}
	defer rows.Close()

	var res []domain.Hold
	for rows.Next() {
		var h domain.Hold
		if err = rows.Scan(&h.BookingID, &h.Kind, &h.Range.CheckIn, &h.Range.CheckOut); err != nil {
			return nil, fmt.Errorf("scan hold: %w", err)
		}
		res = append(res, h)
	}

	return res, rows.Err()
}

// ApplyTransition is a compare-and-set on the status column. A zero-row
// update is diagnosed: missing booking vs. a status that moved underneath
// the caller.
func (r *BookingRepository) ApplyTransition(ctx context.Context, id string, event domain.Event, from, to domain.BookingStatus, c *domain.Cancellation) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $3, updated_at = now(),
			      cancelled_by = COALESCE($4, cancelled_by),
			      cancelled_at = COALESCE($5, cancelled_at),
			      cancellation_reason = COALESCE($6, cancellation_reason)
			  WHERE id = $1 AND status = $2
			  RETURNING ` + bookingColumns

	var by, reason sql.NullString
	var at sql.NullTime
	if c != nil {
		by = sql.NullString{String: c.By, Valid: true}
		at = sql.NullTime{Time: c.At, Valid: true}
		reason = sql.NullString{String: c.Reason, Valid: c.Reason != ""}
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, from, to, by, at, reason)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	b, err := scanBooking(row)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	var current domain.BookingStatus
	checkQuery := `SELECT status FROM bookings WHERE id = $1`
	row, err = r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
	if err != nil {
		return nil, fmt.Errorf("diagnose transition: %w", err)
	}
	if err = row.Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("diagnose transition: %w", err)
	}

	return nil, &domain.InvalidTransitionError{From: current, Event: event}
}

func (r *BookingRepository) SetPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Booking, error) {
	query := `UPDATE bookings SET payment_status = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return nil, fmt.Errorf("set payment status: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ExpireStale(ctx context.Context) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND hold_expires_at < now()
			  RETURNING ` + bookingColumns

	return r.sweep(ctx, query, domain.BookingStatusPending, domain.BookingStatusExpired)
}

func (r *BookingRepository) CompleteElapsed(ctx context.Context) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND check_out < now()
			  RETURNING ` + bookingColumns

	return r.sweep(ctx, query, domain.BookingStatusConfirmed, domain.BookingStatusCompleted)
}

func (r *BookingRepository) sweep(ctx context.Context, query string, from, to domain.BookingStatus) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("sweep %s: %w", from, err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListByProperty(ctx context.Context, propertyID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE property_id = $1
			  ORDER BY created_at DESC`
	return r.list(ctx, query, propertyID)
}

func (r *BookingRepository) ListByRequester(ctx context.Context, requesterID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE requester_id = $1
			  ORDER BY created_at DESC`
	return r.list(ctx, query, requesterID)
}

func (r *BookingRepository) list(ctx context.Context, query string, arg any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var b domain.Booking
	var by, reason sql.NullString
	var at sql.NullTime

	err := s.Scan(
		&b.ID, &b.PropertyID, &b.RequesterID, &b.OwnerID, &b.Kind,
		&b.Range.CheckIn, &b.Range.CheckOut, &b.Status, &b.PaymentStatus,
		&b.HoldExpiresAt, &by, &at, &reason, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if by.Valid {
		b.CancelledBy = &by.String
	}
	if at.Valid {
		t := at.Time
		b.CancelledAt = &t
	}
	if reason.Valid {
		b.CancellationReason = &reason.String
	}

	return &b, nil
}
