package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportbook/field-booking-backend/internal/billing"
	"github.com/sportbook/field-booking-backend/internal/pricing"
)

// AmendParams carries everything the amend transaction needs. The window
// endpoints are the parsed halves of Time.
type AmendParams struct {
	BookingID     int64
	Time          string
	Hour          float64
	TimeFrom      string
	TimeTo        string
	TransactionID string
}

type Repository interface {
	// Create inserts a booking after a capacity check against the
	// (field, schedule) slot, all in one transaction.
	Create(ctx context.Context, b *Booking) error
	// Amend rewrites the booking window and hours, cancels any pending
	// bill and issues a new one, atomically.
	Amend(ctx context.Context, params AmendParams) (*Booking, *billing.Bill, error)
	GetByID(ctx context.Context, id int64) (*Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]*Booking, error)
}

type pgxRepository struct {
	pool   *pgxpool.Pool
	bills  billing.Issuer
	prices pricing.Catalog
}

func NewPgxRepository(pool *pgxpool.Pool, bills billing.Issuer, prices pricing.Catalog) Repository {
	return &pgxRepository{
		pool:   pool,
		bills:  bills,
		prices: prices,
	}
}

var bookingColumns = []string{
	"b.id",
	"b.id_field",
	"b.id_schedule",
	"b.user_id",
	`b."time"`,
	"b.hour",
	"b.date",
	"b.created_at",
	"b.updated_at",
	"f.name",
}

func scanBooking(row pgx.Row, b *Booking) error {
	return row.Scan(
		&b.ID,
		&b.FieldID,
		&b.ScheduleID,
		&b.UserID,
		&b.Time,
		&b.Hour,
		&b.Date,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.FieldName,
	)
}

func bookingQuery() squirrel.SelectBuilder {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(bookingColumns...).
		From("public.booking b").
		Join("public.fields f ON f.id = b.id_field")
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.checkCapacity(ctx, tx, b); err != nil {
		return err
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.booking").
		Columns("id_field", "id_schedule", `"time"`, "hour", "date", "user_id").
		Values(b.FieldID, b.ScheduleID, b.Time, b.Hour, b.Date, b.UserID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create booking tx failed: %w", err)
	}
	return nil
}

// checkCapacity locks the (field, schedule) slot row and compares its
// capacity against the hours already booked for the date. Fields without a
// configured slot are not capacity-limited.
func (r *pgxRepository) checkCapacity(ctx context.Context, tx pgx.Tx, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("amount_available").
		From("public.schedule_for_field").
		Where(squirrel.Eq{"id_schedule": b.ScheduleID, "id_field": b.FieldID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("build slot lock query failed: %w", err)
	}

	var capacity int
	if err := tx.QueryRow(ctx, query, args...).Scan(&capacity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("lock slot failed: %w", err)
	}

	query, args, err = psql.Select("coalesce(sum(hour), 0)").
		From("public.booking").
		Where(squirrel.Eq{"id_field": b.FieldID, "id_schedule": b.ScheduleID, "date": b.Date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build booked hours query failed: %w", err)
	}

	var booked float64
	if err := tx.QueryRow(ctx, query, args...).Scan(&booked); err != nil {
		return fmt.Errorf("sum booked hours failed: %w", err)
	}

	if b.Hour > float64(capacity)-booked {
		return ErrNoCapacity
	}
	return nil
}

func (r *pgxRepository) Amend(ctx context.Context, params AmendParams) (*Booking, *billing.Bill, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin amend booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	query, args, err := bookingQuery().
		Where(squirrel.Eq{"b.id": params.BookingID}).
		Suffix("FOR UPDATE OF b").
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("build lock booking query failed: %w", err)
	}

	var b Booking
	if err := scanBooking(tx.QueryRow(ctx, query, args...), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("lock booking failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err = psql.Update("public.booking").
		Set(`"time"`, params.Time).
		Set("hour", params.Hour).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": params.BookingID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("build amend booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&b.UpdatedAt); err != nil {
		return nil, nil, fmt.Errorf("amend booking failed: %w", err)
	}
	b.Time = params.Time
	b.Hour = params.Hour

	if _, err := r.bills.CancelPending(ctx, tx, b.ID); err != nil {
		return nil, nil, err
	}

	query, args, err = psql.Select("id_type_field").
		From("public.fields").
		Where(squirrel.Eq{"id": b.FieldID}).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("build field type lookup query failed: %w", err)
	}

	var typeFieldID int64
	if err := tx.QueryRow(ctx, query, args...).Scan(&typeFieldID); err != nil {
		return nil, nil, fmt.Errorf("field type lookup failed: %w", err)
	}

	// The rebill is priced against the booking's original date.
	rule, err := r.prices.Resolve(ctx, tx, typeFieldID, pricing.Weekday(b.Date), params.TimeFrom, params.TimeTo)
	if err != nil {
		return nil, nil, err
	}

	bill := &billing.Bill{
		TransactionID:  params.TransactionID,
		BookingID:      b.ID,
		UserReceivedID: b.UserID,
		Amount:         rule.Price * params.Hour,
		Status:         billing.StatusPending,
	}
	if err := r.bills.Issue(ctx, tx, bill); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit amend booking tx failed: %w", err)
	}
	return &b, bill, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query, args, err := bookingQuery().Where(squirrel.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	var b Booking
	if err := scanBooking(r.pool.QueryRow(ctx, query, args...), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID int64) ([]*Booking, error) {
	query, args, err := bookingQuery().
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.date DESC", `b."time" ASC`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, rows.Err()
}
