package billing

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportbook/field-booking-backend/internal/db"
)

// Issuer writes and reads bills. The mutating calls take a db.Querier so
// they can join the booking repository's transactions.
type Issuer interface {
	Issue(ctx context.Context, q db.Querier, bill *Bill) error
	CancelPending(ctx context.Context, q db.Querier, bookingID int64) (int64, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]*Bill, error)
}

type pgxIssuer struct {
	pool *pgxpool.Pool
}

func NewPgxIssuer(pool *pgxpool.Pool) Issuer {
	return &pgxIssuer{pool: pool}
}

var billColumns = []string{
	"id",
	"id_transaction",
	"id_booking",
	"user_received",
	"amount",
	"status",
	"created_at",
	"updated_at",
}

func scanBill(row pgx.Row, b *Bill) error {
	return row.Scan(
		&b.ID,
		&b.TransactionID,
		&b.BookingID,
		&b.UserReceivedID,
		&b.Amount,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
}

func (r *pgxIssuer) Issue(ctx context.Context, q db.Querier, bill *Bill) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bill").
		Columns("id_transaction", "id_booking", "user_received", "amount", "status").
		Values(bill.TransactionID, bill.BookingID, bill.UserReceivedID, bill.Amount, bill.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build issue bill query failed: %w", err)
	}

	if err := q.QueryRow(ctx, query, args...).Scan(&bill.ID, &bill.CreatedAt, &bill.UpdatedAt); err != nil {
		return fmt.Errorf("issue bill failed: %w", err)
	}
	return nil
}

// CancelPending marks every pending bill for the booking as cancelled and
// returns how many were affected.
func (r *pgxIssuer) CancelPending(ctx context.Context, q db.Querier, bookingID int64) (int64, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bill").
		Set("status", StatusCancelled).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id_booking": bookingID, "status": StatusPending}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build cancel pending bills query failed: %w", err)
	}

	ct, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("cancel pending bills failed: %w", err)
	}
	return ct.RowsAffected(), nil
}

func (r *pgxIssuer) ListByBooking(ctx context.Context, bookingID int64) ([]*Bill, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(billColumns...).
		From("public.bill").
		Where(squirrel.Eq{"id_booking": bookingID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bills query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bills failed: %w", err)
	}
	defer rows.Close()

	var bills []*Bill
	for rows.Next() {
		var b Bill
		if err := scanBill(rows, &b); err != nil {
			return nil, fmt.Errorf("scan bill failed: %w", err)
		}
		bills = append(bills, &b)
	}

	return bills, rows.Err()
}
