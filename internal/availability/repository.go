package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportbook/field-booking-backend/internal/field"
	"github.com/sportbook/field-booking-backend/internal/pricing"
	"github.com/sportbook/field-booking-backend/internal/schedule"
)

type Repository interface {
	ListForDate(ctx context.Context, date time.Time, filter Filter) ([]*Slot, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// ListForDate lists active slots on available fields together with the
// hours already booked for the date and the narrowest price rule covering
// each schedule window. Rows with no capacity left are included; the
// service filters them.
func (r *pgxRepository) ListForDate(ctx context.Context, date time.Time, filter Filter) ([]*Slot, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	queryBuilder := psql.Select(
		"sf.id",
		"f.id",
		"f.name",
		"f.id_type_field",
		"ft.name",
		"s.id",
		"to_char(s.time_from, 'HH24:MI')",
		"to_char(s.time_to, 'HH24:MI')",
		"sf.amount_available::float8",
		"coalesce(bk.booked, 0)::float8",
		"p.price",
	).
		From("public.schedule_for_field sf").
		Join("public.fields f ON f.id = sf.id_field").
		Join("public.field_types ft ON ft.id = f.id_type_field").
		Join("public.schedules s ON s.id = sf.id_schedule").
		JoinClause(
			`LEFT JOIN LATERAL (
				SELECT coalesce(sum(b.hour), 0) AS booked
				FROM public.booking b
				WHERE b.id_field = sf.id_field
				  AND b.id_schedule = sf.id_schedule
				  AND b.date = ?
			) bk ON true`, date).
		JoinClause(
			`LEFT JOIN LATERAL (
				SELECT fp.price
				FROM public.field_price fp
				WHERE fp.id_type_field = f.id_type_field
				  AND fp.day_of_week = ?
				  AND fp.start_time <= s.time_from
				  AND fp.end_time >= s.time_to
				ORDER BY (fp.end_time - fp.start_time) ASC, fp.id ASC
				LIMIT 1
			) p ON true`, pricing.Weekday(date)).
		Where(squirrel.Eq{"f.status": field.StatusAvailable, "sf.status": schedule.SlotStatusActive}).
		Where(squirrel.Gt{"sf.amount_available": 0}).
		OrderBy("f.name ASC", "s.time_from ASC")

	if filter.ScheduleID > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"sf.id_schedule": filter.ScheduleID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build availability query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list availability failed: %w", err)
	}
	defer rows.Close()

	var slots []*Slot
	for rows.Next() {
		var s Slot
		err := rows.Scan(
			&s.SlotID,
			&s.FieldID,
			&s.FieldName,
			&s.TypeFieldID,
			&s.TypeFieldName,
			&s.ScheduleID,
			&s.TimeFrom,
			&s.TimeTo,
			&s.Capacity,
			&s.Booked,
			&s.PricePerHour,
		)
		if err != nil {
			return nil, fmt.Errorf("scan availability slot failed: %w", err)
		}
		s.Remaining = s.Capacity - s.Booked
		slots = append(slots, &s)
	}

	return slots, rows.Err()
}
