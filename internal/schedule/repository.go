package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, s *Schedule) error
	GetByID(ctx context.Context, id int64) (*Schedule, error)
	List(ctx context.Context) ([]*Schedule, error)
	Update(ctx context.Context, s *Schedule) error

	CreateSlot(ctx context.Context, slot *FieldSlot) error
	GetSlotByID(ctx context.Context, id int64) (*FieldSlot, error)
	ListSlots(ctx context.Context, filter SlotFilter) ([]*FieldSlot, error)
	UpdateSlot(ctx context.Context, slot *FieldSlot) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, s *Schedule) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.schedules").
		Columns("time_from", "time_to").
		Values(squirrel.Expr("?::time", s.TimeFrom), squirrel.Expr("?::time", s.TimeTo)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create schedule query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return fmt.Errorf("create schedule failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Schedule, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id",
		"to_char(time_from, 'HH24:MI')",
		"to_char(time_to, 'HH24:MI')",
		"created_at",
		"updated_at",
	).
		From("public.schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get schedule query failed: %w", err)
	}

	var s Schedule
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&s.ID, &s.TimeFrom, &s.TimeTo, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get schedule failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Schedule, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id",
		"to_char(time_from, 'HH24:MI')",
		"to_char(time_to, 'HH24:MI')",
		"created_at",
		"updated_at",
	).
		From("public.schedules").
		OrderBy("time_from ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list schedules query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedules failed: %w", err)
	}
	defer rows.Close()

	var schedules []*Schedule
	for rows.Next() {
		var s Schedule
		if err := rows.Scan(&s.ID, &s.TimeFrom, &s.TimeTo, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan schedule failed: %w", err)
		}
		schedules = append(schedules, &s)
	}

	return schedules, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, s *Schedule) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.schedules").
		Set("time_from", squirrel.Expr("?::time", s.TimeFrom)).
		Set("time_to", squirrel.Expr("?::time", s.TimeTo)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update schedule query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update schedule failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) CreateSlot(ctx context.Context, slot *FieldSlot) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.schedule_for_field").
		Columns("id_schedule", "id_type", "id_field", "amount_available", "status").
		Values(slot.ScheduleID, slot.TypeFieldID, slot.FieldID, slot.AmountAvailable, slot.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create slot query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&slot.ID, &slot.CreatedAt, &slot.UpdatedAt); err != nil {
		return fmt.Errorf("create slot failed: %w", err)
	}
	return nil
}

var slotColumns = []string{
	"sf.id",
	"sf.id_schedule",
	"sf.id_type",
	"sf.id_field",
	"sf.amount_available",
	"sf.status",
	"sf.created_at",
	"sf.updated_at",
	"to_char(s.time_from, 'HH24:MI')",
	"to_char(s.time_to, 'HH24:MI')",
	"f.name",
	"ft.name",
}

func scanSlot(row pgx.Row, slot *FieldSlot) error {
	return row.Scan(
		&slot.ID,
		&slot.ScheduleID,
		&slot.TypeFieldID,
		&slot.FieldID,
		&slot.AmountAvailable,
		&slot.Status,
		&slot.CreatedAt,
		&slot.UpdatedAt,
		&slot.TimeFrom,
		&slot.TimeTo,
		&slot.FieldName,
		&slot.TypeFieldName,
	)
}

func slotQuery() squirrel.SelectBuilder {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(slotColumns...).
		From("public.schedule_for_field sf").
		Join("public.schedules s ON s.id = sf.id_schedule").
		Join("public.fields f ON f.id = sf.id_field").
		Join("public.field_types ft ON ft.id = sf.id_type")
}

func (r *pgxRepository) GetSlotByID(ctx context.Context, id int64) (*FieldSlot, error) {
	query, args, err := slotQuery().Where(squirrel.Eq{"sf.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get slot query failed: %w", err)
	}

	var slot FieldSlot
	if err := scanSlot(r.pool.QueryRow(ctx, query, args...), &slot); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("get slot failed: %w", err)
	}
	return &slot, nil
}

func (r *pgxRepository) ListSlots(ctx context.Context, filter SlotFilter) ([]*FieldSlot, error) {
	queryBuilder := slotQuery().OrderBy("sf.id DESC")

	if filter.ScheduleID > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"sf.id_schedule": filter.ScheduleID})
	}
	if filter.FieldID > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"sf.id_field": filter.FieldID})
	}
	if filter.TypeFieldID > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"sf.id_type": filter.TypeFieldID})
	}
	if filter.Status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"sf.status": filter.Status})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list slots query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list slots failed: %w", err)
	}
	defer rows.Close()

	var slots []*FieldSlot
	for rows.Next() {
		var slot FieldSlot
		if err := scanSlot(rows, &slot); err != nil {
			return nil, fmt.Errorf("scan slot failed: %w", err)
		}
		slots = append(slots, &slot)
	}

	return slots, rows.Err()
}

func (r *pgxRepository) UpdateSlot(ctx context.Context, slot *FieldSlot) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.schedule_for_field").
		Set("id_schedule", slot.ScheduleID).
		Set("id_type", slot.TypeFieldID).
		Set("id_field", slot.FieldID).
		Set("amount_available", slot.AmountAvailable).
		Set("status", slot.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": slot.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update slot query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update slot failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrSlotNotFound
	}
	return nil
}
