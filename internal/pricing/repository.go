package pricing

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sportbook/field-booking-backend/internal/db"
)

// Catalog stores price rules. Resolve takes a db.Querier so it can run
// inside a caller's transaction as well as against the pool.
type Catalog interface {
	Create(ctx context.Context, r *Rule) error
	GetByID(ctx context.Context, id int64) (*Rule, error)
	List(ctx context.Context, filter Filter) ([]*Rule, error)
	Update(ctx context.Context, r *Rule) error
	Delete(ctx context.Context, id int64) error

	HasOverlap(ctx context.Context, typeFieldID int64, dayOfWeek int, startTime, endTime string, excludeID int64) (bool, error)
	Resolve(ctx context.Context, q db.Querier, typeFieldID int64, dayOfWeek int, timeFrom, timeTo string) (*Rule, error)
}

// Filter narrows the rule listing.
type Filter struct {
	TypeFieldID int64
	DayOfWeek   *int
}

type pgxCatalog struct {
	pool *pgxpool.Pool
}

func NewPgxCatalog(pool *pgxpool.Pool) Catalog {
	return &pgxCatalog{pool: pool}
}

var ruleColumns = []string{
	"fp.id",
	"fp.id_type_field",
	"fp.day_of_week",
	"to_char(fp.start_time, 'HH24:MI')",
	"to_char(fp.end_time, 'HH24:MI')",
	"fp.price",
	"fp.created_at",
	"fp.updated_at",
	"ft.name",
}

func scanRule(row pgx.Row, r *Rule) error {
	return row.Scan(
		&r.ID,
		&r.TypeFieldID,
		&r.DayOfWeek,
		&r.StartTime,
		&r.EndTime,
		&r.Price,
		&r.CreatedAt,
		&r.UpdatedAt,
		&r.TypeFieldName,
	)
}

func ruleQuery() squirrel.SelectBuilder {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(ruleColumns...).
		From("public.field_price fp").
		Join("public.field_types ft ON ft.id = fp.id_type_field")
}

func (r *pgxCatalog) Create(ctx context.Context, rule *Rule) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.field_price").
		Columns("id_type_field", "day_of_week", "start_time", "end_time", "price").
		Values(
			rule.TypeFieldID,
			rule.DayOfWeek,
			squirrel.Expr("?::time", rule.StartTime),
			squirrel.Expr("?::time", rule.EndTime),
			rule.Price,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create price rule query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
		return fmt.Errorf("create price rule failed: %w", err)
	}
	return nil
}

func (r *pgxCatalog) GetByID(ctx context.Context, id int64) (*Rule, error) {
	query, args, err := ruleQuery().Where(squirrel.Eq{"fp.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get price rule query failed: %w", err)
	}

	var rule Rule
	if err := scanRule(r.pool.QueryRow(ctx, query, args...), &rule); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRuleNotFound
		}
		return nil, fmt.Errorf("get price rule failed: %w", err)
	}
	return &rule, nil
}

func (r *pgxCatalog) List(ctx context.Context, filter Filter) ([]*Rule, error) {
	queryBuilder := ruleQuery().
		OrderBy("fp.id_type_field ASC", "fp.day_of_week ASC", "fp.start_time ASC")

	if filter.TypeFieldID > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"fp.id_type_field": filter.TypeFieldID})
	}
	if filter.DayOfWeek != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"fp.day_of_week": *filter.DayOfWeek})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list price rules query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list price rules failed: %w", err)
	}
	defer rows.Close()

	var rules []*Rule
	for rows.Next() {
		var rule Rule
		if err := scanRule(rows, &rule); err != nil {
			return nil, fmt.Errorf("scan price rule failed: %w", err)
		}
		rules = append(rules, &rule)
	}

	return rules, rows.Err()
}

func (r *pgxCatalog) Update(ctx context.Context, rule *Rule) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.field_price").
		Set("id_type_field", rule.TypeFieldID).
		Set("day_of_week", rule.DayOfWeek).
		Set("start_time", squirrel.Expr("?::time", rule.StartTime)).
		Set("end_time", squirrel.Expr("?::time", rule.EndTime)).
		Set("price", rule.Price).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": rule.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update price rule query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update price rule failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrRuleNotFound
	}
	return nil
}

func (r *pgxCatalog) Delete(ctx context.Context, id int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.field_price").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete price rule query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete price rule failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrRuleNotFound
	}
	return nil
}

// HasOverlap reports whether another rule for the same field type and day
// shares any part of [startTime, endTime). Rules that merely touch at an
// endpoint do not overlap.
func (r *pgxCatalog) HasOverlap(ctx context.Context, typeFieldID int64, dayOfWeek int, startTime, endTime string, excludeID int64) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	queryBuilder := psql.Select("count(*)").
		From("public.field_price").
		Where(squirrel.Eq{"id_type_field": typeFieldID, "day_of_week": dayOfWeek}).
		Where(squirrel.Expr("start_time < ?::time", endTime)).
		Where(squirrel.Expr("end_time > ?::time", startTime))

	if excludeID > 0 {
		queryBuilder = queryBuilder.Where(squirrel.NotEq{"id": excludeID})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("build price overlap query failed: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("price overlap check failed: %w", err)
	}
	return count > 0, nil
}

// Resolve picks the rule that fully contains [timeFrom, timeTo] for the
// field type and day, preferring the narrowest band. With non-overlapping
// rules at most one band contains any window, so ties only arise on legacy
// data; they are logged and broken by lowest id.
func (r *pgxCatalog) Resolve(ctx context.Context, q db.Querier, typeFieldID int64, dayOfWeek int, timeFrom, timeTo string) (*Rule, error) {
	query, args, err := ruleQuery().
		Where(squirrel.Eq{"fp.id_type_field": typeFieldID, "fp.day_of_week": dayOfWeek}).
		Where(squirrel.Expr("fp.start_time <= ?::time", timeFrom)).
		Where(squirrel.Expr("fp.end_time >= ?::time", timeTo)).
		OrderBy("(fp.end_time - fp.start_time) ASC", "fp.id ASC").
		Limit(2).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build resolve price query failed: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("resolve price failed: %w", err)
	}
	defer rows.Close()

	var matches []*Rule
	for rows.Next() {
		var rule Rule
		if err := scanRule(rows, &rule); err != nil {
			return nil, fmt.Errorf("scan price rule failed: %w", err)
		}
		matches = append(matches, &rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resolve price failed: %w", err)
	}

	if len(matches) == 0 {
		return nil, &NotFoundError{
			TypeFieldID: typeFieldID,
			DayOfWeek:   dayOfWeek,
			TimeFrom:    timeFrom,
			TimeTo:      timeTo,
		}
	}
	if len(matches) > 1 {
		log.Printf("pricing: ambiguous rules %d and %d for field type %d day %d window %s - %s, using %d",
			matches[0].ID, matches[1].ID, typeFieldID, dayOfWeek, timeFrom, timeTo, matches[0].ID)
	}
	return matches[0], nil
}
