package field

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, f *Field) error
	GetByID(ctx context.Context, id int64) (*Field, error)
	List(ctx context.Context, filter Filter) ([]*Field, int, error)
	Update(ctx context.Context, f *Field) error
	Delete(ctx context.Context, id int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var fieldColumns = []string{
	"f.id", "f.name", "f.address", "f.contact", "f.description",
	"to_char(f.open, 'HH24:MI')", "to_char(f.close, 'HH24:MI')",
	"f.id_type_field", "ft.name", "f.id_type_sport", "st.name",
	"f.id_location", "l.name", "f.amount_available", "f.status",
	"f.created_at", "f.updated_at",
}

func scanField(row pgx.Row, f *Field, extra ...any) error {
	dest := []any{
		&f.ID, &f.Name, &f.Address, &f.Contact, &f.Description,
		&f.Open, &f.Close,
		&f.TypeFieldID, &f.TypeFieldName, &f.TypeSportID, &f.TypeSportName,
		&f.LocationID, &f.LocationName, &f.AmountAvailable, &f.Status,
		&f.CreatedAt, &f.UpdatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

func (r *pgxRepository) Create(ctx context.Context, f *Field) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.fields").
		Columns(
			"name", "address", "contact", "description", "open", "close",
			"id_type_field", "id_type_sport", "id_location", "amount_available", "status",
		).
		Values(
			f.Name, f.Address, f.Contact, f.Description,
			squirrel.Expr("?::time", f.Open), squirrel.Expr("?::time", f.Close),
			f.TypeFieldID, f.TypeSportID, f.LocationID, f.AmountAvailable, f.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create field query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return fmt.Errorf("create field failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Field, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(fieldColumns...).
		From("public.fields f").
		Join("public.field_types ft ON f.id_type_field = ft.id").
		Join("public.sport_types st ON f.id_type_sport = st.id").
		Join("public.locations l ON f.id_location = l.id").
		Where(squirrel.Eq{"f.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get field query failed: %w", err)
	}

	var f Field
	if err := scanField(r.pool.QueryRow(ctx, query, args...), &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get field failed: %w", err)
	}
	return &f, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Field, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	columns := append(append([]string{}, fieldColumns...), "count(*) OVER() as total_count")
	queryBuilder := psql.Select(columns...).
		From("public.fields f").
		Join("public.field_types ft ON f.id_type_field = ft.id").
		Join("public.sport_types st ON f.id_type_sport = st.id").
		Join("public.locations l ON f.id_location = l.id")

	if filter.LocationID != 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"f.id_location": filter.LocationID})
	}
	if filter.TypeFieldID != 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"f.id_type_field": filter.TypeFieldID})
	}
	if filter.TypeSportID != 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"f.id_type_sport": filter.TypeSportID})
	}
	if filter.Status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"f.status": filter.Status})
	}

	queryBuilder = queryBuilder.OrderBy("f.name ASC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	queryBuilder = queryBuilder.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list fields query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list fields failed: %w", err)
	}
	defer rows.Close()

	var fields []*Field
	var total int

	for rows.Next() {
		var f Field
		if err := scanField(rows, &f, &total); err != nil {
			return nil, 0, fmt.Errorf("scan field failed: %w", err)
		}
		fields = append(fields, &f)
	}

	return fields, total, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, f *Field) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.fields").
		Set("name", f.Name).
		Set("address", f.Address).
		Set("contact", f.Contact).
		Set("description", f.Description).
		Set("open", squirrel.Expr("?::time", f.Open)).
		Set("close", squirrel.Expr("?::time", f.Close)).
		Set("id_type_field", f.TypeFieldID).
		Set("id_type_sport", f.TypeSportID).
		Set("id_location", f.LocationID).
		Set("amount_available", f.AmountAvailable).
		Set("status", f.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": f.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update field query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update field failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.fields").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete field query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete field failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
