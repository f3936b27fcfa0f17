package fieldtype

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, ft *FieldType) error
	GetByID(ctx context.Context, id int64) (*FieldType, error)
	List(ctx context.Context) ([]*FieldType, error)
	Update(ctx context.Context, ft *FieldType) error
	Delete(ctx context.Context, id int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, ft *FieldType) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.field_types").
		Columns("name", "description").
		Values(ft.Name, ft.Description).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create field type query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&ft.ID, &ft.CreatedAt, &ft.UpdatedAt); err != nil {
		return fmt.Errorf("create field type failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*FieldType, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "description", "created_at", "updated_at").
		From("public.field_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get field type query failed: %w", err)
	}

	var ft FieldType
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&ft.ID, &ft.Name, &ft.Description, &ft.CreatedAt, &ft.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get field type failed: %w", err)
	}
	return &ft, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*FieldType, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select("id", "name", "description", "created_at", "updated_at").
		From("public.field_types").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list field types query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list field types failed: %w", err)
	}
	defer rows.Close()

	var result []*FieldType
	for rows.Next() {
		var ft FieldType
		if err := rows.Scan(&ft.ID, &ft.Name, &ft.Description, &ft.CreatedAt, &ft.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan field type failed: %w", err)
		}
		result = append(result, &ft)
	}

	return result, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, ft *FieldType) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.field_types").
		Set("name", ft.Name).
		Set("description", ft.Description).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": ft.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update field type query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update field type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.field_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete field type query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete field type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
