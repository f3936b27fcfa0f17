package sporttype

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, st *SportType) error
	GetByID(ctx context.Context, id int64) (*SportType, error)
	List(ctx context.Context) ([]*SportType, error)
	Update(ctx context.Context, st *SportType) error
	Delete(ctx context.Context, id int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, st *SportType) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.sport_types").
		Columns("name", "description").
		Values(st.Name, st.Description).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create sport type query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&st.ID, &st.CreatedAt, &st.UpdatedAt); err != nil {
		return fmt.Errorf("create sport type failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*SportType, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "name", "description", "created_at", "updated_at").
		From("public.sport_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get sport type query failed: %w", err)
	}

	var st SportType
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&st.ID, &st.Name, &st.Description, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get sport type failed: %w", err)
	}
	return &st, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*SportType, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select("id", "name", "description", "created_at", "updated_at").
		From("public.sport_types").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sport types query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list sport types failed: %w", err)
	}
	defer rows.Close()

	var result []*SportType
	for rows.Next() {
		var st SportType
		if err := rows.Scan(&st.ID, &st.Name, &st.Description, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sport type failed: %w", err)
		}
		result = append(result, &st)
	}

	return result, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, st *SportType) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.sport_types").
		Set("name", st.Name).
		Set("description", st.Description).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": st.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update sport type query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update sport type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.sport_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete sport type query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete sport type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
