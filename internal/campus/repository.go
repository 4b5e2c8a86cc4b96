package campus

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, c *Campus) error
	GetByID(ctx context.Context, id int64) (*Campus, error)
	List(ctx context.Context) ([]*Campus, error)
	Update(ctx context.Context, c *Campus) error
	Delete(ctx context.Context, id int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, c *Campus) error {
	const query = `
		INSERT INTO public.campuses (name, address)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, c.Name, c.Address).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create campus failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Campus, error) {
	const query = `
		SELECT id, name, address, created_at
		FROM public.campuses
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var c Campus
	if err := row.Scan(&c.ID, &c.Name, &c.Address, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get campus failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Campus, error) {
	const query = `
		SELECT id, name, address, created_at
		FROM public.campuses
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list campuses failed: %w", err)
	}
	defer rows.Close()

	var result []*Campus
	for rows.Next() {
		var c Campus
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan campus failed: %w", err)
		}
		result = append(result, &c)
	}
	return result, nil
}

func (r *pgxRepository) Update(ctx context.Context, c *Campus) error {
	const query = `
		UPDATE public.campuses
		SET name = $1, address = $2
		WHERE id = $3
	`
	ct, err := r.pool.Exec(ctx, query, c.Name, c.Address, c.ID)
	if err != nil {
		return fmt.Errorf("update campus failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM public.campuses WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete campus failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
