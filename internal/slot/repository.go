package slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	List(ctx context.Context) ([]*Slot, error)
	GetByNumber(ctx context.Context, number int) (*Slot, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) List(ctx context.Context) ([]*Slot, error) {
	const query = `
		SELECT id, slot_number, to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS')
		FROM public.slots
		ORDER BY slot_number
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list slots failed: %w", err)
	}
	defer rows.Close()

	var result []*Slot
	for rows.Next() {
		var s Slot
		if err := rows.Scan(&s.ID, &s.Number, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("scan slot failed: %w", err)
		}
		result = append(result, &s)
	}
	return result, nil
}

func (r *pgxRepository) GetByNumber(ctx context.Context, number int) (*Slot, error) {
	const query = `
		SELECT id, slot_number, to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS')
		FROM public.slots
		WHERE slot_number = $1
	`
	var s Slot
	err := r.pool.QueryRow(ctx, query, number).
		Scan(&s.ID, &s.Number, &s.StartTime, &s.EndTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get slot failed: %w", err)
	}
	return &s, nil
}
