package feedback

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, f *Feedback) error
	GetByID(ctx context.Context, id int64) (*Feedback, error)
	List(ctx context.Context, filter Filter) ([]*Feedback, int, error)
	Update(ctx context.Context, f *Feedback) error
	Delete(ctx context.Context, id int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const feedbackColumns = `
	f.id, f.user_id, u.full_name, f.facility_id, f.rating, f.content, f.created_at
`

func scanFeedback(row pgx.Row, f *Feedback, extra ...any) error {
	dest := []any{
		&f.ID, &f.UserID, &f.UserName, &f.FacilityID, &f.Rating, &f.Content, &f.CreatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

func (r *pgxRepository) Create(ctx context.Context, f *Feedback) error {
	const query = `
		INSERT INTO public.feedbacks (user_id, facility_id, rating, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		f.UserID, f.FacilityID, f.Rating, f.Content,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("create feedback failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Feedback, error) {
	query := `
		SELECT ` + feedbackColumns + `
		FROM public.feedbacks f
		JOIN public.users u ON f.user_id = u.id
		WHERE f.id = $1
	`
	var f Feedback
	if err := scanFeedback(r.pool.QueryRow(ctx, query, id), &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get feedback failed: %w", err)
	}
	return &f, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Feedback, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	queryBuilder := psql.Select(
		"f.id", "f.user_id", "u.full_name", "f.facility_id", "f.rating", "f.content", "f.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.feedbacks f").
		Join("public.users u ON f.user_id = u.id")

	if filter.UserID != 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"f.user_id": filter.UserID})
	}
	if filter.FacilityID != 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"f.facility_id": filter.FacilityID})
	}
	if filter.MinRating != 0 {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"f.rating": filter.MinRating})
	}

	queryBuilder = queryBuilder.OrderBy("f.created_at DESC")

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
		return nil, 0, fmt.Errorf("build list feedback query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list feedback failed: %w", err)
	}
	defer rows.Close()

	var result []*Feedback
	var total int

	for rows.Next() {
		var f Feedback
		if err := scanFeedback(rows, &f, &total); err != nil {
			return nil, 0, fmt.Errorf("scan feedback failed: %w", err)
		}
		result = append(result, &f)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, f *Feedback) error {
	const query = `
		UPDATE public.feedbacks
		SET rating = $1, content = $2
		WHERE id = $3
	`
	ct, err := r.pool.Exec(ctx, query, f.Rating, f.Content, f.ID)
	if err != nil {
		return fmt.Errorf("update feedback failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM public.feedbacks WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete feedback failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
