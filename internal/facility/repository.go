package facility

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, f *Facility) error
	GetByID(ctx context.Context, id int64) (*Facility, error)
	GetByCode(ctx context.Context, code string) (*Facility, error)
	List(ctx context.Context, filter Filter) ([]*Facility, int, error)
	Update(ctx context.Context, f *Facility) error
	UpdatePhoto(ctx context.Context, id int64, photoPath, thumbnailPath *string) error
	Delete(ctx context.Context, id int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const selectColumns = `
	f.id, f.code, f.name, f.type_id, t.name, f.campus_id, c.name,
	f.capacity, f.equipment, f.status, f.floor,
	f.photo_path, f.thumbnail_path, f.created_at, f.updated_at
`

func scanFacility(row pgx.Row, f *Facility, extra ...any) error {
	dest := []any{
		&f.ID, &f.Code, &f.Name, &f.TypeID, &f.TypeName, &f.CampusID, &f.CampusName,
		&f.Capacity, &f.Equipment, &f.Status, &f.Floor,
		&f.PhotoPath, &f.ThumbnailPath, &f.CreatedAt, &f.UpdatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

func (r *pgxRepository) Create(ctx context.Context, f *Facility) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.facilities").
		Columns("code", "name", "type_id", "campus_id", "capacity", "equipment", "status", "floor").
		Values(f.Code, f.Name, f.TypeID, f.CampusID, f.Capacity, f.Equipment, f.Status, f.Floor).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create facility query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateCode
		}
		return fmt.Errorf("create facility failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Facility, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM public.facilities f
		JOIN public.facility_types t ON f.type_id = t.id
		JOIN public.campuses c ON f.campus_id = c.id
		WHERE f.id = $1
	`
	var f Facility
	if err := scanFacility(r.pool.QueryRow(ctx, query, id), &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get facility failed: %w", err)
	}
	return &f, nil
}

func (r *pgxRepository) GetByCode(ctx context.Context, code string) (*Facility, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM public.facilities f
		JOIN public.facility_types t ON f.type_id = t.id
		JOIN public.campuses c ON f.campus_id = c.id
		WHERE f.code = $1
	`
	var f Facility
	if err := scanFacility(r.pool.QueryRow(ctx, query, code), &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get facility by code failed: %w", err)
	}
	return &f, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Facility, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	queryBuilder := psql.Select(
		"f.id", "f.code", "f.name", "f.type_id", "t.name", "f.campus_id", "c.name",
		"f.capacity", "f.equipment", "f.status", "f.floor",
		"f.photo_path", "f.thumbnail_path", "f.created_at", "f.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.facilities f").
		Join("public.facility_types t ON f.type_id = t.id").
		Join("public.campuses c ON f.campus_id = c.id")

	if filter.CampusID != 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"f.campus_id": filter.CampusID})
	}
	if filter.TypeID != 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"f.type_id": filter.TypeID})
	}
	if filter.Status != "" {
		queryBuilder = queryBuilder.Where(squirrel.Expr("lower(f.status) = lower(?)", filter.Status))
	}
	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		queryBuilder = queryBuilder.Where(squirrel.Or{
			squirrel.ILike{"f.name": kw},
			squirrel.ILike{"f.code": kw},
		})
	}

	queryBuilder = queryBuilder.OrderBy("f.code ASC")

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
		return nil, 0, fmt.Errorf("build list facilities query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list facilities failed: %w", err)
	}
	defer rows.Close()

	var result []*Facility
	var total int

	for rows.Next() {
		var f Facility
		if err := scanFacility(rows, &f, &total); err != nil {
			return nil, 0, fmt.Errorf("scan facility failed: %w", err)
		}
		result = append(result, &f)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, f *Facility) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.facilities").
		Set("code", f.Code).
		Set("name", f.Name).
		Set("type_id", f.TypeID).
		Set("campus_id", f.CampusID).
		Set("capacity", f.Capacity).
		Set("equipment", f.Equipment).
		Set("status", f.Status).
		Set("floor", f.Floor).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": f.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update facility query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateCode
		}
		return fmt.Errorf("update facility failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UpdatePhoto(ctx context.Context, id int64, photoPath, thumbnailPath *string) error {
	const query = `
		UPDATE public.facilities
		SET photo_path = $1, thumbnail_path = $2, updated_at = now()
		WHERE id = $3
	`
	ct, err := r.pool.Exec(ctx, query, photoPath, thumbnailPath, id)
	if err != nil {
		return fmt.Errorf("update facility photo failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM public.facilities WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete facility failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
