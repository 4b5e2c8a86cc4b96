package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// ListForFacilityDate returns every booking for one facility on one date,
	// regardless of status. Used by the availability computation.
	ListForFacilityDate(ctx context.Context, facilityID int64, date string) ([]*Booking, error)

	// UpdateStatus replaces the status and rejection reason of a booking.
	UpdateStatus(ctx context.Context, id int64, status Status, reason string) error

	// HasApprovedSlot checks whether an approved booking already holds the
	// slot for the facility on the date.
	HasApprovedSlot(ctx context.Context, facilityID int64, date string, slotNumber int) (bool, error)

	// StatsByUser aggregates one user's bookings by status.
	StatsByUser(ctx context.Context, userID int64) (*Stats, error)

	// ExpirePending rejects every pending booking whose date has passed,
	// storing the given reason. Returns the number of rows changed.
	ExpirePending(ctx context.Context, reason string) (int64, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("facility_id", "user_id", "booking_date", "slot_number", "purpose", "number_of_member", "status", "rejection_reason").
		Values(b.FacilityID, b.UserID, b.BookingDate, b.SlotNumber, b.Purpose, b.NumberOfMember, b.Status, b.RejectionReason).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

const bookingColumns = `
	b.id, b.facility_id, f.code, f.name, c.name, b.user_id, u.full_name,
	to_char(b.booking_date, 'YYYY-MM-DD'), b.slot_number,
	to_char(s.start_time, 'HH24:MI:SS'), to_char(s.end_time, 'HH24:MI:SS'),
	b.purpose, b.number_of_member, b.status, b.rejection_reason,
	b.created_at, b.updated_at
`

const bookingJoins = `
	FROM public.bookings b
	JOIN public.facilities f ON b.facility_id = f.id
	JOIN public.campuses c ON f.campus_id = c.id
	JOIN public.users u ON b.user_id = u.id
	JOIN public.slots s ON b.slot_number = s.slot_number
`

func scanBooking(row pgx.Row, b *Booking, extra ...any) error {
	dest := []any{
		&b.ID, &b.FacilityID, &b.FacilityCode, &b.FacilityName, &b.CampusName, &b.UserID, &b.UserName,
		&b.BookingDate, &b.SlotNumber,
		&b.StartTime, &b.EndTime,
		&b.Purpose, &b.NumberOfMember, &b.Status, &b.RejectionReason,
		&b.CreatedAt, &b.UpdatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE b.id = $1`

	var b Booking
	if err := scanBooking(r.pool.QueryRow(ctx, query, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.facility_id", "f.code", "f.name", "c.name", "b.user_id", "u.full_name",
		"to_char(b.booking_date, 'YYYY-MM-DD')", "b.slot_number",
		"to_char(s.start_time, 'HH24:MI:SS')", "to_char(s.end_time, 'HH24:MI:SS')",
		"b.purpose", "b.number_of_member", "b.status", "b.rejection_reason",
		"b.created_at", "b.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.facilities f ON b.facility_id = f.id").
		Join("public.campuses c ON f.campus_id = c.id").
		Join("public.users u ON b.user_id = u.id").
		Join("public.slots s ON b.slot_number = s.slot_number")

	if filter.UserID != 0 {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.FacilityID != 0 {
		query = query.Where(squirrel.Eq{"b.facility_id": filter.FacilityID})
	}
	if filter.CampusID != 0 {
		query = query.Where(squirrel.Eq{"f.campus_id": filter.CampusID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Expr("lower(b.status) = lower(?)", filter.Status))
	}
	if filter.Date != "" {
		query = query.Where(squirrel.Expr("b.booking_date = ?::date", filter.Date))
	}

	query = query.OrderBy("b.booking_date DESC", "b.slot_number ASC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		if err := scanBooking(rows, &b, &total); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListForFacilityDate(ctx context.Context, facilityID int64, date string) ([]*Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + `
		WHERE b.facility_id = $1 AND b.booking_date = $2::date
		ORDER BY b.slot_number
	`
	rows, err := r.pool.Query(ctx, query, facilityID, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings for facility/date failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, status Status, reason string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Set("rejection_reason", reason).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) HasApprovedSlot(ctx context.Context, facilityID int64, date string, slotNumber int) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"facility_id": facilityID}).
		Where(squirrel.Expr("booking_date = ?::date", date)).
		Where(squirrel.Eq{"slot_number": slotNumber}).
		Where(squirrel.Expr("lower(status) = 'approved'"))

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build slot conflict query failed: %w", err)
	}

	query := "SELECT EXISTS (" + sql + ")"

	var exists bool
	err = r.pool.QueryRow(ctx, query, args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slot conflict failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) StatsByUser(ctx context.Context, userID int64) (*Stats, error) {
	const query = `
		SELECT
			count(*),
			count(*) FILTER (WHERE lower(status) = 'pending'),
			count(*) FILTER (WHERE lower(status) = 'approved'),
			count(*) FILTER (WHERE lower(status) = 'rejected'),
			count(*) FILTER (WHERE lower(status) = 'cancelled')
		FROM public.bookings
		WHERE user_id = $1
	`
	var st Stats
	err := r.pool.QueryRow(ctx, query, userID).
		Scan(&st.Total, &st.Pending, &st.Approved, &st.Rejected, &st.Cancelled)
	if err != nil {
		return nil, fmt.Errorf("booking stats failed: %w", err)
	}
	return &st, nil
}

func (r *pgxRepository) ExpirePending(ctx context.Context, reason string) (int64, error) {
	const query = `
		UPDATE public.bookings
		SET status = 'Rejected', rejection_reason = $1, updated_at = now()
		WHERE lower(status) = 'pending' AND booking_date < current_date
	`
	ct, err := r.pool.Exec(ctx, query, reason)
	if err != nil {
		return 0, fmt.Errorf("expire pending bookings failed: %w", err)
	}
	return ct.RowsAffected(), nil
}
