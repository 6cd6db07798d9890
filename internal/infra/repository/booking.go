package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"tour-booking-api/internal/domain/booking"
	"tour-booking-api/internal/infra"
	"tour-booking-api/internal/usecase"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `b.id, b.user_id, b.tour_id, b.coupon_id, b.travelers_count,
	b.subtotal, b.discount_amount, b.total_price, b.status, b.booking_date,
	b.notes, b.created_at, b.updated_at, u.name, u.email, t.name`

const bookingFrom = ` FROM bookings b
	JOIN users u ON u.id = b.user_id
	JOIN tours t ON t.id = b.tour_id`

const (
	findBookingByIDSQL = `SELECT ` + bookingColumns + bookingFrom + ` WHERE b.id = $1`

	insertBookingSQL = `INSERT INTO bookings (user_id, tour_id, coupon_id, travelers_count,
		subtotal, discount_amount, total_price, status, booking_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	updateBookingSQL = `UPDATE bookings SET user_id = $2, tour_id = $3, coupon_id = $4,
		travelers_count = $5, subtotal = $6, discount_amount = $7, total_price = $8,
		status = $9, booking_date = $10, notes = $11, updated_at = now()
		WHERE id = $1`

	updateBookingStatusSQL = `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`

	// The WHERE clause re-checks the limit under the row lock: evaluation ran
	// against a snapshot, and a concurrent redemption may have exhausted the
	// coupon since. No row matched means the limit was hit.
	redeemCouponSQL = `UPDATE coupons SET used_count = used_count + 1, updated_at = now()
		WHERE id = $1 AND (usage_limit = 0 OR used_count < usage_limit)`
)

var _ usecase.BookingRepository = (*BookingRepository)(nil)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) List(ctx context.Context, filters usecase.BookingListFilters) (shared.Page[booking.Booking], error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filters.Status != "" {
		conds = append(conds, "b.status = "+arg(filters.Status))
	}
	if filters.Search != "" {
		p := arg("%" + filters.Search + "%")
		conds = append(conds, fmt.Sprintf("(u.name ILIKE %s OR u.email ILIKE %s OR t.name ILIKE %s)", p, p, p))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT count(*)"+bookingFrom+where, args...).Scan(&total); err != nil {
		return shared.Page[booking.Booking]{}, wrapErr("counting bookings", err)
	}

	query := "SELECT " + bookingColumns + bookingFrom + where +
		" ORDER BY b.created_at DESC LIMIT " + arg(filters.Limit) + " OFFSET " + arg(filters.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return shared.Page[booking.Booking]{}, wrapErr("listing bookings", err)
	}
	items, err := pgx.CollectRows(rows, scanBooking)
	if err != nil {
		return shared.Page[booking.Booking]{}, wrapErr("listing bookings", err)
	}

	return shared.Page[booking.Booking]{Items: items, Total: total, Page: filters.Page, Limit: filters.Limit}, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	rows, err := r.pool.Query(ctx, findBookingByIDSQL, id)
	if err != nil {
		return nil, wrapErr("finding booking by id", err)
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBooking)
	if err != nil {
		return nil, wrapErr("finding booking by id", err)
	}
	return &b, nil
}

// Create inserts the booking and redeems the attached coupon in one
// transaction, so the used_count increment and the booking row commit or roll
// back together.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, wrapErr("creating booking", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var id uuid.UUID
	err = tx.QueryRow(ctx, insertBookingSQL,
		b.UserID, b.TourID, b.CouponID, b.TravelersCount,
		b.Subtotal, b.DiscountAmount, b.TotalPrice, b.Status, b.BookingDate, b.Notes,
	).Scan(&id)
	if err != nil {
		return nil, wrapErr("creating booking", err)
	}

	if b.CouponID != nil {
		tag, err := tx.Exec(ctx, redeemCouponSQL, *b.CouponID)
		if err != nil {
			return nil, wrapErr("redeeming coupon", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, infra.WrapRepoErr(infra.KindConflict, "coupon usage limit reached", nil)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrapErr("creating booking", err)
	}

	return r.FindByID(ctx, id)
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	tag, err := r.pool.Exec(ctx, updateBookingSQL,
		b.ID, b.UserID, b.TourID, b.CouponID, b.TravelersCount,
		b.Subtotal, b.DiscountAmount, b.TotalPrice, b.Status, b.BookingDate, b.Notes,
	)
	if err != nil {
		return nil, wrapErr("updating booking", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, wrapErr("updating booking", pgx.ErrNoRows)
	}
	return r.FindByID(ctx, b.ID)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error) {
	tag, err := r.pool.Exec(ctx, updateBookingStatusSQL, id, status)
	if err != nil {
		return nil, wrapErr("updating booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, wrapErr("updating booking status", pgx.ErrNoRows)
	}
	return r.FindByID(ctx, id)
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteBookingSQL, id)
	if err != nil {
		return wrapErr("deleting booking", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr("deleting booking", pgx.ErrNoRows)
	}
	return nil
}

func scanBooking(row pgx.CollectableRow) (booking.Booking, error) {
	var b booking.Booking
	err := row.Scan(
		&b.ID, &b.UserID, &b.TourID, &b.CouponID, &b.TravelersCount,
		&b.Subtotal, &b.DiscountAmount, &b.TotalPrice, &b.Status, &b.BookingDate,
		&b.Notes, &b.CreatedAt, &b.UpdatedAt, &b.UserName, &b.UserEmail, &b.TourName,
	)
	return b, err
}
