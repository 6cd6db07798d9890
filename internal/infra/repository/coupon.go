package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tour-booking-api/internal/domain/coupon"
	"tour-booking-api/internal/usecase"
	"tour-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const couponColumns = `id, code, description, discount_type, discount_value,
	min_order_amount, max_discount_amount, valid_from, valid_until,
	usage_limit, used_count, is_active, for_specific_user, user_id,
	created_by, created_at, updated_at`

const (
	findActiveCouponByCodeSQL = `SELECT ` + couponColumns + `
		FROM coupons WHERE code = $1 AND is_active = TRUE`

	findCouponByIDSQL = `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`

	availableCouponsSQL = `SELECT ` + couponColumns + ` FROM coupons
		WHERE is_active = TRUE
		  AND (valid_from IS NULL OR valid_from <= $2)
		  AND (valid_until IS NULL OR valid_until >= $2)
		  AND (usage_limit = 0 OR used_count < usage_limit)
		  AND (NOT for_specific_user OR user_id = $1)
		ORDER BY created_at DESC`

	personalCouponsSQL = `SELECT ` + couponColumns + ` FROM coupons
		WHERE for_specific_user = TRUE AND user_id = $1
		ORDER BY created_at DESC`

	couponCodeExistsSQL = `SELECT EXISTS (
		SELECT 1 FROM coupons WHERE code = $1 AND ($2::uuid IS NULL OR id <> $2)
	)`

	insertCouponSQL = `INSERT INTO coupons (code, description, discount_type, discount_value,
		min_order_amount, max_discount_amount, valid_from, valid_until,
		usage_limit, is_active, for_specific_user, user_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + couponColumns

	updateCouponSQL = `UPDATE coupons SET code = $2, description = $3, discount_type = $4,
		discount_value = $5, min_order_amount = $6, max_discount_amount = $7,
		valid_from = $8, valid_until = $9, usage_limit = $10, is_active = $11,
		for_specific_user = $12, user_id = $13, updated_at = now()
		WHERE id = $1
		RETURNING ` + couponColumns

	deleteCouponSQL = `DELETE FROM coupons WHERE id = $1`
)

var _ usecase.CouponRepository = (*CouponRepository)(nil)

type CouponRepository struct {
	pool *pgxpool.Pool
}

func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{pool: pool}
}

func (r *CouponRepository) FindActiveByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	rows, err := r.pool.Query(ctx, findActiveCouponByCodeSQL, code.String())
	if err != nil {
		return nil, wrapErr("finding coupon by code", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCoupon)
	if err != nil {
		return nil, wrapErr("finding coupon by code", err)
	}
	return &c, nil
}

func (r *CouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	rows, err := r.pool.Query(ctx, findCouponByIDSQL, id)
	if err != nil {
		return nil, wrapErr("finding coupon by id", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCoupon)
	if err != nil {
		return nil, wrapErr("finding coupon by id", err)
	}
	return &c, nil
}

func (r *CouponRepository) List(ctx context.Context, filters usecase.CouponListFilters, now time.Time) (shared.Page[coupon.Coupon], error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filters.Search != "" {
		p := arg("%" + filters.Search + "%")
		conds = append(conds, fmt.Sprintf("(code ILIKE %s OR description ILIKE %s)", p, p))
	}
	switch filters.Status {
	case usecase.CouponStatusActive:
		p := arg(now)
		conds = append(conds, "is_active = TRUE", fmt.Sprintf("(valid_until IS NULL OR valid_until >= %s)", p))
	case usecase.CouponStatusExpired:
		conds = append(conds, fmt.Sprintf("valid_until < %s", arg(now)))
	case usecase.CouponStatusInactive:
		conds = append(conds, "is_active = FALSE")
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM coupons"+where, args...).Scan(&total); err != nil {
		return shared.Page[coupon.Coupon]{}, wrapErr("counting coupons", err)
	}

	query := "SELECT " + couponColumns + " FROM coupons" + where +
		" ORDER BY created_at DESC LIMIT " + arg(filters.Limit) + " OFFSET " + arg(filters.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return shared.Page[coupon.Coupon]{}, wrapErr("listing coupons", err)
	}
	items, err := pgx.CollectRows(rows, scanCoupon)
	if err != nil {
		return shared.Page[coupon.Coupon]{}, wrapErr("listing coupons", err)
	}

	return shared.Page[coupon.Coupon]{Items: items, Total: total, Page: filters.Page, Limit: filters.Limit}, nil
}

func (r *CouponRepository) AvailableForUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]coupon.Coupon, error) {
	rows, err := r.pool.Query(ctx, availableCouponsSQL, userID, now)
	if err != nil {
		return nil, wrapErr("listing available coupons", err)
	}
	items, err := pgx.CollectRows(rows, scanCoupon)
	if err != nil {
		return nil, wrapErr("listing available coupons", err)
	}
	return items, nil
}

func (r *CouponRepository) PersonalForUser(ctx context.Context, userID uuid.UUID) ([]coupon.Coupon, error) {
	rows, err := r.pool.Query(ctx, personalCouponsSQL, userID)
	if err != nil {
		return nil, wrapErr("listing personal coupons", err)
	}
	items, err := pgx.CollectRows(rows, scanCoupon)
	if err != nil {
		return nil, wrapErr("listing personal coupons", err)
	}
	return items, nil
}

func (r *CouponRepository) CodeExists(ctx context.Context, code coupon.Code, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, couponCodeExistsSQL, code.String(), excludeID).Scan(&exists); err != nil {
		return false, wrapErr("checking coupon code", err)
	}
	return exists, nil
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) (*coupon.Coupon, error) {
	rows, err := r.pool.Query(ctx, insertCouponSQL,
		c.Code, c.Description, c.DiscountType, c.DiscountValue,
		c.MinOrderAmount, c.MaxDiscountAmount, c.ValidFrom, c.ValidUntil,
		c.UsageLimit, c.IsActive, c.ForSpecificUser, c.UserID, c.CreatedBy,
	)
	if err != nil {
		return nil, wrapErr("creating coupon", err)
	}
	created, err := pgx.CollectExactlyOneRow(rows, scanCoupon)
	if err != nil {
		return nil, wrapErr("creating coupon", err)
	}
	return &created, nil
}

func (r *CouponRepository) Update(ctx context.Context, c *coupon.Coupon) (*coupon.Coupon, error) {
	rows, err := r.pool.Query(ctx, updateCouponSQL,
		c.ID, c.Code, c.Description, c.DiscountType, c.DiscountValue,
		c.MinOrderAmount, c.MaxDiscountAmount, c.ValidFrom, c.ValidUntil,
		c.UsageLimit, c.IsActive, c.ForSpecificUser, c.UserID,
	)
	if err != nil {
		return nil, wrapErr("updating coupon", err)
	}
	updated, err := pgx.CollectExactlyOneRow(rows, scanCoupon)
	if err != nil {
		return nil, wrapErr("updating coupon", err)
	}
	return &updated, nil
}

func (r *CouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteCouponSQL, id)
	if err != nil {
		return wrapErr("deleting coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr("deleting coupon", pgx.ErrNoRows)
	}
	return nil
}

func scanCoupon(row pgx.CollectableRow) (coupon.Coupon, error) {
	var c coupon.Coupon
	err := row.Scan(
		&c.ID, &c.Code, &c.Description, &c.DiscountType, &c.DiscountValue,
		&c.MinOrderAmount, &c.MaxDiscountAmount, &c.ValidFrom, &c.ValidUntil,
		&c.UsageLimit, &c.UsedCount, &c.IsActive, &c.ForSpecificUser, &c.UserID,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}
