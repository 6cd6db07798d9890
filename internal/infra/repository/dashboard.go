package repository

import (
	"context"

	"tour-booking-api/internal/usecase"
	"tour-booking-api/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgxpool"
)

// One round trip for all dashboard counters.
const dashboardStatsSQL = `SELECT
	(SELECT count(*) FROM users),
	(SELECT count(*) FROM users WHERE role = 'admin'),
	(SELECT count(*) FROM users WHERE status = 'active'),
	(SELECT count(*) FROM users WHERE status = 'blocked'),
	(SELECT count(*) FROM tours),
	(SELECT count(*) FROM tours WHERE is_popular),
	(SELECT count(*) FROM tours WHERE is_discounted),
	(SELECT count(*) FROM tours WHERE is_active),
	(SELECT count(*) FROM categories),
	(SELECT count(*) FROM categories WHERE is_active),
	(SELECT count(*) FROM bookings),
	(SELECT count(*) FROM bookings WHERE status = 'pending'),
	(SELECT count(*) FROM bookings WHERE status = 'confirmed'),
	(SELECT count(*) FROM bookings WHERE status = 'cancelled'),
	(SELECT count(*) FROM bookings WHERE status = 'completed'),
	(SELECT count(*) FROM coupons),
	(SELECT count(*) FROM coupons WHERE is_active),
	(SELECT count(*) FROM coupons WHERE NOT is_active),
	(SELECT count(*) FROM coupons WHERE for_specific_user),
	(SELECT COALESCE(sum(used_count), 0) FROM coupons)`

var _ usecase.DashboardRepository = (*DashboardRepository)(nil)

type DashboardRepository struct {
	pool *pgxpool.Pool
}

func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

func (r *DashboardRepository) GetStats(ctx context.Context) (*readmodel.DashboardRM, error) {
	var rm readmodel.DashboardRM
	err := r.pool.QueryRow(ctx, dashboardStatsSQL).Scan(
		&rm.Users.Total, &rm.Users.Admins, &rm.Users.Active, &rm.Users.Blocked,
		&rm.Tours.Total, &rm.Tours.Popular, &rm.Tours.Discounted, &rm.Tours.Active,
		&rm.Categories.Total, &rm.Categories.Active,
		&rm.Bookings.Total, &rm.Bookings.Pending, &rm.Bookings.Confirmed,
		&rm.Bookings.Cancelled, &rm.Bookings.Completed,
		&rm.Coupons.Total, &rm.Coupons.Active, &rm.Coupons.Inactive,
		&rm.Coupons.Personal, &rm.Coupons.TotalUses,
	)
	if err != nil {
		return nil, wrapErr("loading dashboard stats", err)
	}
	return &rm, nil
}
