package repository

import (
	"context"

	"tour-booking-api/internal/domain/adminlog"
	"tour-booking-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	insertAdminLogSQL = `INSERT INTO admin_logs (user_id, action, entity_type, entity_id, old_values, new_values)
		VALUES ($1, $2, $3, $4, $5, $6)`

	listAdminLogsSQL = `SELECT id, user_id, action, entity_type, entity_id, old_values, new_values, created_at
		FROM admin_logs
		WHERE ($1::uuid IS NULL OR user_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	countAdminLogsSQL = `SELECT count(*) FROM admin_logs WHERE ($1::uuid IS NULL OR user_id = $1)`
)

var _ usecase.AdminLogRepository = (*AdminLogRepository)(nil)

type AdminLogRepository struct {
	pool *pgxpool.Pool
}

func NewAdminLogRepository(pool *pgxpool.Pool) *AdminLogRepository {
	return &AdminLogRepository{pool: pool}
}

func (r *AdminLogRepository) Append(ctx context.Context, entry adminlog.Entry) error {
	_, err := r.pool.Exec(ctx, insertAdminLogSQL,
		entry.UserID, entry.Action, entry.EntityType, entry.EntityID,
		entry.OldValues, entry.NewValues,
	)
	if err != nil {
		return wrapErr("appending admin log", err)
	}
	return nil
}

func (r *AdminLogRepository) List(ctx context.Context, userID *uuid.UUID, page, limit int) ([]adminlog.Entry, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, countAdminLogsSQL, userID).Scan(&total); err != nil {
		return nil, 0, wrapErr("counting admin logs", err)
	}

	rows, err := r.pool.Query(ctx, listAdminLogsSQL, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, wrapErr("listing admin logs", err)
	}
	items, err := pgx.CollectRows(rows, scanAdminLog)
	if err != nil {
		return nil, 0, wrapErr("listing admin logs", err)
	}
	return items, total, nil
}

func scanAdminLog(row pgx.CollectableRow) (adminlog.Entry, error) {
	var e adminlog.Entry
	err := row.Scan(&e.ID, &e.UserID, &e.Action, &e.EntityType, &e.EntityID, &e.OldValues, &e.NewValues, &e.CreatedAt)
	return e, err
}
