package repository

import (
	"context"

	"tour-booking-api/internal/domain/tour"
	"tour-booking-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const tourColumns = `t.id, t.name, t.description, t.price, t.category_id, c.name,
	t.start_date, t.end_date, t.duration_days, t.max_travelers, t.image_url,
	t.included, t.not_included, t.is_popular, t.is_discounted, t.is_active,
	t.created_at, t.updated_at`

const (
	listActiveToursSQL = `SELECT ` + tourColumns + ` FROM tours t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.is_active = TRUE
		ORDER BY t.created_at DESC`

	findTourByIDSQL = `SELECT ` + tourColumns + ` FROM tours t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.id = $1`

	insertTourSQL = `INSERT INTO tours (name, description, price, category_id, start_date, end_date,
		duration_days, max_travelers, image_url, included, not_included,
		is_popular, is_discounted, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	updateTourSQL = `UPDATE tours SET name = $2, description = $3, price = $4, category_id = $5,
		start_date = $6, end_date = $7, duration_days = $8, max_travelers = $9,
		image_url = $10, included = $11, not_included = $12, is_popular = $13,
		is_discounted = $14, is_active = $15, updated_at = now()
		WHERE id = $1`

	deleteTourSQL = `DELETE FROM tours WHERE id = $1`
)

var _ usecase.TourRepository = (*TourRepository)(nil)

type TourRepository struct {
	pool *pgxpool.Pool
}

func NewTourRepository(pool *pgxpool.Pool) *TourRepository {
	return &TourRepository{pool: pool}
}

func (r *TourRepository) ListActive(ctx context.Context) ([]tour.Tour, error) {
	rows, err := r.pool.Query(ctx, listActiveToursSQL)
	if err != nil {
		return nil, wrapErr("listing active tours", err)
	}
	items, err := pgx.CollectRows(rows, scanTour)
	if err != nil {
		return nil, wrapErr("listing active tours", err)
	}
	return items, nil
}

func (r *TourRepository) FindByID(ctx context.Context, id uuid.UUID) (*tour.Tour, error) {
	rows, err := r.pool.Query(ctx, findTourByIDSQL, id)
	if err != nil {
		return nil, wrapErr("finding tour by id", err)
	}
	t, err := pgx.CollectExactlyOneRow(rows, scanTour)
	if err != nil {
		return nil, wrapErr("finding tour by id", err)
	}
	return &t, nil
}

func (r *TourRepository) Create(ctx context.Context, t *tour.Tour) (*tour.Tour, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, insertTourSQL,
		t.Name, t.Description, t.Price, t.CategoryID, t.StartDate, t.EndDate,
		t.DurationDays, t.MaxTravelers, t.ImageURL, t.Included, t.NotIncluded,
		t.IsPopular, t.IsDiscounted, t.IsActive,
	).Scan(&id)
	if err != nil {
		return nil, wrapErr("creating tour", err)
	}
	return r.FindByID(ctx, id)
}

func (r *TourRepository) Update(ctx context.Context, t *tour.Tour) (*tour.Tour, error) {
	tag, err := r.pool.Exec(ctx, updateTourSQL,
		t.ID, t.Name, t.Description, t.Price, t.CategoryID, t.StartDate, t.EndDate,
		t.DurationDays, t.MaxTravelers, t.ImageURL, t.Included, t.NotIncluded,
		t.IsPopular, t.IsDiscounted, t.IsActive,
	)
	if err != nil {
		return nil, wrapErr("updating tour", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, wrapErr("updating tour", pgx.ErrNoRows)
	}
	return r.FindByID(ctx, t.ID)
}

func (r *TourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteTourSQL, id)
	if err != nil {
		return wrapErr("deleting tour", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr("deleting tour", pgx.ErrNoRows)
	}
	return nil
}

func scanTour(row pgx.CollectableRow) (tour.Tour, error) {
	var t tour.Tour
	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.Price, &t.CategoryID, &t.CategoryName,
		&t.StartDate, &t.EndDate, &t.DurationDays, &t.MaxTravelers, &t.ImageURL,
		&t.Included, &t.NotIncluded, &t.IsPopular, &t.IsDiscounted, &t.IsActive,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}
