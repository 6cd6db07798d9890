package repository

import (
	"context"

	"tour-booking-api/internal/domain/category"
	"tour-booking-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `id, name, description, image_url, is_active, created_at, updated_at`

const (
	listActiveCategoriesSQL = `SELECT ` + categoryColumns + ` FROM categories
		WHERE is_active = TRUE ORDER BY name`

	findCategoryByIDSQL = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	activeTourCountSQL = `SELECT count(*) FROM tours WHERE category_id = $1 AND is_active = TRUE`

	insertCategorySQL = `INSERT INTO categories (name, description, image_url, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + categoryColumns

	updateCategorySQL = `UPDATE categories SET name = $2, description = $3, image_url = $4,
		is_active = $5, updated_at = now()
		WHERE id = $1
		RETURNING ` + categoryColumns

	deleteCategorySQL = `DELETE FROM categories WHERE id = $1`
)

var _ usecase.CategoryRepository = (*CategoryRepository)(nil)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) ListActive(ctx context.Context) ([]category.Category, error) {
	rows, err := r.pool.Query(ctx, listActiveCategoriesSQL)
	if err != nil {
		return nil, wrapErr("listing active categories", err)
	}
	items, err := pgx.CollectRows(rows, scanCategory)
	if err != nil {
		return nil, wrapErr("listing active categories", err)
	}
	return items, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	rows, err := r.pool.Query(ctx, findCategoryByIDSQL, id)
	if err != nil {
		return nil, wrapErr("finding category by id", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCategory)
	if err != nil {
		return nil, wrapErr("finding category by id", err)
	}
	return &c, nil
}

func (r *CategoryRepository) ActiveTourCount(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, activeTourCountSQL, id).Scan(&count); err != nil {
		return 0, wrapErr("counting category tours", err)
	}
	return count, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	rows, err := r.pool.Query(ctx, insertCategorySQL, c.Name, c.Description, c.ImageURL, c.IsActive)
	if err != nil {
		return nil, wrapErr("creating category", err)
	}
	created, err := pgx.CollectExactlyOneRow(rows, scanCategory)
	if err != nil {
		return nil, wrapErr("creating category", err)
	}
	return &created, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	rows, err := r.pool.Query(ctx, updateCategorySQL, c.ID, c.Name, c.Description, c.ImageURL, c.IsActive)
	if err != nil {
		return nil, wrapErr("updating category", err)
	}
	updated, err := pgx.CollectExactlyOneRow(rows, scanCategory)
	if err != nil {
		return nil, wrapErr("updating category", err)
	}
	return &updated, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteCategorySQL, id)
	if err != nil {
		return wrapErr("deleting category", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr("deleting category", pgx.ErrNoRows)
	}
	return nil
}

func scanCategory(row pgx.CollectableRow) (category.Category, error) {
	var c category.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
