package usecase

import (
	"context"
	"errors"

	"tour-booking-api/internal/domain/adminlog"
	"tour-booking-api/internal/domain/category"
	"tour-booking-api/internal/infra"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryHasTours     = errors.New("category still has active tours")
	ErrInvalidCategoryInput = errors.New("invalid category data")
)

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]category.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error)
	ActiveTourCount(ctx context.Context, id uuid.UUID) (int64, error)
	Create(ctx context.Context, c *category.Category) (*category.Category, error)
	Update(ctx context.Context, c *category.Category) (*category.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryInput struct {
	Name        string
	Description *string
	ImageURL    *string
	IsActive    bool
}

type CategoryUseCase interface {
	ListActive(ctx context.Context) ([]category.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*category.Category, error)
	Create(ctx context.Context, input CategoryInput, actorID uuid.UUID) (*category.Category, error)
	Update(ctx context.Context, id uuid.UUID, input CategoryInput, actorID uuid.UUID) (*category.Category, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
}

type categoryUseCaseImpl struct {
	categoryRepo CategoryRepository
	adminLogRepo AdminLogRepository
}

func NewCategoryUseCase(categoryRepo CategoryRepository, adminLogRepo AdminLogRepository) CategoryUseCase {
	return &categoryUseCaseImpl{
		categoryRepo: categoryRepo,
		adminLogRepo: adminLogRepo,
	}
}

func (u *categoryUseCaseImpl) ListActive(ctx context.Context) ([]category.Category, error) {
	return u.categoryRepo.ListActive(ctx)
}

func (u *categoryUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	c, err := u.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

func (u *categoryUseCaseImpl) Create(ctx context.Context, input CategoryInput, actorID uuid.UUID) (*category.Category, error) {
	if input.Name == "" {
		return nil, ErrInvalidCategoryInput
	}

	created, err := u.categoryRepo.Create(ctx, &category.Category{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IsActive:    input.IsActive,
	})
	if err != nil {
		return nil, err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionCreate, "category", &created.ID, nil, created)
	return created, nil
}

func (u *categoryUseCaseImpl) Update(ctx context.Context, id uuid.UUID, input CategoryInput, actorID uuid.UUID) (*category.Category, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, ErrInvalidCategoryInput
	}

	updated, err := u.categoryRepo.Update(ctx, &category.Category{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IsActive:    input.IsActive,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionUpdate, "category", &id, existing, updated)
	return updated, nil
}

func (u *categoryUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return err
	}

	count, err := u.categoryRepo.ActiveTourCount(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryHasTours
	}

	if err := u.categoryRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionDelete, "category", &id, existing, nil)
	return nil
}
