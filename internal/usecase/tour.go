package usecase

import (
	"context"
	"errors"
	"time"

	"tour-booking-api/internal/domain/adminlog"
	"tour-booking-api/internal/domain/tour"
	"tour-booking-api/internal/infra"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTourNotFound     = errors.New("tour not found")
	ErrInvalidTourInput = errors.New("invalid tour data")
)

type TourRepository interface {
	ListActive(ctx context.Context) ([]tour.Tour, error)
	FindByID(ctx context.Context, id uuid.UUID) (*tour.Tour, error)
	Create(ctx context.Context, t *tour.Tour) (*tour.Tour, error)
	Update(ctx context.Context, t *tour.Tour) (*tour.Tour, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TourInput struct {
	Name         string
	Description  *string
	Price        decimal.Decimal
	CategoryID   *uuid.UUID
	StartDate    *time.Time
	EndDate      *time.Time
	DurationDays int32
	MaxTravelers int32
	ImageURL     string
	Included     []string
	NotIncluded  []string
	IsPopular    bool
	IsDiscounted bool
	IsActive     bool
}

type TourUseCase interface {
	ListActive(ctx context.Context) ([]tour.Tour, error)
	Get(ctx context.Context, id uuid.UUID) (*tour.Tour, error)
	Create(ctx context.Context, input TourInput, actorID uuid.UUID) (*tour.Tour, error)
	Update(ctx context.Context, id uuid.UUID, input TourInput, actorID uuid.UUID) (*tour.Tour, error)
	Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error
}

type tourUseCaseImpl struct {
	tourRepo     TourRepository
	adminLogRepo AdminLogRepository
}

func NewTourUseCase(tourRepo TourRepository, adminLogRepo AdminLogRepository) TourUseCase {
	return &tourUseCaseImpl{
		tourRepo:     tourRepo,
		adminLogRepo: adminLogRepo,
	}
}

func (u *tourUseCaseImpl) ListActive(ctx context.Context) ([]tour.Tour, error) {
	return u.tourRepo.ListActive(ctx)
}

func (u *tourUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*tour.Tour, error) {
	t, err := u.tourRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	return t, nil
}

func (u *tourUseCaseImpl) Create(ctx context.Context, input TourInput, actorID uuid.UUID) (*tour.Tour, error) {
	t, err := buildTour(input)
	if err != nil {
		return nil, err
	}

	created, err := u.tourRepo.Create(ctx, t)
	if err != nil {
		return nil, err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionCreate, "tour", &created.ID, nil, created)
	return created, nil
}

func (u *tourUseCaseImpl) Update(ctx context.Context, id uuid.UUID, input TourInput, actorID uuid.UUID) (*tour.Tour, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	t, err := buildTour(input)
	if err != nil {
		return nil, err
	}
	t.ID = id

	updated, err := u.tourRepo.Update(ctx, t)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionUpdate, "tour", &id, existing, updated)
	return updated, nil
}

func (u *tourUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, actorID uuid.UUID) error {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := u.tourRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTourNotFound
		}
		return err
	}

	writeAdminLog(ctx, u.adminLogRepo, actorID, adminlog.ActionDelete, "tour", &id, existing, nil)
	return nil
}

func buildTour(input TourInput) (*tour.Tour, error) {
	if input.Name == "" || !input.Price.IsPositive() {
		return nil, ErrInvalidTourInput
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, ErrInvalidTourInput
	}

	t := &tour.Tour{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		CategoryID:   input.CategoryID,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		DurationDays: input.DurationDays,
		MaxTravelers: input.MaxTravelers,
		ImageURL:     input.ImageURL,
		Included:     input.Included,
		NotIncluded:  input.NotIncluded,
		IsPopular:    input.IsPopular,
		IsDiscounted: input.IsDiscounted,
		IsActive:     input.IsActive,
	}

	if t.DurationDays <= 0 {
		t.DurationDays = tour.DefaultDurationDays
	}
	if t.MaxTravelers <= 0 {
		t.MaxTravelers = tour.DefaultMaxTravelers
	}
	if t.ImageURL == "" {
		t.ImageURL = tour.DefaultImageURL
	}
	if t.Included == nil {
		t.Included = []string{}
	}
	if t.NotIncluded == nil {
		t.NotIncluded = []string{}
	}

	return t, nil
}
