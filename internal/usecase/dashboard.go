package usecase

import (
	"context"

	"tour-booking-api/internal/usecase/readmodel"
)

type DashboardRepository interface {
	GetStats(ctx context.Context) (*readmodel.DashboardRM, error)
}

type DashboardUseCase interface {
	GetStats(ctx context.Context) (*readmodel.DashboardRM, error)
}

type dashboardUseCaseImpl struct {
	dashboardRepo DashboardRepository
}

func NewDashboardUseCase(dashboardRepo DashboardRepository) DashboardUseCase {
	return &dashboardUseCaseImpl{dashboardRepo: dashboardRepo}
}

func (u *dashboardUseCaseImpl) GetStats(ctx context.Context) (*readmodel.DashboardRM, error) {
	return u.dashboardRepo.GetStats(ctx)
}
