package components

import (
	"tour-booking-api/internal/pkg/clock"
	"tour-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewTokenValidator,
		usecase.NewAuthUseCase,
		usecase.NewCouponUseCase,
		usecase.NewTourUseCase,
		usecase.NewCategoryUseCase,
		usecase.NewBookingUseCase,
		usecase.NewUserUseCase,
		usecase.NewAdminLogUseCase,
		usecase.NewDashboardUseCase,
	),
)
