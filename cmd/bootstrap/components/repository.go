package components

import (
	repo_impl "tour-booking-api/internal/infra/repository"
	"tour-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.AuthUserRepository)),
			fx.As(new(usecase.AdminUserRepository)),
		),
		fx.Annotate(
			repo_impl.NewCouponRepository,
			fx.As(new(usecase.CouponRepository)),
		),
		fx.Annotate(
			repo_impl.NewTourRepository,
			fx.As(new(usecase.TourRepository)),
		),
		fx.Annotate(
			repo_impl.NewCategoryRepository,
			fx.As(new(usecase.CategoryRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewAdminLogRepository,
			fx.As(new(usecase.AdminLogRepository)),
		),
		fx.Annotate(
			repo_impl.NewDashboardRepository,
			fx.As(new(usecase.DashboardRepository)),
		),
	),
)
