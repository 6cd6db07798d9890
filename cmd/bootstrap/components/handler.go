package components

import (
	"tour-booking-api/internal/handler"
	"tour-booking-api/internal/handler/api"
	"tour-booking-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCouponHandler,
		api.NewTourHandler,
		api.NewCategoryHandler,
		api.NewBookingHandler,
		api.NewUserHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	coupon *api.CouponHandler,
	tour *api.TourHandler,
	category *api.CategoryHandler,
	booking *api.BookingHandler,
	user *api.UserHandler,
	dashboard *api.DashboardHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Coupon:    coupon,
		Tour:      tour,
		Category:  category,
		Booking:   booking,
		User:      user,
		Dashboard: dashboard,
	}
}
