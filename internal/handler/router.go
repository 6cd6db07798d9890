package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tour-booking-api/internal/handler/api"
	"tour-booking-api/internal/handler/middleware"
	"tour-booking-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Coupon    *api.CouponHandler
	Tour      *api.TourHandler
	Category  *api.CategoryHandler
	Booking   *api.BookingHandler
	User      *api.UserHandler
	Dashboard *api.DashboardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireAdmin()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/profile", Handler: h.Auth.Profile},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: h.Coupon.Validate},
			})
		}

		userGroup := apiGroup.Group("/user")
		userGroup.Use(authMiddleware.RequireAuth())
		{
			addRoutes(userGroup, []route{
				{Method: http.MethodGet, Path: "/coupons", Handler: h.Coupon.UserCoupons},
				{Method: http.MethodGet, Path: "/personal-coupons", Handler: h.Coupon.PersonalCoupons},
			})
		}

		tours := apiGroup.Group("/tours")
		{
			addRoutes(tours, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Tour.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Tour.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Tour.Create, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Tour.Update, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Tour.Delete, Mw: adminOnly},
			})
		}

		categories := apiGroup.Group("/categories")
		{
			addRoutes(categories, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Category.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Category.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Category.Create, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Category.Update, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Category.Delete, Mw: adminOnly},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Dashboard.Stats},
				{Method: http.MethodGet, Path: "/logs", Handler: h.Dashboard.Logs},

				{Method: http.MethodGet, Path: "/coupons", Handler: h.Coupon.List},
				{Method: http.MethodGet, Path: "/coupons/:id", Handler: h.Coupon.Get},
				{Method: http.MethodPost, Path: "/coupons", Handler: h.Coupon.Create},
				{Method: http.MethodPut, Path: "/coupons/:id", Handler: h.Coupon.Update},
				{Method: http.MethodDelete, Path: "/coupons/:id", Handler: h.Coupon.Delete},

				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
				{Method: http.MethodPut, Path: "/bookings/:id", Handler: h.Booking.Update},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Booking.UpdateStatus},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.Delete},

				{Method: http.MethodGet, Path: "/users", Handler: h.User.List},
				{Method: http.MethodGet, Path: "/users/:id", Handler: h.User.Get},
				{Method: http.MethodPost, Path: "/users", Handler: h.User.Create},
				{Method: http.MethodPut, Path: "/users/:id", Handler: h.User.Update},
				{Method: http.MethodPost, Path: "/users/:id/reset-password", Handler: h.User.ResetPassword},
				{Method: http.MethodDelete, Path: "/users/:id", Handler: h.User.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
