package api

import (
	"net/http"
	"strconv"

	resdto "tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/internal/handler/httperr"
	"tour-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
	adminLogUseCase  usecase.AdminLogUseCase
}

func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase, adminLogUseCase usecase.AdminLogUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		adminLogUseCase:  adminLogUseCase,
	}
}

// @Summary Dashboard counters (admin)
// @Tags admin-dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httperr.Response
// @Router /api/admin/dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardUseCase.GetStats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, stats)
}

// @Summary Admin audit log (admin)
// @Tags admin-dashboard
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Param user_id query string false "Filter by acting admin"
// @Success 200 {object} httperr.Response
// @Router /api/admin/logs [get]
func (h *DashboardHandler) Logs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var userID *uuid.UUID
	if v := c.Query("user_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id")
			return
		}
		userID = &id
	}

	entries, total, err := h.adminLogUseCase.List(c.Request.Context(), userID, page, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, gin.H{
		"items": resdto.FromAdminLogs(entries),
		"total": total,
	})
}
