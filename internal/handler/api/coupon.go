package api

import (
	"errors"
	"fmt"
	"net/http"

	"tour-booking-api/internal/domain/coupon"
	reqdto "tour-booking-api/internal/handler/dto/request"
	resdto "tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/internal/handler/httperr"
	"tour-booking-api/internal/handler/middleware"
	"tour-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	couponUseCase usecase.CouponUseCase
}

func NewCouponHandler(couponUseCase usecase.CouponUseCase) *CouponHandler {
	return &CouponHandler{
		couponUseCase: couponUseCase,
	}
}

// rejectionMessage maps an evaluation outcome to a human-readable message.
func rejectionMessage(rej *coupon.Rejection) string {
	switch rej.Reason {
	case coupon.ReasonNotYetActive:
		return "Coupon is not active yet"
	case coupon.ReasonExpired:
		return "Coupon has expired"
	case coupon.ReasonUsageLimitReached:
		return "Coupon usage limit has been reached"
	case coupon.ReasonBelowMinimumOrder:
		return fmt.Sprintf("Minimum order amount of %s is required", rej.MinOrderAmount.String())
	case coupon.ReasonWrongUser:
		return "This coupon is reserved for another customer"
	default:
		return "Coupon cannot be applied"
	}
}

func rejectionStatus(rej *coupon.Rejection) int {
	if rej.Reason == coupon.ReasonWrongUser {
		return http.StatusForbidden
	}
	return http.StatusBadRequest
}

// @Summary Validate a coupon against an order amount
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateCouponRequest true "Validation request"
// @Success 200 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}
	if req.OrderAmount.IsNegative() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Order amount cannot be negative")
		return
	}

	userID := requesterID
	if req.UserID != nil {
		userID = *req.UserID
	}

	rm, rejection, err := h.couponUseCase.Validate(c.Request.Context(), req.Code, req.OrderAmount, userID)
	if err != nil {
		if errors.Is(err, usecase.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	if rejection != nil {
		httperr.AbortWithError(c, rejectionStatus(rejection), nil, rejectionMessage(rejection))
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromCouponValidation(rm))
}

// @Summary Coupons currently available to the user
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httperr.Response
// @Router /api/user/coupons [get]
func (h *CouponHandler) UserCoupons(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	coupons, err := h.couponUseCase.AvailableForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromCoupons(coupons))
}

// @Summary Coupons bound to the user personally
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httperr.Response
// @Router /api/user/personal-coupons [get]
func (h *CouponHandler) PersonalCoupons(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	coupons, err := h.couponUseCase.PersonalForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromCoupons(coupons))
}

// @Summary List coupons (admin)
// @Tags admin-coupons
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param search query string false "Code/description search"
// @Param status query string false "all|active|expired|inactive"
// @Success 200 {object} httperr.Response
// @Router /api/admin/coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	filters := usecase.CouponListFilters{
		PageParams: pageParams(c),
		Search:     c.Query("search"),
		Status:     usecase.CouponStatusFilter(c.DefaultQuery("status", "all")),
	}

	page, err := h.couponUseCase.List(c.Request.Context(), filters)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromPage(page, resdto.FromCoupon))
}

// @Summary Get one coupon (admin)
// @Tags admin-coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon id")
		return
	}

	cp, err := h.couponUseCase.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromCoupon(*cp))
}

// @Summary Create a coupon (admin)
// @Tags admin-coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CouponRequest true "Coupon"
// @Success 201 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Router /api/admin/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	created, err := h.couponUseCase.Create(c.Request.Context(), req.ToInput(), actorID)
	if err != nil {
		h.abortCouponMutation(c, err)
		return
	}

	httperr.OKWithMessage(c, http.StatusCreated, resdto.FromCoupon(*created), "Coupon created")
}

// @Summary Update a coupon (admin)
// @Tags admin-coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.CouponRequest true "Coupon"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/coupons/{id} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon id")
		return
	}

	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	updated, err := h.couponUseCase.Update(c.Request.Context(), id, req.ToInput(), actorID)
	if err != nil {
		h.abortCouponMutation(c, err)
		return
	}

	httperr.OKWithMessage(c, http.StatusOK, resdto.FromCoupon(*updated), "Coupon updated")
}

// @Summary Delete a coupon (admin)
// @Tags admin-coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon id")
		return
	}

	if err := h.couponUseCase.Delete(c.Request.Context(), id, actorID); err != nil {
		if errors.Is(err, usecase.ErrCouponInUse) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon has already been used and cannot be deleted")
			return
		}
		h.abortCouponMutation(c, err)
		return
	}

	httperr.OKWithMessage(c, http.StatusOK, nil, "Coupon deleted")
}

func (h *CouponHandler) abortCouponMutation(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found")
	case errors.Is(err, usecase.ErrCouponCodeTaken):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Coupon code already exists")
	case errors.Is(err, usecase.ErrCouponTargetUser):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Target user for personal coupon not found")
	case errors.Is(err, usecase.ErrInvalidCouponInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid coupon data")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
