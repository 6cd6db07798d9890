package api

import (
	"errors"
	"net/http"

	reqdto "tour-booking-api/internal/handler/dto/request"
	resdto "tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/internal/handler/httperr"
	"tour-booking-api/internal/handler/middleware"
	"tour-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary List bookings (admin)
// @Tags admin-bookings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param status query string false "pending|confirmed|cancelled|completed"
// @Param search query string false "Customer name/email or tour name"
// @Success 200 {object} httperr.Response
// @Router /api/admin/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	filters := usecase.BookingListFilters{
		PageParams: pageParams(c),
		Status:     c.Query("status"),
		Search:     c.Query("search"),
	}

	page, err := h.bookingUseCase.List(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidBookingStatus) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking status")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromPage(page, resdto.FromBooking))
}

// @Summary Get one booking (admin)
// @Tags admin-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id")
		return
	}

	b, err := h.bookingUseCase.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromBooking(*b))
}

// @Summary Create a booking (admin)
// @Tags admin-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookingRequest true "Booking"
// @Success 201 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Router /api/admin/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	created, rejection, err := h.bookingUseCase.Create(c.Request.Context(), req.ToInput(), actorID)
	if err != nil {
		h.abortBookingMutation(c, err)
		return
	}
	if rejection != nil {
		httperr.AbortWithError(c, rejectionStatus(rejection), nil, rejectionMessage(rejection))
		return
	}

	httperr.OKWithMessage(c, http.StatusCreated, resdto.FromBooking(*created), "Booking created")
}

// @Summary Update a booking (admin)
// @Tags admin-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.BookingRequest true "Booking"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id")
		return
	}

	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	updated, rejection, err := h.bookingUseCase.Update(c.Request.Context(), id, req.ToInput(), actorID)
	if err != nil {
		h.abortBookingMutation(c, err)
		return
	}
	if rejection != nil {
		httperr.AbortWithError(c, rejectionStatus(rejection), nil, rejectionMessage(rejection))
		return
	}

	httperr.OKWithMessage(c, http.StatusOK, resdto.FromBooking(*updated), "Booking updated")
}

// @Summary Change booking status (admin)
// @Tags admin-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.BookingStatusRequest true "Status"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id")
		return
	}

	var req reqdto.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	updated, err := h.bookingUseCase.UpdateStatus(c.Request.Context(), id, req.Status, actorID)
	if err != nil {
		h.abortBookingMutation(c, err)
		return
	}

	httperr.OKWithMessage(c, http.StatusOK, resdto.FromBooking(*updated), "Booking status updated")
}

// @Summary Delete a booking (admin)
// @Tags admin-bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id")
		return
	}

	if err := h.bookingUseCase.Delete(c.Request.Context(), id, actorID); err != nil {
		h.abortBookingMutation(c, err)
		return
	}

	httperr.OKWithMessage(c, http.StatusOK, nil, "Booking deleted")
}

func (h *BookingHandler) abortBookingMutation(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
	case errors.Is(err, usecase.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Customer not found")
	case errors.Is(err, usecase.ErrTourNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Tour not found")
	case errors.Is(err, usecase.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found")
	case errors.Is(err, usecase.ErrInvalidBookingStatus):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking status")
	case errors.Is(err, usecase.ErrInvalidBookingInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking data")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
