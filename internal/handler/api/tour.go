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

type TourHandler struct {
	tourUseCase usecase.TourUseCase
}

func NewTourHandler(tourUseCase usecase.TourUseCase) *TourHandler {
	return &TourHandler{
		tourUseCase: tourUseCase,
	}
}

// @Summary List active tours
// @Tags tours
// @Produce json
// @Success 200 {object} httperr.Response
// @Router /api/tours [get]
func (h *TourHandler) List(c *gin.Context) {
	tours, err := h.tourUseCase.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromTours(tours))
}

// @Summary Get one tour
// @Tags tours
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/tours/{id} [get]
func (h *TourHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tour id")
		return
	}

	t, err := h.tourUseCase.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrTourNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tour not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromTour(*t))
}

// @Summary Create a tour (admin)
// @Tags admin-tours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.TourRequest true "Tour"
// @Success 201 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Router /api/tours [post]
func (h *TourHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	var req reqdto.TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	created, err := h.tourUseCase.Create(c.Request.Context(), req.ToInput(), actorID)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidTourInput) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tour data")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OKWithMessage(c, http.StatusCreated, resdto.FromTour(*created), "Tour created")
}

// @Summary Update a tour (admin)
// @Tags admin-tours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tour ID"
// @Param request body reqdto.TourRequest true "Tour"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/tours/{id} [put]
func (h *TourHandler) Update(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tour id")
		return
	}

	var req reqdto.TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	updated, err := h.tourUseCase.Update(c.Request.Context(), id, req.ToInput(), actorID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTourNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tour not found")
		case errors.Is(err, usecase.ErrInvalidTourInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tour data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	httperr.OKWithMessage(c, http.StatusOK, resdto.FromTour(*updated), "Tour updated")
}

// @Summary Delete a tour (admin)
// @Tags admin-tours
// @Security BearerAuth
// @Param id path string true "Tour ID"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/tours/{id} [delete]
func (h *TourHandler) Delete(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tour id")
		return
	}

	if err := h.tourUseCase.Delete(c.Request.Context(), id, actorID); err != nil {
		if errors.Is(err, usecase.ErrTourNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tour not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OKWithMessage(c, http.StatusOK, nil, "Tour deleted")
}
