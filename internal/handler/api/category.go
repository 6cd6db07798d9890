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

type CategoryHandler struct {
	categoryUseCase usecase.CategoryUseCase
}

func NewCategoryHandler(categoryUseCase usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
	}
}

// @Summary List active categories
// @Tags categories
// @Produce json
// @Success 200 {object} httperr.Response
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryUseCase.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromCategories(categories))
}

// @Summary Get one category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category id")
		return
	}

	cat, err := h.categoryUseCase.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrCategoryNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Category not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromCategory(*cat))
}

// @Summary Create a category (admin)
// @Tags admin-categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CategoryRequest true "Category"
// @Success 201 {object} httperr.Response
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	created, err := h.categoryUseCase.Create(c.Request.Context(), req.ToInput(), actorID)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCategoryInput) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category data")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OKWithMessage(c, http.StatusCreated, resdto.FromCategory(*created), "Category created")
}

// @Summary Update a category (admin)
// @Tags admin-categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body reqdto.CategoryRequest true "Category"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category id")
		return
	}

	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	updated, err := h.categoryUseCase.Update(c.Request.Context(), id, req.ToInput(), actorID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCategoryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Category not found")
		case errors.Is(err, usecase.ErrInvalidCategoryInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	httperr.OKWithMessage(c, http.StatusOK, resdto.FromCategory(*updated), "Category updated")
}

// @Summary Delete a category (admin)
// @Tags admin-categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid category id")
		return
	}

	if err := h.categoryUseCase.Delete(c.Request.Context(), id, actorID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCategoryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Category not found")
		case errors.Is(err, usecase.ErrCategoryHasTours):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Category still has active tours")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	httperr.OKWithMessage(c, http.StatusOK, nil, "Category deleted")
}
