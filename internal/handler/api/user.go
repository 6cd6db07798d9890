package api

import (
	"errors"
	"net/http"

	reqdto "tour-booking-api/internal/handler/dto/request"
	resdto "tour-booking-api/internal/handler/dto/response"
	"tour-booking-api/internal/handler/httperr"
	"tour-booking-api/internal/handler/middleware"
	"tour-booking-api/internal/usecase"
	"tour-booking-api/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// @Summary List users (admin)
// @Tags admin-users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param search query string false "Name/email search"
// @Success 200 {object} httperr.Response
// @Router /api/admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	filters := usecase.UserListFilters{
		PageParams: pageParams(c),
		Search:     c.Query("search"),
	}

	page, err := h.userUseCase.List(c.Request.Context(), filters)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, resdto.FromPage(page, func(rm readmodel.AuthorizedUserRM) readmodel.AuthorizedUserRM {
		return rm
	}))
}

// @Summary Get one user (admin)
// @Tags admin-users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id")
		return
	}

	rm, err := h.userUseCase.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	httperr.OK(c, http.StatusOK, rm)
}

// @Summary Create a user (admin)
// @Tags admin-users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUserRequest true "User"
// @Success 201 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Router /api/admin/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	created, err := h.userUseCase.Create(c.Request.Context(), req.ToInput(), actorID)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email is already registered")
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user data")
		return
	}

	httperr.OKWithMessage(c, http.StatusCreated, created, "User created")
}

// @Summary Update a user (admin)
// @Tags admin-users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateUserRequest true "User"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id")
		return
	}

	var req reqdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	updated, err := h.userUseCase.Update(c.Request.Context(), id, req.ToInput(), actorID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email is already registered")
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user data")
		}
		return
	}

	httperr.OKWithMessage(c, http.StatusOK, updated, "User updated")
}

// @Summary Reset a user's password (admin)
// @Tags admin-users
// @Accept json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.ResetPasswordRequest true "New password"
// @Success 200 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/users/{id}/reset-password [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id")
		return
	}

	var req reqdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	if err := h.userUseCase.ResetPassword(c.Request.Context(), id, req.NewPassword, actorID); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid password")
		return
	}

	httperr.OKWithMessage(c, http.StatusOK, nil, "Password reset")
}

// @Summary Delete a user (admin)
// @Tags admin-users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id")
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), id, actorID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrSelfDelete):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cannot delete your own account")
		case errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	httperr.OKWithMessage(c, http.StatusOK, nil, "User deleted")
}
