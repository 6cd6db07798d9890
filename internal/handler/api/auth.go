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
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary Register a new customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 201 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	token, userRM, err := h.authUseCase.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email is already registered")
		case errors.Is(err, usecase.ErrTokenGeneration):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid registration data")
		}
		return
	}

	httperr.OKWithMessage(c, http.StatusCreated, resdto.AuthResponse{Token: token, User: userRM}, "Registration successful")
}

// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
		return
	}

	token, userRM, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password")
		case errors.Is(err, usecase.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is blocked")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	httperr.OK(c, http.StatusOK, resdto.AuthResponse{Token: token, User: userRM})
}

// @Summary Current user profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	userRM, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found")
		case errors.Is(err, usecase.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is blocked")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	httperr.OK(c, http.StatusOK, userRM)
}
