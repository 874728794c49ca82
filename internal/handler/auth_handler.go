package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/apperrors"
	"taskboard/internal/service"
)

// AuthHandler handles the unprotected registration and login endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} apperrors.Envelope
// @Failure 400 {object} apperrors.Envelope
// @Failure 500 {object} apperrors.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Name, req.Password)
	if err != nil {
		he := apperrors.MapToHTTP(err)
		return c.JSON(he.StatusCode, he.Envelope())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"error":   false,
		"message": "user registered successfully",
		"user": echo.Map{
			"name":       user.Name,
			"email":      user.Email,
			"created_at": user.CreatedAt.Format("2006-01-02 15:04:05"),
		},
	})
}

// Login godoc
// @Summary Log in and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} apperrors.Envelope
// @Failure 400 {object} apperrors.Envelope
// @Failure 401 {object} apperrors.Envelope
// @Failure 404 {object} apperrors.Envelope
// @Failure 500 {object} apperrors.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		he := apperrors.MapToHTTP(err)
		return c.JSON(he.StatusCode, he.Envelope())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "login successful",
		"user": echo.Map{
			"name":  user.Name,
			"email": user.Email,
		},
		"token": token,
	})
}
