package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/student-service/internal/api/dto"
	"github.com/spec-kit/student-service/internal/auth"
	"github.com/spec-kit/student-service/internal/service"
	apperrors "github.com/spec-kit/student-service/pkg/util"
)

// AuthHandler exposes login and identity endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	problems := map[string]any{}
	if req.Username == "" {
		problems["username"] = "username is required"
	}
	if req.Password == "" {
		problems["password"] = "password is required"
	}
	if len(problems) > 0 {
		return apperrors.NewValidationError("validation failed", problems)
	}

	user, token, _, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		Token:    token,
		Type:     "Bearer",
		Username: user.Username,
		Roles:    user.RoleStrings(),
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}

	return c.JSON(dto.MeResponse{
		Username: principal.Username,
		Roles:    principal.RoleStrings(),
	})
}
