package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/atlas-rto/workforce-matrix/internal/api/dto"
	"github.com/atlas-rto/workforce-matrix/internal/auth"
	"github.com/atlas-rto/workforce-matrix/internal/domain"
	"github.com/atlas-rto/workforce-matrix/internal/service"
	apperrors "github.com/atlas-rto/workforce-matrix/pkg/util"
)

// AuthHandler exposes login and account-management endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// actorFrom resolves the authenticated principal to its live account.
func actorFrom(c *fiber.Ctx, authService *service.AuthService) (*domain.User, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	user, found := authService.FindUser(principal.Username)
	if !found {
		return nil, apperrors.NewUnauthorized("user not found")
	}
	return user, nil
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	user, token, exp, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": fiber.Map{
				"username": user.Username,
				"role":     user.Role,
			},
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.auth.Logout()
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "logged out"}})
}

// Session handles GET /auth/session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	session, ok := h.auth.CurrentSession()
	if !ok {
		return c.JSON(fiber.Map{"data": fiber.Map{"logged_in": false}})
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"logged_in":    true,
			"username":     session.Username,
			"role":         session.Role,
			"logged_in_at": session.LoggedInAt,
		},
	})
}

// ListUsers handles GET /auth/users.
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.auth)
	if err != nil {
		return err
	}

	users, err := h.auth.ListUsers(actor)
	if err != nil {
		return err
	}

	listed := make([]fiber.Map, len(users))
	for i, u := range users {
		listed[i] = fiber.Map{"username": u.Username, "role": u.Role}
	}
	return c.JSON(fiber.Map{"data": listed})
}

// AddUser handles POST /auth/users.
func (h *AuthHandler) AddUser(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.auth)
	if err != nil {
		return err
	}

	var req dto.AddUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.auth.AddUser(actor, req.Username, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"username": user.Username, "role": user.Role},
	})
}

// ChangeRole handles PATCH /auth/users/:username/role.
func (h *AuthHandler) ChangeRole(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.auth)
	if err != nil {
		return err
	}

	var req dto.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	username := c.Params("username")
	if err := h.auth.ChangeRole(actor, username, req.Role); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"username": username, "role": req.Role}})
}

// ChangePassword handles PATCH /auth/users/:username/password.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.auth)
	if err != nil {
		return err
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	username := c.Params("username")
	if err := h.auth.ChangePassword(actor, username, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "password updated"}})
}

// DeleteUser handles DELETE /auth/users/:username.
func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.auth)
	if err != nil {
		return err
	}

	if err := h.auth.DeleteUser(actor, c.Params("username")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
