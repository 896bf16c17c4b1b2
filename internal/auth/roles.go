package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atlas-rto/workforce-matrix/internal/domain"
	apperrors "github.com/atlas-rto/workforce-matrix/pkg/util"
)

// RequireLogin ensures a caller is authenticated with either role.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireAdministrator ensures the principal holds the administrator role.
func RequireAdministrator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if principal.Role != domain.RoleAdministrator {
			return apperrors.NewForbidden("administrator role required")
		}
		return c.Next()
	}
}
