package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/atlas-rto/workforce-matrix/internal/domain"
	apperrors "github.com/atlas-rto/workforce-matrix/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	Username string
	Role     domain.Role
}

// UserDirectory resolves usernames to live accounts. Deleted accounts stop
// authenticating even while their tokens are unexpired.
type UserDirectory interface {
	FindUser(username string) (*domain.User, bool)
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens *TokenManager
	users  UserDirectory
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users UserDirectory) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	user, ok := m.users.FindUser(claims.Username)
	if !ok {
		return apperrors.NewUnauthorized("user not found")
	}

	// Role comes from the live account, not the token, so demotions take
	// effect immediately.
	c.Locals(principalKey, &Principal{Username: user.Username, Role: user.Role})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
