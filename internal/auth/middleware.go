package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/student-service/internal/domain"
	"github.com/spec-kit/student-service/internal/repository"
)

const principalKey = "auth_principal"

const bearerPrefix = "Bearer "

// Principal is the request-scoped identity derived from a verified token.
type Principal struct {
	Username string
	Roles    []domain.Role
}

// HasRole reports whether the principal holds the given role.
func (p *Principal) HasRole(role domain.Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RoleStrings returns the role set as plain strings for serialization.
func (p *Principal) RoleStrings() []string {
	out := make([]string, len(p.Roles))
	for i, r := range p.Roles {
		out[i] = string(r)
	}
	return out
}

// Authenticator resolves bearer tokens into request principals. It never
// rejects a request itself: any verification failure leaves the request
// anonymous and authorization is decided downstream by the Policy.
type Authenticator struct {
	tokens *TokenManager
	users  repository.UserRepository
	logger *zap.Logger
}

// NewAuthenticator constructs the middleware.
func NewAuthenticator(tokens *TokenManager, users repository.UserRepository, logger *zap.Logger) *Authenticator {
	return &Authenticator{tokens: tokens, users: users, logger: logger}
}

// Handle runs once per inbound request, before route handling.
func (a *Authenticator) Handle(c *fiber.Ctx) error {
	tokenStr := extractBearerToken(c.Get(fiber.HeaderAuthorization))
	if tokenStr == "" {
		// No credential supplied; proceed anonymous.
		return c.Next()
	}

	username, err := a.tokens.Verify(tokenStr)
	if err != nil {
		a.logger.Debug("token rejected", zap.Error(err))
		return c.Next()
	}

	user, err := a.users.GetByUsername(c.Context(), username)
	if err != nil {
		a.logger.Debug("token subject not resolvable", zap.String("username", username), zap.Error(err))
		return c.Next()
	}
	if !user.Enabled {
		a.logger.Debug("token subject disabled", zap.String("username", username))
		return c.Next()
	}

	c.Locals(principalKey, &Principal{Username: user.Username, Roles: user.Roles})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated identity, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
