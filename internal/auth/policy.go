package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/student-service/internal/domain"
	apperrors "github.com/spec-kit/student-service/pkg/util"
)

// Requirement names the access level a route rule demands.
type Requirement int

const (
	// RequireNone marks a public route.
	RequireNone Requirement = iota
	// RequireAuthenticated allows any authenticated identity.
	RequireAuthenticated
	// RequireAdmin allows only identities holding the admin role.
	RequireAdmin
)

// Rule matches a method/path pair against a requirement. An empty Method
// matches every method; a Path matches itself and everything below it.
type Rule struct {
	Method      string
	Path        string
	Requirement Requirement
}

// Policy is an ordered route-based access table, evaluated top to bottom with
// first match winning. Requests matching no rule fall through to a
// deny-unless-authenticated default.
type Policy struct {
	rules []Rule
}

// NewPolicy builds a policy from ordered rules.
func NewPolicy(rules []Rule) *Policy {
	return &Policy{rules: rules}
}

// DefaultPolicy is the route table for the student API.
func DefaultPolicy() *Policy {
	return NewPolicy([]Rule{
		{Method: fiber.MethodPost, Path: "/api/auth/login", Requirement: RequireNone},
		{Method: fiber.MethodGet, Path: "/health", Requirement: RequireNone},
		{Method: fiber.MethodGet, Path: "/api/students", Requirement: RequireNone},
		{Method: fiber.MethodPost, Path: "/api/students", Requirement: RequireAuthenticated},
		{Method: fiber.MethodPut, Path: "/api/students", Requirement: RequireAuthenticated},
		{Method: fiber.MethodDelete, Path: "/api/students", Requirement: RequireAdmin},
	})
}

// Evaluate decides access for a request. A nil return allows the request.
func (p *Policy) Evaluate(method, path string, principal *Principal) error {
	for _, rule := range p.rules {
		if !rule.matches(method, path) {
			continue
		}
		return decide(rule.Requirement, principal)
	}
	// Fail-closed default: anything unmatched needs an authenticated caller.
	return decide(RequireAuthenticated, principal)
}

// Enforce returns a fiber middleware applying the policy to every request.
func (p *Policy) Enforce() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, _ := PrincipalFromContext(c)
		if err := p.Evaluate(c.Method(), c.Path(), principal); err != nil {
			return err
		}
		return c.Next()
	}
}

func (r Rule) matches(method, path string) bool {
	if r.Method != "" && r.Method != method {
		return false
	}
	return path == r.Path || strings.HasPrefix(path, r.Path+"/")
}

func decide(req Requirement, principal *Principal) error {
	switch req {
	case RequireNone:
		return nil
	case RequireAuthenticated:
		if principal == nil {
			return apperrors.NewUnauthorized("authentication required")
		}
		return nil
	case RequireAdmin:
		// A failed capability check is forbidden, even for anonymous callers.
		if principal == nil || !principal.HasRole(domain.RoleAdmin) {
			return apperrors.NewForbidden("admin role required")
		}
		return nil
	default:
		return apperrors.NewForbidden("access denied")
	}
}
