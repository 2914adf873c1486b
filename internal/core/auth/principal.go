package auth

import "github.com/gofiber/fiber/v2"

// Role is the privilege level of a caller.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleUser     Role = "user"
)

// Principal is the authenticated caller as supplied by the identity provider.
type Principal struct {
	ID          string
	Role        Role
	PhoneNumber string
}

// IsStaff reports whether the caller bypasses phone scoping.
func (p *Principal) IsStaff() bool {
	return p != nil && (p.Role == RoleAdmin || p.Role == RoleEmployee)
}

// HasRole reports whether the caller holds one of roles.
func (p *Principal) HasRole(roles ...Role) bool {
	if p == nil {
		return false
	}
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

const principalKey = "principal"

// FromCtx returns the principal stored by Authenticate, or nil for anonymous callers.
func FromCtx(c *fiber.Ctx) *Principal {
	p, _ := c.Locals(principalKey).(*Principal)
	return p
}

// WithPrincipal stores p on the request.
func WithPrincipal(c *fiber.Ctx, p *Principal) {
	c.Locals(principalKey, p)
}
