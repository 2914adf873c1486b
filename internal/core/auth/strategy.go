package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Strategy extracts a raw token from a request.
type Strategy interface {
	Name() string
	Extract(c *fiber.Ctx) (string, bool)
}

// CookieStrategy reads the token from a browser session cookie.
type CookieStrategy struct {
	CookieName string
}

func (s CookieStrategy) Name() string { return "cookie" }

func (s CookieStrategy) Extract(c *fiber.Ctx) (string, bool) {
	v := c.Cookies(s.CookieName)
	return v, v != ""
}

// BearerStrategy reads the token from an "Authorization: Bearer" header.
type BearerStrategy struct{}

func (BearerStrategy) Name() string { return "bearer" }

func (BearerStrategy) Extract(c *fiber.Ctx) (string, bool) {
	fields := strings.Fields(c.Get(fiber.HeaderAuthorization))
	if len(fields) != 2 || !strings.EqualFold(fields[0], "bearer") {
		return "", false
	}
	return fields[1], true
}

// Resolver turns a request into a principal by trying strategies in order.
type Resolver struct {
	verifier   *Verifier
	strategies []Strategy
}

// NewResolver creates a Resolver; strategies are tried in the given order.
func NewResolver(verifier *Verifier, strategies ...Strategy) *Resolver {
	return &Resolver{verifier: verifier, strategies: strategies}
}

// Resolve returns the first principal a strategy yields a valid token for.
// ErrNoCredentials means nothing was presented; ErrInvalidToken means
// every presented token was rejected.
func (r *Resolver) Resolve(c *fiber.Ctx) (*Principal, error) {
	var lastErr error
	for _, s := range r.strategies {
		raw, ok := s.Extract(c)
		if !ok {
			continue
		}
		p, err := r.verifier.Verify(raw)
		if err == nil {
			return p, nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoCredentials
}

// IsInvalid reports whether err came from a rejected token.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}
