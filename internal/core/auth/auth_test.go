package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestVerifier_RoundTrip(t *testing.T) {
	v := NewVerifier(testSecret)

	raw, err := v.Sign(Principal{ID: "u1", Role: RoleEmployee, PhoneNumber: "99112233"}, time.Hour)
	require.NoError(t, err)

	p, err := v.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, RoleEmployee, p.Role)
	assert.Equal(t, "99112233", p.PhoneNumber)
	assert.True(t, p.IsStaff())
}

func TestVerifier_Rejects(t *testing.T) {
	v := NewVerifier(testSecret)

	t.Run("WrongSecret", func(t *testing.T) {
		raw, err := NewVerifier("other").Sign(Principal{ID: "u1", Role: RoleUser}, time.Hour)
		require.NoError(t, err)
		_, err = v.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		raw, err := v.Sign(Principal{ID: "u1", Role: RoleUser}, -time.Minute)
		require.NoError(t, err)
		_, err = v.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		raw, err := v.Sign(Principal{ID: "u1", Role: "root"}, time.Hour)
		require.NoError(t, err)
		_, err = v.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("MissingSubject", func(t *testing.T) {
		raw, err := v.Sign(Principal{Role: RoleUser}, time.Hour)
		require.NoError(t, err)
		_, err = v.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("AlgNone", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			Role:             RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
		})
		raw, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = v.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestVerifier_DefaultsToUserRole(t *testing.T) {
	v := NewVerifier(testSecret)
	raw, err := v.Sign(Principal{ID: "u1"}, time.Hour)
	require.NoError(t, err)

	p, err := v.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, RoleUser, p.Role)
	assert.False(t, p.IsStaff())
}

func setupApp(t *testing.T) (*fiber.App, *Verifier) {
	t.Helper()
	v := NewVerifier(testSecret)
	r := NewResolver(v, CookieStrategy{CookieName: "token"}, BearerStrategy{})

	app := fiber.New()
	app.Use(Authenticate(r))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		p := FromCtx(c)
		if p == nil {
			return c.SendString("anonymous")
		}
		return c.SendString(p.ID)
	})
	app.Get("/private", RequireAuth(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/admin", RequireRole(RoleAdmin), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app, v
}

func readBody(t *testing.T, app *fiber.App, req *http.Request) string {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestResolver_StrategyOrder(t *testing.T) {
	app, v := setupApp(t)

	cookieTok, err := v.Sign(Principal{ID: "from-cookie", Role: RoleUser}, time.Hour)
	require.NoError(t, err)
	bearerTok, err := v.Sign(Principal{ID: "from-bearer", Role: RoleUser}, time.Hour)
	require.NoError(t, err)

	t.Run("CookieWins", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Cookie", "token="+cookieTok)
		req.Header.Set("Authorization", "Bearer "+bearerTok)
		assert.Equal(t, "from-cookie", readBody(t, app, req))
	})

	t.Run("BearerOnly", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+bearerTok)
		assert.Equal(t, "from-bearer", readBody(t, app, req))
	})

	t.Run("StaleCookieFallsBackToBearer", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Cookie", "token=garbage")
		req.Header.Set("Authorization", "Bearer "+bearerTok)
		assert.Equal(t, "from-bearer", readBody(t, app, req))
	})

	t.Run("Anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		assert.Equal(t, "anonymous", readBody(t, app, req))
	})
}

func TestRequireRole(t *testing.T) {
	app, v := setupApp(t)

	userTok, err := v.Sign(Principal{ID: "u", Role: RoleUser}, time.Hour)
	require.NoError(t, err)
	adminTok, err := v.Sign(Principal{ID: "a", Role: RoleAdmin}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"PrivateAnonymous", "/private", "", fiber.StatusUnauthorized},
		{"PrivateInvalidToken", "/private", "Bearer nope", fiber.StatusUnauthorized},
		{"PrivateUser", "/private", "Bearer " + userTok, fiber.StatusOK},
		{"AdminAnonymous", "/admin", "", fiber.StatusUnauthorized},
		{"AdminAsUser", "/admin", "Bearer " + userTok, fiber.StatusForbidden},
		{"AdminAsAdmin", "/admin", "Bearer " + adminTok, fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
