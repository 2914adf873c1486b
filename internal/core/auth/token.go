package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoCredentials is returned when no strategy found a token on the request.
	ErrNoCredentials = errors.New("no credentials")
	// ErrInvalidToken is returned when a token was present but failed verification.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the token payload issued by the identity provider.
type Claims struct {
	Role  Role   `json:"role"`
	Phone string `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

// Verifier checks HS256 tokens against a shared secret.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a Verifier.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses raw and returns the principal it describes.
func (v *Verifier) Verify(raw string) (*Principal, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	role := claims.Role
	switch role {
	case RoleAdmin, RoleEmployee, RoleUser:
	case "":
		role = RoleUser
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, role)
	}

	return &Principal{
		ID:          claims.Subject,
		Role:        role,
		PhoneNumber: claims.Phone,
	}, nil
}

// Sign issues a token for p. The service itself never issues tokens;
// this exists for tests and local tooling.
func (v *Verifier) Sign(p Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:  p.Role,
		Phone: p.PhoneNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
