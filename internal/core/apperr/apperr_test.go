package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = NotFound("order not found")

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Validation", Validation("bad id"), http.StatusBadRequest},
		{"Unauthenticated", Unauthenticated("no token"), http.StatusUnauthorized},
		{"Forbidden", Forbidden("phone mismatch"), http.StatusForbidden},
		{"NotFound", errSentinel, http.StatusNotFound},
		{"Conflict", Conflict("duplicate"), http.StatusConflict},
		{"WrappedNotFound", fmt.Errorf("service: %w", errSentinel), http.StatusNotFound},
		{"Plain", errors.New("db down"), http.StatusInternalServerError},
		{"Internal", Internal(errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestError_IsMatchesSentinelAfterWrap(t *testing.T) {
	cause := errors.New("record not found")
	err := fmt.Errorf("repo: %w", errSentinel.Wrap(cause))

	assert.ErrorIs(t, err, errSentinel)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, NotFound("employee not found"))
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "order not found", PublicMessage(errSentinel))
	assert.Equal(t, "Internal server error", PublicMessage(Internal(errors.New("password=hunter2"))))
	assert.Equal(t, "Internal server error", PublicMessage(errors.New("raw")))
}
