// Package respond writes error responses in the shape every endpoint shares.
package respond

import (
	"cargo-tracker/internal/core/apperr"
	"cargo-tracker/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Error is the human readable description.
	Error string `json:"error"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id,omitempty"`
}

// RayID returns the request id set by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}

// Error maps err to its status code and writes the public message.
// Internal failures are logged with their cause; the cause is never sent.
func Error(c *fiber.Ctx, err error, fields ...zap.Field) error {
	status := apperr.HTTPStatus(err)
	rayID := RayID(c)

	fields = append(fields,
		zap.String("ray_id", rayID),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	if status >= fiber.StatusInternalServerError {
		logger.Get().Error("Request failed", fields...)
	} else {
		logger.Get().Debug("Request rejected", fields...)
	}

	return c.Status(status).JSON(ErrorResponse{
		Error: apperr.PublicMessage(err),
		RayID: rayID,
	})
}
