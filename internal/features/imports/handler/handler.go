package handler

import (
	"net/http"

	"cargo-tracker/internal/core/apperr"
	"cargo-tracker/internal/core/auth"
	"cargo-tracker/internal/core/respond"
	"cargo-tracker/internal/features/imports/domain"
	"cargo-tracker/internal/features/imports/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ImportHandler handles bulk order uploads.
type ImportHandler struct {
	service ports.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(service ports.ImportService) *ImportHandler {
	return &ImportHandler{service: service}
}

// ImportRequest carries spreadsheet rows already parsed by the client.
type ImportRequest struct {
	Rows []domain.Row `json:"rows"`
}

// ImportOrders handles POST /orders/import.
// @Summary Bulk import orders
// @Description Creates one order per row in a single transaction. Missing ids are generated; a truthy status column means IN_TRANSIT, anything else IN_WAREHOUSE.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rows body ImportRequest true "Parsed spreadsheet rows"
// @Success 201 {object} domain.Result
// @Failure 400 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /orders/import [post]
func (h *ImportHandler) ImportOrders(c *fiber.Ctx) error {
	var req ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.Error(c, apperr.Validation("Invalid request body").Wrap(err))
	}

	res, err := h.service.Import(c.UserContext(), auth.FromCtx(c), req.Rows)
	if err != nil {
		return respond.Error(c, err, zap.Int("rows", len(req.Rows)))
	}

	return c.Status(http.StatusCreated).JSON(res)
}
