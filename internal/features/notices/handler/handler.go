package handler

import (
	"errors"
	"net/http"

	"cargo-tracker/internal/core/apperr"
	"cargo-tracker/internal/core/respond"
	"cargo-tracker/internal/features/notices/domain"
	"cargo-tracker/internal/features/notices/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NoticeHandler handles HTTP requests for delivery notices.
type NoticeHandler struct {
	service ports.NoticeService
}

// NewNoticeHandler creates a new NoticeHandler.
func NewNoticeHandler(service ports.NoticeService) *NoticeHandler {
	return &NoticeHandler{service: service}
}

// PostNoticeRequest represents the request body for posting a notice.
type PostNoticeRequest struct {
	Title    string          `json:"title"`
	Message  string          `json:"message"`
	Severity domain.Severity `json:"severity"`
	Statuses []string        `json:"statuses"`
	Duration int             `json:"duration"` // Seconds
}

// PostNotice handles POST /notices.
// @Summary Post a delivery notice
// @Description Publishes a notice shown on the tracking page, optionally only for some order statuses.
// @Tags Notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param notice body PostNoticeRequest true "Notice details"
// @Success 201 {object} domain.Notice
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Failure 403 {object} respond.ErrorResponse
// @Router /notices [post]
func (h *NoticeHandler) PostNotice(c *fiber.Ctx) error {
	var req PostNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.Error(c, apperr.Validation("Invalid request body"))
	}

	notice, err := h.service.Post(c.UserContext(), req.Title, req.Message, req.Severity, req.Statuses, req.Duration)
	if err != nil {
		return respond.Error(c, mapError(err))
	}

	return c.Status(http.StatusCreated).JSON(notice)
}

// ListNotices handles GET /notices.
// @Summary List active notices
// @Tags Notices
// @Produce json
// @Success 200 {array} domain.Notice
// @Failure 500 {object} respond.ErrorResponse
// @Router /notices [get]
func (h *NoticeHandler) ListNotices(c *fiber.Ctx) error {
	notices, err := h.service.List(c.UserContext())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.Status(http.StatusOK).JSON(notices)
}

// RemoveNotice handles DELETE /notices/:id.
// @Summary Remove a notice
// @Tags Notices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notice ID"
// @Success 204
// @Failure 404 {object} respond.ErrorResponse
// @Router /notices/{id} [delete]
func (h *NoticeHandler) RemoveNotice(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Remove(c.UserContext(), id); err != nil {
		return respond.Error(c, mapError(err), zap.String("notice_id", id))
	}
	return c.SendStatus(http.StatusNoContent)
}

func mapError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidSeverity):
		return apperr.Validation("Invalid severity. Must be INFO, WARNING, or DANGER").Wrap(err)
	case errors.Is(err, domain.ErrTitleRequired), errors.Is(err, domain.ErrInvalidDuration):
		return apperr.Validation(err.Error())
	case errors.Is(err, domain.ErrUnknownStatus):
		return apperr.Validation("Unknown order status in statuses").Wrap(err)
	case errors.Is(err, domain.ErrNoticeNotFound):
		return apperr.NotFound("Notice not found")
	default:
		return err
	}
}
