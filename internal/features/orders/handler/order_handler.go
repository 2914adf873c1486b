package handler

import (
	"net/http"
	"strconv"

	"cargo-tracker/internal/core/apperr"
	"cargo-tracker/internal/core/auth"
	"cargo-tracker/internal/core/respond"
	"cargo-tracker/internal/features/orders/domain"
	"cargo-tracker/internal/features/orders/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var errInvalidBody = apperr.Validation("Invalid request body")

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	// service is the OrderService instance.
	service ports.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s ports.OrderService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

// Track handles the public tracking lookup.
// @Summary Track an order
// @Description Public lookup by order id, package id or internal id. Phone is masked and prices are omitted.
// @Tags Tracking
// @Produce json
// @Param ref path string true "Order ID, package ID or internal ID"
// @Success 200 {object} domain.TrackingView
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /track/{ref} [get]
func (h *OrderHandler) Track(c *fiber.Ctx) error {
	ref := c.Params("ref")

	view, err := h.service.Track(c.UserContext(), ref)
	if err != nil {
		return respond.Error(c, err, zap.String("ref", ref))
	}

	return c.Status(http.StatusOK).JSON(view)
}

// GetOrder handles the authenticated single-order lookup.
// @Summary Get an order
// @Description Resolves by internal id first, then order id or package id. Customers only see orders linked to their phone.
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param ref path string true "Internal ID, order ID or package ID"
// @Success 200 {object} domain.Order
// @Failure 401 {object} respond.ErrorResponse
// @Failure 403 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /orders/{ref} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	ref := c.Params("ref")

	order, err := h.service.Get(c.UserContext(), auth.FromCtx(c), ref)
	if err != nil {
		return respond.Error(c, err, zap.String("ref", ref))
	}

	return c.Status(http.StatusOK).JSON(order)
}

// ListByPhone handles the phone-indexed listing.
// @Summary List orders for a phone number
// @Description "self" lists the caller's own orders. Customers may only list their own phone.
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param phone path string true "Phone number or self"
// @Success 200 {array} domain.Order
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Failure 403 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /orders/phone/{phone} [get]
func (h *OrderHandler) ListByPhone(c *fiber.Ctx) error {
	phone := c.Params("phone")

	orders, err := h.service.ListByPhone(c.UserContext(), auth.FromCtx(c), phone)
	if err != nil {
		return respond.Error(c, err)
	}

	return c.Status(http.StatusOK).JSON(orders)
}

// ListOrders handles the staff listing.
// @Summary List orders
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param phone query string false "Phone filter"
// @Param shipped query bool false "Shipped filter"
// @Param q query string false "Order or package ID prefix"
// @Param page query int false "Page, from 1"
// @Param pageSize query int false "Page size, max 200"
// @Success 200 {object} domain.OrderPage
// @Failure 400 {object} respond.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	filter := domain.ListFilter{
		Status:      domain.OrderStatus(c.Query("status")),
		PhoneNumber: c.Query("phone"),
		Query:       c.Query("q"),
		Page:        c.QueryInt("page", 1),
		PageSize:    c.QueryInt("pageSize", domain.DefaultPageSize),
	}

	if raw := c.Query("shipped"); raw != "" {
		shipped, err := strconv.ParseBool(raw)
		if err != nil {
			return respond.Error(c, apperr.Validation("shipped must be true or false"))
		}
		filter.Shipped = &shipped
	}

	page, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return respond.Error(c, err)
	}

	return c.Status(http.StatusOK).JSON(page)
}

// Stats handles the dashboard counters.
// @Summary Order statistics
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Stats
// @Router /orders/stats [get]
func (h *OrderHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return respond.Error(c, err)
	}
	return c.Status(http.StatusOK).JSON(stats)
}

// CreateOrder handles order registration by staff.
// @Summary Create an order
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body domain.CreateOrderInput true "Order"
// @Success 201 {object} domain.Order
// @Failure 400 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var in domain.CreateOrderInput
	if err := c.BodyParser(&in); err != nil {
		return respond.Error(c, errInvalidBody.Wrap(err))
	}

	order, err := h.service.Create(c.UserContext(), auth.FromCtx(c), in)
	if err != nil {
		return respond.Error(c, err, zap.String("order_id", in.OrderID))
	}

	return c.Status(http.StatusCreated).JSON(order)
}

// TransitionStatus handles a status change.
// @Summary Change order status
// @Description Appends a history entry only when the status differs from the latest one.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Internal order ID"
// @Param body body domain.TransitionInput true "Target status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) TransitionStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var in domain.TransitionInput
	if err := c.BodyParser(&in); err != nil {
		return respond.Error(c, errInvalidBody.Wrap(err))
	}

	order, err := h.service.Transition(c.UserContext(), auth.FromCtx(c), id, in)
	if err != nil {
		return respond.Error(c, err, zap.String("id", id), zap.String("status", string(in.Status)))
	}

	return c.Status(http.StatusOK).JSON(order)
}

// UpdateOrder handles a full-order edit.
// @Summary Update an order
// @Description Omitted fields are left unchanged. Unshipping removes the order details.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Internal order ID"
// @Param order body domain.UpdateOrderInput true "Fields to change"
// @Success 200 {object} domain.Order
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id := c.Params("id")

	var in domain.UpdateOrderInput
	if err := c.BodyParser(&in); err != nil {
		return respond.Error(c, errInvalidBody.Wrap(err))
	}

	order, err := h.service.Update(c.UserContext(), auth.FromCtx(c), id, in)
	if err != nil {
		return respond.Error(c, err, zap.String("id", id))
	}

	return c.Status(http.StatusOK).JSON(order)
}

// DeleteOrder handles order removal.
// @Summary Delete an order
// @Description Removes the order with its history and details.
// @Tags Orders
// @Security BearerAuth
// @Param id path string true "Internal order ID"
// @Success 204
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return respond.Error(c, err, zap.String("id", id))
	}

	return c.SendStatus(http.StatusNoContent)
}
