package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/StefanoAus/icoffee-backend/internal/models"
	"github.com/StefanoAus/icoffee-backend/internal/services"
)

// OrderHandler exposes the daily order endpoints.
type OrderHandler struct {
	orders *services.OrderService
}

// NewOrderHandler creates an order handler over the order ledger.
func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List returns the orders for a date (default: today) as a plain array,
// sorted by (group, username). Non-admin callers must pass a group filter.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	date, err := resolveDate(c.Query("date"))
	if err != nil {
		return fail(c, err)
	}

	list, err := h.orders.ListOrders(c.Context(), date, c.Query("group"), c.Query("role", models.RoleUser))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

type submitOrderRequest struct {
	Username string              `json:"username"`
	Group    string              `json:"group"`
	Order    models.OrderPayload `json:"order"`
}

// Submit upserts the caller's order for today.
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	var req submitOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}
	if err := h.orders.SubmitOrder(c.Context(), currentDate(), req.Username, req.Group, req.Order); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}
