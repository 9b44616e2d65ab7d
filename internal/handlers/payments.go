package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/StefanoAus/icoffee-backend/internal/models"
	"github.com/StefanoAus/icoffee-backend/internal/services"
)

// PaymentHandler exposes the payment ledger endpoints.
type PaymentHandler struct {
	payments *services.PaymentService
}

// NewPaymentHandler creates a payment handler over the payment ledger.
func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Status reports a group's payer for a date, the running totals ranking and
// the payment log.
func (h *PaymentHandler) Status(c *fiber.Ctx) error {
	date, err := resolveDate(c.Query("date"))
	if err != nil {
		return fail(c, err)
	}

	status, err := h.payments.GetPaymentStatus(
		c.Context(),
		c.Query("group"),
		date,
		c.Query("username"),
		c.Query("role", models.RoleUser),
	)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{
		"group":  status.Group,
		"date":   status.Date,
		"payer":  status.Payer,
		"totals": status.Totals,
		"log":    status.Log,
	})
}

type recordPaymentRequest struct {
	Group string `json:"group"`
	Payer string `json:"payer"`
	Date  string `json:"date"`
	Actor string `json:"actor"`
	Role  string `json:"role"`
}

// Record upserts the payer for (date, group).
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	var req recordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}

	date, err := resolveDate(req.Date)
	if err != nil {
		return fail(c, err)
	}

	if err := h.payments.RecordPayment(c.Context(), date, req.Group, req.Payer, req.Actor, req.Role); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}
