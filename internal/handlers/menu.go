package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/StefanoAus/icoffee-backend/internal/services"
)

// MenuHandler exposes the menu catalog endpoints. Reads are open; writes
// are admin-gated via the actorRole payload field.
type MenuHandler struct {
	menu *services.MenuService
}

// NewMenuHandler creates a menu handler over the catalog service.
func NewMenuHandler(menu *services.MenuService) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// List returns the normalized catalog.
func (h *MenuHandler) List(c *fiber.Ctx) error {
	menu, err := h.menu.GetMenu(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"drinks": menu.Drinks, "foods": menu.Foods})
}

type createMenuItemRequest struct {
	ActorRole string   `json:"actorRole"`
	Category  string   `json:"category"`
	Name      string   `json:"name"`
	Options   []string `json:"options"`
}

// Create adds a catalog item.
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var req createMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}
	if err := h.menu.AddItem(c.Context(), req.ActorRole, req.Category, req.Name, req.Options); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

type updateMenuItemRequest struct {
	ActorRole string                   `json:"actorRole"`
	Category  string                   `json:"category"`
	Name      string                   `json:"name"`
	Updates   services.MenuItemUpdates `json:"updates"`
}

// Update renames an item and/or replaces its options.
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	var req updateMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}
	if err := h.menu.UpdateItem(c.Context(), req.ActorRole, req.Category, req.Name, req.Updates); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

type deleteMenuItemRequest struct {
	ActorRole string `json:"actorRole"`
	Category  string `json:"category"`
	Name      string `json:"name"`
}

// Delete removes a catalog item.
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	var req deleteMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}
	if err := h.menu.RemoveItem(c.Context(), req.ActorRole, req.Category, req.Name); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}
