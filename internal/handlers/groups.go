package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/StefanoAus/icoffee-backend/internal/models"
	"github.com/StefanoAus/icoffee-backend/internal/services"
)

// GroupHandler exposes the admin-gated group management endpoints.
type GroupHandler struct {
	directory *services.DirectoryService
}

// NewGroupHandler creates a group handler over the directory service.
func NewGroupHandler(directory *services.DirectoryService) *GroupHandler {
	return &GroupHandler{directory: directory}
}

// List returns all group names.
func (h *GroupHandler) List(c *fiber.Ctx) error {
	groups, err := h.directory.ListGroups(c.Context(), c.Query("role", models.RoleUser))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"groups": groups})
}

type createGroupRequest struct {
	ActorRole string `json:"actorRole"`
	Name      string `json:"name"`
}

// Create adds a new group.
func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var req createGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}
	if err := h.directory.CreateGroup(c.Context(), req.ActorRole, req.Name); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

type renameGroupRequest struct {
	ActorRole string `json:"actorRole"`
	OldName   string `json:"oldName"`
	NewName   string `json:"newName"`
}

// Rename renames a group, cascading to its members.
func (h *GroupHandler) Rename(c *fiber.Ctx) error {
	var req renameGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}
	if err := h.directory.RenameGroup(c.Context(), req.ActorRole, req.OldName, req.NewName); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

type deleteGroupRequest struct {
	ActorRole string `json:"actorRole"`
	Name      string `json:"name"`
}

// Delete removes an empty group.
func (h *GroupHandler) Delete(c *fiber.Ctx) error {
	var req deleteGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}
	if err := h.directory.DeleteGroup(c.Context(), req.ActorRole, req.Name); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}
