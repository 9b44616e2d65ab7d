package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/StefanoAus/icoffee-backend/internal/models"
	"github.com/StefanoAus/icoffee-backend/internal/services"
)

// UserHandler exposes the admin-gated user management endpoints.
type UserHandler struct {
	directory *services.DirectoryService
}

// NewUserHandler creates a user handler over the directory service.
func NewUserHandler(directory *services.DirectoryService) *UserHandler {
	return &UserHandler{directory: directory}
}

// List returns the full user roster. Admin only; the caller's role travels
// in the role query parameter.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.directory.ListUsers(c.Context(), c.Query("role", models.RoleUser))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"users": users})
}

type createUserRequest struct {
	ActorRole string      `json:"actorRole"`
	User      models.User `json:"user"`
}

// Create adds a new account.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}
	if err := h.directory.CreateUser(c.Context(), req.ActorRole, req.User); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

type updateUserRequest struct {
	ActorRole string               `json:"actorRole"`
	Username  string               `json:"username"`
	Updates   services.UserUpdates `json:"updates"`
}

// Update applies a partial update to an account.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}
	if err := h.directory.UpdateUser(c.Context(), req.ActorRole, req.Username, req.Updates); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

type deleteUserRequest struct {
	ActorRole string `json:"actorRole"`
	Username  string `json:"username"`
}

// Delete removes an account.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	var req deleteUserRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}
	if err := h.directory.DeleteUser(c.Context(), req.ActorRole, req.Username); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}
