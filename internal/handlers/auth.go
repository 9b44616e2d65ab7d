package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/StefanoAus/icoffee-backend/internal/security"
	"github.com/StefanoAus/icoffee-backend/internal/services"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	auth   *services.AuthService
	logger *security.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(auth *services.AuthService, logger *security.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login validates credentials and returns the caller's public profile.
// The API is stateless: clients keep the returned role/group/username and
// send them with subsequent requests.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}

	profile, err := h.auth.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.SecurityEvent(security.EventLoginFailure, req.Username, c.IP(), c.Get("User-Agent"), nil)
		return fail(c, err)
	}

	h.logger.SecurityEvent(security.EventLoginSuccess, profile.Username, c.IP(), c.Get("User-Agent"), nil)
	return ok(c, fiber.Map{
		"username": profile.Username,
		"group":    profile.Group,
		"role":     profile.Role,
	})
}
