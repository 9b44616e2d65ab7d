// Package middleware provides HTTP middleware for request logging and rate
// limiting.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/StefanoAus/icoffee-backend/internal/security"
)

// SecurityMiddleware bundles the middleware that needs the structured
// logger.
type SecurityMiddleware struct {
	logger *security.Logger
}

// NewSecurityMiddleware creates the middleware suite.
func NewSecurityMiddleware(logger *security.Logger) *SecurityMiddleware {
	return &SecurityMiddleware{logger: logger}
}

// RequestLogger logs every request with a generated request ID, method,
// path, status and duration. The request ID is echoed in the X-Request-ID
// response header for correlation.
func (sm *SecurityMiddleware) RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Locals("request_id", requestID)
		c.Set("X-Request-ID", requestID)

		start := time.Now()
		err := c.Next()

		sm.logger.WithFields(map[string]interface{}{
			"request_id": requestID,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"duration":   time.Since(start).String(),
			"ip":         c.IP(),
		}).Info("request")

		return err
	}
}

// RateLimit rejects requests over the limiter's budget with 429, keyed by
// client IP.
func (sm *SecurityMiddleware) RateLimit(limiter *security.RateLimiter, operation string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !limiter.Allow(c.IP()) {
			sm.logger.SecurityEvent(security.EventRateLimited, "", c.IP(), c.Get("User-Agent"),
				map[string]interface{}{"operation": operation})
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "too many requests, retry later",
			})
		}
		return c.Next()
	}
}
