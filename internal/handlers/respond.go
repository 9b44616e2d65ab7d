// Package handlers implements the HTTP request handlers of the ordering
// backend. Handlers decode requests, delegate to the service layer and
// translate classified errors into the uniform {success, message} response
// envelope with the matching status code.
package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/StefanoAus/icoffee-backend/internal/apperrors"
)

// fail writes the error envelope with the status mapped from the error kind.
func fail(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
		"success": false,
		"message": apperrors.UserMessage(err),
	})
}

// ok writes a success envelope, merging any extra payload fields.
func ok(c *fiber.Ctx, data fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range data {
		body[k] = v
	}
	return c.JSON(body)
}

// invalidPayload is the uniform response for undecodable request bodies.
func invalidPayload(c *fiber.Ctx) error {
	return fail(c, apperrors.Validation("invalid request payload"))
}

// MethodNotAllowed handles unsupported methods on known API paths.
func MethodNotAllowed(c *fiber.Ctx) error {
	return fail(c, apperrors.MethodNotAllowed("method not supported"))
}

const dateLayout = "2006-01-02"

// currentDate returns today's date in the ledger key format.
func currentDate() string {
	return time.Now().Format(dateLayout)
}

// resolveDate validates a caller-supplied date and defaults an absent one to
// today. Dates must be real calendar dates in YYYY-MM-DD form.
func resolveDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return currentDate(), nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil || parsed.Format(dateLayout) != raw {
		return "", apperrors.Validation("invalid date, expected YYYY-MM-DD")
	}
	return raw, nil
}
