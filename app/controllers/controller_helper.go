package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/BTMReise/internal/pkg/apperr"
)

type validatable interface {
	Validate() error
}

// parseBody decodes the JSON body into v and runs its validate tags.
// The two failure modes are reported separately so handlers can pick
// their own messages.
func parseBody(c *fiber.Ctx, v validatable) (decodeErr, validateErr error) {
	if err := c.BodyParser(v); err != nil {
		return err, nil
	}
	return nil, v.Validate()
}

func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// writeError renders err with the status of its apperr kind. Untyped errors
// show fallback instead of their text.
func writeError(c *fiber.Ctx, err error, fallback string) error {
	return jsonError(c, apperr.HTTPStatus(err), apperr.PublicMessage(err, fallback))
}
