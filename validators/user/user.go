package userValidator

import (
	"github.com/gofiber/fiber/v2"

	"examdesk/middleware"
	"examdesk/models"
	"examdesk/validators"
)

// Status validates the active-flag toggle body
func Status() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(models.UserStatusForm)
		if err := c.BodyParser(form); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(form); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStatus", form)
		return c.Next()
	}
}
