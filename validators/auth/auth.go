package authValidator

import (
	"github.com/gofiber/fiber/v2"

	"examdesk/middleware"
	"examdesk/models"
	"examdesk/validators"
)

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(models.LoginForm)
		if err := c.BodyParser(form); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(form); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", form)
		return c.Next()
	}
}

// ChangePassword validator middleware
func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(models.ChangePasswordForm)
		if err := c.BodyParser(form); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(form); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChangePassword", form)
		return c.Next()
	}
}
