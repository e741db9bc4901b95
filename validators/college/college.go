package collegeValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"examdesk/middleware"
	"examdesk/models"
	"examdesk/validators"
)

// Save validates the college form for both create and update. Codes
// are uppercased the way the form field does it.
func Save() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(models.CollegeForm)
		if err := c.BodyParser(form); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		form.Code = strings.ToUpper(strings.TrimSpace(form.Code))
		form.Name = strings.TrimSpace(form.Name)

		if errors := validators.Struct(form); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCollege", form)
		return c.Next()
	}
}
