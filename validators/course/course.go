package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"examdesk/middleware"
	"examdesk/models"
	"examdesk/validators"
)

// Save validates the course form for both create and update. The
// department must belong to the selected college; that relationship is
// the service's to enforce; the form only requires both selectors.
func Save() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(models.CourseForm)
		if err := c.BodyParser(form); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		form.Code = strings.ToUpper(strings.TrimSpace(form.Code))
		form.Name = strings.TrimSpace(form.Name)
		if form.Credits == 0 {
			form.Credits = 3
		}

		if errors := validators.Struct(form); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", form)
		return c.Next()
	}
}
