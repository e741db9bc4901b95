package registrationValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"examdesk/middleware"
	"examdesk/models"
	"examdesk/validators"
)

// Declared content types accepted for batch uploads. Advisory only;
// the service parses the file and is the authority on its contents.
var spreadsheetTypes = []string{
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.oasis.opendocument.spreadsheet",
}

// SpreadsheetAllowed checks the declared MIME type and the .xlsx
// extension fallback.
func SpreadsheetAllowed(contentType, fileName string) bool {
	for _, t := range spreadsheetTypes {
		if contentType == t {
			return true
		}
	}
	return strings.HasSuffix(fileName, ".xlsx")
}

// Student validates the single-student registration form
func Student() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(models.StudentRegistrationForm)
		if err := c.BodyParser(form); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(form); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStudent", form)
		return c.Next()
	}
}

// Teacher validates the teacher registration form
func Teacher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := new(models.TeacherRegistrationForm)
		if err := c.BodyParser(form); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(form); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTeacher", form)
		return c.Next()
	}
}

// Batch validates the multipart batch-registration request: selector
// fields present and an attached spreadsheet of an accepted type.
func Batch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := &models.BatchRegistrationForm{
			College:    c.FormValue("college"),
			Department: c.FormValue("department"),
			Year:       c.FormValue("year"),
		}

		if errors := validators.Struct(form); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		file, err := c.FormFile("file")
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please select a file to upload!", nil)
		}
		if !SpreadsheetAllowed(file.Header.Get("Content-Type"), file.Filename) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please upload an Excel file (.xlsx)!", nil)
		}

		c.Locals("validatedBatch", form)
		c.Locals("batchFile", file)
		return c.Next()
	}
}
