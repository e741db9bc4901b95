// Package validators holds the shared pieces of the per-view request
// validators: struct validation with field -> message maps, and the
// confirmation check required before destructive actions.
package validators

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"examdesk/middleware"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the json field names the forms use
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// Struct validates a form and returns a field -> message map, empty
// when the form is valid.
func Struct(form interface{}) map[string]string {
	errs := make(map[string]string)
	err := validate.Struct(form)
	if err == nil {
		return errs
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid request body!"
		return errs
	}
	for _, fe := range fieldErrs {
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", fe.Field())
	case "email":
		return "Invalid email!"
	case "min":
		return fmt.Sprintf("%s must be at least %s!", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s!", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid!", fe.Field())
	}
}

// Confirm requires confirm=true on the request before a destructive
// action runs (the deactivate confirmation prompt of the views).
func Confirm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Query("confirm") != "true" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Confirmation required!", nil)
		}
		return c.Next()
	}
}
