package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"examdesk/apiclient"
)

// JsonResponse writes the shared response envelope
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// UpstreamErrorResponse surfaces an exam-service failure once: the
// server message verbatim when the service answered, a generic
// unreachable message when it did not. Nothing is retried.
func UpstreamErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = fallback
		}
		return JsonResponse(c, apiErr.StatusCode, false, message, nil)
	}
	if errors.Is(err, apiclient.ErrUnreachable) {
		return JsonResponse(c, fiber.StatusBadGateway, false, "Exam service unreachable!", nil)
	}
	return JsonResponse(c, fiber.StatusInternalServerError, false, fallback, nil)
}
