package controllers

import (
	"github.com/gofiber/fiber/v2"

	"examdesk/apiclient"
	"examdesk/middleware"
)

// Dashboard renders the teacher dashboard counters
func Dashboard(c *fiber.Ctx) error {
	stats, err := apiclient.Shared().TeacherStats(middleware.SessionToken(c))
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch dashboard stats!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"stats": stats,
	})
}
