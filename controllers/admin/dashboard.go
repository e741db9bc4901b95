package controllers

import (
	"github.com/gofiber/fiber/v2"

	"examdesk/apiclient"
	"examdesk/middleware"
)

// Dashboard renders the admin dashboard counters
func Dashboard(c *fiber.Ctx) error {
	token := middleware.SessionToken(c)

	stats, err := apiclient.Shared().AdminStats(token)
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch dashboard stats!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"stats": stats,
	})
}
