package controllers

import (
	"github.com/gofiber/fiber/v2"

	"examdesk/apiclient"
	"examdesk/middleware"
	"examdesk/models"
)

func userFilter(c *fiber.Ctx) models.UserFilter {
	return models.UserFilter{
		Role:   c.Query("role", "all"),
		Search: c.Query("search"),
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", 10),
	}
}

func userPage(c *fiber.Ctx, message string) error {
	page, err := apiclient.Shared().Users(middleware.SessionToken(c), userFilter(c))
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch users!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"users":       page.Users,
		"total":       page.Total,
		"totalPages":  page.TotalPages,
		"currentPage": page.CurrentPage,
	})
}

// ListUsers renders one page of the user listing; role, search and
// paging are passed through to the service untouched.
func ListUsers(c *fiber.Ctx) error {
	return userPage(c, "Users fetched successfully!")
}

// SetUserStatus toggles a user's active flag and re-fetches the page
// with the caller's current filters. The row stays listed either way.
func SetUserStatus(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedStatus").(*models.UserStatusForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := apiclient.Shared().SetUserStatus(middleware.SessionToken(c), c.Params("id"), *form.IsActive); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to update user status!")
	}

	message := "User deactivated successfully!"
	if *form.IsActive {
		message = "User activated successfully!"
	}
	return userPage(c, message)
}
