package controllers

import (
	"github.com/gofiber/fiber/v2"

	"examdesk/apiclient"
	"examdesk/middleware"
	"examdesk/models"
)

// The list is never patched locally: every mutation re-fetches it so
// the view always shows what the service has. Deactivated rows stay
// visible with isActive=false.

func collegeList(c *fiber.Ctx, message string) error {
	colleges, err := apiclient.Shared().Colleges(middleware.SessionToken(c))
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch colleges!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"colleges": colleges,
	})
}

// ListColleges renders the college management list
func ListColleges(c *fiber.Ctx) error {
	return collegeList(c, "Colleges fetched successfully!")
}

// CreateCollege creates a college and re-fetches the list
func CreateCollege(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedCollege").(*models.CollegeForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := apiclient.Shared().CreateCollege(middleware.SessionToken(c), form); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to save college!")
	}
	return collegeList(c, "College created successfully!")
}

// UpdateCollege updates a college and re-fetches the list
func UpdateCollege(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedCollege").(*models.CollegeForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := apiclient.Shared().UpdateCollege(middleware.SessionToken(c), c.Params("id"), form); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to save college!")
	}
	return collegeList(c, "College updated successfully!")
}

// DeactivateCollege soft-deletes a college and re-fetches the list
func DeactivateCollege(c *fiber.Ctx) error {
	if err := apiclient.Shared().DeactivateCollege(middleware.SessionToken(c), c.Params("id")); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to deactivate college!")
	}
	return collegeList(c, "College deactivated successfully!")
}
