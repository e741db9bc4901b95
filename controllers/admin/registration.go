package controllers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"examdesk/apiclient"
	"examdesk/middleware"
	"examdesk/models"
)

// RegisterStudent creates a single student account
func RegisterStudent(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedStudent").(*models.StudentRegistrationForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := apiclient.Shared().RegisterStudent(middleware.SessionToken(c), form); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to register student!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student registered successfully!", nil)
}

// RegisterTeacher creates a single teacher account
func RegisterTeacher(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedTeacher").(*models.TeacherRegistrationForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := apiclient.Shared().RegisterTeacher(middleware.SessionToken(c), form); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to register teacher!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teacher registered successfully!", nil)
}

// BatchRegister forwards the spreadsheet to the service and renders
// its per-row outcome verbatim.
func BatchRegister(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedBatch").(*models.BatchRegistrationForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	header, ok := c.Locals("batchFile").(*multipart.FileHeader)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please select a file to upload!", nil)
	}

	file, err := header.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read uploaded file!", nil)
	}
	defer file.Close()

	outcome, err := apiclient.Shared().BatchRegisterStudents(middleware.SessionToken(c), header.Filename, file, form)
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Batch registration failed!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Batch registration completed!", fiber.Map{
		"summary": outcome.Summary,
		"errors":  outcome.Errors,
	})
}
