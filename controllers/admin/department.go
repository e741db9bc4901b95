package controllers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"examdesk/apiclient"
	"examdesk/cascade"
	"examdesk/middleware"
	"examdesk/models"
)

// One guard per session for the college selector; a department fetch
// dispatched for a superseded college is discarded, not applied.
var collegeSelects cascade.Registry

// departmentView fetches departments and colleges together; if either
// fails the whole view fails and nothing partial is rendered.
func departmentView(c *fiber.Ctx, message string) error {
	token := middleware.SessionToken(c)
	api := apiclient.Shared()

	var (
		departments []models.Department
		colleges    []models.College
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		departments, err = api.Departments(token)
		return err
	})
	g.Go(func() error {
		var err error
		colleges, err = api.Colleges(token)
		return err
	})
	if err := g.Wait(); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch departments!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"departments": departments,
		"colleges":    colleges,
	})
}

// ListDepartments renders the department management list
func ListDepartments(c *fiber.Ctx) error {
	return departmentView(c, "Departments fetched successfully!")
}

// CreateDepartment creates a department and re-fetches the view
func CreateDepartment(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedDepartment").(*models.DepartmentForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := apiclient.Shared().CreateDepartment(middleware.SessionToken(c), form); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to save department!")
	}
	return departmentView(c, "Department created successfully!")
}

// UpdateDepartment updates a department and re-fetches the view
func UpdateDepartment(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedDepartment").(*models.DepartmentForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := apiclient.Shared().UpdateDepartment(middleware.SessionToken(c), c.Params("id"), form); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to save department!")
	}
	return departmentView(c, "Department updated successfully!")
}

// DeactivateDepartment soft-deletes a department and re-fetches the view
func DeactivateDepartment(c *fiber.Ctx) error {
	if err := apiclient.Shared().DeactivateDepartment(middleware.SessionToken(c), c.Params("id")); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to deactivate department!")
	}
	return departmentView(c, "Department deactivated successfully!")
}

// DepartmentOptions serves the dependent half of the college ->
// department cascade used by the course form and the registration
// views. The fetch is tagged with the college active at dispatch;
// a response whose tag no longer matches the current selection is
// reported stale and carries no options.
func DepartmentOptions(c *fiber.Ctx) error {
	token := middleware.SessionToken(c)
	collegeID := c.Params("id")

	sess, err := middleware.CurrentSession(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read session!", nil)
	}

	sel := collegeSelects.Get(sess.ID())
	sel.Set(collegeID)

	departments, err := apiclient.Shared().CollegeDepartments(token, collegeID)
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch departments!")
	}

	if !sel.Commit(collegeID, nil) {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "College selection changed; options discarded.", fiber.Map{
			"departments": []models.Department{},
			"college":     collegeID,
			"stale":       true,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Departments fetched successfully!", fiber.Map{
		"departments": departments,
		"college":     collegeID,
		"stale":       false,
	})
}
