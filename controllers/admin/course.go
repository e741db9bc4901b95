package controllers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"examdesk/apiclient"
	"examdesk/middleware"
	"examdesk/models"
)

// courseView fetches the course list plus both selector sources
// (colleges, teachers) concurrently, all-or-nothing. Department
// options come separately through the cascade endpoint once a college
// is picked.
func courseView(c *fiber.Ctx, message string) error {
	token := middleware.SessionToken(c)
	api := apiclient.Shared()

	var (
		courses  []models.Course
		colleges []models.College
		teachers []models.Teacher
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		courses, err = api.Courses(token)
		return err
	})
	g.Go(func() error {
		var err error
		colleges, err = api.Colleges(token)
		return err
	})
	g.Go(func() error {
		var err error
		teachers, err = api.Teachers(token)
		return err
	})
	if err := g.Wait(); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch courses!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"courses":  courses,
		"colleges": colleges,
		"teachers": teachers,
	})
}

// ListCourses renders the course management list
func ListCourses(c *fiber.Ctx) error {
	return courseView(c, "Courses fetched successfully!")
}

// CreateCourse creates a course and re-fetches the view
func CreateCourse(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedCourse").(*models.CourseForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := apiclient.Shared().CreateCourse(middleware.SessionToken(c), form); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to save course!")
	}
	return courseView(c, "Course created successfully!")
}

// UpdateCourse updates a course and re-fetches the view
func UpdateCourse(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedCourse").(*models.CourseForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := apiclient.Shared().UpdateCourse(middleware.SessionToken(c), c.Params("id"), form); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to save course!")
	}
	return courseView(c, "Course updated successfully!")
}

// DeactivateCourse soft-deletes a course and re-fetches the view
func DeactivateCourse(c *fiber.Ctx) error {
	if err := apiclient.Shared().DeactivateCourse(middleware.SessionToken(c), c.Params("id")); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to deactivate course!")
	}
	return courseView(c, "Course deactivated successfully!")
}
