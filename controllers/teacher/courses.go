package controllers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"examdesk/apiclient"
	"examdesk/middleware"
	"examdesk/models"
)

// MyCourses renders the teacher's own course list
func MyCourses(c *fiber.Ctx) error {
	courses, err := apiclient.Shared().TeacherCourses(middleware.SessionToken(c))
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch courses!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// CourseStudents renders the roster of one course. The roster and the
// course list load together; if either fails nothing renders.
func CourseStudents(c *fiber.Ctx) error {
	token := middleware.SessionToken(c)
	courseID := c.Params("id")
	api := apiclient.Shared()

	var (
		students []models.CourseStudent
		courses  []models.Course
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		students, err = api.CourseStudents(token, courseID)
		return err
	})
	g.Go(func() error {
		var err error
		courses, err = api.TeacherCourses(token)
		return err
	})
	if err := g.Wait(); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch students!")
	}

	var course *models.Course
	for i := range courses {
		if courses[i].ID == courseID {
			course = &courses[i]
			break
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", fiber.Map{
		"students": students,
		"course":   course,
	})
}
