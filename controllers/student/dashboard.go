package controllers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"examdesk/apiclient"
	"examdesk/middleware"
	"examdesk/models"
)

// Dashboard renders the student view: counters, exams still open and
// past results. The three fetches run concurrently and any failure
// fails the whole view; no partial dashboard.
func Dashboard(c *fiber.Ctx) error {
	token := middleware.SessionToken(c)
	api := apiclient.Shared()

	var (
		stats     *models.StudentStats
		available []models.Exam
		results   []models.Result
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		stats, err = api.StudentStats(token)
		return err
	})
	g.Go(func() error {
		var err error
		available, err = api.AvailableExams(token)
		return err
	})
	g.Go(func() error {
		var err error
		results, err = api.StudentResults(token)
		return err
	})
	if err := g.Wait(); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch dashboard!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"stats":          stats,
		"availableExams": available,
		"results":        results,
	})
}
