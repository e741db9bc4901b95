package controllers

import (
	"github.com/gofiber/fiber/v2"

	"examdesk/apiclient"
	"examdesk/middleware"
	"examdesk/models"
)

func examList(c *fiber.Ctx, message string) error {
	exams, err := apiclient.Shared().TeacherExams(middleware.SessionToken(c))
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch exams!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"exams": exams,
	})
}

// MyExams renders the teacher's exam list
func MyExams(c *fiber.Ctx) error {
	return examList(c, "Exams fetched successfully!")
}

// DeleteExam removes an exam and re-fetches the list
func DeleteExam(c *fiber.Ctx) error {
	if err := apiclient.Shared().DeleteExam(middleware.SessionToken(c), c.Params("id")); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to delete exam!")
	}
	return examList(c, "Exam deleted successfully!")
}

// resultRow decorates a result with its display grade
type resultRow struct {
	models.Result
	Grade string `json:"grade"`
}

// ExamResults renders the service-computed statistics plus the
// display-only highest/lowest reduction. An empty result set skips the
// reduction and renders a no-submissions state instead.
func ExamResults(c *fiber.Ctx) error {
	resp, err := apiclient.Shared().ExamResults(middleware.SessionToken(c), c.Params("id"))
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch exam results!")
	}

	rows := make([]resultRow, len(resp.Results))
	for i, r := range resp.Results {
		rows[i] = resultRow{Result: r, Grade: models.Grade(r.Percentage)}
	}

	data := fiber.Map{
		"results":    rows,
		"statistics": resp.Statistics,
	}

	analysis, ok := models.AnalyzeResults(resp.Results)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No students have taken this exam yet.", data)
	}

	data["analysis"] = analysis
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Results fetched successfully!", data)
}
