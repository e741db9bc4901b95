package studentRoutes

import (
	studentControllers "examdesk/controllers/student"
	"examdesk/middleware"
	"examdesk/models"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentRoutes(app *fiber.App) {
	student := app.Group("/student", middleware.RequireAuth(models.RoleStudent))

	student.Get("/", studentControllers.Dashboard)
	student.Get("/dashboard", studentControllers.Dashboard)
}
