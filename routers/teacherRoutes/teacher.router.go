package teacherRoutes

import (
	teacherControllers "examdesk/controllers/teacher"
	"examdesk/middleware"
	"examdesk/models"
	"examdesk/validators"

	"github.com/gofiber/fiber/v2"
)

func SetupTeacherRoutes(app *fiber.App) {
	teacher := app.Group("/teacher", middleware.RequireAuth(models.RoleTeacher))

	teacher.Get("/", teacherControllers.Dashboard)
	teacher.Get("/dashboard", teacherControllers.Dashboard)

	teacher.Get("/courses", teacherControllers.MyCourses)
	teacher.Get("/courses/:id/students", teacherControllers.CourseStudents)

	teacher.Get("/exams", teacherControllers.MyExams)
	teacher.Get("/exams/new", teacherControllers.OpenDraft)

	// Draft routes must register before the :id routes
	teacher.Get("/exams/draft", teacherControllers.Draft)
	teacher.Put("/exams/draft", teacherControllers.UpdateDraft)
	teacher.Post("/exams/draft/questions", teacherControllers.AddQuestion)
	teacher.Delete("/exams/draft/questions/:index", teacherControllers.RemoveQuestion)
	teacher.Put("/exams/draft/questions/:index", teacherControllers.UpdateQuestion)
	teacher.Put("/exams/draft/questions/:index/options/:option", teacherControllers.SetOption)
	teacher.Put("/exams/draft/questions/:index/correct", teacherControllers.SetCorrectAnswer)
	teacher.Post("/exams", teacherControllers.SubmitDraft)

	teacher.Delete("/exams/:id", validators.Confirm(), teacherControllers.DeleteExam)
	teacher.Get("/exams/:id/results", teacherControllers.ExamResults)
}
