package adminRoutes

import (
	adminControllers "examdesk/controllers/admin"
	"examdesk/middleware"
	"examdesk/models"
	"examdesk/validators"
	collegeValidators "examdesk/validators/college"
	courseValidators "examdesk/validators/course"
	departmentValidators "examdesk/validators/department"
	registrationValidators "examdesk/validators/registration"
	userValidators "examdesk/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.RequireAuth(models.RoleAdmin))

	admin.Get("/", adminControllers.Dashboard)
	admin.Get("/dashboard", adminControllers.Dashboard)

	admin.Get("/colleges", adminControllers.ListColleges)
	admin.Post("/colleges", collegeValidators.Save(), adminControllers.CreateCollege)
	admin.Put("/colleges/:id", collegeValidators.Save(), adminControllers.UpdateCollege)
	admin.Delete("/colleges/:id", validators.Confirm(), adminControllers.DeactivateCollege)
	admin.Get("/colleges/:id/departments", adminControllers.DepartmentOptions)

	admin.Get("/departments", adminControllers.ListDepartments)
	admin.Post("/departments", departmentValidators.Save(), adminControllers.CreateDepartment)
	admin.Put("/departments/:id", departmentValidators.Save(), adminControllers.UpdateDepartment)
	admin.Delete("/departments/:id", validators.Confirm(), adminControllers.DeactivateDepartment)

	admin.Get("/courses", adminControllers.ListCourses)
	admin.Post("/courses", courseValidators.Save(), adminControllers.CreateCourse)
	admin.Put("/courses/:id", courseValidators.Save(), adminControllers.UpdateCourse)
	admin.Delete("/courses/:id", validators.Confirm(), adminControllers.DeactivateCourse)

	admin.Get("/users", adminControllers.ListUsers)
	admin.Patch("/users/:id/status", validators.Confirm(), userValidators.Status(), adminControllers.SetUserStatus)

	admin.Post("/students/register", registrationValidators.Student(), adminControllers.RegisterStudent)
	admin.Post("/teachers/register", registrationValidators.Teacher(), adminControllers.RegisterTeacher)
	admin.Post("/students/batch-register", registrationValidators.Batch(), adminControllers.BatchRegister)
}
