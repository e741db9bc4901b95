package authRoutes

import (
	authControllers "examdesk/controllers/auth"
	"examdesk/middleware"
	authValidators "examdesk/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/", authControllers.Landing)
	app.Get("/login", authControllers.LoginView)

	// Bare authenticated root: dispatches to the role's dashboard
	app.Get("/dashboard", middleware.RequireAuth(), authControllers.Dashboard)

	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/logout", authControllers.Logout)
	authGroup.Get("/change-password", middleware.RequireAuth(), authControllers.ChangePasswordView)
	authGroup.Put("/change-password", authValidators.ChangePassword(), middleware.RequireAuth(), authControllers.ChangePassword)
}
