package controllers

import (
	"github.com/gofiber/fiber/v2"

	"examdesk/apiclient"
	"examdesk/middleware"
	"examdesk/models"
)

// Landing renders the public landing view
func Landing(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Welcome to ExamDesk!", nil)
}

// LoginView renders the login view
func LoginView(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Please sign in.", nil)
}

// Login exchanges credentials with the exam service and starts the
// session. A user flagged for a forced password change is pointed at
// the change-password view instead of their dashboard.
func Login(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedLogin").(*models.LoginForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	result, err := apiclient.Shared().Login(form)
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Login failed!")
	}

	if err := middleware.WriteSession(c, result.Token, &result.User); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start session!", nil)
	}

	redirect := middleware.HomePath(&result.User)
	if result.User.ForcePasswordChange {
		redirect = middleware.ChangePasswordPath
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"user":     result.User,
		"redirect": redirect,
	})
}

// Logout clears token and user together and returns to the login view
func Logout(c *fiber.Ctx) error {
	if err := middleware.ClearSession(c); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to end session!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", fiber.Map{
		"redirect": middleware.LoginPath,
	})
}

// ChangePasswordView renders the change-password view. It sits behind
// the gate so it is the one authenticated view reachable while a
// password change is pending.
func ChangePasswordView(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Choose a new password.", nil)
}

// ChangePassword updates the password upstream and clears the pending
// flag on the stored user so the next navigation reaches the dashboard.
func ChangePassword(c *fiber.Ctx) error {
	form, ok := c.Locals("validatedChangePassword").(*models.ChangePasswordForm)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	token := middleware.SessionToken(c)
	user := middleware.SessionUser(c)

	if err := apiclient.Shared().ChangePassword(token, form); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to change password!")
	}

	user.ForcePasswordChange = false
	if err := middleware.UpdateSessionUser(c, user); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password changed successfully!", fiber.Map{
		"redirect": middleware.HomePath(user),
	})
}

// Dashboard is the bare authenticated root: it dispatches to the
// role's dashboard through the same decision logic the gate uses.
func Dashboard(c *fiber.Ctx) error {
	return c.Redirect(middleware.HomePath(middleware.SessionUser(c)))
}
