package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"examdesk/models"
)

// Navigation targets used by the gate
const (
	LoginPath          = "/login"
	HomeRootPath       = "/"
	ChangePasswordPath = "/auth/change-password"
)

// Decision is the outcome of evaluating a navigation target against
// the current session.
type Decision int

const (
	DecisionRender Decision = iota
	DecisionLogin
	DecisionHome
	DecisionChangePassword
)

// Authorize is the single authorization decision for the whole client.
// Both the per-section guard and the bare-root role dispatcher consume
// it so the two can never diverge. Rules apply in order:
//
//  1. no token or no user            -> login
//  2. role outside the allowed set   -> home
//  3. pending forced password change -> change-password (unless
//     already heading there)
//  4. otherwise render
func Authorize(token string, user *models.SessionUser, path string, allowedRoles []string) Decision {
	if token == "" || user == nil {
		return DecisionLogin
	}

	if len(allowedRoles) > 0 {
		allowed := false
		for _, role := range allowedRoles {
			if user.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			return DecisionHome
		}
	}

	if user.ForcePasswordChange && !strings.Contains(path, ChangePasswordPath) {
		return DecisionChangePassword
	}

	return DecisionRender
}

// HomePath maps a role to its dashboard root. An unrecognized or
// missing role lands back on the login page.
func HomePath(user *models.SessionUser) string {
	if user == nil {
		return LoginPath
	}
	switch user.Role {
	case models.RoleAdmin:
		return "/admin"
	case models.RoleTeacher:
		return "/teacher"
	case models.RoleStudent:
		return "/student"
	default:
		return LoginPath
	}
}

// RequireAuth guards a route group. The session is re-read from the
// store on every request, never cached in memory. On render the
// token and user are exposed via locals for the handlers.
func RequireAuth(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, user := ReadSession(c)

		switch Authorize(token, user, c.Path(), allowedRoles) {
		case DecisionLogin:
			return c.Redirect(LoginPath)
		case DecisionHome:
			return c.Redirect(HomeRootPath)
		case DecisionChangePassword:
			return c.Redirect(ChangePasswordPath)
		}

		c.Locals("token", token)
		c.Locals("sessionUser", user)
		return c.Next()
	}
}

// SessionToken returns the bearer token stashed by RequireAuth
func SessionToken(c *fiber.Ctx) string {
	token, _ := c.Locals("token").(string)
	return token
}

// SessionUser returns the user stashed by RequireAuth
func SessionUser(c *fiber.Ctx) *models.SessionUser {
	user, _ := c.Locals("sessionUser").(*models.SessionUser)
	return user
}
