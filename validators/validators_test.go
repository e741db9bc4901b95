package validators

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"examdesk/models"
)

func TestStructReportsJSONFieldNames(t *testing.T) {
	errs := Struct(&models.LoginForm{Email: "not-an-email", Password: ""})

	assert.Equal(t, "Invalid email!", errs["email"])
	assert.Equal(t, "password is required!", errs["password"])
}

func TestStructMinLength(t *testing.T) {
	errs := Struct(&models.ChangePasswordForm{CurrentPassword: "old-secret", NewPassword: "short"})
	assert.Equal(t, "newPassword must be at least 8!", errs["newPassword"])

	errs = Struct(&models.ChangePasswordForm{CurrentPassword: "old-secret", NewPassword: "long-enough-now"})
	assert.Empty(t, errs)
}

func TestConfirm(t *testing.T) {
	app := fiber.New()
	app.Delete("/colleges/:id", Confirm(), func(c *fiber.Ctx) error {
		return c.SendString("deactivated")
	})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/colleges/c1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Confirmation required!")

	resp, err = app.Test(httptest.NewRequest("DELETE", "/colleges/c1?confirm=false", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/colleges/c1?confirm=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "deactivated", string(body))
}
