package apiclient

import (
	"github.com/go-resty/resty/v2"

	"examdesk/models"
)

// LoginResult is the login response: an opaque bearer token plus the
// user record this client keeps in the session.
type LoginResult struct {
	Token string             `json:"token"`
	User  models.SessionUser `json:"user"`
}

// Login exchanges credentials for a token and user record
func (c *Client) Login(form *models.LoginForm) (*LoginResult, error) {
	result := new(LoginResult)
	err := c.do(resty.MethodPost, "/auth/login", "", func(r *resty.Request) {
		r.SetBody(form)
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ChangePassword updates the caller's password; the service clears the
// forcePasswordChange flag on success.
func (c *Client) ChangePassword(token string, form *models.ChangePasswordForm) error {
	return c.do(resty.MethodPut, "/auth/change-password", token, func(r *resty.Request) {
		r.SetBody(form)
	}, nil)
}
