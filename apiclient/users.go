package apiclient

import (
	"io"
	"strconv"

	"github.com/go-resty/resty/v2"

	"examdesk/models"
)

// Users fetches one page of the admin user listing. Filtering, search
// and paging are all applied server-side.
func (c *Client) Users(token string, filter models.UserFilter) (*models.UserPage, error) {
	page := new(models.UserPage)
	err := c.do(resty.MethodGet, "/admin/users", token, func(r *resty.Request) {
		if filter.Role != "" && filter.Role != "all" {
			r.SetQueryParam("role", filter.Role)
		}
		if filter.Search != "" {
			r.SetQueryParam("search", filter.Search)
		}
		if filter.Page > 0 {
			r.SetQueryParam("page", strconv.Itoa(filter.Page))
		}
		if filter.Limit > 0 {
			r.SetQueryParam("limit", strconv.Itoa(filter.Limit))
		}
	}, page)
	if err != nil {
		return nil, err
	}
	return page, nil
}

// SetUserStatus toggles a user's active flag (soft activate/deactivate)
func (c *Client) SetUserStatus(token, userID string, isActive bool) error {
	return c.do(resty.MethodPatch, "/admin/users/"+userID+"/status", token, func(r *resty.Request) {
		r.SetBody(map[string]bool{"isActive": isActive})
	}, nil)
}

// Teachers lists teacher accounts for the course form selector
func (c *Client) Teachers(token string) ([]models.Teacher, error) {
	result := struct {
		Teachers []models.Teacher `json:"teachers"`
	}{}
	if err := c.do(resty.MethodGet, "/admin/teachers", token, nil, &result); err != nil {
		return nil, err
	}
	return result.Teachers, nil
}

// RegisterStudent creates one student account
func (c *Client) RegisterStudent(token string, form *models.StudentRegistrationForm) error {
	return c.do(resty.MethodPost, "/admin/students/register", token, func(r *resty.Request) {
		r.SetBody(form)
	}, nil)
}

// RegisterTeacher creates one teacher account
func (c *Client) RegisterTeacher(token string, form *models.TeacherRegistrationForm) error {
	return c.do(resty.MethodPost, "/admin/teachers/register", token, func(r *resty.Request) {
		r.SetBody(form)
	}, nil)
}

// BatchRegisterStudents uploads a spreadsheet of students. The service
// parses rows and reports per-row failures; the outcome is rendered
// verbatim.
func (c *Client) BatchRegisterStudents(token, fileName string, file io.Reader, form *models.BatchRegistrationForm) (*models.BatchOutcome, error) {
	outcome := new(models.BatchOutcome)
	err := c.do(resty.MethodPost, "/admin/students/batch-register", token, func(r *resty.Request) {
		r.SetFileReader("file", fileName, file)
		r.SetFormData(map[string]string{
			"college":    form.College,
			"department": form.Department,
			"year":       form.Year,
		})
	}, outcome)
	if err != nil {
		return nil, err
	}
	return outcome, nil
}
