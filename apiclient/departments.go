package apiclient

import (
	"github.com/go-resty/resty/v2"

	"examdesk/models"
)

// Departments lists all departments
func (c *Client) Departments(token string) ([]models.Department, error) {
	var departments []models.Department
	if err := c.do(resty.MethodGet, "/departments", token, nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// CreateDepartment creates a department under its college
func (c *Client) CreateDepartment(token string, form *models.DepartmentForm) error {
	return c.do(resty.MethodPost, "/departments", token, func(r *resty.Request) {
		r.SetBody(form)
	}, nil)
}

// UpdateDepartment replaces the department's editable fields
func (c *Client) UpdateDepartment(token, id string, form *models.DepartmentForm) error {
	return c.do(resty.MethodPut, "/departments/"+id, token, func(r *resty.Request) {
		r.SetBody(form)
	}, nil)
}

// DeactivateDepartment soft-deletes a department
func (c *Client) DeactivateDepartment(token, id string) error {
	return c.do(resty.MethodDelete, "/departments/"+id, token, nil, nil)
}
