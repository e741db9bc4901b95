package apiclient

import (
	"github.com/go-resty/resty/v2"

	"examdesk/models"
)

// Colleges lists all colleges, inactive ones included
func (c *Client) Colleges(token string) ([]models.College, error) {
	var colleges []models.College
	if err := c.do(resty.MethodGet, "/colleges", token, nil, &colleges); err != nil {
		return nil, err
	}
	return colleges, nil
}

// CreateCollege creates a college
func (c *Client) CreateCollege(token string, form *models.CollegeForm) error {
	return c.do(resty.MethodPost, "/colleges", token, func(r *resty.Request) {
		r.SetBody(form)
	}, nil)
}

// UpdateCollege replaces the college's editable fields
func (c *Client) UpdateCollege(token, id string, form *models.CollegeForm) error {
	return c.do(resty.MethodPut, "/colleges/"+id, token, func(r *resty.Request) {
		r.SetBody(form)
	}, nil)
}

// DeactivateCollege soft-deletes a college; the record stays listed
func (c *Client) DeactivateCollege(token, id string) error {
	return c.do(resty.MethodDelete, "/colleges/"+id, token, nil, nil)
}

// CollegeDepartments lists the departments of one college (the
// dependent half of the college -> department cascade).
func (c *Client) CollegeDepartments(token, collegeID string) ([]models.Department, error) {
	var departments []models.Department
	if err := c.do(resty.MethodGet, "/colleges/"+collegeID+"/departments", token, nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}
