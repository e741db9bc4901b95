package apiclient

import (
	"github.com/go-resty/resty/v2"

	"examdesk/models"
)

// AdminStats fetches the admin dashboard counters
func (c *Client) AdminStats(token string) (*models.AdminStats, error) {
	stats := new(models.AdminStats)
	if err := c.do(resty.MethodGet, "/admin/dashboard/stats", token, nil, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// TeacherStats fetches the teacher dashboard counters
func (c *Client) TeacherStats(token string) (*models.TeacherStats, error) {
	stats := new(models.TeacherStats)
	if err := c.do(resty.MethodGet, "/teacher/dashboard/stats", token, nil, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// StudentStats fetches the student dashboard counters
func (c *Client) StudentStats(token string) (*models.StudentStats, error) {
	stats := new(models.StudentStats)
	if err := c.do(resty.MethodGet, "/student/dashboard/stats", token, nil, stats); err != nil {
		return nil, err
	}
	return stats, nil
}
