package apiclient

import (
	"github.com/go-resty/resty/v2"

	"examdesk/models"
)

// Courses lists all courses with populated references
func (c *Client) Courses(token string) ([]models.Course, error) {
	var courses []models.Course
	if err := c.do(resty.MethodGet, "/courses", token, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CreateCourse creates a course
func (c *Client) CreateCourse(token string, form *models.CourseForm) error {
	return c.do(resty.MethodPost, "/courses", token, func(r *resty.Request) {
		r.SetBody(form)
	}, nil)
}

// UpdateCourse replaces the course's editable fields
func (c *Client) UpdateCourse(token, id string, form *models.CourseForm) error {
	return c.do(resty.MethodPut, "/courses/"+id, token, func(r *resty.Request) {
		r.SetBody(form)
	}, nil)
}

// DeactivateCourse soft-deletes a course
func (c *Client) DeactivateCourse(token, id string) error {
	return c.do(resty.MethodDelete, "/courses/"+id, token, nil, nil)
}

// TeacherCourses lists the courses assigned to the calling teacher
func (c *Client) TeacherCourses(token string) ([]models.Course, error) {
	var courses []models.Course
	if err := c.do(resty.MethodGet, "/teacher/courses", token, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CourseStudents lists the roster of one of the teacher's courses
func (c *Client) CourseStudents(token, courseID string) ([]models.CourseStudent, error) {
	var students []models.CourseStudent
	if err := c.do(resty.MethodGet, "/teacher/courses/"+courseID+"/students", token, nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}
