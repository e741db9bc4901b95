package apiclient

import (
	"github.com/go-resty/resty/v2"

	"examdesk/models"
)

// CreateExam submits a finished draft as one atomic document. The
// service derives totalMarks from the questions.
func (c *Client) CreateExam(token string, draft *models.ExamDraft) error {
	return c.do(resty.MethodPost, "/exams", token, func(r *resty.Request) {
		r.SetBody(draft)
	}, nil)
}

// TeacherExams lists the calling teacher's exams
func (c *Client) TeacherExams(token string) ([]models.Exam, error) {
	var exams []models.Exam
	if err := c.do(resty.MethodGet, "/teacher/exams", token, nil, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

// DeleteExam removes an exam
func (c *Client) DeleteExam(token, examID string) error {
	return c.do(resty.MethodDelete, "/exams/"+examID, token, nil, nil)
}

// ExamResultsResponse pairs the per-student rows with the aggregate
// statistics the service computed.
type ExamResultsResponse struct {
	Results    []models.Result       `json:"results"`
	Statistics models.ExamStatistics `json:"statistics"`
}

// ExamResults fetches results and statistics for one exam
func (c *Client) ExamResults(token, examID string) (*ExamResultsResponse, error) {
	resp := new(ExamResultsResponse)
	if err := c.do(resty.MethodGet, "/teacher/exams/"+examID+"/results", token, nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AvailableExams lists exams the calling student can still take
func (c *Client) AvailableExams(token string) ([]models.Exam, error) {
	var exams []models.Exam
	if err := c.do(resty.MethodGet, "/student/exams/available", token, nil, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

// StudentResults lists the calling student's past results
func (c *Client) StudentResults(token string) ([]models.Result, error) {
	var results []models.Result
	if err := c.do(resty.MethodGet, "/student/results", token, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}
