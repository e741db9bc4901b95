package models

import (
	"errors"
	"strings"
)

// ExamDraft is the exam document under construction. It lives in the
// author's session between edits and is submitted to the exam service
// in a single create call.
type ExamDraft struct {
	Course       string     `json:"course"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Duration     int        `json:"duration"` // minutes
	Deadline     string     `json:"deadline"`
	Instructions string     `json:"instructions"`
	Questions    []Question `json:"questions"`
}

// Pre-submit failures, surfaced in this order and aborting submission.
var (
	ErrDraftRequiredFields = errors.New("Please fill all required fields!")
	ErrDraftQuestionText   = errors.New("All questions must have text!")
	ErrDraftOptionText     = errors.New("All options must be filled!")
	ErrDraftDuration       = errors.New("Duration must be at least 1 minute!")
	ErrDraftMarks          = errors.New("Marks must be at least 1!")

	ErrQuestionIndex = errors.New("question index out of range")
	ErrOptionIndex   = errors.New("option index out of range")
)

func blankQuestion() Question {
	return Question{CorrectAnswer: 0, Marks: 1}
}

// NewExamDraft starts a draft with a single blank question. A course
// may be pre-selected when the author arrives from a course view.
func NewExamDraft(courseID string) *ExamDraft {
	return &ExamDraft{
		Course:    courseID,
		Duration:  60,
		Questions: []Question{blankQuestion()},
	}
}

// AddQuestion appends a blank question; authoring order is append-only.
func (d *ExamDraft) AddQuestion() {
	d.Questions = append(d.Questions, blankQuestion())
}

// RemoveQuestion removes the question at i, shifting later questions
// down. A draft always keeps at least one question; removing the last
// remaining one is a no-op and reports false.
func (d *ExamDraft) RemoveQuestion(i int) bool {
	if len(d.Questions) <= 1 || i < 0 || i >= len(d.Questions) {
		return false
	}
	d.Questions = append(d.Questions[:i], d.Questions[i+1:]...)
	return true
}

func (d *ExamDraft) question(i int) (*Question, error) {
	if i < 0 || i >= len(d.Questions) {
		return nil, ErrQuestionIndex
	}
	return &d.Questions[i], nil
}

// SetQuestionText sets the text of question i.
func (d *ExamDraft) SetQuestionText(i int, text string) error {
	q, err := d.question(i)
	if err != nil {
		return err
	}
	q.QuestionText = text
	return nil
}

// SetMarks sets the marks of question i.
func (d *ExamDraft) SetMarks(i, marks int) error {
	q, err := d.question(i)
	if err != nil {
		return err
	}
	if marks < 1 {
		return ErrDraftMarks
	}
	q.Marks = marks
	return nil
}

// SetOption sets the option text addressed by (question, option).
func (d *ExamDraft) SetOption(qi, oi int, text string) error {
	q, err := d.question(qi)
	if err != nil {
		return err
	}
	if oi < 0 || oi >= len(q.Options) {
		return ErrOptionIndex
	}
	q.Options[oi] = text
	return nil
}

// SetCorrectAnswer marks one of the four options of question qi as
// correct; the choice is exclusive within that question only.
func (d *ExamDraft) SetCorrectAnswer(qi, choice int) error {
	q, err := d.question(qi)
	if err != nil {
		return err
	}
	if choice < 0 || choice >= len(q.Options) {
		return ErrOptionIndex
	}
	q.CorrectAnswer = choice
	return nil
}

// TotalMarks is derived on every render, never stored.
func (d *ExamDraft) TotalMarks() int {
	total := 0
	for _, q := range d.Questions {
		total += q.Marks
	}
	return total
}

// Validate applies the pre-submit rules in order and returns the first
// failure. A failing draft must not reach the network.
func (d *ExamDraft) Validate() error {
	if d.Course == "" || strings.TrimSpace(d.Title) == "" || d.Deadline == "" {
		return ErrDraftRequiredFields
	}
	for _, q := range d.Questions {
		if strings.TrimSpace(q.QuestionText) == "" {
			return ErrDraftQuestionText
		}
	}
	for _, q := range d.Questions {
		for _, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return ErrDraftOptionText
			}
		}
	}
	if d.Duration < 1 {
		return ErrDraftDuration
	}
	for _, q := range d.Questions {
		if q.Marks < 1 {
			return ErrDraftMarks
		}
	}
	return nil
}
