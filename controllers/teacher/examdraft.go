package controllers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"examdesk/apiclient"
	"examdesk/middleware"
	"examdesk/models"
)

// The draft lives in the author's session between edits and reaches
// the exam service in one atomic create call on submit. Total marks
// are derived on every response, never stored.

const draftKey = "examDraft"

func loadDraft(c *fiber.Ctx) (*models.ExamDraft, error) {
	sess, err := middleware.CurrentSession(c)
	if err != nil {
		return nil, err
	}
	raw, _ := sess.Get(draftKey).([]byte)
	if len(raw) == 0 {
		return nil, nil
	}
	draft := new(models.ExamDraft)
	if err := json.Unmarshal(raw, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func saveDraft(c *fiber.Ctx, draft *models.ExamDraft) error {
	sess, err := middleware.CurrentSession(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	sess.Set(draftKey, raw)
	return sess.Save()
}

func clearDraft(c *fiber.Ctx) error {
	sess, err := middleware.CurrentSession(c)
	if err != nil {
		return err
	}
	sess.Delete(draftKey)
	return sess.Save()
}

func draftResponse(c *fiber.Ctx, message string, draft *models.ExamDraft) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"draft":      draft,
		"totalMarks": draft.TotalMarks(),
	})
}

// requireDraft loads the draft or replies that none is in progress
func requireDraft(c *fiber.Ctx) (*models.ExamDraft, error) {
	draft, err := loadDraft(c)
	if err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read exam draft!", nil)
	}
	if draft == nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "No exam draft in progress!", nil)
	}
	return draft, nil
}

func indexErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, models.ErrQuestionIndex) || errors.Is(err, models.ErrOptionIndex) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Question or option not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
}

// OpenDraft starts a fresh draft with one blank question, optionally
// pre-selecting a course, and loads the course selector.
func OpenDraft(c *fiber.Ctx) error {
	courses, err := apiclient.Shared().TeacherCourses(middleware.SessionToken(c))
	if err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to fetch courses!")
	}

	draft := models.NewExamDraft(c.Query("course"))
	if err := saveDraft(c, draft); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save exam draft!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam draft started.", fiber.Map{
		"draft":      draft,
		"totalMarks": draft.TotalMarks(),
		"courses":    courses,
	})
}

// Draft renders the draft in progress
func Draft(c *fiber.Ctx) error {
	draft, errResp := requireDraft(c)
	if draft == nil {
		return errResp
	}
	return draftResponse(c, "Exam draft fetched.", draft)
}

// UpdateDraft replaces the top-level exam fields of the draft
func UpdateDraft(c *fiber.Ctx) error {
	draft, errResp := requireDraft(c)
	if draft == nil {
		return errResp
	}

	body := new(struct {
		Course       string `json:"course"`
		Title        string `json:"title"`
		Description  string `json:"description"`
		Duration     int    `json:"duration"`
		Deadline     string `json:"deadline"`
		Instructions string `json:"instructions"`
	})
	if err := c.BodyParser(body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	draft.Course = body.Course
	draft.Title = body.Title
	draft.Description = body.Description
	draft.Duration = body.Duration
	draft.Deadline = body.Deadline
	draft.Instructions = body.Instructions

	if err := saveDraft(c, draft); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save exam draft!", nil)
	}
	return draftResponse(c, "Exam draft updated.", draft)
}

// AddQuestion appends a blank question to the draft
func AddQuestion(c *fiber.Ctx) error {
	draft, errResp := requireDraft(c)
	if draft == nil {
		return errResp
	}

	draft.AddQuestion()

	if err := saveDraft(c, draft); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save exam draft!", nil)
	}
	return draftResponse(c, "Question added.", draft)
}

// RemoveQuestion removes the question at the given position. The last
// remaining question cannot be removed; that request is a no-op.
func RemoveQuestion(c *fiber.Ctx) error {
	draft, errResp := requireDraft(c)
	if draft == nil {
		return errResp
	}

	index, err := c.ParamsInt("index")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question index!", nil)
	}

	if !draft.RemoveQuestion(index) {
		return draftResponse(c, "An exam must keep at least one question.", draft)
	}

	if err := saveDraft(c, draft); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save exam draft!", nil)
	}
	return draftResponse(c, "Question removed.", draft)
}

// UpdateQuestion edits the text and/or marks of one question
func UpdateQuestion(c *fiber.Ctx) error {
	draft, errResp := requireDraft(c)
	if draft == nil {
		return errResp
	}

	index, err := c.ParamsInt("index")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question index!", nil)
	}

	body := new(struct {
		QuestionText *string `json:"questionText"`
		Marks        *int    `json:"marks"`
	})
	if err := c.BodyParser(body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if body.QuestionText != nil {
		if err := draft.SetQuestionText(index, *body.QuestionText); err != nil {
			return indexErrorResponse(c, err)
		}
	}
	if body.Marks != nil {
		if err := draft.SetMarks(index, *body.Marks); err != nil {
			return indexErrorResponse(c, err)
		}
	}

	if err := saveDraft(c, draft); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save exam draft!", nil)
	}
	return draftResponse(c, "Question updated.", draft)
}

// SetOption edits one option text, addressed by (question, option)
func SetOption(c *fiber.Ctx) error {
	draft, errResp := requireDraft(c)
	if draft == nil {
		return errResp
	}

	qIndex, err := c.ParamsInt("index")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question index!", nil)
	}
	oIndex, err := c.ParamsInt("option")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid option index!", nil)
	}

	body := new(struct {
		Text string `json:"text"`
	})
	if err := c.BodyParser(body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := draft.SetOption(qIndex, oIndex, body.Text); err != nil {
		return indexErrorResponse(c, err)
	}

	if err := saveDraft(c, draft); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save exam draft!", nil)
	}
	return draftResponse(c, "Option updated.", draft)
}

// SetCorrectAnswer marks one option of a question as the correct one
func SetCorrectAnswer(c *fiber.Ctx) error {
	draft, errResp := requireDraft(c)
	if draft == nil {
		return errResp
	}

	index, err := c.ParamsInt("index")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question index!", nil)
	}

	body := new(struct {
		CorrectAnswer int `json:"correctAnswer"`
	})
	if err := c.BodyParser(body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := draft.SetCorrectAnswer(index, body.CorrectAnswer); err != nil {
		return indexErrorResponse(c, err)
	}

	if err := saveDraft(c, draft); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save exam draft!", nil)
	}
	return draftResponse(c, "Correct answer set.", draft)
}

// SubmitDraft validates the draft and submits it as one document. A
// validation failure aborts before any network call; an upstream
// failure leaves the draft untouched so the author can correct and
// resubmit. Success clears the draft and points at the exam list.
func SubmitDraft(c *fiber.Ctx) error {
	draft, errResp := requireDraft(c)
	if draft == nil {
		return errResp
	}

	if err := draft.Validate(); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	if err := apiclient.Shared().CreateExam(middleware.SessionToken(c), draft); err != nil {
		return middleware.UpstreamErrorResponse(c, err, "Failed to create exam!")
	}

	if err := clearDraft(c); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to clear exam draft!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam created successfully!", fiber.Map{
		"redirect": "/teacher/exams",
	})
}
