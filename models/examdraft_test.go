package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledDraft() *ExamDraft {
	draft := NewExamDraft("c1")
	draft.Title = "Midterm"
	draft.Deadline = "2026-09-30T10:00"
	draft.Questions[0] = Question{
		QuestionText:  "What is 2+2?",
		Options:       [4]string{"1", "2", "3", "4"},
		CorrectAnswer: 3,
		Marks:         2,
	}
	return draft
}

func TestNewExamDraft(t *testing.T) {
	draft := NewExamDraft("c1")

	require.Len(t, draft.Questions, 1)
	assert.Equal(t, "c1", draft.Course)
	assert.Equal(t, 60, draft.Duration)
	assert.Equal(t, 0, draft.Questions[0].CorrectAnswer)
	assert.Equal(t, 1, draft.Questions[0].Marks)
	for _, opt := range draft.Questions[0].Options {
		assert.Empty(t, opt)
	}
}

func TestAddRemoveQuestionFloor(t *testing.T) {
	draft := NewExamDraft("")

	// add N, then remove all but one
	for i := 0; i < 5; i++ {
		draft.AddQuestion()
	}
	require.Len(t, draft.Questions, 6)

	for len(draft.Questions) > 1 {
		assert.True(t, draft.RemoveQuestion(0))
	}
	assert.Len(t, draft.Questions, 1)

	// removing the last remaining question is a no-op
	assert.False(t, draft.RemoveQuestion(0))
	assert.Len(t, draft.Questions, 1)
}

func TestRemoveQuestionShiftsOrder(t *testing.T) {
	draft := NewExamDraft("")
	draft.AddQuestion()
	draft.AddQuestion()
	require.NoError(t, draft.SetQuestionText(0, "first"))
	require.NoError(t, draft.SetQuestionText(1, "second"))
	require.NoError(t, draft.SetQuestionText(2, "third"))

	require.True(t, draft.RemoveQuestion(1))

	require.Len(t, draft.Questions, 2)
	assert.Equal(t, "first", draft.Questions[0].QuestionText)
	assert.Equal(t, "third", draft.Questions[1].QuestionText)

	assert.False(t, draft.RemoveQuestion(5))
	assert.False(t, draft.RemoveQuestion(-1))
}

func TestTotalMarksRecomputed(t *testing.T) {
	draft := NewExamDraft("")
	assert.Equal(t, 1, draft.TotalMarks())

	draft.AddQuestion()
	draft.AddQuestion()
	require.NoError(t, draft.SetMarks(1, 5))
	require.NoError(t, draft.SetMarks(2, 3))
	assert.Equal(t, 9, draft.TotalMarks())

	require.True(t, draft.RemoveQuestion(1))
	assert.Equal(t, 4, draft.TotalMarks())
}

func TestSetOptionAndCorrectAnswer(t *testing.T) {
	draft := NewExamDraft("")

	require.NoError(t, draft.SetOption(0, 2, "forty-two"))
	assert.Equal(t, "forty-two", draft.Questions[0].Options[2])

	require.NoError(t, draft.SetCorrectAnswer(0, 2))
	assert.Equal(t, 2, draft.Questions[0].CorrectAnswer)

	assert.ErrorIs(t, draft.SetOption(0, 4, "x"), ErrOptionIndex)
	assert.ErrorIs(t, draft.SetOption(3, 0, "x"), ErrQuestionIndex)
	assert.ErrorIs(t, draft.SetCorrectAnswer(0, -1), ErrOptionIndex)
	assert.ErrorIs(t, draft.SetMarks(0, 0), ErrDraftMarks)
}

func TestValidateOrder(t *testing.T) {
	t.Run("missing required fields first", func(t *testing.T) {
		draft := NewExamDraft("")
		assert.ErrorIs(t, draft.Validate(), ErrDraftRequiredFields)

		draft = filledDraft()
		draft.Title = "   "
		assert.ErrorIs(t, draft.Validate(), ErrDraftRequiredFields)

		draft = filledDraft()
		draft.Deadline = ""
		assert.ErrorIs(t, draft.Validate(), ErrDraftRequiredFields)
	})

	t.Run("blank question text before blank options", func(t *testing.T) {
		draft := filledDraft()
		draft.AddQuestion() // blank text and blank options
		assert.ErrorIs(t, draft.Validate(), ErrDraftQuestionText)
	})

	t.Run("blank option", func(t *testing.T) {
		draft := filledDraft()
		draft.Questions[0].Options[3] = "  "
		assert.ErrorIs(t, draft.Validate(), ErrDraftOptionText)
	})

	t.Run("valid draft", func(t *testing.T) {
		assert.NoError(t, filledDraft().Validate())
	})
}
