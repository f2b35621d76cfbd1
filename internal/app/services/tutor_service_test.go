package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
	"github.com/anantsaxena14/campus-sphere/internal/app/models/dto"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/apperrors"
	"github.com/anantsaxena14/campus-sphere/internal/pkg/gemini"
)

// fakeGenerator records the last request and returns a canned response
type fakeGenerator struct {
	lastRequest gemini.GenerateRequest
	response    string
	err         error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, req gemini.GenerateRequest) (string, error) {
	f.lastRequest = req
	return f.response, f.err
}

func newTutorServiceForTest(gen gemini.Generator) *TutorService {
	return &TutorService{
		generator: gen,
		logger:    zerolog.Nop(),
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		raw      string
		expected models.TutorMode
		wantErr  bool
	}{
		{"normal", models.TutorModeNormal, false},
		{"practice", models.TutorModePractice, false},
		{"counseling", models.TutorModeCounseling, false},
		{"", models.TutorModeNormal, false},
		{"therapist", "", true},
		{"NORMAL", "", true},
	}
	for _, tt := range tests {
		t.Run("mode "+tt.raw, func(t *testing.T) {
			mode, err := parseMode(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidTutorMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestGenerateQuestionsPromptsByType(t *testing.T) {
	tests := []struct {
		questionType string
		wantFragment string
	}{
		{"coding", "coding question"},
		{"mcq", "multiple choice question"},
		{"subjective", "subjective question"},
	}
	for _, tt := range tests {
		t.Run(tt.questionType, func(t *testing.T) {
			gen := &fakeGenerator{response: `{"question":"what is a stack?"}`}
			svc := newTutorServiceForTest(gen)

			resp, err := svc.GenerateQuestions(context.Background(), dto.GenerateQuestionsRequest{
				Subject:      "Data Structures",
				QuestionType: tt.questionType,
			})
			require.NoError(t, err)

			assert.Contains(t, gen.lastRequest.Message, tt.wantFragment)
			assert.Contains(t, gen.lastRequest.Message, "Data Structures")
			assert.Contains(t, gen.lastRequest.Message, "medium", "difficulty should default to medium")
			assert.True(t, gen.lastRequest.JSONResponse)

			assert.Equal(t, "Data Structures", resp.Subject)
			assert.Equal(t, tt.questionType, resp.QuestionType)
			assert.Equal(t, json.RawMessage(`{"question":"what is a stack?"}`), resp.Question)
		})
	}
}

func TestGenerateQuestionsInvalidModelJSON(t *testing.T) {
	gen := &fakeGenerator{response: "sorry, I cannot do that"}
	svc := newTutorServiceForTest(gen)

	_, err := svc.GenerateQuestions(context.Background(), dto.GenerateQuestionsRequest{
		Subject:      "Algorithms",
		QuestionType: "coding",
	})
	assert.ErrorIs(t, err, apperrors.ErrTutorUnavailable)
}

func TestGenerateQuestionsGeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	svc := newTutorServiceForTest(gen)

	_, err := svc.GenerateQuestions(context.Background(), dto.GenerateQuestionsRequest{
		Subject:      "Algorithms",
		QuestionType: "mcq",
	})
	assert.ErrorIs(t, err, apperrors.ErrTutorUnavailable)
}

func TestCheckAnswer(t *testing.T) {
	gen := &fakeGenerator{
		response: `{"correct":true,"feedback":"well done","passed_tests":3,"total_tests":3}`,
	}
	svc := newTutorServiceForTest(gen)

	resp, err := svc.CheckAnswer(context.Background(), dto.CheckAnswerRequest{
		Question: "Reverse a string",
		Code:     "func reverse(s string) string { ... }",
		TestCases: []dto.TestCase{
			{Input: "abc", Output: "cba"},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Correct)
	assert.Equal(t, "well done", resp.Feedback)
	assert.Equal(t, 3, resp.PassedTests)
	assert.Equal(t, 3, resp.TotalTests)

	assert.Contains(t, gen.lastRequest.Message, "Reverse a string")
	assert.Contains(t, gen.lastRequest.Message, "func reverse")
	assert.Contains(t, gen.lastRequest.Message, `"input":"abc"`)
	assert.True(t, gen.lastRequest.JSONResponse)
}

func TestCheckAnswerInvalidModelJSON(t *testing.T) {
	gen := &fakeGenerator{response: "not json"}
	svc := newTutorServiceForTest(gen)

	_, err := svc.CheckAnswer(context.Background(), dto.CheckAnswerRequest{
		Question: "q", Code: "c",
	})
	assert.ErrorIs(t, err, apperrors.ErrTutorUnavailable)
}
