package dto

import (
	"encoding/json"
	"time"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
)

// ChatRequest represents one AI tutor message
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	Mode    string `json:"mode"`
}

// ChatResponse represents the tutor's reply
type ChatResponse struct {
	Response string `json:"response"`
	Mode     string `json:"mode"`
}

// GenerateQuestionsRequest asks for a practice question on a subject
type GenerateQuestionsRequest struct {
	Subject      string `json:"subject" binding:"required"`
	QuestionType string `json:"questionType" binding:"required,oneof=coding mcq subjective"`
	Difficulty   string `json:"difficulty"`
}

// GenerateQuestionsResponse passes through the model's structured question.
// The shape depends on the question type, so it stays raw JSON.
type GenerateQuestionsResponse struct {
	Subject      string          `json:"subject"`
	QuestionType string          `json:"questionType"`
	Question     json.RawMessage `json:"question"`
}

// TestCase is one input/output pair for a coding question
type TestCase struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// CheckAnswerRequest asks the tutor to grade a coding answer
type CheckAnswerRequest struct {
	Question  string     `json:"question" binding:"required"`
	Code      string     `json:"code" binding:"required"`
	TestCases []TestCase `json:"testCases"`
}

// CheckAnswerResponse is the tutor's verdict on an answer
type CheckAnswerResponse struct {
	Correct     bool   `json:"correct"`
	Feedback    string `json:"feedback"`
	PassedTests int    `json:"passedTests"`
	TotalTests  int    `json:"totalTests"`
}

// ChatHistoryEntry represents one stored exchange
type ChatHistoryEntry struct {
	ID        int64     `json:"id"`
	Mode      string    `json:"mode"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChatHistoryResponse carries a user's exchanges plus the mode they last used
type ChatHistoryResponse struct {
	LastMode string              `json:"lastMode,omitempty"`
	History  []*ChatHistoryEntry `json:"history"`
}

// NewChatHistoryEntry maps a chat history model to its response form
func NewChatHistoryEntry(h *models.ChatHistory) *ChatHistoryEntry {
	return &ChatHistoryEntry{
		ID:        h.ID,
		Mode:      string(h.Mode),
		Message:   h.Message,
		Response:  h.Response,
		CreatedAt: h.CreatedAt,
	}
}
