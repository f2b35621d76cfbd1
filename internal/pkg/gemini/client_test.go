package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContent(t *testing.T) {
	var captured generateContentRequest
	var capturedPath, capturedKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello student"}]}}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gemini-2.0-flash",
	})

	text, err := client.GenerateContent(context.Background(), GenerateRequest{
		SystemPrompt: "You are a tutor.",
		Message:      "explain recursion",
		Temperature:  0.7,
		JSONResponse: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "hello student", text)

	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", capturedPath)
	assert.Equal(t, "test-key", capturedKey)
	require.NotNil(t, captured.SystemInstruction)
	assert.Equal(t, "You are a tutor.", captured.SystemInstruction.Parts[0].Text)
	require.Len(t, captured.Contents, 1)
	assert.Equal(t, "explain recursion", captured.Contents[0].Parts[0].Text)
	assert.InDelta(t, 0.7, captured.GenerationConfig.Temperature, 0.0001)
	assert.Equal(t, "application/json", captured.GenerationConfig.ResponseMimeType)
}

func TestGenerateContentOmitsOptionalFields(t *testing.T) {
	var captured generateContentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.GenerateContent(context.Background(), GenerateRequest{Message: "hi"})
	require.NoError(t, err)

	assert.Nil(t, captured.SystemInstruction)
	assert.Empty(t, captured.GenerationConfig.ResponseMimeType)
}

func TestGenerateContentAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.GenerateContent(context.Background(), GenerateRequest{Message: "hi"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "quota exceeded", apiErr.Message)
}

func TestGenerateContentEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.GenerateContent(context.Background(), GenerateRequest{Message: "hi"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{APIKey: "key"})
	assert.Equal(t, defaultBaseURL, client.baseURL)
	assert.Equal(t, defaultModel, client.model)
	assert.True(t, client.Configured())

	assert.False(t, NewClient(Config{}).Configured())
}
