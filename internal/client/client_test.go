package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRoundTrip(t *testing.T) {
	var got dto.ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(dto.ChatResponse{Response: "hello back"})
	}))
	defer server.Close()

	api := New(server.URL)
	reply, err := api.Chat(context.Background(), model.Transcript{{Role: model.RoleUser, Content: "hello"}})
	require.NoError(t, err)
	assert.Equal(t, "hello back", reply)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "hello", got.Messages[0].Content)
}

func TestSearchRoundTripEncodesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/search", r.URL.Path)
		require.Equal(t, "krebs cycle", r.URL.Query().Get("q"))
		json.NewEncoder(w).Encode(dto.SearchResponse{Results: []dto.SearchResultResponse{
			{Title: "Citric acid cycle", Link: "https://en.wikipedia.org/wiki/Citric_acid_cycle", Snippet: "a series of reactions"},
		}})
	}))
	defer server.Close()

	api := New(server.URL)
	results, err := api.Search(context.Background(), "krebs cycle")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Citric acid cycle", results[0].Title)
}

func TestGenerateQuizRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate-quiz", r.URL.Path)
		json.NewEncoder(w).Encode(dto.GenerateQuizResponse{Questions: []dto.QuizQuestionResponse{
			{Question: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 3},
		}})
	}))
	defer server.Close()

	api := New(server.URL)
	questions, err := api.GenerateQuiz(context.Background(), "Photosynthesis")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 3, questions[0].CorrectAnswer)
}

func TestErrorBodySurfacedToCaller(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "The AI service is not configured. Set GEMINI_API_KEY on the server and restart it."})
	}))
	defer server.Close()

	api := New(server.URL)
	_, err := api.Chat(context.Background(), model.Transcript{{Role: model.RoleUser, Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestErrorDetailsIncludedWhenPresent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "Search failed", Details: "status 503"})
	}))
	defer server.Close()

	api := New(server.URL)
	_, err := api.Search(context.Background(), "anything")
	require.Error(t, err)
	assert.Equal(t, "Search failed: status 503", err.Error())
}

func TestNonJSONErrorBodyFallsBackToStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	api := New(server.URL)
	_, err := api.Search(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
