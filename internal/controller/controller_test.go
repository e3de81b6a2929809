package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quokka/config"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerative struct {
	chatReply string
	chatErr   error
	quiz      *model.Quiz
	quizErr   error
	chatCalls int
	quizCalls int
}

func (f *fakeGenerative) Chat(ctx context.Context, messages []model.ChatMessage) (string, error) {
	f.chatCalls++
	return f.chatReply, f.chatErr
}

func (f *fakeGenerative) GenerateQuiz(ctx context.Context, topic string) (*model.Quiz, error) {
	f.quizCalls++
	return f.quiz, f.quizErr
}

type fakeSearch struct {
	results []model.SearchResult
	err     error
	calls   int
}

func (f *fakeSearch) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	f.calls++
	return f.results, f.err
}

func newTestRouter(cfg *config.Config, gen *fakeGenerative, search *fakeSearch) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewStudyController(cfg, gen, search)
	r := gin.New()
	r.POST("/api/chat", ctrl.PostChat)
	r.GET("/api/search", ctrl.GetSearch)
	r.POST("/api/generate-quiz", ctrl.PostGenerateQuiz)
	r.GET("/api/health", ctrl.GetHealth)
	return r
}

func configWithKey() *config.Config {
	cfg := &config.Config{}
	cfg.Gemini.ApiKey = "test-key"
	return cfg
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostChatSuccess(t *testing.T) {
	gen := &fakeGenerative{chatReply: "Mitochondria are the powerhouse of the cell."}
	r := newTestRouter(configWithKey(), gen, &fakeSearch{})

	w := doJSON(t, r, http.MethodPost, "/api/chat",
		`{"messages":[{"role":"assistant","content":"Hi!"},{"role":"user","content":"What are mitochondria?"}]}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, gen.chatReply, resp.Response)
	assert.Equal(t, 1, gen.chatCalls)
}

func TestPostChatMissingKeyAnswers503WithoutUpstreamCall(t *testing.T) {
	gen := &fakeGenerative{}
	r := newTestRouter(&config.Config{}, gen, &fakeSearch{})

	w := doJSON(t, r, http.MethodPost, "/api/chat",
		`{"messages":[{"role":"user","content":"hello"}]}`)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "GEMINI_API_KEY")
	assert.Zero(t, gen.chatCalls, "the upstream call must not be attempted")
}

func TestPostChatRejectsEmptyTranscript(t *testing.T) {
	r := newTestRouter(configWithKey(), &fakeGenerative{}, &fakeSearch{})

	w := doJSON(t, r, http.MethodPost, "/api/chat", `{"messages":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/chat", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostChatClassifiesUpstreamFailure(t *testing.T) {
	gen := &fakeGenerative{chatErr: assertableError("googleapi: Error 429: rate limit hit for this key")}
	r := newTestRouter(configWithKey(), gen, &fakeSearch{})

	w := doJSON(t, r, http.MethodPost, "/api/chat",
		`{"messages":[{"role":"user","content":"hello"}]}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Details, "rate limiting")
}

func TestGetSearchSuccess(t *testing.T) {
	search := &fakeSearch{results: []model.SearchResult{
		{Title: "Photosynthesis", Link: "https://en.wikipedia.org/wiki/Photosynthesis", Snippet: "a process"},
	}}
	r := newTestRouter(configWithKey(), &fakeGenerative{}, search)

	w := doJSON(t, r, http.MethodGet, "/api/search?q=photosynthesis", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Photosynthesis", resp.Results[0].Title)
}

func TestGetSearchRequiresQuery(t *testing.T) {
	search := &fakeSearch{}
	r := newTestRouter(configWithKey(), &fakeGenerative{}, search)

	for _, path := range []string{"/api/search", "/api/search?q=", "/api/search?q=%20%20"} {
		w := doJSON(t, r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
	assert.Zero(t, search.calls)
}

func TestGetSearchWorksWithoutGenerativeCredential(t *testing.T) {
	// Search talks to Wikipedia, which needs no key; a missing GEMINI_API_KEY
	// must not gate it.
	search := &fakeSearch{results: []model.SearchResult{}}
	r := newTestRouter(&config.Config{}, &fakeGenerative{}, search)

	w := doJSON(t, r, http.MethodGet, "/api/search?q=anything", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, search.calls)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestGetSearchClassifiesUpstreamFailure(t *testing.T) {
	search := &fakeSearch{err: assertableError("upstream search request failed: status 503")}
	r := newTestRouter(configWithKey(), &fakeGenerative{}, search)

	w := doJSON(t, r, http.MethodGet, "/api/search?q=anything", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Search failed", resp.Error)
	assert.NotEmpty(t, resp.Details)
}

func TestPostGenerateQuizSuccess(t *testing.T) {
	gen := &fakeGenerative{quiz: &model.Quiz{Questions: []model.QuizQuestion{
		{Question: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 2},
	}}}
	r := newTestRouter(configWithKey(), gen, &fakeSearch{})

	w := doJSON(t, r, http.MethodPost, "/api/generate-quiz", `{"topic":"Photosynthesis"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.GenerateQuizResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, 2, resp.Questions[0].CorrectAnswer)
	assert.Len(t, resp.Questions[0].Options, 4)
}

func TestPostGenerateQuizRejectsBlankTopic(t *testing.T) {
	gen := &fakeGenerative{}
	r := newTestRouter(configWithKey(), gen, &fakeSearch{})

	w := doJSON(t, r, http.MethodPost, "/api/generate-quiz", `{"topic":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/generate-quiz", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Zero(t, gen.quizCalls)
}

func TestPostGenerateQuizMissingKeyAnswers503(t *testing.T) {
	gen := &fakeGenerative{}
	r := newTestRouter(&config.Config{}, gen, &fakeSearch{})

	w := doJSON(t, r, http.MethodPost, "/api/generate-quiz", `{"topic":"Photosynthesis"}`)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Zero(t, gen.quizCalls)
}

func TestPostGenerateQuizMalformedContentAnswers500(t *testing.T) {
	gen := &fakeGenerative{quizErr: assertableError("generated content is not a valid quiz payload: unexpected token")}
	r := newTestRouter(configWithKey(), gen, &fakeSearch{})

	w := doJSON(t, r, http.MethodPost, "/api/generate-quiz", `{"topic":"Photosynthesis"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to generate quiz", resp.Error)
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(&config.Config{}, &fakeGenerative{}, &fakeSearch{})

	w := doJSON(t, r, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

type assertableError string

func (e assertableError) Error() string { return string(e) }
