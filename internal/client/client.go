package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
)

// StudyAPI is the client-side view of the backend: one method per endpoint.
type StudyAPI interface {
	Chat(ctx context.Context, messages model.Transcript) (string, error)
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
	GenerateQuiz(ctx context.Context, topic string) ([]model.QuizQuestion, error)
}

type httpStudyAPI struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) StudyAPI {
	return &httpStudyAPI{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *httpStudyAPI) Chat(ctx context.Context, messages model.Transcript) (string, error) {
	var resp dto.ChatResponse
	if err := c.postJSON(ctx, "/api/chat", dto.ChatRequest{Messages: messages}, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

func (c *httpStudyAPI) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	var resp dto.SearchResponse
	path := "/api/search?q=" + url.QueryEscape(query)
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	results := make([]model.SearchResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, model.SearchResult{Title: r.Title, Link: r.Link, Snippet: r.Snippet})
	}
	return results, nil
}

func (c *httpStudyAPI) GenerateQuiz(ctx context.Context, topic string) ([]model.QuizQuestion, error) {
	var resp dto.GenerateQuizResponse
	if err := c.postJSON(ctx, "/api/generate-quiz", dto.GenerateQuizRequest{Topic: topic}, &resp); err != nil {
		return nil, err
	}
	questions := make([]model.QuizQuestion, 0, len(resp.Questions))
	for _, q := range resp.Questions {
		questions = append(questions, model.QuizQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return questions, nil
}

func (c *httpStudyAPI) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *httpStudyAPI) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *httpStudyAPI) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// apiError surfaces the server's classified error text when the body carries
// one, falling back to the HTTP status.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var errResp dto.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		if errResp.Details != "" {
			return fmt.Errorf("%s: %s", errResp.Error, errResp.Details)
		}
		return fmt.Errorf("%s", errResp.Error)
	}
	return fmt.Errorf("request failed with status %d", resp.StatusCode)
}
