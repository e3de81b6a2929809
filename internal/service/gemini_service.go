package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Quokka/config"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const chatSystemInstruction = "You are a helpful study partner. Answer questions clearly and concisely, " +
	"explain concepts step by step when asked, and encourage the student to keep learning. " +
	"If you are unsure about something, say so instead of guessing."

// GenerativeService adapts the study flows to the Gemini API: free-form chat
// over a transcript and one-shot quiz generation for a topic.
type GenerativeService interface {
	Chat(ctx context.Context, messages []model.ChatMessage) (string, error)
	GenerateQuiz(ctx context.Context, topic string) (*model.Quiz, error)
}

type geminiService struct {
	client *genai.Client
	cfg    *config.Config
}

func NewGenerativeService(cfg *config.Config) (GenerativeService, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GenerativeService will be non-functional.")
		return &geminiService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiService{client: client, cfg: cfg}, nil
}

// geminiRole maps a transcript role onto the two roles the Gemini chat API
// understands. Anything that is not the assistant speaks as the user.
func geminiRole(role string) string {
	if role == model.RoleAssistant {
		return "model"
	}
	return "user"
}

func (s *geminiService) Chat(ctx context.Context, messages []model.ChatMessage) (string, error) {
	if s.client == nil {
		return "", ErrServiceUnavailable
	}
	if len(messages) == 0 {
		return "", fmt.Errorf("chat called with an empty transcript")
	}

	m := s.client.GenerativeModel(s.cfg.Gemini.Model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(chatSystemInstruction)}}

	session := m.StartChat()
	for _, msg := range messages[:len(messages)-1] {
		session.History = append(session.History, &genai.Content{
			Role:  geminiRole(msg.Role),
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}

	last := messages[len(messages)-1]
	resp, err := session.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		log.Error().Err(err).Int("history_len", len(messages)-1).Msg("Gemini chat request failed")
		return "", fmt.Errorf("gemini chat request failed: %w", err)
	}

	text, err := candidateText(resp)
	if err != nil {
		return "", err
	}
	return text, nil
}

func (s *geminiService) GenerateQuiz(ctx context.Context, topic string) (*model.Quiz, error) {
	if s.client == nil {
		return nil, ErrServiceUnavailable
	}

	m := s.client.GenerativeModel(s.cfg.Gemini.Model)
	// Force JSON output so the parser never has to fish a payload out of prose.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)

	resp, err := m.GenerateContent(ctx, genai.Text(buildQuizPrompt(topic)))
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Gemini quiz generation failed")
		return nil, fmt.Errorf("gemini quiz generation failed: %w", err)
	}

	text, err := candidateText(resp)
	if err != nil {
		return nil, err
	}

	quiz, err := parseQuizJSON(text)
	if err != nil {
		log.Warn().Err(err).Str("topic", topic).Str("raw", text).Msg("Generated quiz payload did not parse")
		return nil, err
	}
	return quiz, nil
}

func buildQuizPrompt(topic string) string {
	var b strings.Builder
	b.WriteString("Generate a multiple-choice quiz with exactly 5 questions about the topic below.\n")
	b.WriteString("Each question must have exactly 4 options and exactly one correct answer.\n\n")
	b.WriteString("Return JSON only, matching this schema exactly (no markdown, no commentary):\n")
	b.WriteString(`{"questions":[{"question":"...","options":["...","...","...","..."],"correctAnswer":0}]}`)
	b.WriteString("\n\"correctAnswer\" is the zero-based index of the correct option, from 0 to 3.\n\n")
	b.WriteString("Topic: ")
	b.WriteString(topic)
	return b.String()
}

// candidateText concatenates the text parts of the first candidate.
func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", fmt.Errorf("gemini returned no content")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return b.String(), nil
}

// stripCodeFences removes markdown code fencing the model sometimes wraps
// around JSON even when asked not to.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// parseQuizJSON parses and structurally validates a generated quiz payload.
// The question count is accepted as returned; the prompt asks for five but the
// contract is whatever the model produced. Option count and answer index are
// enforced because scoring depends on them.
func parseQuizJSON(raw string) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &quiz); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGeneratedContent, err)
	}
	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("%w: no questions in payload", ErrMalformedGeneratedContent)
	}
	for i, q := range quiz.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("%w: question %d has empty text", ErrMalformedGeneratedContent, i+1)
		}
		if len(q.Options) != model.OptionsPerQuestion {
			return nil, fmt.Errorf("%w: question %d has %d options, want %d", ErrMalformedGeneratedContent, i+1, len(q.Options), model.OptionsPerQuestion)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= model.OptionsPerQuestion {
			return nil, fmt.Errorf("%w: question %d has correctAnswer %d out of range", ErrMalformedGeneratedContent, i+1, q.CorrectAnswer)
		}
	}
	return &quiz, nil
}
