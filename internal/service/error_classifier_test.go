package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatClassifierMatchesKnownVendorErrors(t *testing.T) {
	classifier := NewChatErrorClassifier()

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"api key", errors.New("googleapi: Error 400: API key not valid"), "GEMINI_API_KEY"},
		{"permission upper case", errors.New("PERMISSION_DENIED: caller lacks access"), "GEMINI_API_KEY"},
		{"unauthorized", errors.New("request was unauthorized"), "GEMINI_API_KEY"},
		{"quota", errors.New("googleapi: Error 429: Quota exceeded for model"), "quota"},
		{"billing", errors.New("billing account is not active"), "quota"},
		{"rate limit", errors.New("rate limit hit, slow down"), "rate limiting"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, classifier.Classify(tt.err), tt.contains)
		})
	}
}

func TestChatClassifierFirstMatchWins(t *testing.T) {
	classifier := NewChatErrorClassifier()

	// Mentions both a credential problem and a quota problem; the credential
	// rule is evaluated first.
	msg := classifier.Classify(errors.New("api key invalid and quota exceeded"))
	assert.Contains(t, msg, "GEMINI_API_KEY")
	assert.NotContains(t, msg, "quota")
}

func TestChatClassifierPassesUnknownErrorsThrough(t *testing.T) {
	classifier := NewChatErrorClassifier()

	raw := "connection reset by peer"
	assert.Equal(t, raw, classifier.Classify(errors.New(raw)))
}

func TestChatClassifierNilError(t *testing.T) {
	assert.Empty(t, NewChatErrorClassifier().Classify(nil))
}

func TestSearchClassifierUsesSearchWording(t *testing.T) {
	classifier := NewSearchErrorClassifier()

	assert.Contains(t, classifier.Classify(errors.New("rate limit reached")), "search service")
	assert.Contains(t, classifier.Classify(errors.New("quota exceeded")), "search service")
	assert.Equal(t, "no route to host", classifier.Classify(errors.New("no route to host")))
}
