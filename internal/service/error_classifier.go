package service

import "strings"

// ErrorClassifier turns an upstream vendor error into a user-safe message.
// Matching is fuzzy by nature (substring search against vendor error strings),
// so it stays behind this narrow interface and out of the handlers.
type ErrorClassifier interface {
	Classify(err error) string
}

type classifierRule struct {
	substrings  []string
	remediation string
}

// substringClassifier evaluates its rules top to bottom, first match wins,
// against the lower-cased error text. No match passes the raw message through.
type substringClassifier struct {
	rules []classifierRule
}

func (c *substringClassifier) Classify(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	lower := strings.ToLower(msg)
	for _, rule := range c.rules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return rule.remediation
			}
		}
	}
	return msg
}

// NewChatErrorClassifier classifies failures of the generative endpoints.
func NewChatErrorClassifier() ErrorClassifier {
	return &substringClassifier{rules: []classifierRule{
		{
			substrings:  []string{"permission", "unauthorized", "api key"},
			remediation: "Your Gemini API key was rejected. Verify that GEMINI_API_KEY is set to a valid key with access to the configured model.",
		},
		{
			substrings:  []string{"quota", "billing", "exceeded"},
			remediation: "The Gemini API quota for this key has been exhausted. Check your plan and billing details, then try again later.",
		},
		{
			substrings:  []string{"rate limit"},
			remediation: "The Gemini API is rate limiting requests from this key. Wait a moment before trying again.",
		},
	}}
}

// NewSearchErrorClassifier classifies failures of the encyclopedia search path.
func NewSearchErrorClassifier() ErrorClassifier {
	return &substringClassifier{rules: []classifierRule{
		{
			substrings:  []string{"permission", "unauthorized", "api key"},
			remediation: "The search service rejected the request as unauthorized. Wikipedia search needs no credential, so this usually means a proxy in between requires one.",
		},
		{
			substrings:  []string{"quota", "billing", "exceeded"},
			remediation: "The search service reports an exhausted quota. Try again later.",
		},
		{
			substrings:  []string{"rate limit"},
			remediation: "The search service is rate limiting requests. Wait a moment before searching again.",
		},
	}}
}
