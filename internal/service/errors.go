package service

import "errors"

var (
	// ErrServiceUnavailable means the generative credential is not configured.
	// Endpoints that depend on it answer 503 instead of attempting the call.
	ErrServiceUnavailable = errors.New("generative service unavailable: GEMINI_API_KEY is not configured")

	// ErrMalformedGeneratedContent means the model returned something that does
	// not parse into the expected quiz shape. Never retried.
	ErrMalformedGeneratedContent = errors.New("generated content is not a valid quiz payload")

	// ErrUpstreamSearch wraps failures of the encyclopedia search call itself.
	// Zero hits is not an error.
	ErrUpstreamSearch = errors.New("upstream search request failed")
)
