package dto

import "github.com/lshigami/Quokka/internal/model"

// ChatRequest carries the full session transcript; the newest user message is
// expected to be the final entry.
type ChatRequest struct {
	Messages []model.ChatMessage `json:"messages" binding:"required,min=1,dive"`
}

// GenerateQuizRequest names the topic a quiz should be generated for.
type GenerateQuizRequest struct {
	Topic string `json:"topic" binding:"required"`
}
