package model

// Chat roles as they appear on the wire and in the transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a study session conversation.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// Transcript is the ordered, append-only message history of one session.
// It lives entirely in the client; the server never stores it.
type Transcript []ChatMessage
