package panel

import (
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/Quokka/internal/client"
	"github.com/lshigami/Quokka/internal/model"
)

const (
	searchCommand = "/search"

	// Greeting is the seed assistant message every transcript starts with.
	Greeting = "Hi! I'm your study partner. Ask me anything, or type /search <query> to look something up on Wikipedia."

	noResultsText      = "No results found."
	emptySearchWarning = "Please provide a search query after /search"
)

// ChatPanel owns one session's transcript and the in-flight state of its
// single outstanding request. It is not safe for concurrent use; like the UI
// it models, all actions happen on one goroutine.
type ChatPanel struct {
	api        client.StudyAPI
	transcript model.Transcript
	status     RequestStatus
}

func NewChatPanel(api client.StudyAPI) *ChatPanel {
	return &ChatPanel{
		api:        api,
		transcript: model.Transcript{{Role: model.RoleAssistant, Content: Greeting}},
		status:     StatusIdle,
	}
}

// Transcript returns the message history, oldest first.
func (p *ChatPanel) Transcript() model.Transcript {
	return p.transcript
}

func (p *ChatPanel) Status() RequestStatus {
	return p.status
}

// Submit handles one user input: a /search command runs a search, anything
// else is a chat turn. Submissions while a request is pending are ignored.
func (p *ChatPanel) Submit(ctx context.Context, input string) {
	if p.status == StatusPending {
		return
	}
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return
	}

	if isSearchCommand(trimmed) {
		query := strings.TrimSpace(trimmed[len(searchCommand):])
		if query == "" {
			// Surfaced locally; no request is issued.
			p.appendAssistant(emptySearchWarning)
			return
		}
		p.runSearch(ctx, query)
		return
	}

	p.runChat(ctx, trimmed)
}

func isSearchCommand(trimmed string) bool {
	lower := strings.ToLower(trimmed)
	return lower == searchCommand || strings.HasPrefix(lower, searchCommand+" ")
}

func (p *ChatPanel) runSearch(ctx context.Context, query string) {
	p.status = StatusPending
	results, err := p.api.Search(ctx, query)
	if err != nil {
		p.status = StatusFailed
		p.appendAssistant(fmt.Sprintf("Search failed: %s", err.Error()))
		return
	}
	p.status = StatusSucceeded
	p.appendAssistant(FormatSearchResults(results))
}

func (p *ChatPanel) runChat(ctx context.Context, content string) {
	// Optimistic append: the user message is part of the transcript sent out.
	p.transcript = append(p.transcript, model.ChatMessage{Role: model.RoleUser, Content: content})

	p.status = StatusPending
	reply, err := p.api.Chat(ctx, p.transcript)
	if err != nil {
		p.status = StatusFailed
		p.appendAssistant(fmt.Sprintf("Sorry, I encountered an error: %s. Please check your API key and try again.", err.Error()))
		return
	}
	p.status = StatusSucceeded
	p.appendAssistant(reply)
}

func (p *ChatPanel) appendAssistant(content string) {
	p.transcript = append(p.transcript, model.ChatMessage{Role: model.RoleAssistant, Content: content})
}

// FormatSearchResults renders hits as numbered title/link/snippet blocks
// separated by blank lines, or a fixed no-results line.
func FormatSearchResults(results []model.SearchResult) string {
	if len(results) == 0 {
		return noResultsText
	}
	blocks := make([]string, 0, len(results))
	for i, r := range results {
		blocks = append(blocks, fmt.Sprintf("%d. %s\n%s\n%s", i+1, r.Title, r.Link, r.Snippet))
	}
	return strings.Join(blocks, "\n\n")
}
