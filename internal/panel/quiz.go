package panel

import (
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/Quokka/internal/client"
	"github.com/lshigami/Quokka/internal/model"
)

// QuizPhase is the lifecycle of one quiz instance. Ready to Submitted is
// one-way; a new Generate call starts a fresh instance.
type QuizPhase int

const (
	PhaseEmpty QuizPhase = iota
	PhaseGenerating
	PhaseReady
	PhaseSubmitted
)

func (p QuizPhase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseGenerating:
		return "generating"
	case PhaseReady:
		return "ready"
	case PhaseSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// QuizPanel owns the current quiz, the user's answers, and the score.
// Not safe for concurrent use.
type QuizPanel struct {
	api       client.StudyAPI
	phase     QuizPhase
	questions []model.QuizQuestion
	answers   map[int]int
	score     int
	alert     string
}

func NewQuizPanel(api client.StudyAPI) *QuizPanel {
	return &QuizPanel{api: api, phase: PhaseEmpty, answers: map[int]int{}}
}

func (p *QuizPanel) Phase() QuizPhase                { return p.phase }
func (p *QuizPanel) Questions() []model.QuizQuestion { return p.questions }
func (p *QuizPanel) Score() int                      { return p.score }

// Alert returns the blocking message from the last failed generate, if any.
func (p *QuizPanel) Alert() string { return p.alert }

// SelectedAnswer reports the option picked for a question, if one was.
func (p *QuizPanel) SelectedAnswer(question int) (int, bool) {
	opt, ok := p.answers[question]
	return opt, ok
}

// Generate requests a fresh quiz for topic, discarding any previous quiz,
// answers and score first. A blank topic and a generate-in-progress are
// both ignored.
func (p *QuizPanel) Generate(ctx context.Context, topic string) {
	if p.phase == PhaseGenerating {
		return
	}
	if strings.TrimSpace(topic) == "" {
		return
	}

	p.questions = nil
	p.answers = map[int]int{}
	p.score = 0
	p.alert = ""
	p.phase = PhaseGenerating

	questions, err := p.api.GenerateQuiz(ctx, topic)
	if err != nil {
		p.phase = PhaseEmpty
		p.alert = fmt.Sprintf("Could not generate a quiz: %s. This usually means the server's Gemini API key is missing or invalid.", err.Error())
		return
	}

	p.questions = questions
	p.phase = PhaseReady
}

// SelectAnswer records an option for a question. Selections are only allowed
// while the quiz is in Ready; anything after submission is ignored.
func (p *QuizPanel) SelectAnswer(question, option int) {
	if p.phase != PhaseReady {
		return
	}
	if question < 0 || question >= len(p.questions) {
		return
	}
	if option < 0 || option >= len(p.questions[question].Options) {
		return
	}
	p.answers[question] = option
}

// Submit scores the quiz and freezes it. The score is computed exactly once;
// repeated submissions are no-ops.
func (p *QuizPanel) Submit() {
	if p.phase != PhaseReady || len(p.questions) == 0 {
		return
	}
	score := 0
	for i, q := range p.questions {
		if answer, ok := p.answers[i]; ok && answer == q.CorrectAnswer {
			score++
		}
	}
	p.score = score
	p.phase = PhaseSubmitted
}

// IsCorrect reports whether the answer recorded for a question matches its
// correct option. Only meaningful after submission; unanswered questions are
// never correct.
func (p *QuizPanel) IsCorrect(question int) bool {
	if p.phase != PhaseSubmitted || question < 0 || question >= len(p.questions) {
		return false
	}
	answer, ok := p.answers[question]
	return ok && answer == p.questions[question].CorrectAnswer
}
