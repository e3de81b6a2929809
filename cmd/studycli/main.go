package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lshigami/Quokka/internal/client"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/panel"
)

const usage = `Commands:
  /quiz <topic>       generate a multiple-choice quiz
  /answer <q> <opt>   pick option <opt> for question <q> (both 1-based)
  /submit             score the current quiz
  /search <query>     search Wikipedia
  /quit               exit
Anything else is sent to the chat assistant.`

func main() {
	server := flag.String("server", "http://localhost:3001", "base URL of the study assistant API")
	flag.Parse()

	api := client.New(*server)
	chatPanel := panel.NewChatPanel(api)
	quizPanel := panel.NewQuizPanel(api)

	fmt.Println(panel.Greeting)
	fmt.Println(usage)

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "/quit":
			return
		case strings.HasPrefix(line, "/quiz"):
			handleGenerate(ctx, quizPanel, strings.TrimSpace(strings.TrimPrefix(line, "/quiz")))
		case strings.HasPrefix(line, "/answer"):
			handleAnswer(quizPanel, strings.Fields(strings.TrimPrefix(line, "/answer")))
		case line == "/submit":
			handleSubmit(quizPanel)
		default:
			handleChat(ctx, chatPanel, line)
		}
	}
}

func handleGenerate(ctx context.Context, p *panel.QuizPanel, topic string) {
	if topic == "" {
		fmt.Println("Usage: /quiz <topic>")
		return
	}
	fmt.Printf("Generating a quiz about %q...\n", topic)
	p.Generate(ctx, topic)
	if p.Phase() != panel.PhaseReady {
		fmt.Println(p.Alert())
		return
	}
	printQuiz(p)
}

func printQuiz(p *panel.QuizPanel) {
	for i, q := range p.Questions() {
		fmt.Printf("\n%d. %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			marker := " "
			if sel, ok := p.SelectedAnswer(i); ok && sel == j {
				marker = "*"
			}
			fmt.Printf("  %s %d) %s\n", marker, j+1, opt)
		}
	}
	fmt.Println("\nAnswer with /answer <question> <option>, then /submit.")
}

func handleAnswer(p *panel.QuizPanel, args []string) {
	if p.Phase() != panel.PhaseReady {
		fmt.Println("No quiz is open for answers. Generate one with /quiz <topic>.")
		return
	}
	if len(args) != 2 {
		fmt.Println("Usage: /answer <question> <option>")
		return
	}
	question, err1 := strconv.Atoi(args[0])
	option, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		fmt.Println("Usage: /answer <question> <option>")
		return
	}
	p.SelectAnswer(question-1, option-1)
	printQuiz(p)
}

func handleSubmit(p *panel.QuizPanel) {
	if p.Phase() == panel.PhaseSubmitted {
		fmt.Printf("Already submitted. Score: %d/%d\n", p.Score(), len(p.Questions()))
		return
	}
	if p.Phase() != panel.PhaseReady {
		fmt.Println("No quiz to submit. Generate one with /quiz <topic>.")
		return
	}
	p.Submit()
	for i, q := range p.Questions() {
		verdict := "incorrect"
		if p.IsCorrect(i) {
			verdict = "correct"
		}
		fmt.Printf("%d. %s: %s (answer: %s)\n", i+1, q.Question, verdict, q.Options[q.CorrectAnswer])
	}
	fmt.Printf("Score: %d/%d\n", p.Score(), len(p.Questions()))
}

func handleChat(ctx context.Context, p *panel.ChatPanel, input string) {
	before := len(p.Transcript())
	p.Submit(ctx, input)
	for _, msg := range p.Transcript()[before:] {
		if msg.Role == model.RoleAssistant {
			fmt.Println(msg.Content)
		}
	}
}
