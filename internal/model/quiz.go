package model

// OptionsPerQuestion is the option count every generated question must carry.
const OptionsPerQuestion = 4

// QuizQuestion is a single multiple-choice question. CorrectAnswer is the
// index into Options of the right choice.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Quiz is the set of questions generated for one topic. The generator is
// instructed to produce five questions, but callers must not assume the count.
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}
