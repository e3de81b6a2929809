package dto

type ChatResponse struct {
	Response string `json:"response"`
}

type SearchResultResponse struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type SearchResponse struct {
	Results []SearchResultResponse `json:"results"`
}

type QuizQuestionResponse struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type GenerateQuizResponse struct {
	Questions []QuizQuestionResponse `json:"questions"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
