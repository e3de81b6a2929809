package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Quokka/config"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/service"
	"github.com/rs/zerolog/log"
)

const missingKeyGuidance = "The AI service is not configured. Set GEMINI_API_KEY on the server and restart it."

// StudyController hosts the three API operations. Every request is handled
// independently; there is no state shared between calls.
type StudyController struct {
	cfg              *config.Config
	generative       service.GenerativeService
	search           service.SearchService
	chatClassifier   service.ErrorClassifier
	searchClassifier service.ErrorClassifier
}

func NewStudyController(cfg *config.Config, generative service.GenerativeService, search service.SearchService) *StudyController {
	return &StudyController{
		cfg:              cfg,
		generative:       generative,
		search:           search,
		chatClassifier:   service.NewChatErrorClassifier(),
		searchClassifier: service.NewSearchErrorClassifier(),
	}
}

// PostChat godoc
// @Summary Send a chat transcript and get the assistant's reply
// @Description Proxies the full session transcript to the generative model and returns the next assistant message.
// @Tags Study Assistant
// @Accept json
// @Produce json
// @Param chat_request body dto.ChatRequest true "Full transcript, newest user message last"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid messages"
// @Failure 503 {object} dto.ErrorResponse "Generative credential not configured"
// @Failure 500 {object} dto.ErrorResponse "Upstream failure"
// @Router /chat [post]
func (c *StudyController) PostChat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("PostChat: failed to bind request body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	if c.cfg.Gemini.ApiKey == "" {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: missingKeyGuidance})
		return
	}

	reply, err := c.generative.Chat(ctx.Request.Context(), req.Messages)
	if err != nil {
		if errors.Is(err, service.ErrServiceUnavailable) {
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: missingKeyGuidance})
			return
		}
		log.Error().Err(err).Int("transcript_len", len(req.Messages)).Msg("PostChat: generative service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Failed to get a response from the assistant",
			Details: c.chatClassifier.Classify(err),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatResponse{Response: reply})
}

// GetSearch godoc
// @Summary Search the encyclopedia
// @Description Runs a Wikipedia search for q and returns normalized results. Zero hits is a successful, empty response.
// @Tags Study Assistant
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse "Missing query"
// @Failure 500 {object} dto.ErrorResponse "Upstream failure"
// @Router /search [get]
func (c *StudyController) GetSearch(ctx *gin.Context) {
	query := strings.TrimSpace(ctx.Query("q"))
	if query == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Query parameter 'q' is required"})
		return
	}

	// Wikipedia search needs no credential, so unlike chat and quiz there is
	// no GEMINI_API_KEY gate here.
	results, err := c.search.Search(ctx.Request.Context(), query)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("GetSearch: search service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Search failed",
			Details: c.searchClassifier.Classify(err),
		})
		return
	}

	resp := dto.SearchResponse{Results: make([]dto.SearchResultResponse, 0, len(results))}
	if err := copier.Copy(&resp.Results, &results); err != nil {
		log.Error().Err(err).Msg("GetSearch: failed to map results")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Search failed", Details: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// PostGenerateQuiz godoc
// @Summary Generate a multiple-choice quiz for a topic
// @Description Asks the generative model for a five-question, four-option quiz and returns the parsed questions.
// @Tags Study Assistant
// @Accept json
// @Produce json
// @Param quiz_request body dto.GenerateQuizRequest true "Quiz topic"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or blank topic"
// @Failure 503 {object} dto.ErrorResponse "Generative credential not configured"
// @Failure 500 {object} dto.ErrorResponse "Upstream failure or malformed generated content"
// @Router /generate-quiz [post]
func (c *StudyController) PostGenerateQuiz(ctx *gin.Context) {
	var req dto.GenerateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("PostGenerateQuiz: failed to bind request body")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Topic must not be blank"})
		return
	}

	if c.cfg.Gemini.ApiKey == "" {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: missingKeyGuidance})
		return
	}

	quiz, err := c.generative.GenerateQuiz(ctx.Request.Context(), req.Topic)
	if err != nil {
		if errors.Is(err, service.ErrServiceUnavailable) {
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: missingKeyGuidance})
			return
		}
		log.Error().Err(err).Str("topic", req.Topic).Msg("PostGenerateQuiz: generative service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Failed to generate quiz",
			Details: c.chatClassifier.Classify(err),
		})
		return
	}

	var resp dto.GenerateQuizResponse
	if err := copier.Copy(&resp.Questions, &quiz.Questions); err != nil {
		log.Error().Err(err).Msg("PostGenerateQuiz: failed to map questions")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate quiz", Details: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetHealth godoc
// @Summary Liveness check
// @Tags Study Assistant
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *StudyController) GetHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
