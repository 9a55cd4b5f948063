package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-survey/internal/api/shared/dto"
	"github.com/feral-file/ff-survey/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListPolls lists the aggregated on-chain polls
	// GET /api/v1/polls?q=<search>
	ListPolls(c *gin.Context)

	// RefreshPolls re-reads every configured survey contract
	// POST /api/v1/polls/refresh
	RefreshPolls(c *gin.Context)

	// GetPoll returns an on-chain poll with its question groups
	// GET /api/v1/polls/:id
	GetPoll(c *gin.Context)

	// SubmitVote starts a vote attempt (requires authentication when configured)
	// POST /api/v1/polls/:id/votes
	SubmitVote(c *gin.Context)

	// GetVoteAttempt returns the state of a vote attempt
	// GET /api/v1/votes/:attempt_id
	GetVoteAttempt(c *gin.Context)

	// AnalyzePoll attaches an AI summary to a closed poll
	// POST /api/v1/polls/:id/analysis
	AnalyzePoll(c *gin.Context)

	// SuggestPoll asks the AI service for a poll proposal
	// POST /api/v1/suggestions
	SuggestPoll(c *gin.Context)

	// ListLocalPolls lists the local polls
	// GET /api/v1/local-polls?q=<search>
	ListLocalPolls(c *gin.Context)

	// CreateLocalPoll creates a local poll
	// POST /api/v1/local-polls
	CreateLocalPoll(c *gin.Context)

	// GetLocalPoll returns a local poll
	// GET /api/v1/local-polls/:id
	GetLocalPoll(c *gin.Context)

	// VoteLocalPoll adds one vote to a local poll option
	// POST /api/v1/local-polls/:id/votes
	VoteLocalPoll(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

func (h *handler) ListPolls(c *gin.Context) {
	resp, err := h.executor.ListPolls(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, "Failed to list polls")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) RefreshPolls(c *gin.Context) {
	resp, err := h.executor.RefreshPolls(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to refresh polls")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetPoll(c *gin.Context) {
	resp, err := h.executor.GetPoll(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get poll")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) SubmitVote(c *gin.Context) {
	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.SubmitVote(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to submit vote")
		return
	}

	// a failed attempt is final, anything else is still confirming in the background
	status := http.StatusAccepted
	if resp.State.Terminal() {
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

func (h *handler) GetVoteAttempt(c *gin.Context) {
	resp, err := h.executor.GetVoteAttempt(c.Request.Context(), c.Param("attempt_id"))
	if err != nil {
		respondError(c, err, "Failed to get vote attempt")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) AnalyzePoll(c *gin.Context) {
	resp, err := h.executor.AnalyzePoll(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to analyze poll")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) SuggestPoll(c *gin.Context) {
	var req dto.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.SuggestPoll(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to suggest poll")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListLocalPolls(c *gin.Context) {
	resp, err := h.executor.ListLocalPolls(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, "Failed to list polls")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) CreateLocalPoll(c *gin.Context) {
	var req dto.CreateLocalPollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.CreateLocalPoll(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create poll")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *handler) GetLocalPoll(c *gin.Context) {
	resp, err := h.executor.GetLocalPoll(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get poll")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) VoteLocalPoll(c *gin.Context) {
	var req dto.LocalVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.VoteLocalPoll(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to vote")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-survey-api",
	})
}
