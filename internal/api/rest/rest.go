package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes. voteAuth guards vote submission, nil leaves it open.
func SetupRoutes(router *gin.Engine, handler Handler, voteAuth gin.HandlerFunc) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	voteHandlers := []gin.HandlerFunc{handler.SubmitVote}
	if voteAuth != nil {
		voteHandlers = append([]gin.HandlerFunc{voteAuth}, voteHandlers...)
	}

	v1 := router.Group("/api/v1")
	{
		// On-chain polls
		v1.GET("/polls", handler.ListPolls)
		v1.POST("/polls/refresh", handler.RefreshPolls)
		v1.GET("/polls/:id", handler.GetPoll)
		v1.POST("/polls/:id/votes", voteHandlers...)
		v1.POST("/polls/:id/analysis", handler.AnalyzePoll)

		// Vote attempts
		v1.GET("/votes/:attempt_id", handler.GetVoteAttempt)

		// AI suggestions
		v1.POST("/suggestions", handler.SuggestPoll)

		// Local polls
		v1.GET("/local-polls", handler.ListLocalPolls)
		v1.POST("/local-polls", handler.CreateLocalPoll)
		v1.GET("/local-polls/:id", handler.GetLocalPoll)
		v1.POST("/local-polls/:id/votes", handler.VoteLocalPoll)
	}
}
