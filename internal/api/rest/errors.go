package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-survey/internal/api/shared/errors"
	"github.com/feral-file/ff-survey/internal/logger"
)

// respond writes the {"error": {...}} envelope for an API error
func respond(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(apiErr.StatusCode(), gin.H{"error": apiErr})
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respond(c, apierrors.NewBadRequestError(message, details...))
}

// respondError responds with the API error carried by err, anything else is a 500
func respondError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierrors.NewInternalError(message)
	}

	if apiErr.StatusCode() >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("path", c.Request.URL.Path),
			zap.String("code", string(apiErr.Code)))
	}
	respond(c, apiErr)
}
