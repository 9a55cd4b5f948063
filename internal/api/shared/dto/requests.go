package dto

import (
	"fmt"
	"strings"

	"github.com/feral-file/ff-survey/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-survey/internal/api/shared/errors"
)

// VoteRequest represents the request body of an on-chain vote.
// Selections maps a question id to the selected "<questionId>-<answerId>" option id.
type VoteRequest struct {
	Selections map[string]string `json:"selections"`
}

// Validate validates the request body
func (r *VoteRequest) Validate() error {
	if len(r.Selections) == 0 {
		return apierrors.NewValidationError("selections is required")
	}
	return nil
}

// CreateLocalPollRequest represents the request body for creating a local poll
type CreateLocalPollRequest struct {
	Question    string   `json:"question"`
	Description string   `json:"description"`
	Options     []string `json:"options"`
}

// Validate validates the request body
func (r *CreateLocalPollRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return apierrors.NewValidationError("question is required")
	}
	if len(r.Question) > constants.MAX_LOCAL_QUESTION_CHARS {
		return apierrors.NewValidationError(fmt.Sprintf("question must be at most %d characters", constants.MAX_LOCAL_QUESTION_CHARS))
	}
	if len(r.Options) > constants.MAX_LOCAL_POLL_OPTIONS {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d options allowed", constants.MAX_LOCAL_POLL_OPTIONS))
	}
	return nil
}

// LocalVoteRequest represents the request body of a local poll vote
type LocalVoteRequest struct {
	OptionID string `json:"option_id"`
}

// Validate validates the request body
func (r *LocalVoteRequest) Validate() error {
	if r.OptionID == "" {
		return apierrors.NewValidationError("option_id is required")
	}
	return nil
}

// SuggestionRequest represents the request body of an AI poll suggestion
type SuggestionRequest struct {
	Topic string `json:"topic"`
}

// Validate validates the request body
func (r *SuggestionRequest) Validate() error {
	topic := strings.TrimSpace(r.Topic)
	if topic == "" {
		return apierrors.NewValidationError("topic is required")
	}
	if len(topic) > constants.MAX_TOPIC_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("topic must be at most %d characters", constants.MAX_TOPIC_LENGTH))
	}
	return nil
}
