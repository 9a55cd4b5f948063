package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-survey/internal/aggregator"
	"github.com/feral-file/ff-survey/internal/analysis"
	"github.com/feral-file/ff-survey/internal/api/shared/constants"
	"github.com/feral-file/ff-survey/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-survey/internal/api/shared/errors"
	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/localpoll"
	"github.com/feral-file/ff-survey/internal/logger"
	"github.com/feral-file/ff-survey/internal/pollview"
	"github.com/feral-file/ff-survey/internal/vote"
)

// Executor holds the business logic behind the REST handlers
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// ListPolls returns the aggregated on-chain polls matching the query
	ListPolls(ctx context.Context, query string) (*dto.PollListResponse, error)

	// GetPoll returns an on-chain poll with its question groups
	GetPoll(ctx context.Context, pollID string) (*dto.PollDetailResponse, error)

	// RefreshPolls runs an aggregation pass
	RefreshPolls(ctx context.Context) (*dto.RefreshResponse, error)

	// SubmitVote starts a vote attempt on an on-chain poll
	SubmitVote(ctx context.Context, pollID string, req dto.VoteRequest) (*dto.VoteAttemptResponse, error)

	// GetVoteAttempt returns the state of a vote attempt
	GetVoteAttempt(ctx context.Context, attemptID string) (*dto.VoteAttemptResponse, error)

	// AnalyzePoll attaches an AI summary to a poll whose voting is no longer open
	AnalyzePoll(ctx context.Context, pollID string) (*dto.PollDetailResponse, error)

	// SuggestPoll asks the AI service for a poll about a topic
	SuggestPoll(ctx context.Context, req dto.SuggestionRequest) (*dto.SuggestionResponse, error)

	// ListLocalPolls returns the local polls matching the query
	ListLocalPolls(ctx context.Context, query string) (*dto.PollListResponse, error)

	// CreateLocalPoll creates a local poll
	CreateLocalPoll(ctx context.Context, req dto.CreateLocalPollRequest) (*dto.PollDetailResponse, error)

	// GetLocalPoll returns a local poll with its question group
	GetLocalPoll(ctx context.Context, pollID string) (*dto.PollDetailResponse, error)

	// VoteLocalPoll adds one vote to an option of a local poll
	VoteLocalPoll(ctx context.Context, pollID string, req dto.LocalVoteRequest) (*dto.PollDetailResponse, error)
}

type executor struct {
	aggregator aggregator.Aggregator
	submitter  vote.Submitter
	analysis   analysis.Service
	localPolls localpoll.Registry
}

// NewExecutor creates the executor. submitter and analysisSvc may be nil when voting or the AI service is not configured.
func NewExecutor(agg aggregator.Aggregator, submitter vote.Submitter, analysisSvc analysis.Service, localPolls localpoll.Registry) Executor {
	return &executor{
		aggregator: agg,
		submitter:  submitter,
		analysis:   analysisSvc,
		localPolls: localPolls,
	}
}

func normalizeQuery(query string) (string, error) {
	query = strings.TrimSpace(query)
	if len(query) > constants.MAX_QUERY_LENGTH {
		return "", apierrors.NewValidationError(fmt.Sprintf("q must be at most %d characters", constants.MAX_QUERY_LENGTH))
	}
	return query, nil
}

func (e *executor) ListPolls(ctx context.Context, query string) (*dto.PollListResponse, error) {
	query, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	return &dto.PollListResponse{
		Polls:   dto.MapPollsToDTO(e.aggregator.Polls(query)),
		Loading: e.aggregator.Loading(),
	}, nil
}

func (e *executor) GetPoll(ctx context.Context, pollID string) (*dto.PollDetailResponse, error) {
	poll, err := e.aggregator.Poll(pollID)
	if err != nil {
		return nil, mapDomainError(err, "Failed to get poll")
	}
	return buildView(poll)
}

func (e *executor) RefreshPolls(ctx context.Context) (*dto.RefreshResponse, error) {
	result, err := e.aggregator.Refresh(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrAllContractsFailed) {
			return nil, apierrors.NewChainError(strings.Join(result.Failed, ", "))
		}
		return nil, apierrors.NewInternalError("Failed to refresh polls", err.Error())
	}

	return &dto.RefreshResponse{
		Polls:  dto.MapPollsToDTO(result.Polls),
		Failed: result.Failed,
	}, nil
}

func (e *executor) SubmitVote(ctx context.Context, pollID string, req dto.VoteRequest) (*dto.VoteAttemptResponse, error) {
	if e.submitter == nil {
		return nil, apierrors.NewServiceUnavailableError("Voting is not configured")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	poll, err := e.aggregator.Poll(pollID)
	if err != nil {
		return nil, mapDomainError(err, "Failed to get poll")
	}

	selection, err := pollview.ParseSelection(req.Selections)
	if err != nil {
		return nil, mapDomainError(err, "Invalid selections")
	}

	attempt, err := e.submitter.Submit(ctx, poll, selection)
	if err != nil {
		// the failure is recorded on the attempt
		if attempt.ID != "" {
			return dto.MapVoteAttemptToDTO(attempt), nil
		}
		return nil, mapDomainError(err, "Failed to submit vote")
	}
	return dto.MapVoteAttemptToDTO(attempt), nil
}

func (e *executor) GetVoteAttempt(ctx context.Context, attemptID string) (*dto.VoteAttemptResponse, error) {
	if e.submitter == nil {
		return nil, apierrors.NewServiceUnavailableError("Voting is not configured")
	}

	attempt, err := e.submitter.Attempt(attemptID)
	if err != nil {
		return nil, mapDomainError(err, "Failed to get vote attempt")
	}
	return dto.MapVoteAttemptToDTO(attempt), nil
}

func (e *executor) AnalyzePoll(ctx context.Context, pollID string) (*dto.PollDetailResponse, error) {
	if e.analysis == nil {
		return nil, apierrors.NewServiceUnavailableError("AI service is not configured")
	}

	poll, err := e.analysis.Analyze(ctx, pollID)
	if err != nil {
		return nil, mapDomainError(err, "Failed to analyze poll")
	}
	return buildView(poll)
}

func (e *executor) SuggestPoll(ctx context.Context, req dto.SuggestionRequest) (*dto.SuggestionResponse, error) {
	if e.analysis == nil {
		return nil, apierrors.NewServiceUnavailableError("AI service is not configured")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	suggestion, err := e.analysis.Suggest(ctx, req.Topic)
	if err != nil {
		return nil, mapDomainError(err, "Failed to suggest poll")
	}
	return dto.MapSuggestionToDTO(suggestion), nil
}

func (e *executor) ListLocalPolls(ctx context.Context, query string) (*dto.PollListResponse, error) {
	query, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}
	return &dto.PollListResponse{Polls: dto.MapPollsToDTO(e.localPolls.List(query))}, nil
}

func (e *executor) CreateLocalPoll(ctx context.Context, req dto.CreateLocalPollRequest) (*dto.PollDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	poll, err := e.localPolls.Create(localpoll.CreateInput{
		Question:    req.Question,
		Description: req.Description,
		Options:     req.Options,
	})
	if err != nil {
		return nil, mapDomainError(err, "Failed to create poll")
	}

	logger.InfoCtx(ctx, "Local poll created", zap.String("poll_id", poll.ID), zap.Int("options", len(poll.Options)))
	return buildView(poll)
}

func (e *executor) GetLocalPoll(ctx context.Context, pollID string) (*dto.PollDetailResponse, error) {
	poll, err := e.localPolls.Get(pollID)
	if err != nil {
		return nil, mapDomainError(err, "Failed to get poll")
	}
	return buildView(poll)
}

func (e *executor) VoteLocalPoll(ctx context.Context, pollID string, req dto.LocalVoteRequest) (*dto.PollDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	poll, err := e.localPolls.Vote(pollID, req.OptionID)
	if err != nil {
		if errors.Is(err, domain.ErrOptionNotFound) {
			return nil, apierrors.NewNotFoundError("Option not found", req.OptionID)
		}
		return nil, mapDomainError(err, "Failed to vote")
	}
	return buildView(poll)
}

func buildView(poll domain.Poll) (*dto.PollDetailResponse, error) {
	view, err := pollview.Build(poll)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to build poll view", err.Error())
	}
	return dto.MapViewToDTO(view), nil
}

// mapDomainError converts domain sentinel errors into API errors
func mapDomainError(err error, message string) error {
	switch {
	case errors.Is(err, domain.ErrPollNotFound):
		return apierrors.NewNotFoundError("Poll not found")
	case errors.Is(err, domain.ErrAttemptNotFound):
		return apierrors.NewNotFoundError("Vote attempt not found")
	case errors.Is(err, domain.ErrOptionNotFound),
		errors.Is(err, domain.ErrIncompleteAnswers),
		errors.Is(err, domain.ErrInvalidOptionID),
		errors.Is(err, domain.ErrInvalidPoll),
		errors.Is(err, domain.ErrEmptyTopic):
		return apierrors.NewValidationError(err.Error())
	case errors.Is(err, domain.ErrPollNotVotable),
		errors.Is(err, domain.ErrPollStillOpen):
		return apierrors.NewConflictError(err.Error())
	case errors.Is(err, domain.ErrAIUnavailable):
		return apierrors.NewServiceError("AI service unavailable", err.Error())
	default:
		return apierrors.NewInternalError(message, err.Error())
	}
}
