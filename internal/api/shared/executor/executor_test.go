package executor_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-survey/internal/aggregator"
	"github.com/feral-file/ff-survey/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-survey/internal/api/shared/errors"
	"github.com/feral-file/ff-survey/internal/api/shared/executor"
	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/mocks"
	"github.com/feral-file/ff-survey/internal/pollview"
)

const pollID = "0x31d695C8a1a50340C3005FA53846019991D5b2E8"

type testExecutorMocks struct {
	ctrl       *gomock.Controller
	aggregator *mocks.MockAggregator
	submitter  *mocks.MockSubmitter
	analysis   *mocks.MockAnalysisService
	localPolls *mocks.MockLocalPollRegistry
	executor   executor.Executor
}

func setupTestExecutor(t *testing.T) *testExecutorMocks {
	ctrl := gomock.NewController(t)
	tm := &testExecutorMocks{
		ctrl:       ctrl,
		aggregator: mocks.NewMockAggregator(ctrl),
		submitter:  mocks.NewMockSubmitter(ctrl),
		analysis:   mocks.NewMockAnalysisService(ctrl),
		localPolls: mocks.NewMockLocalPollRegistry(ctrl),
	}
	tm.executor = executor.NewExecutor(tm.aggregator, tm.submitter, tm.analysis, tm.localPolls)
	return tm
}

func surveyPoll(state domain.OpenState) domain.Poll {
	return domain.Poll{
		ID:           pollID,
		Question:     "Community survey",
		State:        state,
		Source:       domain.PollSourceOnChain,
		ChainID:      11155111,
		TokenAddress: domain.StringPtr("0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984"),
		TokenSymbol:  domain.StringPtr("UNI"),
		Options: []domain.PollOption{
			domain.NewSurveyOption(1, 1, "Color?", "Red", 3),
			domain.NewSurveyOption(1, 2, "Color?", "Blue", 1),
			domain.NewSurveyOption(2, 1, "Size?", "Big", 2),
		},
	}
}

func requireAPIError(t *testing.T, err error, status int) *apierrors.APIError {
	t.Helper()
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	assert.Equal(t, status, apiErr.StatusCode())
	return apiErr
}

func TestListPolls(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.aggregator.EXPECT().Polls("survey").Return([]domain.Poll{surveyPoll(domain.OpenStateOpen)})
	tm.aggregator.EXPECT().Loading().Return(map[string]bool{pollID: false})

	resp, err := tm.executor.ListPolls(context.Background(), "  survey ")
	require.NoError(t, err)
	require.Len(t, resp.Polls, 1)
	assert.True(t, resp.Polls[0].IsOpen)
	require.NotNil(t, resp.Polls[0].Token)
	assert.Equal(t, "UNI", *resp.Polls[0].Token.Symbol)
	assert.Equal(t, map[string]bool{pollID: false}, resp.Loading)
}

func TestGetPoll(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.aggregator.EXPECT().Poll(pollID).Return(surveyPoll(domain.OpenStateClosed), nil)
	resp, err := tm.executor.GetPoll(context.Background(), pollID)
	require.NoError(t, err)
	assert.True(t, resp.ShowResults)
	assert.Equal(t, uint64(6), resp.TotalVotes)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, "75.0", resp.Questions[0].Answers[0].Percentage)

	tm.aggregator.EXPECT().Poll("missing").Return(domain.Poll{}, domain.ErrPollNotFound)
	_, err = tm.executor.GetPoll(context.Background(), "missing")
	requireAPIError(t, err, http.StatusNotFound)
}

func TestRefreshPolls(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.aggregator.EXPECT().Refresh(gomock.Any()).Return(aggregator.RefreshResult{
		Polls:  []domain.Poll{surveyPoll(domain.OpenStateOpen)},
		Failed: []string{"0xdead"},
	}, nil)
	resp, err := tm.executor.RefreshPolls(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Polls, 1)
	assert.Equal(t, []string{"0xdead"}, resp.Failed)

	tm.aggregator.EXPECT().Refresh(gomock.Any()).Return(aggregator.RefreshResult{Failed: []string{pollID}}, domain.ErrAllContractsFailed)
	_, err = tm.executor.RefreshPolls(context.Background())
	apiErr := requireAPIError(t, err, http.StatusBadGateway)
	assert.Equal(t, apierrors.MessageChainUnavailable, apiErr.Message)
}

func TestSubmitVote(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	poll := surveyPoll(domain.OpenStateOpen)
	tm.aggregator.EXPECT().Poll(pollID).Return(poll, nil)
	tm.submitter.EXPECT().Submit(gomock.Any(), poll, pollview.Selection{1: "1-2", 2: "2-1"}).
		Return(domain.VoteAttempt{ID: "attempt-1", State: domain.VoteStateSubmitted, TxHash: "0xabc"}, nil)

	resp, err := tm.executor.SubmitVote(context.Background(), pollID, dto.VoteRequest{
		Selections: map[string]string{"1": "1-2", "2": "2-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "attempt-1", resp.ID)
	assert.Equal(t, domain.VoteStateSubmitted, resp.State)
}

func TestSubmitVote_Errors(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	_, err := tm.executor.SubmitVote(context.Background(), pollID, dto.VoteRequest{})
	requireAPIError(t, err, http.StatusUnprocessableEntity)

	poll := surveyPoll(domain.OpenStateOpen)
	tm.aggregator.EXPECT().Poll(pollID).Return(poll, nil).Times(4)

	_, err = tm.executor.SubmitVote(context.Background(), pollID, dto.VoteRequest{Selections: map[string]string{"x": "1-1"}})
	requireAPIError(t, err, http.StatusUnprocessableEntity)

	tm.submitter.EXPECT().Submit(gomock.Any(), poll, gomock.Any()).
		Return(domain.VoteAttempt{}, domain.ErrIncompleteAnswers)
	_, err = tm.executor.SubmitVote(context.Background(), pollID, dto.VoteRequest{Selections: map[string]string{"1": "1-1"}})
	requireAPIError(t, err, http.StatusUnprocessableEntity)

	tm.submitter.EXPECT().Submit(gomock.Any(), poll, gomock.Any()).
		Return(domain.VoteAttempt{}, domain.ErrPollNotVotable)
	_, err = tm.executor.SubmitVote(context.Background(), pollID, dto.VoteRequest{Selections: map[string]string{"1": "1-1", "2": "2-1"}})
	requireAPIError(t, err, http.StatusConflict)

	// failures after the attempt exists are reported on the attempt
	tm.submitter.EXPECT().Submit(gomock.Any(), poll, gomock.Any()).
		Return(domain.VoteAttempt{ID: "attempt-2", State: domain.VoteStateFailed, Failure: domain.FailureKindRejected}, domain.ErrUserRejected)
	resp, err := tm.executor.SubmitVote(context.Background(), pollID, dto.VoteRequest{Selections: map[string]string{"1": "1-1", "2": "2-1"}})
	require.NoError(t, err)
	assert.Equal(t, domain.VoteStateFailed, resp.State)
	assert.Equal(t, domain.FailureKindRejected, resp.Failure)
}

func TestSubmitVote_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := executor.NewExecutor(mocks.NewMockAggregator(ctrl), nil, nil, mocks.NewMockLocalPollRegistry(ctrl))
	_, err := exec.SubmitVote(context.Background(), pollID, dto.VoteRequest{Selections: map[string]string{"1": "1-1"}})
	requireAPIError(t, err, http.StatusServiceUnavailable)

	_, err = exec.AnalyzePoll(context.Background(), pollID)
	requireAPIError(t, err, http.StatusServiceUnavailable)
}

func TestGetVoteAttempt(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.submitter.EXPECT().Attempt("attempt-1").Return(domain.VoteAttempt{
		ID: "attempt-1", State: domain.VoteStateConfirmed, Message: "Vote confirmed!",
	}, nil)
	resp, err := tm.executor.GetVoteAttempt(context.Background(), "attempt-1")
	require.NoError(t, err)
	assert.Equal(t, "Vote confirmed!", resp.Message)

	tm.submitter.EXPECT().Attempt("nope").Return(domain.VoteAttempt{}, domain.ErrAttemptNotFound)
	_, err = tm.executor.GetVoteAttempt(context.Background(), "nope")
	requireAPIError(t, err, http.StatusNotFound)
}

func TestAnalyzePoll(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	poll := surveyPoll(domain.OpenStateClosed)
	poll.AIAnalysis = domain.StringPtr("Red wins.")
	tm.analysis.EXPECT().Analyze(gomock.Any(), pollID).Return(poll, nil)
	resp, err := tm.executor.AnalyzePoll(context.Background(), pollID)
	require.NoError(t, err)
	assert.Equal(t, "Red wins.", *resp.Poll.AIAnalysis)

	tm.analysis.EXPECT().Analyze(gomock.Any(), pollID).Return(domain.Poll{}, domain.ErrPollStillOpen)
	_, err = tm.executor.AnalyzePoll(context.Background(), pollID)
	requireAPIError(t, err, http.StatusConflict)

	tm.analysis.EXPECT().Analyze(gomock.Any(), pollID).Return(domain.Poll{}, fmt.Errorf("wrapped: %w", domain.ErrAIUnavailable))
	_, err = tm.executor.AnalyzePoll(context.Background(), pollID)
	requireAPIError(t, err, http.StatusBadGateway)
}

func TestSuggestPoll(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	_, err := tm.executor.SuggestPoll(context.Background(), dto.SuggestionRequest{Topic: "  "})
	requireAPIError(t, err, http.StatusUnprocessableEntity)

	tm.analysis.EXPECT().Suggest(gomock.Any(), "pets").Return(&domain.AIPollSuggestion{
		Question: "Best pet?", Options: []string{"Cat", "Dog", "Fish"},
	}, nil)
	resp, err := tm.executor.SuggestPoll(context.Background(), dto.SuggestionRequest{Topic: "pets"})
	require.NoError(t, err)
	assert.Equal(t, "Best pet?", resp.Question)
}

func TestLocalPolls(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	local := domain.Poll{
		ID:       "local-1",
		Question: "Tabs or spaces?",
		State:    domain.OpenStateOpen,
		Source:   domain.PollSourceLocal,
		Options: []domain.PollOption{
			{ID: "local-1-opt-1", Text: "Tabs", QuestionID: 1, AnswerID: 1, QuestionText: "Tabs or spaces?", AnswerText: "Tabs", Votes: 1},
			{ID: "local-1-opt-2", Text: "Spaces", QuestionID: 1, AnswerID: 2, QuestionText: "Tabs or spaces?", AnswerText: "Spaces", Votes: 3},
		},
	}

	tm.localPolls.EXPECT().Create(gomock.Any()).Return(local, nil)
	created, err := tm.executor.CreateLocalPoll(context.Background(), dto.CreateLocalPollRequest{
		Question: "Tabs or spaces?", Options: []string{"Tabs", "Spaces"},
	})
	require.NoError(t, err)
	assert.True(t, created.ShowResults)
	require.Len(t, created.Questions, 1)

	tm.localPolls.EXPECT().Create(gomock.Any()).Return(domain.Poll{}, domain.ErrInvalidPoll)
	_, err = tm.executor.CreateLocalPoll(context.Background(), dto.CreateLocalPollRequest{Question: "Q?", Options: []string{"A"}})
	requireAPIError(t, err, http.StatusUnprocessableEntity)

	tm.localPolls.EXPECT().List("").Return([]domain.Poll{local})
	list, err := tm.executor.ListLocalPolls(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, list.Polls, 1)
	assert.Nil(t, list.Loading)

	tm.localPolls.EXPECT().Vote("local-1", "bogus").Return(domain.Poll{}, domain.ErrOptionNotFound)
	_, err = tm.executor.VoteLocalPoll(context.Background(), "local-1", dto.LocalVoteRequest{OptionID: "bogus"})
	requireAPIError(t, err, http.StatusNotFound)

	_, err = tm.executor.VoteLocalPoll(context.Background(), "local-1", dto.LocalVoteRequest{})
	requireAPIError(t, err, http.StatusUnprocessableEntity)

	tm.localPolls.EXPECT().Get("missing").Return(domain.Poll{}, domain.ErrPollNotFound)
	_, err = tm.executor.GetLocalPoll(context.Background(), "missing")
	requireAPIError(t, err, http.StatusNotFound)
}
