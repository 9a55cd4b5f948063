package analysis_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-survey/internal/adapter"
	"github.com/feral-file/ff-survey/internal/aggregator"
	"github.com/feral-file/ff-survey/internal/analysis"
	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/logger"
	"github.com/feral-file/ff-survey/internal/mocks"
	"github.com/feral-file/ff-survey/internal/store/schema"
)

const pollID = "0x31d695C8a1a50340C3005FA53846019991D5b2E8"

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testAnalysisMocks struct {
	ctrl       *gomock.Controller
	aggregator *mocks.MockAggregator
	ai         *mocks.MockGeminiClient
	store      *mocks.MockStore
	service    analysis.Service
}

func setupTestAnalysis(t *testing.T) *testAnalysisMocks {
	ctrl := gomock.NewController(t)
	tm := &testAnalysisMocks{
		ctrl:       ctrl,
		aggregator: mocks.NewMockAggregator(ctrl),
		ai:         mocks.NewMockGeminiClient(ctrl),
		store:      mocks.NewMockStore(ctrl),
	}
	jsonAdapter := adapter.NewJSON()
	tm.service = analysis.NewService(
		analysis.Config{Model: "gemini-2.5-flash"},
		tm.aggregator, tm.ai, tm.store,
		adapter.NewCanonicalizer(jsonAdapter), jsonAdapter,
	)
	return tm
}

func closedPoll() domain.Poll {
	return domain.Poll{
		ID:       pollID,
		Question: "Community survey",
		State:    domain.OpenStateClosed,
		Source:   domain.PollSourceOnChain,
		Options: []domain.PollOption{
			domain.NewSurveyOption(1, 1, "Color?", "Red", 3),
			domain.NewSurveyOption(1, 2, "Color?", "Blue", 1),
		},
	}
}

func TestAnalyze_CallsAIAndCaches(t *testing.T) {
	tm := setupTestAnalysis(t)
	defer tm.ctrl.Finish()

	poll := closedPoll()
	tm.aggregator.EXPECT().Poll(pollID).Return(poll, nil).Times(2)
	tm.store.EXPECT().GetPollAnalysis(gomock.Any(), pollID, gomock.Any()).Return(nil, nil)
	tm.ai.EXPECT().AnalyzeResults(gomock.Any(), "Community survey", poll.ResultStats()).Return("Red is winning.", nil)
	tm.store.EXPECT().SavePollAnalysis(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, row *schema.PollAnalysis) error {
			assert.Equal(t, pollID, row.PollID)
			assert.Len(t, row.StatsHash, 64)
			assert.Equal(t, "Red is winning.", row.Analysis)
			assert.Equal(t, "gemini-2.5-flash", row.Model)
			assert.JSONEq(t, `[{"label":"Q1: Color? - Red","votes":3},{"label":"Q1: Color? - Blue","votes":1}]`, string(row.Stats))
			return nil
		})
	tm.aggregator.EXPECT().Merge(gomock.Any()).Do(func(polls ...domain.Poll) {
		require.Len(t, polls, 1)
		require.NotNil(t, polls[0].AIAnalysis)
		assert.Equal(t, "Red is winning.", *polls[0].AIAnalysis)
	})

	got, err := tm.service.Analyze(context.Background(), pollID)
	require.NoError(t, err)
	require.NotNil(t, got.AIAnalysis)
	assert.Equal(t, "Red is winning.", *got.AIAnalysis)
	assert.Equal(t, poll.Options, got.Options)
}

func TestAnalyze_UsesCachedAnalysis(t *testing.T) {
	tm := setupTestAnalysis(t)
	defer tm.ctrl.Finish()

	tm.aggregator.EXPECT().Poll(pollID).Return(closedPoll(), nil).Times(2)
	tm.store.EXPECT().GetPollAnalysis(gomock.Any(), pollID, gomock.Any()).
		Return(&schema.PollAnalysis{PollID: pollID, Analysis: "cached"}, nil)
	tm.aggregator.EXPECT().Merge(gomock.Any())

	got, err := tm.service.Analyze(context.Background(), pollID)
	require.NoError(t, err)
	assert.Equal(t, "cached", *got.AIAnalysis)
}

func TestAnalyze_CacheReadFailureFallsBackToAI(t *testing.T) {
	tm := setupTestAnalysis(t)
	defer tm.ctrl.Finish()

	tm.aggregator.EXPECT().Poll(pollID).Return(closedPoll(), nil).Times(2)
	tm.store.EXPECT().GetPollAnalysis(gomock.Any(), pollID, gomock.Any()).Return(nil, errors.New("db down"))
	tm.ai.EXPECT().AnalyzeResults(gomock.Any(), gomock.Any(), gomock.Any()).Return("fresh", nil)
	tm.store.EXPECT().SavePollAnalysis(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	tm.aggregator.EXPECT().Merge(gomock.Any())

	got, err := tm.service.Analyze(context.Background(), pollID)
	require.NoError(t, err)
	assert.Equal(t, "fresh", *got.AIAnalysis)
}

func TestAnalyze_RejectsOpenPoll(t *testing.T) {
	tm := setupTestAnalysis(t)
	defer tm.ctrl.Finish()

	poll := closedPoll()
	poll.State = domain.OpenStateOpen
	tm.aggregator.EXPECT().Poll(pollID).Return(poll, nil)

	_, err := tm.service.Analyze(context.Background(), pollID)
	assert.ErrorIs(t, err, domain.ErrPollStillOpen)
}

func TestAnalyze_UnknownStateIsAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agg := mocks.NewMockAggregator(ctrl)
	ai := mocks.NewMockGeminiClient(ctrl)
	jsonAdapter := adapter.NewJSON()
	svc := analysis.NewService(analysis.Config{}, agg, ai, nil, adapter.NewCanonicalizer(jsonAdapter), jsonAdapter)

	poll := closedPoll()
	poll.State = domain.OpenStateUnknown
	agg.EXPECT().Poll(pollID).Return(poll, nil).Times(2)
	ai.EXPECT().AnalyzeResults(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.DEFAULT_ANALYSIS_TEXT, nil)
	agg.EXPECT().Merge(gomock.Any())

	got, err := svc.Analyze(context.Background(), pollID)
	require.NoError(t, err)
	assert.Equal(t, domain.DEFAULT_ANALYSIS_TEXT, *got.AIAnalysis)
}

func TestAnalyze_RefreshDuringAnalysis(t *testing.T) {
	setup := func(t *testing.T) (aggregator.Aggregator, *mocks.MockGeminiClient, analysis.Service) {
		ctrl := gomock.NewController(t)
		store := aggregator.NewPollStore()
		store.Merge([]domain.Poll{closedPoll()})
		agg := aggregator.NewAggregator(aggregator.Config{}, mocks.NewMockReader(ctrl), store, adapter.NewClock())
		t.Cleanup(agg.Close)

		ai := mocks.NewMockGeminiClient(ctrl)
		jsonAdapter := adapter.NewJSON()
		svc := analysis.NewService(analysis.Config{}, agg, ai, nil, adapter.NewCanonicalizer(jsonAdapter), jsonAdapter)
		return agg, ai, svc
	}

	t.Run("newer results are kept", func(t *testing.T) {
		agg, ai, svc := setup(t)

		fresh := closedPoll()
		fresh.Options[0].Votes = 99
		ai.EXPECT().AnalyzeResults(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, string, []domain.ResultStat) (string, error) {
				agg.Merge(fresh)
				return "Red is winning.", nil
			})

		got, err := svc.Analyze(context.Background(), pollID)
		require.NoError(t, err)
		assert.Equal(t, uint64(99), got.Options[0].Votes)
		require.NotNil(t, got.AIAnalysis)
		assert.Equal(t, "Red is winning.", *got.AIAnalysis)

		stored, err := agg.Poll(pollID)
		require.NoError(t, err)
		assert.Equal(t, uint64(99), stored.Options[0].Votes)
		assert.Nil(t, stored.AIAnalysis)
	})

	t.Run("unchanged results get the analysis", func(t *testing.T) {
		agg, ai, svc := setup(t)

		ai.EXPECT().AnalyzeResults(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, string, []domain.ResultStat) (string, error) {
				agg.Merge(closedPoll())
				return "Red is winning.", nil
			})

		_, err := svc.Analyze(context.Background(), pollID)
		require.NoError(t, err)

		stored, err := agg.Poll(pollID)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), stored.Options[0].Votes)
		require.NotNil(t, stored.AIAnalysis)
		assert.Equal(t, "Red is winning.", *stored.AIAnalysis)
	})
}

func TestAnalyze_Errors(t *testing.T) {
	tm := setupTestAnalysis(t)
	defer tm.ctrl.Finish()

	tm.aggregator.EXPECT().Poll("missing").Return(domain.Poll{}, domain.ErrPollNotFound)
	_, err := tm.service.Analyze(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrPollNotFound)

	tm.aggregator.EXPECT().Poll(pollID).Return(closedPoll(), nil)
	tm.store.EXPECT().GetPollAnalysis(gomock.Any(), pollID, gomock.Any()).Return(nil, nil)
	tm.ai.EXPECT().AnalyzeResults(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", domain.ErrAIUnavailable)
	_, err = tm.service.Analyze(context.Background(), pollID)
	assert.ErrorIs(t, err, domain.ErrAIUnavailable)
}

func TestSuggest(t *testing.T) {
	tm := setupTestAnalysis(t)
	defer tm.ctrl.Finish()

	want := &domain.AIPollSuggestion{Question: "Best pet?", Options: []string{"Cat", "Dog", "Fish"}}
	tm.ai.EXPECT().SuggestPoll(gomock.Any(), "pets").Return(want, nil)
	got, err := tm.service.Suggest(context.Background(), "pets")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	tm.ai.EXPECT().SuggestPoll(gomock.Any(), "").Return(nil, domain.ErrEmptyTopic)
	_, err = tm.service.Suggest(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyTopic)
}
