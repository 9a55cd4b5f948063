package analysis

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-survey/internal/adapter"
	"github.com/feral-file/ff-survey/internal/aggregator"
	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/logger"
	"github.com/feral-file/ff-survey/internal/providers/gemini"
	"github.com/feral-file/ff-survey/internal/store"
	"github.com/feral-file/ff-survey/internal/store/schema"
)

// Config holds the analysis service configuration
type Config struct {
	// Model is recorded next to every cached analysis
	Model string
}

//go:generate mockgen -source=analysis.go -destination=../mocks/analysis.go -package=mocks -mock_names=Service=MockAnalysisService
type Service interface {
	// Analyze attaches an AI summary to a poll whose voting is no longer open.
	// The summary is cached per poll and result set, and the stored poll is replaced with the annotated copy.
	Analyze(ctx context.Context, pollID string) (domain.Poll, error)

	// Suggest proposes a poll about a topic
	Suggest(ctx context.Context, topic string) (*domain.AIPollSuggestion, error)
}

type service struct {
	cfg        Config
	aggregator aggregator.Aggregator
	ai         gemini.Client
	store      store.Store
	canon      adapter.Canonicalizer
	json       adapter.JSON
}

// NewService creates the analysis service. st may be nil, in which case nothing is cached.
func NewService(cfg Config, agg aggregator.Aggregator, ai gemini.Client, st store.Store, canon adapter.Canonicalizer, jsonAdapter adapter.JSON) Service {
	return &service{
		cfg:        cfg,
		aggregator: agg,
		ai:         ai,
		store:      st,
		canon:      canon,
		json:       jsonAdapter,
	}
}

func (s *service) Analyze(ctx context.Context, pollID string) (domain.Poll, error) {
	poll, err := s.aggregator.Poll(pollID)
	if err != nil {
		return domain.Poll{}, err
	}
	if poll.IsOpen() {
		return domain.Poll{}, domain.ErrPollStillOpen
	}
	if s.ai == nil {
		return domain.Poll{}, domain.ErrAIUnavailable
	}

	stats := poll.ResultStats()
	hash, err := s.canon.Digest(stats)
	if err != nil {
		return domain.Poll{}, fmt.Errorf("failed to hash poll results: %w", err)
	}

	text, cached := s.cached(ctx, poll.ID, hash)
	if !cached {
		text, err = s.ai.AnalyzeResults(ctx, poll.Question, stats)
		if err != nil {
			return domain.Poll{}, fmt.Errorf("failed to analyze poll results: %w", err)
		}
		s.save(ctx, poll.ID, hash, stats, text)
	}

	// a refresh may have replaced the poll while the analysis was generated
	current, err := s.aggregator.Poll(poll.ID)
	if err != nil {
		logger.WarnCtx(ctx, "Poll disappeared during analysis", zap.String("poll_id", poll.ID), zap.Error(err))
		current = poll
	}
	annotated := current.Clone()
	annotated.AIAnalysis = domain.StringPtr(text)

	if err == nil && s.sameResults(current, hash) {
		s.aggregator.Merge(annotated)
		logger.InfoCtx(ctx, "Poll analysis attached",
			zap.String("poll_id", poll.ID),
			zap.String("stats_hash", hash),
			zap.Bool("cached", cached))
	} else {
		logger.InfoCtx(ctx, "Poll results changed during analysis, not attaching",
			zap.String("poll_id", poll.ID),
			zap.String("stats_hash", hash))
	}

	return annotated, nil
}

// sameResults reports whether poll still has the results the analysis was generated from
func (s *service) sameResults(poll domain.Poll, hash string) bool {
	current, err := s.canon.Digest(poll.ResultStats())
	return err == nil && current == hash
}

// cached looks up a stored analysis, cache failures only cost a remote call
func (s *service) cached(ctx context.Context, pollID, hash string) (string, bool) {
	if s.store == nil {
		return "", false
	}

	row, err := s.store.GetPollAnalysis(ctx, pollID, hash)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read cached poll analysis",
			zap.String("poll_id", pollID),
			zap.Error(err))
		return "", false
	}
	if row == nil {
		return "", false
	}
	return row.Analysis, true
}

func (s *service) save(ctx context.Context, pollID, hash string, stats []domain.ResultStat, text string) {
	if s.store == nil {
		return
	}

	raw, err := s.json.Marshal(stats)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to marshal poll stats", zap.String("poll_id", pollID), zap.Error(err))
		return
	}

	if err := s.store.SavePollAnalysis(ctx, &schema.PollAnalysis{
		PollID:    pollID,
		StatsHash: hash,
		Stats:     datatypes.JSON(raw),
		Analysis:  text,
		Model:     s.cfg.Model,
	}); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to cache poll analysis: %w", err), zap.String("poll_id", pollID))
	}
}

func (s *service) Suggest(ctx context.Context, topic string) (*domain.AIPollSuggestion, error) {
	if s.ai == nil {
		return nil, domain.ErrAIUnavailable
	}

	suggestion, err := s.ai.SuggestPoll(ctx, topic)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyTopic) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to suggest poll: %w", err)
	}
	return suggestion, nil
}
