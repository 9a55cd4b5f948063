package aggregator

import (
	"context"
	"fmt"
	"strings"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-survey/internal/adapter"
	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/logger"
	"github.com/feral-file/ff-survey/internal/reader"
)

// Config holds the aggregator configuration
type Config struct {
	// Contracts is the static list of survey contracts to read
	Contracts []domain.SurveyContract

	// MaxConcurrency bounds the concurrent contract reads, 0 means one worker per contract
	MaxConcurrency int
}

// RefreshResult is the outcome of one aggregation pass
type RefreshResult struct {
	Polls  []domain.Poll
	Failed []string
}

//go:generate mockgen -source=aggregator.go -destination=../mocks/aggregator.go -package=mocks -mock_names=Aggregator=MockAggregator
type Aggregator interface {
	// Refresh reads every configured contract concurrently and merges the polls into the store.
	// A failing contract contributes no polls. ErrAllContractsFailed is returned only when every contract failed.
	Refresh(ctx context.Context) (RefreshResult, error)

	// Polls lists the stored polls matching the query
	Polls(query string) []domain.Poll

	// Poll returns a stored poll by id
	Poll(id string) (domain.Poll, error)

	// Merge replaces stored polls by id
	Merge(polls ...domain.Poll)

	// Loading returns the per-contract loading flags
	Loading() map[string]bool

	// Close stops the worker pool
	Close()
}

type contractResult struct {
	contract domain.SurveyContract
	polls    []domain.Poll
	err      error
}

type aggregator struct {
	contracts []domain.SurveyContract
	reader    reader.Reader
	store     *PollStore
	pool      pond.ResultPool[contractResult]
	clock     adapter.Clock
}

func NewAggregator(cfg Config, r reader.Reader, store *PollStore, clock adapter.Clock) Aggregator {
	concurrency := cfg.MaxConcurrency
	if concurrency <= 0 {
		concurrency = len(cfg.Contracts)
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	return &aggregator{
		contracts: cfg.Contracts,
		reader:    r,
		store:     store,
		pool:      pond.NewResultPool[contractResult](concurrency),
		clock:     clock,
	}
}

func (a *aggregator) Refresh(ctx context.Context) (RefreshResult, error) {
	start := a.clock.Now()

	for _, c := range a.contracts {
		a.store.SetLoading(c.Key(), true)
	}

	group := a.pool.NewGroup()
	for _, c := range a.contracts {
		contract := c
		group.Submit(func() contractResult {
			defer a.store.SetLoading(contract.Key(), false)

			polls, err := a.reader.ReadPoll(ctx, contract)
			if err != nil {
				logger.ErrorCtx(ctx, fmt.Errorf("failed to read survey contract: %w", err),
					zap.String("contract", contract.Key()),
					zap.String("chain", string(contract.Chain)))
				return contractResult{contract: contract, err: err}
			}
			return contractResult{contract: contract, polls: polls}
		})
	}

	results, err := group.Wait()
	if err != nil {
		return RefreshResult{}, fmt.Errorf("failed to wait for contract reads: %w", err)
	}

	var result RefreshResult
	for _, r := range results {
		if r.err != nil {
			result.Failed = append(result.Failed, r.contract.Key())
			continue
		}
		result.Polls = append(result.Polls, r.polls...)
	}

	a.store.Merge(result.Polls)

	logger.InfoCtx(ctx, "Aggregation completed",
		zap.Int("contracts", len(a.contracts)),
		zap.Int("polls", len(result.Polls)),
		zap.Strings("failed", result.Failed),
		zap.Duration("duration", a.clock.Since(start)),
	)

	if len(a.contracts) > 0 && len(result.Failed) == len(a.contracts) {
		return result, domain.ErrAllContractsFailed
	}
	return result, nil
}

func (a *aggregator) Polls(query string) []domain.Poll {
	return a.store.List(query)
}

func (a *aggregator) Poll(id string) (domain.Poll, error) {
	if p, ok := a.store.Get(id); ok {
		return p, nil
	}
	// ids are checksummed addresses, accept any casing
	for _, p := range a.store.List("") {
		if strings.EqualFold(p.ID, id) {
			return p, nil
		}
	}
	return domain.Poll{}, domain.ErrPollNotFound
}

func (a *aggregator) Merge(polls ...domain.Poll) {
	a.store.Merge(polls)
}

func (a *aggregator) Loading() map[string]bool {
	return a.store.Loading()
}

func (a *aggregator) Close() {
	a.pool.StopAndWait()
}
