package refresher

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-survey/internal/adapter"
	"github.com/feral-file/ff-survey/internal/aggregator"
	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/logger"
	"github.com/feral-file/ff-survey/internal/messaging"
)

// DEFAULT_INTERVAL is the pause between two aggregation passes
const DEFAULT_INTERVAL = time.Minute

// Refresher is a long-running background loop re-aggregating the survey contracts
//
//go:generate mockgen -source=refresher.go -destination=../mocks/refresher.go -package=mocks -mock_names=Refresher=MockRefresher
type Refresher interface {
	// Start runs the loop until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop signals the loop and waits for the running pass to finish
	Stop(ctx context.Context) error
}

type refresher struct {
	interval   time.Duration
	aggregator aggregator.Aggregator
	publisher  messaging.Publisher
	clock      adapter.Clock
	running    atomic.Bool
	stopCh     chan struct{}
	stoppedCh  chan struct{}
}

func NewRefresher(interval time.Duration, agg aggregator.Aggregator, publisher messaging.Publisher, clock adapter.Clock) Refresher {
	if interval <= 0 {
		interval = DEFAULT_INTERVAL
	}
	return &refresher{
		interval:   interval,
		aggregator: agg,
		publisher:  publisher,
		clock:      clock,
		stopCh:     make(chan struct{}),
		stoppedCh:  make(chan struct{}),
	}
}

func (r *refresher) Start(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return fmt.Errorf("refresher already running")
	}
	defer close(r.stoppedCh)

	logger.InfoCtx(ctx, "Starting poll refresher", zap.Duration("interval", r.interval))

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Poll refresher stopping due to context cancellation")
			return nil
		case <-r.stopCh:
			logger.InfoCtx(ctx, "Poll refresher stop requested")
			return nil
		case <-r.clock.After(r.interval):
			r.refresh(ctx)
		}
	}
}

func (r *refresher) refresh(ctx context.Context) {
	result, err := r.aggregator.Refresh(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		logger.ErrorCtx(ctx, fmt.Errorf("failed to refresh polls: %w", err), zap.Strings("failed", result.Failed))
		if !errors.Is(err, domain.ErrAllContractsFailed) {
			return
		}
	}

	event := &domain.PollEvent{
		ID:        ulid.Make().String(),
		Type:      domain.EventTypePollsRefreshed,
		PollCount: len(result.Polls),
		Failed:    result.Failed,
		Timestamp: r.clock.Now(),
	}
	if err := r.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish refresh event", zap.Error(err))
	}
}

func (r *refresher) Stop(ctx context.Context) error {
	if !r.running.CompareAndSwap(true, false) {
		return nil
	}
	close(r.stopCh)

	select {
	case <-r.stoppedCh:
		logger.InfoCtx(ctx, "Poll refresher stopped")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Poll refresher stop interrupted by context timeout")
		return ctx.Err()
	}
}
