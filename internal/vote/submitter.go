package vote

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-survey/internal/adapter"
	"github.com/feral-file/ff-survey/internal/aggregator"
	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/logger"
	"github.com/feral-file/ff-survey/internal/messaging"
	"github.com/feral-file/ff-survey/internal/pollview"
	surveyeth "github.com/feral-file/ff-survey/internal/providers/ethereum"
	"github.com/feral-file/ff-survey/internal/wallet"
)

// Config holds the vote submitter configuration
type Config struct {
	// Chain is the only chain votes are submitted on
	Chain domain.Chain

	// ReceiptPollInterval is the delay between two receipt lookups
	ReceiptPollInterval time.Duration

	// StatusTTL is how long the status message of a finished attempt is kept
	StatusTTL time.Duration

	// Retention is how long finished attempts stay queryable
	Retention time.Duration
}

//go:generate mockgen -source=submitter.go -destination=../mocks/submitter.go -package=mocks -mock_names=Submitter=MockSubmitter
type Submitter interface {
	// Submit validates the selection and drives the attempt up to the submitted state.
	// Validation errors abort before any attempt is created. Later failures are recorded
	// on the returned attempt and returned as the error. Confirmation continues in the background.
	Submit(ctx context.Context, poll domain.Poll, selection pollview.Selection) (domain.VoteAttempt, error)

	// Attempt returns the latest snapshot of a vote attempt
	Attempt(id string) (domain.VoteAttempt, error)

	// Close cancels pending confirmations and waits for them to stop
	Close()
}

type submitter struct {
	cfg        Config
	chainID    uint64
	wallet     wallet.Wallet
	aggregator aggregator.Aggregator
	publisher  messaging.Publisher
	clock      adapter.Clock
	tracker    *tracker

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSubmitter(cfg Config, w wallet.Wallet, agg aggregator.Aggregator, publisher messaging.Publisher, clock adapter.Clock) (Submitter, error) {
	chainID, err := cfg.Chain.ID()
	if err != nil {
		return nil, fmt.Errorf("invalid vote chain: %w", err)
	}
	if cfg.ReceiptPollInterval <= 0 {
		cfg.ReceiptPollInterval = 4 * time.Second
	}
	if cfg.StatusTTL <= 0 {
		cfg.StatusTTL = domain.STATUS_MESSAGE_TTL
	}
	if cfg.Retention <= 0 {
		cfg.Retention = time.Hour
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &submitter{
		cfg:        cfg,
		chainID:    chainID,
		wallet:     w,
		aggregator: agg,
		publisher:  publisher,
		clock:      clock,
		tracker:    newTracker(),
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

func (s *submitter) Submit(ctx context.Context, poll domain.Poll, selection pollview.Selection) (domain.VoteAttempt, error) {
	// preparing
	answerIDs, err := s.prepare(poll, selection)
	if err != nil {
		return domain.VoteAttempt{}, err
	}

	now := s.clock.Now()
	s.tracker.prune(now.Add(-s.cfg.Retention))
	attempt := &domain.VoteAttempt{
		ID:        uuid.New().String(),
		PollID:    poll.ID,
		ChainID:   s.chainID,
		AnswerIDs: answerIDs,
		State:     domain.VoteStatePreparing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.tracker.add(attempt)

	ctx = logger.WithFields(ctx, zap.String("attempt_id", attempt.ID), zap.String("poll_id", poll.ID))
	logger.InfoCtx(ctx, "Vote attempt started", zap.Uint64s("answer_ids", answerIDs))

	// network-check
	s.transition(ctx, attempt.ID, domain.VoteStateNetworkCheck, nil)
	if err := s.ensureNetwork(ctx); err != nil {
		return s.fail(ctx, attempt.ID, err), err
	}

	// awaiting-signature
	s.transition(ctx, attempt.ID, domain.VoteStateAwaitingSignature, nil)
	data, err := surveyeth.PackVote(answerIDs)
	if err != nil {
		return s.fail(ctx, attempt.ID, err), err
	}
	txHash, err := s.wallet.SendTransaction(ctx, poll.ID, data)
	if err != nil {
		return s.fail(ctx, attempt.ID, err), err
	}

	// submitted
	snap := s.transition(ctx, attempt.ID, domain.VoteStateSubmitted, func(a *domain.VoteAttempt) {
		a.TxHash = txHash
	})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.confirm(attempt.ID, poll.ID, txHash)
	}()

	return snap, nil
}

// prepare validates the poll and the selection and decodes the answer ids
func (s *submitter) prepare(poll domain.Poll, selection pollview.Selection) ([]uint64, error) {
	if poll.Source != domain.PollSourceOnChain {
		return nil, fmt.Errorf("%w: not an on-chain survey", domain.ErrPollNotVotable)
	}
	if poll.State == domain.OpenStateClosed {
		return nil, fmt.Errorf("%w: survey is closed", domain.ErrPollNotVotable)
	}
	if poll.ChainID != s.chainID {
		return nil, fmt.Errorf("%w: survey lives on chain %d, votes are accepted on chain %d", domain.ErrPollNotVotable, poll.ChainID, s.chainID)
	}

	groups, err := pollview.GroupQuestions(poll)
	if err != nil {
		return nil, err
	}
	return pollview.AnswerIDs(groups, selection)
}

// ensureNetwork switches the wallet to the vote chain when it is on another one
func (s *submitter) ensureNetwork(ctx context.Context) error {
	current, err := s.wallet.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to read wallet chain: %w", domain.ErrNetworkSwitchFailed, err)
	}
	if current == s.chainID {
		return nil
	}

	logger.InfoCtx(ctx, "Wallet on another chain, requesting switch",
		zap.Uint64("current", current),
		zap.Uint64("required", s.chainID))

	if err := s.wallet.SwitchChain(ctx, s.chainID); err != nil {
		if errors.Is(err, domain.ErrNetworkSwitchFailed) || IsUserRejection(err) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrNetworkSwitchFailed, err)
	}
	return nil
}

// confirm waits for the receipt of a submitted transaction
func (s *submitter) confirm(attemptID, pollID, txHash string) {
	ctx := logger.WithFields(s.ctx, zap.String("attempt_id", attemptID), zap.String("poll_id", pollID))
	s.transition(ctx, attemptID, domain.VoteStateConfirming, nil)

	receipt, err := s.waitForReceipt(ctx, txHash)
	if err != nil {
		if ctx.Err() != nil {
			logger.WarnCtx(ctx, "Receipt wait canceled", zap.String("tx_hash", txHash))
		}
		s.fail(ctx, attemptID, err)
		return
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		s.fail(ctx, attemptID, fmt.Errorf("%w: tx %s", domain.ErrTransactionReverted, txHash))
		return
	}

	s.transition(ctx, attemptID, domain.VoteStateConfirmed, func(a *domain.VoteAttempt) {
		if receipt.BlockNumber != nil {
			a.BlockNumber = receipt.BlockNumber.Uint64()
		}
		a.Message = MessageConfirmed
	})
	s.scheduleMessageClear(attemptID)

	if _, err := s.aggregator.Refresh(ctx); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to refresh polls after vote: %w", err))
	}
}

// waitForReceipt polls the receipt at a constant interval until it is mined or ctx ends
func (s *submitter) waitForReceipt(ctx context.Context, txHash string) (*types.Receipt, error) {
	var receipt *types.Receipt

	b := backoff.NewConstantBackOff(s.cfg.ReceiptPollInterval)
	operation := func() error {
		r, err := s.wallet.TransactionReceipt(ctx, s.chainID, txHash)
		if errors.Is(err, ethereum.NotFound) || (err == nil && r == nil) {
			logger.DebugCtx(ctx, "Transaction pending", zap.String("tx_hash", txHash))
			return fmt.Errorf("transaction %s pending", txHash)
		}
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to get receipt: %w", err))
		}
		receipt = r
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}
	return receipt, nil
}

// fail moves the attempt to failed with a classified message and returns its snapshot
func (s *submitter) fail(ctx context.Context, attemptID string, cause error) domain.VoteAttempt {
	kind, message := classify(cause)
	logger.ErrorCtx(ctx, fmt.Errorf("vote attempt failed: %w", cause),
		zap.String("failure", string(kind)))

	snap := s.transition(ctx, attemptID, domain.VoteStateFailed, func(a *domain.VoteAttempt) {
		a.Failure = kind
		a.Error = cause.Error()
		a.Message = message
	})
	s.scheduleMessageClear(attemptID)
	return snap
}

// transition moves an attempt to the given state and publishes the matching event
func (s *submitter) transition(ctx context.Context, attemptID string, state domain.VoteState, mutate func(a *domain.VoteAttempt)) domain.VoteAttempt {
	snap, ok := s.tracker.update(attemptID, func(a *domain.VoteAttempt) {
		a.State = state
		a.UpdatedAt = s.clock.Now()
		if mutate != nil {
			mutate(a)
		}
	})
	if !ok {
		return domain.VoteAttempt{}
	}

	logger.InfoCtx(ctx, "Vote state changed",
		zap.String("state", string(state)),
		zap.String("tx_hash", snap.TxHash))

	event := &domain.PollEvent{
		ID:        ulid.Make().String(),
		Type:      domain.VoteEventType(state),
		PollID:    snap.PollID,
		AttemptID: snap.ID,
		ChainID:   snap.ChainID,
		TxHash:    snap.TxHash,
		Timestamp: snap.UpdatedAt,
	}
	// the request context may already be done, publish on the submitter lifetime
	if err := s.publisher.PublishEvent(s.ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish vote event",
			zap.Error(err),
			zap.String("state", string(state)))
	}
	return snap
}

// scheduleMessageClear clears the status message after the configured TTL
func (s *submitter) scheduleMessageClear(attemptID string) {
	after := s.clock.After(s.cfg.StatusTTL)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		select {
		case <-after:
			s.tracker.update(attemptID, func(a *domain.VoteAttempt) {
				a.Message = ""
			})
		case <-s.ctx.Done():
		}
	}()
}

func (s *submitter) Attempt(id string) (domain.VoteAttempt, error) {
	a, ok := s.tracker.get(id)
	if !ok {
		return domain.VoteAttempt{}, domain.ErrAttemptNotFound
	}
	return a, nil
}

func (s *submitter) Close() {
	s.cancel()
	s.wg.Wait()
}
