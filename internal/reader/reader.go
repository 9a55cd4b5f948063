package reader

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/feral-file/ff-survey/internal/adapter"
	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/logger"
	"github.com/feral-file/ff-survey/internal/providers/ethereum"
	"github.com/feral-file/ff-survey/internal/tokenmeta"
)

// Reader reads survey contracts into polls
//
//go:generate mockgen -source=reader.go -destination=../mocks/reader.go -package=mocks -mock_names=Reader=MockReader
type Reader interface {
	// ReadPoll reads one survey contract. It returns no polls when the survey has no questions yet.
	ReadPoll(ctx context.Context, contract domain.SurveyContract) ([]domain.Poll, error)
}

type reader struct {
	clients  map[domain.Chain]ethereum.SurveyClient
	resolver tokenmeta.Resolver
	clock    adapter.Clock
}

// NewReader creates a reader over one survey client per chain
func NewReader(clients map[domain.Chain]ethereum.SurveyClient, resolver tokenmeta.Resolver, clock adapter.Clock) Reader {
	return &reader{
		clients:  clients,
		resolver: resolver,
		clock:    clock,
	}
}

func (r *reader) ReadPoll(ctx context.Context, contract domain.SurveyContract) ([]domain.Poll, error) {
	chainID, err := contract.Chain.ID()
	if err != nil {
		return nil, err
	}
	client, ok := r.clients[contract.Chain]
	if !ok {
		return nil, fmt.Errorf("%w: no client for %s", domain.ErrUnsupportedChain, contract.Chain)
	}
	address := contract.Key()

	var (
		title        string
		tokenAddress string
		state        = domain.OpenStateUnknown
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		title, err = client.Title(gctx, address)
		if err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		tokenAddress, err = client.TokenContractAddress(gctx, address)
		if err != nil {
			return fmt.Errorf("failed to read token contract address: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		open, err := client.IsOpen(gctx, address)
		if err != nil {
			// contracts without isOpen are read through the results listing
			logger.WarnCtx(gctx, "failed to read open state",
				zap.Error(err),
				zap.String("contract", address),
				zap.String("chain", string(contract.Chain)))
			return nil
		}
		state = domain.OpenStateFromBool(open)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var questions []ethereum.SurveyQuestion
	if state == domain.OpenStateOpen {
		questions, err = client.GetSurvey(ctx, address)
		if err != nil {
			return nil, fmt.Errorf("failed to read survey: %w", err)
		}
	} else {
		questions, err = client.GetSurveyResults(ctx, address)
		if err != nil {
			return nil, fmt.Errorf("failed to read survey results: %w", err)
		}
	}

	if len(questions) == 0 {
		logger.DebugCtx(ctx, "survey has no questions", zap.String("contract", address))
		return []domain.Poll{}, nil
	}

	var options []domain.PollOption
	for _, q := range questions {
		for _, a := range q.Answers {
			var votes uint64
			if state != domain.OpenStateOpen {
				votes = a.VoteCount
			}
			options = append(options, domain.NewSurveyOption(q.ID, a.ID, q.Text, a.Text, votes))
		}
	}

	if title == "" {
		title = domain.DEFAULT_SURVEY_TITLE
	}

	poll := domain.Poll{
		ID:          address,
		Question:    title,
		Description: domain.SurveyDescription(len(questions), address),
		Options:     options,
		ChainID:     chainID,
		State:       state,
		Source:      domain.PollSourceOnChain,
		CreatedAt:   r.clock.Now(),
	}

	if token := r.resolver.Resolve(ctx, client, chainID, tokenAddress); token != nil {
		poll.TokenAddress = domain.StringPtr(token.Address)
		poll.TokenSymbol = domain.StringPtr(token.Symbol)
		poll.TokenLogo = domain.StringPtr(token.Logo)
	}

	return []domain.Poll{poll}, nil
}
