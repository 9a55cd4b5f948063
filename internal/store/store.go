package store

import (
	"context"

	"github.com/feral-file/ff-survey/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetPollAnalysis returns the cached analysis of a poll for a stats hash, nil when absent
	GetPollAnalysis(ctx context.Context, pollID, statsHash string) (*schema.PollAnalysis, error)
	// SavePollAnalysis inserts an analysis or replaces the one with the same poll id and stats hash
	SavePollAnalysis(ctx context.Context, analysis *schema.PollAnalysis) error
}
