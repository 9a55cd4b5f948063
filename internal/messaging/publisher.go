package messaging

import (
	"context"

	"github.com/feral-file/ff-survey/internal/domain"
)

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a poll event to the message broker
	PublishEvent(ctx context.Context, event *domain.PollEvent) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event, used when no broker is configured
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishEvent(context.Context, *domain.PollEvent) error {
	return nil
}

func (noopPublisher) Close() {}
