package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// DEFAULT_DUPLICATE_WINDOW is how long JetStream remembers a message id for deduplication
const DEFAULT_DUPLICATE_WINDOW = 2 * time.Minute

// StreamSpec describes the JetStream stream that poll events land in
type StreamSpec struct {
	Name     string
	Subjects []string
	MaxAge   time.Duration
}

// NatsConn is the subset of *nats.Conn the publisher holds on to
//
//go:generate mockgen -source=nats.go -destination=../mocks/nats.go -package=mocks -mock_names=NatsConn=MockNatsConn,EventStream=MockEventStream,NatsDialer=MockNatsDialer
type NatsConn interface {
	Close()
	ConnectedUrl() string
}

// EventStream publishes to JetStream and provisions the backing stream
type EventStream interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
	EnsureStream(ctx context.Context, spec StreamSpec) error
}

// NatsDialer opens a NATS connection together with its JetStream event stream
type NatsDialer interface {
	Dial(url string, options ...nats.Option) (NatsConn, EventStream, error)
}

type natsDialer struct{}

// NewNatsDialer returns a dialer backed by the nats.go client
func NewNatsDialer() NatsDialer {
	return &natsDialer{}
}

func (d *natsDialer) Dial(url string, options ...nats.Option) (NatsConn, EventStream, error) {
	nc, err := nats.Connect(url, options...)
	if err != nil {
		return nil, nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}

	return nc, &eventStream{js: js}, nil
}

type eventStream struct {
	js jetstream.JetStream
}

func (s *eventStream) Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	return s.js.Publish(ctx, subject, data, opts...)
}

// EnsureStream creates the stream or updates its subjects and retention in place
func (s *eventStream) EnsureStream(ctx context.Context, spec StreamSpec) error {
	if spec.Name == "" || len(spec.Subjects) == 0 {
		return errors.New("stream name and subjects are required")
	}

	_, err := s.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       spec.Name,
		Subjects:   spec.Subjects,
		MaxAge:     spec.MaxAge,
		Storage:    jetstream.FileStorage,
		Duplicates: DEFAULT_DUPLICATE_WINDOW,
	})
	if err != nil {
		return fmt.Errorf("failed to provision stream %s: %w", spec.Name, err)
	}

	return nil
}
