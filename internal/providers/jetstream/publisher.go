package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-survey/internal/adapter"
	"github.com/feral-file/ff-survey/internal/domain"
	"github.com/feral-file/ff-survey/internal/logger"
	"github.com/feral-file/ff-survey/internal/messaging"
)

// DEFAULT_SUBJECT_PREFIX prefixes the subject of every published event
const DEFAULT_SUBJECT_PREFIX = "polls.events"

// DEFAULT_STREAM_MAX_AGE bounds how long poll events are retained by the stream
const DEFAULT_STREAM_MAX_AGE = 72 * time.Hour

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	// StreamName, when set, is created or updated to capture <prefix>.> on startup
	StreamName   string
	StreamMaxAge time.Duration
}

type publisher struct {
	nc            adapter.NatsConn
	js            adapter.EventStream
	subjectPrefix string
	json          adapter.JSON
}

// NewPublisher connects to NATS and provisions the event stream when one is configured
func NewPublisher(ctx context.Context, cfg Config, dialer adapter.NatsDialer, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := dialer.Dial(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	prefix := cfg.SubjectPrefix
	if prefix == "" {
		prefix = DEFAULT_SUBJECT_PREFIX
	}

	if cfg.StreamName != "" {
		maxAge := cfg.StreamMaxAge
		if maxAge <= 0 {
			maxAge = DEFAULT_STREAM_MAX_AGE
		}
		err := js.EnsureStream(ctx, adapter.StreamSpec{
			Name:     cfg.StreamName,
			Subjects: []string{prefix + ".>"},
			MaxAge:   maxAge,
		})
		if err != nil {
			nc.Close()
			return nil, err
		}
		logger.InfoCtx(ctx, "Event stream ready", zap.String("stream", cfg.StreamName), zap.String("subjects", prefix+".>"))
	}

	return &publisher{
		nc:            nc,
		js:            js,
		subjectPrefix: prefix,
		json:          jsonAdapter,
	}, nil
}

// PublishEvent publishes a poll event to NATS JetStream, deduplicated by event id
func (p *publisher) PublishEvent(ctx context.Context, event *domain.PollEvent) error {
	logger.DebugCtx(ctx, "Publishing Nats event", zap.Any("event", event))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	var opts []natsjs.PublishOpt
	if event.ID != "" {
		opts = append(opts, natsjs.WithMsgID(event.ID))
	}

	if _, err := p.js.Publish(ctx, p.buildSubject(event), data, opts...); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// buildSubject constructs the NATS subject based on the event
// e.g. polls.events.vote.confirmed, polls.events.polls.refreshed
func (p *publisher) buildSubject(event *domain.PollEvent) string {
	return fmt.Sprintf("%s.%s", p.subjectPrefix, event.Type)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
