// Package eventbus publishes ledger events through watermill, backed by NATS
// JetStream when configured and an in-process channel otherwise.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/attr"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Publisher is what services depend on.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// EventBus serialises payloads as JSON and hands them to a watermill publisher.
type EventBus struct {
	publisher message.Publisher
	natsConn  *nc.Conn
	logger    *slog.Logger
}

var _ Publisher = (*EventBus)(nil)

// New connects to NATS when natsURL is set, else returns an in-process bus.
func New(ctx context.Context, natsURL string, logger *slog.Logger) (*EventBus, error) {
	if natsURL == "" {
		logger.InfoContext(ctx, "NATS URL not configured, publishing events in process")
		return NewWithPublisher(NewInProcessPublisher(logger), logger), nil
	}

	natsConn, err := nc.Connect(natsURL, nc.RetryOnFailedConnect(true), nc.Timeout(30*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(natsConn)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}
	if err := InitializeStreams(ctx, js, logger); err != nil {
		natsConn.Close()
		return nil, err
	}

	publisher, err := NewNATSPublisher(natsURL, watermill.NewSlogLogger(logger))
	if err != nil {
		natsConn.Close()
		return nil, err
	}

	return &EventBus{publisher: publisher, natsConn: natsConn, logger: logger}, nil
}

// NewNATSPublisher creates a NATS JetStream publisher. Streams are provisioned
// by InitializeStreams, so auto provisioning stays off.
func NewNATSPublisher(natsURL string, logger watermill.LoggerAdapter) (message.Publisher, error) {
	options := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Timeout(30 * time.Second),
		nc.ReconnectWait(1 * time.Second),
	}

	jsConfig := nats.JetStreamConfig{
		Disabled:       false,
		AutoProvision:  false,
		PublishOptions: []nc.PubOpt{},
	}

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:               natsURL,
			NatsOptions:       options,
			Marshaler:         &nats.NATSMarshaler{},
			JetStream:         jsConfig,
			SubjectCalculator: nats.DefaultSubjectCalculator,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}
	return publisher, nil
}

// NewInProcessPublisher returns a gochannel pub/sub for single-process runs and tests.
func NewInProcessPublisher(logger *slog.Logger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
}

// NewWithPublisher wraps an existing watermill publisher.
func NewWithPublisher(publisher message.Publisher, logger *slog.Logger) *EventBus {
	return &EventBus{publisher: publisher, logger: logger}
}

// Publish marshals payload to JSON and publishes it on topic with the
// request's correlation id.
func (b *EventBus) Publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)
	msg.Metadata.Set("topic", topic)
	if id := attr.CorrelationIDFromContext(ctx); id != "" {
		middleware.SetCorrelationID(id, msg)
	}

	b.logger.DebugContext(ctx, "Publishing message",
		attr.String("topic", topic),
		attr.String("message_id", msg.UUID),
		attr.ExtractCorrelationID(ctx),
	)

	if err := b.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// Close releases the publisher and the provisioning connection.
func (b *EventBus) Close() error {
	err := b.publisher.Close()
	if b.natsConn != nil {
		b.natsConn.Close()
	}
	return err
}
