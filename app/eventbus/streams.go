package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go/jetstream"
)

// StreamName is the JetStream stream holding every ledger topic.
const StreamName = "LEDGER"

// InitializeStreams creates the ledger stream when it does not exist yet.
func InitializeStreams(ctx context.Context, js jetstream.JetStream, logger *slog.Logger) error {
	streamConfigs := []jetstream.StreamConfig{
		{
			Name:     StreamName,
			Subjects: AllTopics,
		},
	}

	for _, streamConfig := range streamConfigs {
		_, err := js.Stream(ctx, streamConfig.Name)
		if errors.Is(err, jetstream.ErrStreamNotFound) {
			if _, err := js.CreateStream(ctx, streamConfig); err != nil {
				logger.ErrorContext(ctx, "Failed to create JetStream stream", slog.String("stream", streamConfig.Name), slog.Any("error", err))
				return fmt.Errorf("failed to create stream %s: %w", streamConfig.Name, err)
			}
			logger.InfoContext(ctx, "Created JetStream stream", slog.String("stream", streamConfig.Name))
		} else if err != nil {
			return fmt.Errorf("failed to check stream: %w", err)
		}
	}
	return nil
}
