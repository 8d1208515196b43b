package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/attr"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEventBus_PublishInProcess(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pubSub := NewInProcessPublisher(discardLogger())
	defer pubSub.Close()

	messages, err := pubSub.Subscribe(ctx, GameRecordedV1)
	require.NoError(t, err)

	bus := NewWithPublisher(pubSub, discardLogger())
	gameID := uuid.New()
	payload := GameRecordedPayloadV1{
		GameID:    gameID,
		PlayerIDs: []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()},
		PlayedAt:  time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC),
	}

	require.NoError(t, bus.Publish(attr.WithCorrelationID(ctx, "corr-1"), GameRecordedV1, payload))

	select {
	case msg := <-messages:
		msg.Ack()
		var got GameRecordedPayloadV1
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, gameID, got.GameID)
		assert.Len(t, got.PlayerIDs, 4)
		assert.Equal(t, "corr-1", middleware.MessageCorrelationID(msg))
		assert.Equal(t, GameRecordedV1, msg.Metadata.Get("topic"))
	case <-ctx.Done():
		t.Fatal("timed out waiting for message")
	}
}

type failingPublisher struct{}

func (failingPublisher) Publish(string, ...*message.Message) error { return errors.New("broker down") }
func (failingPublisher) Close() error                              { return nil }

func TestEventBus_PublishErrors(t *testing.T) {
	bus := NewWithPublisher(failingPublisher{}, discardLogger())

	err := bus.Publish(context.Background(), PlayerCreatedV1, PlayerCreatedPayloadV1{PlayerID: uuid.New(), Name: "Aki"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), PlayerCreatedV1)

	err = bus.Publish(context.Background(), PlayerCreatedV1, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal")
}

func TestNewWithoutNATSUsesInProcess(t *testing.T) {
	bus, err := New(context.Background(), "", discardLogger())
	require.NoError(t, err)
	assert.NoError(t, bus.Publish(context.Background(), SheetCreatedV1, SheetCreatedPayloadV1{SheetID: uuid.New()}))
	assert.NoError(t, bus.Close())
}
