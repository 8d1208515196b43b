package operation

import (
	"context"

	"github.com/Black-And-White-Club/mahjong-ledger/app/eventbus"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/attr"
)

// PublishAfterCommit publishes an invalidation event. Failures are logged and
// counted but never undo the committed write.
func PublishAfterCommit(t Telemetry, ctx context.Context, pub eventbus.Publisher, topic string, payload any) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, topic, payload); err != nil {
		t.Logger.WarnContext(ctx, "Event publish failed",
			attr.String("topic", topic),
			attr.ExtractCorrelationID(ctx),
			attr.Error(err),
		)
		t.Metrics.RecordEventPublishFailure(ctx, topic)
	}
}
