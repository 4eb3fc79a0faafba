package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Event kinds pushed on the per-creator change feed.
const (
	EventMatchCreated       = "match.created"
	EventMessageCreated     = "message.created"
	EventNotification       = "notification.created"
	EventApplicationDecided = "application.decided"
)

// Event is one change-feed entry. Consumers re-fetch the referenced
// collection on receipt; no state is merged from the payload.
type Event struct {
	ID        uuid.UUID              `json:"id"`
	Kind      string                 `json:"kind"`
	CreatorID int                    `json:"creator_id"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Publisher pushes change events onto per-creator Redis channels. A nil
// Redis client disables publishing; every call becomes a no-op so the
// core flows never depend on the feed being up.
type Publisher struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewPublisher(rdb *redis.Client, logger *zap.Logger) *Publisher {
	return &Publisher{rdb: rdb, logger: logger}
}

// Channel names the change feed for one creator.
func Channel(creatorID int) string {
	return fmt.Sprintf("events:creator:%d", creatorID)
}

// Publish emits an event on the creator's channel. Failures are logged and
// swallowed: the feed is advisory, subscribers reconcile by re-fetching.
func (p *Publisher) Publish(ctx context.Context, creatorID int, kind string, payload map[string]interface{}) {
	if p.rdb == nil {
		return
	}

	event := Event{
		ID:        uuid.New(),
		Kind:      kind,
		CreatorID: creatorID,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Warn("failed to marshal realtime event", zap.String("kind", kind), zap.Error(err))
		return
	}

	if err := p.rdb.Publish(ctx, Channel(creatorID), data).Err(); err != nil {
		p.logger.Warn("failed to publish realtime event",
			zap.String("kind", kind),
			zap.Int("creator_id", creatorID),
			zap.Error(err),
		)
	}
}

// Subscribe opens a change-feed subscription for one creator. The caller
// owns the returned PubSub and must Close it.
func (p *Publisher) Subscribe(ctx context.Context, creatorID int) *redis.PubSub {
	if p.rdb == nil {
		return nil
	}
	return p.rdb.Subscribe(ctx, Channel(creatorID))
}
