package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/argguild/epgpbot/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types
const (
	PointsChanged  Type = domain.EventTypePointsChanged
	DecayCompleted Type = domain.EventTypeDecayCompleted
	DropAwarded    Type = domain.EventTypeDropAwarded
	RaidRewarded   Type = domain.EventTypeRaidRewarded
)

// NewPointsChangedEvent creates an event for a committed ledger entry
func NewPointsChangedEvent(entry domain.LedgerEntry) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PointsChanged,
		Payload: domain.PointsChangedPayload{
			EntryID:   entry.ID,
			Key:       entry.Key,
			Type:      entry.Type,
			OldValue:  entry.OldValue,
			Delta:     entry.Delta,
			NewValue:  entry.NewValue,
			Timestamp: entry.CreatedAt.Unix(),
		},
	}
}

// NewDecayCompletedEvent creates an event for a finished decay sweep of one team tier
func NewDecayCompletedEvent(teamID int64, tier int, percent int64, buckets int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DecayCompleted,
		Payload: domain.DecayCompletedPayload{
			TeamID:    teamID,
			Tier:      tier,
			Percent:   percent,
			Buckets:   buckets,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewDropAwardedEvent creates an event for a committed award
func NewDropAwardedEvent(drop domain.ItemDrop) Event {
	payload := domain.DropAwardedPayload{
		DropID:            drop.ID,
		ItemID:            drop.ItemID,
		RaidID:            drop.RaidID,
		Tier:              drop.WinningTier,
		WinnerUserID:      drop.WinnerUserID,
		WinnerCharacterID: drop.WinnerCharacterID,
		MessageChannelID:  drop.MessageChannelID,
		Timestamp:         time.Now().Unix(),
	}
	if drop.WinnerPriority != nil {
		payload.Priority = drop.WinnerPriority.StringFixed(decimalPlaces(*drop.WinnerPriority))
	}
	if drop.WinnerCost != nil {
		payload.Cost = *drop.WinnerCost
	}

	return Event{
		Version: EventSchemaVersion,
		Type:    DropAwarded,
		Payload: payload,
		Metadata: Metadata{
			MetadataKeyRaidID: drop.RaidID,
		},
	}
}

// NewRaidRewardedEvent creates an event for a committed reward tick
func NewRaidRewardedEvent(reward domain.RaidReward) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RaidRewarded,
		Payload: domain.RaidRewardedPayload{
			RaidID:     reward.RaidID,
			Amount:     reward.Amount,
			Recipients: len(reward.Entries),
			Closed:     reward.Closed,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: Metadata{
			MetadataKeyRaidID: reward.RaidID,
		},
	}
}

// decimalPlaces keeps roll scores integral and priority ratios at two places
func decimalPlaces(d decimal.Decimal) int32 {
	if d.IsInteger() && d.Exponent() >= 0 {
		return 0
	}
	return domain.PriorityScale
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously; slow work belongs on the worker pool.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
