package metrics

import (
	"context"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/event"
	"github.com/argguild/epgpbot/internal/logger"
)

// EventMetricsCollector subscribes to committed domain events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.PointsChanged,
		event.DecayCompleted,
		event.DropAwarded,
		event.RaidRewarded,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent updates the counters for one event. Decode failures are logged,
// never returned, so a metrics problem cannot fail a publisher.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.PointsChanged:
		p, err := event.DecodePayload[domain.PointsChangedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		LedgerMutations.WithLabelValues(string(p.Type), string(p.Key.PointType)).Inc()

	case event.DecayCompleted:
		DecaySweeps.Inc()

	case event.DropAwarded:
		p, err := event.DecodePayload[domain.DropAwardedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		tier := BidTierNone
		if p.Tier != nil {
			tier = string(*p.Tier)
		}
		LootAwards.WithLabelValues(tier).Inc()
		GearPointsCharged.Add(float64(p.Cost))

	case event.RaidRewarded:
		RaidRewardTicks.Inc()
	}

	return nil
}
