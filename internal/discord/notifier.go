package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/event"
	"github.com/argguild/epgpbot/internal/logger"
	"github.com/argguild/epgpbot/internal/worker"
)

// MessageSender posts a chat message. *discordgo.Session satisfies it.
type MessageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ItemNamer resolves item names for award messages
type ItemNamer interface {
	Get(ctx context.Context, id int64) (*domain.Item, error)
}

// Notifier posts award, decay and raid reward announcements. Sends run on the
// worker pool after the publishing transaction has committed.
type Notifier struct {
	sender    MessageSender
	channelID string
	pool      *worker.Pool
	items     ItemNamer
}

// NewNotifier creates a notifier posting to channelID
func NewNotifier(sender MessageSender, channelID string, pool *worker.Pool, items ItemNamer) *Notifier {
	return &Notifier{sender: sender, channelID: channelID, pool: pool, items: items}
}

// Subscribe registers the notifier's handlers on bus
func (n *Notifier) Subscribe(bus event.Bus) {
	bus.Subscribe(event.DropAwarded, n.onDropAwarded)
	bus.Subscribe(event.DecayCompleted, n.onDecayCompleted)
	bus.Subscribe(event.RaidRewarded, n.onRaidRewarded)
}

func (n *Notifier) onDropAwarded(ctx context.Context, e event.Event) error {
	p, err := event.DecodePayload[domain.DropAwardedPayload](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgNotificationFailed, "event", e.Type, "error", err)
		return err
	}
	channelID := n.channelID
	if p.MessageChannelID != "" {
		channelID = p.MessageChannelID
	}
	name := fmt.Sprintf("item %d", p.ItemID)
	if n.items != nil {
		if it, err := n.items.Get(ctx, p.ItemID); err == nil {
			name = it.Name
		}
	}
	n.send(ctx, channelID, formatAward(name, p.DropID, p.Tier, p.WinnerUserID, p.Priority, p.Cost))
	return nil
}

func (n *Notifier) onDecayCompleted(ctx context.Context, e event.Event) error {
	p, err := event.DecodePayload[domain.DecayCompletedPayload](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgNotificationFailed, "event", e.Type, "error", err)
		return err
	}
	n.send(ctx, n.channelID, formatDecay(p))
	return nil
}

func (n *Notifier) onRaidRewarded(ctx context.Context, e event.Event) error {
	p, err := event.DecodePayload[domain.RaidRewardedPayload](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgNotificationFailed, "event", e.Type, "error", err)
		return err
	}
	if p.Recipients == 0 {
		return nil
	}
	n.send(ctx, n.channelID, formatRaidReward(p))
	return nil
}

// send never blocks the publisher; a full queue drops the message
func (n *Notifier) send(ctx context.Context, channelID, content string) {
	if channelID == "" {
		return
	}
	job := worker.JobFunc(func(context.Context) error {
		_, err := n.sender.ChannelMessageSend(channelID, content)
		return err
	})
	if !n.pool.TryEnqueue(job) {
		logger.FromContext(ctx).Warn(LogMsgNotificationDropped, "channel_id", channelID)
	}
}
