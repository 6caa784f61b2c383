package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/logger"
	"github.com/argguild/epgpbot/internal/loot"
)

// BidSubmitter applies a reaction on a drop message as a bid change
type BidSubmitter interface {
	SubmitReaction(ctx context.Context, channelID, messageID, userID, reactionID string, added bool) (*domain.Bid, error)
}

// ReactionHandler turns reactions on drop messages into bids
type ReactionHandler struct {
	bids     BidSubmitter
	registry *loot.BidTierRegistry
}

// NewReactionHandler creates a handler resolving reactions through registry
func NewReactionHandler(bids BidSubmitter, registry *loot.BidTierRegistry) *ReactionHandler {
	return &ReactionHandler{bids: bids, registry: registry}
}

// OnReactionAdd is the discordgo handler for added reactions
func (h *ReactionHandler) OnReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	h.Handle(context.Background(), botUserID(s), r.MessageReaction, true)
}

// OnReactionRemove is the discordgo handler for removed reactions
func (h *ReactionHandler) OnReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	h.Handle(context.Background(), botUserID(s), r.MessageReaction, false)
}

// Handle applies one reaction. It reports whether a bid was changed.
// The bot's own reactions, reactions that are not bid tiers and reactions on
// messages that are not drops are ignored.
func (h *ReactionHandler) Handle(ctx context.Context, botID string, r *discordgo.MessageReaction, added bool) bool {
	if r == nil || r.UserID == "" || r.UserID == botID {
		return false
	}
	log := logger.FromContext(ctx)

	reaction := r.Emoji.APIName()
	if _, ok := h.registry.Lookup(reaction); !ok {
		log.Debug(LogMsgReactionIgnored, "reaction", reaction, "message_id", r.MessageID)
		return false
	}

	bid, err := h.bids.SubmitReaction(ctx, r.ChannelID, r.MessageID, r.UserID, reaction, added)
	if err != nil {
		if errors.Is(err, domain.ErrDropNotFound) {
			log.Debug(LogMsgReactionIgnored, "reaction", reaction, "message_id", r.MessageID)
			return false
		}
		log.Warn(LogMsgReactionFailed, "user_id", r.UserID, "message_id", r.MessageID, "error", err)
		return false
	}
	log.Info(LogMsgReactionApplied, "drop_id", bid.DropID, "user_id", r.UserID, "reaction", reaction, "added", added)
	return true
}

func botUserID(s *discordgo.Session) string {
	if s == nil || s.State == nil || s.State.User == nil {
		return ""
	}
	return s.State.User.ID
}
