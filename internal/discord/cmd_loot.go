package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/argguild/epgpbot/internal/item"
	"github.com/argguild/epgpbot/internal/logger"
	"github.com/argguild/epgpbot/internal/loot"
)

// DropCommand records a drop and posts the message members react to for bidding
func DropCommand(lootSvc loot.Service, items item.Service, registry *loot.BidTierRegistry) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandDrop,
		Description: "Open bidding on an item that dropped",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionRaid,
				Description: "Raid id",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionItem,
				Description: "Item id",
				Required:    true,
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
		opts := options(i)
		drop, err := lootSvc.RecordDrop(ctx, opts[OptionRaid].IntValue(), opts[OptionItem].IntValue(), interactionUser(i).ID)
		if err != nil {
			respondError(ctx, s, i, err)
			return
		}
		// the message still goes out with the item id when the catalog lookup fails
		dropped, _ := items.Get(ctx, drop.ItemID)

		reactions := registry.Reactions()
		msg, err := s.ChannelMessageSend(i.ChannelID, formatDropMessage(drop, dropped, reactions))
		if err != nil {
			respondError(ctx, s, i, fmt.Errorf("%s: %w", ErrMsgPostDropMessage, err))
			return
		}
		for _, r := range reactions {
			if err := s.MessageReactionAdd(i.ChannelID, msg.ID, r); err != nil {
				logger.FromContext(ctx).Warn(LogMsgAddReactionFailed, "reaction", r, "error", err)
			}
		}
		if err := lootSvc.AttachMessage(ctx, drop.ID, i.ChannelID, msg.ID); err != nil {
			respondError(ctx, s, i, err)
			return
		}
		respond(s, i, fmt.Sprintf("Drop #%d is open for bids.", drop.ID), true)
	}

	return cmd, handler
}

// AwardCommand resolves a drop's winner and charges the gear points
func AwardCommand(lootSvc loot.Service, items item.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandAward,
		Description: "Award a drop to the winning bid",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptionDrop,
				Description: "Drop id",
				Required:    true,
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
		dropID := options(i)[OptionDrop].IntValue()
		result, err := lootSvc.Award(ctx, dropID)
		if err != nil {
			respondError(ctx, s, i, err)
			return
		}
		respond(s, i, formatAwardResult(itemName(ctx, lootSvc, items, dropID), result), false)
	}

	return cmd, handler
}

// itemName resolves the display name of a drop's item, falling back to its id
func itemName(ctx context.Context, lootSvc loot.Service, items item.Service, dropID int64) string {
	drop, err := lootSvc.GetDrop(ctx, dropID)
	if err != nil {
		return fmt.Sprintf("drop %d", dropID)
	}
	it, err := items.Get(ctx, drop.ItemID)
	if err != nil {
		return fmt.Sprintf("item %d", drop.ItemID)
	}
	return it.Name
}
