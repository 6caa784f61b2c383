package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/argguild/epgpbot/internal/ledger"
	"github.com/argguild/epgpbot/internal/roster"
)

func teamAndTierOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        OptionTeam,
			Description: "Raid team name",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        OptionTier,
			Description: "Raid tier",
			Required:    true,
		},
	}
}

// StandingCommand shows one member's EP, GP and priority in a team tier
func StandingCommand(rosterSvc roster.Service, ledgerSvc ledger.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandStanding,
		Description: "Show effort, gear points and priority",
		Options: append(teamAndTierOptions(), &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        OptionUser,
			Description: "Member to look up (defaults to you)",
		}),
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
		opts := options(i)
		team, err := rosterSvc.GetTeamByName(ctx, opts[OptionTeam].StringValue())
		if err != nil {
			respondError(ctx, s, i, err)
			return
		}
		tier := int(opts[OptionTier].IntValue())

		userID := interactionUser(i).ID
		if o, ok := opts[OptionUser]; ok {
			userID = o.UserValue(nil).ID
		}
		user, err := rosterSvc.GetUser(ctx, userID)
		if err != nil {
			respondError(ctx, s, i, err)
			return
		}

		standing, err := ledgerSvc.GetStanding(ctx, user.ID, team.ID, tier)
		if err != nil {
			respondError(ctx, s, i, err)
			return
		}
		respond(s, i, formatStanding(user.DisplayName, team, tier, standing), false)
	}

	return cmd, handler
}

// PriorityCommand lists a team tier ordered by priority ratio
func PriorityCommand(rosterSvc roster.Service, ledgerSvc ledger.Service) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CommandPriority,
		Description: "List the loot priority of a raid team",
		Options:     teamAndTierOptions(),
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
		opts := options(i)
		team, err := rosterSvc.GetTeamByName(ctx, opts[OptionTeam].StringValue())
		if err != nil {
			respondError(ctx, s, i, err)
			return
		}
		tier := int(opts[OptionTier].IntValue())

		standings, err := ledgerSvc.PrioritySnapshot(ctx, team.ID, tier)
		if err != nil {
			respondError(ctx, s, i, err)
			return
		}
		respond(s, i, formatPriority(team, tier, standings), false)
	}

	return cmd, handler
}
