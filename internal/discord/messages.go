package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/argguild/epgpbot/internal/domain"
)

// Friendly message constants for Discord responses
const (
	MsgNotFound       = "❓ **Not Found**\n%s"
	MsgInvalidInput   = "⚠️ **Invalid Input**\n%s"
	MsgAlreadyAwarded = "🔒 **Already Awarded**\nThat drop has already been handed out."
	MsgRaidClosed     = "🔒 **Raid Closed**\nThat raid is over."
	MsgBusy           = "⏳ **Busy**\nSomeone else changed this at the same time, try again."
	MsgGenericError   = "❌ Something went wrong."
)

// errorMessage turns a service error into a message safe to show in chat
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrDropAlreadyAwarded):
		return MsgAlreadyAwarded
	case errors.Is(err, domain.ErrRaidClosed):
		return MsgRaidClosed
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Sprintf(MsgNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidParameter), errors.Is(err, domain.ErrInvalidState):
		return fmt.Sprintf(MsgInvalidInput, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return MsgBusy
	default:
		return MsgGenericError
	}
}

func mention(userID string) string {
	return "<@" + userID + ">"
}

func formatStanding(name string, team *domain.Team, tier int, s *domain.Standing) string {
	return fmt.Sprintf("**%s** in %s T%d: EP %d, GP %d, PR %s", name, team.Name, tier, s.EP, s.GP, s.PR.StringFixed(domain.PriorityScale))
}

func formatPriority(team *domain.Team, tier int, standings []domain.Standing) string {
	if len(standings) == 0 {
		return fmt.Sprintf("No standings for %s T%d yet.", team.Name, tier)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "**Priority for %s T%d**\n", team.Name, tier)
	for i, s := range standings {
		if i == maxPriorityRows {
			fmt.Fprintf(&b, "…and %d more", len(standings)-i)
			break
		}
		name := s.DisplayName
		if name == "" {
			name = s.UserID
		}
		fmt.Fprintf(&b, "%d. %s: %s (EP %d / GP %d)\n", i+1, name, s.PR.StringFixed(domain.PriorityScale), s.EP, s.GP)
	}
	return b.String()
}

func formatDropMessage(drop *domain.ItemDrop, item *domain.Item, reactions []string) string {
	name := fmt.Sprintf("item %d", drop.ItemID)
	if item != nil {
		name = item.Name
	}
	return fmt.Sprintf("**%s** dropped (drop #%d, raid %d). React to bid: %s",
		name, drop.ID, drop.RaidID, strings.Join(reactions, " "))
}

func formatAward(itemName string, dropID int64, tier *domain.BidTier, winnerID *string, priority string, cost int64) string {
	if winnerID == nil || tier == nil {
		return fmt.Sprintf("**%s** (drop #%d) closed with no bids.", itemName, dropID)
	}
	msg := fmt.Sprintf("**%s** (drop #%d) awarded to %s as %s", itemName, dropID, mention(*winnerID), *tier)
	if priority != "" {
		msg += ", PR " + priority
	}
	return fmt.Sprintf("%s for %d GP.", msg, cost)
}

func formatAwardResult(itemName string, r *domain.AwardResult) string {
	var winner *string
	if r.Winner != nil {
		winner = &r.Winner.Bid.UserID
	}
	priority := ""
	if r.Priority != nil {
		priority = r.Priority.StringFixed(domain.PriorityScale)
	}
	var cost int64
	if r.Cost != nil {
		cost = *r.Cost
	}
	return formatAward(itemName, r.DropID, r.Tier, winner, priority, cost)
}

func formatDecay(p domain.DecayCompletedPayload) string {
	return fmt.Sprintf("📉 Decayed team %d T%d by %d%% (%d buckets).", p.TeamID, p.Tier, p.Percent, p.Buckets)
}

func formatRaidReward(p domain.RaidRewardedPayload) string {
	msg := fmt.Sprintf("⚔️ Raid %d: +%d EP to %d raiders.", p.RaidID, p.Amount, p.Recipients)
	if p.Closed {
		msg += " The raid is over."
	}
	return msg
}
