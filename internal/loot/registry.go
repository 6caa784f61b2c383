package loot

import (
	"fmt"
	"strings"

	"github.com/argguild/epgpbot/internal/domain"
)

// BidTierRegistry maps chat reaction identifiers to bid tiers. A reaction may
// be registered by emoji id, by name or in the "name:id" form; names are
// matched case-insensitively.
type BidTierRegistry struct {
	tiers     map[string]domain.BidTier
	reactions map[domain.BidTier]string
}

// NewBidTierRegistry builds the registry from the configured reaction per tier
func NewBidTierRegistry(reactions map[domain.BidTier]string) (*BidTierRegistry, error) {
	r := &BidTierRegistry{
		tiers:     make(map[string]domain.BidTier, 2*len(reactions)),
		reactions: make(map[domain.BidTier]string, len(reactions)),
	}
	for tier, configured := range reactions {
		if !tier.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBidTier, tier)
		}
		name, id := parseReaction(configured)
		if name == "" && id == "" {
			return nil, fmt.Errorf("%w: %s %s", domain.ErrInvalidParameter, ErrMsgEmptyReaction, tier)
		}
		for _, key := range []string{id, name} {
			if key == "" {
				continue
			}
			if other, ok := r.tiers[key]; ok && other != tier {
				return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidParameter, ErrMsgDuplicateReaction, configured)
			}
			r.tiers[key] = tier
		}
		r.reactions[tier] = configured
	}
	return r, nil
}

// Lookup returns the tier a reaction stands for. The emoji id wins over the
// name when both are present.
func (r *BidTierRegistry) Lookup(reaction string) (domain.BidTier, bool) {
	name, id := parseReaction(reaction)
	if id != "" {
		if tier, ok := r.tiers[id]; ok {
			return tier, true
		}
	}
	if name == "" {
		return "", false
	}
	tier, ok := r.tiers[name]
	return tier, ok
}

// Reactions returns the registered reactions in tier precedence order
func (r *BidTierRegistry) Reactions() []string {
	out := make([]string, 0, len(r.reactions))
	for _, tier := range domain.BidTierPrecedence {
		if id, ok := r.reactions[tier]; ok {
			out = append(out, id)
		}
	}
	return out
}

// parseReaction splits custom emoji forms like "<:bid_100:1234>",
// "<a:bid_100:1234>" or "bid_100:1234" into a lowercased name and an id.
// A bare value is returned as the name.
func parseReaction(reaction string) (name, id string) {
	reaction = strings.TrimSpace(reaction)
	reaction = strings.TrimPrefix(reaction, "<")
	reaction = strings.TrimSuffix(reaction, ">")
	reaction = strings.TrimPrefix(reaction, "a:")
	reaction = strings.TrimPrefix(reaction, ":")
	if n, i, ok := strings.Cut(reaction, ":"); ok {
		return strings.ToLower(strings.TrimSpace(n)), strings.TrimSpace(i)
	}
	return strings.ToLower(reaction), ""
}
