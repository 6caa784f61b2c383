package loot

import (
	"math/rand/v2"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/argguild/epgpbot/internal/domain"
)

// Roller returns a uniform integer in [0, n)
type Roller func(n int) int

// Pool partitions and ranks the bids of one drop
type Pool struct {
	roll Roller
}

// NewPool creates a bid pool. A nil roller uses math/rand.
func NewPool(roll Roller) *Pool {
	if roll == nil {
		roll = rand.IntN
	}
	return &Pool{roll: roll}
}

// Partition groups bids by every flag they carry. A bid with several flags
// appears in several tiers.
func (p *Pool) Partition(bids []domain.Bid) map[domain.BidTier][]domain.Bid {
	out := make(map[domain.BidTier][]domain.Bid, len(domain.BidTierPrecedence))
	for _, b := range bids {
		for _, tier := range domain.BidTierPrecedence {
			if b.Wants(tier) {
				out[tier] = append(out[tier], b)
			}
		}
	}
	return out
}

// SelectTier returns the highest precedence tier that has bids
func (p *Pool) SelectTier(partition map[domain.BidTier][]domain.Bid) (domain.BidTier, []domain.Bid, bool) {
	for _, tier := range domain.BidTierPrecedence {
		if bids := partition[tier]; len(bids) > 0 {
			return tier, bids, true
		}
	}
	return "", nil, false
}

// RankByPriority scores each bid with the bidder's EP/GP ratio and sorts by
// ratio descending. Equal ratios keep the earlier bid first. A bidder missing
// from standings ranks with a zero ratio.
func (p *Pool) RankByPriority(bids []domain.Bid, standings map[string]domain.Standing) []domain.RankedBid {
	ranked := make([]domain.RankedBid, 0, len(bids))
	for _, b := range bids {
		st := standings[b.UserID]
		pr := domain.PriorityRatio(st.EP, st.GP)
		b.Priority = &pr
		ranked = append(ranked, domain.RankedBid{Bid: b, Score: pr, EP: st.EP, GP: st.GP})
	}
	sortRanked(ranked)
	return ranked
}

// RankByRoll rolls [0, RollMax] for each bid and sorts by roll descending.
// Equal rolls keep the earlier bid first.
func (p *Pool) RankByRoll(bids []domain.Bid) []domain.RankedBid {
	ranked := make([]domain.RankedBid, 0, len(bids))
	for _, b := range bids {
		roll := p.roll(domain.RollMax + 1)
		b.Roll = &roll
		ranked = append(ranked, domain.RankedBid{Bid: b, Score: decimal.NewFromInt(int64(roll))})
	}
	sortRanked(ranked)
	return ranked
}

// Rank ranks bids the way tier is decided
func (p *Pool) Rank(tier domain.BidTier, bids []domain.Bid, standings map[string]domain.Standing) []domain.RankedBid {
	if tier.RankedByPriority() {
		return p.RankByPriority(bids, standings)
	}
	return p.RankByRoll(bids)
}

func sortRanked(ranked []domain.RankedBid) {
	sort.SliceStable(ranked, func(i, j int) bool {
		if c := ranked[i].Score.Cmp(ranked[j].Score); c != 0 {
			return c > 0
		}
		return ranked[i].Bid.Seq < ranked[j].Bid.Seq
	})
}
