package loot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argguild/epgpbot/internal/domain"
)

// fixedRolls returns a roller that yields rolls in order
func fixedRolls(rolls ...int) Roller {
	i := 0
	return func(n int) int {
		r := rolls[i%len(rolls)]
		i++
		return r
	}
}

func TestPool_PartitionIsNonExclusive(t *testing.T) {
	p := NewPool(nil)
	bids := []domain.Bid{
		{UserID: "a", WantsUpgrade: true, WantsOffspec: true, Seq: 1},
		{UserID: "b", WantsOffspec: true, Seq: 2},
		{UserID: "c", Seq: 3},
	}

	partition := p.Partition(bids)

	assert.Len(t, partition[domain.BidTierUpgrade], 1)
	assert.Empty(t, partition[domain.BidTierSidegrade])
	assert.Len(t, partition[domain.BidTierOffspec], 2)

	tier, tierBids, ok := p.SelectTier(partition)
	require.True(t, ok)
	assert.Equal(t, domain.BidTierUpgrade, tier)
	assert.Equal(t, "a", tierBids[0].UserID)
}

func TestPool_SelectTierWithoutBids(t *testing.T) {
	p := NewPool(nil)

	_, _, ok := p.SelectTier(p.Partition(nil))

	assert.False(t, ok)
}

func TestPool_RankByPriority(t *testing.T) {
	p := NewPool(nil)
	bids := []domain.Bid{
		{UserID: "late", Seq: 3},
		{UserID: "low", Seq: 1},
		{UserID: "early", Seq: 2},
		{UserID: "unknown", Seq: 4},
	}
	standings := map[string]domain.Standing{
		"late":  {EP: 1500, GP: 1000},
		"low":   {EP: 500, GP: 1000},
		"early": {EP: 3000, GP: 2000},
	}

	ranked := p.RankByPriority(bids, standings)

	require.Len(t, ranked, 4)
	assert.Equal(t, "early", ranked[0].Bid.UserID, "equal ratio goes to the earlier bid")
	assert.Equal(t, "late", ranked[1].Bid.UserID)
	assert.Equal(t, "low", ranked[2].Bid.UserID)
	assert.Equal(t, "unknown", ranked[3].Bid.UserID)
	assert.Equal(t, "1.5", ranked[0].Score.String())
	require.NotNil(t, ranked[0].Bid.Priority)
	assert.True(t, ranked[0].Score.Equal(*ranked[0].Bid.Priority))
	assert.Equal(t, int64(3000), ranked[0].EP)
}

func TestPool_RankByRoll(t *testing.T) {
	p := NewPool(fixedRolls(40, 87, 87))
	bids := []domain.Bid{
		{UserID: "a", Seq: 1},
		{UserID: "b", Seq: 2},
		{UserID: "c", Seq: 3},
	}

	ranked := p.RankByRoll(bids)

	require.Len(t, ranked, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{ranked[0].Bid.UserID, ranked[1].Bid.UserID, ranked[2].Bid.UserID})
	require.NotNil(t, ranked[0].Bid.Roll)
	assert.Equal(t, 87, *ranked[0].Bid.Roll)
}

func TestPool_DefaultRollerStaysInRange(t *testing.T) {
	p := NewPool(nil)
	bids := make([]domain.Bid, 200)
	for i := range bids {
		bids[i].Seq = int64(i)
	}

	for _, r := range p.RankByRoll(bids) {
		assert.GreaterOrEqual(t, *r.Bid.Roll, 0)
		assert.LessOrEqual(t, *r.Bid.Roll, domain.RollMax)
	}
}

func TestBidTierRegistry(t *testing.T) {
	r, err := NewBidTierRegistry(map[domain.BidTier]string{
		domain.BidTierUpgrade:   "bid_100",
		domain.BidTierSidegrade: "bid_25",
		domain.BidTierOffspec:   "1122334455",
	})
	require.NoError(t, err)

	tests := []struct {
		reaction string
		want     domain.BidTier
		found    bool
	}{
		{"bid_100", domain.BidTierUpgrade, true},
		{"<:bid_25:998877>", domain.BidTierSidegrade, true},
		{"BID_100", domain.BidTierUpgrade, true},
		{"1122334455", domain.BidTierOffspec, true},
		{"bid_0:1122334455", domain.BidTierOffspec, true},
		{"<a:renamed:1122334455>", domain.BidTierOffspec, true},
		{"thumbsup", "", false},
		{"thumbsup:42", "", false},
	}
	for _, tt := range tests {
		tier, ok := r.Lookup(tt.reaction)
		assert.Equal(t, tt.found, ok, tt.reaction)
		assert.Equal(t, tt.want, tier, tt.reaction)
	}
	assert.Equal(t, []string{"bid_100", "bid_25", "1122334455"}, r.Reactions())
}

func TestBidTierRegistry_IDWinsOverName(t *testing.T) {
	r, err := NewBidTierRegistry(map[domain.BidTier]string{
		domain.BidTierUpgrade:   "555",
		domain.BidTierSidegrade: "bid_25",
	})
	require.NoError(t, err)

	tier, ok := r.Lookup("bid_25:555")
	assert.True(t, ok)
	assert.Equal(t, domain.BidTierUpgrade, tier)

	tier, ok = r.Lookup("bid_25:777")
	assert.True(t, ok, "unknown id falls back to the name")
	assert.Equal(t, domain.BidTierSidegrade, tier)
}

func TestBidTierRegistry_RejectsAmbiguousReactions(t *testing.T) {
	_, err := NewBidTierRegistry(map[domain.BidTier]string{
		domain.BidTierUpgrade: "bid",
		domain.BidTierOffspec: "BID",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	_, err = NewBidTierRegistry(map[domain.BidTier]string{
		domain.BidTierUpgrade: "bid_100:555",
		domain.BidTierOffspec: "555",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	_, err = NewBidTierRegistry(map[domain.BidTier]string{domain.BidTierUpgrade: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	_, err = NewBidTierRegistry(map[domain.BidTier]string{"greed": "bid_1"})
	assert.ErrorIs(t, err, domain.ErrUnknownBidTier)
}
