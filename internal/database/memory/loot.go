package memory

import (
	"context"
	"sort"
	"time"

	"github.com/argguild/epgpbot/internal/domain"
)

func (t *tx) GetDropForUpdate(ctx context.Context, id int64) (*domain.ItemDrop, error) {
	if err := t.check(OpGetDropForUpdate); err != nil {
		return nil, err
	}
	d, ok := t.st.drops[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (t *tx) GetBidForUpdate(ctx context.Context, dropID int64, userID string) (*domain.Bid, error) {
	if err := t.check(""); err != nil {
		return nil, err
	}
	b, ok := t.st.bids[dropID][userID]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (t *tx) SaveBid(ctx context.Context, bid *domain.Bid) error {
	if err := t.check(OpSaveBid); err != nil {
		return err
	}
	if _, ok := t.st.drops[bid.DropID]; !ok {
		return domain.ErrDropNotFound
	}
	bids, ok := t.st.bids[bid.DropID]
	if !ok {
		bids = make(map[string]domain.Bid)
		t.st.bids[bid.DropID] = bids
	}
	if existing, ok := bids[bid.UserID]; ok {
		bid.Seq = existing.Seq
		bid.CreatedAt = existing.CreatedAt
	} else {
		t.st.nextBidSeq++
		bid.Seq = t.st.nextBidSeq
		if bid.CreatedAt.IsZero() {
			bid.CreatedAt = time.Now()
		}
	}
	bids[bid.UserID] = *bid
	return nil
}

func (t *tx) ListBids(ctx context.Context, dropID int64) ([]domain.Bid, error) {
	if err := t.check(""); err != nil {
		return nil, err
	}
	return sortedBids(t.st, dropID), nil
}

func (t *tx) UpdateBidScores(ctx context.Context, bids []domain.Bid) error {
	if err := t.check(OpUpdateBidScores); err != nil {
		return err
	}
	for _, b := range bids {
		existing, ok := t.st.bids[b.DropID][b.UserID]
		if !ok {
			return domain.ErrBidNotFound
		}
		existing.Priority = b.Priority
		existing.Roll = b.Roll
		t.st.bids[b.DropID][b.UserID] = existing
	}
	return nil
}

func (t *tx) MarkDropAwarded(ctx context.Context, award domain.DropAward) (int64, error) {
	if err := t.check(OpMarkDropAwarded); err != nil {
		return 0, err
	}
	d, ok := t.st.drops[award.DropID]
	if !ok || d.Awarded {
		return 0, nil
	}
	awardedAt := award.AwardedAt
	d.Awarded = true
	d.AwardedAt = &awardedAt
	d.WinnerUserID = award.WinnerUserID
	d.WinnerCharacterID = award.WinnerCharacterID
	d.WinnerPriority = award.WinnerPriority
	d.WinnerCost = award.WinnerCost
	d.WinningTier = award.WinningTier
	t.st.drops[award.DropID] = d
	return 1, nil
}

func (s *Store) CreateDrop(ctx context.Context, drop *domain.ItemDrop) error {
	return s.write(ctx, func(st *state) error {
		st.nextDropID++
		drop.ID = st.nextDropID
		if drop.DroppedAt.IsZero() {
			drop.DroppedAt = time.Now()
		}
		st.drops[drop.ID] = *drop
		return nil
	})
}

func (s *Store) GetDrop(ctx context.Context, id int64) (*domain.ItemDrop, error) {
	d, ok := s.snapshot().drops[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (s *Store) GetDropByMessage(ctx context.Context, channelID, messageID string) (*domain.ItemDrop, error) {
	for _, d := range s.snapshot().drops {
		if d.MessageChannelID == channelID && d.MessageID == messageID {
			return &d, nil
		}
	}
	return nil, nil
}

func (s *Store) SetDropMessage(ctx context.Context, id int64, channelID, messageID string) error {
	return s.write(ctx, func(st *state) error {
		d, ok := st.drops[id]
		if !ok {
			return domain.ErrDropNotFound
		}
		d.MessageChannelID = channelID
		d.MessageID = messageID
		st.drops[id] = d
		return nil
	})
}

func (s *Store) ListDrops(ctx context.Context, raidID int64) ([]domain.ItemDrop, error) {
	var out []domain.ItemDrop
	for _, d := range s.snapshot().drops {
		if d.RaidID == raidID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListBids(ctx context.Context, dropID int64) ([]domain.Bid, error) {
	return sortedBids(s.snapshot(), dropID), nil
}

func sortedBids(st *state, dropID int64) []domain.Bid {
	out := make([]domain.Bid, 0, len(st.bids[dropID]))
	for _, b := range st.bids[dropID] {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}
