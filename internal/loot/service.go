package loot

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/argguild/epgpbot/internal/concurrency"
	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/event"
	"github.com/argguild/epgpbot/internal/item"
	"github.com/argguild/epgpbot/internal/ledger"
	"github.com/argguild/epgpbot/internal/logger"
	"github.com/argguild/epgpbot/internal/repository"
)

// Service defines the bid and award operations on item drops
type Service interface {
	RecordDrop(ctx context.Context, raidID, itemID int64, createdBy string) (*domain.ItemDrop, error)
	// AttachMessage links a drop to the chat message collecting its bids
	AttachMessage(ctx context.Context, dropID int64, channelID, messageID string) error
	// SubmitBid sets or clears one tier flag of the user's bid
	SubmitBid(ctx context.Context, dropID int64, userID string, tier domain.BidTier, set bool) (*domain.Bid, error)
	// SubmitReaction resolves a reaction on a bid message into SubmitBid
	SubmitReaction(ctx context.Context, channelID, messageID, userID, reactionID string, added bool) (*domain.Bid, error)
	Preview(ctx context.Context, dropID int64) (*domain.DropPreview, error)
	// Award resolves the winner, charges gear points and closes the drop in one transaction
	Award(ctx context.Context, dropID int64) (*domain.AwardResult, error)
	GetDrop(ctx context.Context, id int64) (*domain.ItemDrop, error)
	ListDrops(ctx context.Context, raidID int64) ([]domain.ItemDrop, error)
}

// RaidReader resolves the raid a drop belongs to and its signups
type RaidReader interface {
	GetRaid(ctx context.Context, id int64) (*domain.Raid, error)
	GetSignup(ctx context.Context, raidID int64, userID string) (*domain.Signup, error)
}

// CharacterReader resolves the character a bid was placed for
type CharacterReader interface {
	GetCharacter(ctx context.Context, id int64) (*domain.Character, error)
}

// ItemCatalog resolves dropped items
type ItemCatalog interface {
	Get(ctx context.Context, id int64) (*domain.Item, error)
}

type service struct {
	repo       repository.Loot
	raids      RaidReader
	characters CharacterReader
	items      ItemCatalog
	ledger     ledger.Service
	locks      *concurrency.LockManager
	bus        event.Bus
	pool       *Pool
	registry   *BidTierRegistry
	now        func() time.Time
}

// NewService creates a new loot service
func NewService(
	repo repository.Loot,
	raids RaidReader,
	characters CharacterReader,
	items ItemCatalog,
	ledgerSvc ledger.Service,
	locks *concurrency.LockManager,
	bus event.Bus,
	pool *Pool,
	registry *BidTierRegistry,
) Service {
	return &service{
		repo:       repo,
		raids:      raids,
		characters: characters,
		items:      items,
		ledger:     ledgerSvc,
		locks:      locks,
		bus:        bus,
		pool:       pool,
		registry:   registry,
		now:        time.Now,
	}
}

func dropLockKey(id int64) string {
	return "drop:" + strconv.FormatInt(id, 10)
}

func (s *service) RecordDrop(ctx context.Context, raidID, itemID int64, createdBy string) (*domain.ItemDrop, error) {
	raid, err := s.getRaid(ctx, raidID)
	if err != nil {
		return nil, err
	}
	if !domain.TierTracked(raid.Tier()) {
		return nil, fmt.Errorf("%w: zone %s", domain.ErrInvalidTier, raid.Zone)
	}
	if _, err := s.items.Get(ctx, itemID); err != nil {
		return nil, err
	}

	drop := &domain.ItemDrop{
		ItemID:    itemID,
		RaidID:    raidID,
		CreatedBy: createdBy,
		DroppedAt: s.now(),
	}
	if err := s.repo.CreateDrop(ctx, drop); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCreateDrop, err)
	}

	logger.FromContext(ctx).Info(LogMsgDropRecorded, "drop_id", drop.ID, "raid_id", raidID, "item_id", itemID)
	return drop, nil
}

func (s *service) AttachMessage(ctx context.Context, dropID int64, channelID, messageID string) error {
	if channelID == "" || messageID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidParameter, ErrMsgMessageRefRequired)
	}
	if _, err := s.GetDrop(ctx, dropID); err != nil {
		return err
	}
	if err := s.repo.SetDropMessage(ctx, dropID, channelID, messageID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextUpdateDrop, err)
	}
	return nil
}

func (s *service) SubmitBid(ctx context.Context, dropID int64, userID string, tier domain.BidTier, set bool) (*domain.Bid, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBidTier, tier)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidParameter, ErrMsgUserRequired)
	}

	drop, err := s.GetDrop(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if drop.Awarded {
		return nil, fmt.Errorf("%w: %d", domain.ErrDropAlreadyAwarded, dropID)
	}
	raid, err := s.getRaid(ctx, drop.RaidID)
	if err != nil {
		return nil, err
	}
	// only members with points in the raid's team and tier may bid
	epKey := domain.BucketKey{UserID: userID, TeamID: raid.TeamID, Tier: raid.Tier(), PointType: domain.PointTypeEP}
	if _, err := s.ledger.GetBucket(ctx, epKey); err != nil {
		return nil, err
	}
	signup, err := s.raids.GetSignup(ctx, raid.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetSignup, err)
	}

	ctx = context.WithoutCancel(ctx)
	unlock := s.locks.Lock(dropLockKey(dropID))
	defer unlock()

	tx, err := s.repo.BeginLootTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	locked, err := tx.GetDropForUpdate(ctx, dropID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetDrop, err)
	}
	if locked == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrDropNotFound, dropID)
	}
	if locked.Awarded {
		return nil, fmt.Errorf("%w: %d", domain.ErrDropAlreadyAwarded, dropID)
	}

	bid, err := tx.GetBidForUpdate(ctx, dropID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetBid, err)
	}
	now := s.now()
	if bid == nil {
		if !set {
			return nil, fmt.Errorf("%w: drop %d user %s", domain.ErrBidNotFound, dropID, userID)
		}
		bid = &domain.Bid{DropID: dropID, UserID: userID, CreatedAt: now}
	}
	if bid.CharacterID == nil && signup != nil {
		characterID := signup.CharacterID
		bid.CharacterID = &characterID
	}
	bid.Set(tier, set)
	bid.UpdatedAt = now

	if err := tx.SaveBid(ctx, bid); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSaveBid, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCommitTx, err)
	}

	logger.FromContext(ctx).Debug(LogMsgBidUpdated, "drop_id", dropID, "user_id", userID, "tier", tier, "set", set)
	return bid, nil
}

func (s *service) SubmitReaction(ctx context.Context, channelID, messageID, userID, reactionID string, added bool) (*domain.Bid, error) {
	tier, ok := s.registry.Lookup(reactionID)
	if !ok {
		return nil, fmt.Errorf("%w: reaction %q", domain.ErrUnknownBidTier, reactionID)
	}
	drop, err := s.repo.GetDropByMessage(ctx, channelID, messageID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetDrop, err)
	}
	if drop == nil {
		return nil, fmt.Errorf("%w: message %s", domain.ErrDropNotFound, messageID)
	}
	return s.SubmitBid(ctx, drop.ID, userID, tier, added)
}

func (s *service) Preview(ctx context.Context, dropID int64) (*domain.DropPreview, error) {
	drop, err := s.GetDrop(ctx, dropID)
	if err != nil {
		return nil, err
	}
	raid, err := s.getRaid(ctx, drop.RaidID)
	if err != nil {
		return nil, err
	}
	bids, err := s.repo.ListBids(ctx, dropID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListBids, err)
	}

	standings := make(map[string]domain.Standing, len(bids))
	for _, b := range bids {
		st, err := s.ledger.GetStanding(ctx, b.UserID, raid.TeamID, raid.Tier())
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgStandingMissing, "user_id", b.UserID, "error", err)
			continue
		}
		standings[b.UserID] = *st
	}

	preview := &domain.DropPreview{Drop: *drop, Rankings: make(map[domain.BidTier][]domain.RankedBid)}
	partition := s.pool.Partition(bids)
	for tier, tierBids := range partition {
		if tier.RankedByPriority() {
			preview.Rankings[tier] = s.pool.RankByPriority(tierBids, standings)
			continue
		}
		// rolls happen at award time; list in bid order until then
		ranked := make([]domain.RankedBid, len(tierBids))
		for i, b := range tierBids {
			ranked[i] = domain.RankedBid{Bid: b}
		}
		preview.Rankings[tier] = ranked
	}
	if tier, _, ok := s.pool.SelectTier(partition); ok {
		preview.Tier = &tier
	}
	return preview, nil
}

func (s *service) Award(ctx context.Context, dropID int64) (*domain.AwardResult, error) {
	drop, err := s.GetDrop(ctx, dropID)
	if err != nil {
		return nil, err
	}
	if drop.Awarded {
		return nil, fmt.Errorf("%w: %d", domain.ErrDropAlreadyAwarded, dropID)
	}
	raid, err := s.getRaid(ctx, drop.RaidID)
	if err != nil {
		return nil, err
	}
	dropped, err := s.items.Get(ctx, drop.ItemID)
	if err != nil {
		return nil, err
	}

	// an award is not abandoned once the transaction is open
	ctx = context.WithoutCancel(ctx)
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(dropLockKey(dropID))
	defer unlock()

	tx, err := s.repo.BeginLootTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	locked, err := tx.GetDropForUpdate(ctx, dropID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetDrop, err)
	}
	if locked == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrDropNotFound, dropID)
	}
	if locked.Awarded {
		return nil, fmt.Errorf("%w: %d", domain.ErrDropAlreadyAwarded, dropID)
	}

	bids, err := tx.ListBids(ctx, dropID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListBids, err)
	}

	award := domain.DropAward{DropID: dropID, AwardedAt: s.now()}
	result := &domain.AwardResult{DropID: dropID}

	tier, tierBids, ok := s.pool.SelectTier(s.pool.Partition(bids))
	var entry *domain.LedgerEntry
	if ok {
		standings, err := s.standingsInTx(ctx, tx, raid, tierBids)
		if err != nil {
			return nil, err
		}
		ranking := s.pool.Rank(tier, tierBids, standings)
		scored := make([]domain.Bid, len(ranking))
		for i, r := range ranking {
			scored[i] = r.Bid
		}
		if err := tx.UpdateBidScores(ctx, scored); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextSaveBid, err)
		}

		winner := ranking[0]
		cost, err := s.cost(ctx, *dropped, tier, winner.Bid)
		if err != nil {
			return nil, err
		}

		raidID := raid.ID
		gpKey := domain.BucketKey{UserID: winner.Bid.UserID, TeamID: raid.TeamID, Tier: raid.Tier(), PointType: domain.PointTypeGP}
		entry, err = s.ledger.ApplyInTx(ctx, tx, gpKey, ledger.GrantOp{Delta: cost}, domain.LedgerContext{
			RaidID:      &raidID,
			ItemDropID:  &dropID,
			CharacterID: winner.Bid.CharacterID,
			Reason:      fmt.Sprintf(ReasonFmtAward, dropped.Name, tier),
		})
		if err != nil {
			return nil, err
		}

		userID := winner.Bid.UserID
		score := winner.Score
		award.WinnerUserID = &userID
		award.WinnerCharacterID = winner.Bid.CharacterID
		award.WinnerPriority = &score
		award.WinnerCost = &cost
		award.WinningTier = &tier

		result.Tier = &tier
		result.Winner = &ranking[0]
		result.Priority = &score
		result.Cost = &cost
		result.Ranking = ranking
		result.Entry = entry
	}

	n, err := tx.MarkDropAwarded(ctx, award)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextUpdateDrop, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrDropAlreadyAwarded, dropID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCommitTx, err)
	}

	awarded := *locked
	awarded.Awarded = true
	awarded.AwardedAt = &award.AwardedAt
	awarded.WinnerUserID = award.WinnerUserID
	awarded.WinnerCharacterID = award.WinnerCharacterID
	awarded.WinnerPriority = award.WinnerPriority
	awarded.WinnerCost = award.WinnerCost
	awarded.WinningTier = award.WinningTier

	if entry != nil {
		log.Info(LogMsgDropAwarded, "drop_id", dropID, "winner", *award.WinnerUserID, "tier", tier, "cost", *award.WinnerCost)
		ledger.PublishEntries(ctx, s.bus, []domain.LedgerEntry{*entry})
	} else {
		log.Info(LogMsgDropAwardedNoBids, "drop_id", dropID)
	}
	if err := s.bus.Publish(ctx, event.NewDropAwardedEvent(awarded)); err != nil {
		log.Warn(LogMsgPublishFailed, "drop_id", dropID, "error", err)
	}
	return result, nil
}

// standingsInTx reads the bidders' EP and GP inside the award transaction,
// locking bucket rows in key order
func (s *service) standingsInTx(ctx context.Context, tx repository.LootTx, raid *domain.Raid, bids []domain.Bid) (map[string]domain.Standing, error) {
	keys := make([]domain.BucketKey, 0, len(bids)*2)
	for _, b := range bids {
		ep := domain.BucketKey{UserID: b.UserID, TeamID: raid.TeamID, Tier: raid.Tier(), PointType: domain.PointTypeEP}
		keys = append(keys, ep, ep.WithType(domain.PointTypeGP))
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	standings := make(map[string]domain.Standing, len(bids))
	for _, key := range keys {
		bucket, err := tx.GetBucketForUpdate(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextGetBucket, err)
		}
		if bucket == nil {
			continue
		}
		st := standings[key.UserID]
		st.UserID = key.UserID
		if key.PointType == domain.PointTypeEP {
			st.EP = bucket.Balance
		} else {
			st.GP = bucket.Balance
		}
		standings[key.UserID] = st
	}
	for userID, st := range standings {
		st.PR = domain.PriorityRatio(st.EP, st.GP)
		standings[userID] = st
	}
	return standings, nil
}

// cost returns the gear points charged for winning dropped in tier
func (s *service) cost(ctx context.Context, dropped domain.Item, tier domain.BidTier, bid domain.Bid) (int64, error) {
	if tier == domain.BidTierOffspec {
		return 0, nil
	}
	var role domain.Role
	if bid.CharacterID != nil {
		character, err := s.characters.GetCharacter(ctx, *bid.CharacterID)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", ErrContextGetCharacter, err)
		}
		if character != nil {
			role = character.Role
		}
	}
	full := item.GearPoints(dropped, role)
	if tier == domain.BidTierSidegrade {
		return item.SidegradeCost(full), nil
	}
	return full, nil
}

func (s *service) GetDrop(ctx context.Context, id int64) (*domain.ItemDrop, error) {
	drop, err := s.repo.GetDrop(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetDrop, err)
	}
	if drop == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrDropNotFound, id)
	}
	return drop, nil
}

func (s *service) ListDrops(ctx context.Context, raidID int64) ([]domain.ItemDrop, error) {
	drops, err := s.repo.ListDrops(ctx, raidID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListDrops, err)
	}
	return drops, nil
}

func (s *service) getRaid(ctx context.Context, id int64) (*domain.Raid, error) {
	raid, err := s.raids.GetRaid(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetRaid, err)
	}
	if raid == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrRaidNotFound, id)
	}
	return raid, nil
}
