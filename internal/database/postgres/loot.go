package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/argguild/epgpbot/internal/database/generated"
	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/repository"
)

// LootRepository implements repository.Loot for PostgreSQL using sqlc
type LootRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewLootRepository creates a new LootRepository
func NewLootRepository(db *pgxpool.Pool) *LootRepository {
	return &LootRepository{db: db, q: generated.New(db)}
}

// BeginLootTx starts a transaction covering drops, bids and the ledger
func (r *LootRepository) BeginLootTx(ctx context.Context) (repository.LootTx, error) {
	tx, err := begin(ctx, r.db, r.q)
	if err != nil {
		return nil, err
	}
	return &lootTx{ledgerTx: &ledgerTx{pgTx: tx}}, nil
}

func (r *LootRepository) CreateDrop(ctx context.Context, drop *domain.ItemDrop) error {
	if drop.DroppedAt.IsZero() {
		drop.DroppedAt = time.Now()
	}
	id, err := r.q.CreateDrop(ctx, generated.CreateDropParams{
		ItemID:           drop.ItemID,
		RaidID:           drop.RaidID,
		CreatedBy:        drop.CreatedBy,
		DroppedAt:        drop.DroppedAt,
		MessageChannelID: drop.MessageChannelID,
		MessageID:        drop.MessageID,
	})
	if err != nil {
		if c, ok := foreignKeyViolation(err); ok {
			if c == ConstraintDropItem {
				return fmt.Errorf("%w: %d", domain.ErrItemNotFound, drop.ItemID)
			}
			return fmt.Errorf("%w: %d", domain.ErrRaidNotFound, drop.RaidID)
		}
		return wrapErr(ErrMsgFailedToCreateDrop, err)
	}
	drop.ID = id
	return nil
}

func (r *LootRepository) GetDrop(ctx context.Context, id int64) (*domain.ItemDrop, error) {
	row, err := r.q.GetDrop(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetDrop, err)
	}
	return mapDrop(row), nil
}

// GetDropByMessage resolves the drop announced by a chat message
func (r *LootRepository) GetDropByMessage(ctx context.Context, channelID, messageID string) (*domain.ItemDrop, error) {
	row, err := r.q.GetDropByMessage(ctx, generated.GetDropByMessageParams{
		MessageChannelID: channelID,
		MessageID:        messageID,
	})
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetDrop, err)
	}
	return mapDrop(row), nil
}

func (r *LootRepository) SetDropMessage(ctx context.Context, id int64, channelID, messageID string) error {
	n, err := r.q.SetDropMessage(ctx, generated.SetDropMessageParams{
		DropID:           id,
		MessageChannelID: channelID,
		MessageID:        messageID,
	})
	if err != nil {
		return wrapErr(ErrMsgFailedToSetDropMessage, err)
	}
	if n == 0 {
		return domain.ErrDropNotFound
	}
	return nil
}

func (r *LootRepository) ListDrops(ctx context.Context, raidID int64) ([]domain.ItemDrop, error) {
	rows, err := r.q.ListDrops(ctx, raidID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListDrops, err)
	}
	drops := make([]domain.ItemDrop, len(rows))
	for i, row := range rows {
		drops[i] = *mapDrop(row)
	}
	return drops, nil
}

func (r *LootRepository) ListBids(ctx context.Context, dropID int64) ([]domain.Bid, error) {
	return listBids(ctx, r.q, dropID)
}

// lootTx implements repository.LootTx
type lootTx struct {
	*ledgerTx
}

func (t *lootTx) GetDropForUpdate(ctx context.Context, id int64) (*domain.ItemDrop, error) {
	row, err := t.q.GetDropForUpdate(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetDrop, err)
	}
	return mapDrop(row), nil
}

func (t *lootTx) GetBidForUpdate(ctx context.Context, dropID int64, userID string) (*domain.Bid, error) {
	row, err := t.q.GetBidForUpdate(ctx, generated.GetBidForUpdateParams{DropID: dropID, UserID: userID})
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrapErr(ErrMsgFailedToGetBid, err)
	}
	return mapBid(row), nil
}

// SaveBid inserts or updates a bid. The sequence is drawn on insert only,
// so an updated bid keeps its place.
func (t *lootTx) SaveBid(ctx context.Context, bid *domain.Bid) error {
	if bid.UpdatedAt.IsZero() {
		bid.UpdatedAt = time.Now()
	}
	row, err := t.q.UpsertBid(ctx, generated.UpsertBidParams{
		DropID:         bid.DropID,
		UserID:         bid.UserID,
		CharacterID:    bid.CharacterID,
		WantsUpgrade:   bid.WantsUpgrade,
		WantsSidegrade: bid.WantsSidegrade,
		WantsOffspec:   bid.WantsOffspec,
		UpdatedAt:      bid.UpdatedAt,
	})
	if err != nil {
		if _, ok := foreignKeyViolation(err); ok {
			return fmt.Errorf("%w: %d", domain.ErrDropNotFound, bid.DropID)
		}
		return wrapErr(ErrMsgFailedToSaveBid, err)
	}
	bid.Seq = row.Seq
	bid.CreatedAt = row.CreatedAt
	return nil
}

func (t *lootTx) ListBids(ctx context.Context, dropID int64) ([]domain.Bid, error) {
	return listBids(ctx, t.q, dropID)
}

func (t *lootTx) UpdateBidScores(ctx context.Context, bids []domain.Bid) error {
	for _, bid := range bids {
		n, err := t.q.UpdateBidScore(ctx, generated.UpdateBidScoreParams{
			DropID:   bid.DropID,
			UserID:   bid.UserID,
			Priority: numericFromDecimal(bid.Priority),
			Roll:     int32Ptr(bid.Roll),
		})
		if err != nil {
			return wrapErr(ErrMsgFailedToUpdateBidScore, err)
		}
		if n == 0 {
			return fmt.Errorf("%w: drop %d user %s", domain.ErrBidNotFound, bid.DropID, bid.UserID)
		}
	}
	return nil
}

// MarkDropAwarded flips an open drop to awarded. Zero rows affected means
// another award got there first.
func (t *lootTx) MarkDropAwarded(ctx context.Context, award domain.DropAward) (int64, error) {
	var tier *string
	if award.WinningTier != nil {
		s := string(*award.WinningTier)
		tier = &s
	}
	awardedAt := award.AwardedAt
	n, err := t.q.MarkDropAwarded(ctx, generated.MarkDropAwardedParams{
		DropID:            award.DropID,
		AwardedAt:         &awardedAt,
		WinnerUserID:      award.WinnerUserID,
		WinnerCharacterID: award.WinnerCharacterID,
		WinnerPriority:    numericFromDecimal(award.WinnerPriority),
		WinnerCost:        award.WinnerCost,
		WinningTier:       tier,
	})
	if err != nil {
		return 0, wrapErr(ErrMsgFailedToMarkDropAwarded, err)
	}
	return n, nil
}

func listBids(ctx context.Context, q *generated.Queries, dropID int64) ([]domain.Bid, error) {
	rows, err := q.ListBids(ctx, dropID)
	if err != nil {
		return nil, wrapErr(ErrMsgFailedToListBids, err)
	}
	bids := make([]domain.Bid, len(rows))
	for i, row := range rows {
		bids[i] = *mapBid(row)
	}
	return bids, nil
}

func mapDrop(row generated.ItemDrop) *domain.ItemDrop {
	drop := &domain.ItemDrop{
		ID:                row.DropID,
		ItemID:            row.ItemID,
		RaidID:            row.RaidID,
		CreatedBy:         row.CreatedBy,
		DroppedAt:         row.DroppedAt,
		MessageChannelID:  row.MessageChannelID,
		MessageID:         row.MessageID,
		Awarded:           row.IsAwarded,
		AwardedAt:         row.AwardedAt,
		WinnerUserID:      row.WinnerUserID,
		WinnerCharacterID: row.WinnerCharacterID,
		WinnerPriority:    decimalFromNumeric(row.WinnerPriority),
		WinnerCost:        row.WinnerCost,
	}
	if row.WinningTier != nil {
		tier := domain.BidTier(*row.WinningTier)
		drop.WinningTier = &tier
	}
	return drop
}

func mapBid(row generated.Bid) *domain.Bid {
	return &domain.Bid{
		DropID:         row.DropID,
		UserID:         row.UserID,
		CharacterID:    row.CharacterID,
		WantsUpgrade:   row.WantsUpgrade,
		WantsSidegrade: row.WantsSidegrade,
		WantsOffspec:   row.WantsOffspec,
		Priority:       decimalFromNumeric(row.Priority),
		Roll:           intPtr(row.Roll),
		Seq:            row.Seq,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
