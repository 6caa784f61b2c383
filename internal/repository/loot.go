package repository

import (
	"context"

	"github.com/argguild/epgpbot/internal/domain"
)

// LootTx extends LedgerTx with drop and bid operations so an award and its
// gear point grant commit in one transaction
type LootTx interface {
	LedgerTx

	GetDropForUpdate(ctx context.Context, id int64) (*domain.ItemDrop, error)
	GetBidForUpdate(ctx context.Context, dropID int64, userID string) (*domain.Bid, error)
	// SaveBid inserts or updates a bid. A new bid is assigned the next Seq.
	SaveBid(ctx context.Context, bid *domain.Bid) error
	// ListBids returns the drop's bids ordered by Seq
	ListBids(ctx context.Context, dropID int64) ([]domain.Bid, error)
	UpdateBidScores(ctx context.Context, bids []domain.Bid) error
	// MarkDropAwarded flips an open drop to awarded and returns the rows affected.
	// Zero rows means the drop was already awarded.
	MarkDropAwarded(ctx context.Context, award domain.DropAward) (int64, error)
}

// Loot defines the data access required by the loot service
type Loot interface {
	BeginLootTx(ctx context.Context) (LootTx, error)

	CreateDrop(ctx context.Context, drop *domain.ItemDrop) error
	GetDrop(ctx context.Context, id int64) (*domain.ItemDrop, error)
	GetDropByMessage(ctx context.Context, channelID, messageID string) (*domain.ItemDrop, error)
	SetDropMessage(ctx context.Context, id int64, channelID, messageID string) error
	ListDrops(ctx context.Context, raidID int64) ([]domain.ItemDrop, error)
	ListBids(ctx context.Context, dropID int64) ([]domain.Bid, error)
}
