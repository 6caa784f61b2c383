package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/mocks"
)

func TestHandleRecordDrop(t *testing.T) {
	m := mocks.NewMockLootService(t)
	m.On("RecordDrop", mock.Anything, int64(5), int64(16963), "1001").Return(&domain.ItemDrop{ID: 11, RaidID: 5, ItemID: 16963}, nil).Once()
	m.On("RecordDrop", mock.Anything, int64(5), int64(1), "").Return(nil, fmt.Errorf("%w: 1", domain.ErrItemNotFound)).Once()
	h := NewLootHandler(m)

	w := serve(t, http.MethodPost, "/drops", "/drops", RecordDropRequest{RaidID: 5, ItemID: 16963, CreatedBy: "1001"}, h.HandleRecordDrop)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(11), decodeBody[domain.ItemDrop](t, w).ID)

	w = serve(t, http.MethodPost, "/drops", "/drops", RecordDropRequest{RaidID: 5, ItemID: 1}, h.HandleRecordDrop)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrMsgItemNotFound)
}

func TestHandleSubmitBid(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockLootService)
		expectedStatus int
	}{
		{
			name: "Set defaults to true",
			body: BidRequest{UserID: "1001", Tier: "Upgrade"},
			setupMock: func(m *mocks.MockLootService) {
				m.On("SubmitBid", mock.Anything, int64(11), "1001", domain.BidTierUpgrade, true).
					Return(&domain.Bid{DropID: 11, UserID: "1001", WantsUpgrade: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Clear a flag",
			body: BidRequest{UserID: "1001", Tier: "offspec", Set: ptr(false)},
			setupMock: func(m *mocks.MockLootService) {
				m.On("SubmitBid", mock.Anything, int64(11), "1001", domain.BidTierOffspec, false).
					Return(&domain.Bid{DropID: 11, UserID: "1001"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Drop already awarded",
			body: BidRequest{UserID: "1001", Tier: "sidegrade"},
			setupMock: func(m *mocks.MockLootService) {
				m.On("SubmitBid", mock.Anything, int64(11), "1001", domain.BidTierSidegrade, true).
					Return(nil, fmt.Errorf("%w: 11", domain.ErrDropAlreadyAwarded))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Unknown tier",
			body:           BidRequest{UserID: "1001", Tier: "greed"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mocks.NewMockLootService(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}
			w := serve(t, http.MethodPost, "/drops/{dropID}/bids", "/drops/11/bids", tt.body, NewLootHandler(m).HandleSubmitBid)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestHandlePreviewAndAward(t *testing.T) {
	upgrade := domain.BidTierUpgrade
	pr := decimal.RequireFromString("0.35")
	cost := int64(120)
	ranking := []domain.RankedBid{{Bid: domain.Bid{UserID: "1001", WantsUpgrade: true}, Score: pr, EP: 350, GP: 1000}}

	m := mocks.NewMockLootService(t)
	m.On("Preview", mock.Anything, int64(11)).Return(&domain.DropPreview{
		Drop:     domain.ItemDrop{ID: 11},
		Tier:     &upgrade,
		Rankings: map[domain.BidTier][]domain.RankedBid{upgrade: ranking},
	}, nil)
	m.On("Award", mock.Anything, int64(11)).Return(&domain.AwardResult{
		DropID: 11, Tier: &upgrade, Winner: &ranking[0], Priority: &pr, Cost: &cost, Ranking: ranking,
	}, nil).Once()
	m.On("Award", mock.Anything, int64(11)).Return(nil, fmt.Errorf("%w: 11", domain.ErrDropAlreadyAwarded)).Once()
	h := NewLootHandler(m)

	w := serve(t, http.MethodGet, "/drops/{dropID}/preview", "/drops/11/preview", nil, h.HandlePreview)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"upgrade":[`)

	w = serve(t, http.MethodPost, "/drops/{dropID}/award", "/drops/11/award", nil, h.HandleAward)
	assert.Equal(t, http.StatusOK, w.Code)
	result := decodeBody[domain.AwardResult](t, w)
	if assert.NotNil(t, result.Winner) {
		assert.Equal(t, "1001", result.Winner.Bid.UserID)
	}
	assert.Equal(t, int64(120), *result.Cost)
	assert.True(t, pr.Equal(*result.Priority))

	w = serve(t, http.MethodPost, "/drops/{dropID}/award", "/drops/11/award", nil, h.HandleAward)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrMsgDropAlreadyAwarded)
}

func TestHandleGetAndListDrops(t *testing.T) {
	m := mocks.NewMockLootService(t)
	m.On("GetDrop", mock.Anything, int64(11)).Return(&domain.ItemDrop{ID: 11, ItemID: 16963}, nil)
	m.On("GetDrop", mock.Anything, int64(12)).Return(nil, fmt.Errorf("%w: 12", domain.ErrDropNotFound))
	m.On("ListDrops", mock.Anything, int64(5)).Return([]domain.ItemDrop{{ID: 11}, {ID: 13}}, nil)
	h := NewLootHandler(m)

	w := serve(t, http.MethodGet, "/drops/{dropID}", "/drops/11", nil, h.HandleGetDrop)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(16963), decodeBody[domain.ItemDrop](t, w).ItemID)

	w = serve(t, http.MethodGet, "/drops/{dropID}", "/drops/12", nil, h.HandleGetDrop)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, http.MethodGet, "/raids/{raidID}/drops", "/raids/5/drops", nil, h.HandleListDrops)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":13`)
}
