package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/ledger"
	"github.com/argguild/epgpbot/internal/mocks"
)

var epKey = domain.BucketKey{UserID: "1001", TeamID: 1, Tier: 1, PointType: domain.PointTypeEP}

func keyBody(extra map[string]interface{}) map[string]interface{} {
	body := map[string]interface{}{"user_id": "1001", "team_id": 1, "tier": 1, "point_type": "ep"}
	for k, v := range extra {
		body[k] = v
	}
	return body
}

func TestHandleGrant(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockLedgerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: keyBody(map[string]interface{}{"amount": 10, "raid_id": 7, "reason": "boss kill"}),
			setupMock: func(m *mocks.MockLedgerService) {
				lctx := domain.LedgerContext{RaidID: ptr(int64(7)), Reason: "boss kill"}
				m.On("Grant", mock.Anything, epKey, int64(10), lctx).Return(&domain.LedgerEntry{
					ID: 3, Key: epKey, Type: domain.TransactionGrant, OldValue: 5, Delta: 10, NewValue: 15, Context: lctx,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"new_value":15`,
		},
		{
			name:           "Missing point type",
			body:           map[string]interface{}{"user_id": "1001", "team_id": 1, "tier": 1, "amount": 10},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"point_type":"This field is required"`,
		},
		{
			name:           "Unknown field",
			body:           keyBody(map[string]interface{}{"amount": 10, "bonus": true}),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Malformed JSON",
			body:           `{"user_id":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Untracked tier",
			body: keyBody(map[string]interface{}{"amount": 10}),
			setupMock: func(m *mocks.MockLedgerService) {
				m.On("Grant", mock.Anything, epKey, int64(10), domain.LedgerContext{}).
					Return(nil, &domain.MutationError{Op: domain.TransactionGrant, Key: epKey, Delta: 10, Err: fmt.Errorf("%w: 1", domain.ErrInvalidTier)})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   domain.ErrMsgInvalidTier,
		},
		{
			name: "Storage failure",
			body: keyBody(map[string]interface{}{"amount": 10}),
			setupMock: func(m *mocks.MockLedgerService) {
				m.On("Grant", mock.Anything, epKey, int64(10), domain.LedgerContext{}).
					Return(nil, fmt.Errorf("commit: %w", domain.ErrStorageFailure))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ErrMsgUnavailableError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mocks.NewMockLedgerService(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}
			h := NewLedgerHandler(m)

			w := serve(t, http.MethodPost, "/ledger/grant", "/ledger/grant", tt.body, h.HandleGrant)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandlePenalty_AppliesToGearPoints(t *testing.T) {
	m := mocks.NewMockLedgerService(t)
	gpKey := epKey.WithType(domain.PointTypeGP)
	m.On("Penalize", mock.Anything, gpKey, int64(50), domain.LedgerContext{Reason: "late"}).
		Return(&domain.LedgerEntry{ID: 9, Key: gpKey, Type: domain.TransactionPenalty, OldValue: 1000, Delta: -50, NewValue: 950}, nil)

	w := serve(t, http.MethodPost, "/ledger/penalty", "/ledger/penalty",
		keyBody(map[string]interface{}{"point_type": "GP", "amount": 50, "reason": "late"}), NewLedgerHandler(m).HandlePenalty)

	assert.Equal(t, http.StatusCreated, w.Code)
	entry := decodeBody[domain.LedgerEntry](t, w)
	assert.Equal(t, int64(950), entry.NewValue)
	assert.Equal(t, domain.TransactionPenalty, entry.Type)
}

func TestHandleLoadAndEdit(t *testing.T) {
	m := mocks.NewMockLedgerService(t)
	m.On("Load", mock.Anything, epKey, int64(120)).
		Return(&domain.LedgerEntry{ID: 1, Key: epKey, Type: domain.TransactionLoad, NewValue: 120}, nil)
	m.On("Edit", mock.Anything, epKey, int64(100), "typo").
		Return(&domain.LedgerEntry{ID: 2, Key: epKey, Type: domain.TransactionEdit, OldValue: 120, Delta: -20, NewValue: 100}, nil)
	h := NewLedgerHandler(m)

	w := serve(t, http.MethodPost, "/ledger/load", "/ledger/load", keyBody(map[string]interface{}{"value": 120}), h.HandleLoad)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = serve(t, http.MethodPost, "/ledger/edit", "/ledger/edit", keyBody(map[string]interface{}{"value": 100, "reason": "typo"}), h.HandleEdit)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(-20), decodeBody[domain.LedgerEntry](t, w).Delta)
}

func TestHandleDecay(t *testing.T) {
	m := mocks.NewMockLedgerService(t)
	m.On("Decay", mock.Anything, epKey, int64(10)).
		Return(&domain.LedgerEntry{ID: 4, Key: epKey, Type: domain.TransactionDecay, OldValue: 105, Delta: -11, NewValue: 94}, nil)
	h := NewLedgerHandler(m)

	w := serve(t, http.MethodPost, "/ledger/decay", "/ledger/decay", keyBody(map[string]interface{}{"percent": 10}), h.HandleDecay)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = serve(t, http.MethodPost, "/ledger/decay", "/ledger/decay", keyBody(map[string]interface{}{"percent": 0}), h.HandleDecay)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"percent"`)
}

func TestHandleDecayAll(t *testing.T) {
	m := mocks.NewMockLedgerService(t)
	m.On("DecayAll", mock.Anything, int64(1), 2, int64(10)).Return(&ledger.DecaySummary{Buckets: 4}, nil)
	m.On("DecayEverything", mock.Anything, int64(15)).Return(&ledger.DecaySummary{Buckets: 12}, nil)
	h := NewLedgerHandler(m)

	w := serve(t, http.MethodPost, "/ledger/decay-all", "/ledger/decay-all",
		map[string]interface{}{"team_id": 1, "tier": 2, "percent": 10}, h.HandleDecayAll)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, decodeBody[ledger.DecaySummary](t, w).Buckets)

	w = serve(t, http.MethodPost, "/ledger/decay-all", "/ledger/decay-all",
		map[string]interface{}{"percent": 15}, h.HandleDecayAll)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 12, decodeBody[ledger.DecaySummary](t, w).Buckets)
}

func TestHandleReverse(t *testing.T) {
	m := mocks.NewMockLedgerService(t)
	m.On("Reverse", mock.Anything, int64(3), "mistake").
		Return(&domain.LedgerEntry{ID: 5, Type: domain.TransactionReverse, ReversesEntryID: ptr(int64(3))}, nil).Once()
	m.On("Reverse", mock.Anything, int64(3), "mistake").
		Return(nil, fmt.Errorf("%w: 3", domain.ErrEntryAlreadyReversed)).Once()
	m.On("Reverse", mock.Anything, int64(1), "").
		Return(nil, fmt.Errorf("%w: INIT", domain.ErrEntryNotReversible))
	h := NewLedgerHandler(m)

	body := map[string]interface{}{"entry_id": 3, "reason": "mistake"}
	w := serve(t, http.MethodPost, "/ledger/reverse", "/ledger/reverse", body, h.HandleReverse)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = serve(t, http.MethodPost, "/ledger/reverse", "/ledger/reverse", body, h.HandleReverse)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrMsgEntryAlreadyReversed)

	w = serve(t, http.MethodPost, "/ledger/reverse", "/ledger/reverse", map[string]interface{}{"entry_id": 1}, h.HandleReverse)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrMsgEntryNotReversible)
}

func TestHandleTruncate(t *testing.T) {
	m := mocks.NewMockLedgerService(t)
	m.On("Truncate", mock.Anything, epKey).Return(nil, nil).Once()
	m.On("Truncate", mock.Anything, epKey).
		Return(&domain.LedgerEntry{ID: 6, Key: epKey, Type: domain.TransactionTruncate, OldValue: -40, Delta: 40}, nil).Once()
	h := NewLedgerHandler(m)

	w := serve(t, http.MethodPost, "/ledger/truncate", "/ledger/truncate", keyBody(nil), h.HandleTruncate)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgBalanceInRange)

	w = serve(t, http.MethodPost, "/ledger/truncate", "/ledger/truncate", keyBody(nil), h.HandleTruncate)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[TruncateResponse](t, w)
	if assert.NotNil(t, resp.Entry) {
		assert.Equal(t, int64(40), resp.Entry.Delta)
	}
}

func TestHandleGetBucket(t *testing.T) {
	m := mocks.NewMockLedgerService(t)
	m.On("GetBucket", mock.Anything, epKey).Return(&domain.PointBucket{Key: epKey, Balance: 42}, nil)
	m.On("CreateOrGetBucket", mock.Anything, epKey).Return(&domain.PointBucket{Key: epKey}, nil)
	h := NewLedgerHandler(m)

	w := serve(t, http.MethodGet, "/buckets", "/buckets?user_id=1001&team_id=1&tier=1&point_type=ep", nil, h.HandleGetBucket)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), decodeBody[domain.PointBucket](t, w).Balance)

	w = serve(t, http.MethodGet, "/buckets", "/buckets?user_id=1001&tier=1&point_type=ep", nil, h.HandleGetBucket)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "team_id")

	w = serve(t, http.MethodGet, "/buckets", "/buckets?user_id=1001&team_id=1&tier=1&point_type=xp", nil, h.HandleGetBucket)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(t, http.MethodPost, "/buckets", "/buckets", keyBody(nil), h.HandleCreateBucket)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleListEntries_BuildsFilter(t *testing.T) {
	m := mocks.NewMockLedgerService(t)
	m.On("Entries", mock.Anything, mock.MatchedBy(func(f domain.LedgerFilter) bool {
		return f.UserID == "1001" &&
			f.TeamID != nil && *f.TeamID == 1 &&
			f.Tier != nil && *f.Tier == 2 &&
			f.PointType == domain.PointTypeGP &&
			f.Type == domain.TransactionGrant &&
			f.Limit == 20 &&
			f.RaidID == nil
	})).Return([]domain.LedgerEntry{{ID: 1}, {ID: 2}}, nil)
	h := NewLedgerHandler(m)

	w := serve(t, http.MethodGet, "/ledger/entries",
		"/ledger/entries?user_id=1001&team_id=1&tier=2&point_type=gp&transaction_type=grant&limit=20", nil, h.HandleListEntries)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":2`)

	w = serve(t, http.MethodGet, "/ledger/entries", "/ledger/entries?team_id=abc", nil, h.HandleListEntries)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlePriority(t *testing.T) {
	m := mocks.NewMockLedgerService(t)
	m.On("PrioritySnapshot", mock.Anything, int64(1), 2).Return([]domain.Standing{{UserID: "1001", EP: 300, GP: 1000}}, nil)
	m.On("PrioritySnapshot", mock.Anything, int64(1), 9).Return(nil, fmt.Errorf("%w: 9", domain.ErrInvalidTier))
	h := NewLedgerHandler(m)

	w := serve(t, http.MethodGet, "/teams/{teamID}/priority", "/teams/1/priority?tier=2", nil, h.HandlePriority)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"1001"`)

	w = serve(t, http.MethodGet, "/teams/{teamID}/priority", "/teams/1/priority?tier=9", nil, h.HandlePriority)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(t, http.MethodGet, "/teams/{teamID}/priority", "/teams/1/priority", nil, h.HandlePriority)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "tier")

	w = serve(t, http.MethodGet, "/teams/{teamID}/priority", "/teams/x/priority?tier=2", nil, h.HandlePriority)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
