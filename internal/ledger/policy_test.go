package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argguild/epgpbot/internal/domain"
)

var testPolicy = NewPolicy(1000)

func TestGrantOp(t *testing.T) {
	tests := []struct {
		name      string
		pointType domain.PointType
		old       int64
		delta     int64
		wantNew   int64
		wantDelta int64
	}{
		{"effort grant", domain.PointTypeEP, 100, 50, 150, 50},
		{"effort may go negative", domain.PointTypeEP, 10, -30, -20, -30},
		{"gear grant", domain.PointTypeGP, 1000, 120, 1120, 120},
		{"gear clamped at floor", domain.PointTypeGP, 1100, -500, 1000, -100},
		{"gear already at floor", domain.PointTypeGP, 1000, -1, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := GrantOp{Delta: tt.delta}.Apply(testPolicy, tt.pointType, tt.old)

			require.NoError(t, err)
			assert.Equal(t, tt.wantNew, m.New)
			assert.Equal(t, tt.wantDelta, m.Delta)
			assert.Equal(t, tt.delta, m.Requested)
			assert.Equal(t, m.Old+m.Delta, m.New)
			assert.Equal(t, domain.TransactionGrant, m.Type)
		})
	}
}

func TestDecayOp(t *testing.T) {
	tests := []struct {
		name      string
		pointType domain.PointType
		old       int64
		percent   int64
		wantNew   int64
	}{
		{"effort 10%", domain.PointTypeEP, 1000, 10, 900},
		{"half rounds away from zero", domain.PointTypeEP, 5, 10, 5},
		{"above half rounds up", domain.PointTypeEP, 14, 10, 13},
		{"below half rounds down", domain.PointTypeEP, 7, 95, 0},
		{"negative effort untouched", domain.PointTypeEP, -40, 10, -40},
		{"gear above floor", domain.PointTypeGP, 1500, 10, 1350},
		{"gear clamped to floor", domain.PointTypeGP, 1000, 10, 1000},
		{"gear crossing floor", domain.PointTypeGP, 1050, 10, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := DecayOp{Percent: tt.percent}.Apply(testPolicy, tt.pointType, tt.old)

			require.NoError(t, err)
			assert.Equal(t, tt.wantNew, m.New)
			assert.Equal(t, m.Old+m.Delta, m.New)
		})
	}
}

func TestDecayOp_LeavesEffortDebt(t *testing.T) {
	for _, old := range []int64{-1, -40, -5000} {
		for _, p := range []int64{1, 50, 99} {
			m, err := DecayOp{Percent: p}.Apply(testPolicy, domain.PointTypeEP, old)

			require.NoError(t, err)
			assert.Equal(t, old, m.New, "old %d percent %d", old, p)
			assert.Zero(t, m.Delta)
			assert.Equal(t, domain.TransactionDecay, m.Type)
		}
	}
}

func TestDecayOp_RejectsPercentOutsideOpenInterval(t *testing.T) {
	for _, p := range []int64{0, 100, -1, 150} {
		_, err := DecayOp{Percent: p}.Apply(testPolicy, domain.PointTypeEP, 100)

		assert.ErrorIs(t, err, domain.ErrInvalidDecayPercent, "percent %d", p)
		assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	}
}

func TestDecayOp_NeverIncreasesBalanceAboveFloor(t *testing.T) {
	for _, pt := range domain.PointTypes {
		for old := int64(-50); old <= 3000; old += 37 {
			for _, p := range []int64{1, 10, 33, 50, 99} {
				m, err := DecayOp{Percent: p}.Apply(testPolicy, pt, old)
				require.NoError(t, err)
				if pt == domain.PointTypeGP && old < testPolicy.BaseGP {
					assert.Equal(t, testPolicy.BaseGP, m.New)
					continue
				}
				assert.LessOrEqual(t, m.New, old, "type %s old %d percent %d", pt, old, p)
			}
		}
	}
}

func TestLoadOp_NoClamp(t *testing.T) {
	m, err := LoadOp{Value: 250}.Apply(testPolicy, domain.PointTypeGP, 1200)

	require.NoError(t, err)
	assert.Equal(t, int64(250), m.New)
	assert.Equal(t, int64(-950), m.Delta)
}

func TestEditOp_ClampsGear(t *testing.T) {
	m, err := EditOp{Value: 250}.Apply(testPolicy, domain.PointTypeGP, 1200)

	require.NoError(t, err)
	assert.Equal(t, int64(1000), m.New)
	assert.Equal(t, int64(-200), m.Delta)
}

func TestInitOp(t *testing.T) {
	ep, err := InitOp{}.Apply(testPolicy, domain.PointTypeEP, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ep.New)

	gp, err := InitOp{}.Apply(testPolicy, domain.PointTypeGP, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), gp.New)
	assert.Equal(t, int64(1000), gp.Delta)
}

func TestPenaltyOp(t *testing.T) {
	m, err := PenaltyOp{Amount: 30}.Apply(testPolicy, domain.PointTypeEP, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(-20), m.New)
	assert.Equal(t, domain.TransactionPenalty, m.Type)

	_, err = PenaltyOp{Amount: 0}.Apply(testPolicy, domain.PointTypeEP, 10)
	assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)
}

func TestReverseOp(t *testing.T) {
	grant := domain.LedgerEntry{ID: 7, Type: domain.TransactionGrant, Delta: 200}

	m, err := ReverseOp{Entry: grant}.Apply(testPolicy, domain.PointTypeGP, 1150)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), m.New, "reversal respects the gear floor")
	require.NotNil(t, m.ReversesEntryID)
	assert.Equal(t, int64(7), *m.ReversesEntryID)

	_, err = ReverseOp{Entry: domain.LedgerEntry{ID: 1, Type: domain.TransactionDecay}}.Apply(testPolicy, domain.PointTypeGP, 1000)
	assert.ErrorIs(t, err, domain.ErrEntryNotReversible)
}

func TestTruncateOp(t *testing.T) {
	m, err := TruncateOp{}.Apply(testPolicy, domain.PointTypeEP, -25)
	require.NoError(t, err)
	assert.Equal(t, int64(0), m.New)
	assert.False(t, m.NoOp)

	m, err = TruncateOp{}.Apply(testPolicy, domain.PointTypeGP, 400)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), m.New)

	m, err = TruncateOp{}.Apply(testPolicy, domain.PointTypeEP, 25)
	require.NoError(t, err)
	assert.True(t, m.NoOp)
}

func TestOps_UnknownPointTypeIsInvalidState(t *testing.T) {
	ops := []Op{InitOp{}, GrantOp{Delta: 1}, PenaltyOp{Amount: 1}, LoadOp{Value: 1}, EditOp{Value: 1}, DecayOp{Percent: 10}, TruncateOp{}}
	for _, op := range ops {
		_, err := op.Apply(testPolicy, domain.PointType("XP"), 100)

		assert.ErrorIs(t, err, domain.ErrUnknownPointType, "%T", op)
		assert.ErrorIs(t, err, domain.ErrInvalidState, "%T", op)
	}
}
