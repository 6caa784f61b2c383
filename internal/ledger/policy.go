package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/argguild/epgpbot/internal/domain"
)

// Policy holds the balance rules shared by every mutation
type Policy struct {
	// BaseGP is the floor of every gear bucket and its initial balance
	BaseGP int64
}

// NewPolicy returns a policy with the given gear floor, or the default when baseGP is not positive
func NewPolicy(baseGP int64) Policy {
	if baseGP <= 0 {
		baseGP = domain.DefaultBaseGP
	}
	return Policy{BaseGP: baseGP}
}

// Mutation is the computed outcome of an operation on one bucket.
// Old + Delta == New always holds; Requested is the delta the caller asked for.
type Mutation struct {
	Type            domain.TransactionType
	Old             int64
	Requested       int64
	Delta           int64
	New             int64
	NoOp            bool
	ReversesEntryID *int64
}

// Op computes a mutation from the current balance of a bucket
type Op interface {
	Type() domain.TransactionType
	// Requested is the delta reported in errors when the op fails
	Requested() int64
	Apply(p Policy, pointType domain.PointType, old int64) (Mutation, error)
}

// floor applies the gear floor to a proposed balance
func (p Policy) floor(pointType domain.PointType, proposed int64) (int64, error) {
	switch pointType {
	case domain.PointTypeGP:
		if proposed < p.BaseGP {
			return p.BaseGP, nil
		}
		return proposed, nil
	case domain.PointTypeEP:
		// effort may go negative ("debt"); Truncate clears it
		return proposed, nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownPointType, pointType)
	}
}

// Initial returns the balance a new bucket starts with
func (p Policy) Initial(pointType domain.PointType) (int64, error) {
	switch pointType {
	case domain.PointTypeEP:
		return 0, nil
	case domain.PointTypeGP:
		return p.BaseGP, nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownPointType, pointType)
	}
}

func mutation(t domain.TransactionType, old, requested, next int64) Mutation {
	return Mutation{Type: t, Old: old, Requested: requested, Delta: next - old, New: next}
}

// InitOp resets a bucket to its initial balance
type InitOp struct{}

func (InitOp) Type() domain.TransactionType { return domain.TransactionInit }
func (InitOp) Requested() int64 { return 0 }

func (InitOp) Apply(p Policy, pointType domain.PointType, old int64) (Mutation, error) {
	initial, err := p.Initial(pointType)
	if err != nil {
		return Mutation{}, err
	}
	return mutation(domain.TransactionInit, old, initial-old, initial), nil
}

// GrantOp adds Delta, which may be negative. Gear balances are clamped at the
// floor and the recorded delta is the applied one.
type GrantOp struct {
	Delta int64
}

func (o GrantOp) Type() domain.TransactionType { return domain.TransactionGrant }
func (o GrantOp) Requested() int64 { return o.Delta }

func (o GrantOp) Apply(p Policy, pointType domain.PointType, old int64) (Mutation, error) {
	next, err := p.floor(pointType, old+o.Delta)
	if err != nil {
		return Mutation{}, err
	}
	return mutation(domain.TransactionGrant, old, o.Delta, next), nil
}

// PenaltyOp subtracts a positive Amount under the same clamp rules as a grant
type PenaltyOp struct {
	Amount int64
}

func (o PenaltyOp) Type() domain.TransactionType { return domain.TransactionPenalty }
func (o PenaltyOp) Requested() int64 { return -o.Amount }

func (o PenaltyOp) Apply(p Policy, pointType domain.PointType, old int64) (Mutation, error) {
	if o.Amount <= 0 {
		return Mutation{}, fmt.Errorf("%w: %d", domain.ErrNonPositiveAmount, o.Amount)
	}
	next, err := p.floor(pointType, old-o.Amount)
	if err != nil {
		return Mutation{}, err
	}
	return mutation(domain.TransactionPenalty, old, -o.Amount, next), nil
}

// LoadOp sets an absolute balance without any clamp
type LoadOp struct {
	Value int64
}

func (o LoadOp) Type() domain.TransactionType { return domain.TransactionLoad }
func (o LoadOp) Requested() int64 { return o.Value }

func (o LoadOp) Apply(p Policy, pointType domain.PointType, old int64) (Mutation, error) {
	if !pointType.Valid() {
		return Mutation{}, fmt.Errorf("%w: %q", domain.ErrUnknownPointType, pointType)
	}
	return mutation(domain.TransactionLoad, old, o.Value-old, o.Value), nil
}

// EditOp sets an absolute balance by hand. Gear balances are clamped at the floor.
type EditOp struct {
	Value int64
}

func (o EditOp) Type() domain.TransactionType { return domain.TransactionEdit }
func (o EditOp) Requested() int64 { return o.Value }

func (o EditOp) Apply(p Policy, pointType domain.PointType, old int64) (Mutation, error) {
	next, err := p.floor(pointType, o.Value)
	if err != nil {
		return Mutation{}, err
	}
	return mutation(domain.TransactionEdit, old, o.Value-old, next), nil
}

// DecayOp shrinks a balance by Percent, rounding half away from zero.
// Negative effort balances are left alone so decay never raises a balance
// except through the gear floor.
type DecayOp struct {
	Percent int64
}

func (o DecayOp) Type() domain.TransactionType { return domain.TransactionDecay }
func (o DecayOp) Requested() int64 { return 0 }

func (o DecayOp) Apply(p Policy, pointType domain.PointType, old int64) (Mutation, error) {
	if err := ValidateDecayPercent(o.Percent); err != nil {
		return Mutation{}, err
	}

	decayed := old
	if old > 0 {
		decayed = decimal.NewFromInt(old).
			Mul(decimal.NewFromInt(100 - o.Percent)).
			DivRound(decimal.NewFromInt(100), 0).
			IntPart()
	}

	next, err := p.floor(pointType, decayed)
	if err != nil {
		return Mutation{}, err
	}
	return mutation(domain.TransactionDecay, old, decayed-old, next), nil
}

// ValidateDecayPercent requires 0 < percent < 100
func ValidateDecayPercent(percent int64) error {
	if percent <= 0 || percent >= 100 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidDecayPercent, percent)
	}
	return nil
}

// ReverseOp undoes the applied delta of an earlier entry
type ReverseOp struct {
	Entry domain.LedgerEntry
}

func (o ReverseOp) Type() domain.TransactionType { return domain.TransactionReverse }
func (o ReverseOp) Requested() int64 { return -o.Entry.Delta }

func (o ReverseOp) Apply(p Policy, pointType domain.PointType, old int64) (Mutation, error) {
	if !o.Entry.Type.Reversible() {
		return Mutation{}, fmt.Errorf("%w: entry %d is %s", domain.ErrEntryNotReversible, o.Entry.ID, o.Entry.Type)
	}
	next, err := p.floor(pointType, old-o.Entry.Delta)
	if err != nil {
		return Mutation{}, err
	}
	m := mutation(domain.TransactionReverse, old, -o.Entry.Delta, next)
	id := o.Entry.ID
	m.ReversesEntryID = &id
	return m, nil
}

// TruncateOp clears effort debt and restores a gear balance that sits below
// the floor. Balances already in range are a no-op.
type TruncateOp struct{}

func (TruncateOp) Type() domain.TransactionType { return domain.TransactionTruncate }
func (TruncateOp) Requested() int64 { return 0 }

func (TruncateOp) Apply(p Policy, pointType domain.PointType, old int64) (Mutation, error) {
	var next int64
	switch pointType {
	case domain.PointTypeEP:
		next = old
		if old < 0 {
			next = 0
		}
	case domain.PointTypeGP:
		next = old
		if old < p.BaseGP {
			next = p.BaseGP
		}
	default:
		return Mutation{}, fmt.Errorf("%w: %q", domain.ErrUnknownPointType, pointType)
	}
	m := mutation(domain.TransactionTruncate, old, next-old, next)
	m.NoOp = next == old
	return m, nil
}
