package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/argguild/epgpbot/internal/concurrency"
	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/event"
	"github.com/argguild/epgpbot/internal/logger"
	"github.com/argguild/epgpbot/internal/metrics"
	"github.com/argguild/epgpbot/internal/repository"
)

// DecaySummary reports the outcome of a decay sweep
type DecaySummary struct {
	Buckets int                  `json:"buckets"`
	Entries []domain.LedgerEntry `json:"entries"`
}

// Service defines the interface for point ledger operations
type Service interface {
	// CreateOrGetBucket returns the bucket, creating and initializing it on first use
	CreateOrGetBucket(ctx context.Context, key domain.BucketKey) (*domain.PointBucket, error)
	// EnsureBuckets creates every tracked tier and point type bucket of a user in a team
	EnsureBuckets(ctx context.Context, userID string, teamID int64) ([]domain.PointBucket, error)

	Grant(ctx context.Context, key domain.BucketKey, delta int64, lctx domain.LedgerContext) (*domain.LedgerEntry, error)
	Penalize(ctx context.Context, key domain.BucketKey, amount int64, lctx domain.LedgerContext) (*domain.LedgerEntry, error)
	Edit(ctx context.Context, key domain.BucketKey, value int64, reason string) (*domain.LedgerEntry, error)
	Load(ctx context.Context, key domain.BucketKey, value int64) (*domain.LedgerEntry, error)
	Decay(ctx context.Context, key domain.BucketKey, percent int64) (*domain.LedgerEntry, error)
	DecayAll(ctx context.Context, teamID int64, tier int, percent int64) (*DecaySummary, error)
	DecayEverything(ctx context.Context, percent int64) (*DecaySummary, error)
	Reverse(ctx context.Context, entryID int64, reason string) (*domain.LedgerEntry, error)
	// Truncate returns a nil entry when the balance is already in range
	Truncate(ctx context.Context, key domain.BucketKey) (*domain.LedgerEntry, error)

	GetBucket(ctx context.Context, key domain.BucketKey) (*domain.PointBucket, error)
	GetStanding(ctx context.Context, userID string, teamID int64, tier int) (*domain.Standing, error)
	PrioritySnapshot(ctx context.Context, teamID int64, tier int) ([]domain.Standing, error)
	Entries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error)

	// ApplyInTx runs op against key inside a caller-owned transaction. The
	// caller commits and publishes the returned entry. A nil entry means the
	// op was a no-op.
	ApplyInTx(ctx context.Context, tx repository.LedgerTx, key domain.BucketKey, op Op, lctx domain.LedgerContext) (*domain.LedgerEntry, error)
	Policy() Policy
}

// UserDirectory resolves display names for priority reports
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type service struct {
	repo   repository.Ledger
	locks  *concurrency.LockManager
	bus    event.Bus
	users  UserDirectory
	policy Policy
	now    func() time.Time
}

// NewService creates a new ledger service. users may be nil.
func NewService(repo repository.Ledger, locks *concurrency.LockManager, bus event.Bus, users UserDirectory, policy Policy) Service {
	return &service{
		repo:   repo,
		locks:  locks,
		bus:    bus,
		users:  users,
		policy: policy,
		now:    time.Now,
	}
}

func (s *service) Policy() Policy {
	return s.policy
}

// ValidateKey checks a bucket identity before any storage access
func ValidateKey(key domain.BucketKey) error {
	if key.UserID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidParameter, ErrMsgEmptyUserID)
	}
	if !key.PointType.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPointType, key.PointType)
	}
	if !domain.TierTracked(key.Tier) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidTier, key.Tier)
	}
	return nil
}

func (s *service) CreateOrGetBucket(ctx context.Context, key domain.BucketKey) (*domain.PointBucket, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	buckets, err := s.ensure(ctx, []domain.BucketKey{key})
	if err != nil {
		return nil, err
	}
	return &buckets[0], nil
}

func (s *service) EnsureBuckets(ctx context.Context, userID string, teamID int64) ([]domain.PointBucket, error) {
	var keys []domain.BucketKey
	for _, tier := range domain.TrackedTiers() {
		for _, pt := range domain.PointTypes {
			keys = append(keys, domain.BucketKey{UserID: userID, TeamID: teamID, Tier: tier, PointType: pt})
		}
	}
	if err := ValidateKey(keys[0]); err != nil {
		return nil, err
	}
	return s.ensure(ctx, keys)
}

// ensure creates missing buckets among keys in one transaction, writing an
// Init entry for each bucket it creates
func (s *service) ensure(ctx context.Context, keys []domain.BucketKey) ([]domain.PointBucket, error) {
	ctx = context.WithoutCancel(ctx)
	log := logger.FromContext(ctx)

	lockKeys := make([]string, len(keys))
	for i, k := range keys {
		lockKeys[i] = k.String()
	}
	unlock := s.locks.LockAll(lockKeys...)
	defer unlock()

	tx, err := s.repo.BeginLedgerTx(ctx)
	if err != nil {
		return nil, mutationError(InitOp{}, keys[0], fmt.Errorf("%s: %w", ErrContextBeginTx, err))
	}
	defer repository.SafeRollback(ctx, tx)

	buckets := make([]domain.PointBucket, 0, len(keys))
	var created []domain.LedgerEntry
	for _, key := range keys {
		bucket, entry, err := s.ensureInTx(ctx, tx, key)
		if err != nil {
			metrics.LedgerMutationFailures.WithLabelValues(string(domain.TransactionInit)).Inc()
			return nil, err
		}
		buckets = append(buckets, *bucket)
		if entry != nil {
			created = append(created, *entry)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.LedgerMutationFailures.WithLabelValues(string(domain.TransactionInit)).Inc()
		return nil, mutationError(InitOp{}, keys[0], fmt.Errorf("%s: %w", ErrContextCommitTx, err))
	}

	if len(created) > 0 {
		log.Info(LogMsgBucketsCreated, "user_id", keys[0].UserID, "team_id", keys[0].TeamID, "count", len(created))
	}
	PublishEntries(ctx, s.bus, created)
	return buckets, nil
}

func (s *service) ensureInTx(ctx context.Context, tx repository.LedgerTx, key domain.BucketKey) (*domain.PointBucket, *domain.LedgerEntry, error) {
	existing, err := tx.GetBucketForUpdate(ctx, key)
	if err != nil {
		return nil, nil, mutationError(InitOp{}, key, err)
	}
	if existing != nil {
		return existing, nil, nil
	}

	now := s.now()
	inserted, err := tx.InsertBucket(ctx, &domain.PointBucket{Key: key, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		return nil, nil, mutationError(InitOp{}, key, err)
	}
	if !inserted {
		// created by another process between the read and the insert
		existing, err = tx.GetBucketForUpdate(ctx, key)
		if err != nil {
			return nil, nil, mutationError(InitOp{}, key, err)
		}
		if existing == nil {
			return nil, nil, mutationError(InitOp{}, key, domain.ErrConflict)
		}
		return existing, nil, nil
	}

	entry, err := s.ApplyInTx(ctx, tx, key, InitOp{}, domain.LedgerContext{})
	if err != nil {
		return nil, nil, err
	}
	return &domain.PointBucket{Key: key, Balance: entry.NewValue, CreatedAt: now, UpdatedAt: entry.CreatedAt}, entry, nil
}

func (s *service) Grant(ctx context.Context, key domain.BucketKey, delta int64, lctx domain.LedgerContext) (*domain.LedgerEntry, error) {
	return s.apply(ctx, key, GrantOp{Delta: delta}, lctx)
}

func (s *service) Penalize(ctx context.Context, key domain.BucketKey, amount int64, lctx domain.LedgerContext) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, mutationError(PenaltyOp{Amount: amount}, key, fmt.Errorf("%w: %d", domain.ErrNonPositiveAmount, amount))
	}
	return s.apply(ctx, key, PenaltyOp{Amount: amount}, lctx)
}

func (s *service) Edit(ctx context.Context, key domain.BucketKey, value int64, reason string) (*domain.LedgerEntry, error) {
	return s.apply(ctx, key, EditOp{Value: value}, domain.LedgerContext{Reason: reason})
}

func (s *service) Load(ctx context.Context, key domain.BucketKey, value int64) (*domain.LedgerEntry, error) {
	return s.apply(ctx, key, LoadOp{Value: value}, domain.LedgerContext{})
}

func (s *service) Decay(ctx context.Context, key domain.BucketKey, percent int64) (*domain.LedgerEntry, error) {
	if err := ValidateDecayPercent(percent); err != nil {
		return nil, mutationError(DecayOp{Percent: percent}, key, err)
	}
	return s.apply(ctx, key, DecayOp{Percent: percent}, domain.LedgerContext{})
}

func (s *service) Truncate(ctx context.Context, key domain.BucketKey) (*domain.LedgerEntry, error) {
	return s.apply(ctx, key, TruncateOp{}, domain.LedgerContext{})
}

func (s *service) Reverse(ctx context.Context, entryID int64, reason string) (*domain.LedgerEntry, error) {
	ctx = context.WithoutCancel(ctx)

	original, err := s.repo.GetLedgerEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetEntry, err)
	}
	if original == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrLedgerEntryNotFound, entryID)
	}
	if !original.Type.Reversible() {
		return nil, mutationError(ReverseOp{Entry: *original}, original.Key,
			fmt.Errorf("%w: entry %d is %s", domain.ErrEntryNotReversible, entryID, original.Type))
	}

	unlock := s.locks.Lock(original.Key.String())
	defer unlock()

	op := ReverseOp{Entry: *original}
	tx, err := s.repo.BeginLedgerTx(ctx)
	if err != nil {
		return nil, s.fail(op, original.Key, err)
	}
	defer repository.SafeRollback(ctx, tx)

	reversed, err := tx.HasReversal(ctx, entryID)
	if err != nil {
		return nil, s.fail(op, original.Key, err)
	}
	if reversed {
		return nil, s.fail(op, original.Key, fmt.Errorf("%w: %d", domain.ErrEntryAlreadyReversed, entryID))
	}

	lctx := original.Context
	lctx.Reason = reason
	entry, err := s.ApplyInTx(ctx, tx, original.Key, op, lctx)
	if err != nil {
		metrics.LedgerMutationFailures.WithLabelValues(string(op.Type())).Inc()
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, s.fail(op, original.Key, err)
	}

	logger.FromContext(ctx).Info(LogMsgEntryReversed, "entry_id", entryID, "reversal_id", entry.ID)
	PublishEntries(ctx, s.bus, []domain.LedgerEntry{*entry})
	return entry, nil
}

// apply runs one op against one bucket under its lock in its own transaction
func (s *service) apply(ctx context.Context, key domain.BucketKey, op Op, lctx domain.LedgerContext) (*domain.LedgerEntry, error) {
	if err := ValidateKey(key); err != nil {
		return nil, mutationError(op, key, err)
	}
	// Ledger mutations are short and are not abandoned halfway
	ctx = context.WithoutCancel(ctx)

	unlock := s.locks.Lock(key.String())
	defer unlock()

	tx, err := s.repo.BeginLedgerTx(ctx)
	if err != nil {
		return nil, s.fail(op, key, err)
	}
	defer repository.SafeRollback(ctx, tx)

	entry, err := s.ApplyInTx(ctx, tx, key, op, lctx)
	if err != nil {
		metrics.LedgerMutationFailures.WithLabelValues(string(op.Type())).Inc()
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, s.fail(op, key, err)
	}

	logger.FromContext(ctx).Debug(LogMsgMutationApplied,
		"bucket", key.String(), "type", entry.Type, "old", entry.OldValue, "delta", entry.Delta, "new", entry.NewValue)
	PublishEntries(ctx, s.bus, []domain.LedgerEntry{*entry})
	return entry, nil
}

func (s *service) fail(op Op, key domain.BucketKey, err error) error {
	metrics.LedgerMutationFailures.WithLabelValues(string(op.Type())).Inc()
	return mutationError(op, key, err)
}

func (s *service) ApplyInTx(ctx context.Context, tx repository.LedgerTx, key domain.BucketKey, op Op, lctx domain.LedgerContext) (*domain.LedgerEntry, error) {
	bucket, err := tx.GetBucketForUpdate(ctx, key)
	if err != nil {
		return nil, mutationError(op, key, err)
	}
	if bucket == nil {
		return nil, mutationError(op, key, domain.ErrBucketNotFound)
	}

	m, err := op.Apply(s.policy, key.PointType, bucket.Balance)
	if err != nil {
		return nil, mutationError(op, key, err)
	}
	if m.NoOp {
		return nil, nil
	}

	now := s.now()
	if err := tx.UpdateBucketBalance(ctx, key, m.New, now); err != nil {
		return nil, mutationError(op, key, err)
	}

	entry := &domain.LedgerEntry{
		Key:             key,
		CreatedAt:       now,
		Type:            m.Type,
		OldValue:        m.Old,
		Delta:           m.Delta,
		NewValue:        m.New,
		Context:         lctx,
		ReversesEntryID: m.ReversesEntryID,
	}
	if err := tx.InsertLedgerEntry(ctx, entry); err != nil {
		return nil, mutationError(op, key, err)
	}
	return entry, nil
}

func (s *service) DecayAll(ctx context.Context, teamID int64, tier int, percent int64) (*DecaySummary, error) {
	if err := ValidateDecayPercent(percent); err != nil {
		return nil, err
	}
	if !domain.TierTracked(tier) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidTier, tier)
	}

	buckets, err := s.repo.ListBuckets(ctx, domain.BucketFilter{TeamID: &teamID, Tier: &tier})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListBuckets, err)
	}
	return s.decayScope(ctx, teamID, tier, percent, buckets)
}

// decayScope decays each bucket in its own transaction. The first failure
// stops the sweep and is returned together with the work done so far.
func (s *service) decayScope(ctx context.Context, teamID int64, tier int, percent int64, buckets []domain.PointBucket) (*DecaySummary, error) {
	ctx = context.WithoutCancel(ctx)
	summary := &DecaySummary{}
	for _, b := range buckets {
		entry, err := s.apply(ctx, b.Key, DecayOp{Percent: percent}, domain.LedgerContext{})
		if err != nil {
			logger.FromContext(ctx).Error(LogMsgDecayAborted, "team_id", teamID, "tier", tier, "bucket", b.Key.String(), "error", err)
			return summary, err
		}
		summary.Buckets++
		if entry != nil {
			summary.Entries = append(summary.Entries, *entry)
		}
	}

	logger.FromContext(ctx).Info(LogMsgDecayCompleted, "team_id", teamID, "tier", tier, "percent", percent, "buckets", summary.Buckets)
	if err := s.bus.Publish(ctx, event.NewDecayCompletedEvent(teamID, tier, percent, summary.Buckets)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
	}
	return summary, nil
}

// DecayEverything decays every bucket of every team in every tracked tier.
// A failing scope does not stop the others; all failures are returned joined.
func (s *service) DecayEverything(ctx context.Context, percent int64) (*DecaySummary, error) {
	if err := ValidateDecayPercent(percent); err != nil {
		return nil, err
	}

	buckets, err := s.repo.ListBuckets(ctx, domain.BucketFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListBuckets, err)
	}

	type scope struct {
		team int64
		tier int
	}
	scoped := make(map[scope][]domain.PointBucket)
	var order []scope
	for _, b := range buckets {
		sc := scope{b.Key.TeamID, b.Key.Tier}
		if _, ok := scoped[sc]; !ok {
			order = append(order, sc)
		}
		scoped[sc] = append(scoped[sc], b)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].team != order[j].team {
			return order[i].team < order[j].team
		}
		return order[i].tier < order[j].tier
	})

	total := &DecaySummary{}
	var errs []error
	for _, sc := range order {
		summary, err := s.decayScope(ctx, sc.team, sc.tier, percent, scoped[sc])
		if summary != nil {
			total.Buckets += summary.Buckets
			total.Entries = append(total.Entries, summary.Entries...)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("team %d tier %d: %w", sc.team, sc.tier, err))
		}
	}
	return total, errors.Join(errs...)
}

func (s *service) GetBucket(ctx context.Context, key domain.BucketKey) (*domain.PointBucket, error) {
	bucket, err := s.repo.GetBucket(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetBucket, err)
	}
	if bucket == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrBucketNotFound, key)
	}
	return bucket, nil
}

func (s *service) GetStanding(ctx context.Context, userID string, teamID int64, tier int) (*domain.Standing, error) {
	key := domain.BucketKey{UserID: userID, TeamID: teamID, Tier: tier, PointType: domain.PointTypeEP}
	ep, err := s.GetBucket(ctx, key)
	if err != nil {
		return nil, err
	}
	gp, err := s.GetBucket(ctx, key.WithType(domain.PointTypeGP))
	if err != nil {
		return nil, err
	}
	return &domain.Standing{
		UserID: userID,
		EP:     ep.Balance,
		GP:     gp.Balance,
		PR:     domain.PriorityRatio(ep.Balance, gp.Balance),
	}, nil
}

func (s *service) PrioritySnapshot(ctx context.Context, teamID int64, tier int) ([]domain.Standing, error) {
	if !domain.TierTracked(tier) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidTier, tier)
	}
	buckets, err := s.repo.ListBuckets(ctx, domain.BucketFilter{TeamID: &teamID, Tier: &tier})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListBuckets, err)
	}

	type pair struct {
		ep, gp       int64
		hasEP, hasGP bool
	}
	byUser := make(map[string]*pair)
	for _, b := range buckets {
		p, ok := byUser[b.Key.UserID]
		if !ok {
			p = &pair{}
			byUser[b.Key.UserID] = p
		}
		switch b.Key.PointType {
		case domain.PointTypeEP:
			p.ep, p.hasEP = b.Balance, true
		case domain.PointTypeGP:
			p.gp, p.hasGP = b.Balance, true
		}
	}

	names := s.displayNames(ctx)
	standings := make([]domain.Standing, 0, len(byUser))
	for userID, p := range byUser {
		if !p.hasEP || !p.hasGP {
			continue
		}
		standings = append(standings, domain.Standing{
			UserID:      userID,
			DisplayName: names[userID],
			EP:          p.ep,
			GP:          p.gp,
			PR:          domain.PriorityRatio(p.ep, p.gp),
		})
	}

	sort.Slice(standings, func(i, j int) bool {
		if c := standings[i].PR.Cmp(standings[j].PR); c != 0 {
			return c > 0
		}
		return standings[i].UserID < standings[j].UserID
	})
	return standings, nil
}

// displayNames is best effort; a report without names is still useful
func (s *service) displayNames(ctx context.Context) map[string]string {
	names := make(map[string]string)
	if s.users == nil {
		return names
	}
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgUserLookupFailed, "error", err)
		return names
	}
	for _, u := range users {
		names[u.ID] = u.DisplayName
	}
	return names
}

func (s *service) Entries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerEntry, error) {
	if filter.PointType != "" && !filter.PointType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPointType, filter.PointType)
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultEntriesLimit
	case filter.Limit > MaxEntriesLimit:
		filter.Limit = MaxEntriesLimit
	}
	entries, err := s.repo.ListLedgerEntries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListEntries, err)
	}
	return entries, nil
}

// PublishEntries announces committed ledger entries. Publishing failures are
// logged; the entries are already durable.
func PublishEntries(ctx context.Context, bus event.Bus, entries []domain.LedgerEntry) {
	for _, e := range entries {
		if err := bus.Publish(ctx, event.NewPointsChangedEvent(e)); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "entry_id", e.ID, "error", err)
		}
	}
}

func mutationError(op Op, key domain.BucketKey, err error) error {
	var me *domain.MutationError
	if errors.As(err, &me) {
		return err
	}
	if domain.Class(err) == nil {
		err = fmt.Errorf("%w: %w", domain.ErrStorageFailure, err)
	}
	return &domain.MutationError{Op: op.Type(), Key: key, Delta: op.Requested(), Err: err}
}
