package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation      = "23505"
	// PgErrorCodeForeignKeyViolation is the PostgreSQL error code for foreign key violations
	PgErrorCodeForeignKeyViolation  = "23503"
	// PgErrorClassTransactionRollback covers serialization failures and deadlocks
	PgErrorClassTransactionRollback = "40"
)

// Constraint names the repositories translate into domain errors
const (
	ConstraintRosterTeam      = "roster_members_team_id_fkey"
	ConstraintRaidTeam        = "raids_team_id_fkey"
	ConstraintBucketTeam      = "point_buckets_team_id_fkey"
	ConstraintScheduleTeam    = "reward_schedules_team_id_fkey"
	ConstraintSignupRaid      = "signups_raid_id_fkey"
	ConstraintSignupCharacter = "signups_character_id_fkey"
	ConstraintDropItem        = "item_drops_item_id_fkey"
	ConstraintDropRaid        = "item_drops_raid_id_fkey"
	ConstraintBidDrop         = "bids_drop_id_fkey"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTx  = "failed to begin transaction"
	ErrMsgFailedToCommit   = "failed to commit transaction"
	ErrMsgFailedToRollback = "failed to rollback transaction"
)

// Error Messages - Ledger Operations
const (
	ErrMsgFailedToGetBucket         = "failed to get point bucket"
	ErrMsgFailedToInsertBucket      = "failed to insert point bucket"
	ErrMsgFailedToUpdateBucket      = "failed to update point bucket"
	ErrMsgFailedToListBuckets       = "failed to list point buckets"
	ErrMsgFailedToInsertLedgerEntry = "failed to insert ledger entry"
	ErrMsgFailedToGetLedgerEntry    = "failed to get ledger entry"
	ErrMsgFailedToCheckReversal     = "failed to check ledger reversal"
	ErrMsgFailedToListLedgerEntries = "failed to list ledger entries"
)

// Error Messages - Roster Operations
const (
	ErrMsgFailedToCreateTeam      = "failed to create team"
	ErrMsgFailedToGetTeam         = "failed to get team"
	ErrMsgFailedToListTeams       = "failed to list teams"
	ErrMsgFailedToUpsertUser      = "failed to upsert user"
	ErrMsgFailedToGetUser         = "failed to get user"
	ErrMsgFailedToListUsers       = "failed to list users"
	ErrMsgFailedToCreateCharacter = "failed to create character"
	ErrMsgFailedToGetCharacter    = "failed to get character"
	ErrMsgFailedToListCharacters  = "failed to list characters"
	ErrMsgFailedToAddRosterMember = "failed to add roster member"
	ErrMsgFailedToListRoster      = "failed to list roster"
)

// Error Messages - Item Operations
const (
	ErrMsgFailedToUpsertItem  = "failed to upsert item"
	ErrMsgFailedToGetItem     = "failed to get item"
	ErrMsgFailedToSearchItems = "failed to search items"
)

// Error Messages - Raid Operations
const (
	ErrMsgFailedToCreateRaid     = "failed to create raid"
	ErrMsgFailedToGetRaid        = "failed to get raid"
	ErrMsgFailedToListRaids      = "failed to list raids"
	ErrMsgFailedToUpdateRaid     = "failed to update raid progress"
	ErrMsgFailedToUpsertSchedule = "failed to upsert reward schedule"
	ErrMsgFailedToGetSchedule    = "failed to get reward schedule"
	ErrMsgFailedToSaveSignup     = "failed to save signup"
	ErrMsgFailedToGetSignup      = "failed to get signup"
	ErrMsgFailedToListSignups    = "failed to list signups"
)

// Error Messages - Loot Operations
const (
	ErrMsgFailedToCreateDrop      = "failed to create item drop"
	ErrMsgFailedToGetDrop         = "failed to get item drop"
	ErrMsgFailedToSetDropMessage  = "failed to set drop message"
	ErrMsgFailedToListDrops       = "failed to list item drops"
	ErrMsgFailedToMarkDropAwarded = "failed to mark drop awarded"
	ErrMsgFailedToGetBid          = "failed to get bid"
	ErrMsgFailedToSaveBid         = "failed to save bid"
	ErrMsgFailedToListBids        = "failed to list bids"
	ErrMsgFailedToUpdateBidScore  = "failed to update bid score"
)
