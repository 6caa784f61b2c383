package importer

// CSV column names
const (
	ColumnName = "Name"
	ColumnEP   = "EP"
	ColumnGP   = "GP"
)

// Error messages
const (
	ErrMsgMissingColumn  = "missing %q column"
	ErrMsgMalformedValue = "row %d: malformed %s value %q"
	ErrMsgEmptyName      = "row %d: name is empty"

	ErrContextReadCSV   = "failed to read csv"
	ErrContextFindUser  = "failed to find user"
	ErrContextLoad      = "failed to load balance"
	ErrContextGetBucket = "failed to prepare bucket"
)

// Log messages
const (
	LogMsgImportStarted  = "Balance import started"
	LogMsgRowLoaded      = "Balances loaded"
	LogMsgUserNotFound   = "Skipping row, user not found"
	LogMsgImportFinished = "Balance import finished"
)
