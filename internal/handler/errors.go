package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgInvalidPathParam  = "Invalid %s"

	// Service error messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."
	ErrMsgConflictError      = "The request conflicted with a concurrent change. Please retry."
)

// Success messages for API responses
const (
	MsgBalanceInRange  = "Balance already within range"
	MsgAlreadyAssigned = "Character already on team"
	MsgAssigned        = "Character assigned to team"
	MsgItemSaved       = "Item saved"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgRequestDecoded   = "Request decoded"
	LogMsgServiceError     = "Service call failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgMissingParameter = "Missing query parameter"
)

// Path parameter names
const (
	ParamTeamID = "teamID"
	ParamRaidID = "raidID"
	ParamItemID = "itemID"
	ParamDropID = "dropID"
)
