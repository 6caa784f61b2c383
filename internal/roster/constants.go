package roster

// Error context strings
const (
	ErrContextCreateTeam      = "failed to create team"
	ErrContextGetTeam         = "failed to get team"
	ErrContextListTeams       = "failed to list teams"
	ErrContextSaveUser        = "failed to save user"
	ErrContextGetUser         = "failed to get user"
	ErrContextListUsers       = "failed to list users"
	ErrContextCreateCharacter = "failed to create character"
	ErrContextGetCharacter    = "failed to get character"
	ErrContextListCharacters  = "failed to list characters"
	ErrContextAssign          = "failed to add roster member"
	ErrContextListRoster      = "failed to list roster"

	ErrMsgTeamNameRequired      = "team name is required"
	ErrMsgUserIdentity          = "user id and name are required"
	ErrMsgEmptyQuery            = "search text is required"
	ErrMsgCharacterNameRequired = "character name is required"
)

// Log messages
const (
	LogMsgTeamCreated         = "Team created"
	LogMsgCharacterRegistered = "Character registered"
	LogMsgAssigned            = "Character assigned to team"
	LogMsgAlreadyAssigned     = "Character already on team"
)
