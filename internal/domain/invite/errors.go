package invite

// Error codes for invitation workflows; a closed set, same contract as the
// other domains.
const (
	CodeInvalidEmail    = "INVITE_INVALID_EMAIL"
	CodeInviterNotFound = "INVITE_INVITER_NOT_FOUND"
	CodeNotFound        = "INVITE_NOT_FOUND"
)
