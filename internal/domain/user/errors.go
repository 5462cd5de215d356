package user

// Error codes for user workflows. These are a closed set: transports and
// tests dispatch on them, renaming one is a breaking change.
const (
	CodeNotFound           = "USER_NOT_FOUND"
	CodeEmailExists        = "USER_EMAIL_ALREADY_EXISTS"
	CodeInvalidCredentials = "USER_INVALID_CREDENTIALS"
	CodeCompanyNotFound    = "USER_COMPANY_NOT_FOUND"
	CodeInvalidEmail       = "USER_INVALID_EMAIL"
	CodeInvalidPassword    = "USER_INVALID_PASSWORD"
	CodeInvalidName        = "USER_INVALID_NAME"
)
