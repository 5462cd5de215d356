package company

// Error codes for company workflows. These are a closed set: transports and
// tests dispatch on them, renaming one is a breaking change.
const (
	CodeNotFound    = "COMPANY_NOT_FOUND"
	CodeNameExists  = "COMPANY_NAME_ALREADY_EXISTS"
	CodeInvalidName = "COMPANY_INVALID_NAME"
)
