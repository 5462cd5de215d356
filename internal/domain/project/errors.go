package project

// Error codes for project workflows; a closed set, same contract as the
// user and company domains.
const (
	CodeNotFound         = "PROJECT_NOT_FOUND"
	CodeCompanyNotFound  = "PROJECT_COMPANY_NOT_FOUND"
	CodeInvalidName      = "PROJECT_INVALID_NAME"
	CodeInvalidMilestone = "PROJECT_INVALID_MILESTONE"
)
