package user

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/crewbase/railway/pkg/fault"
	"github.com/crewbase/railway/pkg/rail"
	"github.com/crewbase/railway/pkg/rail/step"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type credentials struct {
	Email    string
	Password string
}

// validateCredentials checks both fields independently and combines them
// with declaration-order failure precedence: a bad email is reported before
// a bad password.
func validateCredentials(email, password string) rail.Result[credentials] {
	bundle := step.AllNamed(
		step.Named("email", validateEmail(email)),
		step.Named("password", validatePassword(password)),
	)

	if bundle.IsFailure() {
		return rail.FailFrom[map[string]string, credentials](bundle)
	}

	fields := bundle.Value()
	return rail.Success(credentials{Email: fields["email"], Password: fields["password"]})
}

func validateEmail(email string) rail.Result[string] {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(normalized) {
		return rail.Fail[string](fault.New(CodeInvalidEmail, "email address is not valid"))
	}
	return rail.Success(normalized)
}

func validatePassword(password string) rail.Result[string] {
	if len(password) < 8 {
		return rail.Fail[string](fault.New(CodeInvalidPassword, "password must be at least 8 characters"))
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return rail.Fail[string](fault.New(CodeInvalidPassword,
			"password must contain an upper-case letter, a lower-case letter, and a digit"))
	}
	return rail.Success(password)
}

// validateRegistration validates credentials and display names, combining
// the pieces with declaration-order failure precedence.
func validateRegistration(input RegisterInput) rail.Result[regForm] {
	creds := validateCredentials(input.Email, input.Password)
	if creds.IsFailure() {
		return rail.FailFrom[credentials, regForm](creds)
	}

	names := validateNames(input.Name, input.Surname)
	if names.IsFailure() {
		return rail.FailFrom[map[string]string, regForm](names)
	}

	fields := names.Value()
	return rail.Success(regForm{
		creds:   creds.Value(),
		name:    fields["name"],
		surname: fields["surname"],
	})
}

func validateNames(name, surname string) rail.Result[map[string]string] {
	return step.AllNamed(
		step.Named("name", validatePersonName("name", name)),
		step.Named("surname", validatePersonName("surname", surname)),
	)
}

func validatePersonName(field, value string) rail.Result[string] {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return rail.Fail[string](fault.Newf(CodeInvalidName, "%s must not be empty", field))
	}
	if len(trimmed) > 80 {
		return rail.Fail[string](fault.Newf(CodeInvalidName, "%s must be at most 80 characters", field))
	}
	return rail.Success(trimmed)
}
