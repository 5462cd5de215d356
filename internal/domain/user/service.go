package user

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/crewbase/railway/internal/auth"
	"github.com/crewbase/railway/internal/domain/company"
	"github.com/crewbase/railway/pkg/fault"
	"github.com/crewbase/railway/pkg/rail"
	"github.com/crewbase/railway/pkg/rail/task"
)

// Service owns the user workflows. Every dependency is injected; the
// combinators underneath stay pure.
type Service struct {
	users     Repository
	companies company.Repository
	hasher    auth.PasswordHasher
	tokens    auth.TokenIssuer
	log       zerolog.Logger
}

func NewService(users Repository, companies company.Repository,
	hasher auth.PasswordHasher, tokens auth.TokenIssuer, log zerolog.Logger) *Service {
	return &Service{
		users:     users,
		companies: companies,
		hasher:    hasher,
		tokens:    tokens,
		log:       log.With().Str("domain", "user").Logger(),
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Surname  string
}

type LoginInput struct {
	Email    string
	Password string
}

type AssignInput struct {
	UserID    int64
	CompanyID int64
}

type UpdateProfileInput struct {
	UserID  int64
	Name    string
	Surname string
}

// regForm is a validated registration; draft adds the password hash on its
// way to persistence.
type regForm struct {
	creds   credentials
	name    string
	surname string
}

type draft struct {
	form regForm
	hash string
}

// Register creates an account: validate every field, ensure the email is
// free, hash the password, persist.
func (s *Service) Register(input RegisterInput) task.Task[User] {
	validated := validateRegistration(input)

	unique := task.Bind(task.Resolved(validated),
		func(ctx context.Context, form regForm) task.Task[regForm] {
			return task.Command(
				func(ctx context.Context) (*User, error) {
					return s.users.FindByEmail(ctx, form.creds.Email)
				},
				func(ctx context.Context, existing *User) rail.Result[regForm] {
					if r := HandleEmailLookup(form.creds.Email, existing); r.IsFailure() {
						return rail.FailFrom[string, regForm](r)
					}
					return rail.Success(form)
				})
		})

	hashed := task.Bind(unique, func(ctx context.Context, form regForm) task.Task[draft] {
		return task.Command(
			func(ctx context.Context) (string, error) {
				return s.hasher.Hash(form.creds.Password)
			},
			func(ctx context.Context, hash string) rail.Result[draft] {
				return rail.Success(draft{form: form, hash: hash})
			})
	})

	saved := task.Bind(hashed, func(ctx context.Context, d draft) task.Task[User] {
		return task.Command(
			func(ctx context.Context) (User, error) {
				return s.users.Save(ctx, User{
					Email:        d.form.creds.Email,
					Name:         d.form.name,
					Surname:      d.form.surname,
					PasswordHash: d.hash,
				})
			},
			HandleSave)
	})

	return task.Tee(saved,
		func(ctx context.Context, u User) {
			s.log.Info().Int64("user_id", u.ID).Str("email", u.Email).Msg("user registered")
		},
		func(ctx context.Context, err error) {
			s.log.Warn().Str("code", fault.CodeOf(err)).Msg("registration failed")
		})
}

// Login authenticates by email and password and mints a session token.
func (s *Service) Login(input LoginInput) task.Task[Session] {
	checked := validateLogin(input)

	found := task.Bind(task.Resolved(checked),
		func(ctx context.Context, in LoginInput) task.Task[User] {
			return task.Command(
				func(ctx context.Context) (*User, error) {
					return s.users.FindByEmail(ctx, in.Email)
				},
				HandleFindByEmail)
		})

	verified := task.Bind(found, func(ctx context.Context, u User) task.Task[User] {
		return task.Command(
			func(ctx context.Context) (bool, error) {
				return s.hasher.Compare(u.PasswordHash, input.Password)
			},
			func(ctx context.Context, match bool) rail.Result[User] {
				return HandlePasswordMatch(u, match)
			})
	})

	session := task.Bind(verified, func(ctx context.Context, u User) task.Task[Session] {
		return task.Command(
			func(ctx context.Context) (string, error) {
				return s.tokens.Issue(u.ID, u.Email)
			},
			func(ctx context.Context, token string) rail.Result[Session] {
				return rail.Success(Session{User: u, Token: token})
			})
	})

	return task.Tee(session,
		func(ctx context.Context, sess Session) {
			s.log.Info().Int64("user_id", sess.User.ID).Msg("login succeeded")
		},
		func(ctx context.Context, err error) {
			s.log.Warn().Str("code", fault.CodeOf(err)).Msg("login failed")
		})
}

// AssignToCompany attaches an existing user to an existing company. Both
// lookups run concurrently; when both are missing the user failure wins.
func (s *Service) AssignToCompany(input AssignInput) task.Task[User] {
	findUser := task.Command(
		func(ctx context.Context) (*User, error) {
			return s.users.FindByID(ctx, input.UserID)
		},
		HandleFindByID)

	findCompany := task.Command(
		func(ctx context.Context) (*company.Company, error) {
			return s.companies.FindByID(ctx, input.CompanyID)
		},
		HandleCompanyLookup)

	assigned := task.Bind(task.Join2(findUser, findCompany),
		func(ctx context.Context, pair task.Pair[User, company.Company]) task.Task[User] {
			u := pair.First
			companyID := pair.Second.ID
			u.CompanyID = &companyID

			return task.Command(
				func(ctx context.Context) (User, error) {
					return s.users.Update(ctx, u)
				},
				HandleSave)
		})

	return task.Tee(assigned,
		func(ctx context.Context, u User) {
			s.log.Info().Int64("user_id", u.ID).Int64("company_id", input.CompanyID).
				Msg("user assigned to company")
		},
		func(ctx context.Context, err error) {
			s.log.Warn().Str("code", fault.CodeOf(err)).Msg("assignment failed")
		})
}

// UpdateProfile changes the user's display names.
func (s *Service) UpdateProfile(input UpdateProfileInput) task.Task[User] {
	validated := validateNames(input.Name, input.Surname)

	found := task.Bind(task.Resolved(validated),
		func(ctx context.Context, _ map[string]string) task.Task[User] {
			return task.Command(
				func(ctx context.Context) (*User, error) {
					return s.users.FindByID(ctx, input.UserID)
				},
				HandleFindByID)
		})

	updated := task.Bind(found, func(ctx context.Context, u User) task.Task[User] {
		names := validated.Value()
		u.Name = names["name"]
		u.Surname = names["surname"]

		return task.Command(
			func(ctx context.Context) (User, error) {
				return s.users.Update(ctx, u)
			},
			HandleSave)
	})

	return task.Tee(updated,
		func(ctx context.Context, u User) {
			s.log.Info().Int64("user_id", u.ID).Msg("profile updated")
		},
		func(ctx context.Context, err error) {
			s.log.Warn().Str("code", fault.CodeOf(err)).Msg("profile update failed")
		})
}

func validateLogin(input LoginInput) rail.Result[LoginInput] {
	// Malformed login input is indistinguishable from bad credentials on
	// purpose: the response must not disclose whether the account exists.
	if input.Email == "" || input.Password == "" {
		return rail.Fail[LoginInput](fault.New(CodeInvalidCredentials, "invalid email or password"))
	}
	return rail.Success(input)
}

// HandleEmailLookup interprets the uniqueness lookup during registration:
// an existing row means the address is taken.
func HandleEmailLookup(email string, existing *User) rail.Result[string] {
	if existing != nil {
		return rail.Fail[string](fault.New(CodeEmailExists, "email address is already registered"))
	}
	return rail.Success(email)
}

// HandleFindByEmail interprets the login lookup: a missing row reads as bad
// credentials, never as not-found, so the response does not disclose
// account existence.
func HandleFindByEmail(_ context.Context, u *User) rail.Result[User] {
	if u == nil {
		return rail.Fail[User](fault.New(CodeInvalidCredentials, "invalid email or password"))
	}
	return rail.Success(*u)
}

// HandlePasswordMatch interprets the bcrypt comparison outcome.
func HandlePasswordMatch(u User, match bool) rail.Result[User] {
	if !match {
		return rail.Fail[User](fault.New(CodeInvalidCredentials, "invalid email or password"))
	}
	return rail.Success(u)
}

// HandleFindByID interprets a lookup by id: a nil row is a not-found
// failure.
func HandleFindByID(_ context.Context, u *User) rail.Result[User] {
	if u == nil {
		return rail.Fail[User](fault.NotFound(CodeNotFound, "user", "user does not exist"))
	}
	return rail.Success(*u)
}

// HandleCompanyLookup interprets the company half of an assignment: a nil
// row is the user-domain company-not-found failure.
func HandleCompanyLookup(_ context.Context, c *company.Company) rail.Result[company.Company] {
	if c == nil {
		return rail.Fail[company.Company](fault.NotFound(CodeCompanyNotFound, "company",
			"referenced company does not exist"))
	}
	return rail.Success(*c)
}

// HandleSave interprets a write outcome; repositories signal every problem
// through the error return, so a returned row is always a success.
func HandleSave(_ context.Context, u User) rail.Result[User] {
	return rail.Success(u)
}
