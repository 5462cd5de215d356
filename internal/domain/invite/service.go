package invite

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/crewbase/railway/internal/domain/user"
	"github.com/crewbase/railway/pkg/fault"
	"github.com/crewbase/railway/pkg/rail"
	"github.com/crewbase/railway/pkg/rail/batch"
	"github.com/crewbase/railway/pkg/rail/task"
)

var addressPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Service struct {
	invites Repository
	users   user.Repository
	log     zerolog.Logger
}

func NewService(invites Repository, users user.Repository, log zerolog.Logger) *Service {
	return &Service{
		invites: invites,
		users:   users,
		log:     log.With().Str("domain", "invite").Logger(),
	}
}

type IssueInput struct {
	InviterID int64
	CompanyID int64
	Email     string
}

type BulkInput struct {
	InviterID int64
	CompanyID int64
	Emails    []string
	Workers   int
}

// BulkReport lists per-address outcomes of a bulk issue. Rejections carry
// the offending address in the reason.
type BulkReport struct {
	Sent     []Invitation
	Rejected []Rejection
}

type Rejection struct {
	Code   string
	Reason string
}

// Issue creates a single invitation: validate the address, ensure the
// inviter exists, persist with a fresh token.
func (s *Service) Issue(input IssueInput) task.Task[Invitation] {
	validated := validateAddress(input.Email)

	authorized := task.Bind(task.Resolved(validated),
		func(ctx context.Context, addr string) task.Task[string] {
			return task.Command(
				func(ctx context.Context) (*user.User, error) {
					return s.users.FindByID(ctx, input.InviterID)
				},
				func(ctx context.Context, inviter *user.User) rail.Result[string] {
					return HandleInviterLookup(addr, inviter)
				})
		})

	issued := task.Bind(authorized, func(ctx context.Context, addr string) task.Task[Invitation] {
		return s.persist(addr, input.InviterID, input.CompanyID)
	})

	return task.Tee(issued,
		func(ctx context.Context, inv Invitation) {
			s.log.Info().Str("email", inv.Email).Int64("inviter_id", inv.InviterID).
				Msg("invitation issued")
		},
		func(ctx context.Context, err error) {
			s.log.Warn().Str("code", fault.CodeOf(err)).Msg("invitation failed")
		})
}

// IssueBulk streams the addresses through the issue stage over worker
// lines. The inviter is checked once for the whole batch; invalid addresses
// are rejected individually and do not stop the rest.
func (s *Service) IssueBulk(ctx context.Context, input BulkInput) rail.Result[BulkReport] {
	inviter := task.Run(ctx, task.Command(
		func(ctx context.Context) (*user.User, error) {
			return s.users.FindByID(ctx, input.InviterID)
		},
		func(ctx context.Context, u *user.User) rail.Result[int64] {
			if u == nil {
				return rail.Fail[int64](fault.NotFound(CodeInviterNotFound, "user",
					"inviting user does not exist"))
			}
			return rail.Success(u.ID)
		}))
	if inviter.IsFailure() {
		return rail.FailFrom[int64, BulkReport](inviter)
	}

	stage := func(ctx context.Context, email string) rail.Result[Invitation] {
		validated := validateAddress(email)
		if validated.IsFailure() {
			return rail.FailFrom[string, Invitation](validated)
		}
		return task.Run(ctx, s.persist(validated.Value(), input.InviterID, input.CompanyID))
	}

	results := batch.Collect(ctx,
		batch.Through(ctx, batch.Source(ctx, input.Emails), stage, input.Workers))

	report := BulkReport{}
	for _, r := range results {
		if r.IsSuccess() {
			report.Sent = append(report.Sent, r.Value())
			continue
		}
		report.Rejected = append(report.Rejected, Rejection{
			Code:   fault.CodeOf(r.Err()),
			Reason: fault.MessageOf(r.Err()),
		})
	}

	s.log.Info().Int("sent", len(report.Sent)).Int("rejected", len(report.Rejected)).
		Msg("bulk invitations processed")

	return rail.Success(report)
}

func (s *Service) persist(addr string, inviterID, companyID int64) task.Task[Invitation] {
	return task.Command(
		func(ctx context.Context) (Invitation, error) {
			return s.invites.Save(ctx, Invitation{
				Token:     uuid.NewString(),
				Email:     addr,
				InviterID: inviterID,
				CompanyID: companyID,
			})
		},
		func(ctx context.Context, inv Invitation) rail.Result[Invitation] {
			return rail.Success(inv)
		})
}

func validateAddress(email string) rail.Result[string] {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if !addressPattern.MatchString(normalized) {
		return rail.Fail[string](fault.Newf(CodeInvalidEmail, "invalid invitation address %q", email))
	}
	return rail.Success(normalized)
}

// HandleInviterLookup interprets the inviter lookup: a nil row means the
// inviting account does not exist.
func HandleInviterLookup(addr string, inviter *user.User) rail.Result[string] {
	if inviter == nil {
		return rail.Fail[string](fault.NotFound(CodeInviterNotFound, "user",
			"inviting user does not exist"))
	}
	return rail.Success(addr)
}
