package company

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/crewbase/railway/pkg/fault"
	"github.com/crewbase/railway/pkg/rail"
	"github.com/crewbase/railway/pkg/rail/task"
)

type Service struct {
	companies Repository
	log       zerolog.Logger
}

func NewService(companies Repository, log zerolog.Logger) *Service {
	return &Service{
		companies: companies,
		log:       log.With().Str("domain", "company").Logger(),
	}
}

type CreateInput struct {
	Name string
}

// Create registers a new company with a unique name.
func (s *Service) Create(input CreateInput) task.Task[Company] {
	name := strings.TrimSpace(input.Name)

	validated := validateName(name)

	lookup := task.Bind(task.Resolved(validated),
		func(ctx context.Context, n string) task.Task[string] {
			return task.Command(
				func(ctx context.Context) (*Company, error) {
					return s.companies.FindByName(ctx, n)
				},
				func(ctx context.Context, existing *Company) rail.Result[string] {
					return HandleNameLookup(n, existing)
				})
		})

	saved := task.Bind(lookup, func(ctx context.Context, n string) task.Task[Company] {
		return task.Command(
			func(ctx context.Context) (Company, error) {
				return s.companies.Save(ctx, Company{Name: n})
			},
			func(ctx context.Context, c Company) rail.Result[Company] {
				return rail.Success(c)
			})
	})

	return task.Tee(saved,
		func(ctx context.Context, c Company) {
			s.log.Info().Int64("company_id", c.ID).Str("name", c.Name).Msg("company created")
		},
		func(ctx context.Context, err error) {
			s.log.Warn().Str("code", fault.CodeOf(err)).Msg("company creation failed")
		})
}

// Get loads a company by id.
func (s *Service) Get(id int64) task.Task[Company] {
	return task.Command(
		func(ctx context.Context) (*Company, error) {
			return s.companies.FindByID(ctx, id)
		},
		HandleFindByID)
}

func validateName(name string) rail.Result[string] {
	if name == "" {
		return rail.Fail[string](fault.New(CodeInvalidName, "company name must not be empty"))
	}
	if len(name) > 120 {
		return rail.Fail[string](fault.New(CodeInvalidName, "company name must be at most 120 characters"))
	}
	return rail.Success(name)
}

// HandleNameLookup interprets a lookup-by-name outcome during creation: an
// existing row means the name is taken.
func HandleNameLookup(name string, existing *Company) rail.Result[string] {
	if existing != nil {
		return rail.Fail[string](fault.Newf(CodeNameExists, "company name %q is already taken", name))
	}
	return rail.Success(name)
}

// HandleFindByID interprets a lookup-by-id outcome: a nil row is a
// not-found failure.
func HandleFindByID(_ context.Context, c *Company) rail.Result[Company] {
	if c == nil {
		return rail.Fail[Company](fault.NotFound(CodeNotFound, "company", "company does not exist"))
	}
	return rail.Success(*c)
}
