package project

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/crewbase/railway/internal/domain/company"
	"github.com/crewbase/railway/pkg/fault"
	"github.com/crewbase/railway/pkg/rail"
	"github.com/crewbase/railway/pkg/rail/task"
)

type Service struct {
	projects  Repository
	companies company.Repository
	log       zerolog.Logger
}

func NewService(projects Repository, companies company.Repository, log zerolog.Logger) *Service {
	return &Service{
		projects:  projects,
		companies: companies,
		log:       log.With().Str("domain", "project").Logger(),
	}
}

type CreateInput struct {
	CompanyID int64
	Name      string
}

type AddMilestoneInput struct {
	ProjectID int64
	Title     string
	DueDate   time.Time
}

// Create opens a project under an existing company.
func (s *Service) Create(input CreateInput) task.Task[Project] {
	validated := validateName(input.Name)

	owned := task.Bind(task.Resolved(validated),
		func(ctx context.Context, name string) task.Task[string] {
			return task.Command(
				func(ctx context.Context) (*company.Company, error) {
					return s.companies.FindByID(ctx, input.CompanyID)
				},
				func(ctx context.Context, c *company.Company) rail.Result[string] {
					return HandleCompanyLookup(name, c)
				})
		})

	saved := task.Bind(owned, func(ctx context.Context, name string) task.Task[Project] {
		return task.Command(
			func(ctx context.Context) (Project, error) {
				return s.projects.Save(ctx, Project{CompanyID: input.CompanyID, Name: name})
			},
			func(ctx context.Context, p Project) rail.Result[Project] {
				return rail.Success(p)
			})
	})

	return task.Tee(saved,
		func(ctx context.Context, p Project) {
			s.log.Info().Int64("project_id", p.ID).Int64("company_id", p.CompanyID).
				Msg("project created")
		},
		func(ctx context.Context, err error) {
			s.log.Warn().Str("code", fault.CodeOf(err)).Msg("project creation failed")
		})
}

// AddMilestone appends a milestone to an existing project.
func (s *Service) AddMilestone(input AddMilestoneInput) task.Task[Milestone] {
	validated := validateMilestone(input)

	found := task.Bind(task.Resolved(validated),
		func(ctx context.Context, in AddMilestoneInput) task.Task[Project] {
			return task.Command(
				func(ctx context.Context) (*Project, error) {
					return s.projects.FindByID(ctx, in.ProjectID)
				},
				HandleFindByID)
		})

	saved := task.Bind(found, func(ctx context.Context, p Project) task.Task[Milestone] {
		return task.Command(
			func(ctx context.Context) (Milestone, error) {
				return s.projects.SaveMilestone(ctx, Milestone{
					ProjectID: p.ID,
					Title:     strings.TrimSpace(input.Title),
					DueDate:   input.DueDate,
				})
			},
			func(ctx context.Context, m Milestone) rail.Result[Milestone] {
				return rail.Success(m)
			})
	})

	return task.Tee(saved,
		func(ctx context.Context, m Milestone) {
			s.log.Info().Int64("project_id", m.ProjectID).Str("title", m.Title).
				Msg("milestone added")
		},
		func(ctx context.Context, err error) {
			s.log.Warn().Str("code", fault.CodeOf(err)).Msg("milestone creation failed")
		})
}

func validateName(name string) rail.Result[string] {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return rail.Fail[string](fault.New(CodeInvalidName, "project name must not be empty"))
	}
	return rail.Success(trimmed)
}

func validateMilestone(input AddMilestoneInput) rail.Result[AddMilestoneInput] {
	if strings.TrimSpace(input.Title) == "" {
		return rail.Fail[AddMilestoneInput](fault.New(CodeInvalidMilestone, "milestone title must not be empty"))
	}
	if input.DueDate.IsZero() {
		return rail.Fail[AddMilestoneInput](fault.New(CodeInvalidMilestone, "milestone due date is required"))
	}
	return rail.Success(input)
}

// HandleCompanyLookup interprets the owning-company lookup during project
// creation.
func HandleCompanyLookup(name string, c *company.Company) rail.Result[string] {
	if c == nil {
		return rail.Fail[string](fault.NotFound(CodeCompanyNotFound, "company",
			"referenced company does not exist"))
	}
	return rail.Success(name)
}

// HandleFindByID interprets a project lookup: a nil row is a not-found
// failure.
func HandleFindByID(_ context.Context, p *Project) rail.Result[Project] {
	if p == nil {
		return rail.Fail[Project](fault.NotFound(CodeNotFound, "project", "project does not exist"))
	}
	return rail.Success(*p)
}
