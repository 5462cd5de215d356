package project_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewbase/railway/internal/domain/company"
	"github.com/crewbase/railway/internal/domain/project"
	"github.com/crewbase/railway/internal/storage/memory"
	"github.com/crewbase/railway/pkg/fault"
	"github.com/crewbase/railway/pkg/rail/task"
)

func setup(t *testing.T) (*project.Service, company.Company) {
	t.Helper()

	companies := memory.NewCompanies()
	owner, err := companies.Save(context.Background(), company.Company{Name: "Acme"})
	require.NoError(t, err)

	return project.NewService(memory.NewProjects(), companies, zerolog.Nop()), owner
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	svc, owner := setup(t)

	res := task.Run(context.Background(), svc.Create(project.CreateInput{
		CompanyID: owner.ID,
		Name:      "Orbital Launch",
	}))

	require.True(t, res.IsSuccess(), "unexpected failure: %v", res.Err())
	assert.Equal(t, owner.ID, res.Value().CompanyID)
	assert.NotZero(t, res.Value().ID)
}

func TestCreate_CompanyMissing(t *testing.T) {
	t.Parallel()

	svc, _ := setup(t)

	res := task.Run(context.Background(), svc.Create(project.CreateInput{
		CompanyID: 999,
		Name:      "Ghost",
	}))

	require.True(t, res.IsFailure())
	assert.True(t, fault.IsCode(res.Err(), project.CodeCompanyNotFound), "got %v", res.Err())
}

func TestAddMilestone_Success(t *testing.T) {
	t.Parallel()

	svc, owner := setup(t)
	ctx := context.Background()

	created := task.Run(ctx, svc.Create(project.CreateInput{CompanyID: owner.ID, Name: "P"}))
	require.True(t, created.IsSuccess())

	res := task.Run(ctx, svc.AddMilestone(project.AddMilestoneInput{
		ProjectID: created.Value().ID,
		Title:     "Design freeze",
		DueDate:   time.Now().AddDate(0, 1, 0),
	}))

	require.True(t, res.IsSuccess(), "unexpected failure: %v", res.Err())
	assert.Equal(t, created.Value().ID, res.Value().ProjectID)
	assert.Equal(t, "Design freeze", res.Value().Title)
}

func TestAddMilestone_ProjectMissing(t *testing.T) {
	t.Parallel()

	svc, _ := setup(t)

	res := task.Run(context.Background(), svc.AddMilestone(project.AddMilestoneInput{
		ProjectID: 404,
		Title:     "Nope",
		DueDate:   time.Now(),
	}))

	require.True(t, res.IsFailure())
	assert.True(t, fault.IsCode(res.Err(), project.CodeNotFound), "got %v", res.Err())
}

func TestAddMilestone_MissingDueDate(t *testing.T) {
	t.Parallel()

	svc, _ := setup(t)

	res := task.Run(context.Background(), svc.AddMilestone(project.AddMilestoneInput{
		ProjectID: 1,
		Title:     "No date",
	}))

	require.True(t, res.IsFailure())
	assert.True(t, fault.IsCode(res.Err(), project.CodeInvalidMilestone), "got %v", res.Err())
}
