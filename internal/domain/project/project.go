// Package project implements company-scoped projects and their milestones.
package project

import (
	"context"
	"time"
)

type Project struct {
	ID        int64
	CompanyID int64
	Name      string
	CreatedAt time.Time
}

type Milestone struct {
	ID        int64
	ProjectID int64
	Title     string
	DueDate   time.Time
}

// Repository is the persistence contract; implementations return a nil
// project (not an error) when nothing matches.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Project, error)
	Save(ctx context.Context, p Project) (Project, error)
	SaveMilestone(ctx context.Context, m Milestone) (Milestone, error)
}
