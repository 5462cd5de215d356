// Package company holds the company entity and its workflows. Companies are
// the tenant boundary: users are assigned to them and projects live under
// them.
package company

import (
	"context"
	"time"
)

type Company struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Repository is the persistence contract; implementations return a nil
// company (not an error) when nothing matches.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Company, error)
	FindByName(ctx context.Context, name string) (*Company, error)
	Save(ctx context.Context, c Company) (Company, error)
}
