// Package invite implements invitations: a user invites an email address
// into a company. Single issue is an ordinary workflow; bulk issue streams
// addresses through the same stage over batch worker lines, with per-address
// outcomes that never abort the rest of the batch.
package invite

import (
	"context"
	"time"
)

type Invitation struct {
	ID        int64
	Token     string
	Email     string
	InviterID int64
	CompanyID int64
	CreatedAt time.Time
}

// Repository is the persistence contract for invitations. IssueBulk calls
// Save from multiple worker goroutines, so implementations must be safe for
// concurrent use.
type Repository interface {
	Save(ctx context.Context, inv Invitation) (Invitation, error)
	FindByToken(ctx context.Context, token string) (*Invitation, error)
}
