package invite

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewbase/railway/internal/domain/user"
	"github.com/crewbase/railway/pkg/fault"
	"github.com/crewbase/railway/pkg/rail/task"
)

// fakeInvites is hit from several worker goroutines during bulk issue, so
// it locks like the real repository does.
type fakeInvites struct {
	mu    sync.Mutex
	saved []Invitation
}

func (f *fakeInvites) Save(_ context.Context, inv Invitation) (Invitation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inv.ID = int64(len(f.saved) + 1)
	f.saved = append(f.saved, inv)
	return inv, nil
}

func (f *fakeInvites) FindByToken(_ context.Context, token string) (*Invitation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, inv := range f.saved {
		if inv.Token == token {
			found := inv
			return &found, nil
		}
	}
	return nil, nil
}

type fakeUsers struct {
	byID map[int64]user.User
}

func (f *fakeUsers) FindByID(_ context.Context, id int64) (*user.User, error) {
	if u, ok := f.byID[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (f *fakeUsers) Save(_ context.Context, u user.User) (user.User, error) { return u, nil }

func (f *fakeUsers) Update(_ context.Context, u user.User) (user.User, error) { return u, nil }

func newTestService(invites *fakeInvites, users *fakeUsers) *Service {
	return NewService(invites, users, zerolog.Nop())
}

func TestIssue_Success(t *testing.T) {
	t.Parallel()

	invites := &fakeInvites{}
	users := &fakeUsers{byID: map[int64]user.User{1: {ID: 1}}}
	svc := newTestService(invites, users)

	res := task.Run(context.Background(), svc.Issue(IssueInput{
		InviterID: 1,
		CompanyID: 2,
		Email:     " Grace@Example.com ",
	}))

	require.True(t, res.IsSuccess(), "unexpected failure: %v", res.Err())
	assert.Equal(t, "grace@example.com", res.Value().Email)
	assert.NotEmpty(t, res.Value().Token)
	require.Len(t, invites.saved, 1)
}

func TestIssue_InviterMissing(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeInvites{}, &fakeUsers{byID: map[int64]user.User{}})

	res := task.Run(context.Background(), svc.Issue(IssueInput{
		InviterID: 9,
		Email:     "grace@example.com",
	}))

	require.True(t, res.IsFailure())
	assert.True(t, fault.IsCode(res.Err(), CodeInviterNotFound), "got %v", res.Err())
}

func TestIssue_InvalidAddress(t *testing.T) {
	t.Parallel()

	invites := &fakeInvites{}
	svc := newTestService(invites, &fakeUsers{byID: map[int64]user.User{1: {ID: 1}}})

	res := task.Run(context.Background(), svc.Issue(IssueInput{
		InviterID: 1,
		Email:     "not-an-address",
	}))

	require.True(t, res.IsFailure())
	assert.True(t, fault.IsCode(res.Err(), CodeInvalidEmail), "got %v", res.Err())
	assert.Empty(t, invites.saved)
}

func TestIssueBulk_MixedOutcomes(t *testing.T) {
	t.Parallel()

	invites := &fakeInvites{}
	users := &fakeUsers{byID: map[int64]user.User{1: {ID: 1}}}
	svc := newTestService(invites, users)

	res := svc.IssueBulk(context.Background(), BulkInput{
		InviterID: 1,
		CompanyID: 2,
		Emails:    []string{"a@example.com", "broken", "b@example.com", "also broken"},
		Workers:   2,
	})

	require.True(t, res.IsSuccess(), "unexpected failure: %v", res.Err())
	report := res.Value()
	assert.Len(t, report.Sent, 2)
	assert.Len(t, report.Rejected, 2)

	for _, rej := range report.Rejected {
		assert.Equal(t, CodeInvalidEmail, rej.Code)
		assert.NotEmpty(t, rej.Reason, "rejections must name the offending address")
	}
}

func TestIssueBulk_ConcurrentPersist(t *testing.T) {
	t.Parallel()

	invites := &fakeInvites{}
	users := &fakeUsers{byID: map[int64]user.User{1: {ID: 1}}}
	svc := newTestService(invites, users)

	emails := make([]string, 64)
	for i := range emails {
		emails[i] = fmt.Sprintf("user%d@example.com", i)
	}

	res := svc.IssueBulk(context.Background(), BulkInput{
		InviterID: 1,
		CompanyID: 2,
		Emails:    emails,
		Workers:   4,
	})

	require.True(t, res.IsSuccess(), "unexpected failure: %v", res.Err())
	assert.Len(t, res.Value().Sent, len(emails))
	assert.Empty(t, res.Value().Rejected)

	require.Len(t, invites.saved, len(emails))
	seen := make(map[int64]bool, len(invites.saved))
	for _, inv := range invites.saved {
		assert.False(t, seen[inv.ID], "duplicate id %d", inv.ID)
		seen[inv.ID] = true
	}
}

func TestIssueBulk_InviterMissingFailsWholeBatch(t *testing.T) {
	t.Parallel()

	invites := &fakeInvites{}
	svc := newTestService(invites, &fakeUsers{byID: map[int64]user.User{}})

	res := svc.IssueBulk(context.Background(), BulkInput{
		InviterID: 9,
		Emails:    []string{"a@example.com"},
	})

	require.True(t, res.IsFailure())
	assert.True(t, fault.IsCode(res.Err(), CodeInviterNotFound), "got %v", res.Err())
	assert.Empty(t, invites.saved)
}
