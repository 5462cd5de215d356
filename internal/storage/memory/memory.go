// Package memory provides mutex-guarded in-memory repositories. Real
// persistence is an injected interface by design; these implementations back
// the tests and the example binary.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/crewbase/railway/internal/domain/company"
	"github.com/crewbase/railway/internal/domain/invite"
	"github.com/crewbase/railway/internal/domain/project"
	"github.com/crewbase/railway/internal/domain/user"
)

// Users implements user.Repository.
type Users struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]user.User
}

func NewUsers() *Users {
	return &Users{nextID: 1, rows: make(map[int64]user.User)}
}

func (s *Users) FindByID(_ context.Context, id int64) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.rows[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *Users) FindByEmail(_ context.Context, email string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(email)
	for _, u := range s.rows {
		if strings.ToLower(u.Email) == needle {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (s *Users) Save(_ context.Context, u user.User) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.nextID
	s.nextID++
	u.CreatedAt = time.Now().UTC()
	s.rows[u.ID] = u
	return u, nil
}

func (s *Users) Update(_ context.Context, u user.User) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[u.ID] = u
	return u, nil
}

// Companies implements company.Repository.
type Companies struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]company.Company
}

func NewCompanies() *Companies {
	return &Companies{nextID: 1, rows: make(map[int64]company.Company)}
}

func (s *Companies) FindByID(_ context.Context, id int64) (*company.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.rows[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (s *Companies) FindByName(_ context.Context, name string) (*company.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.rows {
		if c.Name == name {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (s *Companies) Save(_ context.Context, c company.Company) (company.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextID
	s.nextID++
	c.CreatedAt = time.Now().UTC()
	s.rows[c.ID] = c
	return c, nil
}

// Projects implements project.Repository.
type Projects struct {
	mu              sync.RWMutex
	nextID          int64
	nextMilestoneID int64
	rows            map[int64]project.Project
	milestones      map[int64]project.Milestone
}

func NewProjects() *Projects {
	return &Projects{
		nextID:          1,
		nextMilestoneID: 1,
		rows:            make(map[int64]project.Project),
		milestones:      make(map[int64]project.Milestone),
	}
}

func (s *Projects) FindByID(_ context.Context, id int64) (*project.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.rows[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *Projects) Save(_ context.Context, p project.Project) (project.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++
	p.CreatedAt = time.Now().UTC()
	s.rows[p.ID] = p
	return p, nil
}

func (s *Projects) SaveMilestone(_ context.Context, m project.Milestone) (project.Milestone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.nextMilestoneID
	s.nextMilestoneID++
	s.milestones[m.ID] = m
	return m, nil
}

// Invites implements invite.Repository.
type Invites struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]invite.Invitation
}

func NewInvites() *Invites {
	return &Invites{nextID: 1, rows: make(map[int64]invite.Invitation)}
}

func (s *Invites) Save(_ context.Context, inv invite.Invitation) (invite.Invitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv.ID = s.nextID
	s.nextID++
	inv.CreatedAt = time.Now().UTC()
	s.rows[inv.ID] = inv
	return inv, nil
}

func (s *Invites) FindByToken(_ context.Context, token string) (*invite.Invitation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inv := range s.rows {
		if inv.Token == token {
			found := inv
			return &found, nil
		}
	}
	return nil, nil
}
