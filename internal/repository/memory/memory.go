// Package memory implements the repository in process memory.
package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"team-availability/internal/entities"

	"go.uber.org/zap"
)

// Memory keeps members and teams in maps guarded by a RWMutex.
type Memory struct {
	log  *zap.SugaredLogger
	seed bool

	mu      sync.RWMutex
	members map[string]entities.Availability
	teams   map[string][]string
}

// New creates an empty store. When seed is set, OnStart loads Fixture.
func New(log *zap.SugaredLogger, seed bool) *Memory {
	return &Memory{
		log:     log.Named("repo.memory"),
		seed:    seed,
		members: make(map[string]entities.Availability),
		teams:   make(map[string][]string),
	}
}

// OnStart loads the fixture data if seeding is enabled.
func (m *Memory) OnStart(_ context.Context) error {
	if !m.seed {
		return nil
	}

	members, teams := Fixture()

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, mem := range members {
		m.members[mem.ID] = mem.Availability.Clone()
	}
	for _, t := range teams {
		m.teams[t.Name] = slices.Clone(t.Members)
	}
	m.log.Debugw("memory store seeded", "members", len(members), "teams", len(teams))
	return nil
}

// OnStop is a no-op.
func (m *Memory) OnStop(_ context.Context) error {
	return nil
}

// UpsertMember stores member availability, replacing any previous vector.
func (m *Memory) UpsertMember(_ context.Context, member entities.Member) (*entities.Member, error) {
	m.mu.Lock()
	m.members[member.ID] = member.Availability.Clone()
	m.mu.Unlock()

	m.log.Infow("member availability updated", "member_id", member.ID)
	return &entities.Member{ID: member.ID, Availability: member.Availability.Clone()}, nil
}

// GetMember returns a member by id.
func (m *Memory) GetMember(_ context.Context, memberID string) (*entities.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	vec, ok := m.members[memberID]
	if !ok {
		return nil, entities.ErrMemberNotFound
	}
	return &entities.Member{ID: memberID, Availability: vec.Clone()}, nil
}

// ListMembers returns all members ordered by id.
func (m *Memory) ListMembers(_ context.Context) ([]entities.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]entities.Member, 0, len(m.members))
	for _, id := range slices.Sorted(maps.Keys(m.members)) {
		res = append(res, entities.Member{ID: id, Availability: m.members[id].Clone()})
	}
	return res, nil
}

// CreateTeam stores a new team. Every member must already exist.
func (m *Memory) CreateTeam(_ context.Context, team entities.Team) (*entities.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.teams[team.Name]; ok {
		return nil, entities.ErrTeamExists
	}
	for _, id := range team.Members {
		if _, ok := m.members[id]; !ok {
			return nil, fmt.Errorf("%w: %q", entities.ErrMemberNotFound, id)
		}
	}

	m.teams[team.Name] = slices.Clone(team.Members)
	m.log.Infow("team created", "team", team.Name, "members", len(team.Members))
	return &entities.Team{Name: team.Name, Members: slices.Clone(team.Members)}, nil
}

// GetTeam returns a team by name.
func (m *Memory) GetTeam(_ context.Context, name string) (*entities.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	members, ok := m.teams[name]
	if !ok {
		return nil, entities.ErrTeamNotFound
	}
	return &entities.Team{Name: name, Members: slices.Clone(members)}, nil
}

// ListTeams returns all teams ordered by name.
func (m *Memory) ListTeams(_ context.Context) ([]entities.Team, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]entities.Team, 0, len(m.teams))
	for _, name := range slices.Sorted(maps.Keys(m.teams)) {
		res = append(res, entities.Team{Name: name, Members: slices.Clone(m.teams[name])})
	}
	return res, nil
}
