package domain

import (
	"context"
	"fmt"

	"team-availability/internal/entities"
)

// CreateTeam creates a team referencing existing members.
func (u *Usecase) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if team.Name == "" {
		u.log.Errorw("failed to create team: missing team_name")
		return nil, fmt.Errorf("%w: team_name is required", entities.ErrInvalidArgument)
	}
	for _, id := range team.Members {
		if id == "" {
			return nil, fmt.Errorf("%w: member id must not be empty", entities.ErrInvalidArgument)
		}
	}
	return u.repo.CreateTeam(ctx, team)
}

// Team returns team by name.
func (u *Usecase) Team(ctx context.Context, name string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		u.log.Errorw("failed to get team: missing team_name")
		return nil, fmt.Errorf("%w: team_name is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTeam(ctx, name)
}
