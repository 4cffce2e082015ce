package domain

import (
	"context"
	"fmt"

	"team-availability/internal/availability"
	"team-availability/internal/entities"
)

// TeamAvailability aggregates availability for every stored team.
func (u *Usecase) TeamAvailability(ctx context.Context) (map[string]entities.Availability, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	members, err := u.memberIndex(ctx)
	if err != nil {
		return nil, err
	}

	teams, err := u.repo.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	teamMembers := make(map[string][]string, len(teams))
	for _, t := range teams {
		teamMembers[t.Name] = t.Members
	}

	res, err := availability.Aggregate(members, teamMembers)
	if err != nil {
		u.log.Errorw("failed to aggregate team availability", "error", err)
		return nil, err
	}
	u.log.Debugw("team availability aggregated", "teams", len(res), "members", len(members))
	return res, nil
}

// TeamAvailabilityByName aggregates availability for a single team.
func (u *Usecase) TeamAvailabilityByName(ctx context.Context, name string) (entities.Availability, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		return nil, fmt.Errorf("%w: team_name is required", entities.ErrInvalidArgument)
	}

	team, err := u.repo.GetTeam(ctx, name)
	if err != nil {
		return nil, err
	}
	members, err := u.memberIndex(ctx)
	if err != nil {
		return nil, err
	}

	res, err := availability.Aggregate(members, map[string][]string{team.Name: team.Members})
	if err != nil {
		return nil, err
	}
	return res[team.Name], nil
}

func (u *Usecase) memberIndex(ctx context.Context) (map[string]entities.Availability, error) {
	list, err := u.repo.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	idx := make(map[string]entities.Availability, len(list))
	for _, m := range list {
		idx[m.ID] = m.Availability
	}
	return idx, nil
}
