package usecase

import (
	"context"

	"team-availability/internal/entities"
)

// AvailabilityUsecaseInterface abstracts aggregate availability queries.
type AvailabilityUsecaseInterface interface {
	TeamAvailability(ctx context.Context) (map[string]entities.Availability, error)
	TeamAvailabilityByName(ctx context.Context, name string) (entities.Availability, error)
}

// MemberUsecaseInterface abstracts member-related operations for delivery layer.
type MemberUsecaseInterface interface {
	SetMemberAvailability(ctx context.Context, member entities.Member) (*entities.Member, error)
	Member(ctx context.Context, memberID string) (*entities.Member, error)
}

// TeamUsecaseInterface abstracts team-related operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	Team(ctx context.Context, name string) (*entities.Team, error)
}
