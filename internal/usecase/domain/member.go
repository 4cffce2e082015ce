package domain

import (
	"context"
	"fmt"

	"team-availability/internal/entities"
)

// SetMemberAvailability validates and stores a member's weekly vector.
func (u *Usecase) SetMemberAvailability(ctx context.Context, member entities.Member) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if member.ID == "" {
		return nil, fmt.Errorf("%w: member_id is required", entities.ErrInvalidArgument)
	}
	if err := member.Availability.Validate(); err != nil {
		return nil, err
	}

	return u.repo.UpsertMember(ctx, member)
}

// Member returns member by id.
func (u *Usecase) Member(ctx context.Context, memberID string) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if memberID == "" {
		return nil, fmt.Errorf("%w: member_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetMember(ctx, memberID)
}
