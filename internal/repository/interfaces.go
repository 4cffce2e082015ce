// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"team-availability/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// MemberInterface exposes member-related operations.
type MemberInterface interface {
	UpsertMember(ctx context.Context, member entities.Member) (*entities.Member, error)
	GetMember(ctx context.Context, memberID string) (*entities.Member, error)
	ListMembers(ctx context.Context) ([]entities.Member, error)
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	GetTeam(ctx context.Context, name string) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
}
