// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"team-availability/config"
	"team-availability/internal/repository/memory"
	"team-availability/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	MemberInterface
	TeamInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.BackendMemory:
		return memory.New(log, cfg.Memory.Seed), nil
	case config.BackendPostgres:
		return postgres.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
