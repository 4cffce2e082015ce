package repository

import (
	"context"
	"testing"

	"team-availability/config"
	"team-availability/internal/repository/memory"
	"team-availability/internal/repository/postgres"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewSelectsBackend(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Memory: config.MemoryConfig{Seed: true}}

	repo, err := New(ctx, config.BackendMemory, zap.NewNop().Sugar(), cfg)
	require.NoError(t, err)
	require.IsType(t, &memory.Memory{}, repo)

	repo, err = New(ctx, config.BackendPostgres, zap.NewNop().Sugar(), cfg)
	require.NoError(t, err)
	require.IsType(t, &postgres.Postgres{}, repo)
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New(context.Background(), "redis", zap.NewNop().Sugar(), &config.Config{})
	require.ErrorContains(t, err, "unknown repo backend")
}
