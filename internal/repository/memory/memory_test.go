package memory

import (
	"context"
	"testing"

	"team-availability/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newStore(t *testing.T, seed bool) *Memory {
	t.Helper()
	m := New(zap.NewNop().Sugar(), seed)
	require.NoError(t, m.OnStart(context.Background()))
	t.Cleanup(func() { _ = m.OnStop(context.Background()) })
	return m
}

func TestMemorySeeded(t *testing.T) {
	ctx := context.Background()
	m := newStore(t, true)

	members, err := m.ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 4)
	require.Equal(t, "Amy", members[0].ID)

	teams, err := m.ListTeams(ctx)
	require.NoError(t, err)
	require.Equal(t, []entities.Team{
		{Name: "Dev", Members: []string{"Amy", "Bob"}},
		{Name: "Ops", Members: []string{"Cat", "Dan"}},
	}, teams)
}

func TestMemoryUnseeded(t *testing.T) {
	m := newStore(t, false)

	members, err := m.ListMembers(context.Background())
	require.NoError(t, err)
	require.Empty(t, members)
}

func TestMemoryMemberRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := newStore(t, false)

	_, err := m.GetMember(ctx, "Eve")
	require.ErrorIs(t, err, entities.ErrMemberNotFound)

	vec := entities.Availability{0, 1, 0, 1, 0, 1, 0}
	_, err = m.UpsertMember(ctx, entities.Member{ID: "Eve", Availability: vec})
	require.NoError(t, err)
	vec[0] = 1

	got, err := m.GetMember(ctx, "Eve")
	require.NoError(t, err)
	require.Equal(t, entities.Availability{0, 1, 0, 1, 0, 1, 0}, got.Availability)

	got.Availability[1] = 0
	again, err := m.GetMember(ctx, "Eve")
	require.NoError(t, err)
	require.Equal(t, 1, again.Availability[1])
}

func TestMemoryCreateTeam(t *testing.T) {
	ctx := context.Background()
	m := newStore(t, true)

	created, err := m.CreateTeam(ctx, entities.Team{Name: "QA", Members: []string{"Dan", "Amy"}})
	require.NoError(t, err)
	require.Equal(t, []string{"Dan", "Amy"}, created.Members)

	_, err = m.CreateTeam(ctx, entities.Team{Name: "QA"})
	require.ErrorIs(t, err, entities.ErrTeamExists)

	_, err = m.CreateTeam(ctx, entities.Team{Name: "Eng", Members: []string{"Amy", "Zed"}})
	require.ErrorIs(t, err, entities.ErrMemberNotFound)
	_, err = m.GetTeam(ctx, "Eng")
	require.ErrorIs(t, err, entities.ErrTeamNotFound)

	empty, err := m.CreateTeam(ctx, entities.Team{Name: "Empty"})
	require.NoError(t, err)
	require.Empty(t, empty.Members)

	fetched, err := m.GetTeam(ctx, "QA")
	require.NoError(t, err)
	require.Equal(t, []string{"Dan", "Amy"}, fetched.Members)
}

func TestMemorySeedLogsBelowInfo(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := New(zap.New(core).Sugar(), true)
	require.NoError(t, m.OnStart(context.Background()))

	require.Zero(t, logs.Len())
}
