package availability

import (
	"testing"

	"team-availability/internal/entities"

	"github.com/stretchr/testify/require"
)

func sampleMembers() map[string]entities.Availability {
	return map[string]entities.Availability{
		"Amy": {1, 0, 0, 0, 0, 0, 1},
		"Bob": {1, 1, 1, 0, 0, 0, 0},
		"Cat": {0, 0, 0, 0, 1, 1, 1},
		"Dan": {1, 1, 0, 0, 0, 1, 1},
	}
}

func TestAggregateSample(t *testing.T) {
	got, err := Aggregate(sampleMembers(), map[string][]string{
		"Dev": {"Amy", "Bob"},
		"Ops": {"Cat", "Dan"},
	})
	require.NoError(t, err)
	require.Equal(t, map[string]entities.Availability{
		"Dev": {1, 1, 1, 0, 0, 0, 1},
		"Ops": {1, 1, 0, 0, 1, 1, 1},
	}, got)
}

func TestAggregateBitIsUnionOfMembers(t *testing.T) {
	members := sampleMembers()
	teams := map[string][]string{
		"All":  {"Amy", "Bob", "Cat", "Dan"},
		"Solo": {"Cat"},
		"Pair": {"Amy", "Dan"},
		"Dup":  {"Bob", "Bob"},
	}

	got, err := Aggregate(members, teams)
	require.NoError(t, err)

	for team, ids := range teams {
		for day := 0; day < entities.DaysPerWeek; day++ {
			want := 0
			for _, id := range ids {
				if members[id][day] == 1 {
					want = 1
				}
			}
			require.Equal(t, want, got[team][day], "team %s day %d", team, day)
		}
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	members := sampleMembers()
	forward, err := Aggregate(members, map[string][]string{"T": {"Amy", "Bob", "Cat"}})
	require.NoError(t, err)
	backward, err := Aggregate(members, map[string][]string{"T": {"Cat", "Bob", "Amy"}})
	require.NoError(t, err)
	require.Equal(t, forward, backward)
}

func TestAggregateEmptyTeam(t *testing.T) {
	got, err := Aggregate(sampleMembers(), map[string][]string{"Empty": {}, "Nil": nil})
	require.NoError(t, err)
	require.Equal(t, entities.Availability{0, 0, 0, 0, 0, 0, 0}, got["Empty"])
	require.Equal(t, entities.Availability{0, 0, 0, 0, 0, 0, 0}, got["Nil"])
}

func TestAggregateOneEntryPerTeam(t *testing.T) {
	got, err := Aggregate(sampleMembers(), map[string][]string{})
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = Aggregate(sampleMembers(), map[string][]string{"A": {"Amy"}, "B": {"Amy"}, "C": nil})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Contains(t, got, "A")
	require.Contains(t, got, "B")
	require.Contains(t, got, "C")
}

func TestAggregateUnknownMember(t *testing.T) {
	got, err := Aggregate(sampleMembers(), map[string][]string{
		"Dev": {"Amy", "Bob"},
		"Eng": {"Amy", "Zed"},
	})
	require.ErrorIs(t, err, entities.ErrMemberNotFound)
	require.ErrorContains(t, err, `"Zed"`)
	require.ErrorContains(t, err, `"Eng"`)
	require.Nil(t, got)
}

func TestAggregateInvalidVector(t *testing.T) {
	members := sampleMembers()
	members["Eve"] = entities.Availability{1, 0, 1}

	_, err := Aggregate(members, map[string][]string{"Sec": {"Eve"}})
	require.ErrorIs(t, err, entities.ErrInvalidAvailability)

	// unreferenced malformed vectors are not inspected
	_, err = Aggregate(members, map[string][]string{"Dev": {"Amy"}})
	require.NoError(t, err)
}

func TestAggregateDoesNotAliasInput(t *testing.T) {
	members := sampleMembers()
	got, err := Aggregate(members, map[string][]string{"Solo": {"Amy"}})
	require.NoError(t, err)

	got["Solo"][1] = 1
	require.Equal(t, entities.Availability{1, 0, 0, 0, 0, 0, 1}, members["Amy"])
}
