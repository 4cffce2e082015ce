package mapper

import (
	"testing"

	"team-availability/internal/entities"
	"team-availability/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2/utils"
	"github.com/stretchr/testify/require"
)

func TestToDTOTeamAvailabilityListSorted(t *testing.T) {
	got := ToDTOTeamAvailabilityList(map[string]entities.Availability{
		"Ops": {1, 1, 0, 0, 1, 1, 1},
		"Dev": {1, 1, 1, 0, 0, 0, 1},
	})

	require.Equal(t, dto.TeamAvailabilityList{Teams: []dto.TeamAvailability{
		{TeamName: "Dev", Availability: []int{1, 1, 1, 0, 0, 0, 1}},
		{TeamName: "Ops", Availability: []int{1, 1, 0, 0, 1, 1, 1}},
	}}, got)
}

func TestToDTOTeamAvailabilityListEmpty(t *testing.T) {
	got := ToDTOTeamAvailabilityList(nil)
	require.NotNil(t, got.Teams)
	require.Empty(t, got.Teams)
}

func TestToDTOTeamKeepsMemberOrder(t *testing.T) {
	got := ToDTOTeam(entities.Team{Name: "Dev", Members: []string{"Bob", "Amy"}})
	require.Equal(t, dto.Team{TeamName: "Dev", Members: []string{"Bob", "Amy"}}, got)

	empty := ToDTOTeam(entities.Team{Name: "Empty"})
	require.NotNil(t, empty.Members)
}

func TestFromDTOMemberCopies(t *testing.T) {
	src := dto.Member{MemberId: "Eve", Availability: []int{0, 1, 0, 1, 0, 1, 0}}
	got := FromDTOMember(src)
	src.Availability[0] = 1
	require.Equal(t, entities.Member{ID: "Eve", Availability: entities.Availability{0, 1, 0, 1, 0, 1, 0}}, got)
}

func TestFromDTOTeamDetachesRequestBuffer(t *testing.T) {
	buf := []byte("QAAmy")
	src := dto.Team{
		TeamName: utils.UnsafeString(buf[:2]),
		Members:  []string{utils.UnsafeString(buf[2:])},
	}

	got := FromDTOTeam(src)
	copy(buf, "XXYYY")

	require.Equal(t, entities.Team{Name: "QA", Members: []string{"Amy"}}, got)
}

func TestFromDTOMemberDetachesRequestBuffer(t *testing.T) {
	buf := []byte("Eve")
	got := FromDTOMember(dto.Member{MemberId: utils.UnsafeString(buf), Availability: []int{1, 0, 0, 0, 0, 0, 0}})
	copy(buf, "Zed")

	require.Equal(t, "Eve", got.ID)
}
