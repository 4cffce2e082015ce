// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"maps"
	"slices"

	"team-availability/internal/entities"
	"team-availability/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2/utils"
)

// FromDTOTeam builds an entities.Team from transport DTO.
// Strings are copied: request values may alias fasthttp's pooled buffers.
func FromDTOTeam(src dto.Team) entities.Team {
	var members []string
	if src.Members != nil {
		members = make([]string, 0, len(src.Members))
		for _, id := range src.Members {
			members = append(members, utils.CopyString(id))
		}
	}
	return entities.Team{
		Name:    utils.CopyString(src.TeamName),
		Members: members,
	}
}

// ToDTOTeam maps entities.Team to transport model.
func ToDTOTeam(team entities.Team) dto.Team {
	members := make([]string, 0, len(team.Members))
	members = append(members, team.Members...)
	return dto.Team{
		TeamName: team.Name,
		Members:  members,
	}
}

// FromDTOMember builds an entities.Member from transport DTO.
func FromDTOMember(src dto.Member) entities.Member {
	return entities.Member{
		ID:           utils.CopyString(src.MemberId),
		Availability: entities.Availability(slices.Clone(src.Availability)),
	}
}

// ToDTOMember maps entities.Member to transport model.
func ToDTOMember(m entities.Member) dto.Member {
	return dto.Member{
		MemberId:     m.ID,
		Availability: []int(m.Availability.Clone()),
	}
}

// ToDTOTeamAvailability maps a single team aggregate to transport model.
func ToDTOTeamAvailability(name string, a entities.Availability) dto.TeamAvailability {
	return dto.TeamAvailability{
		TeamName:     name,
		Availability: []int(a.Clone()),
	}
}

// ToDTOTeamAvailabilityList maps all team aggregates, sorted by team name.
func ToDTOTeamAvailabilityList(src map[string]entities.Availability) dto.TeamAvailabilityList {
	teams := make([]dto.TeamAvailability, 0, len(src))
	for _, name := range slices.Sorted(maps.Keys(src)) {
		teams = append(teams, ToDTOTeamAvailability(name, src[name]))
	}
	return dto.TeamAvailabilityList{Teams: teams}
}
