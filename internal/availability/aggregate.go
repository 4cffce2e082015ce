// Package availability computes team availability as the per-day union of
// member availability vectors and renders it as text.
package availability

import (
	"fmt"
	"maps"
	"slices"

	"team-availability/internal/entities"
)

// Aggregate returns, for every team in teams, the per-day OR of its members'
// vectors. A team without members yields an all-zero vector.
//
// A member id missing from members fails the whole call with
// entities.ErrMemberNotFound; a referenced vector that is not seven 0/1 values
// fails with entities.ErrInvalidAvailability. Teams are visited in name order,
// so the reported error does not depend on map iteration.
func Aggregate(members map[string]entities.Availability, teams map[string][]string) (map[string]entities.Availability, error) {
	result := make(map[string]entities.Availability, len(teams))

	for _, name := range slices.Sorted(maps.Keys(teams)) {
		acc := entities.NewAvailability()
		for _, memberID := range teams[name] {
			vec, ok := members[memberID]
			if !ok {
				return nil, fmt.Errorf("%w: team %q references %q", entities.ErrMemberNotFound, name, memberID)
			}
			if err := vec.Validate(); err != nil {
				return nil, fmt.Errorf("member %q: %w", memberID, err)
			}
			for day, bit := range vec {
				acc[day] |= bit
			}
		}
		result[name] = acc
	}

	return result, nil
}
