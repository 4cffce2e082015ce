package availability

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"team-availability/internal/entities"
)

// Lines renders one "Team: [b0, ..., b6]" line per team in ascending team order.
func Lines(teams map[string]entities.Availability) []string {
	lines := make([]string, 0, len(teams))
	for _, name := range slices.Sorted(maps.Keys(teams)) {
		lines = append(lines, name+": "+teams[name].String())
	}
	return lines
}

// Format writes Lines to w, each terminated by a newline.
func Format(w io.Writer, teams map[string]entities.Availability) error {
	for _, line := range Lines(teams) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
