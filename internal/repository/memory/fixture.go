package memory

import "team-availability/internal/entities"

// Fixture returns the built-in members and teams.
func Fixture() ([]entities.Member, []entities.Team) {
	members := []entities.Member{
		{ID: "Amy", Availability: entities.Availability{1, 0, 0, 0, 0, 0, 1}},
		{ID: "Bob", Availability: entities.Availability{1, 1, 1, 0, 0, 0, 0}},
		{ID: "Cat", Availability: entities.Availability{0, 0, 0, 0, 1, 1, 1}},
		{ID: "Dan", Availability: entities.Availability{1, 1, 0, 0, 0, 1, 1}},
	}
	teams := []entities.Team{
		{Name: "Dev", Members: []string{"Amy", "Bob"}},
		{Name: "Ops", Members: []string{"Cat", "Dan"}},
	}
	return members, teams
}
