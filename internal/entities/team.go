// Package entities contains core business entities.
package entities

// Team groups member ids under a team name.
type Team struct {
	Name    string
	Members []string
}
