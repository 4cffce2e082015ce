// Package entities contains core business entities.
package entities

// Member is an individual with a weekly availability vector.
type Member struct {
	ID           string
	Availability Availability
}
