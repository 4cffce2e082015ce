// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrMemberNotFound is returned when a member id has no availability record.
	ErrMemberNotFound = errors.New("member not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidAvailability signals a malformed availability vector.
	ErrInvalidAvailability = errors.New("invalid availability")
	// ErrTeamExists signals team name conflict.
	ErrTeamExists = errors.New("team exists")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
)
