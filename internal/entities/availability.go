// Package entities contains core business entities.
package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// DaysPerWeek is the length of every availability vector. Index 0 is Monday.
const DaysPerWeek = 7

// Availability holds one bit per weekday, 1 meaning available.
type Availability []int

// NewAvailability returns an all-zero vector.
func NewAvailability() Availability {
	return make(Availability, DaysPerWeek)
}

// Validate checks length and that every value is 0 or 1.
func (a Availability) Validate() error {
	if len(a) != DaysPerWeek {
		return fmt.Errorf("%w: expected %d days, got %d", ErrInvalidAvailability, DaysPerWeek, len(a))
	}
	for i, v := range a {
		if v != 0 && v != 1 {
			return fmt.Errorf("%w: day %d has value %d", ErrInvalidAvailability, i, v)
		}
	}
	return nil
}

// Clone returns an independent copy.
func (a Availability) Clone() Availability {
	if a == nil {
		return nil
	}
	out := make(Availability, len(a))
	copy(out, a)
	return out
}

// String renders the vector as "[b0, b1, ..., b6]".
func (a Availability) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')
	return sb.String()
}
