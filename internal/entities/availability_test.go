package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAvailabilityValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      Availability
		wantErr bool
	}{
		{name: "ok", in: Availability{1, 0, 0, 0, 0, 0, 1}},
		{name: "all_zero", in: NewAvailability()},
		{name: "short", in: Availability{1, 0}, wantErr: true},
		{name: "long", in: Availability{0, 0, 0, 0, 0, 0, 0, 0}, wantErr: true},
		{name: "nil", in: nil, wantErr: true},
		{name: "non_binary", in: Availability{0, 2, 0, 0, 0, 0, 0}, wantErr: true},
		{name: "negative", in: Availability{0, 0, 0, -1, 0, 0, 0}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAvailability)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAvailabilityString(t *testing.T) {
	require.Equal(t, "[1, 1, 1, 0, 0, 0, 1]", Availability{1, 1, 1, 0, 0, 0, 1}.String())
	require.Equal(t, "[]", Availability{}.String())
}

func TestAvailabilityClone(t *testing.T) {
	src := Availability{1, 0, 0, 0, 0, 0, 1}
	dst := src.Clone()
	dst[0] = 0
	require.Equal(t, 1, src[0])
	require.Nil(t, Availability(nil).Clone())
}
