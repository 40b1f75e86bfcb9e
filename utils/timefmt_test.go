package utils

import (
	"errors"
	"testing"
	"time"

	"car-auction/internal/auctionerrors"

	"github.com/stretchr/testify/require"
)

func TestParseEndTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		want      time.Time
		wantError bool
	}{
		{name: "valid", input: "2030-01-02 15:04:05", want: time.Date(2030, 1, 2, 15, 4, 5, 0, time.Local)},
		{name: "surrounding_spaces", input: "  2030-01-02 15:04:05 ", want: time.Date(2030, 1, 2, 15, 4, 5, 0, time.Local)},
		{name: "missing_seconds", input: "2030-01-02 15:04", wantError: true},
		{name: "iso_format", input: "2030-01-02T15:04:05Z", wantError: true},
		{name: "invalid_month", input: "2030-13-02 15:04:05", wantError: true},
		{name: "empty", input: "", wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseEndTime(tc.input)
			if tc.wantError {
				require.Error(t, err)
				require.True(t, errors.Is(err, auctionerrors.ErrInvalidTimeFormat))
				return
			}
			require.NoError(t, err)
			require.True(t, tc.want.Equal(got), "want %v, got %v", tc.want, got)
		})
	}
}

func TestFormatEndTime_RoundTrip(t *testing.T) {
	t.Parallel()

	in := time.Date(2031, 7, 8, 9, 10, 11, 0, time.Local)
	got, err := ParseEndTime(FormatEndTime(in))
	require.NoError(t, err)
	require.True(t, in.Equal(got))
}
