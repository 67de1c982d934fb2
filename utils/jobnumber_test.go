package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJobNumberPrefix(t *testing.T) {
	cases := map[time.Time]string{
		time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC):  "2608",
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC):   "2601",
		time.Date(2030, time.December, 31, 23, 0, 0, 0, time.UTC): "3012",
	}
	for now, want := range cases {
		require.Equal(t, want, JobNumberPrefix(now))
	}
}

func TestNextJobNumberFirstOfMonth(t *testing.T) {
	got, err := NextJobNumber("2608", "")
	require.NoError(t, err)
	require.Equal(t, "260801", got)
}

func TestNextJobNumberIncrements(t *testing.T) {
	got, err := NextJobNumber("2608", "260807")
	require.NoError(t, err)
	require.Equal(t, "260808", got)

	got, err = NextJobNumber("2608", "260809")
	require.NoError(t, err)
	require.Equal(t, "260810", got)
}

func TestNextJobNumberSequenceExhausted(t *testing.T) {
	_, err := NextJobNumber("2608", "260899")
	require.Error(t, err)
	require.Contains(t, err.Error(), "exhausted")
}

func TestNextJobNumberMalformedLatest(t *testing.T) {
	_, err := NextJobNumber("2608", "2608XY")
	require.Error(t, err)

	_, err = NextJobNumber("2608", "8")
	require.Error(t, err)
}
