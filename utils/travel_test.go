package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatTravelDuration(t *testing.T) {
	cases := map[int]string{
		0:    "0 min",
		59:   "0 min",
		60:   "1 min",
		540:  "9 min",
		3600: "1 hr 0 min",
		3900: "1 hr 5 min",
		7380: "2 hr 3 min",
	}
	for seconds, want := range cases {
		require.Equal(t, want, FormatTravelDuration(seconds), "seconds %d", seconds)
	}
}

func TestFormatTravelDistance(t *testing.T) {
	cases := map[int]string{
		0:     "0.0 mi",
		1609:  "1.0 mi",
		2500:  "1.6 mi",
		16093: "10.0 mi",
		32187: "20.0 mi",
	}
	for meters, want := range cases {
		require.Equal(t, want, FormatTravelDistance(meters), "meters %d", meters)
	}
}
