package utils

import (
	"fmt"
	"strconv"
	"time"
)

// JobNumberPrefix returns the YYMM prefix for a point in time
func JobNumberPrefix(now time.Time) string {
	return fmt.Sprintf("%02d%02d", now.Year()%100, int(now.Month()))
}

// NextJobNumber derives the next job number for a month given the current
// greatest one (empty when the month has no projects yet). The sequence is
// two fixed digits; a month that would exceed 99 is rejected rather than
// widening the field.
func NextJobNumber(prefix, latest string) (string, error) {
	sequence := 1
	if latest != "" {
		if len(latest) < 2 {
			return "", fmt.Errorf("malformed job number %q", latest)
		}
		last, err := strconv.Atoi(latest[len(latest)-2:])
		if err != nil {
			return "", fmt.Errorf("malformed job number %q: %w", latest, err)
		}
		sequence = last + 1
	}
	if sequence > 99 {
		return "", fmt.Errorf("job number sequence exhausted for %s", prefix)
	}
	return fmt.Sprintf("%s%02d", prefix, sequence), nil
}
