// Package duration parses retention periods such as "30d" for check prune.
//
// Units are h (hours), d (days), w (weeks) and m (30-day months). Anything
// else is handed to time.ParseDuration, so "90m" is ninety months but
// "1h30m" is an hour and a half.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var short = regexp.MustCompile(`^(\d+)([hdwm])$`)

const day = 24 * time.Hour

var units = map[string]time.Duration{
	"h": time.Hour,
	"d": day,
	"w": 7 * day,
	"m": 30 * day,
}

// Parse parses a retention period. Zero and negative periods are rejected.
func Parse(s string) (time.Duration, error) {
	if m := short.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("invalid number: %w", err)
		}
		if n == 0 {
			return 0, fmt.Errorf("duration must be positive: %s", s)
		}
		return time.Duration(n) * units[m[2]], nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s (use 12h, 7d, 4w, or 3m)", s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive: %s", s)
	}
	return d, nil
}
