package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]time.Duration{
		"12h":   12 * time.Hour,
		"30d":   30 * 24 * time.Hour,
		"4w":    28 * 24 * time.Hour,
		"3m":    90 * 24 * time.Hour,
		"1h30m": 90 * time.Minute,
	}
	for in, want := range tests {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "d", "7x", "0d", "-5h", "soon"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}
