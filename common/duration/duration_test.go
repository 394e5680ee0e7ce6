package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const month = 2628000 * time.Second

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"", 0},
		{"10m", 10 * time.Minute},
		{"1h30m", 90 * time.Minute},
		{"2w", 14 * 24 * time.Hour},
		{"1d12h", 36 * time.Hour},
		{"10 sekunder", 10 * time.Second},
		{"2 minutter", 2 * time.Minute},
		{"1 time og 30 minutter", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNorwegian(t *testing.T) {
	got, err := ParseNorwegian("10m")
	require.NoError(t, err)
	assert.Equal(t, 10*month, got)

	got, err = ParseNorwegian("1h30m")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, got)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("om en stund")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration format")

	_, err = ParseNorwegian("snart")
	require.Error(t, err)
}

func TestNorwegian(t *testing.T) {
	assert.Equal(t, "10 sekunder", Norwegian(10*time.Second))
	assert.Equal(t, "2 minutter", Norwegian(2*time.Minute))
	assert.Equal(t, "1 time 1 sekund", Norwegian(time.Hour+time.Second))

	for _, d := range []time.Duration{5 * time.Second, 2 * time.Minute, 36 * time.Hour} {
		back, err := Parse(Norwegian(d))
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "1 hour", String(time.Hour))
}
