package juration

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndStringify(t *testing.T) {
	secs, err := Parse("1 time 30 minutter")
	require.NoError(t, err)
	assert.Equal(t, 5400.0, secs)

	text, err := Stringify(secs, nil)
	require.NoError(t, err)
	assert.Equal(t, "1 tm 30 minr", text)

	text, err = Humanize(secs, &Options{Format: Long})
	require.NoError(t, err)
	assert.Equal(t, "1 time 30 minutter", text)
}

func TestMicroRoundTrip(t *testing.T) {
	values := []float64{
		1, 59, 61, 3599, 3661, 90061,
		2628000 + 1,
		31536000*2 + 5,
		31536000 + 2628000*3 + 86400*4 + 3600*5 + 60*6 + 7,
	}

	for _, secs := range values {
		t.Run(fmt.Sprintf("%v", secs), func(t *testing.T) {
			text, err := Stringify(secs, &Options{Format: Micro})
			require.NoError(t, err)

			back, err := Parse(text)
			require.NoError(t, err, text)
			assert.Equal(t, secs, back, text)
		})
	}
}

func TestLongRoundTrip(t *testing.T) {
	for _, secs := range []float64{1, 2, 60, 120, 3600, 7200, 86400, 172800, 31536000, 63072000 + 2628000*2} {
		text, err := Stringify(secs, &Options{Format: Long})
		require.NoError(t, err)

		back, err := Parse(text)
		require.NoError(t, err, text)
		assert.Equal(t, secs, back, text)
	}
}

func TestDurations(t *testing.T) {
	d, err := ParseDuration("2 timer og 15 min")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour+15*time.Minute, d)

	text, err := StringifyDuration(d, &Options{Format: Chrono})
	require.NoError(t, err)
	assert.Equal(t, "2:15:00", text)
}

func TestEmbeddedConfig(t *testing.T) {
	assert.Contains(t, string(EmbeddedConfig), "convert {")
}
