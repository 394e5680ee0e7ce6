package setup

import (
	"testing"

	"github.com/nmeilick/juration/config"
	"github.com/nmeilick/juration/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleConfigLoads(t *testing.T) {
	cfg, err := config.Decode("sample.hcl", []byte(SampleConfig()))
	require.NoError(t, err)

	conv, _, err := cfg.NormalizedConvert("sample.hcl")
	require.NoError(t, err)
	assert.Equal(t, units.Short, conv.GetFormat())

	srv, _, err := cfg.NormalizedServer("sample.hcl")
	require.NoError(t, err)
	assert.Equal(t, 8080, srv.Listen.Port)
	assert.Equal(t, "/api/v1", srv.APIPrefix)
}
