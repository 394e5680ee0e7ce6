package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nmeilick/juration"
	"github.com/nmeilick/juration/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEmbedded(t *testing.T) {
	cfg, err := Decode(EmbeddedPath, juration.EmbeddedConfig)
	require.NoError(t, err)

	conv, _, err := cfg.NormalizedConvert(EmbeddedPath)
	require.NoError(t, err)
	assert.Equal(t, units.Short, conv.GetFormat())
	assert.Equal(t, 0, conv.UnitCount)

	srv, _, err := cfg.NormalizedServer(EmbeddedPath)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", srv.Listen.Address())
	assert.Equal(t, 10*time.Second, srv.Listen.GetReadTimeout())
	assert.Equal(t, 2*time.Minute, srv.Listen.GetIdleTimeout())
	assert.Equal(t, "/api/v1", srv.APIPrefix)
	assert.False(t, srv.Log.Enabled())
}

func TestMissingBlocksUseDefaults(t *testing.T) {
	cfg, err := Decode("empty.hcl", nil)
	require.NoError(t, err)

	conv, _, err := cfg.NormalizedConvert("empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, units.Short, conv.Options().Format)

	srv, _, err := cfg.NormalizedServer("empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, srv.Listen.GetGracefulTimeout())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "juration.hcl")
	src := `
convert {
  format     = "LONG"
  unit_count = 2
  weeks      = true
}

server {
  api_prefix = "durations/"

  listen {
    port = 9090
    timeouts {
      read     = "1 minutt"
      graceful = "5s"
    }
  }

  log {
    log_dir = "/tmp/juration-logs"
  }
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	conv, _, err := cfg.NormalizedConvert(path)
	require.NoError(t, err)
	opts := conv.Options()
	assert.Equal(t, units.Long, opts.Format)
	assert.Equal(t, 2, opts.UnitCount)
	assert.True(t, opts.Weeks)

	srv, _, err := cfg.NormalizedServer(path)
	require.NoError(t, err)
	assert.Equal(t, "/durations", srv.APIPrefix)
	assert.Equal(t, 9090, srv.Listen.Port)
	assert.Equal(t, time.Minute, srv.Listen.GetReadTimeout())
	assert.Equal(t, 5*time.Second, srv.Listen.GetGracefulTimeout())
	assert.Equal(t, 30*time.Second, srv.Listen.GetWriteTimeout())
	assert.Equal(t, "/tmp/juration-logs/access.log", srv.Log.AccessLogPath())
}

func TestInvalidConfig(t *testing.T) {
	tests := map[string]string{
		"format":     `convert { format = "bogus" }`,
		"unit_count": `convert { unit_count = -1 }`,
		"port":       `server { listen { port = 70000 } }`,
		"timeout":    `server { listen { timeouts { read = "en stund" } } }`,
		"tls":        `server { listen { tls { cert = "cert.pem" } } }`,
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := Decode("invalid.hcl", []byte(src))
			require.NoError(t, err)

			_, _, convErr := cfg.NormalizedConvert("invalid.hcl")
			_, _, srvErr := cfg.NormalizedServer("invalid.hcl")
			assert.True(t, convErr != nil || srvErr != nil)
		})
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode("broken.hcl", []byte(`convert {`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing failed")
}
