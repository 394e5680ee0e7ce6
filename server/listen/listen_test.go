package listen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "10 sekunder", cfg.Timeouts.Read)
	assert.Equal(t, "2 minutter", cfg.Timeouts.Idle)
	assert.Equal(t, DefaultReadTimeout, cfg.GetReadTimeout())
	assert.Equal(t, DefaultIdleTimeout, cfg.GetIdleTimeout())
	assert.Equal(t, "127.0.0.1:8080", cfg.Address())
	require.NoError(t, cfg.Normalize())
}

func TestNormalizeTimeouts(t *testing.T) {
	cfg := &Config{
		Timeouts: &TimeoutsConfig{
			Read:       "1 minutt",
			Write:      "45s",
			ReadHeader: "0",
			Graceful:   "1 time og 30 sekunder",
		},
	}
	require.NoError(t, cfg.Normalize())

	assert.Equal(t, time.Minute, cfg.GetReadTimeout())
	assert.Equal(t, 45*time.Second, cfg.GetWriteTimeout())
	assert.Equal(t, DefaultIdleTimeout, cfg.GetIdleTimeout())
	assert.Equal(t, DefaultHeaderTimeout, cfg.GetReadHeaderTimeout())
	assert.Equal(t, time.Hour+30*time.Second, cfg.GetGracefulTimeout())
}

func TestValidate(t *testing.T) {
	cfg := &Config{Timeouts: &TimeoutsConfig{Read: "lenge"}}
	require.Error(t, cfg.Normalize())

	cfg = &Config{Port: 70000}
	require.Error(t, cfg.Normalize())

	cfg = &Config{TLS: &TLSConfig{Key: "key.pem"}}
	require.Error(t, cfg.Normalize())

	cfg = &Config{TLS: &TLSConfig{Cert: "cert.pem", Key: "key.pem"}}
	require.NoError(t, cfg.Normalize())
	assert.Equal(t, "cert.pem", cfg.GetTLSCert())
}
