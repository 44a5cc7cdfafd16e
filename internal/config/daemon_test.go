package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaemonConfigDefaults(t *testing.T) {
	cfg, err := New[DaemonConfig]()
	require.NoError(t, err)
	require.NoError(t, cfg.Normalize())

	assert.Equal(t, ":50061", cfg.GrpcAddr)
	assert.Equal(t, 1, cfg.ModemCount)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "memory", cfg.Prefs.Backend)
}

func TestDaemonConfigFromEnv(t *testing.T) {
	t.Setenv("GRPC_ADDR", "7000")
	t.Setenv("MODEM_COUNT", "2")
	t.Setenv("PREFS_BACKEND", "redis")
	t.Setenv("COUNTRIES_REQUIRE_SIM", "in,cn")

	cfg, err := New[DaemonConfig]()
	require.NoError(t, err)
	require.NoError(t, cfg.Normalize())

	assert.Equal(t, ":7000", cfg.GrpcAddr)
	assert.Equal(t, 2, cfg.ModemCount)
	assert.Equal(t, "redis", cfg.Prefs.Backend)
	assert.True(t, cfg.Resources.RequiresSim("IN"))
}

func TestDaemonConfigRejectsNoModem(t *testing.T) {
	t.Setenv("MODEM_COUNT", "0")
	cfg, err := New[DaemonConfig]()
	require.NoError(t, err)
	assert.Error(t, cfg.Normalize())
}
