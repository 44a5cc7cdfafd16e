package prefstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	_, ok, err := s.GetBool(ctx, "vonr_emergency_supported_0")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetBool(ctx, "vonr_emergency_supported_0", true))
	v, ok, err := s.GetBool(ctx, "vonr_emergency_supported_0")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, v)

	require.NoError(t, s.Delete(ctx, "vonr_emergency_supported_0"))
	_, ok, _ = s.GetBool(ctx, "vonr_emergency_supported_0")
	assert.False(t, ok)
}

func TestOpenSelectsBackend(t *testing.T) {
	s, err := Open(context.Background(), Config{Backend: "Memory"})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	_, err = Open(context.Background(), Config{Backend: "etcd"})
	assert.ErrorContains(t, err, "unknown prefs backend")
}

func TestRedisRequiresAddr(t *testing.T) {
	_, err := NewRedis(context.Background(), Options{Addr: "  "})
	assert.Error(t, err)
}
