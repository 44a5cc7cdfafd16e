package platform

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/dense-identity/domainselection/internal/telephony"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarrierConfigLoaderOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
emergency_scan_timer_sec = 25
emergency_over_ims_supported_3gpp_network_types = [3, 6]
emergency_cdma_preferred_numbers = ["110"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "7.toml"), []byte(content), 0o600))

	loader := NewCarrierConfigLoader(dir, log.New(io.Discard, "", 0))
	cfg, err := loader.Load(7)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.EmergencyScanTimerSec)
	assert.Equal(t, []telephony.AccessNetworkType{telephony.EUTRAN, telephony.NGRAN}, cfg.EmergencyOverImsSupportedRats)
	assert.True(t, cfg.IsCdmaPreferredNumber("110"))
	// untouched keys keep their defaults
	assert.Equal(t, 120, cfg.CrossStackRedialTimerSec)
	assert.Equal(t, []telephony.AccessNetworkType{telephony.UTRAN, telephony.GERAN}, cfg.EmergencyOverCsSupportedRats)
}

func TestCarrierConfigLoaderFallsBackToDefaultFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "default.toml"), []byte("emergency_requires_ims_registration = true\n"), 0o600))

	cfg, err := NewCarrierConfigLoader(dir, log.New(io.Discard, "", 0)).Load(3)
	require.NoError(t, err)
	assert.True(t, cfg.EmergencyRequiresImsRegistration)
}

func TestCarrierConfigLoaderCorruptFileYieldsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.toml"), []byte("emergency_scan_timer_sec = [oops"), 0o600))

	cfg, err := NewCarrierConfigLoader(dir, log.New(io.Discard, "", 0)).Load(1)
	require.NoError(t, err)
	assert.Equal(t, telephony.DefaultCarrierConfig(), cfg)
}

func TestBridgeOverrideWinsOverLoader(t *testing.T) {
	b := NewBridge(1, NewCarrierConfigLoader(t.TempDir(), log.New(io.Discard, "", 0)), nil)
	override := telephony.DefaultCarrierConfig()
	override.EmergencyScanTimerSec = 3
	b.SetCarrierConfig(1, override)

	cfg, err := b.ConfigForSubID(1)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.EmergencyScanTimerSec)

	override.EmergencyScanTimerSec = 99
	cfg, _ = b.ConfigForSubID(1)
	assert.Equal(t, 3, cfg.EmergencyScanTimerSec, "override must be copied")
}

func TestWakeLockCounting(t *testing.T) {
	b := NewBridge(1, nil, nil)
	wl := b.NewWakeLock("test")
	wl.Acquire()
	wl.Acquire()
	assert.Equal(t, 1, b.HeldWakeLocks())
	wl.Release()
	wl.Release()
	assert.Zero(t, b.HeldWakeLocks())
}
