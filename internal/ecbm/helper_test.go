package ecbm

import (
	"io"
	"log"
	"testing"

	"github.com/dense-identity/domainselection/internal/looper"
	"github.com/dense-identity/domainselection/internal/platform"
	"github.com/dense-identity/domainselection/internal/telephony"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestCallbackModeLifecycle(t *testing.T) {
	l := looper.New("test", clockwork.NewFakeClock())
	b := platform.NewBridge(2, nil, nil)
	h := New(l, b, log.New(io.Discard, "", 0))

	b.SetCallbackMode(1, true, telephony.TransportWLAN)
	assert.False(t, h.IsInEmergencyCallbackMode(1))
	l.Flush()
	assert.True(t, h.IsInEmergencyCallbackMode(1))
	assert.Equal(t, telephony.TransportWLAN, h.TransportType(1))
	assert.False(t, h.IsInEmergencyCallbackMode(0))

	b.SetCallbackMode(1, false, telephony.TransportWLAN)
	l.Flush()
	assert.False(t, h.IsInEmergencyCallbackMode(1))
	assert.Equal(t, telephony.TransportInvalid, h.TransportType(1))
}

func TestDestroyDetaches(t *testing.T) {
	l := looper.New("test", clockwork.NewFakeClock())
	b := platform.NewBridge(1, nil, nil)
	h := New(l, b, log.New(io.Discard, "", 0))
	h.Destroy()

	b.SetCallbackMode(0, true, telephony.TransportWWAN)
	l.Flush()
	assert.False(t, h.IsInEmergencyCallbackMode(0))
}
