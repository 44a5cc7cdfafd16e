// Package ecbm tracks emergency callback mode per slot.
package ecbm

import (
	"log"
	"sync"

	"github.com/dense-identity/domainselection/internal/looper"
	"github.com/dense-identity/domainselection/internal/telephony"
)

type mode struct {
	active    bool
	transport telephony.TransportType
}

// Helper is the EmergencyCallbackModeHelper: it remembers which slots are in
// callback mode and over which transport the emergency call that entered it
// was carried.
type Helper struct {
	tel     telephony.Telephony
	handler *looper.Handler
	logger  *log.Logger

	mu    sync.Mutex
	slots map[int]mode
}

func New(l *looper.Looper, tel telephony.Telephony, logger *log.Logger) *Helper {
	if logger == nil {
		logger = log.Default()
	}
	h := &Helper{
		tel:     tel,
		handler: looper.NewHandler(l, nil),
		logger:  logger,
		slots:   make(map[int]mode),
	}
	tel.AddCallbackModeListener(h)
	return h
}

// OnCallbackModeChanged implements telephony.CallbackModeListener.
func (h *Helper) OnCallbackModeChanged(slotID int, active bool, transport telephony.TransportType) {
	h.handler.Post(func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if !active {
			transport = telephony.TransportInvalid
		}
		h.slots[slotID] = mode{active: active, transport: transport}
		h.logger.Printf("[EmergencyCallbackModeHelper] slot %d active=%t transport=%s", slotID, active, transport)
	})
}

func (h *Helper) IsInEmergencyCallbackMode(slotID int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.slots[slotID].active
}

// TransportType is the transport of the call that entered callback mode.
func (h *Helper) TransportType(slotID int) telephony.TransportType {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.slots[slotID].transport
}

func (h *Helper) Destroy() {
	h.tel.RemoveCallbackModeListener(h)
	h.handler.RemoveCallbacksAndMessages()
}
