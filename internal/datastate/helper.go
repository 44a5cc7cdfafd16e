// Package datastate tracks the emergency PDN connection of every slot.
package datastate

import (
	"log"
	"sync"

	"github.com/dense-identity/domainselection/internal/looper"
	"github.com/dense-identity/domainselection/internal/telephony"
)

// Listener is told about emergency PDN changes of the slot it watches.
type Listener interface {
	OnEmergencyPdnStateChanged(transport telephony.TransportType, state telephony.EmergencyPdnState)
}

type pdn struct {
	state     telephony.EmergencyPdnState
	transport telephony.TransportType
}

// Helper caches the emergency PDN state per slot. Queries and listener
// notifications happen on the looper.
type Helper struct {
	tel     telephony.Telephony
	handler *looper.Handler
	logger  *log.Logger

	mu        sync.Mutex
	slots     map[int]pdn
	listeners map[int]Listener
}

func New(l *looper.Looper, tel telephony.Telephony, logger *log.Logger) *Helper {
	if logger == nil {
		logger = log.Default()
	}
	h := &Helper{
		tel:       tel,
		handler:   looper.NewHandler(l, nil),
		logger:    logger,
		slots:     make(map[int]pdn),
		listeners: make(map[int]Listener),
	}
	tel.AddEmergencyPdnListener(h)
	return h
}

// OnEmergencyPdnStateChanged implements telephony.EmergencyPdnListener.
func (h *Helper) OnEmergencyPdnStateChanged(slotID int, state telephony.EmergencyPdnState, transport telephony.TransportType) {
	h.handler.Post(func() { h.update(slotID, state, transport) })
}

func (h *Helper) update(slotID int, state telephony.EmergencyPdnState, transport telephony.TransportType) {
	h.mu.Lock()
	prev := h.slots[slotID]
	next := pdn{state: state, transport: transport}
	if state == telephony.PdnStateIdle {
		next.transport = telephony.TransportInvalid
	}
	h.slots[slotID] = next
	l := h.listeners[slotID]
	h.mu.Unlock()

	if prev == next {
		return
	}
	h.logger.Printf("[DataConnectionStateHelper] slot %d emergency PDN %s on %s", slotID, state, transport)
	if l != nil {
		l.OnEmergencyPdnStateChanged(transport, state)
	}
}

// SetListener installs l as the only listener for slotID; nil removes it.
func (h *Helper) SetListener(slotID int, l Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if l == nil {
		delete(h.listeners, slotID)
		return
	}
	h.listeners[slotID] = l
}

// ClearListener removes l if it is still the listener of slotID.
func (h *Helper) ClearListener(slotID int, l Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listeners[slotID] == l {
		delete(h.listeners, slotID)
	}
}

func (h *Helper) DataState(slotID int) telephony.EmergencyPdnState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.slots[slotID].state
}

// Transport is the transport of the emergency PDN, or TransportInvalid when idle.
func (h *Helper) Transport(slotID int) telephony.TransportType {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.slots[slotID].transport
}

// IsDisconnected reports whether slotID has no emergency PDN at all.
func (h *Helper) IsDisconnected(slotID int) bool {
	return h.DataState(slotID) == telephony.PdnStateIdle
}

// HasActivePdnOn reports whether slotID holds an emergency PDN on transport
// that has not finished disconnecting.
func (h *Helper) HasActivePdnOn(slotID int, transport telephony.TransportType) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	p := h.slots[slotID]
	return p.state != telephony.PdnStateIdle && p.transport == transport
}

func (h *Helper) Destroy() {
	h.tel.RemoveEmergencyPdnListener(h)
	h.handler.RemoveCallbacksAndMessages()
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = make(map[int]Listener)
}
