// Package carrierhelper keeps the carrier configuration values that must
// still be known after the SIM that provided them is removed.
package carrierhelper

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dense-identity/domainselection/internal/prefstore"
	"github.com/dense-identity/domainselection/internal/telephony"
)

const storeTimeout = 2 * time.Second

func vonrKey(slotID int) string {
	return fmt.Sprintf("vonr_emergency_supported_%d", slotID)
}

// Helper is the CarrierConfigHelper. Values are cached in memory and written
// through to the preference store by a background persister, so callers on
// the service looper never wait on the store.
type Helper struct {
	platform *telephony.Platform
	store    prefstore.Store
	logger   *log.Logger

	mu     sync.Mutex
	vonr   map[int]bool
	writes map[int]bool
	loads  []int

	wake      chan struct{}
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// New loads the persisted values of the first modemCount slots and starts
// the persister. Close stops it.
func New(ctx context.Context, p *telephony.Platform, store prefstore.Store, modemCount int, logger *log.Logger) *Helper {
	if logger == nil {
		logger = log.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	h := &Helper{
		platform: p,
		store:    store,
		logger:   logger,
		vonr:     make(map[int]bool),
		writes:   make(map[int]bool),
		wake:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for slot := 0; slot < modemCount; slot++ {
		h.load(ctx, slot)
	}
	go h.persist()
	return h
}

// load reads slot from the store unless a newer value is already cached.
func (h *Helper) load(ctx context.Context, slot int) {
	c, cancel := context.WithTimeout(ctx, storeTimeout)
	v, ok, err := h.store.GetBool(c, vonrKey(slot))
	cancel()
	if err != nil {
		h.logger.Printf("[CarrierConfigHelper] reading slot %d: %v", slot, err)
		return
	}
	if !ok {
		return
	}
	h.mu.Lock()
	if _, known := h.vonr[slot]; !known {
		h.vonr[slot] = v
	}
	h.mu.Unlock()
}

func (h *Helper) save(slot int, v bool) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := h.store.SetBool(ctx, vonrKey(slot), v); err != nil {
		h.logger.Printf("[CarrierConfigHelper] persisting slot %d: %v", slot, err)
	}
}

func (h *Helper) signal() {
	select {
	case h.wake <- struct{}{}:
	default:
	}
}

// persist runs the queued store operations until Close. Only the latest
// value of a slot is written.
func (h *Helper) persist() {
	defer close(h.done)
	for {
		select {
		case <-h.wake:
			h.drain()
		case <-h.stop:
			h.drain()
			return
		}
	}
}

func (h *Helper) drain() {
	for {
		h.mu.Lock()
		loads, writes := h.loads, h.writes
		h.loads, h.writes = nil, make(map[int]bool)
		h.mu.Unlock()
		if len(loads) == 0 && len(writes) == 0 {
			return
		}
		for _, slot := range loads {
			h.load(context.Background(), slot)
		}
		for slot, v := range writes {
			h.save(slot, v)
		}
	}
}

// Close stops the persister once the queued operations are done. It does
// not wait for them.
func (h *Helper) Close() {
	h.closeOnce.Do(func() { close(h.stop) })
}

// Done is closed when the persister has exited.
func (h *Helper) Done() <-chan struct{} { return h.done }

// OnModemCountChanged queues a load of the persisted values of slots that
// just appeared.
func (h *Helper) OnModemCountChanged(oldCount, newCount int) {
	if newCount <= oldCount {
		return
	}
	h.mu.Lock()
	for slot := oldCount; slot < newCount; slot++ {
		h.loads = append(h.loads, slot)
	}
	h.mu.Unlock()
	h.signal()
}

// OnCarrierConfigChanged refreshes the cached values of slotID from the
// configuration of subID. An invalid subscription keeps the old values.
func (h *Helper) OnCarrierConfigChanged(slotID, subID int) {
	if slotID < 0 || !telephony.IsValidSubID(subID) {
		return
	}
	cfg := h.platform.CarrierConfig(subID)
	supported := cfg.VonrEnabled && cfg.EmergencyVonrSupported

	h.mu.Lock()
	prev, known := h.vonr[slotID]
	h.vonr[slotID] = supported
	changed := !known || prev != supported
	if changed {
		h.writes[slotID] = supported
	}
	h.mu.Unlock()
	if !changed {
		return
	}
	h.logger.Printf("[CarrierConfigHelper] slot %d sub %d vonr emergency supported=%t", slotID, subID, supported)
	h.signal()
}

// IsVoNrEmergencySupported reports the last known VoNR emergency support of slotID.
func (h *Helper) IsVoNrEmergencySupported(slotID int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.vonr[slotID]
}
