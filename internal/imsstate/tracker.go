// Package imsstate caches the IMS registration, MMTEL capability, service
// state and barring state of one SIM slot and fans changes out to listeners.
package imsstate

import (
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/dense-identity/domainselection/internal/looper"
	"github.com/dense-identity/domainselection/internal/telephony"
)

// MmTelFeatureUnavailableWait is the grace period before a transiently
// unavailable MMTEL feature is reported as unavailable.
const MmTelFeatureUnavailableWait = time.Second

const msgMmTelFeatureUnavailable = 1

type triState int8

const (
	stateUnknown triState = iota
	stateFalse
	stateTrue
)

func triOf(b bool) triState {
	if b {
		return stateTrue
	}
	return stateFalse
}

func (s triState) String() string {
	switch s {
	case stateTrue:
		return "true"
	case stateFalse:
		return "false"
	default:
		return "unknown"
	}
}

// ImsStateListener is notified on the looper whenever a part of the IMS state changes.
type ImsStateListener interface {
	OnImsMmTelFeatureAvailableChanged()
	OnImsRegistrationStateChanged()
	OnImsMmTelCapabilitiesChanged()
}

// ServiceStateListener is notified when the framework pushes a new ServiceState.
type ServiceStateListener interface {
	OnServiceStateUpdated(ss *telephony.ServiceState)
}

// BarringInfoListener is notified when the framework pushes new BarringInfo.
type BarringInfoListener interface {
	OnBarringInfoUpdated(info *telephony.BarringInfo)
}

// Tracker is the IMS state cache of one slot. Every method must be called
// on the looper the tracker was built with; platform callbacks are re-posted.
type Tracker struct {
	slotID  int
	subID   int
	ims     telephony.ImsManager
	handler *looper.Handler
	logger  *log.Logger

	featureAvailable triState
	registered       triState
	accessNetwork    telephony.AccessNetworkType
	crossSim         bool
	capabilities     telephony.MmTelCapabilities
	capsReceived     bool

	serviceState *telephony.ServiceState
	barringInfo  *telephony.BarringInfo

	stateCb *stateCallback
	regCb   *registrationCallback
	capCb   *capabilityCallback

	imsListeners     []ImsStateListener
	serviceListeners []ServiceStateListener
	barringListeners []BarringInfoListener
}

// New creates a tracker for slotID. It does nothing until Start.
func New(l *looper.Looper, slotID int, ims telephony.ImsManager, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.Default()
	}
	t := &Tracker{
		slotID: slotID,
		subID:  telephony.InvalidSubID,
		ims:    ims,
		logger: logger,
	}
	t.handler = looper.NewHandler(l, t.handleMessage)
	return t
}

func (t *Tracker) logf(format string, args ...any) {
	t.logger.Printf("[ImsStateTracker-%d] %s", t.slotID, fmt.Sprintf(format, args...))
}

func (t *Tracker) SlotID() int { return t.slotID }

func (t *Tracker) SubID() int { return t.subID }

func (t *Tracker) handleMessage(msg looper.Message) {
	switch msg.What {
	case msgMmTelFeatureUnavailable:
		reason, _ := msg.Obj.(telephony.ImsUnavailableReason)
		t.logf("MMTEL feature still unavailable after grace period (%s)", reason)
		t.setUnavailable()
	}
}

// Start begins monitoring subID. Starting again with the same subscription
// while the IMS state callback is registered is a no-op.
func (t *Tracker) Start(subID int) {
	if t.subID == subID {
		if !telephony.IsValidSubID(subID) {
			t.setUnavailable()
			return
		}
		if t.stateCb != nil {
			t.logf("already started for sub %d", subID)
			return
		}
	}

	t.logf("start sub %d (was %d)", subID, t.subID)
	t.stopListening()
	t.subID = subID

	if !telephony.IsValidSubID(subID) {
		t.setUnavailable()
		return
	}

	t.resetState()
	cb := &stateCallback{tracker: t}
	if err := t.ims.RegisterImsStateCallback(subID, cb); err != nil {
		t.logf("registering IMS state callback failed: %v", err)
		t.setUnavailable()
		return
	}
	t.stateCb = cb
}

// Stop unregisters every platform callback and forgets the IMS state.
func (t *Tracker) Stop() {
	t.logf("stop sub %d", t.subID)
	t.stopListening()
	t.resetState()
}

// Destroy stops the tracker and drops all listeners.
func (t *Tracker) Destroy() {
	t.Stop()
	t.handler.RemoveCallbacksAndMessages()
	t.imsListeners = nil
	t.serviceListeners = nil
	t.barringListeners = nil
}

func (t *Tracker) resetState() {
	t.featureAvailable = stateUnknown
	t.registered = stateUnknown
	t.accessNetwork = telephony.AccessNetworkUnknown
	t.crossSim = false
	t.capabilities = telephony.CapabilityNone
	t.capsReceived = false
}

func (t *Tracker) stopListening() {
	t.handler.RemoveMessages(msgMmTelFeatureUnavailable)
	t.unregisterFeatureCallbacks()
	if t.stateCb != nil {
		t.ims.UnregisterImsStateCallback(t.subID, t.stateCb)
		t.stateCb = nil
	}
}

func (t *Tracker) registerFeatureCallbacks() {
	if t.regCb == nil {
		cb := &registrationCallback{tracker: t}
		if err := t.ims.RegisterImsRegistrationCallback(t.subID, cb); err != nil {
			t.logf("registering IMS registration callback failed: %v", err)
			t.setUnregistered()
		} else {
			t.regCb = cb
		}
	}
	if t.capCb == nil {
		cb := &capabilityCallback{tracker: t}
		if err := t.ims.RegisterMmTelCapabilityCallback(t.subID, cb); err != nil {
			t.logf("registering MMTEL capability callback failed: %v", err)
			t.setCapabilities(telephony.CapabilityNone)
		} else {
			t.capCb = cb
		}
	}
}

func (t *Tracker) unregisterFeatureCallbacks() {
	if t.regCb != nil {
		t.ims.UnregisterImsRegistrationCallback(t.subID, t.regCb)
		t.regCb = nil
	}
	if t.capCb != nil {
		t.ims.UnregisterMmTelCapabilityCallback(t.subID, t.capCb)
		t.capCb = nil
	}
}

func (t *Tracker) onFeatureAvailable(cb *stateCallback) {
	if cb != t.stateCb {
		return
	}
	t.handler.RemoveMessages(msgMmTelFeatureUnavailable)
	t.logf("MMTEL feature available")
	changed := t.featureAvailable != stateTrue
	t.featureAvailable = stateTrue
	t.registerFeatureCallbacks()
	if changed {
		t.notifyFeatureAvailableChanged()
	}
}

func (t *Tracker) onFeatureUnavailable(cb *stateCallback, reason telephony.ImsUnavailableReason) {
	if cb != t.stateCb {
		return
	}
	t.logf("MMTEL feature unavailable: %s", reason)
	if reason.IsTransient() {
		if !t.handler.HasMessages(msgMmTelFeatureUnavailable) {
			t.handler.SendMessageDelayed(msgMmTelFeatureUnavailable, reason, MmTelFeatureUnavailableWait)
		}
		return
	}
	t.handler.RemoveMessages(msgMmTelFeatureUnavailable)
	t.setUnavailable()
}

func (t *Tracker) onStateCallbackError(cb *stateCallback) {
	if cb != t.stateCb {
		return
	}
	t.logf("IMS state callback error")
	// The platform has already dropped the callback.
	t.stateCb = nil
	t.handler.RemoveMessages(msgMmTelFeatureUnavailable)
	t.setUnavailable()
}

// setUnavailable marks every part of the IMS state as known-unavailable.
func (t *Tracker) setUnavailable() {
	t.unregisterFeatureCallbacks()

	availChanged := t.featureAvailable != stateFalse
	regChanged := t.registered != stateFalse
	capsChanged := !t.capsReceived || t.capabilities != telephony.CapabilityNone

	t.featureAvailable = stateFalse
	t.registered = stateFalse
	t.accessNetwork = telephony.AccessNetworkUnknown
	t.crossSim = false
	t.capabilities = telephony.CapabilityNone
	t.capsReceived = true

	if availChanged {
		t.notifyFeatureAvailableChanged()
	}
	if regChanged {
		t.notifyRegistrationChanged()
	}
	if capsChanged {
		t.notifyCapabilitiesChanged()
	}
}

func (t *Tracker) setRegistered(attr telephony.ImsRegistrationAttributes) {
	t.registered = stateTrue
	t.accessNetwork = attr.AccessNetworkType()
	t.crossSim = attr.Tech == telephony.ImsRegTechCrossSim
	t.logf("IMS registered over %s crossSim=%t", t.accessNetwork, t.crossSim)
	t.notifyRegistrationChanged()
}

func (t *Tracker) setUnregistered() {
	t.registered = stateFalse
	t.accessNetwork = telephony.AccessNetworkUnknown
	t.crossSim = false
	t.logf("IMS not registered")
	t.notifyRegistrationChanged()
}

func (t *Tracker) setCapabilities(caps telephony.MmTelCapabilities) {
	t.capabilities = caps
	t.capsReceived = true
	t.logf("MMTEL capabilities %s", caps)
	t.notifyCapabilitiesChanged()
}

// UpdateServiceState stores the pushed ServiceState and notifies listeners.
func (t *Tracker) UpdateServiceState(ss *telephony.ServiceState) {
	t.serviceState = ss
	for _, l := range slices.Clone(t.serviceListeners) {
		l.OnServiceStateUpdated(ss)
	}
}

// UpdateBarringInfo stores the pushed BarringInfo and notifies listeners.
func (t *Tracker) UpdateBarringInfo(info *telephony.BarringInfo) {
	t.barringInfo = info
	for _, l := range slices.Clone(t.barringListeners) {
		l.OnBarringInfoUpdated(info)
	}
}

func (t *Tracker) ServiceState() *telephony.ServiceState { return t.serviceState }

func (t *Tracker) BarringInfo() *telephony.BarringInfo { return t.barringInfo }

// AddImsStateListener registers l. If the state is already complete, l is
// told about it on the next looper turn.
func (t *Tracker) AddImsStateListener(l ImsStateListener) {
	if l == nil || slices.Contains(t.imsListeners, l) {
		return
	}
	t.imsListeners = append(t.imsListeners, l)
	if t.IsImsStateReady() {
		t.handler.Post(func() {
			if !slices.Contains(t.imsListeners, l) {
				return
			}
			l.OnImsMmTelFeatureAvailableChanged()
			l.OnImsRegistrationStateChanged()
			l.OnImsMmTelCapabilitiesChanged()
		})
	}
}

func (t *Tracker) RemoveImsStateListener(l ImsStateListener) {
	t.imsListeners = slices.DeleteFunc(t.imsListeners, func(x ImsStateListener) bool { return x == l })
}

// AddServiceStateListener registers l and replays a cached ServiceState.
func (t *Tracker) AddServiceStateListener(l ServiceStateListener) {
	if l == nil || slices.Contains(t.serviceListeners, l) {
		return
	}
	t.serviceListeners = append(t.serviceListeners, l)
	if t.serviceState != nil {
		t.handler.Post(func() {
			if slices.Contains(t.serviceListeners, l) {
				l.OnServiceStateUpdated(t.serviceState)
			}
		})
	}
}

func (t *Tracker) RemoveServiceStateListener(l ServiceStateListener) {
	t.serviceListeners = slices.DeleteFunc(t.serviceListeners, func(x ServiceStateListener) bool { return x == l })
}

// AddBarringInfoListener registers l and replays cached BarringInfo.
func (t *Tracker) AddBarringInfoListener(l BarringInfoListener) {
	if l == nil || slices.Contains(t.barringListeners, l) {
		return
	}
	t.barringListeners = append(t.barringListeners, l)
	if t.barringInfo != nil {
		t.handler.Post(func() {
			if slices.Contains(t.barringListeners, l) {
				l.OnBarringInfoUpdated(t.barringInfo)
			}
		})
	}
}

func (t *Tracker) RemoveBarringInfoListener(l BarringInfoListener) {
	t.barringListeners = slices.DeleteFunc(t.barringListeners, func(x BarringInfoListener) bool { return x == l })
}

func (t *Tracker) notifyFeatureAvailableChanged() {
	for _, l := range slices.Clone(t.imsListeners) {
		l.OnImsMmTelFeatureAvailableChanged()
	}
}

func (t *Tracker) notifyRegistrationChanged() {
	for _, l := range slices.Clone(t.imsListeners) {
		l.OnImsRegistrationStateChanged()
	}
}

func (t *Tracker) notifyCapabilitiesChanged() {
	for _, l := range slices.Clone(t.imsListeners) {
		l.OnImsMmTelCapabilitiesChanged()
	}
}

// IsImsStateReady reports whether availability, registration and
// capabilities have each been reported at least once.
func (t *Tracker) IsImsStateReady() bool {
	return t.featureAvailable != stateUnknown && t.registered != stateUnknown && t.capsReceived
}

func (t *Tracker) IsMmTelFeatureAvailable() bool { return t.featureAvailable == stateTrue }

func (t *Tracker) IsImsRegistered() bool { return t.registered == stateTrue }

func (t *Tracker) IsImsRegisteredOverWlan() bool {
	return t.IsImsRegistered() && t.accessNetwork == telephony.IWLAN
}

func (t *Tracker) IsImsRegisteredOverCrossSim() bool {
	return t.IsImsRegistered() && t.crossSim
}

func (t *Tracker) ImsAccessNetworkType() telephony.AccessNetworkType { return t.accessNetwork }

func (t *Tracker) isCapable(c telephony.MmTelCapabilities) bool {
	return t.IsImsRegistered() && t.capabilities.IsCapable(c)
}

func (t *Tracker) IsImsVoiceCapable() bool { return t.isCapable(telephony.CapabilityVoice) }

func (t *Tracker) IsImsVideoCapable() bool { return t.isCapable(telephony.CapabilityVideo) }

func (t *Tracker) IsImsSmsCapable() bool { return t.isCapable(telephony.CapabilitySMS) }

func (t *Tracker) IsImsUtCapable() bool { return t.isCapable(telephony.CapabilityUT) }

// Snapshot is a read-only view of the tracker for diagnostics.
type Snapshot struct {
	SlotID           int    `json:"slot_id"`
	SubID            int    `json:"sub_id"`
	FeatureAvailable string `json:"mmtel_feature_available"`
	Registered       string `json:"ims_registered"`
	AccessNetwork    string `json:"ims_access_network"`
	CrossSim         bool   `json:"cross_sim"`
	Capabilities     string `json:"mmtel_capabilities"`
	Ready            bool   `json:"ready"`
	EmergencyBarred  bool   `json:"emergency_barred"`
}

func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		SlotID:           t.slotID,
		SubID:            t.subID,
		FeatureAvailable: t.featureAvailable.String(),
		Registered:       t.registered.String(),
		AccessNetwork:    t.accessNetwork.String(),
		CrossSim:         t.crossSim,
		Capabilities:     t.capabilities.String(),
		Ready:            t.IsImsStateReady(),
		EmergencyBarred:  t.barringInfo.IsEmergencyBarred(),
	}
}
