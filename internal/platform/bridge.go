// Package platform holds the in-process stand-in for the Android platform
// services. The framework side pushes radio, SIM, IMS and connectivity state
// into a Bridge (over gRPC in the daemon, directly in tests) and the domain
// selection components consume it through the telephony provider interfaces.
package platform

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/dense-identity/domainselection/internal/telephony"
)

var (
	ErrInvalidSlot = errors.New("invalid slot")
	ErrInvalidSub  = errors.New("invalid subscription")
)

type slotState struct {
	subID                int
	simState             telephony.SimState
	emergencyNumbers     []string
	testEmergencyNumbers []string
	countryIso           string
	serviceState         *telephony.ServiceState
	voiceCallOnCs        bool
}

type imsState struct {
	available         bool
	unavailableReason telephony.ImsUnavailableReason
	registered        bool
	regAttrs          telephony.ImsRegistrationAttributes
	caps              telephony.MmTelCapabilities
	advancedCalling   bool
	vowifi            bool
	validEid          bool
	simDeactivated    bool
	registerErr       error

	stateCbs []telephony.ImsStateCallback
	regCbs   []telephony.ImsRegistrationCallback
	capCbs   []telephony.MmTelCapabilityCallback
}

// Bridge implements every telephony provider interface on in-memory state.
// It is safe for concurrent use; callbacks are invoked without the lock held.
type Bridge struct {
	mu sync.Mutex

	modemCount int
	slots      map[int]*slotState
	ims        map[int]*imsState
	ttyEnabled bool

	wifiAvailable bool
	wifiCbs       []telephony.WifiCallback

	pdnListeners  []telephony.EmergencyPdnListener
	ecbmListeners []telephony.CallbackModeListener
	subsListeners []telephony.SubscriptionsListener

	carrierConfigs map[int]*telephony.CarrierConfig
	configLoader   *CarrierConfigLoader

	heldWakeLocks int
	logger        *log.Logger
}

// NewBridge creates a bridge for modemCount slots, all without a SIM.
func NewBridge(modemCount int, loader *CarrierConfigLoader, logger *log.Logger) *Bridge {
	if logger == nil {
		logger = log.Default()
	}
	b := &Bridge{
		modemCount:     modemCount,
		slots:          make(map[int]*slotState),
		ims:            make(map[int]*imsState),
		carrierConfigs: make(map[int]*telephony.CarrierConfig),
		configLoader:   loader,
		logger:         logger,
	}
	for i := 0; i < modemCount; i++ {
		b.slots[i] = newSlotState()
	}
	return b
}

func newSlotState() *slotState {
	return &slotState{subID: telephony.InvalidSubID, simState: telephony.SimStateAbsent}
}

// Platform bundles the bridge behind every provider interface.
func (b *Bridge) Platform(resources telephony.ResourceConfig) *telephony.Platform {
	return &telephony.Platform{
		Ims:            b,
		Telephony:      b,
		Connectivity:   b,
		CarrierConfigs: b,
		Power:          b,
		Resources:      resources,
	}
}

func (b *Bridge) slot(slotID int) *slotState {
	s, ok := b.slots[slotID]
	if !ok {
		s = newSlotState()
		b.slots[slotID] = s
	}
	return s
}

func (b *Bridge) imsFor(subID int) *imsState {
	s, ok := b.ims[subID]
	if !ok {
		s = &imsState{unavailableReason: telephony.ImsReasonImsServiceNotReady}
		b.ims[subID] = s
	}
	return s
}

func (b *Bridge) SetModemCount(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.modemCount = n
	for i := 0; i < n; i++ {
		b.slot(i)
	}
}

// SetSim places a subscription in a slot; subID < 0 removes it.
func (b *Bridge) SetSim(slotID, subID int, state telephony.SimState) error {
	if slotID < 0 {
		return fmt.Errorf("set sim: %w", ErrInvalidSlot)
	}
	b.mu.Lock()
	s := b.slot(slotID)
	s.subID = subID
	s.simState = state
	b.mu.Unlock()
	return nil
}

func (b *Bridge) SetEmergencyNumbers(slotID int, numbers, testNumbers []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.slot(slotID)
	s.emergencyNumbers = slices.Clone(numbers)
	s.testEmergencyNumbers = slices.Clone(testNumbers)
}

func (b *Bridge) SetCountryIso(slotID int, iso string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slot(slotID).countryIso = iso
}

func (b *Bridge) SetServiceState(slotID int, ss *telephony.ServiceState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slot(slotID).serviceState = ss
}

func (b *Bridge) SetVoiceCallOnCs(slotID int, onCs bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slot(slotID).voiceCallOnCs = onCs
}

func (b *Bridge) SetTtyModeEnabled(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ttyEnabled = enabled
}

func (b *Bridge) SetSimDeactivated(subID int, deactivated bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.imsFor(subID).simDeactivated = deactivated
}

// SetImsSettings sets the user IMS settings of a subscription.
func (b *Bridge) SetImsSettings(subID int, advancedCalling, vowifi, validEid bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.imsFor(subID)
	s.advancedCalling = advancedCalling
	s.vowifi = vowifi
	s.validEid = validEid
}

// SetImsRegisterError makes callback registration for subID fail with err.
func (b *Bridge) SetImsRegisterError(subID int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.imsFor(subID).registerErr = err
}

// SetImsFeatureAvailable reports MMTEL feature availability to registered callbacks.
func (b *Bridge) SetImsFeatureAvailable(subID int, available bool, reason telephony.ImsUnavailableReason) {
	b.mu.Lock()
	s := b.imsFor(subID)
	s.available = available
	s.unavailableReason = reason
	cbs := slices.Clone(s.stateCbs)
	b.mu.Unlock()

	for _, cb := range cbs {
		if available {
			cb.OnAvailable()
		} else {
			cb.OnUnavailable(reason)
		}
	}
}

// FailImsStateCallbacks reports a permanent error and drops the state callbacks.
func (b *Bridge) FailImsStateCallbacks(subID int) {
	b.mu.Lock()
	s := b.imsFor(subID)
	cbs := s.stateCbs
	s.stateCbs = nil
	b.mu.Unlock()
	for _, cb := range cbs {
		cb.OnError()
	}
}

// SetImsRegistration reports an IMS registration change.
func (b *Bridge) SetImsRegistration(subID int, registered bool, attrs telephony.ImsRegistrationAttributes) {
	b.mu.Lock()
	s := b.imsFor(subID)
	s.registered = registered
	s.regAttrs = attrs
	cbs := slices.Clone(s.regCbs)
	b.mu.Unlock()

	for _, cb := range cbs {
		if registered {
			cb.OnRegistered(attrs)
		} else {
			cb.OnUnregistered(telephony.ImsReasonInfo{Code: telephony.ImsReasonLocalNotRegistered})
		}
	}
}

// SetMmTelCapabilities reports a capability change.
func (b *Bridge) SetMmTelCapabilities(subID int, caps telephony.MmTelCapabilities) {
	b.mu.Lock()
	s := b.imsFor(subID)
	s.caps = caps
	cbs := slices.Clone(s.capCbs)
	b.mu.Unlock()

	for _, cb := range cbs {
		cb.OnCapabilitiesStatusChanged(caps)
	}
}

func (b *Bridge) SetWifiAvailable(available bool) {
	b.mu.Lock()
	changed := b.wifiAvailable != available
	b.wifiAvailable = available
	cbs := slices.Clone(b.wifiCbs)
	b.mu.Unlock()
	if !changed {
		return
	}
	for _, cb := range cbs {
		if available {
			cb.OnWifiAvailable()
		} else {
			cb.OnWifiLost()
		}
	}
}

func (b *Bridge) SetEmergencyPdn(slotID int, state telephony.EmergencyPdnState, transport telephony.TransportType) {
	b.mu.Lock()
	ls := slices.Clone(b.pdnListeners)
	b.mu.Unlock()
	for _, l := range ls {
		l.OnEmergencyPdnStateChanged(slotID, state, transport)
	}
}

func (b *Bridge) SetCallbackMode(slotID int, active bool, transport telephony.TransportType) {
	b.mu.Lock()
	ls := slices.Clone(b.ecbmListeners)
	b.mu.Unlock()
	for _, l := range ls {
		l.OnCallbackModeChanged(slotID, active, transport)
	}
}

// SetCarrierConfig overrides the carrier configuration of subID; nil clears it.
func (b *Bridge) SetCarrierConfig(subID int, cfg *telephony.CarrierConfig) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if cfg == nil {
		delete(b.carrierConfigs, subID)
		return
	}
	b.carrierConfigs[subID] = cfg.Clone()
}

// PublishSubscriptions tells subscription listeners about the active subscriptions.
func (b *Bridge) PublishSubscriptions() {
	b.mu.Lock()
	var infos []telephony.SubscriptionInfo
	for slotID, s := range b.slots {
		if telephony.IsValidSubID(s.subID) {
			infos = append(infos, telephony.SubscriptionInfo{SlotID: slotID, SubID: s.subID})
		}
	}
	ls := slices.Clone(b.subsListeners)
	b.mu.Unlock()

	slices.SortFunc(infos, func(a, c telephony.SubscriptionInfo) int { return a.SlotID - c.SlotID })
	for _, l := range ls {
		l.OnSubscriptionsChanged(infos)
	}
}

// HeldWakeLocks returns the number of wake locks currently held.
func (b *Bridge) HeldWakeLocks() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.heldWakeLocks
}

// ImsCallbackCount returns how many IMS state callbacks are registered for subID.
func (b *Bridge) ImsCallbackCount(subID int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.imsFor(subID).stateCbs)
}

// WifiCallbackCount returns how many Wi-Fi callbacks are registered.
func (b *Bridge) WifiCallbackCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.wifiCbs)
}
