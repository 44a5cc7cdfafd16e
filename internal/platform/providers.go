package platform

import (
	"fmt"
	"slices"

	"github.com/dense-identity/domainselection/internal/telephony"
)

var (
	_ telephony.ImsManager            = (*Bridge)(nil)
	_ telephony.Telephony             = (*Bridge)(nil)
	_ telephony.Connectivity          = (*Bridge)(nil)
	_ telephony.CarrierConfigProvider = (*Bridge)(nil)
	_ telephony.PowerManager          = (*Bridge)(nil)
)

// RegisterImsStateCallback registers cb and immediately reports the current availability.
func (b *Bridge) RegisterImsStateCallback(subID int, cb telephony.ImsStateCallback) error {
	if !telephony.IsValidSubID(subID) {
		return fmt.Errorf("register ims state callback: %w", ErrInvalidSub)
	}
	b.mu.Lock()
	s := b.imsFor(subID)
	if s.registerErr != nil {
		err := s.registerErr
		b.mu.Unlock()
		return fmt.Errorf("register ims state callback: %w", err)
	}
	s.stateCbs = append(s.stateCbs, cb)
	available, reason := s.available, s.unavailableReason
	b.mu.Unlock()

	if available {
		cb.OnAvailable()
	} else {
		cb.OnUnavailable(reason)
	}
	return nil
}

func (b *Bridge) UnregisterImsStateCallback(subID int, cb telephony.ImsStateCallback) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.imsFor(subID)
	s.stateCbs = slices.DeleteFunc(s.stateCbs, func(x telephony.ImsStateCallback) bool { return x == cb })
}

func (b *Bridge) RegisterImsRegistrationCallback(subID int, cb telephony.ImsRegistrationCallback) error {
	b.mu.Lock()
	s := b.imsFor(subID)
	if s.registerErr != nil {
		err := s.registerErr
		b.mu.Unlock()
		return fmt.Errorf("register ims registration callback: %w", err)
	}
	s.regCbs = append(s.regCbs, cb)
	registered, attrs := s.registered, s.regAttrs
	b.mu.Unlock()

	if registered {
		cb.OnRegistered(attrs)
	} else {
		cb.OnUnregistered(telephony.ImsReasonInfo{Code: telephony.ImsReasonLocalNotRegistered})
	}
	return nil
}

func (b *Bridge) UnregisterImsRegistrationCallback(subID int, cb telephony.ImsRegistrationCallback) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.imsFor(subID)
	s.regCbs = slices.DeleteFunc(s.regCbs, func(x telephony.ImsRegistrationCallback) bool { return x == cb })
}

func (b *Bridge) RegisterMmTelCapabilityCallback(subID int, cb telephony.MmTelCapabilityCallback) error {
	b.mu.Lock()
	s := b.imsFor(subID)
	if s.registerErr != nil {
		err := s.registerErr
		b.mu.Unlock()
		return fmt.Errorf("register mmtel capability callback: %w", err)
	}
	s.capCbs = append(s.capCbs, cb)
	caps := s.caps
	b.mu.Unlock()

	cb.OnCapabilitiesStatusChanged(caps)
	return nil
}

func (b *Bridge) UnregisterMmTelCapabilityCallback(subID int, cb telephony.MmTelCapabilityCallback) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.imsFor(subID)
	s.capCbs = slices.DeleteFunc(s.capCbs, func(x telephony.MmTelCapabilityCallback) bool { return x == cb })
}

func (b *Bridge) IsAdvancedCallingSettingEnabled(subID int) (bool, error) {
	if !telephony.IsValidSubID(subID) {
		return false, ErrInvalidSub
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.imsFor(subID).advancedCalling, nil
}

func (b *Bridge) IsVoWiFiSettingEnabled(subID int) (bool, error) {
	if !telephony.IsValidSubID(subID) {
		return false, ErrInvalidSub
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.imsFor(subID).vowifi, nil
}

func (b *Bridge) IsEmergencyAddressValid(subID int) (bool, error) {
	if !telephony.IsValidSubID(subID) {
		return false, ErrInvalidSub
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.imsFor(subID).validEid, nil
}

func (b *Bridge) ActiveModemCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.modemCount
}

func (b *Bridge) SimState(slotID int) telephony.SimState {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.slots[slotID]; ok {
		return s.simState
	}
	return telephony.SimStateUnknown
}

func (b *Bridge) SubscriptionID(slotID int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.slots[slotID]; ok {
		return s.subID
	}
	return telephony.InvalidSubID
}

func (b *Bridge) IsEmergencyNumber(slotID int, number string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.slots[slotID]
	if !ok {
		return false
	}
	return slices.Contains(s.emergencyNumbers, number) || slices.Contains(s.testEmergencyNumbers, number)
}

func (b *Bridge) IsTestEmergencyNumber(slotID int, number string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.slots[slotID]
	return ok && slices.Contains(s.testEmergencyNumbers, number)
}

func (b *Bridge) NetworkCountryIso(slotID int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.slots[slotID]; ok {
		return s.countryIso
	}
	return ""
}

func (b *Bridge) ServiceState(slotID int) *telephony.ServiceState {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s, ok := b.slots[slotID]; ok {
		return s.serviceState
	}
	return nil
}

func (b *Bridge) IsTtyModeEnabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ttyEnabled
}

func (b *Bridge) IsSimDeactivated(subID int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.imsFor(subID).simDeactivated
}

func (b *Bridge) IsVoiceCallOnCs(slotID int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.slots[slotID]
	return ok && s.voiceCallOnCs
}

func (b *Bridge) AddEmergencyPdnListener(l telephony.EmergencyPdnListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pdnListeners = append(b.pdnListeners, l)
}

func (b *Bridge) RemoveEmergencyPdnListener(l telephony.EmergencyPdnListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pdnListeners = slices.DeleteFunc(b.pdnListeners, func(x telephony.EmergencyPdnListener) bool { return x == l })
}

func (b *Bridge) AddCallbackModeListener(l telephony.CallbackModeListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ecbmListeners = append(b.ecbmListeners, l)
}

func (b *Bridge) RemoveCallbackModeListener(l telephony.CallbackModeListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ecbmListeners = slices.DeleteFunc(b.ecbmListeners, func(x telephony.CallbackModeListener) bool { return x == l })
}

func (b *Bridge) AddSubscriptionsListener(l telephony.SubscriptionsListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subsListeners = append(b.subsListeners, l)
}

func (b *Bridge) RemoveSubscriptionsListener(l telephony.SubscriptionsListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subsListeners = slices.DeleteFunc(b.subsListeners, func(x telephony.SubscriptionsListener) bool { return x == l })
}

// RegisterWifiCallback registers cb and reports Wi-Fi if it is already up.
func (b *Bridge) RegisterWifiCallback(cb telephony.WifiCallback) error {
	b.mu.Lock()
	b.wifiCbs = append(b.wifiCbs, cb)
	available := b.wifiAvailable
	b.mu.Unlock()
	if available {
		cb.OnWifiAvailable()
	}
	return nil
}

func (b *Bridge) UnregisterWifiCallback(cb telephony.WifiCallback) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.wifiCbs = slices.DeleteFunc(b.wifiCbs, func(x telephony.WifiCallback) bool { return x == cb })
}

// ConfigForSubID returns the override for subID, else the loaded file, else defaults.
func (b *Bridge) ConfigForSubID(subID int) (*telephony.CarrierConfig, error) {
	b.mu.Lock()
	cfg, ok := b.carrierConfigs[subID]
	loader := b.configLoader
	b.mu.Unlock()
	if ok {
		return cfg.Clone(), nil
	}
	if loader == nil {
		return telephony.DefaultCarrierConfig(), nil
	}
	return loader.Load(subID)
}

type wakeLock struct {
	bridge *Bridge
	tag    string
	held   bool
}

func (b *Bridge) NewWakeLock(tag string) telephony.WakeLock {
	return &wakeLock{bridge: b, tag: tag}
}

func (w *wakeLock) Acquire() {
	w.bridge.mu.Lock()
	defer w.bridge.mu.Unlock()
	if !w.held {
		w.held = true
		w.bridge.heldWakeLocks++
	}
}

func (w *wakeLock) Release() {
	w.bridge.mu.Lock()
	defer w.bridge.mu.Unlock()
	if w.held {
		w.held = false
		w.bridge.heldWakeLocks--
	}
}

func (w *wakeLock) IsHeld() bool {
	w.bridge.mu.Lock()
	defer w.bridge.mu.Unlock()
	return w.held
}
