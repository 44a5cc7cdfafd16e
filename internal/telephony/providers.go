package telephony

// ImsStateCallback reports MMTEL feature availability for a subscription.
type ImsStateCallback interface {
	OnAvailable()
	OnUnavailable(reason ImsUnavailableReason)
	OnError()
}

// ImsRegistrationCallback reports IMS registration changes.
type ImsRegistrationCallback interface {
	OnRegistered(attr ImsRegistrationAttributes)
	OnRegistering(attr ImsRegistrationAttributes)
	OnUnregistered(info ImsReasonInfo)
}

// MmTelCapabilityCallback reports the MMTEL capability set.
type MmTelCapabilityCallback interface {
	OnCapabilitiesStatusChanged(caps MmTelCapabilities)
}

// ImsManager is the platform IMS service.
type ImsManager interface {
	RegisterImsStateCallback(subID int, cb ImsStateCallback) error
	UnregisterImsStateCallback(subID int, cb ImsStateCallback)
	RegisterImsRegistrationCallback(subID int, cb ImsRegistrationCallback) error
	UnregisterImsRegistrationCallback(subID int, cb ImsRegistrationCallback)
	RegisterMmTelCapabilityCallback(subID int, cb MmTelCapabilityCallback) error
	UnregisterMmTelCapabilityCallback(subID int, cb MmTelCapabilityCallback)

	IsAdvancedCallingSettingEnabled(subID int) (bool, error)
	IsVoWiFiSettingEnabled(subID int) (bool, error)
	IsEmergencyAddressValid(subID int) (bool, error)
}

// EmergencyPdnListener receives emergency PDN connection changes.
type EmergencyPdnListener interface {
	OnEmergencyPdnStateChanged(slotID int, state EmergencyPdnState, transport TransportType)
}

// CallbackModeListener receives emergency callback mode changes.
type CallbackModeListener interface {
	OnCallbackModeChanged(slotID int, active bool, transport TransportType)
}

// SubscriptionsListener receives the active subscription list on every change.
type SubscriptionsListener interface {
	OnSubscriptionsChanged(infos []SubscriptionInfo)
}

// Telephony is the platform telephony service.
type Telephony interface {
	ActiveModemCount() int
	SimState(slotID int) SimState
	SubscriptionID(slotID int) int
	IsEmergencyNumber(slotID int, number string) bool
	IsTestEmergencyNumber(slotID int, number string) bool
	NetworkCountryIso(slotID int) string
	ServiceState(slotID int) *ServiceState
	IsTtyModeEnabled() bool
	IsSimDeactivated(subID int) bool
	IsVoiceCallOnCs(slotID int) bool

	AddEmergencyPdnListener(l EmergencyPdnListener)
	RemoveEmergencyPdnListener(l EmergencyPdnListener)
	AddCallbackModeListener(l CallbackModeListener)
	RemoveCallbackModeListener(l CallbackModeListener)
	AddSubscriptionsListener(l SubscriptionsListener)
	RemoveSubscriptionsListener(l SubscriptionsListener)
}

// WifiCallback is notified when a Wi-Fi network appears or disappears.
type WifiCallback interface {
	OnWifiAvailable()
	OnWifiLost()
}

// Connectivity is the platform connectivity service.
type Connectivity interface {
	RegisterWifiCallback(cb WifiCallback) error
	UnregisterWifiCallback(cb WifiCallback)
}

// CarrierConfigProvider returns the carrier configuration of a subscription.
type CarrierConfigProvider interface {
	ConfigForSubID(subID int) (*CarrierConfig, error)
}

// WakeLock keeps the device awake.
type WakeLock interface {
	Acquire()
	Release()
	IsHeld() bool
}

// PowerManager hands out wake locks.
type PowerManager interface {
	NewWakeLock(tag string) WakeLock
}

// Platform is the process-wide set of platform services, built once at
// startup and passed to every component that needs it.
type Platform struct {
	Ims            ImsManager
	Telephony      Telephony
	Connectivity   Connectivity
	CarrierConfigs CarrierConfigProvider
	Power          PowerManager
	Resources      ResourceConfig
}

// CarrierConfig returns the configuration for subID, falling back to
// defaults when the provider has nothing usable.
func (p *Platform) CarrierConfig(subID int) *CarrierConfig {
	if p == nil || p.CarrierConfigs == nil || !IsValidSubID(subID) {
		return DefaultCarrierConfig()
	}
	cfg, err := p.CarrierConfigs.ConfigForSubID(subID)
	if err != nil || cfg == nil {
		return DefaultCarrierConfig()
	}
	return cfg
}
