package telephony

import (
	"fmt"
	"strings"
)

const (
	InvalidSubID  = -1
	InvalidSlotID = -1
)

// IsValidSubID reports whether subID identifies a subscription.
func IsValidSubID(subID int) bool { return subID >= 0 }

// AccessNetworkType is the radio access network of a registration or scan.
type AccessNetworkType int

const (
	AccessNetworkUnknown AccessNetworkType = iota
	GERAN
	UTRAN
	EUTRAN
	CDMA2000
	IWLAN
	NGRAN
)

func (t AccessNetworkType) String() string {
	switch t {
	case GERAN:
		return "GERAN"
	case UTRAN:
		return "UTRAN"
	case EUTRAN:
		return "EUTRAN"
	case CDMA2000:
		return "CDMA2000"
	case IWLAN:
		return "IWLAN"
	case NGRAN:
		return "NGRAN"
	default:
		return "UNKNOWN"
	}
}

// IsPS reports whether emergency calls on this RAT go over IMS.
func (t AccessNetworkType) IsPS() bool { return t == EUTRAN || t == NGRAN }

// IsCS reports whether emergency calls on this RAT use the circuit-switched domain.
func (t AccessNetworkType) IsCS() bool { return t == GERAN || t == UTRAN || t == CDMA2000 }

// FormatNetworks renders a RAT list for logs.
func FormatNetworks(nets []AccessNetworkType) string {
	parts := make([]string, 0, len(nets))
	for _, n := range nets {
		parts = append(parts, n.String())
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Domain is a bitmask of network domains.
type Domain int

const (
	DomainUnknown Domain = 0
	DomainCS      Domain = 1 << 0
	DomainPS      Domain = 1 << 1
	DomainCSPS           = DomainCS | DomainPS
)

func (d Domain) Has(other Domain) bool { return d&other != 0 }

func (d Domain) String() string {
	switch d {
	case DomainCS:
		return "CS"
	case DomainPS:
		return "PS"
	case DomainCSPS:
		return "CS|PS"
	default:
		return "UNKNOWN"
	}
}

// RegistrationState mirrors the 3GPP registration states reported by the modem.
type RegistrationState int

const (
	RegStateNotRegisteredOrSearching RegistrationState = iota
	RegStateHome
	RegStateNotRegisteredSearching
	RegStateDenied
	RegStateUnknown
	RegStateRoaming
)

func (s RegistrationState) String() string {
	switch s {
	case RegStateHome:
		return "HOME"
	case RegStateRoaming:
		return "ROAMING"
	case RegStateNotRegisteredSearching:
		return "SEARCHING"
	case RegStateDenied:
		return "DENIED"
	case RegStateUnknown:
		return "UNKNOWN"
	default:
		return "NOT_REG"
	}
}

// InService reports whether the state is home or roaming.
func (s RegistrationState) InService() bool {
	return s == RegStateHome || s == RegStateRoaming
}

// ScanType is the emergency network scan preference.
type ScanType int

const (
	ScanTypeNoPreference ScanType = iota
	ScanTypeFullService
	ScanTypeLimitedService
	ScanTypeFullServiceFollowedByLimitedService
)

func (s ScanType) String() string {
	switch s {
	case ScanTypeFullService:
		return "FULL_SERVICE"
	case ScanTypeLimitedService:
		return "LIMITED_SERVICE"
	case ScanTypeFullServiceFollowedByLimitedService:
		return "FULL_SERVICE_FOLLOWED_BY_LIMITED_SERVICE"
	default:
		return "NO_PREFERENCE"
	}
}

// SelectorType is the kind of request a selector serves.
type SelectorType int

const (
	SelectorTypeCalling SelectorType = iota + 1
	SelectorTypeSms
)

func (s SelectorType) String() string {
	switch s {
	case SelectorTypeCalling:
		return "CALLING"
	case SelectorTypeSms:
		return "SMS"
	default:
		return fmt.Sprintf("SelectorType(%d)", int(s))
	}
}

// TransportType is the transport an emergency PDN or IMS registration rides on.
type TransportType int

const (
	TransportInvalid TransportType = iota
	TransportWWAN
	TransportWLAN
)

func (t TransportType) String() string {
	switch t {
	case TransportWWAN:
		return "WWAN"
	case TransportWLAN:
		return "WLAN"
	default:
		return "INVALID"
	}
}

// DomainPreference entries of the carrier emergency domain preference list.
type DomainPreference int

const (
	DomainPreferenceCS DomainPreference = iota + 1
	DomainPreferencePS3GPP
	DomainPreferencePSNon3GPP
)

// VoWifiRequiresCondition gates emergency calls over Wi-Fi.
type VoWifiRequiresCondition int

const (
	VoWifiRequiresNone VoWifiRequiresCondition = iota
	VoWifiRequiresSettingEnabled
	VoWifiRequiresValidEID
)

// SimState is the card state of a slot.
type SimState int

const (
	SimStateUnknown SimState = iota
	SimStateAbsent
	SimStatePinRequired
	SimStatePukRequired
	SimStateNetworkLocked
	SimStateReady
	SimStateNotReady
	SimStatePermDisabled
	SimStateCardIOError
	SimStateCardRestricted
	SimStateLoaded
	SimStatePresent
)

func (s SimState) String() string {
	names := []string{
		"UNKNOWN", "ABSENT", "PIN_REQUIRED", "PUK_REQUIRED", "NETWORK_LOCKED",
		"READY", "NOT_READY", "PERM_DISABLED", "CARD_IO_ERROR", "CARD_RESTRICTED",
		"LOADED", "PRESENT",
	}
	if int(s) >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "UNKNOWN"
}

// EmergencyPdnState is the state of the emergency packet data network connection.
type EmergencyPdnState int

const (
	PdnStateIdle EmergencyPdnState = iota
	PdnStateConnecting
	PdnStateConnected
	PdnStateDisconnecting
)

func (s EmergencyPdnState) String() string {
	switch s {
	case PdnStateConnecting:
		return "CONNECTING"
	case PdnStateConnected:
		return "CONNECTED"
	case PdnStateDisconnecting:
		return "DISCONNECTING"
	default:
		return "IDLE"
	}
}
