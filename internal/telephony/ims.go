package telephony

import "strings"

// MmTelCapabilities is a bitmask of MMTEL features offered over the IMS registration.
type MmTelCapabilities int

const (
	CapabilityNone  MmTelCapabilities = 0
	CapabilityVoice MmTelCapabilities = 1 << 0
	CapabilityVideo MmTelCapabilities = 1 << 1
	CapabilityUT    MmTelCapabilities = 1 << 2
	CapabilitySMS   MmTelCapabilities = 1 << 3
)

func (c MmTelCapabilities) IsCapable(want MmTelCapabilities) bool { return want != 0 && c&want == want }

func (c MmTelCapabilities) String() string {
	var parts []string
	if c.IsCapable(CapabilityVoice) {
		parts = append(parts, "VOICE")
	}
	if c.IsCapable(CapabilityVideo) {
		parts = append(parts, "VIDEO")
	}
	if c.IsCapable(CapabilityUT) {
		parts = append(parts, "UT")
	}
	if c.IsCapable(CapabilitySMS) {
		parts = append(parts, "SMS")
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// ImsRegistrationTech is the technology an IMS registration was made over.
type ImsRegistrationTech int

const (
	ImsRegTechNone ImsRegistrationTech = iota
	ImsRegTechLTE
	ImsRegTechIWLAN
	ImsRegTechCrossSim
	ImsRegTechNR
)

// ImsRegistrationAttributes describe an established IMS registration.
type ImsRegistrationAttributes struct {
	Tech      ImsRegistrationTech `json:"tech"`
	Transport TransportType       `json:"transport"`
}

// AccessNetworkType maps the registration onto a RAT.
func (a ImsRegistrationAttributes) AccessNetworkType() AccessNetworkType {
	switch a.Tech {
	case ImsRegTechLTE:
		return EUTRAN
	case ImsRegTechNR:
		return NGRAN
	case ImsRegTechIWLAN, ImsRegTechCrossSim:
		return IWLAN
	default:
		if a.Transport == TransportWLAN {
			return IWLAN
		}
		return AccessNetworkUnknown
	}
}

// ImsUnavailableReason tells why the MMTEL feature became unavailable.
type ImsUnavailableReason int

const (
	ImsReasonUnknownTemporaryError ImsUnavailableReason = iota + 1
	ImsReasonUnknownPermanentError
	ImsReasonImsServiceDisconnected
	ImsReasonNoImsServiceConfigured
	ImsReasonSubscriptionInactive
	ImsReasonImsServiceNotReady
)

func (r ImsUnavailableReason) String() string {
	switch r {
	case ImsReasonUnknownTemporaryError:
		return "UNKNOWN_TEMPORARY_ERROR"
	case ImsReasonUnknownPermanentError:
		return "UNKNOWN_PERMANENT_ERROR"
	case ImsReasonImsServiceDisconnected:
		return "IMS_SERVICE_DISCONNECTED"
	case ImsReasonNoImsServiceConfigured:
		return "NO_IMS_SERVICE_CONFIGURED"
	case ImsReasonSubscriptionInactive:
		return "SUBSCRIPTION_INACTIVE"
	case ImsReasonImsServiceNotReady:
		return "IMS_SERVICE_NOT_READY"
	default:
		return "UNKNOWN"
	}
}

// IsTransient reports whether the MMTEL feature is expected to come back shortly.
func (r ImsUnavailableReason) IsTransient() bool {
	return r == ImsReasonImsServiceDisconnected || r == ImsReasonImsServiceNotReady ||
		r == ImsReasonUnknownTemporaryError
}
