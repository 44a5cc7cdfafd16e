package telephony

import "fmt"

// EmergencyRegistrationResult is the outcome of an emergency network scan or
// the last known registration the framework hands to a selector.
type EmergencyRegistrationResult struct {
	AccessNetwork        AccessNetworkType `json:"access_network"`
	RegState             RegistrationState `json:"reg_state"`
	Domain               Domain            `json:"domain"`
	IsVopsSupported      bool              `json:"vops_supported"`
	IsEmcBearerSupported bool              `json:"emc_bearer_supported"`
	NwProvidedEmc        int               `json:"nw_provided_emc"`
	NwProvidedEmf        int               `json:"nw_provided_emf"`
	Mcc                  string            `json:"mcc,omitempty"`
	Mnc                  string            `json:"mnc,omitempty"`
	CountryIso           string            `json:"country_iso,omitempty"`
}

func (r *EmergencyRegistrationResult) String() string {
	if r == nil {
		return "EmergencyRegistrationResult{nil}"
	}
	return fmt.Sprintf("{%s, regState=%s, domain=%s, vops=%t, emcBearer=%t, emc=%d, emf=%d, iso=%s}",
		r.AccessNetwork, r.RegState, r.Domain, r.IsVopsSupported, r.IsEmcBearerSupported,
		r.NwProvidedEmc, r.NwProvidedEmf, r.CountryIso)
}

// SelectionAttributes are the per-attempt facts the framework hands to a selector.
// They are replaced wholesale on every reselection.
type SelectionAttributes struct {
	SlotID                   int                          `json:"slot_id"`
	SubID                    int                          `json:"sub_id"`
	SelectorType             SelectorType                 `json:"selector_type"`
	IsEmergency              bool                         `json:"is_emergency"`
	IsVideoCall              bool                         `json:"is_video_call,omitempty"`
	IsExitedFromAirplaneMode bool                         `json:"exited_from_airplane_mode,omitempty"`
	CallID                   string                       `json:"call_id,omitempty"`
	Address                  string                       `json:"address,omitempty"`
	CsDisconnectCause        DisconnectCause              `json:"cs_disconnect_cause"`
	PsDisconnectCause        *ImsReasonInfo               `json:"ps_disconnect_cause,omitempty"`
	RegistrationResult       *EmergencyRegistrationResult `json:"registration_result,omitempty"`
}

// Number returns the dialed digits without a tel: scheme.
func (a SelectionAttributes) Number() string {
	addr := a.Address
	if len(addr) > 4 && addr[:4] == "tel:" {
		return addr[4:]
	}
	return addr
}

func (a SelectionAttributes) String() string {
	return fmt.Sprintf("{slot=%d, sub=%d, type=%s, emergency=%t, callId=%s, csCause=%s, reg=%s}",
		a.SlotID, a.SubID, a.SelectorType, a.IsEmergency, a.CallID, a.CsDisconnectCause,
		a.RegistrationResult.String())
}

// NetworkRegistrationInfo is a single (domain, transport) registration entry of a ServiceState.
type NetworkRegistrationInfo struct {
	Domain               Domain            `json:"domain"`
	Transport            TransportType     `json:"transport"`
	AccessNetwork        AccessNetworkType `json:"access_network"`
	RegState             RegistrationState `json:"reg_state"`
	EmergencyOnly        bool              `json:"emergency_only,omitempty"`
	IsVopsSupported      bool              `json:"vops_supported,omitempty"`
	IsEmcBearerSupported bool              `json:"emc_bearer_supported,omitempty"`
}

// InServiceOrLimited reports whether the entry is usable for emergency traffic.
func (n NetworkRegistrationInfo) InServiceOrLimited() bool {
	return n.RegState.InService() || n.EmergencyOnly
}

// ServiceState is the platform's view of a slot's network service.
type ServiceState struct {
	VoiceRegState     RegistrationState         `json:"voice_reg_state"`
	DataRegState      RegistrationState         `json:"data_reg_state"`
	IsEmergencyOnly   bool                      `json:"emergency_only,omitempty"`
	OperatorNumeric   string                    `json:"operator_numeric,omitempty"`
	RegistrationInfos []NetworkRegistrationInfo `json:"registration_infos,omitempty"`
}

// RegistrationInfo returns the entry for the given domain and transport.
func (s *ServiceState) RegistrationInfo(domain Domain, transport TransportType) (NetworkRegistrationInfo, bool) {
	if s == nil {
		return NetworkRegistrationInfo{}, false
	}
	for _, info := range s.RegistrationInfos {
		if info.Domain.Has(domain) && info.Transport == transport {
			return info, true
		}
	}
	return NetworkRegistrationInfo{}, false
}

// InNormalService reports whether voice or data is registered home or roaming.
func (s *ServiceState) InNormalService() bool {
	if s == nil {
		return false
	}
	return s.VoiceRegState.InService() || s.DataRegState.InService()
}

// BarringServiceType identifies a barred service class.
type BarringServiceType int

const (
	BarringServiceCSService BarringServiceType = iota
	BarringServicePSService
	BarringServiceCSVoice
	BarringServiceMOSignalling
	BarringServiceMOData
	BarringServiceCSFallback
	BarringServiceMMTelVoice
	BarringServiceMMTelVideo
	BarringServiceEmergency
	BarringServiceSMS
)

// BarringInfo carries the access barring status broadcast by the serving cell.
type BarringInfo struct {
	Barred map[BarringServiceType]bool `json:"barred,omitempty"`
}

// IsBarred reports whether the service type is barred.
func (b *BarringInfo) IsBarred(t BarringServiceType) bool {
	if b == nil || b.Barred == nil {
		return false
	}
	return b.Barred[t]
}

// IsEmergencyBarred reports whether emergency access is barred.
func (b *BarringInfo) IsEmergencyBarred() bool {
	return b.IsBarred(BarringServiceEmergency)
}

// SubscriptionInfo is one active subscription and the slot it lives in.
type SubscriptionInfo struct {
	SlotID int `json:"slot_id"`
	SubID  int `json:"sub_id"`
}
