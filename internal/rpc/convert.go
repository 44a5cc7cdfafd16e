package rpc

import (
	"github.com/dense-identity/domainselection/internal/telephony"

	pb "github.com/dense-identity/domainselection/api/go/domainselection/v1"
)

type wireInt interface {
	~int | ~int32
}

func convertInts[To, From wireInt](in []From) []To {
	if in == nil {
		return nil
	}
	out := make([]To, len(in))
	for i, v := range in {
		out[i] = To(v)
	}
	return out
}

// AttributesFromProto maps wire attributes onto the selector's view.
func AttributesFromProto(in *pb.SelectionAttributes) telephony.SelectionAttributes {
	attr := telephony.SelectionAttributes{
		SlotID:                   int(in.GetSlotId()),
		SubID:                    int(in.GetSubId()),
		SelectorType:             telephony.SelectorType(in.GetSelectorType()),
		IsEmergency:              in.GetIsEmergency(),
		IsVideoCall:              in.GetIsVideoCall(),
		IsExitedFromAirplaneMode: in.GetExitedFromAirplaneMode(),
		CallID:                   in.GetCallId(),
		Address:                  in.GetAddress(),
		CsDisconnectCause:        telephony.DisconnectCause(in.GetCsDisconnectCause()),
	}
	if ps := in.GetPsDisconnectCause(); ps != nil {
		attr.PsDisconnectCause = &telephony.ImsReasonInfo{
			Code:         telephony.ImsReasonCode(ps.GetCode()),
			ExtraCode:    int(ps.GetExtraCode()),
			ExtraMessage: ps.GetExtraMessage(),
		}
	}
	if r := in.GetRegistrationResult(); r != nil {
		result := RegistrationResultFromProto(r)
		attr.RegistrationResult = &result
	}
	return attr
}

// AttributesToProto is the inverse of AttributesFromProto.
func AttributesToProto(attr telephony.SelectionAttributes) *pb.SelectionAttributes {
	out := &pb.SelectionAttributes{
		SlotId:                 int32(attr.SlotID),
		SubId:                  int32(attr.SubID),
		SelectorType:           int32(attr.SelectorType),
		IsEmergency:            attr.IsEmergency,
		IsVideoCall:            attr.IsVideoCall,
		ExitedFromAirplaneMode: attr.IsExitedFromAirplaneMode,
		CallId:                 attr.CallID,
		Address:                attr.Address,
		CsDisconnectCause:      int32(attr.CsDisconnectCause),
	}
	if ps := attr.PsDisconnectCause; ps != nil {
		out.PsDisconnectCause = &pb.ImsReasonInfo{
			Code:         int32(ps.Code),
			ExtraCode:    int32(ps.ExtraCode),
			ExtraMessage: ps.ExtraMessage,
		}
	}
	if attr.RegistrationResult != nil {
		out.RegistrationResult = RegistrationResultToProto(*attr.RegistrationResult)
	}
	return out
}

func RegistrationResultFromProto(in *pb.EmergencyRegistrationResult) telephony.EmergencyRegistrationResult {
	return telephony.EmergencyRegistrationResult{
		AccessNetwork:        telephony.AccessNetworkType(in.GetAccessNetwork()),
		RegState:             telephony.RegistrationState(in.GetRegState()),
		Domain:               telephony.Domain(in.GetDomain()),
		IsVopsSupported:      in.GetVopsSupported(),
		IsEmcBearerSupported: in.GetEmcBearerSupported(),
		NwProvidedEmc:        int(in.GetNwProvidedEmc()),
		NwProvidedEmf:        int(in.GetNwProvidedEmf()),
		Mcc:                  in.GetMcc(),
		Mnc:                  in.GetMnc(),
		CountryIso:           in.GetCountryIso(),
	}
}

func RegistrationResultToProto(r telephony.EmergencyRegistrationResult) *pb.EmergencyRegistrationResult {
	return &pb.EmergencyRegistrationResult{
		AccessNetwork:      int32(r.AccessNetwork),
		RegState:           int32(r.RegState),
		Domain:             int32(r.Domain),
		VopsSupported:      r.IsVopsSupported,
		EmcBearerSupported: r.IsEmcBearerSupported,
		NwProvidedEmc:      int32(r.NwProvidedEmc),
		NwProvidedEmf:      int32(r.NwProvidedEmf),
		Mcc:                r.Mcc,
		Mnc:                r.Mnc,
		CountryIso:         r.CountryIso,
	}
}

// serviceStateFromProto keeps nil as nil: the slot has no service state.
func serviceStateFromProto(in *pb.ServiceState) *telephony.ServiceState {
	if in == nil {
		return nil
	}
	ss := &telephony.ServiceState{
		VoiceRegState:   telephony.RegistrationState(in.GetVoiceRegState()),
		DataRegState:    telephony.RegistrationState(in.GetDataRegState()),
		IsEmergencyOnly: in.GetEmergencyOnly(),
		OperatorNumeric: in.GetOperatorNumeric(),
	}
	for _, info := range in.GetRegistrationInfos() {
		ss.RegistrationInfos = append(ss.RegistrationInfos, telephony.NetworkRegistrationInfo{
			Domain:               telephony.Domain(info.GetDomain()),
			Transport:            telephony.TransportType(info.GetTransport()),
			AccessNetwork:        telephony.AccessNetworkType(info.GetAccessNetwork()),
			RegState:             telephony.RegistrationState(info.GetRegState()),
			EmergencyOnly:        info.GetEmergencyOnly(),
			IsVopsSupported:      info.GetVopsSupported(),
			IsEmcBearerSupported: info.GetEmcBearerSupported(),
		})
	}
	return ss
}

func barringInfoFromProto(in *pb.BarringInfoRequest) *telephony.BarringInfo {
	info := &telephony.BarringInfo{}
	for _, t := range in.GetBarredServices() {
		if info.Barred == nil {
			info.Barred = make(map[telephony.BarringServiceType]bool)
		}
		info.Barred[telephony.BarringServiceType(t)] = true
	}
	return info
}

func CarrierConfigFromProto(in *pb.CarrierConfig) *telephony.CarrierConfig {
	return &telephony.CarrierConfig{
		EmergencyOverImsSupportedRats:        convertInts[telephony.AccessNetworkType](in.GetEmergencyOverImsSupportedRats()),
		EmergencyOverImsRoamingSupportedRats: convertInts[telephony.AccessNetworkType](in.GetEmergencyOverImsRoamingSupportedRats()),
		EmergencyOverCsSupportedRats:         convertInts[telephony.AccessNetworkType](in.GetEmergencyOverCsSupportedRats()),
		EmergencyOverCsRoamingSupportedRats:  convertInts[telephony.AccessNetworkType](in.GetEmergencyOverCsRoamingSupportedRats()),
		EmergencyDomainPreference:            convertInts[telephony.DomainPreference](in.GetEmergencyDomainPreference()),
		EmergencyDomainPreferenceRoaming:     convertInts[telephony.DomainPreference](in.GetEmergencyDomainPreferenceRoaming()),

		PreferImsEmergencyWhenVoiceCallsOnCs: in.GetPreferImsEmergencyWhenVoiceCallsOnCs(),
		EmergencyVowifiRequiresCondition:     telephony.VoWifiRequiresCondition(in.GetEmergencyVowifiRequiresCondition()),
		MaxEmergencyTriesOverVowifi:          int(in.GetMaxEmergencyTriesOverVowifi()),
		EmergencyScanTimerSec:                int(in.GetEmergencyScanTimerSec()),
		MaximumCellularSearchTimerSec:        int(in.GetMaximumCellularSearchTimerSec()),
		EmergencyNetworkScanType:             telephony.ScanType(in.GetEmergencyNetworkScanType()),
		EmergencyRequiresImsRegistration:     in.GetEmergencyRequiresImsRegistration(),
		EmergencyLtePreferredAfterNrFailed:   in.GetEmergencyLtePreferredAfterNrFailed(),
		EmergencyRequiresVolteEnabled:        in.GetEmergencyRequiresVolteEnabled(),
		EmergencyCdmaPreferredNumbers:        in.GetEmergencyCdmaPreferredNumbers(),
		ImsReasonCodesToRetryEmergency:       convertInts[telephony.ImsReasonCode](in.GetImsReasonCodesToRetryEmergency()),
		ScanLimitedServiceAfterVolteFailure:  in.GetScanLimitedServiceAfterVolteFailure(),
		EmergencyCallOverEmergencyPdn:        in.GetEmergencyCallOverEmergencyPdn(),
		CarrierVolteTtySupported:             in.GetCarrierVolteTtySupported(),

		CrossStackRedialTimerSec:               int(in.GetCrossStackRedialTimerSec()),
		QuickCrossStackRedialTimerSec:          int(in.GetQuickCrossStackRedialTimerSec()),
		StartQuickCrossStackTimerWhenInService: in.GetStartQuickCrossStackTimerWhenInService(),

		SupportEmergencySmsOverIms:                in.GetSupportEmergencySmsOverIms(),
		EmergencySmsRequiresLteInServiceOrLimited: in.GetEmergencySmsRequiresLteInServiceOrLimited(),

		VonrEnabled:            in.GetVonrEnabled(),
		EmergencyVonrSupported: in.GetEmergencyVonrSupported(),
	}
}

func CarrierConfigToProto(c *telephony.CarrierConfig) *pb.CarrierConfig {
	return &pb.CarrierConfig{
		EmergencyOverImsSupportedRats:        convertInts[int32](c.EmergencyOverImsSupportedRats),
		EmergencyOverImsRoamingSupportedRats: convertInts[int32](c.EmergencyOverImsRoamingSupportedRats),
		EmergencyOverCsSupportedRats:         convertInts[int32](c.EmergencyOverCsSupportedRats),
		EmergencyOverCsRoamingSupportedRats:  convertInts[int32](c.EmergencyOverCsRoamingSupportedRats),
		EmergencyDomainPreference:            convertInts[int32](c.EmergencyDomainPreference),
		EmergencyDomainPreferenceRoaming:     convertInts[int32](c.EmergencyDomainPreferenceRoaming),

		PreferImsEmergencyWhenVoiceCallsOnCs: c.PreferImsEmergencyWhenVoiceCallsOnCs,
		EmergencyVowifiRequiresCondition:     int32(c.EmergencyVowifiRequiresCondition),
		MaxEmergencyTriesOverVowifi:          int32(c.MaxEmergencyTriesOverVowifi),
		EmergencyScanTimerSec:                int32(c.EmergencyScanTimerSec),
		MaximumCellularSearchTimerSec:        int32(c.MaximumCellularSearchTimerSec),
		EmergencyNetworkScanType:             int32(c.EmergencyNetworkScanType),
		EmergencyRequiresImsRegistration:     c.EmergencyRequiresImsRegistration,
		EmergencyLtePreferredAfterNrFailed:   c.EmergencyLtePreferredAfterNrFailed,
		EmergencyRequiresVolteEnabled:        c.EmergencyRequiresVolteEnabled,
		EmergencyCdmaPreferredNumbers:        c.EmergencyCdmaPreferredNumbers,
		ImsReasonCodesToRetryEmergency:       convertInts[int32](c.ImsReasonCodesToRetryEmergency),
		ScanLimitedServiceAfterVolteFailure:  c.ScanLimitedServiceAfterVolteFailure,
		EmergencyCallOverEmergencyPdn:        c.EmergencyCallOverEmergencyPdn,
		CarrierVolteTtySupported:             c.CarrierVolteTtySupported,

		CrossStackRedialTimerSec:               int32(c.CrossStackRedialTimerSec),
		QuickCrossStackRedialTimerSec:          int32(c.QuickCrossStackRedialTimerSec),
		StartQuickCrossStackTimerWhenInService: c.StartQuickCrossStackTimerWhenInService,

		SupportEmergencySmsOverIms:                c.SupportEmergencySmsOverIms,
		EmergencySmsRequiresLteInServiceOrLimited: c.EmergencySmsRequiresLteInServiceOrLimited,

		VonrEnabled:            c.VonrEnabled,
		EmergencyVonrSupported: c.EmergencyVonrSupported,
	}
}
