package selector

import (
	"slices"

	"github.com/dense-identity/domainselection/internal/telephony"
)

func (s *EmergencyCallDomainSelector) isCsInService() bool {
	r := s.lastRegResult
	return r != nil && r.RegState.InService() && r.Domain.Has(telephony.DomainCS)
}

func (s *EmergencyCallDomainSelector) isPsInService() bool {
	r := s.lastRegResult
	return r != nil && r.RegState.InService() && r.Domain.Has(telephony.DomainPS)
}

// isPsAllowed applies the gates that rule out an IMS emergency call
// regardless of the network.
func (s *EmergencyCallDomainSelector) isPsAllowed() bool {
	if s.emergencyBarred {
		return false
	}
	if s.cfg.EmergencyRequiresVolteEnabled && !s.isVolteEnabled() {
		return false
	}
	if s.deps.Platform.Telephony.IsTtyModeEnabled() && !s.cfg.CarrierVolteTtySupported {
		return false
	}
	return true
}

func (s *EmergencyCallDomainSelector) isNrAllowed() bool {
	if !s.isSimAbsent() {
		return true
	}
	return s.deps.CarrierHelper != nil && s.deps.CarrierHelper.IsVoNrEmergencySupported(s.slotID)
}

// imsNetworkTypes is the carrier IMS RAT list with NR removed when no SIM
// is present and NR emergency support is not known.
func (s *EmergencyCallDomainSelector) imsNetworkTypes() []telephony.AccessNetworkType {
	types := s.cfg.ImsNetworkTypes(s.isRoaming())
	if !s.isNrAllowed() {
		types = slices.DeleteFunc(types, func(t telephony.AccessNetworkType) bool { return t == telephony.NGRAN })
	}
	return types
}

func (s *EmergencyCallDomainSelector) csNetworkTypes() []telephony.AccessNetworkType {
	return s.cfg.CsNetworkTypes(s.isRoaming())
}

// selectablePsNetworkType returns the RAT of the last registration if an
// IMS emergency call can be placed on it. Outside normal service VoPS is
// not required.
func (s *EmergencyCallDomainSelector) selectablePsNetworkType(inService bool) telephony.AccessNetworkType {
	r := s.lastRegResult
	if r == nil || !s.isPsAllowed() || !r.Domain.Has(telephony.DomainPS) {
		return telephony.AccessNetworkUnknown
	}
	if !slices.Contains(s.imsNetworkTypes(), r.AccessNetwork) {
		return telephony.AccessNetworkUnknown
	}
	switch r.AccessNetwork {
	case telephony.NGRAN:
		if r.NwProvidedEmc > 0 && (r.IsVopsSupported || !inService) {
			return telephony.NGRAN
		}
	case telephony.EUTRAN:
		if r.IsEmcBearerSupported && (r.IsVopsSupported || !inService) {
			return telephony.EUTRAN
		}
	}
	return telephony.AccessNetworkUnknown
}

// selectableCsNetworkType returns the CS RAT usable for the call. A
// combined attach on LTE or NR falls back to the first allowed 3G/2G RAT.
func (s *EmergencyCallDomainSelector) selectableCsNetworkType() telephony.AccessNetworkType {
	r := s.lastRegResult
	if r == nil || !r.Domain.Has(telephony.DomainCS) {
		return telephony.AccessNetworkUnknown
	}
	cs := s.csNetworkTypes()
	if slices.Contains(cs, r.AccessNetwork) {
		return r.AccessNetwork
	}
	if r.AccessNetwork.IsPS() {
		for _, t := range []telephony.AccessNetworkType{telephony.UTRAN, telephony.GERAN} {
			if slices.Contains(cs, t) {
				return t
			}
		}
	}
	return telephony.AccessNetworkUnknown
}

func moveToFront(list []telephony.AccessNetworkType, t telephony.AccessNetworkType) []telephony.AccessNetworkType {
	i := slices.Index(list, t)
	if i <= 0 {
		return list
	}
	out := make([]telephony.AccessNetworkType, 0, len(list))
	out = append(out, t)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

// nextPreferredNetworks orders the RATs of the next scan by the carrier
// domain preference. csPreferred puts CS first; a failed Wi-Fi dial keeps
// the carrier order.
func (s *EmergencyCallDomainSelector) nextPreferredNetworks(csPreferred, wifiFailed bool) []telephony.AccessNetworkType {
	roaming := s.isRoaming()
	ims := s.imsNetworkTypes()
	cs := s.csNetworkTypes()

	if s.cfg.EmergencyLtePreferredAfterNrFailed && s.lastNetworkType == telephony.NGRAN {
		ims = moveToFront(ims, telephony.EUTRAN)
	}
	if s.isSimAbsent() && s.deps.Platform.Resources.PrefersGeranWhenSimAbsent(s.countryIso()) {
		cs = moveToFront(cs, telephony.GERAN)
	}
	if len(cs) > 0 && !s.isPsAllowed() {
		ims = nil
	}

	prefs := s.cfg.DomainPreferences(roaming)
	var out []telephony.AccessNetworkType
	if csPreferred && !wifiFailed && len(cs) > 0 {
		out = append(out, cs...)
	}
	for _, p := range prefs {
		switch p {
		case telephony.DomainPreferencePS3GPP:
			out = append(out, ims...)
		case telephony.DomainPreferenceCS:
			out = append(out, cs...)
		}
	}
	if len(out) == 0 {
		out = append(ims, cs...)
	}

	if s.cfg.IsCdmaPreferredNumber(s.attr.Number()) {
		out = moveToFront(out, telephony.CDMA2000)
	}

	seen := make(map[telephony.AccessNetworkType]bool, len(out))
	return slices.DeleteFunc(out, func(t telephony.AccessNetworkType) bool {
		if seen[t] {
			return true
		}
		seen[t] = true
		return false
	})
}
