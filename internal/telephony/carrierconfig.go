package telephony

import (
	"slices"
	"strings"
)

// CarrierConfig is the snapshot of carrier policy a selector reads at the
// start of each selection attempt.
type CarrierConfig struct {
	EmergencyOverImsSupportedRats        []AccessNetworkType `toml:"emergency_over_ims_supported_3gpp_network_types"`
	EmergencyOverImsRoamingSupportedRats []AccessNetworkType `toml:"emergency_over_ims_roaming_supported_3gpp_network_types"`
	EmergencyOverCsSupportedRats         []AccessNetworkType `toml:"emergency_over_cs_supported_access_network_types"`
	EmergencyOverCsRoamingSupportedRats  []AccessNetworkType `toml:"emergency_over_cs_roaming_supported_access_network_types"`
	EmergencyDomainPreference            []DomainPreference  `toml:"emergency_domain_preference"`
	EmergencyDomainPreferenceRoaming     []DomainPreference  `toml:"emergency_domain_preference_roaming"`

	PreferImsEmergencyWhenVoiceCallsOnCs bool                    `toml:"prefer_ims_emergency_when_voice_calls_on_cs"`
	EmergencyVowifiRequiresCondition     VoWifiRequiresCondition `toml:"emergency_vowifi_requires_condition"`
	MaxEmergencyTriesOverVowifi          int                     `toml:"maximum_number_of_emergency_tries_over_vowifi"`
	EmergencyScanTimerSec                int                     `toml:"emergency_scan_timer_sec"`
	MaximumCellularSearchTimerSec        int                     `toml:"maximum_cellular_search_timer_sec"`
	EmergencyNetworkScanType             ScanType                `toml:"emergency_network_scan_type"`
	EmergencyRequiresImsRegistration     bool                    `toml:"emergency_requires_ims_registration"`
	EmergencyLtePreferredAfterNrFailed   bool                    `toml:"emergency_lte_preferred_after_nr_failed"`
	EmergencyRequiresVolteEnabled        bool                    `toml:"emergency_requires_volte_enabled"`
	EmergencyCdmaPreferredNumbers        []string                `toml:"emergency_cdma_preferred_numbers"`
	ImsReasonCodesToRetryEmergency       []ImsReasonCode         `toml:"ims_reasoninfo_code_to_retry_emergency"`
	ScanLimitedServiceAfterVolteFailure  bool                    `toml:"scan_limited_service_after_volte_failure"`
	EmergencyCallOverEmergencyPdn        bool                    `toml:"emergency_call_over_emergency_pdn"`
	CarrierVolteTtySupported             bool                    `toml:"carrier_volte_tty_supported"`

	CrossStackRedialTimerSec               int  `toml:"cross_stack_redial_timer_sec"`
	QuickCrossStackRedialTimerSec          int  `toml:"quick_cross_stack_redial_timer_sec"`
	StartQuickCrossStackTimerWhenInService bool `toml:"start_quick_cross_stack_redial_timer_when_registered"`

	SupportEmergencySmsOverIms                bool `toml:"support_emergency_sms_over_ims"`
	EmergencySmsRequiresLteInServiceOrLimited bool `toml:"emergency_sms_requires_lte_in_service_or_limited"`

	VonrEnabled            bool `toml:"vonr_enabled"`
	EmergencyVonrSupported bool `toml:"emergency_vonr_supported"`
}

// DefaultCarrierConfig returns the platform defaults for every key.
func DefaultCarrierConfig() *CarrierConfig {
	return &CarrierConfig{
		EmergencyOverImsSupportedRats:        []AccessNetworkType{EUTRAN},
		EmergencyOverImsRoamingSupportedRats: []AccessNetworkType{EUTRAN},
		EmergencyOverCsSupportedRats:         []AccessNetworkType{UTRAN, GERAN},
		EmergencyOverCsRoamingSupportedRats:  []AccessNetworkType{UTRAN, GERAN},
		EmergencyDomainPreference: []DomainPreference{
			DomainPreferencePS3GPP, DomainPreferenceCS, DomainPreferencePSNon3GPP,
		},
		EmergencyDomainPreferenceRoaming: []DomainPreference{
			DomainPreferencePS3GPP, DomainPreferenceCS, DomainPreferencePSNon3GPP,
		},
		EmergencyVowifiRequiresCondition:       VoWifiRequiresNone,
		MaxEmergencyTriesOverVowifi:            1,
		EmergencyScanTimerSec:                  10,
		EmergencyNetworkScanType:               ScanTypeNoPreference,
		EmergencyCallOverEmergencyPdn:          true,
		CarrierVolteTtySupported:               true,
		CrossStackRedialTimerSec:               120,
		QuickCrossStackRedialTimerSec:          3,
		StartQuickCrossStackTimerWhenInService: true,
	}
}

// Clone returns a deep copy.
func (c *CarrierConfig) Clone() *CarrierConfig {
	if c == nil {
		return DefaultCarrierConfig()
	}
	out := *c
	out.EmergencyOverImsSupportedRats = slices.Clone(c.EmergencyOverImsSupportedRats)
	out.EmergencyOverImsRoamingSupportedRats = slices.Clone(c.EmergencyOverImsRoamingSupportedRats)
	out.EmergencyOverCsSupportedRats = slices.Clone(c.EmergencyOverCsSupportedRats)
	out.EmergencyOverCsRoamingSupportedRats = slices.Clone(c.EmergencyOverCsRoamingSupportedRats)
	out.EmergencyDomainPreference = slices.Clone(c.EmergencyDomainPreference)
	out.EmergencyDomainPreferenceRoaming = slices.Clone(c.EmergencyDomainPreferenceRoaming)
	out.EmergencyCdmaPreferredNumbers = slices.Clone(c.EmergencyCdmaPreferredNumbers)
	out.ImsReasonCodesToRetryEmergency = slices.Clone(c.ImsReasonCodesToRetryEmergency)
	return &out
}

// ImsNetworkTypes returns the RATs that may carry an emergency call over IMS.
func (c *CarrierConfig) ImsNetworkTypes(roaming bool) []AccessNetworkType {
	if roaming {
		return slices.Clone(c.EmergencyOverImsRoamingSupportedRats)
	}
	return slices.Clone(c.EmergencyOverImsSupportedRats)
}

// CsNetworkTypes returns the RATs that may carry an emergency call over CS.
func (c *CarrierConfig) CsNetworkTypes(roaming bool) []AccessNetworkType {
	if roaming {
		return slices.Clone(c.EmergencyOverCsRoamingSupportedRats)
	}
	return slices.Clone(c.EmergencyOverCsSupportedRats)
}

// DomainPreferences returns the emergency domain ordering.
func (c *CarrierConfig) DomainPreferences(roaming bool) []DomainPreference {
	if roaming {
		return slices.Clone(c.EmergencyDomainPreferenceRoaming)
	}
	return slices.Clone(c.EmergencyDomainPreference)
}

// IsCdmaPreferredNumber reports whether number must be dialed on CDMA first.
func (c *CarrierConfig) IsCdmaPreferredNumber(number string) bool {
	for _, n := range c.EmergencyCdmaPreferredNumbers {
		if strings.TrimSpace(n) == number {
			return true
		}
	}
	return false
}

// IsRetryableImsReason reports whether a PS failure with code may be retried on another domain.
func (c *CarrierConfig) IsRetryableImsReason(code ImsReasonCode) bool {
	return slices.Contains(c.ImsReasonCodesToRetryEmergency, code)
}

// ResourceConfig is the device overlay of country lists that shape emergency policy.
type ResourceConfig struct {
	CountriesRequireSim               []string `env:"COUNTRIES_REQUIRE_SIM" envSeparator:","`
	CountriesPreferNormalServiceSlot  []string `env:"COUNTRIES_PREFER_NORMAL_SERVICE_SLOT" envSeparator:","`
	CountriesEmergencyBarred          []string `env:"COUNTRIES_EMERGENCY_BARRED" envSeparator:","`
	CountriesPreferGeranWhenSimAbsent []string `env:"COUNTRIES_PREFER_GERAN_WHEN_SIM_ABSENT" envSeparator:","`
}

func containsCountry(list []string, iso string) bool {
	if iso == "" {
		return false
	}
	for _, c := range list {
		if strings.EqualFold(strings.TrimSpace(c), iso) {
			return true
		}
	}
	return false
}

func (r ResourceConfig) RequiresSim(iso string) bool {
	return containsCountry(r.CountriesRequireSim, iso)
}

func (r ResourceConfig) PrefersNormalServiceSlot(iso string) bool {
	return containsCountry(r.CountriesPreferNormalServiceSlot, iso)
}

func (r ResourceConfig) IsEmergencyBarred(iso string) bool {
	return containsCountry(r.CountriesEmergencyBarred, iso)
}

func (r ResourceConfig) PrefersGeranWhenSimAbsent(iso string) bool {
	return containsCountry(r.CountriesPreferGeranWhenSimAbsent, iso)
}
