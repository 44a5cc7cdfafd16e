package selector

import (
	"slices"

	"github.com/dense-identity/domainselection/internal/telephony"
)

// wifiCallback re-posts connectivity events onto the selector looper.
type wifiCallback struct {
	selector *EmergencyCallDomainSelector
}

func (c *wifiCallback) OnWifiAvailable() {
	c.selector.post(c.selector.onWifiAvailable)
}

func (c *wifiCallback) OnWifiLost() {
	c.selector.post(func() {
		c.selector.logf("Wi-Fi lost")
		c.selector.wifiAvailable = false
	})
}

func (s *EmergencyCallDomainSelector) registerWifi() {
	if s.wifiRegistered || s.deps.Platform.Connectivity == nil {
		return
	}
	if err := s.deps.Platform.Connectivity.RegisterWifiCallback(s.wifiCb); err != nil {
		s.logf("Wi-Fi callback registration failed: %v", err)
		return
	}
	s.wifiRegistered = true
}

func (s *EmergencyCallDomainSelector) unregisterWifi() {
	if !s.wifiRegistered {
		return
	}
	s.deps.Platform.Connectivity.UnregisterWifiCallback(s.wifiCb)
	s.wifiRegistered = false
}

func (s *EmergencyCallDomainSelector) onWifiAvailable() {
	if s.wifiAvailable {
		return
	}
	s.logf("Wi-Fi available")
	s.wifiAvailable = true
	if !s.domainSelected && !s.terminated && (s.maxCellularExpired || s.scanTimerExpired) {
		s.maybeDialOverWlan()
	}
}

func (s *EmergencyCallDomainSelector) isEmcOverWifiSupported() bool {
	return slices.Contains(s.cfg.DomainPreferences(s.isRoaming()), telephony.DomainPreferencePSNon3GPP)
}

// maybeDialOverWlan moves the call to Wi-Fi when Wi-Fi is usable and the
// carrier allows another Wi-Fi attempt. Any scan in flight is cancelled.
func (s *EmergencyCallDomainSelector) maybeDialOverWlan() bool {
	if !s.wifiAvailable && !s.tracker.IsImsRegisteredOverWlan() {
		return false
	}
	if !s.isSimReady() || !s.isEmcOverWifiSupported() {
		return false
	}
	if s.voWifiTrials >= s.cfg.MaxEmergencyTriesOverVowifi {
		s.logf("no Wi-Fi trials left (%d)", s.voWifiTrials)
		return false
	}

	ims := s.deps.Platform.Ims
	switch s.cfg.EmergencyVowifiRequiresCondition {
	case telephony.VoWifiRequiresSettingEnabled:
		if !s.settingEnabled(ims.IsVoWiFiSettingEnabled, "Wi-Fi calling") {
			return false
		}
	case telephony.VoWifiRequiresValidEID:
		if !s.settingEnabled(ims.IsVoWiFiSettingEnabled, "Wi-Fi calling") ||
			!s.settingEnabled(ims.IsEmergencyAddressValid, "emergency address") {
			return false
		}
	}

	s.logf("dialing over Wi-Fi")
	s.cancelScan()
	s.selectWlan()
	return true
}
