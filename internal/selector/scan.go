package selector

import (
	"time"

	"github.com/dense-identity/domainselection/internal/telephony"
)

func (s *EmergencyCallDomainSelector) scanType() telephony.ScanType {
	if s.scanEscalated || (s.volteFailed && s.cfg.ScanLimitedServiceAfterVolteFailure) {
		return telephony.ScanTypeLimitedService
	}
	return s.cfg.EmergencyNetworkScanType
}

// requestScan asks the modem for an emergency network scan. startVoWifiTimer
// arms the Wi-Fi fallback timers, csPreferred scans CS RATs first and
// wifiFailed marks a scan that follows a failed Wi-Fi dial.
func (s *EmergencyCallDomainSelector) requestScan(startVoWifiTimer, csPreferred, wifiFailed bool) {
	if s.wwan == nil {
		s.withWwan(func() { s.requestScan(startVoWifiTimer, csPreferred, wifiFailed) })
		return
	}
	if s.scanRequested {
		s.logf("scan already in progress")
		return
	}

	s.domainSelected = false
	networks := s.nextPreferredNetworks(csPreferred, wifiFailed)
	scanType := s.scanType()
	reset := s.resetScanNext
	s.resetScanNext = false

	signal := telephony.NewCancellationSignal()
	s.cancelSignal = signal
	s.scanRequested = true
	s.lastScanType = scanType
	s.lastCsPreferred = csPreferred

	s.logf("requestScan networks=%s type=%s reset=%t startVoWifiTimer=%t wifiFailed=%t",
		telephony.FormatNetworks(networks), scanType, reset, startVoWifiTimer, wifiFailed)
	s.deps.Metrics.IncrementScan(scanType.String())

	s.wwan.OnRequestEmergencyNetworkScan(networks, scanType, reset, signal,
		func(result telephony.EmergencyRegistrationResult) {
			s.post(func() { s.onScanResult(signal, result) })
		})

	if startVoWifiTimer {
		s.startVoWifiTimers()
	}
}

func (s *EmergencyCallDomainSelector) startVoWifiTimers() {
	if !s.isSimReady() {
		return
	}
	if s.isEmcOverWifiSupported() && s.cfg.EmergencyScanTimerSec > 0 &&
		s.voWifiTrials < s.cfg.MaxEmergencyTriesOverVowifi {
		s.registerWifi()
		s.handler.RemoveMessages(msgNetworkScanTimeout)
		s.handler.SendEmptyMessageDelayed(msgNetworkScanTimeout,
			time.Duration(s.cfg.EmergencyScanTimerSec)*time.Second)
	}
	if s.cfg.MaximumCellularSearchTimerSec > 0 && !s.maxCellularExpired &&
		!s.handler.HasMessages(msgMaxCellularTimeout) {
		if s.isEmcOverWifiSupported() {
			s.registerWifi()
		}
		s.handler.SendEmptyMessageDelayed(msgMaxCellularTimeout,
			time.Duration(s.cfg.MaximumCellularSearchTimerSec)*time.Second)
	}
}

func (s *EmergencyCallDomainSelector) cancelScan() {
	if s.cancelSignal != nil {
		s.logf("cancel scan")
		s.cancelSignal.Cancel()
	}
	s.cancelSignal = nil
	s.scanRequested = false
}

func (s *EmergencyCallDomainSelector) onScanResult(signal *telephony.CancellationSignal, result telephony.EmergencyRegistrationResult) {
	if signal != s.cancelSignal || s.terminated {
		s.logf("stale scan result dropped")
		return
	}
	s.scanRequested = false
	s.cancelSignal = nil
	s.handler.RemoveMessages(msgNetworkScanTimeout)
	s.logf("scan result %s", result.String())

	if result.AccessNetwork == telephony.AccessNetworkUnknown {
		if s.lastScanType == telephony.ScanTypeFullServiceFollowedByLimitedService && !s.scanEscalated {
			s.scanEscalated = true
			s.requestScan(false, s.lastCsPreferred, false)
			return
		}
		if s.maybeDialOverWlan() {
			return
		}
		s.handler.SendEmptyMessageDelayed(msgContinuousScan, ContinuousScanDelay)
		return
	}

	r := result
	s.lastRegResult = &r
	ps := s.selectablePsNetworkType(false)
	cs := s.selectableCsNetworkType()

	switch {
	case s.lastCsPreferred && cs != telephony.AccessNetworkUnknown:
		s.onWwanNetworkTypeSelected(cs)
	case ps != telephony.AccessNetworkUnknown:
		s.tryCsWhenPsFails = cs != telephony.AccessNetworkUnknown
		s.onWwanNetworkTypeSelected(ps)
	case cs != telephony.AccessNetworkUnknown:
		s.onWwanNetworkTypeSelected(cs)
	default:
		if s.maybeDialOverWlan() {
			return
		}
		s.handler.SendEmptyMessageDelayed(msgContinuousScan, ContinuousScanDelay)
	}
}
