package selector

import "github.com/dense-identity/domainselection/internal/telephony"

func (s *EmergencyCallDomainSelector) reselectDomain(attr telephony.SelectionAttributes) {
	if !s.started || s.terminated {
		s.logf("reselectDomain ignored started=%t terminated=%t", s.started, s.terminated)
		return
	}
	s.attr = attr
	if attr.RegistrationResult != nil {
		s.lastRegResult = attr.RegistrationResult
	}
	s.cancelWaitingForDisconnection()
	s.domainSelected = false
	s.cfg = s.deps.Platform.CarrierConfig(s.subID)

	cause := attr.CsDisconnectCause
	s.logf("reselectDomain cause=%s psCause=%v lastTransport=%s lastNetwork=%s",
		cause, attr.PsDisconnectCause, s.lastTransport, s.lastNetworkType)

	if s.crossSim != nil {
		s.crossSim.NotifyCallFailure(cause)
	}
	if cause == telephony.CauseEmergencyPermFailure || cause == telephony.CauseEmergencyTempFailure {
		if s.isThereOtherSlot() {
			s.terminateForCrossSimRedialing(cause == telephony.CauseEmergencyPermFailure)
			return
		}
	}
	if s.crossStackExpired {
		s.terminateForCrossSimRedialing(false)
		return
	}

	if s.isTestNumber {
		s.selectDomainForTestNumber()
		return
	}

	psFailed := s.lastTransport == telephony.TransportWWAN && s.lastNetworkType.IsPS()
	forceCs := false
	if psFailed {
		s.volteFailed = true
		if info := attr.PsDisconnectCause; info != nil && info.Code != telephony.ImsReasonUnspecified {
			switch {
			case info.Code == telephony.ImsReasonLocalCallCsRetryRequired:
				forceCs = true
			case len(s.cfg.ImsReasonCodesToRetryEmergency) > 0 && !s.cfg.IsRetryableImsReason(info.Code):
				s.logf("IMS reason %d is not retryable", info.Code)
				s.terminate(telephony.CauseNotValid)
				return
			}
		}
	}

	s.startCrossStackTimer()

	if s.tryCsWhenPsFails || forceCs {
		s.tryCsWhenPsFails = false
		if t := s.selectableCsNetworkType(); t != telephony.AccessNetworkUnknown {
			s.withWwan(func() { s.onWwanNetworkTypeSelected(t) })
			return
		}
	}

	if s.lastTransport == telephony.TransportWLAN {
		s.resetScanNext = true
		s.withWwan(func() { s.requestScan(false, false, true) })
		return
	}

	if s.maxCellularExpired && s.maybeDialOverWlan() {
		return
	}

	s.resetScanNext = true
	s.withWwan(func() { s.requestScan(false, psFailed || forceCs, false) })
}
