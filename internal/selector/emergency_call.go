package selector

import (
	"slices"
	"sync"
	"time"

	"github.com/dense-identity/domainselection/internal/crosssim"
	"github.com/dense-identity/domainselection/internal/datastate"
	"github.com/dense-identity/domainselection/internal/imsstate"
	"github.com/dense-identity/domainselection/internal/looper"
	"github.com/dense-identity/domainselection/internal/telephony"
)

const (
	msgNetworkScanTimeout = iota + 1
	msgMaxCellularTimeout
	msgWaitDisconnectionTimeout
	msgContinuousScan
)

// WaitForDisconnectionTimeout bounds how long a selection waits for an
// emergency PDN on the other transport to go away.
const WaitForDisconnectionTimeout = 2 * time.Second

// ContinuousScanDelay separates repeated scans after an empty result.
const ContinuousScanDelay = time.Second

const wakeLockTag = "EmergencyCallDomainSelector"

// EmergencyCallDomainSelector picks CS, PS or Wi-Fi for one emergency call
// and drives network scans, Wi-Fi fallback and cross-SIM redialing until
// the call is placed or the selection is handed back to the framework.
type EmergencyCallDomainSelector struct {
	base

	crossSim  *crosssim.Controller
	dataState *datastate.Helper

	wakeMu   sync.Mutex
	wakeLock telephony.WakeLock

	cfg *telephony.CarrierConfig

	// readiness
	started         bool
	barringReceived bool
	regReceived     bool
	capsReceived    bool
	emergencyBarred bool
	serviceState    *telephony.ServiceState

	isTestNumber bool
	wwan         telephony.WwanSelectorCallback
	wwanPending  []func()

	lastRegResult   *telephony.EmergencyRegistrationResult
	lastNetworkType telephony.AccessNetworkType
	lastTransport   telephony.TransportType
	domainSelected  bool
	terminated      bool

	scanRequested    bool
	cancelSignal     *telephony.CancellationSignal
	scanEscalated    bool
	lastScanType     telephony.ScanType
	lastCsPreferred  bool
	resetScanNext    bool
	volteFailed      bool
	tryCsWhenPsFails bool

	crossStackExpired  bool
	scanTimerExpired   bool
	maxCellularExpired bool

	wifiCb         *wifiCallback
	wifiRegistered bool
	wifiAvailable  bool
	voWifiTrials   int

	waitingForDisconnection bool
	pendingReport           func()
}

var (
	_ Selector                      = (*EmergencyCallDomainSelector)(nil)
	_ crosssim.Selector             = (*EmergencyCallDomainSelector)(nil)
	_ datastate.Listener            = (*EmergencyCallDomainSelector)(nil)
	_ imsstate.ImsStateListener     = (*EmergencyCallDomainSelector)(nil)
	_ imsstate.ServiceStateListener = (*EmergencyCallDomainSelector)(nil)
	_ imsstate.BarringInfoListener  = (*EmergencyCallDomainSelector)(nil)
)

// NewEmergencyCall builds a selector for slotID and acquires its wake lock.
func NewEmergencyCall(d Deps, tracker *imsstate.Tracker, slotID, subID int, l DestroyListener) *EmergencyCallDomainSelector {
	s := &EmergencyCallDomainSelector{
		crossSim:        d.CrossSim,
		dataState:       d.DataState,
		lastNetworkType: telephony.AccessNetworkUnknown,
		lastTransport:   telephony.TransportInvalid,
	}
	s.init(s, "EmergencyCallDomainSelector", d, tracker, slotID, subID, l, s.handleMessage)
	s.wifiCb = &wifiCallback{selector: s}
	s.acquireWakeLock()

	tracker.AddImsStateListener(s)
	tracker.AddBarringInfoListener(s)
	tracker.AddServiceStateListener(s)
	if s.dataState != nil {
		s.dataState.SetListener(slotID, s)
	}
	return s
}

func (s *EmergencyCallDomainSelector) handleMessage(msg looper.Message) {
	if s.destroyed {
		return
	}
	switch msg.What {
	case msgNetworkScanTimeout:
		s.logf("network scan timer expired")
		s.scanTimerExpired = true
		if !s.domainSelected {
			s.maybeDialOverWlan()
		}
	case msgMaxCellularTimeout:
		s.logf("max cellular timer expired")
		s.maxCellularExpired = true
		if !s.domainSelected {
			s.maybeDialOverWlan()
		}
	case msgWaitDisconnectionTimeout:
		s.logf("emergency PDN disconnection wait timed out")
		s.finishWaitingForDisconnection()
	case msgContinuousScan:
		if !s.domainSelected && !s.scanRequested && !s.terminated {
			s.requestScan(false, s.lastCsPreferred, false)
		}
	}
}

func (s *EmergencyCallDomainSelector) acquireWakeLock() {
	s.wakeMu.Lock()
	defer s.wakeMu.Unlock()
	if s.wakeLock != nil || s.deps.Platform == nil || s.deps.Platform.Power == nil {
		return
	}
	s.wakeLock = s.deps.Platform.Power.NewWakeLock(wakeLockTag)
	s.wakeLock.Acquire()
}

func (s *EmergencyCallDomainSelector) releaseWakeLock() {
	s.wakeMu.Lock()
	defer s.wakeMu.Unlock()
	if s.wakeLock == nil {
		return
	}
	s.wakeLock.Release()
	s.wakeLock = nil
}

func (s *EmergencyCallDomainSelector) SelectDomain(attr telephony.SelectionAttributes, cb telephony.TransportSelectorCallback) {
	if s.destroyed {
		return
	}
	if s.requested || s.started {
		s.logf("selectDomain already requested")
		return
	}
	s.attr = attr
	s.transport = cb
	s.requested = true
	s.isTestNumber = s.deps.Platform.Telephony.IsTestEmergencyNumber(s.slotID, attr.Number())
	s.logf("selectDomain %s test=%t", attr, s.isTestNumber)
	cb.OnCreated(s)
	s.selectIfReady()
}

func (s *EmergencyCallDomainSelector) ReselectDomain(attr telephony.SelectionAttributes) {
	s.post(func() { s.reselectDomain(attr) })
}

func (s *EmergencyCallDomainSelector) FinishSelection() {
	s.post(func() {
		s.logf("finishSelection")
		s.Destroy()
	})
}

func (s *EmergencyCallDomainSelector) CancelSelection() {
	s.post(func() {
		s.logf("cancelSelection")
		if s.scanRequested && s.wwan != nil {
			s.wwan.OnCancel()
		}
		s.Destroy()
	})
}

// Destroy releases every resource exactly once.
func (s *EmergencyCallDomainSelector) Destroy() {
	if s.destroyed {
		return
	}
	s.logf("destroy")
	s.cancelScan()
	s.unregisterWifi()
	s.tracker.RemoveImsStateListener(s)
	s.tracker.RemoveBarringInfoListener(s)
	s.tracker.RemoveServiceStateListener(s)
	if s.crossSim != nil {
		s.crossSim.Release(s)
	}
	if s.dataState != nil {
		s.dataState.ClearListener(s.slotID, s)
	}
	s.pendingReport = nil
	s.wwanPending = nil
	s.releaseWakeLock()
	s.destroyBase()
}

// NotifyCrossStackTimerExpired is called by the redialing controller when
// another slot should take over the call.
func (s *EmergencyCallDomainSelector) NotifyCrossStackTimerExpired() {
	if s.destroyed {
		return
	}
	s.logf("cross stack timer expired")
	s.crossStackExpired = true
	if s.domainSelected {
		// The dial in progress reports its failure through reselectDomain.
		return
	}
	s.terminateForCrossSimRedialing(false)
}

func (s *EmergencyCallDomainSelector) OnImsMmTelFeatureAvailableChanged() {}

func (s *EmergencyCallDomainSelector) OnImsRegistrationStateChanged() {
	s.regReceived = true
	s.selectIfReady()
}

func (s *EmergencyCallDomainSelector) OnImsMmTelCapabilitiesChanged() {
	s.capsReceived = true
	s.selectIfReady()
}

func (s *EmergencyCallDomainSelector) OnBarringInfoUpdated(info *telephony.BarringInfo) {
	s.barringReceived = true
	s.emergencyBarred = info.IsEmergencyBarred()
	s.selectIfReady()
}

func (s *EmergencyCallDomainSelector) OnServiceStateUpdated(ss *telephony.ServiceState) {
	s.serviceState = ss
}

func (s *EmergencyCallDomainSelector) OnEmergencyPdnStateChanged(transport telephony.TransportType, state telephony.EmergencyPdnState) {
	if s.destroyed || !s.waitingForDisconnection {
		return
	}
	s.logf("emergency PDN %s on %s", state, transport)
	if state == telephony.PdnStateIdle {
		s.finishWaitingForDisconnection()
	}
}

func (s *EmergencyCallDomainSelector) isReady() bool {
	return s.barringReceived && s.regReceived && s.capsReceived
}

func (s *EmergencyCallDomainSelector) selectIfReady() {
	if s.destroyed || !s.requested || s.started {
		return
	}
	if !s.isReady() {
		s.logf("waiting barring=%t registration=%t capabilities=%t",
			s.barringReceived, s.regReceived, s.capsReceived)
		return
	}
	s.requested = false
	s.started = true
	s.startDomainSelection()
}

func (s *EmergencyCallDomainSelector) startDomainSelection() {
	s.cfg = s.deps.Platform.CarrierConfig(s.subID)
	s.lastRegResult = s.attr.RegistrationResult
	resources := s.deps.Platform.Resources

	if s.isTestNumber {
		s.selectDomainForTestNumber()
		return
	}

	iso := s.countryIso()
	if resources.IsEmergencyBarred(iso) {
		s.logf("emergency calls barred in %s", iso)
		s.terminate(telephony.CauseEmergencyCallBarred)
		return
	}

	s.startCrossStackTimer()

	if resources.RequiresSim(iso) && !s.isSimReady() {
		s.logf("SIM required in %s but not ready", iso)
		if s.isThereOtherSlot() {
			s.terminateForCrossSimRedialing(true)
		} else {
			s.terminate(telephony.CauseIccError)
		}
		return
	}

	if resources.PrefersNormalServiceSlot(iso) && s.otherSlotHasNormalService() {
		s.logf("another slot has normal service in %s", iso)
		s.terminateForCrossSimRedialing(false)
		return
	}

	if s.selectForCallbackMode() {
		return
	}

	if s.isWifiPreferred() {
		s.selectWlan()
		return
	}

	s.withWwan(s.selectDomainOnWwan)
}

func (s *EmergencyCallDomainSelector) selectDomainForTestNumber() {
	s.withWwan(func() {
		if s.tracker.IsImsVoiceCapable() {
			s.onWwanNetworkTypeSelected(telephony.EUTRAN)
		} else {
			s.onWwanNetworkTypeSelected(telephony.UTRAN)
		}
	})
}

// selectForCallbackMode keeps the call on the transport of the emergency
// call that put the slot into callback mode.
func (s *EmergencyCallDomainSelector) selectForCallbackMode() bool {
	cbm := s.deps.CallbackMode
	if cbm == nil || !cbm.IsInEmergencyCallbackMode(s.slotID) {
		return false
	}
	switch cbm.TransportType(s.slotID) {
	case telephony.TransportWLAN:
		if s.tracker.IsImsRegisteredOverWlan() || s.wifiAvailable {
			s.logf("callback mode on WLAN")
			s.selectWlan()
			return true
		}
	case telephony.TransportWWAN:
		if t := s.selectablePsNetworkType(s.isPsInService()); t != telephony.AccessNetworkUnknown {
			s.logf("callback mode on WWAN PS")
			s.withWwan(func() { s.onWwanNetworkTypeSelected(t) })
			return true
		}
	}
	return false
}

func (s *EmergencyCallDomainSelector) isWifiPreferred() bool {
	if !s.tracker.IsImsRegisteredOverWlan() || !s.tracker.IsImsVoiceCapable() {
		return false
	}
	prefs := s.cfg.DomainPreferences(s.isRoaming())
	return len(prefs) > 0 && prefs[0] == telephony.DomainPreferencePSNon3GPP
}

func (s *EmergencyCallDomainSelector) selectDomainOnWwan() {
	if s.attr.IsExitedFromAirplaneMode && !s.tracker.IsImsVoiceCapable() {
		s.logf("exited airplane mode, registration is stale")
		s.requestScan(true, false, false)
		return
	}
	if s.lastRegResult == nil {
		s.requestScan(true, false, false)
		return
	}

	csInService := s.isCsInService()
	psInService := s.isPsInService()
	imsVoice := s.tracker.IsImsVoiceCapable()
	simDeactivated := s.deps.Platform.Telephony.IsSimDeactivated(s.subID)
	imsRequired := s.cfg.EmergencyRequiresImsRegistration && !imsVoice && !simDeactivated
	s.logf("selectDomainOnWwan cs=%t ps=%t imsVoice=%t reg=%s", csInService, psInService, imsVoice, s.lastRegResult)

	switch {
	case csInService && psInService:
		voiceOnCs := s.deps.Platform.Telephony.IsVoiceCallOnCs(s.slotID)
		if (voiceOnCs && !s.cfg.PreferImsEmergencyWhenVoiceCallsOnCs) || imsRequired {
			if t := s.selectableCsNetworkType(); t != telephony.AccessNetworkUnknown {
				s.onWwanNetworkTypeSelected(t)
				return
			}
		}
		if t := s.selectablePsNetworkType(true); t != telephony.AccessNetworkUnknown {
			s.tryCsWhenPsFails = true
			s.onWwanNetworkTypeSelected(t)
			return
		}
		if t := s.selectableCsNetworkType(); t != telephony.AccessNetworkUnknown {
			s.onWwanNetworkTypeSelected(t)
			return
		}
		s.requestScan(true, false, false)

	case psInService:
		if imsRequired {
			s.requestScan(true, true, false)
			return
		}
		if t := s.selectablePsNetworkType(true); t != telephony.AccessNetworkUnknown {
			s.onWwanNetworkTypeSelected(t)
			return
		}
		s.requestScan(true, s.isCsPreferred(), false)

	case csInService:
		if simDeactivated {
			if t := s.selectablePsNetworkType(false); t != telephony.AccessNetworkUnknown {
				s.onWwanNetworkTypeSelected(t)
				return
			}
		}
		if t := s.selectableCsNetworkType(); t != telephony.AccessNetworkUnknown {
			s.onWwanNetworkTypeSelected(t)
			return
		}
		s.requestScan(true, false, false)

	default:
		if s.maybeDialOverWlan() {
			return
		}
		s.requestScan(true, false, false)
	}
}

// isCsPreferred reports whether the carrier ranks CS ahead of 3GPP PS.
func (s *EmergencyCallDomainSelector) isCsPreferred() bool {
	prefs := s.cfg.DomainPreferences(s.isRoaming())
	cs := slices.Index(prefs, telephony.DomainPreferenceCS)
	ps := slices.Index(prefs, telephony.DomainPreferencePS3GPP)
	return cs >= 0 && (ps < 0 || cs < ps)
}

// withWwan runs fn once the framework has handed over a WWAN callback.
func (s *EmergencyCallDomainSelector) withWwan(fn func()) {
	if s.wwan != nil {
		fn()
		return
	}
	s.wwanPending = append(s.wwanPending, fn)
	if len(s.wwanPending) > 1 {
		return
	}
	s.transport.OnWwanSelected(func(cb telephony.WwanSelectorCallback) {
		s.post(func() {
			s.wwan = cb
			pending := s.wwanPending
			s.wwanPending = nil
			for _, f := range pending {
				if s.destroyed || s.terminated {
					return
				}
				f()
			}
		})
	})
}

func (s *EmergencyCallDomainSelector) onWwanNetworkTypeSelected(t telephony.AccessNetworkType) {
	s.domainSelected = true
	s.lastNetworkType = t
	s.lastTransport = telephony.TransportWWAN
	s.handler.RemoveMessages(msgNetworkScanTimeout)
	s.handler.RemoveMessages(msgContinuousScan)

	domain := telephony.DomainCS
	if t.IsPS() {
		domain = telephony.DomainPS
	}
	useEmergencyPdn := domain == telephony.DomainPS && s.cfg.EmergencyCallOverEmergencyPdn
	s.logf("WWAN %s selected on %s", domain, t)

	wwan := s.wwan
	report := func() {
		s.deps.Metrics.IncrementSelected(s.name, resultLabel(domain))
		wwan.OnDomainSelected(domain, useEmergencyPdn)
	}
	if domain == telephony.DomainPS && s.hasActivePdnOn(telephony.TransportWLAN) {
		s.waitForDisconnection(report)
		return
	}
	report()
}

func (s *EmergencyCallDomainSelector) selectWlan() {
	s.domainSelected = true
	s.lastTransport = telephony.TransportWLAN
	s.voWifiTrials++
	s.deps.Metrics.IncrementWifiTrial()
	s.handler.RemoveMessages(msgNetworkScanTimeout)
	s.handler.RemoveMessages(msgMaxCellularTimeout)
	s.handler.RemoveMessages(msgContinuousScan)

	useEmergencyPdn := s.cfg.EmergencyCallOverEmergencyPdn
	report := func() { s.notifyWlanSelected(useEmergencyPdn) }
	if s.hasActivePdnOn(telephony.TransportWWAN) {
		s.waitForDisconnection(report)
		return
	}
	report()
}

func (s *EmergencyCallDomainSelector) hasActivePdnOn(transport telephony.TransportType) bool {
	return s.dataState != nil && s.dataState.HasActivePdnOn(s.slotID, transport)
}

func (s *EmergencyCallDomainSelector) waitForDisconnection(report func()) {
	s.logf("waiting for the emergency PDN on the other transport to disconnect")
	s.waitingForDisconnection = true
	s.pendingReport = report
	s.handler.RemoveMessages(msgWaitDisconnectionTimeout)
	s.handler.SendEmptyMessageDelayed(msgWaitDisconnectionTimeout, WaitForDisconnectionTimeout)
}

func (s *EmergencyCallDomainSelector) finishWaitingForDisconnection() {
	if !s.waitingForDisconnection {
		return
	}
	s.waitingForDisconnection = false
	s.handler.RemoveMessages(msgWaitDisconnectionTimeout)
	report := s.pendingReport
	s.pendingReport = nil
	if report != nil && !s.destroyed && !s.terminated {
		report()
	}
}

func (s *EmergencyCallDomainSelector) cancelWaitingForDisconnection() {
	s.waitingForDisconnection = false
	s.pendingReport = nil
	s.handler.RemoveMessages(msgWaitDisconnectionTimeout)
}

func (s *EmergencyCallDomainSelector) startCrossStackTimer() {
	if s.crossSim == nil {
		return
	}
	s.crossSim.StartTimer(s, s.attr.CallID, s.attr.Number(), s.isInNormalService(), s.isRoaming(),
		s.deps.Platform.Telephony.ActiveModemCount())
}

func (s *EmergencyCallDomainSelector) isThereOtherSlot() bool {
	return s.crossSim != nil && s.deps.Platform.Telephony.ActiveModemCount() > 1 && s.crossSim.IsThereOtherSlot()
}

func (s *EmergencyCallDomainSelector) terminateForCrossSimRedialing(permanent bool) {
	s.logf("cross-SIM redial permanent=%t", permanent)
	s.deps.Metrics.IncrementCrossSimRedial()
	cause := telephony.CauseEmergencyTempFailure
	if permanent {
		cause = telephony.CauseEmergencyPermFailure
	}
	s.terminate(cause)
}

func (s *EmergencyCallDomainSelector) terminate(cause telephony.DisconnectCause) {
	s.cancelScan()
	s.cancelWaitingForDisconnection()
	s.handler.RemoveMessages(msgNetworkScanTimeout)
	s.handler.RemoveMessages(msgMaxCellularTimeout)
	s.handler.RemoveMessages(msgContinuousScan)
	if s.crossSim != nil {
		s.crossSim.StopTimer()
	}
	s.terminated = true
	s.domainSelected = false
	s.notifyTerminated(cause)
}

func (s *EmergencyCallDomainSelector) isSimReady() bool {
	return s.deps.Platform.Telephony.SimState(s.slotID) == telephony.SimStateReady
}

func (s *EmergencyCallDomainSelector) isSimAbsent() bool {
	return s.deps.Platform.Telephony.SimState(s.slotID) == telephony.SimStateAbsent
}

func (s *EmergencyCallDomainSelector) currentServiceState() *telephony.ServiceState {
	if s.serviceState != nil {
		return s.serviceState
	}
	return s.deps.Platform.Telephony.ServiceState(s.slotID)
}

func (s *EmergencyCallDomainSelector) isInNormalService() bool {
	return s.currentServiceState().InNormalService()
}

func (s *EmergencyCallDomainSelector) isRoaming() bool {
	if ss := s.currentServiceState(); ss != nil {
		return ss.VoiceRegState == telephony.RegStateRoaming || ss.DataRegState == telephony.RegStateRoaming
	}
	return s.lastRegResult != nil && s.lastRegResult.RegState == telephony.RegStateRoaming
}

func (s *EmergencyCallDomainSelector) countryIso() string {
	if iso := s.deps.Platform.Telephony.NetworkCountryIso(s.slotID); iso != "" {
		return iso
	}
	if s.lastRegResult != nil {
		return s.lastRegResult.CountryIso
	}
	return ""
}

func (s *EmergencyCallDomainSelector) otherSlotHasNormalService() bool {
	if s.isInNormalService() {
		return false
	}
	tel := s.deps.Platform.Telephony
	number := s.attr.Number()
	for i := 0; i < tel.ActiveModemCount(); i++ {
		if i == s.slotID || tel.SimState(i) != telephony.SimStateReady {
			continue
		}
		if tel.ServiceState(i).InNormalService() && tel.IsEmergencyNumber(i, number) {
			return true
		}
	}
	return false
}

func (s *EmergencyCallDomainSelector) settingEnabled(query func(int) (bool, error), what string) bool {
	v, err := query(s.subID)
	if err != nil {
		s.logf("%s query failed: %v", what, err)
		return false
	}
	return v
}

func (s *EmergencyCallDomainSelector) isVolteEnabled() bool {
	if !telephony.IsValidSubID(s.subID) {
		return true
	}
	return s.settingEnabled(s.deps.Platform.Ims.IsAdvancedCallingSettingEnabled, "advanced calling")
}

// Snapshot is a read-only view of the selector for diagnostics.
type Snapshot struct {
	SlotID          int    `json:"slot_id"`
	SubID           int    `json:"sub_id"`
	CallID          string `json:"call_id"`
	Started         bool   `json:"started"`
	DomainSelected  bool   `json:"domain_selected"`
	LastTransport   string `json:"last_transport"`
	LastNetworkType string `json:"last_network_type"`
	ScanRequested   bool   `json:"scan_requested"`
	VoWifiTrials    int    `json:"vowifi_trials"`
	Terminated      bool   `json:"terminated"`
}

func (s *EmergencyCallDomainSelector) Snapshot() Snapshot {
	return Snapshot{
		SlotID:          s.slotID,
		SubID:           s.subID,
		CallID:          s.attr.CallID,
		Started:         s.started,
		DomainSelected:  s.domainSelected,
		LastTransport:   s.lastTransport.String(),
		LastNetworkType: s.lastNetworkType.String(),
		ScanRequested:   s.scanRequested,
		VoWifiTrials:    s.voWifiTrials,
		Terminated:      s.terminated,
	}
}
