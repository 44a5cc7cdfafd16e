package selector

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/dense-identity/domainselection/internal/carrierhelper"
	"github.com/dense-identity/domainselection/internal/crosssim"
	"github.com/dense-identity/domainselection/internal/datastate"
	"github.com/dense-identity/domainselection/internal/ecbm"
	"github.com/dense-identity/domainselection/internal/imsstate"
	"github.com/dense-identity/domainselection/internal/looper"
	"github.com/dense-identity/domainselection/internal/platform"
	"github.com/dense-identity/domainselection/internal/prefstore"
	"github.com/dense-identity/domainselection/internal/telephony"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
)

const (
	slot0 = 0
	sub0  = 1
	sub1  = 2
)

var quiet = log.New(io.Discard, "", 0)

type EmergencyCallSuite struct {
	suite.Suite
	clock     *clockwork.FakeClock
	looper    *looper.Looper
	bridge    *platform.Bridge
	resources telephony.ResourceConfig
	tracker   *imsstate.Tracker
	deps      Deps
	cfg       *telephony.CarrierConfig
	transport *fakeTransport
	destroyed *destroyRecorder
	sel       *EmergencyCallDomainSelector
}

func TestEmergencyCallSuite(t *testing.T) {
	suite.Run(t, new(EmergencyCallSuite))
}

func (s *EmergencyCallSuite) SetupTest() {
	s.clock = clockwork.NewFakeClock()
	s.looper = looper.New("test", s.clock)
	s.bridge = platform.NewBridge(2, nil, quiet)
	s.resources = telephony.ResourceConfig{}
	s.cfg = telephony.DefaultCarrierConfig()
	s.transport = newFakeTransport()
	s.destroyed = &destroyRecorder{}

	s.Require().NoError(s.bridge.SetSim(0, sub0, telephony.SimStateReady))
	s.Require().NoError(s.bridge.SetSim(1, sub1, telephony.SimStateReady))
	s.bridge.SetEmergencyNumbers(0, []string{"911", "112"}, []string{"922"})
	s.bridge.SetEmergencyNumbers(1, []string{"911", "112"}, nil)
	s.bridge.SetImsFeatureAvailable(sub0, true, 0)
	s.bridge.SetImsSettings(sub0, true, true, true)
}

// build wires every collaborator the way the service does.
func (s *EmergencyCallSuite) build() {
	s.bridge.SetCarrierConfig(sub0, s.cfg)
	p := s.bridge.Platform(s.resources)
	s.tracker = imsstate.New(s.looper, slot0, p.Ims, quiet)
	s.deps = Deps{
		Platform:      p,
		Looper:        s.looper,
		CrossSim:      crosssim.New(s.looper, p, quiet),
		DataState:     datastate.New(s.looper, p.Telephony, quiet),
		CallbackMode:  ecbm.New(s.looper, p.Telephony, quiet),
		CarrierHelper: carrierhelper.New(context.Background(), p, prefstore.NewMemory(), 2, quiet),
		Logger:        quiet,
	}
	s.tracker.Start(sub0)
	s.tracker.UpdateBarringInfo(&telephony.BarringInfo{})
	s.looper.Flush()
	s.sel = NewEmergencyCall(s.deps, s.tracker, slot0, sub0, s.destroyed)
}

func (s *EmergencyCallSuite) imsVoiceOverLte() {
	s.bridge.SetImsRegistration(sub0, true, telephony.ImsRegistrationAttributes{Tech: telephony.ImsRegTechLTE})
	s.bridge.SetMmTelCapabilities(sub0, telephony.CapabilityVoice)
}

func (s *EmergencyCallSuite) attrs(number string, reg *telephony.EmergencyRegistrationResult) telephony.SelectionAttributes {
	return telephony.SelectionAttributes{
		SlotID:             slot0,
		SubID:              sub0,
		SelectorType:       telephony.SelectorTypeCalling,
		IsEmergency:        true,
		CallID:             "call-1",
		Address:            "tel:" + number,
		RegistrationResult: reg,
	}
}

func (s *EmergencyCallSuite) start(reg *telephony.EmergencyRegistrationResult) {
	s.build()
	s.sel.SelectDomain(s.attrs("911", reg), s.transport)
	s.looper.Flush()
}

func (s *EmergencyCallSuite) advance(d time.Duration) {
	s.clock.Advance(d)
	s.looper.Flush()
}

func (s *EmergencyCallSuite) reselect(cause telephony.DisconnectCause, psCause *telephony.ImsReasonInfo) {
	attr := s.attrs("911", nil)
	attr.CsDisconnectCause = cause
	attr.PsDisconnectCause = psCause
	s.sel.ReselectDomain(attr)
	s.looper.Flush()
}

func lteBothInService() *telephony.EmergencyRegistrationResult {
	return &telephony.EmergencyRegistrationResult{
		AccessNetwork:        telephony.EUTRAN,
		RegState:             telephony.RegStateHome,
		Domain:               telephony.DomainCSPS,
		IsVopsSupported:      true,
		IsEmcBearerSupported: true,
		CountryIso:           "us",
	}
}

func ltePsOnly() *telephony.EmergencyRegistrationResult {
	r := lteBothInService()
	r.Domain = telephony.DomainPS
	return r
}

func (s *EmergencyCallSuite) TestBothInServicePrefersPs() {
	s.imsVoiceOverLte()
	s.start(lteBothInService())

	s.Same(s.sel, s.transport.created)
	s.Require().Len(s.transport.wwan.domains, 1)
	s.Equal(domainChoice{telephony.DomainPS, true}, s.transport.wwan.domains[0])
	s.Empty(s.transport.wwan.scans)
}

func (s *EmergencyCallSuite) TestBothInServiceVoiceCallOnCsPicksCs() {
	s.bridge.SetVoiceCallOnCs(slot0, true)
	s.start(lteBothInService())

	s.Require().Len(s.transport.wwan.domains, 1)
	s.Equal(telephony.DomainCS, s.transport.wwan.domains[0].domain)
}

func (s *EmergencyCallSuite) TestWaitsForBarringInfo() {
	s.bridge.SetCarrierConfig(sub0, s.cfg)
	p := s.bridge.Platform(s.resources)
	s.tracker = imsstate.New(s.looper, slot0, p.Ims, quiet)
	s.deps = Deps{Platform: p, Looper: s.looper, Logger: quiet}
	s.tracker.Start(sub0)
	s.looper.Flush()
	s.sel = NewEmergencyCall(s.deps, s.tracker, slot0, sub0, nil)

	s.sel.SelectDomain(s.attrs("911", lteBothInService()), s.transport)
	s.looper.Flush()
	s.Zero(s.transport.wwanRequests)

	s.tracker.UpdateBarringInfo(&telephony.BarringInfo{})
	s.looper.Flush()
	s.Equal(1, s.transport.wwanRequests)
	s.Len(s.transport.wwan.domains, 1)
}

func (s *EmergencyCallSuite) TestTestNumberWithImsVoiceUsesLte() {
	s.imsVoiceOverLte()
	s.build()
	s.sel.SelectDomain(s.attrs("922", nil), s.transport)
	s.looper.Flush()

	s.Empty(s.transport.wwan.scans)
	s.Require().Len(s.transport.wwan.domains, 1)
	s.Equal(telephony.DomainPS, s.transport.wwan.domains[0].domain)
}

func (s *EmergencyCallSuite) TestTestNumberWithoutImsUsesUtran() {
	s.build()
	s.sel.SelectDomain(s.attrs("922", nil), s.transport)
	s.looper.Flush()

	s.Empty(s.transport.wwan.scans)
	s.Require().Len(s.transport.wwan.domains, 1)
	s.Equal(telephony.DomainCS, s.transport.wwan.domains[0].domain)
}

func (s *EmergencyCallSuite) TestPsOnlyRequiringImsRegistrationScansCsFirst() {
	s.cfg.EmergencyRequiresImsRegistration = true
	s.start(ltePsOnly())

	s.Empty(s.transport.wwan.domains)
	s.Require().Len(s.transport.wwan.scans, 1)
	scan := s.transport.wwan.lastScan()
	s.Equal([]telephony.AccessNetworkType{telephony.UTRAN, telephony.GERAN, telephony.EUTRAN}, scan.networks)
	s.True(s.sel.handler.HasMessages(msgNetworkScanTimeout), "VoWiFi timer runs for the initial scan")
}

func (s *EmergencyCallSuite) TestPsOnlyWithImsVoiceSelectsPs() {
	s.cfg.EmergencyRequiresImsRegistration = true
	s.imsVoiceOverLte()
	s.start(ltePsOnly())

	s.Require().Len(s.transport.wwan.domains, 1)
	s.Equal(telephony.DomainPS, s.transport.wwan.domains[0].domain)
}

func (s *EmergencyCallSuite) TestUnknownResultEscalatesOnce() {
	s.cfg.EmergencyNetworkScanType = telephony.ScanTypeFullServiceFollowedByLimitedService
	s.start(nil)

	wwan := s.transport.wwan
	s.Require().Len(wwan.scans, 1)
	s.Equal(telephony.ScanTypeFullServiceFollowedByLimitedService, wwan.scans[0].scanType)

	wwan.scans[0].result(telephony.EmergencyRegistrationResult{})
	s.looper.Flush()
	s.Require().Len(wwan.scans, 2)
	s.Equal(telephony.ScanTypeLimitedService, wwan.scans[1].scanType)

	wwan.scans[1].result(telephony.EmergencyRegistrationResult{})
	s.looper.Flush()
	s.Len(wwan.scans, 2, "continuous scan waits")

	s.advance(ContinuousScanDelay)
	s.Require().Len(wwan.scans, 3)
	s.Equal(telephony.ScanTypeLimitedService, wwan.scans[2].scanType)

	wwan.scans[2].result(telephony.EmergencyRegistrationResult{})
	s.looper.Flush()
	s.advance(ContinuousScanDelay)
	s.Require().Len(wwan.scans, 4)
	s.Equal(telephony.ScanTypeLimitedService, wwan.scans[3].scanType)
	s.False(s.sel.handler.HasMessages(msgNetworkScanTimeout), "rescans do not restart the VoWiFi timer")
}

func (s *EmergencyCallSuite) TestScanResultSelectsPs() {
	s.start(nil)
	wwan := s.transport.wwan
	s.Require().Len(wwan.scans, 1)

	wwan.scans[0].result(telephony.EmergencyRegistrationResult{
		AccessNetwork:        telephony.EUTRAN,
		RegState:             telephony.RegStateUnknown,
		Domain:               telephony.DomainPS,
		IsEmcBearerSupported: true,
	})
	s.looper.Flush()
	s.Require().Len(wwan.domains, 1)
	s.Equal(telephony.DomainPS, wwan.domains[0].domain)
	s.False(s.sel.handler.HasMessages(msgNetworkScanTimeout))
}

func (s *EmergencyCallSuite) TestStaleScanResultIgnored() {
	s.start(nil)
	wwan := s.transport.wwan
	stale := wwan.scans[0]
	s.sel.cancelScan()

	stale.result(telephony.EmergencyRegistrationResult{AccessNetwork: telephony.UTRAN, Domain: telephony.DomainCS})
	s.looper.Flush()
	s.Empty(wwan.domains)
	s.True(stale.signal.IsCanceled())
}

func (s *EmergencyCallSuite) TestScanTimerMovesToWifi() {
	s.start(nil)
	wwan := s.transport.wwan
	s.Require().Len(wwan.scans, 1)
	s.True(s.sel.handler.HasMessages(msgNetworkScanTimeout))

	s.bridge.SetWifiAvailable(true)
	s.looper.Flush()
	s.Empty(s.transport.wlan, "scan timer still running")

	s.advance(time.Duration(s.cfg.EmergencyScanTimerSec) * time.Second)
	s.Equal([]bool{true}, s.transport.wlan)
	s.True(wwan.scans[0].signal.IsCanceled())
	s.Empty(wwan.domains)
}

func (s *EmergencyCallSuite) TestWifiAfterMaxCellularTimer() {
	s.cfg.EmergencyScanTimerSec = 0
	s.cfg.MaximumCellularSearchTimerSec = 20
	s.start(nil)
	wwan := s.transport.wwan
	s.Require().Len(wwan.scans, 1)
	s.Equal(1, s.bridge.WifiCallbackCount())

	s.advance(20 * time.Second)
	s.Empty(s.transport.wlan, "no Wi-Fi yet")

	s.bridge.SetWifiAvailable(true)
	s.looper.Flush()
	s.Equal([]bool{true}, s.transport.wlan)
	s.True(wwan.scans[0].signal.IsCanceled())
}

func (s *EmergencyCallSuite) TestWifiRequiresSettingWhenConfigured() {
	s.cfg.EmergencyScanTimerSec = 0
	s.cfg.MaximumCellularSearchTimerSec = 20
	s.cfg.EmergencyVowifiRequiresCondition = telephony.VoWifiRequiresSettingEnabled
	s.bridge.SetImsSettings(sub0, true, false, true)
	s.start(nil)

	s.advance(20 * time.Second)
	s.bridge.SetWifiAvailable(true)
	s.looper.Flush()
	s.Empty(s.transport.wlan)
}

func (s *EmergencyCallSuite) TestWifiTrialsAreBounded() {
	s.cfg.EmergencyScanTimerSec = 0
	s.cfg.MaximumCellularSearchTimerSec = 20
	s.start(nil)
	s.advance(20 * time.Second)
	s.bridge.SetWifiAvailable(true)
	s.looper.Flush()
	s.Require().Len(s.transport.wlan, 1)

	// The Wi-Fi dial failed: back to cellular, and no second Wi-Fi attempt.
	s.reselect(telephony.CauseErrorUnspecified, nil)
	wwan := s.transport.wwan
	s.Require().Len(wwan.scans, 2)
	s.True(wwan.scans[1].reset)

	wwan.scans[1].result(telephony.EmergencyRegistrationResult{})
	s.looper.Flush()
	s.Len(s.transport.wlan, 1)
}

func (s *EmergencyCallSuite) TestPermanentFailureRedialsOnOtherSlot() {
	s.imsVoiceOverLte()
	s.start(lteBothInService())
	s.Require().Len(s.transport.wwan.domains, 1)

	s.reselect(telephony.CauseEmergencyPermFailure, nil)
	s.Equal([]telephony.DisconnectCause{telephony.CauseEmergencyPermFailure}, s.transport.terminated)
	s.Equal([]int{slot0}, s.deps.CrossSim.Rejected())
}

func (s *EmergencyCallSuite) TestPermanentFailureOnSingleSimTriesCs() {
	s.bridge.SetModemCount(1)
	s.imsVoiceOverLte()
	s.start(lteBothInService())

	s.reselect(telephony.CauseEmergencyPermFailure, nil)
	s.Empty(s.transport.terminated)
	s.Require().Len(s.transport.wwan.domains, 2)
	s.Equal(telephony.DomainCS, s.transport.wwan.domains[1].domain)
}

func (s *EmergencyCallSuite) TestNonRetryableImsReasonTerminates() {
	s.bridge.SetModemCount(1)
	s.cfg.ImsReasonCodesToRetryEmergency = []telephony.ImsReasonCode{telephony.ImsReasonLocalNotRegistered}
	s.imsVoiceOverLte()
	s.start(lteBothInService())

	s.reselect(telephony.CauseErrorUnspecified, &telephony.ImsReasonInfo{Code: telephony.ImsReasonSipAlternateEmergencyCall})
	s.Equal([]telephony.DisconnectCause{telephony.CauseNotValid}, s.transport.terminated)
}

func (s *EmergencyCallSuite) TestCrossStackTimerTerminatesBeforeSelection() {
	s.start(nil)
	s.Require().Len(s.transport.wwan.scans, 1)

	s.advance(time.Duration(s.cfg.CrossStackRedialTimerSec) * time.Second)
	s.Equal([]telephony.DisconnectCause{telephony.CauseEmergencyTempFailure}, s.transport.terminated)
	s.True(s.transport.wwan.scans[0].signal.IsCanceled())
}

func (s *EmergencyCallSuite) TestCrossStackTimerAfterSelectionWaitsForFailure() {
	s.imsVoiceOverLte()
	s.start(lteBothInService())
	s.sel.NotifyCrossStackTimerExpired()
	s.Empty(s.transport.terminated)

	s.reselect(telephony.CauseErrorUnspecified, nil)
	s.Equal([]telephony.DisconnectCause{telephony.CauseEmergencyTempFailure}, s.transport.terminated)
}

func (s *EmergencyCallSuite) TestBarredCountryTerminates() {
	s.resources.CountriesEmergencyBarred = []string{"US"}
	s.bridge.SetCountryIso(slot0, "us")
	s.start(lteBothInService())
	s.Equal([]telephony.DisconnectCause{telephony.CauseEmergencyCallBarred}, s.transport.terminated)
}

func (s *EmergencyCallSuite) TestSimRequiredWithoutOtherSlot() {
	s.resources.CountriesRequireSim = []string{"in"}
	s.bridge.SetCountryIso(slot0, "in")
	s.Require().NoError(s.bridge.SetSim(0, sub0, telephony.SimStatePinRequired))
	s.Require().NoError(s.bridge.SetSim(1, sub1, telephony.SimStateAbsent))
	s.start(lteBothInService())
	s.Equal([]telephony.DisconnectCause{telephony.CauseIccError}, s.transport.terminated)
}

func (s *EmergencyCallSuite) TestSimRequiredWithOtherSlot() {
	s.resources.CountriesRequireSim = []string{"in"}
	s.bridge.SetCountryIso(slot0, "in")
	s.Require().NoError(s.bridge.SetSim(0, sub0, telephony.SimStatePinRequired))
	s.start(lteBothInService())
	s.Equal([]telephony.DisconnectCause{telephony.CauseEmergencyPermFailure}, s.transport.terminated)
}

func (s *EmergencyCallSuite) TestNormalServiceSlotPreferred() {
	s.resources.CountriesPreferNormalServiceSlot = []string{"us"}
	s.bridge.SetCountryIso(slot0, "us")
	s.bridge.SetServiceState(1, &telephony.ServiceState{
		VoiceRegState: telephony.RegStateHome,
		DataRegState:  telephony.RegStateHome,
	})
	s.start(lteBothInService())

	s.Equal([]telephony.DisconnectCause{telephony.CauseEmergencyTempFailure}, s.transport.terminated)
	s.Zero(s.transport.wwanRequests)
}

func (s *EmergencyCallSuite) TestNormalServiceSlotIgnoredWhenOtherSlotOutOfService() {
	s.resources.CountriesPreferNormalServiceSlot = []string{"us"}
	s.bridge.SetCountryIso(slot0, "us")
	s.imsVoiceOverLte()
	s.start(lteBothInService())

	s.Empty(s.transport.terminated)
	s.Require().Len(s.transport.wwan.domains, 1)
	s.Equal(telephony.DomainPS, s.transport.wwan.domains[0].domain)
}

func (s *EmergencyCallSuite) TestExitedAirplaneModeScans() {
	s.build()
	attr := s.attrs("911", lteBothInService())
	attr.IsExitedFromAirplaneMode = true
	s.sel.SelectDomain(attr, s.transport)
	s.looper.Flush()

	s.Empty(s.transport.wwan.domains)
	s.Require().Len(s.transport.wwan.scans, 1)
	s.Equal(telephony.EUTRAN, s.transport.wwan.scans[0].networks[0])
}

func (s *EmergencyCallSuite) TestWifiPreferredWhenRegisteredOverWlan() {
	s.cfg.EmergencyDomainPreference = []telephony.DomainPreference{
		telephony.DomainPreferencePSNon3GPP, telephony.DomainPreferencePS3GPP, telephony.DomainPreferenceCS,
	}
	s.bridge.SetImsRegistration(sub0, true, telephony.ImsRegistrationAttributes{Tech: telephony.ImsRegTechIWLAN})
	s.bridge.SetMmTelCapabilities(sub0, telephony.CapabilityVoice)
	s.start(lteBothInService())

	s.Len(s.transport.wlan, 1)
	s.Zero(s.transport.wwanRequests)
}

func (s *EmergencyCallSuite) TestCallbackModeOnWlanKeepsWifi() {
	s.bridge.SetImsRegistration(sub0, true, telephony.ImsRegistrationAttributes{Tech: telephony.ImsRegTechIWLAN})
	s.bridge.SetMmTelCapabilities(sub0, telephony.CapabilityVoice)
	s.build()
	s.bridge.SetCallbackMode(slot0, true, telephony.TransportWLAN)
	s.looper.Flush()

	s.sel.SelectDomain(s.attrs("911", lteBothInService()), s.transport)
	s.looper.Flush()
	s.Len(s.transport.wlan, 1)
}

func (s *EmergencyCallSuite) TestCallbackModeOnWwanPrefersPs() {
	// Without callback mode an ongoing CS voice call moves the call to CS.
	s.bridge.SetVoiceCallOnCs(slot0, true)
	s.imsVoiceOverLte()
	s.build()
	s.bridge.SetCallbackMode(slot0, true, telephony.TransportWWAN)
	s.looper.Flush()

	s.sel.SelectDomain(s.attrs("911", lteBothInService()), s.transport)
	s.looper.Flush()
	s.Require().Len(s.transport.wwan.domains, 1)
	s.Equal(domainChoice{telephony.DomainPS, true}, s.transport.wwan.domains[0])
}

func (s *EmergencyCallSuite) TestPsOnlyScanHonoursDomainOrder() {
	reg := ltePsOnly()
	reg.IsEmcBearerSupported = false
	s.start(reg)

	s.Require().Len(s.transport.wwan.scans, 1)
	s.False(s.sel.lastCsPreferred, "PS ranks ahead of CS by default")
	s.Equal([]telephony.AccessNetworkType{telephony.EUTRAN, telephony.UTRAN, telephony.GERAN},
		s.transport.wwan.scans[0].networks)
}

func (s *EmergencyCallSuite) TestPsOnlyScanPrefersCsWhenRankedFirst() {
	s.cfg.EmergencyDomainPreference = []telephony.DomainPreference{
		telephony.DomainPreferenceCS, telephony.DomainPreferencePS3GPP, telephony.DomainPreferencePSNon3GPP,
	}
	reg := ltePsOnly()
	reg.IsEmcBearerSupported = false
	s.start(reg)

	s.Require().Len(s.transport.wwan.scans, 1)
	s.True(s.sel.lastCsPreferred)
	s.Equal(telephony.UTRAN, s.transport.wwan.scans[0].networks[0])
}

func (s *EmergencyCallSuite) TestPsWaitsForWlanPdnDisconnection() {
	s.imsVoiceOverLte()
	s.build()
	s.bridge.SetEmergencyPdn(slot0, telephony.PdnStateConnected, telephony.TransportWLAN)
	s.looper.Flush()

	s.sel.SelectDomain(s.attrs("911", lteBothInService()), s.transport)
	s.looper.Flush()
	s.Empty(s.transport.wwan.domains)

	s.bridge.SetEmergencyPdn(slot0, telephony.PdnStateIdle, telephony.TransportWLAN)
	s.looper.Flush()
	s.Len(s.transport.wwan.domains, 1)
}

func (s *EmergencyCallSuite) TestPdnWaitIsBounded() {
	s.imsVoiceOverLte()
	s.build()
	s.bridge.SetEmergencyPdn(slot0, telephony.PdnStateConnected, telephony.TransportWLAN)
	s.looper.Flush()

	s.sel.SelectDomain(s.attrs("911", lteBothInService()), s.transport)
	s.looper.Flush()
	s.Empty(s.transport.wwan.domains)

	s.advance(WaitForDisconnectionTimeout)
	s.Len(s.transport.wwan.domains, 1)
}

func (s *EmergencyCallSuite) TestVolteDisabledBlocksPs() {
	s.cfg.EmergencyRequiresVolteEnabled = true
	s.bridge.SetImsSettings(sub0, false, false, false)
	s.start(lteBothInService())

	s.Require().Len(s.transport.wwan.domains, 1)
	s.Equal(telephony.DomainCS, s.transport.wwan.domains[0].domain)
}

func (s *EmergencyCallSuite) TestTtyWithoutCarrierSupportBlocksPs() {
	s.cfg.CarrierVolteTtySupported = false
	s.bridge.SetTtyModeEnabled(true)
	s.start(lteBothInService())

	s.Require().Len(s.transport.wwan.domains, 1)
	s.Equal(telephony.DomainCS, s.transport.wwan.domains[0].domain)
}

func (s *EmergencyCallSuite) TestDestroyReleasesEverythingOnce() {
	s.cfg.EmergencyScanTimerSec = 5
	s.start(nil)
	s.Equal(1, s.bridge.HeldWakeLocks())
	s.Equal(1, s.bridge.WifiCallbackCount())
	signal := s.transport.wwan.scans[0].signal

	s.sel.FinishSelection()
	s.looper.Flush()
	s.sel.Destroy()

	s.True(s.sel.IsDestroyed())
	s.Zero(s.bridge.HeldWakeLocks())
	s.Zero(s.bridge.WifiCallbackCount())
	s.True(signal.IsCanceled())
	s.Len(s.destroyed.destroyed, 1)
	s.False(s.deps.CrossSim.IsTimerRunning())
}

func (s *EmergencyCallSuite) TestCancelSelectionCancelsScan() {
	s.start(nil)
	s.sel.CancelSelection()
	s.looper.Flush()
	s.Equal(1, s.transport.wwan.cancels)
	s.True(s.sel.IsDestroyed())
}

func (s *EmergencyCallSuite) TestPreferredNetworksRules() {
	s.cfg.EmergencyOverImsSupportedRats = []telephony.AccessNetworkType{telephony.NGRAN, telephony.EUTRAN}
	s.cfg.EmergencyOverCsSupportedRats = []telephony.AccessNetworkType{telephony.UTRAN, telephony.CDMA2000}
	s.cfg.EmergencyCdmaPreferredNumbers = []string{"112"}
	s.cfg.EmergencyLtePreferredAfterNrFailed = true
	s.build()
	s.sel.cfg = s.cfg
	s.sel.attr = s.attrs("911", nil)

	s.Equal([]telephony.AccessNetworkType{telephony.NGRAN, telephony.EUTRAN, telephony.UTRAN, telephony.CDMA2000},
		s.sel.nextPreferredNetworks(false, false))
	s.Equal([]telephony.AccessNetworkType{telephony.UTRAN, telephony.CDMA2000, telephony.NGRAN, telephony.EUTRAN},
		s.sel.nextPreferredNetworks(true, false))

	s.sel.lastNetworkType = telephony.NGRAN
	s.Equal(telephony.EUTRAN, s.sel.nextPreferredNetworks(false, false)[0])

	s.sel.attr = s.attrs("112", nil)
	s.Equal(telephony.CDMA2000, s.sel.nextPreferredNetworks(false, false)[0])

	s.sel.emergencyBarred = true
	s.Equal([]telephony.AccessNetworkType{telephony.CDMA2000, telephony.UTRAN}, s.sel.nextPreferredNetworks(false, false))
}

func (s *EmergencyCallSuite) TestNrDroppedWithoutSimUnlessCached() {
	s.build()
	cfg := telephony.DefaultCarrierConfig()
	cfg.EmergencyOverImsSupportedRats = []telephony.AccessNetworkType{telephony.NGRAN, telephony.EUTRAN}
	s.sel.cfg = cfg
	s.Require().NoError(s.bridge.SetSim(0, telephony.InvalidSubID, telephony.SimStateAbsent))

	s.NotContains(s.sel.nextPreferredNetworks(false, false), telephony.NGRAN)

	vonr := telephony.DefaultCarrierConfig()
	vonr.VonrEnabled = true
	vonr.EmergencyVonrSupported = true
	s.bridge.SetCarrierConfig(sub0, vonr)
	s.deps.CarrierHelper.OnCarrierConfigChanged(slot0, sub0)
	s.Contains(s.sel.nextPreferredNetworks(false, false), telephony.NGRAN)
}
