package selector

import (
	"testing"

	"github.com/dense-identity/domainselection/internal/telephony"
	"github.com/stretchr/testify/suite"
)

type EmergencySmsSuite struct {
	suite.Suite
	smsFixture
	cfg *telephony.CarrierConfig
}

func TestEmergencySmsSuite(t *testing.T) {
	suite.Run(t, new(EmergencySmsSuite))
}

func (s *EmergencySmsSuite) SetupTest() {
	s.setup(s.Require())
	s.cfg = telephony.DefaultCarrierConfig()
	s.cfg.SupportEmergencySmsOverIms = true
	s.cfg.EmergencySmsRequiresLteInServiceOrLimited = true
}

func (s *EmergencySmsSuite) selectDomain() *EmergencySmsDomainSelector {
	s.bridge.SetCarrierConfig(sub0, s.cfg)
	sel := NewEmergencySms(s.deps, s.tracker, slot0, sub0, nil)
	attr := smsAttrs()
	attr.IsEmergency = true
	sel.SelectDomain(attr, s.transport)
	s.looper.Flush()
	return sel
}

func psRegistration(rat telephony.AccessNetworkType, state telephony.RegistrationState, emc bool) *telephony.ServiceState {
	return &telephony.ServiceState{
		DataRegState: state,
		RegistrationInfos: []telephony.NetworkRegistrationInfo{{
			Domain:               telephony.DomainPS,
			Transport:            telephony.TransportWWAN,
			AccessNetwork:        rat,
			RegState:             state,
			IsEmcBearerSupported: emc,
		}},
	}
}

func (s *EmergencySmsSuite) pushRadioState(ss *telephony.ServiceState, barring *telephony.BarringInfo) {
	s.tracker.UpdateServiceState(ss)
	s.tracker.UpdateBarringInfo(barring)
	s.looper.Flush()
}

func (s *EmergencySmsSuite) TestCarrierWithoutImsSupportUsesCs() {
	s.cfg.SupportEmergencySmsOverIms = false
	s.startTracker()
	sel := s.selectDomain()

	s.Same(sel, s.transport.created)
	s.Equal([]domainChoice{{telephony.DomainCS, false}}, s.transport.wwan.domains)
}

func (s *EmergencySmsSuite) TestWaitsForServiceStateAndBarring() {
	s.selectDomain()
	s.Empty(s.transport.wwan.domains)

	s.tracker.UpdateServiceState(psRegistration(telephony.EUTRAN, telephony.RegStateHome, true))
	s.Empty(s.transport.wwan.domains)

	s.tracker.UpdateBarringInfo(&telephony.BarringInfo{})
	s.Equal([]domainChoice{{telephony.DomainPS, true}}, s.transport.wwan.domains)
}

func (s *EmergencySmsSuite) TestLimitedServiceLteIsEnough() {
	ss := psRegistration(telephony.EUTRAN, telephony.RegStateDenied, true)
	ss.RegistrationInfos[0].EmergencyOnly = true
	s.pushRadioState(ss, &telephony.BarringInfo{})
	s.selectDomain()
	s.Equal([]domainChoice{{telephony.DomainPS, true}}, s.transport.wwan.domains)
}

func (s *EmergencySmsSuite) TestEmergencyBarringForcesCs() {
	s.pushRadioState(psRegistration(telephony.EUTRAN, telephony.RegStateHome, true),
		&telephony.BarringInfo{Barred: map[telephony.BarringServiceType]bool{telephony.BarringServiceEmergency: true}})
	s.selectDomain()
	s.Equal([]domainChoice{{telephony.DomainCS, false}}, s.transport.wwan.domains)
}

func (s *EmergencySmsSuite) TestNoEmergencyBearerForcesCs() {
	s.pushRadioState(psRegistration(telephony.EUTRAN, telephony.RegStateHome, false), &telephony.BarringInfo{})
	s.selectDomain()
	s.Equal([]domainChoice{{telephony.DomainCS, false}}, s.transport.wwan.domains)
}

func (s *EmergencySmsSuite) TestNrNeedsVoNrEmergencySupport() {
	s.pushRadioState(psRegistration(telephony.NGRAN, telephony.RegStateHome, true), &telephony.BarringInfo{})
	s.selectDomain()
	s.Equal([]domainChoice{{telephony.DomainCS, false}}, s.transport.wwan.domains)

	s.cfg.VonrEnabled = true
	s.cfg.EmergencyVonrSupported = true
	s.bridge.SetCarrierConfig(sub0, s.cfg)
	s.deps.CarrierHelper.OnCarrierConfigChanged(slot0, sub0)
	s.transport = newFakeTransport()
	s.selectDomain()
	s.Equal([]domainChoice{{telephony.DomainPS, true}}, s.transport.wwan.domains)
}

func (s *EmergencySmsSuite) TestImsPathWithoutLteRequirement() {
	s.cfg.EmergencySmsRequiresLteInServiceOrLimited = false
	s.bridge.SetImsRegistration(sub0, true, telephony.ImsRegistrationAttributes{Tech: telephony.ImsRegTechLTE})
	s.bridge.SetMmTelCapabilities(sub0, telephony.CapabilitySMS)
	s.startTracker()
	s.selectDomain()
	s.Equal([]domainChoice{{telephony.DomainPS, true}}, s.transport.wwan.domains)
}

func (s *EmergencySmsSuite) TestDestroyReportsOuterSelector() {
	rec := &destroyRecorder{}
	sel := NewEmergencySms(s.deps, s.tracker, slot0, sub0, rec)
	sel.Destroy()
	s.Require().Len(rec.destroyed, 1)
	s.Same(sel, rec.destroyed[0])
}
