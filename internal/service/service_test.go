package service

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/dense-identity/domainselection/internal/looper"
	"github.com/dense-identity/domainselection/internal/metrics"
	"github.com/dense-identity/domainselection/internal/platform"
	"github.com/dense-identity/domainselection/internal/prefstore"
	"github.com/dense-identity/domainselection/internal/selector"
	"github.com/dense-identity/domainselection/internal/telephony"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var quiet = log.New(io.Discard, "", 0)

type recorder struct {
	created    telephony.DomainSelector
	terminated []telephony.DisconnectCause
	domains    []telephony.Domain
	wlan       int
}

func (r *recorder) OnCreated(s telephony.DomainSelector) { r.created = s }
func (r *recorder) OnWlanSelected(bool)                  { r.wlan++ }
func (r *recorder) OnWwanSelected(consumer func(telephony.WwanSelectorCallback)) {
	consumer(r)
}
func (r *recorder) OnSelectionTerminated(c telephony.DisconnectCause) {
	r.terminated = append(r.terminated, c)
}
func (r *recorder) OnRequestEmergencyNetworkScan([]telephony.AccessNetworkType, telephony.ScanType, bool,
	*telephony.CancellationSignal, func(telephony.EmergencyRegistrationResult)) {
}
func (r *recorder) OnDomainSelected(d telephony.Domain, _ bool) { r.domains = append(r.domains, d) }
func (r *recorder) OnCancel()                                   {}

type ServiceSuite struct {
	suite.Suite
	looper  *looper.Looper
	bridge  *platform.Bridge
	store   *prefstore.Memory
	metrics *metrics.Metrics
	svc     *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.looper = looper.New("test", clockwork.NewFakeClock())
	s.bridge = platform.NewBridge(2, nil, quiet)
	s.Require().NoError(s.bridge.SetSim(0, 1, telephony.SimStateReady))
	s.bridge.SetImsFeatureAvailable(1, true, 0)
	s.store = prefstore.NewMemory()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.svc = New(context.Background(), s.bridge.Platform(telephony.ResourceConfig{}), s.looper, s.store, s.metrics, quiet)
	s.looper.Flush()
}

func (s *ServiceSuite) TearDownTest() {
	s.svc.Destroy()
}

func attrs(slotID int, t telephony.SelectorType, emergency bool) telephony.SelectionAttributes {
	return telephony.SelectionAttributes{
		SlotID:       slotID,
		SubID:        1,
		SelectorType: t,
		IsEmergency:  emergency,
		CallID:       "c1",
		Address:      "tel:911",
	}
}

func (s *ServiceSuite) TestTrackersStartedPerSlot() {
	s.Equal(1, s.bridge.ImsCallbackCount(1))
	snap, ok := s.svc.ImsSnapshot(0)
	s.Require().True(ok)
	s.Equal(1, snap.SubID)
	snap, ok = s.svc.ImsSnapshot(1)
	s.Require().True(ok)
	s.Equal(telephony.InvalidSubID, snap.SubID)
	_, ok = s.svc.ImsSnapshot(5)
	s.False(ok)
}

func (s *ServiceSuite) TestInvalidSlotIsRejected() {
	rec := &recorder{}
	s.Nil(s.svc.OnDomainSelection(attrs(-1, telephony.SelectorTypeSms, false), rec))
	s.Equal([]telephony.DisconnectCause{telephony.CauseErrorUnspecified}, rec.terminated)
	s.Zero(s.svc.ActiveSelectors())
}

func (s *ServiceSuite) TestNormalCallingIsRejected() {
	rec := &recorder{}
	s.Nil(s.svc.OnDomainSelection(attrs(0, telephony.SelectorTypeCalling, false), rec))
	s.Equal([]telephony.DisconnectCause{telephony.CauseErrorUnspecified}, rec.terminated)
	s.Zero(s.svc.ActiveSelectors())
}

func (s *ServiceSuite) TestFactoryBuildsSelectorPerKind() {
	sms := s.svc.OnDomainSelection(attrs(0, telephony.SelectorTypeSms, false), &recorder{})
	esms := s.svc.OnDomainSelection(attrs(0, telephony.SelectorTypeSms, true), &recorder{})
	call := s.svc.OnDomainSelection(attrs(0, telephony.SelectorTypeCalling, true), &recorder{})

	s.IsType(&selector.SmsDomainSelector{}, sms)
	s.IsType(&selector.EmergencySmsDomainSelector{}, esms)
	s.IsType(&selector.EmergencyCallDomainSelector{}, call)
	s.Equal(3, s.svc.ActiveSelectors())
	s.Equal(2.0, testutil.ToFloat64(s.metrics.Selections.WithLabelValues("SMS", "true"))+
		testutil.ToFloat64(s.metrics.Selections.WithLabelValues("CALLING", "true")))
}

func (s *ServiceSuite) TestNewSelectionReplacesStaleOne() {
	first := s.svc.OnDomainSelection(attrs(0, telephony.SelectorTypeCalling, true), &recorder{})
	s.Equal(1, s.bridge.HeldWakeLocks())

	second := s.svc.OnDomainSelection(attrs(0, telephony.SelectorTypeCalling, true), &recorder{})
	s.True(first.IsDestroyed())
	s.False(second.IsDestroyed())
	s.Same(second, s.svc.Selector(0, telephony.SelectorTypeCalling, true))
	s.Equal(1, s.svc.ActiveSelectors())
	s.Equal(1, s.bridge.HeldWakeLocks())
}

func (s *ServiceSuite) TestDestroyedSelectorLeavesContainer() {
	rec := &recorder{}
	sel := s.svc.OnDomainSelection(attrs(0, telephony.SelectorTypeCalling, true), rec)
	s.Same(sel, rec.created)

	sel.FinishSelection()
	s.looper.Flush()
	s.Zero(s.svc.ActiveSelectors())
	s.Nil(s.svc.Selector(0, telephony.SelectorTypeCalling, true))
	s.Zero(s.bridge.HeldWakeLocks())
}

func (s *ServiceSuite) TestSmsSelectionCompletes() {
	rec := &recorder{}
	s.svc.OnDomainSelection(attrs(0, telephony.SelectorTypeSms, false), rec)
	s.looper.Flush()
	s.Equal([]telephony.Domain{telephony.DomainCS}, rec.domains)
}

func (s *ServiceSuite) TestTrackerCreatedForNewSlot() {
	rec := &recorder{}
	s.NotNil(s.svc.OnDomainSelection(attrs(3, telephony.SelectorTypeSms, false), rec))
	_, ok := s.svc.ImsSnapshot(3)
	s.True(ok)
}

func (s *ServiceSuite) TestSubscriptionsRestartTrackers() {
	s.Require().NoError(s.bridge.SetSim(1, 7, telephony.SimStateReady))
	s.bridge.SetImsFeatureAvailable(7, true, 0)
	s.bridge.PublishSubscriptions()
	s.looper.Flush()

	snap, _ := s.svc.ImsSnapshot(1)
	s.Equal(7, snap.SubID)
	s.Equal(1, s.bridge.ImsCallbackCount(7))
	s.Equal(1, s.bridge.ImsCallbackCount(1), "unchanged subscription keeps its callback")
}

func (s *ServiceSuite) TestServiceStateAndBarringRelayed() {
	ss := &telephony.ServiceState{VoiceRegState: telephony.RegStateHome}
	info := &telephony.BarringInfo{}
	s.svc.OnServiceStateUpdated(0, 1, ss)
	s.svc.OnBarringInfoUpdated(0, 1, info)
	s.Same(ss, s.svc.ImsStateTracker(0).ServiceState())
	s.Same(info, s.svc.ImsStateTracker(0).BarringInfo())

	s.NotPanics(func() { s.svc.OnServiceStateUpdated(-1, 1, ss) })
}

func (s *ServiceSuite) TestCarrierConfigChangePersistsVoNr() {
	cfg := telephony.DefaultCarrierConfig()
	cfg.VonrEnabled = true
	cfg.EmergencyVonrSupported = true
	s.bridge.SetCarrierConfig(1, cfg)

	s.svc.OnCarrierConfigChanged(0, 1)
	s.Eventually(func() bool {
		v, ok, err := s.store.GetBool(context.Background(), "vonr_emergency_supported_0")
		return err == nil && ok && v
	}, time.Second, 5*time.Millisecond)
}

func (s *ServiceSuite) TestModemCountGrowth() {
	s.bridge.SetModemCount(3)
	s.svc.OnModemCountChanged(3)
	_, ok := s.svc.ImsSnapshot(2)
	s.True(ok)
}

func (s *ServiceSuite) TestDestroyTearsDownSelectors() {
	call := s.svc.OnDomainSelection(attrs(0, telephony.SelectorTypeCalling, true), &recorder{})
	sms := s.svc.OnDomainSelection(attrs(0, telephony.SelectorTypeSms, false), &recorder{})

	s.svc.Destroy()
	s.True(call.IsDestroyed())
	s.True(sms.IsDestroyed())
	s.Zero(s.bridge.HeldWakeLocks())
	s.Zero(s.bridge.ImsCallbackCount(1))

	rec := &recorder{}
	s.Nil(s.svc.OnDomainSelection(attrs(0, telephony.SelectorTypeSms, false), rec))
	s.Equal([]telephony.DisconnectCause{telephony.CauseErrorUnspecified}, rec.terminated)
}

type stalledStore struct{ *prefstore.Memory }

func (stalledStore) SetBool(ctx context.Context, _ string, _ bool) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestStalledStoreKeepsLooperResponsive(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l := looper.New("test", clockwork.NewRealClock())
	b := platform.NewBridge(1, nil, quiet)
	cfg := telephony.DefaultCarrierConfig()
	cfg.VonrEnabled = true
	cfg.EmergencyVonrSupported = true
	b.SetCarrierConfig(1, cfg)
	svc := New(ctx, b.Platform(telephony.ResourceConfig{}), l, stalledStore{prefstore.NewMemory()},
		metrics.New(prometheus.NewRegistry()), quiet)
	go func() { _ = l.Loop(ctx) }()

	require.True(t, svc.Post(func() { svc.OnCarrierConfigChanged(0, 1) }))
	waitCtx, waitCancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer waitCancel()
	require.NoError(t, svc.Do(waitCtx, func() {}))

	var supported bool
	require.NoError(t, svc.Do(waitCtx, func() { supported = svc.carrierHelper.IsVoNrEmergencySupported(0) }))
	assert.True(t, supported)
	require.NoError(t, svc.Do(waitCtx, svc.Destroy))
}
