package imsstate

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/dense-identity/domainselection/internal/looper"
	"github.com/dense-identity/domainselection/internal/platform"
	"github.com/dense-identity/domainselection/internal/telephony"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testSlot = 0
	testSub  = 1
)

type recordingListener struct {
	available, registration, capabilities int
}

func (r *recordingListener) OnImsMmTelFeatureAvailableChanged() { r.available++ }
func (r *recordingListener) OnImsRegistrationStateChanged()     { r.registration++ }
func (r *recordingListener) OnImsMmTelCapabilitiesChanged()     { r.capabilities++ }

type barringRecorder struct{ got []*telephony.BarringInfo }

func (b *barringRecorder) OnBarringInfoUpdated(info *telephony.BarringInfo) {
	b.got = append(b.got, info)
}

type TrackerSuite struct {
	suite.Suite
	clock   *clockwork.FakeClock
	looper  *looper.Looper
	bridge  *platform.Bridge
	tracker *Tracker
}

func TestTrackerSuite(t *testing.T) {
	suite.Run(t, new(TrackerSuite))
}

func (s *TrackerSuite) SetupTest() {
	s.clock = clockwork.NewFakeClock()
	s.looper = looper.New("test", s.clock)
	s.bridge = platform.NewBridge(2, nil, nil)
	s.tracker = New(s.looper, testSlot, s.bridge, log.New(io.Discard, "", 0))
}

func (s *TrackerSuite) startRegistered(caps telephony.MmTelCapabilities, tech telephony.ImsRegistrationTech) {
	s.bridge.SetImsFeatureAvailable(testSub, true, 0)
	s.bridge.SetImsRegistration(testSub, true, telephony.ImsRegistrationAttributes{Tech: tech})
	s.bridge.SetMmTelCapabilities(testSub, caps)
	s.tracker.Start(testSub)
	s.looper.Flush()
}

func (s *TrackerSuite) TestStartReportsFullState() {
	s.startRegistered(telephony.CapabilityVoice|telephony.CapabilitySMS, telephony.ImsRegTechLTE)

	s.True(s.tracker.IsImsStateReady())
	s.True(s.tracker.IsMmTelFeatureAvailable())
	s.True(s.tracker.IsImsRegistered())
	s.True(s.tracker.IsImsVoiceCapable())
	s.True(s.tracker.IsImsSmsCapable())
	s.False(s.tracker.IsImsVideoCapable())
	s.False(s.tracker.IsImsRegisteredOverWlan())
	s.Equal(telephony.EUTRAN, s.tracker.ImsAccessNetworkType())
}

func (s *TrackerSuite) TestStartTwiceDoesNotRegisterAgain() {
	s.startRegistered(telephony.CapabilityVoice, telephony.ImsRegTechLTE)
	s.Require().Equal(1, s.bridge.ImsCallbackCount(testSub))

	s.tracker.Start(testSub)
	s.looper.Flush()
	s.Equal(1, s.bridge.ImsCallbackCount(testSub))
}

func (s *TrackerSuite) TestStartWithNewSubMovesCallback() {
	s.startRegistered(telephony.CapabilityVoice, telephony.ImsRegTechLTE)
	s.tracker.Start(2)
	s.looper.Flush()

	s.Zero(s.bridge.ImsCallbackCount(testSub))
	s.Equal(1, s.bridge.ImsCallbackCount(2))
	s.False(s.tracker.IsImsRegistered())
}

func (s *TrackerSuite) TestInvalidSubIsUnavailableAndReady() {
	l := &recordingListener{}
	s.tracker.AddImsStateListener(l)
	s.tracker.Start(telephony.InvalidSubID)
	s.looper.Flush()

	s.True(s.tracker.IsImsStateReady())
	s.False(s.tracker.IsMmTelFeatureAvailable())
	s.Equal(1, l.available)
	s.Equal(1, l.registration)
	s.Equal(1, l.capabilities)
}

func (s *TrackerSuite) TestTransientUnavailableWaitsOneSecond() {
	s.startRegistered(telephony.CapabilityVoice, telephony.ImsRegTechLTE)

	s.bridge.SetImsFeatureAvailable(testSub, false, telephony.ImsReasonImsServiceDisconnected)
	s.looper.Flush()
	s.True(s.tracker.IsMmTelFeatureAvailable(), "grace period must hold the old state")

	s.clock.Advance(MmTelFeatureUnavailableWait)
	s.looper.Flush()
	s.False(s.tracker.IsMmTelFeatureAvailable())
	s.False(s.tracker.IsImsRegistered())
}

func (s *TrackerSuite) TestAvailableWithinGracePeriodCancelsDowngrade() {
	s.startRegistered(telephony.CapabilityVoice, telephony.ImsRegTechLTE)

	s.bridge.SetImsFeatureAvailable(testSub, false, telephony.ImsReasonImsServiceNotReady)
	s.looper.Flush()
	s.bridge.SetImsFeatureAvailable(testSub, true, 0)
	s.looper.Flush()

	s.clock.Advance(2 * MmTelFeatureUnavailableWait)
	s.looper.Flush()
	s.True(s.tracker.IsMmTelFeatureAvailable())
}

func (s *TrackerSuite) TestPermanentUnavailableIsImmediate() {
	s.startRegistered(telephony.CapabilityVoice, telephony.ImsRegTechLTE)

	s.bridge.SetImsFeatureAvailable(testSub, false, telephony.ImsReasonSubscriptionInactive)
	s.looper.Flush()
	s.False(s.tracker.IsMmTelFeatureAvailable())
	s.False(s.tracker.IsImsVoiceCapable())
}

func (s *TrackerSuite) TestErrorClearsCallback() {
	s.startRegistered(telephony.CapabilityVoice, telephony.ImsRegTechLTE)

	s.bridge.FailImsStateCallbacks(testSub)
	s.looper.Flush()
	s.False(s.tracker.IsMmTelFeatureAvailable())

	// With the callback gone a restart for the same sub registers again.
	s.tracker.Start(testSub)
	s.looper.Flush()
	s.Equal(1, s.bridge.ImsCallbackCount(testSub))
}

func (s *TrackerSuite) TestRegistrationFailureIsUnavailable() {
	s.bridge.SetImsRegisterError(testSub, errors.New("ims service gone"))
	s.tracker.Start(testSub)
	s.looper.Flush()

	s.True(s.tracker.IsImsStateReady())
	s.False(s.tracker.IsMmTelFeatureAvailable())
}

func (s *TrackerSuite) TestWlanAndCrossSimRegistration() {
	s.startRegistered(telephony.CapabilityVoice, telephony.ImsRegTechIWLAN)
	s.True(s.tracker.IsImsRegisteredOverWlan())
	s.False(s.tracker.IsImsRegisteredOverCrossSim())

	s.bridge.SetImsRegistration(testSub, true, telephony.ImsRegistrationAttributes{Tech: telephony.ImsRegTechCrossSim})
	s.looper.Flush()
	s.True(s.tracker.IsImsRegisteredOverCrossSim())
}

func (s *TrackerSuite) TestLateListenerGetsSyntheticNotification() {
	s.startRegistered(telephony.CapabilityVoice, telephony.ImsRegTechLTE)

	l := &recordingListener{}
	s.tracker.AddImsStateListener(l)
	s.Zero(l.available, "notification is posted, not inline")
	s.looper.Flush()
	s.Equal(1, l.available)
	s.Equal(1, l.registration)
	s.Equal(1, l.capabilities)
}

func (s *TrackerSuite) TestRemovedListenerIsNotNotified() {
	l := &recordingListener{}
	s.tracker.AddImsStateListener(l)
	s.tracker.RemoveImsStateListener(l)
	s.startRegistered(telephony.CapabilityVoice, telephony.ImsRegTechLTE)
	s.Zero(l.registration)
}

func (s *TrackerSuite) TestBarringInfoReplayedToLateListener() {
	info := &telephony.BarringInfo{Barred: map[telephony.BarringServiceType]bool{telephony.BarringServiceEmergency: true}}
	s.tracker.UpdateBarringInfo(info)

	rec := &barringRecorder{}
	s.tracker.AddBarringInfoListener(rec)
	s.looper.Flush()
	s.Require().Len(rec.got, 1)
	s.True(rec.got[0].IsEmergencyBarred())
	s.True(s.tracker.Snapshot().EmergencyBarred)
}

func TestTriStateString(t *testing.T) {
	require.Equal(t, "unknown", stateUnknown.String())
	assert.Equal(t, "true", triOf(true).String())
	assert.Equal(t, "false", triOf(false).String())
}
