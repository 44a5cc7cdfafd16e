package rpc

import (
	"context"
	"errors"
	"io"
	"log"
	"net"
	"testing"
	"time"

	"github.com/dense-identity/domainselection/internal/looper"
	"github.com/dense-identity/domainselection/internal/platform"
	"github.com/dense-identity/domainselection/internal/prefstore"
	"github.com/dense-identity/domainselection/internal/service"
	"github.com/dense-identity/domainselection/internal/telephony"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/dense-identity/domainselection/api/go/domainselection/v1"
)

const testSub = 1

var quiet = log.New(io.Discard, "", 0)

type ServerSuite struct {
	suite.Suite
	ctx      context.Context
	cancel   context.CancelFunc
	loopDone chan struct{}

	bridge *platform.Bridge
	svc    *service.Service
	server *Server
	grpc   *grpc.Server
	client *Client
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	r := s.Require()
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 10*time.Second)

	s.bridge = platform.NewBridge(1, nil, quiet)
	r.NoError(s.bridge.SetSim(0, testSub, telephony.SimStateReady))
	s.bridge.SetEmergencyNumbers(0, []string{"911", "112"}, nil)
	s.bridge.SetImsFeatureAvailable(testSub, true, 0)

	l := looper.New("rpc-test", clockwork.NewRealClock())
	s.svc = service.New(s.ctx, s.bridge.Platform(telephony.ResourceConfig{}), l, prefstore.NewMemory(), nil, quiet)
	s.loopDone = make(chan struct{})
	go func() {
		defer close(s.loopDone)
		_ = l.Loop(s.ctx)
	}()

	lis := bufconn.Listen(1 << 20)
	s.grpc = grpc.NewServer()
	s.server = NewServer(s.svc, s.bridge, quiet)
	pb.RegisterDomainSelectionServer(s.grpc, s.server)
	go func() { _ = s.grpc.Serve(lis) }()

	client, err := NewClient("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}), grpc.WithTransportCredentials(insecure.NewCredentials()))
	r.NoError(err)
	s.client = client
}

func (s *ServerSuite) TearDownTest() {
	_ = s.svc.Do(s.ctx, s.svc.Destroy)
	_ = s.client.Close()
	s.grpc.Stop()
	s.cancel()
	<-s.loopDone
}

func (s *ServerSuite) recv(stream grpc.ServerStreamingClient[pb.SelectionEvent], kind pb.EventKind) *pb.SelectionEvent {
	ev, err := stream.Recv()
	s.Require().NoError(err)
	s.Require().Equal(kind, ev.GetKind())
	s.Require().NotEmpty(ev.GetSelectionId())
	s.Require().NotNil(ev.GetEmittedAt())
	return ev
}

func (s *ServerSuite) activeSelectors() int {
	n := -1
	s.Require().NoError(s.svc.Do(s.ctx, func() { n = s.svc.ActiveSelectors() }))
	return n
}

func requireCode(s *ServerSuite, err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok, "not a status error: %v", err)
	s.Equal(code, st.Code())
}

func selectRequest(attr telephony.SelectionAttributes) *pb.SelectDomainRequest {
	return &pb.SelectDomainRequest{Attributes: AttributesToProto(attr)}
}

func (s *ServerSuite) TestSmsSelectionStreamsDomain() {
	stream, err := s.client.SelectDomain(s.ctx, selectRequest(telephony.SelectionAttributes{
		SlotID:       0,
		SubID:        testSub,
		SelectorType: telephony.SelectorTypeSms,
		Address:      "5551234",
	}))
	s.Require().NoError(err)

	created := s.recv(stream, pb.EventKind_EVENT_KIND_CREATED)
	selected := s.recv(stream, pb.EventKind_EVENT_KIND_WWAN_SELECTED)
	s.Equal(created.GetSelectionId(), selected.GetSelectionId())
	s.Equal(int32(telephony.DomainCS), selected.GetDomain())
	s.Equal(1, s.server.Sessions())

	s.Require().NoError(s.client.FinishSelection(s.ctx, created.GetSelectionId()))
	_, err = stream.Recv()
	s.ErrorIs(err, io.EOF)
	s.Eventually(func() bool { return s.server.Sessions() == 0 }, time.Second, 10*time.Millisecond)

	// The normal SMS selector is reused across requests.
	s.Equal(1, s.activeSelectors())
}

func (s *ServerSuite) TestEmergencyScanRoundTrip() {
	s.Require().NoError(s.client.UpdateBarringInfo(s.ctx, &pb.BarringInfoRequest{SlotId: 0, SubId: testSub}))

	stream, err := s.client.SelectDomain(s.ctx, selectRequest(telephony.SelectionAttributes{
		SlotID:       0,
		SubID:        testSub,
		SelectorType: telephony.SelectorTypeCalling,
		IsEmergency:  true,
		CallID:       "call-1",
		Address:      "tel:911",
	}))
	s.Require().NoError(err)

	created := s.recv(stream, pb.EventKind_EVENT_KIND_CREATED)
	scan := s.recv(stream, pb.EventKind_EVENT_KIND_SCAN_REQUESTED)
	s.NotEmpty(scan.GetScanToken())
	s.NotEmpty(scan.GetNetworks())

	s.Require().NoError(s.client.ReportScanResult(s.ctx, &pb.ScanResultRequest{
		SelectionId: created.GetSelectionId(),
		ScanToken:   scan.GetScanToken(),
		Result: RegistrationResultToProto(telephony.EmergencyRegistrationResult{
			AccessNetwork: telephony.UTRAN,
			RegState:      telephony.RegStateHome,
			Domain:        telephony.DomainCS,
			CountryIso:    "us",
		}),
	}))
	selected := s.recv(stream, pb.EventKind_EVENT_KIND_WWAN_SELECTED)
	s.Equal(int32(telephony.DomainCS), selected.GetDomain())

	// A token is answered once.
	err = s.client.ReportScanResult(s.ctx, &pb.ScanResultRequest{SelectionId: created.GetSelectionId(), ScanToken: scan.GetScanToken()})
	requireCode(s, err, codes.NotFound)

	s.Require().NoError(s.client.FinishSelection(s.ctx, created.GetSelectionId()))
	_, err = stream.Recv()
	s.ErrorIs(err, io.EOF)
	s.Eventually(func() bool { return s.activeSelectors() == 0 }, time.Second, 10*time.Millisecond)
}

func (s *ServerSuite) TestClientCancelTearsDownSelection() {
	s.Require().NoError(s.client.UpdateBarringInfo(s.ctx, &pb.BarringInfoRequest{SlotId: 0, SubId: testSub}))

	ctx, cancel := context.WithCancel(s.ctx)
	stream, err := s.client.SelectDomain(ctx, selectRequest(telephony.SelectionAttributes{
		SlotID:       0,
		SubID:        testSub,
		SelectorType: telephony.SelectorTypeCalling,
		IsEmergency:  true,
		Address:      "tel:112",
	}))
	s.Require().NoError(err)
	s.recv(stream, pb.EventKind_EVENT_KIND_CREATED)
	s.recv(stream, pb.EventKind_EVENT_KIND_SCAN_REQUESTED)
	s.Equal(1, s.activeSelectors())

	cancel()
	s.Eventually(func() bool { return s.activeSelectors() == 0 }, 2*time.Second, 10*time.Millisecond)
	s.Eventually(func() bool { return s.server.Sessions() == 0 }, time.Second, 10*time.Millisecond)
	s.Zero(s.bridge.HeldWakeLocks())
}

func (s *ServerSuite) TestNormalCallIsTerminated() {
	stream, err := s.client.SelectDomain(s.ctx, selectRequest(telephony.SelectionAttributes{
		SlotID:       0,
		SubID:        testSub,
		SelectorType: telephony.SelectorTypeCalling,
		Address:      "tel:5551234",
	}))
	s.Require().NoError(err)

	ev := s.recv(stream, pb.EventKind_EVENT_KIND_TERMINATED)
	s.Equal(int32(telephony.CauseErrorUnspecified), ev.GetCause())
	_, err = stream.Recv()
	s.ErrorIs(err, io.EOF)
}

func (s *ServerSuite) TestSelectWithoutAttributes() {
	stream, err := s.client.SelectDomain(s.ctx, &pb.SelectDomainRequest{})
	s.Require().NoError(err)
	_, err = stream.Recv()
	requireCode(s, err, codes.InvalidArgument)
}

func (s *ServerSuite) TestUnknownSelection() {
	requireCode(s, s.client.FinishSelection(s.ctx, "missing"), codes.NotFound)
	requireCode(s, s.client.CancelSelection(s.ctx, "missing"), codes.NotFound)
	requireCode(s, s.client.ReselectDomain(s.ctx, &pb.ReselectDomainRequest{SelectionId: "missing"}), codes.NotFound)
	err := s.client.ReportScanResult(s.ctx, &pb.ScanResultRequest{SelectionId: "missing", ScanToken: "t"})
	requireCode(s, err, codes.NotFound)
}

func (s *ServerSuite) TestUpdatesValidateArguments() {
	requireCode(s, s.client.UpdateServiceState(s.ctx, &pb.ServiceStateRequest{SlotId: -1}), codes.InvalidArgument)
	requireCode(s, s.client.UpdateModemCount(s.ctx, 0), codes.InvalidArgument)
	requireCode(s, s.client.UpdateImsState(s.ctx, &pb.ImsStateRequest{SubId: telephony.InvalidSubID}), codes.InvalidArgument)
	requireCode(s, s.client.UpdateCarrierConfig(s.ctx, &pb.CarrierConfigRequest{SlotId: 0, SubId: testSub}), codes.InvalidArgument)
}

func (s *ServerSuite) TestUpdatesReachPlatform() {
	r := s.Require()
	r.NoError(s.client.UpdateImsState(s.ctx, &pb.ImsStateRequest{
		SubId:            testSub,
		FeatureAvailable: true,
		Registered:       true,
		Tech:             int32(telephony.ImsRegTechIWLAN),
		Capabilities:     int32(telephony.CapabilityVoice | telephony.CapabilitySMS),
		AdvancedCalling:  true,
	}))
	s.Eventually(func() bool {
		var wlan bool
		_ = s.svc.Do(s.ctx, func() { wlan = s.svc.ImsStateTracker(0).IsImsRegisteredOverWlan() })
		return wlan
	}, time.Second, 10*time.Millisecond)

	r.NoError(s.client.UpdateServiceState(s.ctx, &pb.ServiceStateRequest{
		SlotId: 0,
		SubId:  testSub,
		ServiceState: &pb.ServiceState{
			VoiceRegState: int32(telephony.RegStateHome),
			RegistrationInfos: []*pb.NetworkRegistrationInfo{{
				Domain:        int32(telephony.DomainPS),
				Transport:     int32(telephony.TransportWWAN),
				AccessNetwork: int32(telephony.EUTRAN),
				RegState:      int32(telephony.RegStateHome),
			}},
		},
	}))
	ss := s.bridge.ServiceState(0)
	r.NotNil(ss)
	info, ok := ss.RegistrationInfo(telephony.DomainPS, telephony.TransportWWAN)
	r.True(ok)
	s.Equal(telephony.EUTRAN, info.AccessNetwork)

	cfg := telephony.DefaultCarrierConfig()
	cfg.EmergencyRequiresImsRegistration = true
	r.NoError(s.client.UpdateCarrierConfig(s.ctx, &pb.CarrierConfigRequest{SlotId: 0, SubId: testSub, Config: CarrierConfigToProto(cfg)}))
	got, err := s.bridge.ConfigForSubID(testSub)
	r.NoError(err)
	s.True(got.EmergencyRequiresImsRegistration)
	s.Equal(cfg.EmergencyDomainPreference, got.EmergencyDomainPreference)

	r.NoError(s.client.UpdateSimState(s.ctx, &pb.SimStateRequest{SlotId: 0, SubId: testSub, State: int32(telephony.SimStateReady), CountryIso: "gb"}))
	s.Equal("gb", s.bridge.NetworkCountryIso(0))

	r.NoError(s.client.UpdateModemCount(s.ctx, 2))
	s.Eventually(func() bool {
		var ok bool
		_ = s.svc.Do(s.ctx, func() { _, ok = s.svc.ImsSnapshot(1) })
		return ok
	}, time.Second, 10*time.Millisecond)
}

func TestToStatus(t *testing.T) {
	cases := []struct {
		err  error
		code codes.Code
	}{
		{ErrSelectionNotFound, codes.NotFound},
		{ErrUnknownToken, codes.NotFound},
		{platform.ErrInvalidSlot, codes.InvalidArgument},
		{service.ErrStopped, codes.Unavailable},
		{context.Canceled, codes.Canceled},
		{errors.New("boom"), codes.Internal},
	}
	for _, c := range cases {
		st, _ := status.FromError(toStatus(c.err))
		if st.Code() != c.code {
			t.Errorf("toStatus(%v) = %s, want %s", c.err, st.Code(), c.code)
		}
	}
}
