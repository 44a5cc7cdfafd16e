// Package rpc carries the domain selection service over gRPC. The framework
// side opens a SelectDomain stream per request and pushes platform state
// with the Update calls.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/dense-identity/domainselection/internal/platform"
	"github.com/dense-identity/domainselection/internal/service"
	"github.com/dense-identity/domainselection/internal/telephony"
	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/dense-identity/domainselection/api/go/domainselection/v1"
)

const tracerName = "github.com/dense-identity/domainselection/internal/rpc"

var (
	ErrSelectionNotFound = errors.New("selection not found")
	ErrUnknownToken      = errors.New("unknown scan token")
	ErrInvalidArgument   = errors.New("invalid argument")
)

// Server implements the DomainSelection service on top of a Service and
// the Bridge the framework pushes platform state into.
type Server struct {
	pb.UnimplementedDomainSelectionServer

	svc    *service.Service
	bridge *platform.Bridge
	clock  clockwork.Clock
	tracer trace.Tracer
	logger *log.Logger

	mu       sync.RWMutex
	sessions map[string]*session
}

var _ pb.DomainSelectionServer = (*Server)(nil)

func NewServer(svc *service.Service, bridge *platform.Bridge, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		svc:      svc,
		bridge:   bridge,
		clock:    svc.Looper().Clock(),
		tracer:   otel.Tracer(tracerName),
		logger:   logger,
		sessions: make(map[string]*session),
	}
}

func (s *Server) logf(format string, args ...any) {
	s.logger.Printf("[rpc] %s", fmt.Sprintf(format, args...))
}

// toStatus maps package and service errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrSelectionNotFound), errors.Is(err, ErrUnknownToken):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, platform.ErrInvalidSlot),
		errors.Is(err, platform.ErrInvalidSub), errors.Is(err, service.ErrInvalidSlot):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrStopped):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// traced runs fn inside a span named after the RPC.
func (s *Server) traced(ctx context.Context, name string, fn func(context.Context) error, attrs ...attribute.KeyValue) (*pb.Ack, error) {
	ctx, span := s.tracer.Start(ctx, "DomainSelection/"+name, trace.WithAttributes(attrs...))
	defer span.End()
	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logf("%s failed: %v", name, err)
		return nil, toStatus(err)
	}
	return &pb.Ack{}, nil
}

func (s *Server) post(fn func()) error {
	if !s.svc.Post(fn) {
		return service.ErrStopped
	}
	return nil
}

func (s *Server) session(id string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("selection %q: %w", id, ErrSelectionNotFound)
	}
	return sess, nil
}

func (s *Server) addSession(sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.id] = sess
}

func (s *Server) removeSession(sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sess.id)
}

// Sessions is the number of open SelectDomain streams.
func (s *Server) Sessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// CloseSessions ends every open SelectDomain stream. The service is
// expected to have destroyed the selectors already.
func (s *Server) CloseSessions() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sess := range s.sessions {
		sess.close()
	}
}

// SelectDomain starts a selection and streams its callbacks until the
// selection terminates, is finished or the client goes away.
func (s *Server) SelectDomain(req *pb.SelectDomainRequest, stream grpc.ServerStreamingServer[pb.SelectionEvent]) error {
	if req.GetAttributes() == nil {
		return toStatus(fmt.Errorf("missing attributes: %w", ErrInvalidArgument))
	}
	attr := AttributesFromProto(req.GetAttributes())
	ctx, span := s.tracer.Start(stream.Context(), "DomainSelection/SelectDomain", trace.WithAttributes(
		attribute.Int("slot", attr.SlotID),
		attribute.String("type", attr.SelectorType.String()),
		attribute.Bool("emergency", attr.IsEmergency),
	))
	defer span.End()

	sess := newSession(s.clock, s.logger)
	span.SetAttributes(attribute.String("selection_id", sess.id))
	s.addSession(sess)
	defer s.removeSession(sess)
	s.logf("selection %s started %s", sess.id, attr)

	if err := s.post(func() { sess.setSelector(s.svc.OnDomainSelection(attr, sess)) }); err != nil {
		span.RecordError(err)
		return toStatus(err)
	}

	for {
		select {
		case <-sess.ready:
			for _, ev := range sess.pending() {
				if err := stream.Send(ev); err != nil {
					s.release(sess, true)
					return err
				}
				if ev.GetKind() == pb.EventKind_EVENT_KIND_TERMINATED {
					s.release(sess, false)
					return nil
				}
			}
		case <-sess.done:
			s.drain(sess, stream)
			return nil
		case <-ctx.Done():
			s.logf("selection %s: client gone", sess.id)
			s.release(sess, true)
			span.SetStatus(otelcodes.Error, "client cancelled")
			return toStatus(ctx.Err())
		}
	}
}

// drain forwards events queued before the session was closed.
func (s *Server) drain(sess *session, stream grpc.ServerStreamingServer[pb.SelectionEvent]) {
	for _, ev := range sess.pending() {
		if err := stream.Send(ev); err != nil {
			return
		}
	}
}

// release closes the session and lets go of its selector on the looper.
func (s *Server) release(sess *session, cancel bool) {
	sess.close()
	_ = s.post(func() {
		sel := sess.getSelector()
		if sel == nil || sel.IsDestroyed() {
			return
		}
		if cancel {
			sel.CancelSelection()
		} else {
			sel.FinishSelection()
		}
	})
}

func (s *Server) ReselectDomain(ctx context.Context, req *pb.ReselectDomainRequest) (*pb.Ack, error) {
	return s.traced(ctx, "ReselectDomain", func(context.Context) error {
		sess, err := s.session(req.GetSelectionId())
		if err != nil {
			return err
		}
		if req.GetAttributes() == nil {
			return fmt.Errorf("missing attributes: %w", ErrInvalidArgument)
		}
		attr := AttributesFromProto(req.GetAttributes())
		return s.post(func() {
			if sel := sess.getSelector(); sel != nil {
				sel.ReselectDomain(attr)
			}
		})
	}, attribute.String("selection_id", req.GetSelectionId()))
}

func (s *Server) FinishSelection(ctx context.Context, req *pb.SelectionRequest) (*pb.Ack, error) {
	return s.traced(ctx, "FinishSelection", func(context.Context) error {
		sess, err := s.session(req.GetSelectionId())
		if err != nil {
			return err
		}
		s.release(sess, false)
		return nil
	}, attribute.String("selection_id", req.GetSelectionId()))
}

func (s *Server) CancelSelection(ctx context.Context, req *pb.SelectionRequest) (*pb.Ack, error) {
	return s.traced(ctx, "CancelSelection", func(context.Context) error {
		sess, err := s.session(req.GetSelectionId())
		if err != nil {
			return err
		}
		s.release(sess, true)
		return nil
	}, attribute.String("selection_id", req.GetSelectionId()))
}

// ReportScanResult answers a scan request. The selector re-posts the
// result onto its looper.
func (s *Server) ReportScanResult(ctx context.Context, req *pb.ScanResultRequest) (*pb.Ack, error) {
	return s.traced(ctx, "ReportScanResult", func(context.Context) error {
		sess, err := s.session(req.GetSelectionId())
		if err != nil {
			return err
		}
		scan := sess.takeScan(req.GetScanToken())
		if scan == nil {
			return fmt.Errorf("token %q: %w", req.GetScanToken(), ErrUnknownToken)
		}
		scan.result(RegistrationResultFromProto(req.GetResult()))
		return nil
	}, attribute.String("selection_id", req.GetSelectionId()))
}

func validSlot(slotID int) error {
	if slotID < 0 {
		return fmt.Errorf("slot %d: %w", slotID, ErrInvalidArgument)
	}
	return nil
}

func (s *Server) UpdateServiceState(ctx context.Context, req *pb.ServiceStateRequest) (*pb.Ack, error) {
	slotID, subID := int(req.GetSlotId()), int(req.GetSubId())
	return s.traced(ctx, "UpdateServiceState", func(context.Context) error {
		if err := validSlot(slotID); err != nil {
			return err
		}
		ss := serviceStateFromProto(req.GetServiceState())
		s.bridge.SetServiceState(slotID, ss)
		return s.post(func() { s.svc.OnServiceStateUpdated(slotID, subID, ss) })
	}, attribute.Int("slot", slotID))
}

func (s *Server) UpdateBarringInfo(ctx context.Context, req *pb.BarringInfoRequest) (*pb.Ack, error) {
	slotID, subID := int(req.GetSlotId()), int(req.GetSubId())
	return s.traced(ctx, "UpdateBarringInfo", func(context.Context) error {
		if err := validSlot(slotID); err != nil {
			return err
		}
		info := barringInfoFromProto(req)
		return s.post(func() { s.svc.OnBarringInfoUpdated(slotID, subID, info) })
	}, attribute.Int("slot", slotID))
}

func (s *Server) UpdateImsState(ctx context.Context, req *pb.ImsStateRequest) (*pb.Ack, error) {
	subID := int(req.GetSubId())
	return s.traced(ctx, "UpdateImsState", func(context.Context) error {
		if !telephony.IsValidSubID(subID) {
			return fmt.Errorf("sub %d: %w", subID, platform.ErrInvalidSub)
		}
		tech := telephony.ImsRegistrationTech(req.GetTech())
		transport := telephony.TransportWWAN
		if tech == telephony.ImsRegTechIWLAN {
			transport = telephony.TransportWLAN
		}
		s.bridge.SetImsSettings(subID, req.GetAdvancedCalling(), req.GetVowifiSetting(), req.GetValidEmergencyAddress())
		s.bridge.SetImsFeatureAvailable(subID, req.GetFeatureAvailable(), telephony.ImsUnavailableReason(req.GetUnavailableReason()))
		s.bridge.SetImsRegistration(subID, req.GetRegistered(),
			telephony.ImsRegistrationAttributes{Tech: tech, Transport: transport})
		s.bridge.SetMmTelCapabilities(subID, telephony.MmTelCapabilities(req.GetCapabilities()))
		return nil
	}, attribute.Int("sub", subID))
}

// UpdateSimState changes a slot's card and republishes the subscription list.
func (s *Server) UpdateSimState(ctx context.Context, req *pb.SimStateRequest) (*pb.Ack, error) {
	slotID, subID := int(req.GetSlotId()), int(req.GetSubId())
	return s.traced(ctx, "UpdateSimState", func(context.Context) error {
		if err := s.bridge.SetSim(slotID, subID, telephony.SimState(req.GetState())); err != nil {
			return err
		}
		if req.GetEmergencyNumbers() != nil || req.GetTestEmergencyNumbers() != nil {
			s.bridge.SetEmergencyNumbers(slotID, req.GetEmergencyNumbers(), req.GetTestEmergencyNumbers())
		}
		if iso := req.GetCountryIso(); iso != "" {
			s.bridge.SetCountryIso(slotID, iso)
		}
		s.bridge.PublishSubscriptions()
		return s.post(func() { s.svc.OnCarrierConfigChanged(slotID, subID) })
	}, attribute.Int("slot", slotID))
}

func (s *Server) UpdateWifi(ctx context.Context, req *pb.WifiRequest) (*pb.Ack, error) {
	return s.traced(ctx, "UpdateWifi", func(context.Context) error {
		s.bridge.SetWifiAvailable(req.GetAvailable())
		return nil
	}, attribute.Bool("available", req.GetAvailable()))
}

func (s *Server) UpdateEmergencyPdn(ctx context.Context, req *pb.EmergencyPdnRequest) (*pb.Ack, error) {
	slotID := int(req.GetSlotId())
	return s.traced(ctx, "UpdateEmergencyPdn", func(context.Context) error {
		if err := validSlot(slotID); err != nil {
			return err
		}
		s.bridge.SetEmergencyPdn(slotID, telephony.EmergencyPdnState(req.GetState()), telephony.TransportType(req.GetTransport()))
		return nil
	}, attribute.Int("slot", slotID))
}

func (s *Server) UpdateCallbackMode(ctx context.Context, req *pb.CallbackModeRequest) (*pb.Ack, error) {
	slotID := int(req.GetSlotId())
	return s.traced(ctx, "UpdateCallbackMode", func(context.Context) error {
		if err := validSlot(slotID); err != nil {
			return err
		}
		s.bridge.SetCallbackMode(slotID, req.GetActive(), telephony.TransportType(req.GetTransport()))
		return nil
	}, attribute.Int("slot", slotID))
}

func (s *Server) UpdateCarrierConfig(ctx context.Context, req *pb.CarrierConfigRequest) (*pb.Ack, error) {
	slotID, subID := int(req.GetSlotId()), int(req.GetSubId())
	return s.traced(ctx, "UpdateCarrierConfig", func(context.Context) error {
		if err := validSlot(slotID); err != nil {
			return err
		}
		if !telephony.IsValidSubID(subID) || req.GetConfig() == nil {
			return fmt.Errorf("carrier config for sub %d: %w", subID, ErrInvalidArgument)
		}
		s.bridge.SetCarrierConfig(subID, CarrierConfigFromProto(req.GetConfig()))
		return s.post(func() { s.svc.OnCarrierConfigChanged(slotID, subID) })
	}, attribute.Int("slot", slotID))
}

func (s *Server) UpdateModemCount(ctx context.Context, req *pb.ModemCountRequest) (*pb.Ack, error) {
	count := int(req.GetCount())
	return s.traced(ctx, "UpdateModemCount", func(context.Context) error {
		if count < 1 {
			return fmt.Errorf("modem count %d: %w", count, ErrInvalidArgument)
		}
		s.bridge.SetModemCount(count)
		return s.post(func() { s.svc.OnModemCountChanged(count) })
	}, attribute.Int("count", count))
}
