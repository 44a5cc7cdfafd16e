package rpc

import (
	"log"
	"sync"

	"github.com/dense-identity/domainselection/internal/selector"
	"github.com/dense-identity/domainselection/internal/telephony"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dense-identity/domainselection/api/go/domainselection/v1"
)

type pendingScan struct {
	signal *telephony.CancellationSignal
	result func(telephony.EmergencyRegistrationResult)
}

// session is one SelectDomain stream. Its callbacks run on the service
// looper and queue events for the stream goroutine. The queue is unbounded
// so the looper never waits on a slow client and no callback is lost.
type session struct {
	id     string
	clock  clockwork.Clock
	logger *log.Logger

	ready     chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	mu       sync.Mutex
	queue    []*pb.SelectionEvent
	selector selector.Selector
	scans    map[string]*pendingScan
}

var (
	_ telephony.TransportSelectorCallback = (*session)(nil)
	_ telephony.WwanSelectorCallback      = (*session)(nil)
)

func newSession(clock clockwork.Clock, logger *log.Logger) *session {
	return &session{
		id:     uuid.NewString(),
		clock:  clock,
		logger: logger,
		ready:  make(chan struct{}, 1),
		done:   make(chan struct{}),
		scans:  make(map[string]*pendingScan),
	}
}

func (s *session) close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *session) setSelector(sel selector.Selector) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selector = sel
}

func (s *session) getSelector() selector.Selector {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selector
}

// emit queues ev for the stream. Events after close are discarded.
func (s *session) emit(ev *pb.SelectionEvent) {
	ev.SelectionId = s.id
	ev.EmittedAt = timestamppb.New(s.clock.Now())
	select {
	case <-s.done:
		s.logger.Printf("[rpc] session %s closed, %s discarded", s.id, ev.GetKind())
		return
	default:
	}
	s.mu.Lock()
	s.queue = append(s.queue, ev)
	s.mu.Unlock()
	select {
	case s.ready <- struct{}{}:
	default:
	}
}

// pending takes every queued event in emission order.
func (s *session) pending() []*pb.SelectionEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.queue
	s.queue = nil
	return q
}

func (s *session) takeScan(token string) *pendingScan {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.scans[token]
	delete(s.scans, token)
	return p
}

func (s *session) OnCreated(telephony.DomainSelector) {
	s.emit(&pb.SelectionEvent{Kind: pb.EventKind_EVENT_KIND_CREATED})
}

func (s *session) OnWlanSelected(useEmergencyPdn bool) {
	s.emit(&pb.SelectionEvent{Kind: pb.EventKind_EVENT_KIND_WLAN_SELECTED, UseEmergencyPdn: useEmergencyPdn})
}

// OnWwanSelected hands the selector this session as its WWAN callback; the
// cellular transport on the framework side needs no preparation here.
func (s *session) OnWwanSelected(consumer func(telephony.WwanSelectorCallback)) {
	consumer(s)
}

func (s *session) OnSelectionTerminated(cause telephony.DisconnectCause) {
	s.emit(&pb.SelectionEvent{Kind: pb.EventKind_EVENT_KIND_TERMINATED, Cause: int32(cause)})
}

func (s *session) OnRequestEmergencyNetworkScan(preferred []telephony.AccessNetworkType, scanType telephony.ScanType,
	resetScan bool, signal *telephony.CancellationSignal, result func(telephony.EmergencyRegistrationResult)) {
	token := uuid.NewString()
	s.mu.Lock()
	s.scans[token] = &pendingScan{signal: signal, result: result}
	s.mu.Unlock()

	s.emit(&pb.SelectionEvent{
		Kind:      pb.EventKind_EVENT_KIND_SCAN_REQUESTED,
		ScanToken: token,
		Networks:  convertInts[int32](preferred),
		ScanType:  int32(scanType),
		ResetScan: resetScan,
	})
	signal.SetOnCancelListener(func() {
		if s.takeScan(token) != nil {
			s.emit(&pb.SelectionEvent{Kind: pb.EventKind_EVENT_KIND_SCAN_CANCELLED, ScanToken: token})
		}
	})
}

func (s *session) OnDomainSelected(domain telephony.Domain, useEmergencyPdn bool) {
	s.emit(&pb.SelectionEvent{Kind: pb.EventKind_EVENT_KIND_WWAN_SELECTED, Domain: int32(domain), UseEmergencyPdn: useEmergencyPdn})
}

func (s *session) OnCancel() {
	s.emit(&pb.SelectionEvent{Kind: pb.EventKind_EVENT_KIND_CANCELLED})
}
