// Package service is the domain selection dispatcher: it owns the IMS state
// trackers and the live selectors of one looper.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dense-identity/domainselection/internal/carrierhelper"
	"github.com/dense-identity/domainselection/internal/crosssim"
	"github.com/dense-identity/domainselection/internal/datastate"
	"github.com/dense-identity/domainselection/internal/ecbm"
	"github.com/dense-identity/domainselection/internal/imsstate"
	"github.com/dense-identity/domainselection/internal/looper"
	"github.com/dense-identity/domainselection/internal/metrics"
	"github.com/dense-identity/domainselection/internal/prefstore"
	"github.com/dense-identity/domainselection/internal/selector"
	"github.com/dense-identity/domainselection/internal/telephony"
)

var (
	ErrInvalidSlot = errors.New("invalid slot")
	ErrStopped     = errors.New("service looper stopped")
)

// Service is the TelephonyDomainSelectionService. Except for
// OnSubscriptionsChanged and Post, every method must run on the looper.
type Service struct {
	platform *telephony.Platform
	looper   *looper.Looper
	handler  *looper.Handler
	logger   *log.Logger
	metrics  *metrics.Metrics

	crossSim      *crosssim.Controller
	dataState     *datastate.Helper
	callbackMode  *ecbm.Helper
	carrierHelper *carrierhelper.Helper

	modemCount int
	trackers   map[int]*imsstate.Tracker
	selectors  *container
	destroyed  bool
}

var (
	_ selector.DestroyListener        = (*Service)(nil)
	_ telephony.SubscriptionsListener = (*Service)(nil)
)

// New builds the service and starts a tracker for every slot of the modem.
func New(ctx context.Context, p *telephony.Platform, l *looper.Looper, store prefstore.Store,
	m *metrics.Metrics, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	modemCount := p.Telephony.ActiveModemCount()
	s := &Service{
		platform:      p,
		looper:        l,
		handler:       looper.NewHandler(l, nil),
		logger:        logger,
		metrics:       m,
		crossSim:      crosssim.New(l, p, logger),
		dataState:     datastate.New(l, p.Telephony, logger),
		callbackMode:  ecbm.New(l, p.Telephony, logger),
		carrierHelper: carrierhelper.New(ctx, p, store, modemCount, logger),
		modemCount:    modemCount,
		trackers:      make(map[int]*imsstate.Tracker),
		selectors:     newContainer(),
	}
	for slotID := 0; slotID < modemCount; slotID++ {
		s.ImsStateTracker(slotID).Start(p.Telephony.SubscriptionID(slotID))
	}
	p.Telephony.AddSubscriptionsListener(s)
	s.logf("created with %d slots", modemCount)
	return s
}

func (s *Service) logf(format string, args ...any) {
	s.logger.Printf("[TelephonyDomainSelectionService] %s", fmt.Sprintf(format, args...))
}

// Post runs fn on the service looper. It is safe from any goroutine.
func (s *Service) Post(fn func()) bool {
	return s.handler.Post(func() {
		if !s.destroyed {
			fn()
		}
	})
}

// Do runs fn on the looper and waits for it. fn is skipped once the
// service is destroyed.
func (s *Service) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	ok := s.handler.Post(func() {
		defer close(done)
		if !s.destroyed {
			fn()
		}
	})
	if !ok {
		return ErrStopped
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) Looper() *looper.Looper { return s.looper }

// Flushed is closed once Destroy has run and the carrier helper has written
// its last queued value to the preference store.
func (s *Service) Flushed() <-chan struct{} { return s.carrierHelper.Done() }

func (s *Service) deps() selector.Deps {
	return selector.Deps{
		Platform:      s.platform,
		Looper:        s.looper,
		CrossSim:      s.crossSim,
		DataState:     s.dataState,
		CallbackMode:  s.callbackMode,
		CarrierHelper: s.carrierHelper,
		Metrics:       s.metrics,
		Logger:        s.logger,
	}
}

// ImsStateTracker returns the tracker of slotID, creating it for slots
// beyond the current modem count. It returns nil for a negative slot.
func (s *Service) ImsStateTracker(slotID int) *imsstate.Tracker {
	if slotID < 0 {
		return nil
	}
	t, ok := s.trackers[slotID]
	if !ok {
		t = imsstate.New(s.looper, slotID, s.platform.Ims, s.logger)
		s.trackers[slotID] = t
	}
	return t
}

// OnDomainSelection creates the selector for attr, replacing any live
// selector with the same slot, type and emergency flag, and starts it.
// The new selector is returned; nil means the request was terminated.
func (s *Service) OnDomainSelection(attr telephony.SelectionAttributes, cb telephony.TransportSelectorCallback) selector.Selector {
	s.logf("onDomainSelection %s", attr)
	s.metrics.IncrementSelection(attr.SelectorType.String(), attr.IsEmergency)

	var tracker *imsstate.Tracker
	if !s.destroyed {
		tracker = s.ImsStateTracker(attr.SlotID)
	}
	if tracker == nil {
		s.logf("rejecting selection: %v", ErrInvalidSlot)
		cb.OnSelectionTerminated(telephony.CauseErrorUnspecified)
		return nil
	}

	sel := s.newSelector(attr, tracker)
	if sel == nil {
		s.logf("no selector for type=%s emergency=%t", attr.SelectorType, attr.IsEmergency)
		cb.OnSelectionTerminated(telephony.CauseErrorUnspecified)
		return nil
	}

	key := keyOf(attr)
	if stale := s.selectors.get(key); stale != nil {
		s.logf("destroying stale selector for %s", key)
		stale.Destroy()
	}
	s.selectors.put(key, sel)
	sel.SelectDomain(attr, cb)
	return sel
}

func (s *Service) newSelector(attr telephony.SelectionAttributes, tracker *imsstate.Tracker) selector.Selector {
	d := s.deps()
	switch attr.SelectorType {
	case telephony.SelectorTypeSms:
		if attr.IsEmergency {
			return selector.NewEmergencySms(d, tracker, attr.SlotID, attr.SubID, s)
		}
		return selector.NewSms(d, tracker, attr.SlotID, attr.SubID, s)
	case telephony.SelectorTypeCalling:
		if attr.IsEmergency {
			return selector.NewEmergencyCall(d, tracker, attr.SlotID, attr.SubID, s)
		}
	}
	return nil
}

// OnDomainSelectorDestroyed drops sel from the container if it is still registered.
func (s *Service) OnDomainSelectorDestroyed(sel selector.Selector) {
	if s.selectors.remove(sel) {
		s.logf("selector destroyed slot=%d, %d live", sel.SlotID(), s.selectors.len())
	}
}

// Selector returns the live selector for the key, if any.
func (s *Service) Selector(slotID int, t telephony.SelectorType, emergency bool) selector.Selector {
	return s.selectors.get(selectorKey{slotID: slotID, selectorType: t, emergency: emergency})
}

// ActiveSelectors is the number of live selectors.
func (s *Service) ActiveSelectors() int { return s.selectors.len() }

// OnServiceStateUpdated relays a pushed ServiceState to the slot's tracker.
func (s *Service) OnServiceStateUpdated(slotID, subID int, ss *telephony.ServiceState) {
	t := s.ImsStateTracker(slotID)
	if t == nil {
		s.logf("service state for invalid slot %d dropped", slotID)
		return
	}
	t.UpdateServiceState(ss)
}

// OnBarringInfoUpdated relays pushed BarringInfo to the slot's tracker.
func (s *Service) OnBarringInfoUpdated(slotID, subID int, info *telephony.BarringInfo) {
	t := s.ImsStateTracker(slotID)
	if t == nil {
		s.logf("barring info for invalid slot %d dropped", slotID)
		return
	}
	t.UpdateBarringInfo(info)
}

// OnSubscriptionsChanged restarts trackers for the active subscriptions.
// It arrives from the platform and is re-posted onto the looper.
func (s *Service) OnSubscriptionsChanged(infos []telephony.SubscriptionInfo) {
	s.Post(func() { s.applySubscriptions(infos) })
}

func (s *Service) applySubscriptions(infos []telephony.SubscriptionInfo) {
	subs := make(map[int]int, len(infos))
	for _, info := range infos {
		subs[info.SlotID] = info.SubID
		s.ImsStateTracker(info.SlotID)
	}
	for slotID, t := range s.trackers {
		subID, ok := subs[slotID]
		if !ok {
			subID = telephony.InvalidSubID
		}
		t.Start(subID)
	}
}

// OnCarrierConfigChanged refreshes the cached carrier state of slotID.
func (s *Service) OnCarrierConfigChanged(slotID, subID int) {
	s.carrierHelper.OnCarrierConfigChanged(slotID, subID)
}

// OnModemCountChanged grows the tracker set when slots are added.
func (s *Service) OnModemCountChanged(n int) {
	if n == s.modemCount {
		return
	}
	s.logf("modem count %d -> %d", s.modemCount, n)
	s.carrierHelper.OnModemCountChanged(s.modemCount, n)
	for slotID := s.modemCount; slotID < n; slotID++ {
		s.ImsStateTracker(slotID).Start(s.platform.Telephony.SubscriptionID(slotID))
	}
	s.modemCount = n
}

// ImsSnapshot reports the tracker state of slotID.
func (s *Service) ImsSnapshot(slotID int) (imsstate.Snapshot, bool) {
	t, ok := s.trackers[slotID]
	if !ok {
		return imsstate.Snapshot{}, false
	}
	return t.Snapshot(), true
}

// Destroy tears down every selector, tracker and helper.
func (s *Service) Destroy() {
	if s.destroyed {
		return
	}
	s.logf("destroy")
	s.platform.Telephony.RemoveSubscriptionsListener(s)
	for _, sel := range s.selectors.all() {
		sel.Destroy()
	}
	for _, t := range s.trackers {
		t.Destroy()
	}
	s.crossSim.Destroy()
	s.dataState.Destroy()
	s.callbackMode.Destroy()
	s.carrierHelper.Close()
	s.handler.RemoveCallbacksAndMessages()
	s.destroyed = true
}
