// Package selector holds the per-request domain selection state machines
// for SMS, emergency SMS and emergency calls.
package selector

import (
	"fmt"
	"log"

	"github.com/dense-identity/domainselection/internal/carrierhelper"
	"github.com/dense-identity/domainselection/internal/crosssim"
	"github.com/dense-identity/domainselection/internal/datastate"
	"github.com/dense-identity/domainselection/internal/ecbm"
	"github.com/dense-identity/domainselection/internal/imsstate"
	"github.com/dense-identity/domainselection/internal/looper"
	"github.com/dense-identity/domainselection/internal/metrics"
	"github.com/dense-identity/domainselection/internal/telephony"
)

// Selector is a live domain selector owned by the service.
type Selector interface {
	telephony.DomainSelector
	// SelectDomain starts the selection described by attr. It must be
	// called on the service looper.
	SelectDomain(attr telephony.SelectionAttributes, cb telephony.TransportSelectorCallback)
	SlotID() int
	SubID() int
	// Destroy releases every resource. It must be called on the service looper.
	Destroy()
	IsDestroyed() bool
}

// DestroyListener is told once a selector has been destroyed.
type DestroyListener interface {
	OnDomainSelectorDestroyed(s Selector)
}

// Deps are the service-wide collaborators shared by all selectors.
type Deps struct {
	Platform      *telephony.Platform
	Looper        *looper.Looper
	CrossSim      *crosssim.Controller
	DataState     *datastate.Helper
	CallbackMode  *ecbm.Helper
	CarrierHelper *carrierhelper.Helper
	Metrics       *metrics.Metrics
	Logger        *log.Logger
}

// base is the DomainSelectorBase shared by every selector.
type base struct {
	name    string
	slotID  int
	subID   int
	self    Selector
	deps    Deps
	tracker *imsstate.Tracker
	handler *looper.Handler
	logger  *log.Logger

	destroyListener DestroyListener

	attr      telephony.SelectionAttributes
	transport telephony.TransportSelectorCallback
	requested bool
	destroyed bool
}

func (b *base) init(self Selector, name string, d Deps, tracker *imsstate.Tracker, slotID, subID int,
	l DestroyListener, handle func(looper.Message)) {
	b.self = self
	b.name = name
	b.deps = d
	b.tracker = tracker
	b.slotID = slotID
	b.subID = subID
	b.destroyListener = l
	b.logger = d.Logger
	if b.logger == nil {
		b.logger = log.Default()
	}
	b.handler = looper.NewHandler(d.Looper, handle)
	d.Metrics.SelectorCreated()
}

func (b *base) logf(format string, args ...any) {
	b.logger.Printf("[%s-%d] %s", b.name, b.slotID, fmt.Sprintf(format, args...))
}

func (b *base) SlotID() int { return b.slotID }

func (b *base) SubID() int { return b.subID }

func (b *base) IsDestroyed() bool { return b.destroyed }

// post runs fn on the looper unless the selector is gone by then.
func (b *base) post(fn func()) {
	b.handler.Post(func() {
		if !b.destroyed {
			fn()
		}
	})
}

func (b *base) notifyWlanSelected(useEmergencyPdn bool) {
	b.logf("WLAN selected useEmergencyPdn=%t", useEmergencyPdn)
	b.deps.Metrics.IncrementSelected(b.name, "wlan")
	b.transport.OnWlanSelected(useEmergencyPdn)
}

// notifyWwanSelected reports a WWAN domain through a fresh WWAN callback.
func (b *base) notifyWwanSelected(domain telephony.Domain, useEmergencyPdn bool) {
	b.logf("WWAN %s selected useEmergencyPdn=%t", domain, useEmergencyPdn)
	b.deps.Metrics.IncrementSelected(b.name, resultLabel(domain))
	b.transport.OnWwanSelected(func(cb telephony.WwanSelectorCallback) {
		cb.OnDomainSelected(domain, useEmergencyPdn)
	})
}

func (b *base) notifyTerminated(cause telephony.DisconnectCause) {
	b.logf("selection terminated cause=%s", cause)
	b.deps.Metrics.IncrementTermination(cause.String())
	if b.transport != nil {
		b.transport.OnSelectionTerminated(cause)
	}
}

// destroyBase drops queued work and tells the owner. It returns false if
// the selector was already destroyed.
func (b *base) destroyBase() bool {
	if b.destroyed {
		return false
	}
	b.destroyed = true
	b.requested = false
	b.handler.RemoveCallbacksAndMessages()
	b.deps.Metrics.SelectorDestroyed()
	if b.destroyListener != nil {
		b.destroyListener.OnDomainSelectorDestroyed(b.self)
	}
	return true
}

func resultLabel(d telephony.Domain) string {
	switch d {
	case telephony.DomainPS:
		return "ps"
	case telephony.DomainCS:
		return "cs"
	default:
		return "unknown"
	}
}
