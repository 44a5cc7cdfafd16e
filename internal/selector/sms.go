package selector

import (
	"github.com/dense-identity/domainselection/internal/imsstate"
	"github.com/dense-identity/domainselection/internal/telephony"
)

// smsPolicy decides when and where an SMS selection goes.
type smsPolicy interface {
	isReady() bool
	selectDomain()
}

// SmsDomainSelector chooses the domain of a normal SMS. It serves one
// request at a time; a reselection while one is pending is dropped.
type SmsDomainSelector struct {
	base
	policy smsPolicy
}

var (
	_ Selector                  = (*SmsDomainSelector)(nil)
	_ imsstate.ImsStateListener = (*SmsDomainSelector)(nil)
)

func NewSms(d Deps, tracker *imsstate.Tracker, slotID, subID int, l DestroyListener) *SmsDomainSelector {
	s := &SmsDomainSelector{}
	s.init(s, "SmsDomainSelector", d, tracker, slotID, subID, l, nil)
	s.policy = s
	tracker.AddImsStateListener(s)
	return s
}

func (s *SmsDomainSelector) SelectDomain(attr telephony.SelectionAttributes, cb telephony.TransportSelectorCallback) {
	if s.destroyed {
		return
	}
	if s.requested {
		s.logf("selectDomain already requested")
		return
	}
	s.attr = attr
	s.transport = cb
	s.requested = true
	cb.OnCreated(s)
	s.trySelect()
}

func (s *SmsDomainSelector) ReselectDomain(attr telephony.SelectionAttributes) {
	s.post(func() {
		if s.requested {
			s.logf("reselectDomain already requested, dropped")
			return
		}
		if s.transport == nil {
			s.logf("reselectDomain without a selection")
			return
		}
		s.attr = attr
		s.requested = true
		s.trySelect()
	})
}

func (s *SmsDomainSelector) FinishSelection() {
	s.post(func() {
		s.logf("finishSelection")
		s.requested = false
		s.transport = nil
	})
}

func (s *SmsDomainSelector) CancelSelection() {
	s.FinishSelection()
}

func (s *SmsDomainSelector) Destroy() {
	if s.destroyed {
		return
	}
	s.logf("destroy")
	s.tracker.RemoveImsStateListener(s)
	s.destroyBase()
}

func (s *SmsDomainSelector) OnImsMmTelFeatureAvailableChanged() { s.trySelect() }
func (s *SmsDomainSelector) OnImsRegistrationStateChanged()     { s.trySelect() }
func (s *SmsDomainSelector) OnImsMmTelCapabilitiesChanged()     { s.trySelect() }

func (s *SmsDomainSelector) trySelect() {
	if !s.requested || s.destroyed {
		return
	}
	if !s.policy.isReady() {
		s.logf("waiting for state")
		return
	}
	s.requested = false
	s.policy.selectDomain()
}

func (s *SmsDomainSelector) isReady() bool {
	return s.tracker.IsImsStateReady()
}

func (s *SmsDomainSelector) isSmsOverImsAvailable() bool {
	return s.tracker.IsMmTelFeatureAvailable() && s.tracker.IsImsSmsCapable()
}

func (s *SmsDomainSelector) selectDomain() {
	switch {
	case s.isSmsOverImsAvailable() && s.tracker.IsImsRegisteredOverWlan():
		s.notifyWlanSelected(false)
	case s.isSmsOverImsAvailable():
		s.notifyWwanSelected(telephony.DomainPS, false)
	default:
		s.notifyWwanSelected(telephony.DomainCS, false)
	}
}
