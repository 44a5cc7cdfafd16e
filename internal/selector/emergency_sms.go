package selector

import (
	"github.com/dense-identity/domainselection/internal/imsstate"
	"github.com/dense-identity/domainselection/internal/telephony"
)

// EmergencySmsDomainSelector chooses the domain of an emergency SMS. The IMS
// path needs carrier opt-in and, when configured, LTE (or NR) in full or
// limited service with emergency bearer support and no emergency barring.
type EmergencySmsDomainSelector struct {
	*SmsDomainSelector

	serviceState *telephony.ServiceState
	barringInfo  *telephony.BarringInfo
	barringSeen  bool
}

var (
	_ Selector                      = (*EmergencySmsDomainSelector)(nil)
	_ imsstate.ServiceStateListener = (*EmergencySmsDomainSelector)(nil)
	_ imsstate.BarringInfoListener  = (*EmergencySmsDomainSelector)(nil)
)

func NewEmergencySms(d Deps, tracker *imsstate.Tracker, slotID, subID int, l DestroyListener) *EmergencySmsDomainSelector {
	e := &EmergencySmsDomainSelector{SmsDomainSelector: &SmsDomainSelector{}}
	e.init(e, "EmergencySmsDomainSelector", d, tracker, slotID, subID, l, nil)
	e.policy = e
	tracker.AddImsStateListener(e.SmsDomainSelector)
	tracker.AddServiceStateListener(e)
	tracker.AddBarringInfoListener(e)
	return e
}

// SelectDomain hands the framework the outer selector, not the embedded one.
func (e *EmergencySmsDomainSelector) SelectDomain(attr telephony.SelectionAttributes, cb telephony.TransportSelectorCallback) {
	if e.destroyed {
		return
	}
	if e.requested {
		e.logf("selectDomain already requested")
		return
	}
	e.attr = attr
	e.transport = cb
	e.requested = true
	cb.OnCreated(e)
	e.trySelect()
}

func (e *EmergencySmsDomainSelector) Destroy() {
	if e.destroyed {
		return
	}
	e.logf("destroy")
	e.tracker.RemoveImsStateListener(e.SmsDomainSelector)
	e.tracker.RemoveServiceStateListener(e)
	e.tracker.RemoveBarringInfoListener(e)
	e.destroyBase()
}

func (e *EmergencySmsDomainSelector) OnServiceStateUpdated(ss *telephony.ServiceState) {
	e.serviceState = ss
	e.trySelect()
}

func (e *EmergencySmsDomainSelector) OnBarringInfoUpdated(info *telephony.BarringInfo) {
	e.barringInfo = info
	e.barringSeen = true
	e.trySelect()
}

func (e *EmergencySmsDomainSelector) config() *telephony.CarrierConfig {
	return e.deps.Platform.CarrierConfig(e.subID)
}

func (e *EmergencySmsDomainSelector) isReady() bool {
	cfg := e.config()
	if cfg.SupportEmergencySmsOverIms && cfg.EmergencySmsRequiresLteInServiceOrLimited {
		return e.serviceState != nil && e.barringSeen
	}
	return e.tracker.IsImsStateReady()
}

// isLteEmergencyAvailable checks the WWAN PS registration for an emergency-capable LTE or NR cell.
func (e *EmergencySmsDomainSelector) isLteEmergencyAvailable() bool {
	if e.barringInfo.IsEmergencyBarred() {
		return false
	}
	info, ok := e.serviceState.RegistrationInfo(telephony.DomainPS, telephony.TransportWWAN)
	if !ok || !info.InServiceOrLimited() || !info.IsEmcBearerSupported {
		return false
	}
	switch info.AccessNetwork {
	case telephony.EUTRAN:
		return true
	case telephony.NGRAN:
		return e.deps.CarrierHelper != nil && e.deps.CarrierHelper.IsVoNrEmergencySupported(e.slotID)
	default:
		return false
	}
}

func (e *EmergencySmsDomainSelector) selectDomain() {
	cfg := e.config()
	if !cfg.SupportEmergencySmsOverIms {
		e.logf("emergency SMS over IMS not supported by carrier")
		e.notifyWwanSelected(telephony.DomainCS, false)
		return
	}
	if cfg.EmergencySmsRequiresLteInServiceOrLimited {
		if e.isLteEmergencyAvailable() {
			e.notifyWwanSelected(telephony.DomainPS, true)
		} else {
			e.notifyWwanSelected(telephony.DomainCS, false)
		}
		return
	}
	switch {
	case e.isSmsOverImsAvailable() && e.tracker.IsImsRegisteredOverWlan():
		e.notifyWlanSelected(false)
	case e.isSmsOverImsAvailable():
		e.notifyWwanSelected(telephony.DomainPS, true)
	default:
		e.notifyWwanSelected(telephony.DomainCS, false)
	}
}
