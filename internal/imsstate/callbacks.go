package imsstate

import "github.com/dense-identity/domainselection/internal/telephony"

// Platform callbacks arrive on arbitrary goroutines; each one re-posts onto
// the tracker's looper and is ignored there once it is no longer current.

type stateCallback struct {
	tracker *Tracker
}

func (c *stateCallback) OnAvailable() {
	c.tracker.handler.Post(func() { c.tracker.onFeatureAvailable(c) })
}

func (c *stateCallback) OnUnavailable(reason telephony.ImsUnavailableReason) {
	c.tracker.handler.Post(func() { c.tracker.onFeatureUnavailable(c, reason) })
}

func (c *stateCallback) OnError() {
	c.tracker.handler.Post(func() { c.tracker.onStateCallbackError(c) })
}

type registrationCallback struct {
	tracker *Tracker
}

func (c *registrationCallback) OnRegistered(attr telephony.ImsRegistrationAttributes) {
	c.tracker.handler.Post(func() {
		if c.tracker.regCb == c {
			c.tracker.setRegistered(attr)
		}
	})
}

func (c *registrationCallback) OnRegistering(telephony.ImsRegistrationAttributes) {
	c.tracker.handler.Post(func() {
		if c.tracker.regCb == c {
			c.tracker.setUnregistered()
		}
	})
}

func (c *registrationCallback) OnUnregistered(telephony.ImsReasonInfo) {
	c.tracker.handler.Post(func() {
		if c.tracker.regCb == c {
			c.tracker.setUnregistered()
		}
	})
}

type capabilityCallback struct {
	tracker *Tracker
}

func (c *capabilityCallback) OnCapabilitiesStatusChanged(caps telephony.MmTelCapabilities) {
	c.tracker.handler.Post(func() {
		if c.tracker.capCb == c {
			c.tracker.setCapabilities(caps)
		}
	})
}
