// Package crosssim decides when a failing emergency call should be redialed
// on another SIM slot.
package crosssim

import (
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/dense-identity/domainselection/internal/looper"
	"github.com/dense-identity/domainselection/internal/telephony"
)

const (
	msgCrossStackTimerExpired = iota + 1
	msgQuickCrossStackTimerExpired
)

// Selector is the emergency call selector that owns the timers.
type Selector interface {
	SlotID() int
	NotifyCrossStackTimerExpired()
}

// Controller is the CrossSimRedialingController. It is shared by every
// emergency call selector of the service and runs on the service looper.
type Controller struct {
	platform *telephony.Platform
	handler  *looper.Handler
	logger   *log.Logger

	selector   Selector
	callID     string
	number     string
	slotID     int
	modemCount int

	attempted []int
	rejected  []int
}

func New(l *looper.Looper, p *telephony.Platform, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	c := &Controller{platform: p, logger: logger, slotID: telephony.InvalidSlotID}
	c.handler = looper.NewHandler(l, c.handleMessage)
	return c
}

func (c *Controller) logf(format string, args ...any) {
	c.logger.Printf("[CrossSimRedialingController] %s", fmt.Sprintf(format, args...))
}

func (c *Controller) handleMessage(msg looper.Message) {
	switch msg.What {
	case msgCrossStackTimerExpired, msgQuickCrossStackTimerExpired:
		quick := msg.What == msgQuickCrossStackTimerExpired
		c.logf("timer expired quick=%t", quick)
		if c.selector == nil {
			return
		}
		if !c.IsThereOtherSlot() {
			c.logf("no other slot can place the call")
			return
		}
		c.selector.NotifyCrossStackTimerExpired()
	}
}

// StartTimer (re)starts the redial timer for the current attempt of callID.
// A quick timer is used for the first attempt of a call when not roaming and
// either in service or not required to be in service.
func (c *Controller) StartTimer(selector Selector, callID, number string, inService, roaming bool, modemCount int) {
	if modemCount < 2 {
		return
	}

	first := false
	if c.callID != callID {
		c.logf("new call %s", callID)
		c.callID = callID
		c.attempted = nil
		c.rejected = nil
		first = true
	}
	c.selector = selector
	c.slotID = selector.SlotID()
	c.number = number
	c.modemCount = modemCount
	if n := len(c.attempted); n == 0 || c.attempted[n-1] != c.slotID {
		c.attempted = append(c.attempted, c.slotID)
	}

	c.StopTimer()

	cfg := c.platform.CarrierConfig(c.platform.Telephony.SubscriptionID(c.slotID))
	quickSec := cfg.QuickCrossStackRedialTimerSec
	if first && quickSec > 0 && !roaming && (inService || !cfg.StartQuickCrossStackTimerWhenInService) {
		c.logf("start quick timer %ds slot=%d inService=%t", quickSec, c.slotID, inService)
		c.handler.SendEmptyMessageDelayed(msgQuickCrossStackTimerExpired, time.Duration(quickSec)*time.Second)
		return
	}
	if sec := cfg.CrossStackRedialTimerSec; sec > 0 {
		c.logf("start timer %ds slot=%d", sec, c.slotID)
		c.handler.SendEmptyMessageDelayed(msgCrossStackTimerExpired, time.Duration(sec)*time.Second)
	}
}

// StopTimer cancels any pending redial timer.
func (c *Controller) StopTimer() {
	c.handler.RemoveMessages(msgCrossStackTimerExpired)
	c.handler.RemoveMessages(msgQuickCrossStackTimerExpired)
}

// IsTimerRunning reports whether a redial timer is pending.
func (c *Controller) IsTimerRunning() bool {
	return c.handler.HasMessages(msgCrossStackTimerExpired) || c.handler.HasMessages(msgQuickCrossStackTimerExpired)
}

// NotifyCallFailure records the current slot as rejected when the network
// refused the call permanently.
func (c *Controller) NotifyCallFailure(cause telephony.DisconnectCause) {
	c.logf("call failure slot=%d cause=%s", c.slotID, cause)
	if cause == telephony.CauseEmergencyPermFailure && c.slotID != telephony.InvalidSlotID &&
		!slices.Contains(c.rejected, c.slotID) {
		c.rejected = append(c.rejected, c.slotID)
	}
}

// IsThereOtherSlot reports whether a slot other than the current one and
// the rejected ones has a ready SIM that recognises the dialed number.
func (c *Controller) IsThereOtherSlot() bool {
	tel := c.platform.Telephony
	for i := 0; i < c.modemCount; i++ {
		if i == c.slotID || slices.Contains(c.rejected, i) {
			continue
		}
		if tel.SimState(i) != telephony.SimStateReady {
			continue
		}
		if tel.IsEmergencyNumber(i, c.number) {
			return true
		}
	}
	return false
}

// Attempted is the ordered list of slots tried for the current call.
func (c *Controller) Attempted() []int { return slices.Clone(c.attempted) }

// Rejected is the set of slots that permanently failed the current call.
func (c *Controller) Rejected() []int { return slices.Clone(c.rejected) }

// Release detaches selector if it is still the owner of the timers.
func (c *Controller) Release(selector Selector) {
	if c.selector != selector {
		return
	}
	c.StopTimer()
	c.selector = nil
}

func (c *Controller) Destroy() {
	c.handler.RemoveCallbacksAndMessages()
	c.selector = nil
	c.callID = ""
	c.attempted = nil
	c.rejected = nil
}
