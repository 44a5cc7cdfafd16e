package service

import (
	"fmt"

	"github.com/dense-identity/domainselection/internal/selector"
	"github.com/dense-identity/domainselection/internal/telephony"
)

type selectorKey struct {
	slotID       int
	selectorType telephony.SelectorType
	emergency    bool
}

func keyOf(attr telephony.SelectionAttributes) selectorKey {
	return selectorKey{slotID: attr.SlotID, selectorType: attr.SelectorType, emergency: attr.IsEmergency}
}

func (k selectorKey) String() string {
	return fmt.Sprintf("{slot=%d, type=%s, emergency=%t}", k.slotID, k.selectorType, k.emergency)
}

// container indexes the live selectors both by key and by instance so a
// late destroy of a replaced selector cannot evict its successor.
type container struct {
	byKey      map[selectorKey]selector.Selector
	bySelector map[selector.Selector]selectorKey
}

func newContainer() *container {
	return &container{
		byKey:      make(map[selectorKey]selector.Selector),
		bySelector: make(map[selector.Selector]selectorKey),
	}
}

func (c *container) get(k selectorKey) selector.Selector {
	return c.byKey[k]
}

func (c *container) put(k selectorKey, sel selector.Selector) {
	if old, ok := c.byKey[k]; ok {
		delete(c.bySelector, old)
	}
	c.byKey[k] = sel
	c.bySelector[sel] = k
}

// remove drops sel and reports whether it was registered.
func (c *container) remove(sel selector.Selector) bool {
	k, ok := c.bySelector[sel]
	if !ok {
		return false
	}
	delete(c.bySelector, sel)
	if c.byKey[k] == sel {
		delete(c.byKey, k)
	}
	return true
}

func (c *container) all() []selector.Selector {
	out := make([]selector.Selector, 0, len(c.byKey))
	for _, sel := range c.byKey {
		out = append(out, sel)
	}
	return out
}

func (c *container) len() int { return len(c.byKey) }
