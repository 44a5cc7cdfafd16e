// Package looper provides the single worker thread every selector, tracker
// and helper of one domain selection service runs on. Messages are delivered
// in due-time order, ties broken by post order.
package looper

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Message is one unit of work for a Handler.
type Message struct {
	What int
	Obj  any

	target *Handler
	fn     func()
	when   time.Time
	seq    uint64
}

// Looper owns an ordered message queue and the goroutine draining it.
type Looper struct {
	name  string
	clock clockwork.Clock

	mu       sync.Mutex
	queue    []*Message
	seq      uint64
	quitting bool

	wake     chan struct{}
	quit     chan struct{}
	quitOnce sync.Once
}

// New creates a looper; a nil clock means the real clock.
func New(name string, clock clockwork.Clock) *Looper {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Looper{
		name:  name,
		clock: clock,
		wake:  make(chan struct{}, 1),
		quit:  make(chan struct{}),
	}
}

func (l *Looper) Name() string { return l.name }

func (l *Looper) Clock() clockwork.Clock { return l.clock }

func (l *Looper) enqueue(m *Message, delay time.Duration) bool {
	if delay < 0 {
		delay = 0
	}
	l.mu.Lock()
	if l.quitting {
		l.mu.Unlock()
		return false
	}
	l.seq++
	m.seq = l.seq
	m.when = l.clock.Now().Add(delay)
	idx := sort.Search(len(l.queue), func(i int) bool {
		return l.queue[i].when.After(m.when)
	})
	l.queue = append(l.queue, nil)
	copy(l.queue[idx+1:], l.queue[idx:])
	l.queue[idx] = m
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// pop returns the head message if it is due, or how long to wait for it.
// wait is negative when the queue is empty.
func (l *Looper) pop() (msg *Message, wait time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.quitting || len(l.queue) == 0 {
		return nil, -1
	}
	now := l.clock.Now()
	head := l.queue[0]
	if head.when.After(now) {
		return nil, head.when.Sub(now)
	}
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return head, 0
}

func (l *Looper) dispatch(m *Message) {
	if m.fn != nil {
		m.fn()
		return
	}
	if m.target != nil && m.target.callback != nil {
		m.target.callback(*m)
	}
}

// Loop drains the queue until ctx is done or Quit is called.
func (l *Looper) Loop(ctx context.Context) error {
	for {
		msg, wait := l.pop()
		if msg != nil {
			l.dispatch(msg)
			continue
		}

		var timer clockwork.Timer
		var fire <-chan time.Time
		if wait >= 0 {
			timer = l.clock.NewTimer(wait)
			fire = timer.Chan()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			l.Quit()
			return ctx.Err()
		case <-l.quit:
			if timer != nil {
				timer.Stop()
			}
			return nil
		case <-l.wake:
		case <-fire:
		}
		if timer != nil {
			timer.Stop()
		}
	}
}

// Flush delivers, on the caller's goroutine, every message due at the
// looper clock's current time, including ones posted while flushing.
func (l *Looper) Flush() int {
	n := 0
	for {
		msg, _ := l.pop()
		if msg == nil {
			return n
		}
		l.dispatch(msg)
		n++
	}
}

// Quit drops pending messages and refuses new ones.
func (l *Looper) Quit() {
	l.mu.Lock()
	l.quitting = true
	l.queue = nil
	l.mu.Unlock()
	l.quitOnce.Do(func() { close(l.quit) })
}

// Pending returns the number of queued messages.
func (l *Looper) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

func (l *Looper) remove(h *Handler, match func(*Message) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.queue[:0]
	for _, m := range l.queue {
		if m.target == h && match(m) {
			continue
		}
		kept = append(kept, m)
	}
	for i := len(kept); i < len(l.queue); i++ {
		l.queue[i] = nil
	}
	l.queue = kept
}

func (l *Looper) has(h *Handler, what int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.queue {
		if m.target == h && m.fn == nil && m.What == what {
			return true
		}
	}
	return false
}
