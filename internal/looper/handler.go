package looper

import "time"

// Handler posts messages to a Looper and receives them back on the
// looper goroutine.
type Handler struct {
	looper   *Looper
	callback func(Message)
}

// NewHandler binds callback to l. callback may be nil for post-only handlers.
func NewHandler(l *Looper, callback func(Message)) *Handler {
	return &Handler{looper: l, callback: callback}
}

func (h *Handler) Looper() *Looper { return h.looper }

// Now is the looper clock's current time.
func (h *Handler) Now() time.Time { return h.looper.clock.Now() }

func (h *Handler) SendMessage(what int, obj any) bool {
	return h.SendMessageDelayed(what, obj, 0)
}

func (h *Handler) SendMessageDelayed(what int, obj any, delay time.Duration) bool {
	return h.looper.enqueue(&Message{What: what, Obj: obj, target: h}, delay)
}

func (h *Handler) SendEmptyMessage(what int) bool {
	return h.SendMessageDelayed(what, nil, 0)
}

func (h *Handler) SendEmptyMessageDelayed(what int, delay time.Duration) bool {
	return h.SendMessageDelayed(what, nil, delay)
}

// Post runs fn on the looper goroutine.
func (h *Handler) Post(fn func()) bool {
	return h.PostDelayed(fn, 0)
}

func (h *Handler) PostDelayed(fn func(), delay time.Duration) bool {
	return h.looper.enqueue(&Message{fn: fn, target: h}, delay)
}

// RemoveMessages drops pending messages with the given code.
func (h *Handler) RemoveMessages(what int) {
	h.looper.remove(h, func(m *Message) bool { return m.fn == nil && m.What == what })
}

// RemoveCallbacksAndMessages drops everything this handler has queued.
func (h *Handler) RemoveCallbacksAndMessages() {
	h.looper.remove(h, func(*Message) bool { return true })
}

func (h *Handler) HasMessages(what int) bool {
	return h.looper.has(h, what)
}
