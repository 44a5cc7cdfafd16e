package looper

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlushDeliversInPostOrder(t *testing.T) {
	l := New("test", clockwork.NewFakeClock())
	var got []int
	h := NewHandler(l, func(m Message) { got = append(got, m.What) })

	h.SendEmptyMessage(1)
	h.SendEmptyMessage(2)
	h.Post(func() { got = append(got, 3) })

	require.Equal(t, 3, l.Flush())
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestDelayedMessagesWaitForClock(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := New("test", clock)
	var got []int
	h := NewHandler(l, func(m Message) { got = append(got, m.What) })

	h.SendEmptyMessageDelayed(10, 2*time.Second)
	h.SendEmptyMessageDelayed(5, time.Second)
	h.SendEmptyMessage(1)

	l.Flush()
	assert.Equal(t, []int{1}, got)

	clock.Advance(time.Second)
	l.Flush()
	assert.Equal(t, []int{1, 5}, got)

	clock.Advance(time.Second)
	l.Flush()
	assert.Equal(t, []int{1, 5, 10}, got)
	assert.Zero(t, l.Pending())
}

func TestRemoveMessagesOnlyTouchesOwnHandler(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := New("test", clock)
	var a, b []int
	ha := NewHandler(l, func(m Message) { a = append(a, m.What) })
	hb := NewHandler(l, func(m Message) { b = append(b, m.What) })

	ha.SendEmptyMessageDelayed(7, time.Second)
	hb.SendEmptyMessageDelayed(7, time.Second)
	require.True(t, ha.HasMessages(7))

	ha.RemoveMessages(7)
	assert.False(t, ha.HasMessages(7))
	assert.True(t, hb.HasMessages(7))

	clock.Advance(time.Second)
	l.Flush()
	assert.Empty(t, a)
	assert.Equal(t, []int{7}, b)
}

func TestRemoveCallbacksAndMessages(t *testing.T) {
	l := New("test", clockwork.NewFakeClock())
	ran := false
	h := NewHandler(l, func(Message) { ran = true })
	h.SendEmptyMessage(1)
	h.Post(func() { ran = true })

	h.RemoveCallbacksAndMessages()
	l.Flush()
	assert.False(t, ran)
}

func TestQuitDropsLaterPosts(t *testing.T) {
	l := New("test", clockwork.NewFakeClock())
	h := NewHandler(l, nil)
	l.Quit()
	assert.False(t, h.Post(func() {}))
	assert.Zero(t, l.Pending())
}

func TestLoopRunsUntilCancelled(t *testing.T) {
	l := New("test", nil)
	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)
	done := make(chan error, 1)
	go func() { done <- l.Loop(ctx) }()

	h := NewHandler(l, nil)
	h.PostDelayed(func() { wg.Done() }, 10*time.Millisecond)
	wg.Wait()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}
