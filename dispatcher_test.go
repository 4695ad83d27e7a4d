package main

import (
	"sync"
	"testing"
	"time"
)

// inlineDispatcher runs posted work on the calling goroutine.
type inlineDispatcher struct {
	mu    sync.Mutex
	sends int
}

func (d *inlineDispatcher) Do(fn func()) { fn() }

func (d *inlineDispatcher) DoAndWait(fn func()) {
	d.mu.Lock()
	d.sends++
	d.mu.Unlock()
	fn()
}

func (d *inlineDispatcher) Sends() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sends
}

// queueDispatcher stands in for the UI loop: work runs when the test flushes.
type queueDispatcher struct {
	mu    sync.Mutex
	queue []func()
}

func (q *queueDispatcher) Do(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.queue = append(q.queue, fn)
}

func (q *queueDispatcher) DoAndWait(fn func()) {
	done := make(chan struct{})
	q.Do(func() {
		fn()
		close(done)
	})
	<-done
}

func (q *queueDispatcher) flush() int {
	q.mu.Lock()
	queue := q.queue
	q.queue = nil
	q.mu.Unlock()

	for _, fn := range queue {
		fn()
	}
	return len(queue)
}

// flushUntil keeps flushing until done reports true.
func (q *queueDispatcher) flushUntil(t *testing.T, done func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for !done() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the UI queue")
		}
		if q.flush() == 0 {
			time.Sleep(5 * time.Millisecond)
		}
	}
}
