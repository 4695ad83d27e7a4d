package main

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

type Priority int

const (
	// PriorityIdle queues the action on the UI loop and returns.
	PriorityIdle Priority = iota
	// PrioritySend holds the timer goroutine until the UI loop has run the action.
	PrioritySend
)

// Dispatcher posts work onto a UI event loop.
type Dispatcher interface {
	Do(func())
	DoAndWait(func())
}

type fyneDispatcher struct{}

func (fyneDispatcher) Do(fn func())        { fyne.Do(fn) }
func (fyneDispatcher) DoAndWait(fn func()) { fyne.DoAndWait(fn) }

// DebounceDispatcher collapses bursts of calls into one delayed action. At
// most one timer is pending; every call replaces the previous one.
type DebounceDispatcher[T any] struct {
	mu           sync.Mutex
	timer        *time.Timer
	generation   uint64
	timerStarted time.Time
}

// Debounce restarts the wait: action(param) runs once on disp after interval
// has passed without another Debounce, Throttle or Cancel. A nil disp posts to
// the Fyne event loop.
func (d *DebounceDispatcher[T]) Debounce(interval time.Duration, action func(T), param T, priority Priority, disp Dispatcher) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.timerStarted = time.Now()
	d.startLocked(interval, action, param, priority, disp)
}

// Throttle fires action at most once per interval, always with the parameters
// of the most recent call.
func (d *DebounceDispatcher[T]) Throttle(interval time.Duration, action func(T), param T, priority Priority, disp Dispatcher) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	if d.timer == nil {
		d.timerStarted = now
	}
	remaining := max(interval-now.Sub(d.timerStarted), 0)

	d.stopLocked()
	d.startLocked(remaining, action, param, priority, disp)
}

// Cancel drops the pending action, if any.
func (d *DebounceDispatcher[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
}

func (d *DebounceDispatcher[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.timer != nil
}

func (d *DebounceDispatcher[T]) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.generation++
}

func (d *DebounceDispatcher[T]) startLocked(interval time.Duration, action func(T), param T, priority Priority, disp Dispatcher) {
	if disp == nil {
		disp = fyneDispatcher{}
	}

	gen := d.generation
	fire := func() {
		// A timer can fire after it was replaced; only the current one runs.
		d.mu.Lock()
		if d.timer == nil || d.generation != gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		action(param)
	}

	d.timer = time.AfterFunc(interval, func() {
		if priority == PrioritySend {
			disp.DoAndWait(fire)
		} else {
			disp.Do(fire)
		}
	})
}
