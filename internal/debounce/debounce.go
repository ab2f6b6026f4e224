// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package debounce provides a cancellable delayed task. Each Schedule call
// cancels whatever is pending and starts the delay again, so at most one
// task fires per quiet period and superseded tasks never run.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period used for search input.
const DefaultDelay = 300 * time.Millisecond

// Debouncer runs the most recently scheduled task once the delay elapses
// without another Schedule call. It is safe for concurrent use.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	gen     uint64 // incremented on every Schedule and Cancel
	stopped bool
}

// New creates a Debouncer with the given delay. A non-positive delay uses
// DefaultDelay.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Delay returns the configured quiet period.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Schedule cancels any pending task and arranges for fn to run after the
// delay. It returns the generation assigned to fn. Calls after Stop are
// ignored and return 0.
func (d *Debouncer) Schedule(fn func()) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return 0
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen, fn) })
	return gen
}

// fire runs fn only if no newer Schedule or Cancel happened since it was
// scheduled. A timer that already fired cannot be stopped, so the
// generation check is what discards stale tasks.
func (d *Debouncer) fire(gen uint64, fn func()) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	fn()
}

// Current reports whether gen is still the latest scheduled generation.
// Receivers of asynchronous results use it to drop stale ones.
func (d *Debouncer) Current(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return gen != 0 && gen == d.gen
}

// Cancel discards the pending task, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

// Stop cancels the pending task and makes every later Schedule a no-op.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.stopped = true
}
