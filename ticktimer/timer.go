// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ticktimer

import (
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

var (
	// ErrTimerInUse is returned when arming a timer that is already armed.
	ErrTimerInUse = errors.New("ticktimer: timer already in use")
	// ErrPeriod is returned for a period that is not positive.
	ErrPeriod = errors.New("ticktimer: period must be positive")
)

// Timer is a periodic timer resource.
type Timer interface {
	// Arm calls fn every period until fn returns false or the timer is
	// disarmed. fn must not block.
	Arm(period time.Duration, fn func() bool) error
	// Disarm stops the timer and waits for a running callback to return. It
	// returns false if the timer was not armed.
	Disarm() bool
}

// ClockTimer is a Timer running its callback on its own goroutine.
//
// Each expiry is scheduled one period after the previous scheduled expiry,
// not after the callback returns, so callback latency does not accumulate.
// An expiry that is already late fires immediately.
type ClockTimer struct {
	clock clockwork.Clock

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewClockTimer returns a disarmed timer using clock. A nil clock selects the
// real time clock.
func NewClockTimer(clock clockwork.Clock) *ClockTimer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ClockTimer{clock: clock}
}

// Arm implements Timer.
func (t *ClockTimer) Arm(period time.Duration, fn func() bool) error {
	if period <= 0 {
		return ErrPeriod
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		select {
		case <-t.done:
			// The callback asked to stop, the resource is free again.
		default:
			return ErrTimerInUse
		}
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	next := t.clock.Now().Add(period)
	tm := t.clock.NewTimer(period)
	go t.run(tm, next, period, fn, t.stop, t.done)
	return nil
}

// Disarm implements Timer.
func (t *ClockTimer) Disarm() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop == nil {
		return false
	}
	close(t.stop)
	<-t.done
	t.stop = nil
	t.done = nil
	return true
}

func (t *ClockTimer) run(tm clockwork.Timer, next time.Time, period time.Duration, fn func() bool, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer tm.Stop()
	for {
		select {
		case <-stop:
			return
		case <-tm.Chan():
		}
		if !fn() {
			return
		}
		next = next.Add(period)
		tm.Reset(next.Sub(t.clock.Now()))
	}
}

var _ Timer = &ClockTimer{}
