// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ticktimer counts the expiries of a fast periodic timer.
//
// A Sampler arms a Timer whose callback only increments a counter and, every
// ReportEvery ticks, raises a flag. The host side polls the flag and can
// busy-wait on the counter to measure how long a number of ticks takes.
//
// The counter and the flag are the only state shared with the callback. The
// callback is the only writer of the counter and the only setter of the flag;
// Poll is the only clearer of the flag. Start, Stop, Poll and Measure are
// meant to be called from a single goroutine.
package ticktimer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultPeriod is the tick period, about 44.1kHz.
	DefaultPeriod = 23 * time.Microsecond
	// DefaultReportEvery is the number of ticks between two reports.
	DefaultReportEvery = 1000
)

// ErrStart is returned when the timer cannot be armed.
var ErrStart = errors.New("failed to start timer")

// Opts holds the options of a Sampler. The zero value selects the defaults.
type Opts struct {
	Period      time.Duration
	ReportEvery uint32
	// Clock is used to measure elapsed time and, when Timer is nil, to drive
	// the default ClockTimer.
	Clock clockwork.Clock
	Timer Timer
	// Out receives the reports of Poll and Measure. Defaults to os.Stdout.
	Out io.Writer
	Log *logrus.Entry
}

// Measurement is the result of Measure.
type Measurement struct {
	Ticks   uint32
	Elapsed time.Duration
}

func (m Measurement) String() string {
	return fmt.Sprintf("%d ticks in %d us", m.Ticks, m.Elapsed.Microseconds())
}

// Sampler is the tick counter state, stopped until Start is called.
type Sampler struct {
	ticks atomic.Uint32
	ready atomic.Bool

	period      time.Duration
	reportEvery uint32
	clock       clockwork.Clock
	timer       Timer
	out         io.Writer
	log         *logrus.Entry
	running     bool
}

// New returns a stopped Sampler.
func New(opts *Opts) *Sampler {
	if opts == nil {
		opts = &Opts{}
	}
	s := &Sampler{
		period:      opts.Period,
		reportEvery: opts.ReportEvery,
		clock:       opts.Clock,
		timer:       opts.Timer,
		out:         opts.Out,
		log:         opts.Log,
	}
	if s.period == 0 {
		s.period = DefaultPeriod
	}
	if s.reportEvery == 0 {
		s.reportEvery = DefaultReportEvery
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.timer == nil {
		s.timer = NewClockTimer(s.clock)
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.log == nil {
		s.log = logrus.NewEntry(logrus.StandardLogger())
	}
	return s
}

// Start arms the timer.
func (s *Sampler) Start() error {
	if err := s.timer.Arm(s.period, s.tick); err != nil {
		s.log.WithError(err).Debug("arming tick timer")
		return fmt.Errorf("%w: %w", ErrStart, err)
	}
	s.running = true
	s.log.WithField("period", s.period).Debug("tick timer started")
	return nil
}

// Stop disarms the timer. Stopping a stopped Sampler does nothing.
func (s *Sampler) Stop() {
	if s.timer.Disarm() {
		s.log.WithField("ticks", s.ticks.Load()).Debug("tick timer stopped")
	}
	s.running = false
}

// Running returns true between Start and Stop.
func (s *Sampler) Running() bool {
	return s.running
}

// Ticks returns the number of ticks counted so far. It wraps around.
func (s *Sampler) Ticks() uint32 {
	return s.ticks.Load()
}

// tick is the timer callback.
func (s *Sampler) tick() bool {
	if s.ticks.Add(1)%s.reportEvery == 0 {
		s.ready.Store(true)
	}
	return true
}

// Poll writes a report of the tick count if one is due and returns true if
// it did.
func (s *Sampler) Poll() bool {
	if !s.ready.CompareAndSwap(true, false) {
		return false
	}
	fmt.Fprintf(s.out, "Tick: %d\n", s.ticks.Load())
	return true
}

// Measure spins until at least n more ticks have been counted, then writes
// and returns how long that took.
//
// Measure occupies the calling goroutine for the whole wait and never
// returns if the Sampler is stopped.
func (s *Sampler) Measure(n uint32) Measurement {
	start := s.clock.Now()
	startTicks := s.ticks.Load()
	for s.ticks.Load()-startTicks < n {
		runtime.Gosched()
	}
	m := Measurement{Ticks: n, Elapsed: s.clock.Since(start)}
	fmt.Fprintf(s.out, "%s\n", m)
	return m
}
