// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ticktimer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockTimerSchedule(t *testing.T) {
	fc := clockwork.NewFakeClock()
	start := fc.Now()
	timer := NewClockTimer(fc)
	fired := make(chan time.Time, 16)
	require.NoError(t, timer.Arm(10*time.Microsecond, func() bool {
		fired <- fc.Now()
		return true
	}))
	defer timer.Disarm()

	// One big jump: late expiries fire back to back on their original
	// schedule.
	fc.BlockUntil(1)
	fc.Advance(35 * time.Microsecond)
	for i := 1; i <= 3; i++ {
		got := <-fired
		assert.False(t, got.Before(start.Add(time.Duration(i)*10*time.Microsecond)), "fire %d at %s", i, got.Sub(start))
	}
	// The next expiry is at 40us, not 10us after the late handling.
	fc.BlockUntil(1)
	fc.Advance(4 * time.Microsecond)
	select {
	case <-fired:
		t.Fatal("fired early")
	default:
	}
	fc.Advance(time.Microsecond)
	got := <-fired
	assert.Equal(t, 40*time.Microsecond, got.Sub(start))
}

func TestClockTimerStopsOnFalse(t *testing.T) {
	fc := clockwork.NewFakeClock()
	timer := NewClockTimer(fc)
	var n atomic.Int32
	require.NoError(t, timer.Arm(time.Millisecond, func() bool {
		return n.Add(1) < 2
	}))
	fc.BlockUntil(1)
	fc.Advance(time.Millisecond)
	fc.BlockUntil(1)
	fc.Advance(time.Millisecond)
	fc.Advance(10 * time.Millisecond)
	assert.Eventually(t, func() bool { return n.Load() == 2 }, time.Second, time.Millisecond)

	// The resource can be armed again once the callback gave up.
	assert.Eventually(t, func() bool {
		if err := timer.Arm(time.Millisecond, func() bool { return true }); err != nil {
			return false
		}
		return true
	}, time.Second, time.Millisecond)
	assert.True(t, timer.Disarm())
	assert.Equal(t, int32(2), n.Load())
}

func TestClockTimerErrors(t *testing.T) {
	timer := NewClockTimer(clockwork.NewFakeClock())
	assert.ErrorIs(t, timer.Arm(0, func() bool { return true }), ErrPeriod)
	assert.False(t, timer.Disarm())
	require.NoError(t, timer.Arm(time.Second, func() bool { return true }))
	assert.ErrorIs(t, timer.Arm(time.Second, func() bool { return true }), ErrTimerInUse)
	assert.True(t, timer.Disarm())
	assert.False(t, timer.Disarm())
}
