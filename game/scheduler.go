package game

import (
	"time"
)

// Scheduler drives Controller.Tick at a fixed interval.
//
// Schedule replaces whatever repetition is pending with a fresh one; the
// elapsed part of the old interval is discarded. Cancel stops ticking.
type Scheduler interface {
	Schedule(interval time.Duration)
	Cancel()
}

// TickerScheduler exposes ticks on a channel for a select based loop. The loop
// that reads C must be the one that calls Tick, so rescheduling from inside a
// tick never races with delivery.
type TickerScheduler struct {
	ticker   *time.Ticker
	interval time.Duration
	active   bool
}

func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

func (s *TickerScheduler) Schedule(interval time.Duration) {
	if s.ticker == nil {
		s.ticker = time.NewTicker(interval)
	} else {
		// Reset drops any tick of the old period that was not yet received
		s.ticker.Reset(interval)
	}
	s.interval = interval
	s.active = true
}

func (s *TickerScheduler) Cancel() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.active = false
}

// C returns the tick channel, or nil while cancelled so a select blocks on it.
func (s *TickerScheduler) C() <-chan time.Time {
	if !s.active || s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

func (s *TickerScheduler) Interval() time.Duration {
	return s.interval
}

// Stop releases the ticker for good.
func (s *TickerScheduler) Stop() {
	s.Cancel()
	s.ticker = nil
}

// FrameScheduler is polled from a render loop. It fires at most once per poll,
// so a slow frame delays a tick instead of doubling it.
type FrameScheduler struct {
	now      func() time.Time
	interval time.Duration
	last     time.Time
	active   bool
}

func NewFrameScheduler(now func() time.Time) *FrameScheduler {
	if now == nil {
		now = time.Now
	}
	return &FrameScheduler{now: now}
}

func (s *FrameScheduler) Schedule(interval time.Duration) {
	s.interval = interval
	s.last = s.now()
	s.active = true
}

func (s *FrameScheduler) Cancel() {
	s.active = false
}

// Due reports whether a tick should run now and, if so, starts the next period.
func (s *FrameScheduler) Due() bool {
	if !s.active {
		return false
	}
	now := s.now()
	if now.Sub(s.last) < s.interval {
		return false
	}
	s.last = now
	return true
}

func (s *FrameScheduler) Active() bool {
	return s.active
}

func (s *FrameScheduler) Interval() time.Duration {
	return s.interval
}
