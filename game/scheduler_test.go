package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFrameSchedulerFiresOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewFrameScheduler(clock.now)
	assert.False(t, s.Due())

	s.Schedule(100 * time.Millisecond)
	assert.False(t, s.Due())

	clock.advance(99 * time.Millisecond)
	assert.False(t, s.Due())

	clock.advance(time.Millisecond)
	assert.True(t, s.Due())
	assert.False(t, s.Due())

	// a long frame still yields a single tick
	clock.advance(350 * time.Millisecond)
	assert.True(t, s.Due())
	assert.False(t, s.Due())
}

func TestFrameSchedulerRescheduleRestartsPeriod(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewFrameScheduler(clock.now)
	s.Schedule(100 * time.Millisecond)

	clock.advance(90 * time.Millisecond)
	s.Schedule(50 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, s.Interval())

	clock.advance(40 * time.Millisecond)
	assert.False(t, s.Due())
	clock.advance(10 * time.Millisecond)
	assert.True(t, s.Due())
}

func TestFrameSchedulerCancel(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewFrameScheduler(clock.now)
	s.Schedule(10 * time.Millisecond)
	s.Cancel()
	assert.False(t, s.Active())

	clock.advance(time.Second)
	assert.False(t, s.Due())
}

func TestTickerScheduler(t *testing.T) {
	s := NewTickerScheduler()
	defer s.Stop()
	assert.Nil(t, s.C())

	s.Schedule(5 * time.Millisecond)
	require.NotNil(t, s.C())
	select {
	case <-s.C():
	case <-time.After(time.Second):
		t.Fatal("no tick within a second")
	}

	s.Schedule(time.Hour)
	assert.Equal(t, time.Hour, s.Interval())
	select {
	case <-s.C():
		t.Fatal("stale tick after reschedule")
	case <-time.After(20 * time.Millisecond):
	}

	s.Cancel()
	assert.Nil(t, s.C())
}

func TestControllerDrivenByFrameScheduler(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	sched := NewFrameScheduler(clock.now)
	c := NewController(DefaultRules(), Options{
		Scheduler: sched,
		Random:    &queueSource{values: []int{15, 15}},
		Clock:     clock.now,
	})
	c.Start()

	for i := 0; i < 3; i++ {
		clock.advance(150 * time.Millisecond)
		if sched.Due() {
			c.Tick()
		}
	}
	assert.Equal(t, 8, c.Frame().Body[0].X)

	c.TogglePause()
	clock.advance(time.Second)
	assert.False(t, sched.Due())
}
