package anim

import (
	"reflect"
	"testing"
	"time"
)

const ms = time.Millisecond

func TestTimersFireInDeadlineOrder(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.AfterFunc(30*ms, func() { got = append(got, "c") })
	s.AfterFunc(10*ms, func() { got = append(got, "a") })
	s.AfterFunc(10*ms, func() { got = append(got, "b") })

	s.Advance(5 * ms)
	if len(got) != 0 {
		t.Fatalf("no timer should fire before its deadline, got %v", got)
	}
	s.Advance(100 * ms)
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("fire order = %v, want %v", got, want)
	}
}

func TestTimerFiresAtExactVirtualTime(t *testing.T) {
	s := NewScheduler()
	var firedAt time.Duration
	s.AfterFunc(13*ms, func() { firedAt = s.Now() })
	s.Advance(time.Second / 60)
	if firedAt != 13*ms {
		t.Errorf("timer fired at %v, want 13ms", firedAt)
	}
	if s.Now() != time.Second/60 {
		t.Errorf("clock should end at the frame boundary, got %v", s.Now())
	}
}

func TestCancelTimer(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.AfterFunc(10*ms, func() { fired = true })
	if !s.TimerPending(id) {
		t.Fatal("timer should be pending")
	}
	if !s.Cancel(id) {
		t.Fatal("Cancel should report success")
	}
	if s.Cancel(id) {
		t.Error("second Cancel should report false")
	}
	s.Advance(time.Second)
	if fired {
		t.Error("cancelled timer must not fire")
	}
}

func TestSelfReschedulingTimerChain(t *testing.T) {
	s := NewScheduler()
	count := 0
	var stepFn func()
	stepFn = func() {
		count++
		if count < 5 {
			s.AfterFunc(13*ms, stepFn)
		}
	}
	s.AfterFunc(0, stepFn)

	s.Advance(40 * ms)
	if count != 4 {
		t.Errorf("after 40ms expected 4 steps (0,13,26,39), got %d", count)
	}
	s.Advance(time.Second)
	if count != 5 {
		t.Errorf("chain should stop at 5 steps, got %d", count)
	}
}
