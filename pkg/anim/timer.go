package anim

import "time"

// TimerID 定时器标识，0 表示无效
type TimerID uint64

type timer struct {
	id       TimerID
	deadline time.Duration
	seq      uint64
	fn       func()
}

// AfterFunc 注册一个在 d 之后触发的一次性定时器
//
// 定时器只会在 Advance 中、UI 线程上触发。
// 截止时间相同的定时器按注册顺序触发。
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	s.nextTimerID++
	s.seq++
	t := &timer{
		id:       s.nextTimerID,
		deadline: s.now + d,
		seq:      s.seq,
		fn:       fn,
	}

	// 按 (deadline, seq) 插入，保持有序
	i := len(s.timers)
	for i > 0 {
		prev := s.timers[i-1]
		if prev.deadline < t.deadline || (prev.deadline == t.deadline && prev.seq < t.seq) {
			break
		}
		i--
	}
	s.timers = append(s.timers, nil)
	copy(s.timers[i+1:], s.timers[i:])
	s.timers[i] = t
	return t.id
}

// Cancel 取消尚未触发的定时器，返回是否确实取消了
func (s *Scheduler) Cancel(id TimerID) bool {
	if id == 0 {
		return false
	}
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// TimerPending 判断定时器是否仍在等待触发
func (s *Scheduler) TimerPending(id TimerID) bool {
	if id == 0 {
		return false
	}
	for _, t := range s.timers {
		if t.id == id {
			return true
		}
	}
	return false
}

// fireTimers 触发所有截止时间不晚于 now 的定时器
// 回调中新注册的、同样已到期的定时器也会在本轮触发
func (s *Scheduler) fireTimers(now time.Duration) {
	for len(s.timers) > 0 && s.timers[0].deadline <= now {
		t := s.timers[0]
		s.timers = s.timers[1:]
		t.fn()
	}
}
