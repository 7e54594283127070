// Package anim 提供单线程的动画与定时器调度
//
// Scheduler 持有一个虚拟毫秒时钟，由宿主（ebiten 的 Update 或测试）调用 Advance 推进。
// 所有定时器回调和动画帧都在 Advance 中同步执行，不存在并发访问，因此无需加锁。
//
// 同一次 Advance 内的事件按时间顺序精确处理：
// 每个事件时间点先触发到期的定时器，再推进所有动画到该时间点。
// 动画结束时先写入最终值，再调用 Stopped(true)，最后调用 Teardown。
package anim

import (
	"log"
	"time"
)

// maxEventsPerAdvance 单次 Advance 处理的事件上限，防止回调反复注册零延迟事件导致死循环
const maxEventsPerAdvance = 10000

// Scheduler 定时器队列 + 动画推进器
type Scheduler struct {
	now         time.Duration
	timers      []*timer
	nextTimerID TimerID
	seq         uint64
	roots       []Animation
}

// NewScheduler 创建调度器，虚拟时钟从 0 开始
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make([]*timer, 0),
		roots:  make([]Animation, 0),
	}
}

// Now 返回当前虚拟时间
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Schedule 调度一个顶层动画，从当前时间开始计算延迟
// 已调度的动画会先被取消再重新调度
func (s *Scheduler) Schedule(a Animation) {
	if a == nil {
		return
	}
	if a.base().parent != nil {
		log.Printf("[Scheduler] Warning: cannot schedule a child animation directly")
		return
	}
	if s.rootIndex(a) >= 0 {
		s.Unschedule(a)
	}
	a.layout(s.now)
	s.roots = append(s.roots, a)
}

// Unschedule 取消动画
//
// 对顶层动画：整棵动画树停止，所有未结束的节点依次收到 Stopped(false)（若已开始）与 Teardown。
// 对子动画：仅该子树停止，所在组视其为已结束并继续播放其余部分。
func (s *Scheduler) Unschedule(a Animation) {
	if a == nil || !s.IsScheduled(a) {
		return
	}
	a.stop()
	s.prune()
}

// IsScheduled 判断动画是否处于调度中且尚未结束
func (s *Scheduler) IsScheduled(a Animation) bool {
	if a == nil || a.base().Done() {
		return false
	}
	return s.rootIndex(rootOf(a)) >= 0
}

// Active 返回当前调度中的顶层动画数量
func (s *Scheduler) Active() int {
	return len(s.roots)
}

// Advance 将虚拟时钟推进 dt，并按时间顺序处理期间的所有定时器与动画事件
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt

	s.runAt(s.now)
	for i := 0; i < maxEventsPerAdvance; i++ {
		t, ok := s.nextEventTime(target)
		if !ok {
			s.runAt(target)
			return
		}
		s.runAt(t)
	}
	log.Printf("[Scheduler] Warning: event limit reached at %v, skipping to %v", s.now, target)
	s.runAt(target)
}

func (s *Scheduler) runAt(t time.Duration) {
	s.now = t
	s.fireTimers(t)

	roots := make([]Animation, len(s.roots))
	copy(roots, s.roots)
	for _, a := range roots {
		a.step(t)
	}
	s.prune()
}

// nextEventTime 返回 target 之前最早的待处理时间点
func (s *Scheduler) nextEventTime(target time.Duration) (time.Duration, bool) {
	best, found := time.Duration(0), false
	if len(s.timers) > 0 && s.timers[0].deadline <= target {
		best, found = s.timers[0].deadline, true
	}
	for _, a := range s.roots {
		t, ok := a.boundary(s.now)
		if !ok || t > target {
			continue
		}
		if !found || t < best {
			best, found = t, true
		}
	}
	if found && best < s.now {
		best = s.now
	}
	// 所有当前时刻的事件已处理完，只有新注册的到期定时器才需要再次处理
	if found && best == s.now && !s.hasDueWork() {
		return 0, false
	}
	return best, found
}

// hasDueWork 当前时刻是否还有未处理的定时器或待开始的动画
func (s *Scheduler) hasDueWork() bool {
	if len(s.timers) > 0 && s.timers[0].deadline <= s.now {
		return true
	}
	for _, a := range s.roots {
		if t, ok := a.boundary(s.now); ok && t <= s.now {
			return true
		}
	}
	return false
}

func (s *Scheduler) prune() {
	kept := s.roots[:0]
	for _, a := range s.roots {
		if !a.base().Done() {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(s.roots); i++ {
		s.roots[i] = nil
	}
	s.roots = kept
}

func (s *Scheduler) rootIndex(a Animation) int {
	for i, r := range s.roots {
		if r == a {
			return i
		}
	}
	return -1
}

func rootOf(a Animation) Animation {
	for a.base().parent != nil {
		a = a.base().parent
	}
	return a
}
