package anim

import (
	"image"
	"math"
	"time"
)

// Handlers 动画生命周期回调
//
//   - Started: 延迟结束、动画真正开始时调用
//   - Stopped: 动画结束时调用，finished=false 表示被提前取消；未开始的动画不会调用
//   - Teardown: 动画离开调度器时总是调用（在 Stopped 之后），用于释放中间值
type Handlers struct {
	Started  func()
	Stopped  func(finished bool)
	Teardown func()
}

// Animation 可被 Scheduler 调度的动画
// 由 Property、Sequence、Spawn 实现
type Animation interface {
	// SetDelay 设置开始前的延迟
	SetDelay(d time.Duration)
	// SetHandlers 设置生命周期回调
	SetHandlers(h Handlers)
	// Delay 返回开始前的延迟
	Delay() time.Duration
	// Span 返回从调度到结束的总时长（含延迟）
	Span() time.Duration

	base() *node
	layout(at time.Duration) time.Duration
	step(now time.Duration)
	stop()
	boundary(now time.Duration) (time.Duration, bool)
}

type nodeState int

const (
	statePending nodeState = iota
	stateRunning
	stateDone
)

// node 动画公共状态
type node struct {
	delay    time.Duration
	handlers Handlers
	parent   Animation

	start time.Duration // 绝对开始时间（调度时计算）
	end   time.Duration // 绝对结束时间
	state nodeState
}

func (n *node) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	n.delay = d
}

func (n *node) SetHandlers(h Handlers) {
	n.handlers = h
}

func (n *node) Delay() time.Duration {
	return n.delay
}

func (n *node) base() *node {
	return n
}

// Running 动画是否已开始且尚未结束
func (n *node) Running() bool {
	return n.state == stateRunning
}

// Done 动画是否已结束（完成或被取消）
func (n *node) Done() bool {
	return n.state == stateDone
}

func (n *node) begin() {
	n.state = stateRunning
	if n.handlers.Started != nil {
		n.handlers.Started()
	}
}

func (n *node) finish(finished bool) {
	started := n.state == stateRunning
	n.state = stateDone
	if started && n.handlers.Stopped != nil {
		n.handlers.Stopped(finished)
	}
	if n.handlers.Teardown != nil {
		n.handlers.Teardown()
	}
}

// pendingBoundary 返回节点下一个需要精确处理的时间点
func (n *node) pendingBoundary(now time.Duration) (time.Duration, bool) {
	switch n.state {
	case statePending:
		if n.start < now {
			return now, true
		}
		return n.start, true
	case stateRunning:
		return n.end, true
	}
	return 0, false
}

// Property 属性动画：在 from 和 to 之间插值，并通过 setter 写回
type Property[T any] struct {
	node
	from     T
	to       T
	duration time.Duration
	curve    Curve
	lerp     func(from, to T, t float64) T
	set      func(T)
}

// NewProperty 创建属性动画
//
// 参数：
//   - from, to: 起止值（构造时确定）
//   - duration: 时长
//   - lerp: 插值函数，t 为已应用曲线的进度
//   - set: 每帧写回插值结果
func NewProperty[T any](from, to T, duration time.Duration, lerp func(from, to T, t float64) T, set func(T)) *Property[T] {
	if duration < 0 {
		duration = 0
	}
	return &Property[T]{
		from:     from,
		to:       to,
		duration: duration,
		curve:    CurveLinear,
		lerp:     lerp,
		set:      set,
	}
}

// SetCurve 设置动画曲线
func (p *Property[T]) SetCurve(c Curve) {
	p.curve = c
}

// Curve 返回动画曲线
func (p *Property[T]) Curve() Curve {
	return p.curve
}

// From 返回起始值
func (p *Property[T]) From() T {
	return p.from
}

// To 返回目标值
func (p *Property[T]) To() T {
	return p.to
}

// Duration 返回不含延迟的时长
func (p *Property[T]) Duration() time.Duration {
	return p.duration
}

func (p *Property[T]) Span() time.Duration {
	return p.delay + p.duration
}

func (p *Property[T]) layout(at time.Duration) time.Duration {
	p.state = statePending
	p.start = at + p.delay
	p.end = p.start + p.duration
	return p.end
}

func (p *Property[T]) step(now time.Duration) {
	if p.state == stateDone {
		return
	}
	if p.state == statePending {
		if now < p.start {
			return
		}
		p.begin()
		if p.state != stateRunning {
			return
		}
	}

	progress := 1.0
	if p.duration > 0 && now < p.end {
		progress = float64(now-p.start) / float64(p.duration)
	}
	if p.set != nil {
		p.set(p.lerp(p.from, p.to, p.curve.Apply(progress)))
	}
	if now >= p.end && p.state == stateRunning {
		p.finish(true)
	}
}

func (p *Property[T]) stop() {
	if p.state != stateDone {
		p.finish(false)
	}
}

func (p *Property[T]) boundary(now time.Duration) (time.Duration, bool) {
	return p.pendingBoundary(now)
}

// LerpInt16 整数插值（四舍五入）
func LerpInt16(from, to int16, t float64) int16 {
	return int16(math.Round(float64(from) + (float64(to)-float64(from))*t))
}

// LerpPoint 坐标插值（四舍五入）
func LerpPoint(from, to image.Point, t float64) image.Point {
	return image.Point{
		X: int(math.Round(float64(from.X) + float64(to.X-from.X)*t)),
		Y: int(math.Round(float64(from.Y) + float64(to.Y-from.Y)*t)),
	}
}

// NewInt16 创建 int16 属性动画
func NewInt16(from, to int16, duration time.Duration, set func(int16)) *Property[int16] {
	return NewProperty(from, to, duration, LerpInt16, set)
}

// NewPoint 创建坐标属性动画（用于图层偏移）
func NewPoint(from, to image.Point, duration time.Duration, set func(image.Point)) *Property[image.Point] {
	return NewProperty(from, to, duration, LerpPoint, set)
}
