package anim

import "time"

// Group 组合动画
// Sequence 依次播放子动画；Spawn 同时开始所有子动画，最后一个结束时整体结束
type Group struct {
	node
	children []Animation
	parallel bool
}

// NewSequence 创建顺序动画，子动画各自的延迟仍然生效
func NewSequence(children ...Animation) *Group {
	return newGroup(false, children)
}

// NewSpawn 创建并行动画
func NewSpawn(children ...Animation) *Group {
	return newGroup(true, children)
}

func newGroup(parallel bool, children []Animation) *Group {
	g := &Group{parallel: parallel}
	for _, c := range children {
		if c == nil {
			continue
		}
		c.base().parent = g
		g.children = append(g.children, c)
	}
	return g
}

// Children 返回子动画
func (g *Group) Children() []Animation {
	return g.children
}

// Parallel 是否为并行组
func (g *Group) Parallel() bool {
	return g.parallel
}

func (g *Group) Span() time.Duration {
	var total time.Duration
	for _, c := range g.children {
		if g.parallel {
			if s := c.Span(); s > total {
				total = s
			}
		} else {
			total += c.Span()
		}
	}
	return g.delay + total
}

func (g *Group) layout(at time.Duration) time.Duration {
	g.state = statePending
	g.start = at + g.delay
	g.end = g.start
	cursor := g.start
	for _, c := range g.children {
		if g.parallel {
			if e := c.layout(g.start); e > g.end {
				g.end = e
			}
		} else {
			cursor = c.layout(cursor)
			g.end = cursor
		}
	}
	return g.end
}

func (g *Group) step(now time.Duration) {
	if g.state == stateDone {
		return
	}
	if g.state == statePending {
		if now < g.start {
			return
		}
		g.begin()
		if g.state != stateRunning {
			return
		}
	}
	for _, c := range g.children {
		c.step(now)
		if g.state != stateRunning {
			// 子动画回调中取消了整个组
			return
		}
	}
	if g.allDone() {
		g.finish(true)
	}
}

func (g *Group) allDone() bool {
	for _, c := range g.children {
		if !c.base().Done() {
			return false
		}
	}
	return true
}

func (g *Group) stop() {
	if g.state == stateDone {
		return
	}
	for _, c := range g.children {
		c.stop()
	}
	g.finish(false)
}

func (g *Group) boundary(now time.Duration) (time.Duration, bool) {
	switch g.state {
	case stateDone:
		return 0, false
	case statePending:
		return g.pendingBoundary(now)
	}
	best, found := time.Duration(0), false
	for _, c := range g.children {
		if t, ok := c.boundary(now); ok && (!found || t < best) {
			best, found = t, true
		}
	}
	if !found {
		return g.end, true
	}
	return best, true
}
