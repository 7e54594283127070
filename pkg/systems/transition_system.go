package systems

import (
	"fmt"
	"image"
	"log"

	"github.com/decker502/transitface/pkg/anim"
	"github.com/decker502/transitface/pkg/components"
	"github.com/decker502/transitface/pkg/config"
	"github.com/decker502/transitface/pkg/ecs"
	"github.com/decker502/transitface/pkg/entities"
	"github.com/decker502/transitface/pkg/transit"
)

// Direction 导航方向
type Direction int

const (
	// DirectionForward 下一条记录（下键）
	DirectionForward Direction = iota
	// DirectionBackward 上一条记录（上键）
	DirectionBackward
)

func (d Direction) String() string {
	if d == DirectionForward {
		return "forward"
	}
	return "backward"
}

// sign 内容移动方向：向前时内容向上滚出（负 Y）
func (d Direction) sign() int {
	if d == DirectionForward {
		return -1
	}
	return 1
}

// TransitionState 过渡动画状态
type TransitionState int

const (
	TransitionIdle TransitionState = iota
	TransitionScheduled
	TransitionRunning
	TransitionRubberBand
)

func (s TransitionState) String() string {
	switch s {
	case TransitionIdle:
		return "idle"
	case TransitionScheduled:
		return "scheduled"
	case TransitionRunning:
		return "running"
	case TransitionRubberBand:
		return "rubberBand"
	}
	return fmt.Sprintf("TransitionState(%d)", int(s))
}

// TransitionPart 组合动画的组成部分
type TransitionPart string

const (
	PartPanel     TransitionPart = "panel"
	PartVehicle   TransitionPart = "vehicle"
	PartColor     TransitionPart = "color"
	PartCountdown TransitionPart = "countdown"
	PartBounce    TransitionPart = "bounce"
)

// Redrawer 接收重绘请求
type Redrawer interface {
	Redraw()
}

// TransitionSystem 记录切换的过渡动画
//
// 一次导航构造一个组合动画并交给调度器：
//   - 到达列表边界时只播放描述面板的回弹（RubberBand）
//   - 否则并行播放面板滚动、车辆滑动、侧栏颜色渐变和倒计时渐变
//
// 记录索引只在面板滚出结束时改变；颜色和倒计时的目标值在构造时读取。
type TransitionSystem struct {
	scheduler *anim.Scheduler
	routes    *transit.RouteList
	overrides *transit.Overrides
	doors     *DoorSpriteSystem
	redrawer  Redrawer
	timing    config.Timing

	panel   *components.LayerComponent
	vehicle *components.LayerComponent

	state   TransitionState
	active  anim.Animation
	parts   []TransitionPart
	redraws int
	trace   func(event string)
}

// NewTransitionSystem 创建过渡动画系统
//
// 参数：
//   - em, layers: 图层实体（描述面板和车辆图层会被移动）
//   - routes, overrides: 记录列表和动画中间值
//   - doors: 车门精灵播放器
//   - redrawer: 重绘目标
func NewTransitionSystem(
	scheduler *anim.Scheduler,
	em *ecs.EntityManager,
	layers *entities.FaceLayers,
	routes *transit.RouteList,
	overrides *transit.Overrides,
	doors *DoorSpriteSystem,
	redrawer Redrawer,
	timing config.Timing,
) *TransitionSystem {
	return &TransitionSystem{
		scheduler: scheduler,
		routes:    routes,
		overrides: overrides,
		doors:     doors,
		redrawer:  redrawer,
		timing:    timing,
		panel:     entities.Layer(em, layers.Description),
		vehicle:   entities.Layer(em, layers.Vehicle),
	}
}

// SetTrace 设置事件跟踪回调（调试工具使用）
func (ts *TransitionSystem) SetTrace(fn func(event string)) {
	ts.trace = fn
}

// State 返回当前状态
func (ts *TransitionSystem) State() TransitionState {
	return ts.state
}

// ActiveKinds 返回最近一次构造的组合动画包含的部分
func (ts *TransitionSystem) ActiveKinds() []TransitionPart {
	out := make([]TransitionPart, len(ts.parts))
	copy(out, ts.parts)
	return out
}

// Redraws 返回已触发的重绘次数
func (ts *TransitionSystem) Redraws() int {
	return ts.redraws
}

// Busy 是否有过渡动画在调度中
func (ts *TransitionSystem) Busy() bool {
	return ts.active != nil && ts.scheduler.IsScheduled(ts.active)
}

// Navigate 响应一次导航输入
func (ts *TransitionSystem) Navigate(dir Direction) {
	if !ts.routes.Ready() {
		log.Printf("[TransitionSystem] Ignoring %s navigation: %s", dir, ts.routes.Status().Text())
		return
	}

	ts.Cancel()

	var canMove bool
	if dir == DirectionForward {
		canMove = ts.routes.CanAdvance()
	} else {
		canMove = ts.routes.CanRetreat()
	}

	if !canMove {
		ts.scheduleBounce(dir)
		return
	}
	ts.scheduleTransition(dir)
}

// Cancel 停止正在进行的过渡动画，图层复位到静止位置
//
// 已经开始的面板滚出被打断时仍会提交索引变化。
func (ts *TransitionSystem) Cancel() {
	if ts.active != nil && ts.scheduler.IsScheduled(ts.active) {
		log.Printf("[TransitionSystem] Interrupting %s transition", ts.state)
		ts.scheduler.Unschedule(ts.active)
	}
	ts.active = nil
	ts.panel.SnapToRest()
	ts.vehicle.SnapToRest()
	ts.setState(TransitionIdle)
}

func (ts *TransitionSystem) scheduleBounce(dir Direction) {
	from := image.Pt(0, dir.sign()*config.PanelScrollInDistance)
	bounce := anim.NewPoint(from, image.Point{}, config.PanelScrollDuration, ts.setPanelOffset)
	bounce.SetCurve(anim.CurveEaseOut)
	bounce.SetHandlers(anim.Handlers{
		Started: func() { ts.emit("bounce started") },
		Stopped: func(finished bool) {
			ts.emit(fmt.Sprintf("bounce stopped finished=%v", finished))
		},
		Teardown: func() {
			ts.setState(TransitionIdle)
		},
	})

	ts.parts = []TransitionPart{PartBounce}
	ts.active = bounce
	ts.setState(TransitionRubberBand)
	ts.scheduler.Schedule(bounce)
}

func (ts *TransitionSystem) scheduleTransition(dir Direction) {
	current, _ := ts.routes.Current()
	var target transit.RouteRecord
	if dir == DirectionForward {
		target, _ = ts.routes.PeekNext()
	} else {
		target, _ = ts.routes.PeekPrev()
	}

	// 车门先全开，随后逐帧关闭
	ts.doors.SetOpen()
	ts.doors.CloseAfter(0)

	panel := ts.buildPanel(dir)
	vehicle := ts.buildVehicle(dir)
	colorFade := ts.buildColorFade(current.Color, target.Color)
	countdownFade := ts.buildCountdownFade(current.Time, target.Time)

	group := anim.NewSpawn(panel, vehicle, colorFade, countdownFade)
	group.SetHandlers(anim.Handlers{
		Started: func() {
			ts.setState(TransitionRunning)
			ts.emit("transition started")
		},
		Stopped: func(finished bool) {
			ts.emit(fmt.Sprintf("transition stopped finished=%v", finished))
			ts.redraw()
		},
		Teardown: func() {
			ts.setState(TransitionIdle)
		},
	})

	ts.parts = []TransitionPart{PartPanel, PartVehicle, PartColor, PartCountdown}
	ts.active = group
	ts.setState(TransitionScheduled)
	ts.scheduler.Schedule(group)
}

// buildPanel 描述面板：滚出 → 从反方向滚入
func (ts *TransitionSystem) buildPanel(dir Direction) anim.Animation {
	out := anim.NewPoint(image.Point{}, image.Pt(0, dir.sign()*config.PanelScrollOutDistance),
		config.PanelScrollDuration, ts.setPanelOffset)
	out.SetCurve(anim.CurveEaseIn)
	out.SetHandlers(anim.Handlers{
		Stopped: func(finished bool) {
			ts.commit(dir)
			ts.emit(fmt.Sprintf("panel out stopped finished=%v index=%d", finished, ts.routes.Index()))
			ts.redraw()
		},
	})

	in := anim.NewPoint(image.Pt(0, -dir.sign()*config.PanelScrollInDistance), image.Point{},
		config.PanelScrollDuration, ts.setPanelOffset)
	in.SetCurve(anim.CurveEaseOut)
	in.SetHandlers(anim.Handlers{
		Stopped: func(finished bool) {
			ts.emit(fmt.Sprintf("panel in stopped finished=%v", finished))
			ts.doors.OpenAfter(ts.timing.DoorReopenDelay)
		},
	})

	return anim.NewSequence(out, in)
}

// buildVehicle 车辆精灵：滑出 → 间隔 → 从反方向滑入
func (ts *TransitionSystem) buildVehicle(dir Direction) anim.Animation {
	out := anim.NewPoint(image.Point{}, image.Pt(0, dir.sign()*config.VehicleSlideDistance),
		config.VehicleSlideDuration, ts.setVehicleOffset)
	out.SetDelay(config.VehicleStartDelay)
	out.SetHandlers(anim.Handlers{
		Stopped: func(finished bool) {
			ts.emit(fmt.Sprintf("vehicle out stopped finished=%v", finished))
			ts.doors.ForceClosed()
		},
	})

	in := anim.NewPoint(image.Pt(0, -dir.sign()*config.VehicleSlideDistance), image.Point{},
		config.VehicleSlideDuration, ts.setVehicleOffset)
	in.SetCurve(anim.CurveEaseOut)
	in.SetDelay(config.VehicleInterLegDelay)
	in.SetHandlers(anim.Handlers{
		Stopped: func(finished bool) {
			ts.emit(fmt.Sprintf("vehicle in stopped finished=%v", finished))
		},
	})

	return anim.NewSequence(out, in)
}

func (ts *TransitionSystem) buildColorFade(from, to transit.Color) anim.Animation {
	fade := anim.NewProperty(from, to, config.ColorFadeDuration, transit.LerpColor, ts.overrides.SetColor)
	fade.SetHandlers(anim.Handlers{
		Stopped: func(finished bool) {
			ts.emit(fmt.Sprintf("color stopped finished=%v", finished))
		},
		Teardown: ts.overrides.ClearColor,
	})
	return fade
}

func (ts *TransitionSystem) buildCountdownFade(from, to int16) anim.Animation {
	fade := anim.NewInt16(from, to, config.CountdownFadeDuration, ts.overrides.SetCountdown)
	fade.SetDelay(config.CountdownFadeDelay)
	fade.SetHandlers(anim.Handlers{
		Stopped: func(finished bool) {
			ts.emit(fmt.Sprintf("countdown stopped finished=%v", finished))
		},
		Teardown: ts.overrides.ClearCountdown,
	})
	return fade
}

// commit 面板滚出结束：唯一改变记录索引的位置
func (ts *TransitionSystem) commit(dir Direction) {
	var moved bool
	if dir == DirectionForward {
		moved = ts.routes.Advance()
	} else {
		moved = ts.routes.Retreat()
	}
	if !moved {
		log.Printf("[TransitionSystem] Warning: %s commit at index %d did not move", dir, ts.routes.Index())
	}
}

func (ts *TransitionSystem) setPanelOffset(p image.Point) {
	ts.panel.Offset = p
}

func (ts *TransitionSystem) setVehicleOffset(p image.Point) {
	ts.vehicle.Offset = p
}

func (ts *TransitionSystem) redraw() {
	ts.redraws++
	if ts.redrawer != nil {
		ts.redrawer.Redraw()
	}
}

func (ts *TransitionSystem) setState(s TransitionState) {
	if ts.state == s {
		return
	}
	log.Printf("[TransitionSystem] State: %s → %s", ts.state, s)
	ts.state = s
}

func (ts *TransitionSystem) emit(event string) {
	if ts.trace != nil {
		ts.trace(event)
	}
}
