package systems

import (
	"log"
	"time"

	"github.com/decker502/transitface/pkg/anim"
	"github.com/decker502/transitface/pkg/config"
)

// DoorSpriteSystem 车门精灵播放器
//
// 帧索引在 [0, N-1] 内逐帧推进，N 由当前车辆的精灵序列决定。
// 每次 StepOpen/StepClosed 只推进一帧，并通过调度器在 DoorStepInterval 后再次调用自身，
// 直到到达端点。新的推进链会先取消上一条链的待触发定时器。
//
// 帧索引在所有车辆类型间共享，只通过 ForceClosed 或推进链改变；
// 读取时按当前序列长度钳制。
type DoorSpriteSystem struct {
	scheduler  *anim.Scheduler
	frameCount func() int
	onChange   func()

	frame   int
	pending anim.TimerID
}

// NewDoorSpriteSystem 创建车门精灵播放器
//
// 参数：
//   - scheduler: 动画调度器（定时器在其中触发）
//   - frameCount: 返回当前车辆精灵序列的帧数
func NewDoorSpriteSystem(scheduler *anim.Scheduler, frameCount func() int) *DoorSpriteSystem {
	return &DoorSpriteSystem{
		scheduler:  scheduler,
		frameCount: frameCount,
	}
}

// SetOnChange 设置帧变化回调（通常是请求车辆图层重绘）
func (ds *DoorSpriteSystem) SetOnChange(fn func()) {
	ds.onChange = fn
}

// Frame 返回当前帧索引，按当前序列长度钳制
func (ds *DoorSpriteSystem) Frame() int {
	return clampFrame(ds.frame, ds.maxFrame())
}

// Pending 是否有待触发的推进步
func (ds *DoorSpriteSystem) Pending() bool {
	return ds.scheduler.TimerPending(ds.pending)
}

// StepOpen 开始向全开推进
func (ds *DoorSpriteSystem) StepOpen() {
	ds.cancelPending()
	ds.stepOpen()
}

// StepClosed 开始向全关推进
func (ds *DoorSpriteSystem) StepClosed() {
	ds.cancelPending()
	ds.stepClosed()
}

// ForceClosed 立即复位到第 0 帧，并终止正在进行的推进链
func (ds *DoorSpriteSystem) ForceClosed() {
	ds.cancelPending()
	ds.setFrame(0)
}

// SetOpen 立即跳到全开帧，并终止正在进行的推进链
func (ds *DoorSpriteSystem) SetOpen() {
	ds.cancelPending()
	ds.setFrame(ds.maxFrame())
}

// OpenAfter 在 d 之后开始向全开推进
func (ds *DoorSpriteSystem) OpenAfter(d time.Duration) {
	ds.cancelPending()
	ds.pending = ds.scheduler.AfterFunc(d, ds.stepOpen)
}

// CloseAfter 在 d 之后开始向全关推进
func (ds *DoorSpriteSystem) CloseAfter(d time.Duration) {
	ds.cancelPending()
	ds.pending = ds.scheduler.AfterFunc(d, ds.stepClosed)
}

// Cancel 终止推进链，帧索引保持不变
func (ds *DoorSpriteSystem) Cancel() {
	ds.cancelPending()
}

func (ds *DoorSpriteSystem) stepOpen() {
	ds.pending = 0
	last := ds.maxFrame()
	if ds.frame >= last {
		return
	}
	ds.setFrame(ds.frame + 1)
	if ds.frame < last {
		ds.pending = ds.scheduler.AfterFunc(config.DoorStepInterval, ds.stepOpen)
	}
}

func (ds *DoorSpriteSystem) stepClosed() {
	ds.pending = 0
	if ds.frame > ds.maxFrame() {
		ds.frame = ds.maxFrame()
	}
	if ds.frame <= 0 {
		return
	}
	ds.setFrame(ds.frame - 1)
	if ds.frame > 0 {
		ds.pending = ds.scheduler.AfterFunc(config.DoorStepInterval, ds.stepClosed)
	}
}

func (ds *DoorSpriteSystem) setFrame(f int) {
	f = clampFrame(f, ds.maxFrame())
	if f == ds.frame {
		return
	}
	ds.frame = f
	if ds.onChange != nil {
		ds.onChange()
	}
}

func (ds *DoorSpriteSystem) cancelPending() {
	if ds.pending != 0 {
		ds.scheduler.Cancel(ds.pending)
		ds.pending = 0
	}
}

func (ds *DoorSpriteSystem) maxFrame() int {
	n := 1
	if ds.frameCount != nil {
		n = ds.frameCount()
	}
	if n < 1 {
		log.Printf("[DoorSpriteSystem] Warning: invalid frame count %d, using 1", n)
		n = 1
	}
	return n - 1
}

func clampFrame(f, last int) int {
	if f < 0 {
		return 0
	}
	if f > last {
		return last
	}
	return f
}
