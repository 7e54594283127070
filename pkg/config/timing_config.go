package config

import (
	"fmt"
	"time"
)

// 过渡动画参数
// 这些数值决定过渡动画的视觉节奏，修改前请确认与设计稿一致
const (
	// PanelScrollOutDistance 描述面板滚出距离（像素）
	PanelScrollOutDistance = 40
	// PanelScrollInDistance 描述面板从反方向滚入的起始偏移（像素）
	PanelScrollInDistance = 16
	// PanelScrollDuration 滚出/滚入各自的时长
	PanelScrollDuration = 260 * time.Millisecond

	// VehicleSlideDistance 车辆精灵滑出/滑入距离（像素）
	VehicleSlideDistance = 40
	// VehicleSlideDuration 车辆精灵每段滑动的时长
	VehicleSlideDuration = 200 * time.Millisecond
	// VehicleStartDelay 车辆滑出相对过渡开始的延迟
	// 滑出恰好在描述面板切换记录（260ms）时结束
	VehicleStartDelay = 60 * time.Millisecond
	// VehicleInterLegDelay 车辆滑出结束到滑入开始之间的间隔
	VehicleInterLegDelay = 260 * time.Millisecond

	// ColorFadeDuration 侧栏背景色渐变时长
	ColorFadeDuration = 460 * time.Millisecond

	// CountdownFadeDuration 倒计时数字渐变时长
	CountdownFadeDuration = 260 * time.Millisecond
	// CountdownFadeDelay 倒计时数字渐变的开始延迟
	CountdownFadeDelay = 100 * time.Millisecond

	// DoorStepInterval 车门精灵逐帧推进的间隔
	DoorStepInterval = 13 * time.Millisecond
	// DoorReopenDelayMin 车门重新打开延迟的下限
	DoorReopenDelayMin = 400 * time.Millisecond
	// DoorReopenDelayMax 车门重新打开延迟的上限
	DoorReopenDelayMax = 600 * time.Millisecond

	// RefreshInterval 成功收到数据后请求刷新的间隔
	RefreshInterval = 60 * time.Second
)

// Timing 运行时可调整的动画参数
type Timing struct {
	// DoorReopenDelay 描述面板滚入完成后到车门开始打开的延迟
	DoorReopenDelay time.Duration
	// RefreshInterval 刷新请求间隔
	RefreshInterval time.Duration
}

// DefaultTiming 返回默认动画参数
func DefaultTiming() Timing {
	return Timing{
		DoorReopenDelay: DoorReopenDelayMin,
		RefreshInterval: RefreshInterval,
	}
}

// Validate 检查参数范围
func (t Timing) Validate() error {
	if t.DoorReopenDelay < DoorReopenDelayMin || t.DoorReopenDelay > DoorReopenDelayMax {
		return fmt.Errorf("door reopen delay %v out of range [%v, %v]",
			t.DoorReopenDelay, DoorReopenDelayMin, DoorReopenDelayMax)
	}
	if t.RefreshInterval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %v", t.RefreshInterval)
	}
	return nil
}
