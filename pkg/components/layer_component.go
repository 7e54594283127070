package components

import (
	"image"

	"github.com/decker502/transitface/pkg/ecs"
)

// LayerKind 图层类型，决定渲染系统调用哪个绘制回调
type LayerKind int

const (
	LayerTime LayerKind = iota
	LayerUnit
	LayerDescription
	LayerRoute
	LayerDest
	LayerStop
	LayerVehicleBackground
	LayerVehicle
	LayerStatus
)

func (k LayerKind) String() string {
	switch k {
	case LayerTime:
		return "time"
	case LayerUnit:
		return "unit"
	case LayerDescription:
		return "description"
	case LayerRoute:
		return "route"
	case LayerDest:
		return "dest"
	case LayerStop:
		return "stop"
	case LayerVehicleBackground:
		return "vehicle_background"
	case LayerVehicle:
		return "vehicle"
	case LayerStatus:
		return "status"
	}
	return "unknown"
}

// LayerComponent 界面图层
//
// Frame 是图层在父图层坐标系中的静止位置（同时作为裁剪区域），
// Offset 是内容相对 Frame 的滚动偏移，由过渡动画修改，静止时为 (0, 0)。
type LayerComponent struct {
	Kind   LayerKind
	Parent ecs.EntityID // 0 表示根图层
	Frame  image.Rectangle
	Offset image.Point
	Z      int // 同级图层的绘制顺序，越大越靠上
	Hidden bool
}

// ContentOrigin 返回内容原点（父坐标系）
func (l *LayerComponent) ContentOrigin() image.Point {
	return l.Frame.Min.Add(l.Offset)
}

// SnapToRest 将内容偏移复位到静止位置
func (l *LayerComponent) SnapToRest() {
	l.Offset = image.Point{}
}

// AtRest 内容是否位于静止位置
func (l *LayerComponent) AtRest() bool {
	return l.Offset == (image.Point{})
}
