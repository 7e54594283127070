package entities

import (
	"image"

	"github.com/decker502/transitface/pkg/components"
	"github.com/decker502/transitface/pkg/config"
	"github.com/decker502/transitface/pkg/ecs"
)

// FaceLayers 表盘图层实体
type FaceLayers struct {
	Time              ecs.EntityID
	Unit              ecs.EntityID
	Description       ecs.EntityID
	Route             ecs.EntityID
	Dest              ecs.EntityID
	Stop              ecs.EntityID
	VehicleBackground ecs.EntityID
	Vehicle           ecs.EntityID
	Status            ecs.EntityID
}

// NewFaceLayers 创建表盘的全部图层实体
//
// 图层结构：
//
//	root
//	├── time               倒计时数字
//	├── unit               单位
//	├── description        描述面板（滚动的主体）
//	│   ├── route          线路徽章 + 线路名
//	│   ├── dest           终点
//	│   └── stop           站点
//	├── vehicle_background 右侧车辆栏背景色
//	├── vehicle            车辆精灵（独立滑动）
//	└── status             加载/错误提示（非正常状态时显示）
func NewFaceLayers(em *ecs.EntityManager) *FaceLayers {
	contentW := config.ContentWidth()
	barX := config.ScreenWidth - config.RightBarWidth
	descH := config.ScreenHeight - config.DescriptionY

	layers := &FaceLayers{}
	layers.Time = newLayer(em, components.LayerTime, 0,
		image.Rect(0, 0, contentW-2, config.TimeLayerHeight), 10)
	layers.Unit = newLayer(em, components.LayerUnit, 0,
		image.Rect(0, config.UnitLayerY, contentW-config.RightMargin, config.UnitLayerY+20), 20)
	layers.Description = newLayer(em, components.LayerDescription, 0,
		image.Rect(0, config.DescriptionY, contentW, config.DescriptionY+descH), 30)
	layers.Stop = newLayer(em, components.LayerStop, layers.Description,
		image.Rect(0, config.StopLayerY, contentW-config.RightMargin, descH), 1)
	layers.Dest = newLayer(em, components.LayerDest, layers.Description,
		image.Rect(0, config.DestLayerY, contentW-config.RightMargin, config.StopLayerY), 2)
	layers.Route = newLayer(em, components.LayerRoute, layers.Description,
		image.Rect(0, 0, contentW, config.RouteLayerHeight), 3)
	layers.VehicleBackground = newLayer(em, components.LayerVehicleBackground, 0,
		image.Rect(barX, 0, config.ScreenWidth, config.ScreenHeight), 40)
	layers.Vehicle = newLayer(em, components.LayerVehicle, 0,
		image.Rect(barX, 0, config.ScreenWidth, config.ScreenHeight), 50)
	layers.Status = newLayer(em, components.LayerStatus, 0,
		image.Rect(0, 0, config.ScreenWidth, config.ScreenHeight), 100)
	return layers
}

func newLayer(em *ecs.EntityManager, kind components.LayerKind, parent ecs.EntityID, frame image.Rectangle, z int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LayerComponent{
		Kind:   kind,
		Parent: parent,
		Frame:  frame,
		Z:      z,
	})
	return id
}

// Layer 获取图层组件
func Layer(em *ecs.EntityManager, id ecs.EntityID) *components.LayerComponent {
	layer, ok := ecs.GetComponent[*components.LayerComponent](em, id)
	if !ok {
		return nil
	}
	return layer
}
