package config

// 布局配置常量
// 本文件定义了手表表盘的布局参数，所有坐标使用逻辑像素（144x168 屏幕坐标）

const (
	// ScreenWidth 逻辑屏幕宽度
	ScreenWidth = 144
	// ScreenHeight 逻辑屏幕高度
	ScreenHeight = 168
	// WindowScale 桌面窗口相对逻辑屏幕的默认放大倍数
	WindowScale = 3

	// RightBarWidth 右侧车辆栏宽度
	RightBarWidth = 50
	// RightMargin 文字右边距
	RightMargin = 5
	// Space 徽章与线路名之间的间距
	Space = 5

	// TimeLayerHeight 倒计时数字图层高度
	TimeLayerHeight = 64
	// UnitLayerY 单位文字的 Y 坐标
	UnitLayerY = 44

	// DescriptionY 描述面板（线路/终点/站点）的 Y 坐标
	DescriptionY = 64
	// RouteLayerHeight 线路徽章行高度（描述面板内坐标）
	RouteLayerHeight = 32
	// DestLayerY 终点文字的 Y 坐标（描述面板内坐标）
	DestLayerY = 32
	// StopLayerY 站点文字的 Y 坐标（描述面板内坐标）
	StopLayerY = 68

	// VehicleSpriteOffsetY 车辆精灵相对车辆栏顶部的偏移
	VehicleSpriteOffsetY = 40
	// OverheadWireX 有轨电车架空线相对车辆栏左侧的 X 偏移
	OverheadWireX = 32

	// BadgeTextPadding 徽章内文字的左右留白之和
	BadgeTextPadding = 10
	// BadgeCornerRadius 圆角徽章的圆角半径
	BadgeCornerRadius = 10
)

// ContentWidth 返回左侧内容区宽度（屏幕宽度减去右侧车辆栏）
func ContentWidth() int {
	return ScreenWidth - RightBarWidth
}
