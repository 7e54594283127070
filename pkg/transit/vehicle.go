package transit

import "fmt"

// VehicleType 车辆类型
// 数值与配套应用下发的消息保持一致，不可随意调整顺序
type VehicleType int

const (
	VehicleStreetcar     VehicleType = 0
	VehicleSubway        VehicleType = 1
	VehicleBus           VehicleType = 2
	VehicleRegionalTrain VehicleType = 3
)

// String 返回车辆类型的配置名称（与 data/vehicles.yaml 的键一致）
func (v VehicleType) String() string {
	switch v {
	case VehicleStreetcar:
		return "streetcar"
	case VehicleSubway:
		return "subway"
	case VehicleBus:
		return "bus"
	case VehicleRegionalTrain:
		return "regional_train"
	default:
		return fmt.Sprintf("vehicle(%d)", int(v))
	}
}

// Valid 判断车辆类型是否为已知取值
func (v VehicleType) Valid() bool {
	return v >= VehicleStreetcar && v <= VehicleRegionalTrain
}

// ParseVehicleType 根据配置名称解析车辆类型
func ParseVehicleType(name string) (VehicleType, error) {
	for _, v := range AllVehicleTypes() {
		if v.String() == name {
			return v, nil
		}
	}
	return VehicleStreetcar, fmt.Errorf("unknown vehicle type %q", name)
}

// AllVehicleTypes 返回全部车辆类型（按数值升序）
func AllVehicleTypes() []VehicleType {
	return []VehicleType{VehicleStreetcar, VehicleSubway, VehicleBus, VehicleRegionalTrain}
}

// BadgeShape 线路号徽章的外形
type BadgeShape int

const (
	ShapeRoundRect BadgeShape = 0
	ShapeRect      BadgeShape = 1
	ShapeCircle    BadgeShape = 2
)

func (s BadgeShape) String() string {
	switch s {
	case ShapeRoundRect:
		return "roundrect"
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// ParseBadgeShape 根据名称解析徽章外形，空字符串视为圆角矩形
func ParseBadgeShape(name string) (BadgeShape, error) {
	switch name {
	case "", "roundrect":
		return ShapeRoundRect, nil
	case "rect":
		return ShapeRect, nil
	case "circle":
		return ShapeCircle, nil
	}
	return ShapeRoundRect, fmt.Errorf("unknown badge shape %q", name)
}
