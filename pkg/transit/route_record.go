package transit

import "unicode/utf8"

// MaxFieldLen 字符串字段的最大字节数（手表端缓冲区 32 字节，含结束符）
const MaxFieldLen = 31

// RouteRecord 一条到站记录
// 由消息解码后整体替换，创建后不再修改
type RouteRecord struct {
	Time        int16  // 到站倒计时（单位由 Unit 描述）
	Unit        string // 倒计时单位，如 "min"
	StopName    string // 站点名称
	DestName    string // 终点名称
	RouteNumber string // 线路号，如 "504B"
	RouteName   string // 线路名称，如 "King"
	Vehicle     VehicleType
	Color       Color
	Shape       BadgeShape
}

// PlaceholderRecord 启动时使用的占位记录
func PlaceholderRecord() RouteRecord {
	return RouteRecord{
		Time:    10,
		Vehicle: VehicleStreetcar,
		Color:   ColorRed,
		Shape:   ShapeRoundRect,
	}
}

// Normalized 返回字符串字段截断到 MaxFieldLen 后的副本
func (r RouteRecord) Normalized() RouteRecord {
	r.Unit = TruncateField(r.Unit)
	r.StopName = TruncateField(r.StopName)
	r.DestName = TruncateField(r.DestName)
	r.RouteNumber = TruncateField(r.RouteNumber)
	r.RouteName = TruncateField(r.RouteName)
	return r
}

// TruncateField 将字符串截断到 MaxFieldLen 字节以内，且不拆分多字节字符
func TruncateField(s string) string {
	if len(s) <= MaxFieldLen {
		return s
	}
	cut := MaxFieldLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
