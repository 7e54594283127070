// Package message 手表与伴侣端之间的消息格式
//
// 一条消息是 Key → Value 的字典。NumRoutes 为路线数量（≤0 时为状态码），
// 第 i 条记录的各字段位于 字段基址 + i。
package message

import "strconv"

// Key 消息字段键
type Key uint32

const (
	KeyNumRoutes   Key = 0
	KeyTime        Key = 100
	KeyUnit        Key = 200
	KeyStopName    Key = 300
	KeyDestName    Key = 400
	KeyRouteNumber Key = 500
	KeyRouteName   Key = 600
	KeyVehicle     Key = 700
	KeyColor       Key = 800
	KeyShape       Key = 900
)

// keyStride 相邻字段基址的间隔，也是单条消息可容纳的记录上限
const keyStride = 100

var keyNames = map[Key]string{
	KeyNumRoutes:   "num_routes",
	KeyTime:        "time",
	KeyUnit:        "unit",
	KeyStopName:    "stop_name",
	KeyDestName:    "dest_name",
	KeyRouteNumber: "route_number",
	KeyRouteName:   "route_name",
	KeyVehicle:     "vehicle_type",
	KeyColor:       "color",
	KeyShape:       "shape",
}

// Field 返回第 i 条记录的字段键
func (k Key) Field(i int) Key {
	return k + Key(i)
}

// Base 返回字段基址
func (k Key) Base() Key {
	if k == KeyNumRoutes {
		return k
	}
	return k / keyStride * keyStride
}

// Index 返回记录序号
func (k Key) Index() int {
	if k == KeyNumRoutes {
		return 0
	}
	return int(k % keyStride)
}

// String 返回形如 "dest_name[3]" 的可读名称
func (k Key) String() string {
	name, ok := keyNames[k.Base()]
	if !ok {
		return "unknown"
	}
	if k == KeyNumRoutes {
		return name
	}
	return name + "[" + strconv.Itoa(k.Index()) + "]"
}
