package message

import "github.com/decker502/transitface/pkg/transit"

// Encode 将记录编码为消息（伴侣端使用）
// 超过 MaxRoutes 的记录被丢弃；空列表编码为 NoResults 状态
func Encode(records []transit.RouteRecord) Dict {
	if len(records) == 0 {
		return EncodeStatus(transit.StatusNoResults)
	}
	if len(records) > transit.MaxRoutes {
		records = records[:transit.MaxRoutes]
	}

	d := make(Dict, 1+9*len(records))
	d[KeyNumRoutes] = Int(len(records))
	for i, r := range records {
		r = r.Normalized()
		d[KeyTime.Field(i)] = Int(int(r.Time))
		d[KeyUnit.Field(i)] = String(r.Unit)
		d[KeyStopName.Field(i)] = String(r.StopName)
		d[KeyDestName.Field(i)] = String(r.DestName)
		d[KeyRouteNumber.Field(i)] = String(r.RouteNumber)
		d[KeyRouteName.Field(i)] = String(r.RouteName)
		d[KeyVehicle.Field(i)] = Int(int(r.Vehicle))
		d[KeyColor.Field(i)] = Int(int(r.Color))
		d[KeyShape.Field(i)] = Int(int(r.Shape))
	}
	return d
}

// EncodeStatus 将状态编码为只含路线数量字段的消息
func EncodeStatus(s transit.Status) Dict {
	return Dict{KeyNumRoutes: Int(s.Code())}
}
