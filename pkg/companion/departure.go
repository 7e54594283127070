package companion

import (
	"sort"
	"strings"

	"github.com/decker502/transitface/pkg/transit"
)

// Departure 一班即将到站的车辆（修正前的原始数据）
type Departure struct {
	Operator    string `yaml:"operator"`
	StopName    string `yaml:"stop"`
	Destination string `yaml:"destination"`
	RouteNumber string `yaml:"routeNumber"`
	RouteName   string `yaml:"routeName"`
	Minutes     int    `yaml:"minutes"`
	Color       string `yaml:"color"`   // rrggbb
	Vehicle     string `yaml:"vehicle"` // 留空为 bus
	Shape       string `yaml:"shape"`   // 留空为 roundrect
}

// Displayable 终点为空或终点就是本站的车次不显示
func (d Departure) Displayable() bool {
	dest := strings.TrimSpace(d.Destination)
	if dest == "" {
		return false
	}
	return !strings.EqualFold(dest, strings.TrimSpace(d.StopName))
}

// Record 转换为表盘记录并应用运营商修正
func (d Departure) Record() transit.RouteRecord {
	rec := transit.RouteRecord{
		Time:        clampMinutes(d.Minutes),
		Unit:        "min",
		StopName:    d.StopName,
		DestName:    d.Destination,
		RouteNumber: d.RouteNumber,
		RouteName:   strings.TrimPrefix(d.RouteName, d.RouteNumber+"-"),
		Vehicle:     transit.VehicleBus,
		Color:       transit.ColorBlack,
		Shape:       transit.ShapeRoundRect,
	}
	if c, err := transit.ColorFromHex(d.Color); err == nil && d.Color != "" {
		rec.Color = c
	}
	if v, err := transit.ParseVehicleType(d.Vehicle); err == nil && d.Vehicle != "" {
		rec.Vehicle = v
	}
	if s, err := transit.ParseBadgeShape(d.Shape); err == nil {
		rec.Shape = s
	}

	if correct, ok := corrections[d.Operator]; ok {
		correct(&rec)
	}
	return rec.Normalized()
}

// BuildRecords 过滤、排序并转换到站数据，最多返回 MaxRoutes 条
func BuildRecords(departures []Departure) []transit.RouteRecord {
	kept := make([]Departure, 0, len(departures))
	for _, d := range departures {
		if d.Displayable() {
			kept = append(kept, d)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Minutes < kept[j].Minutes })
	if len(kept) > transit.MaxRoutes {
		kept = kept[:transit.MaxRoutes]
	}

	records := make([]transit.RouteRecord, 0, len(kept))
	for _, d := range kept {
		records = append(records, d.Record())
	}
	return records
}

func clampMinutes(m int) int16 {
	if m < 0 {
		return 0
	}
	if m > 32767 {
		return 32767
	}
	return int16(m)
}
