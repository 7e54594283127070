package companion

import (
	"context"
	"fmt"
	"io/fs"
	"log"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// FeedSource 从 GTFS-Realtime TripUpdates 文件读取到站数据
//
// 只保留目录中已知站点和线路的 StopTimeUpdate；
// 到站分钟数相对 feed header 的时间戳计算，已经过去的车次被丢弃。
// 同一站点、线路和方向只保留最早的一班车。
type FeedSource struct {
	fsys    fs.FS
	path    string
	catalog *Catalog
}

// NewFeedSource 创建 GTFS-Realtime 数据源
func NewFeedSource(fsys fs.FS, path string, catalog *Catalog) *FeedSource {
	return &FeedSource{fsys: fsys, path: path, catalog: catalog}
}

// Departures 解析 feed 文件
func (s *FeedSource) Departures(ctx context.Context) ([]Departure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.fsys, s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, s.path, err)
	}

	feed := gtfs.FeedMessage{}
	if err := proto.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("failed to decode feed %s: %w", s.path, err)
	}
	return s.departuresFromFeed(&feed), nil
}

// departureKey 到站记录的去重键
type departureKey struct {
	stop      string
	route     string
	direction uint32
}

func (s *FeedSource) departuresFromFeed(feed *gtfs.FeedMessage) []Departure {
	now := int64(feed.GetHeader().GetTimestamp())
	var departures []Departure
	index := make(map[departureKey]int)
	skipped := 0

	for _, entity := range feed.GetEntity() {
		tu := entity.GetTripUpdate()
		if tu == nil || entity.GetIsDeleted() {
			continue
		}
		trip := tu.GetTrip()
		if trip.GetScheduleRelationship() == gtfs.TripDescriptor_CANCELED {
			continue
		}
		route, ok := s.catalog.Route(trip.GetRouteId())
		if !ok {
			skipped++
			continue
		}
		dest := route.Destinations[trip.GetDirectionId()]

		for _, stu := range tu.GetStopTimeUpdate() {
			stop, ok := s.catalog.Stop(stu.GetStopId())
			if !ok {
				continue
			}
			if stu.GetScheduleRelationship() == gtfs.TripUpdate_StopTimeUpdate_SKIPPED {
				continue
			}
			at := stopEventTime(stu)
			if at == 0 || at < now {
				continue
			}
			dep := Departure{
				Operator:    operatorFor(route, stop),
				StopName:    stop.Name,
				Destination: dest,
				RouteNumber: route.Number,
				RouteName:   route.Name,
				Minutes:     int((at - now) / 60),
				Color:       route.Color,
				Vehicle:     route.Vehicle,
				Shape:       route.Shape,
			}
			key := departureKey{stop: stu.GetStopId(), route: trip.GetRouteId(), direction: trip.GetDirectionId()}
			if i, seen := index[key]; seen {
				if dep.Minutes < departures[i].Minutes {
					departures[i] = dep
				}
				continue
			}
			index[key] = len(departures)
			departures = append(departures, dep)
		}
	}

	if skipped > 0 {
		log.Printf("[FeedSource] Skipped %d trip updates for routes not in the catalog", skipped)
	}
	return departures
}

// stopEventTime 优先使用到达时间，没有时使用出发时间
func stopEventTime(stu *gtfs.TripUpdate_StopTimeUpdate) int64 {
	if t := stu.GetArrival().GetTime(); t != 0 {
		return t
	}
	return stu.GetDeparture().GetTime()
}

func operatorFor(route *CatalogRoute, stop *CatalogStop) string {
	if route.Operator != "" {
		return route.Operator
	}
	return stop.Operator
}
