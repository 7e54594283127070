package message

import (
	"errors"
	"fmt"
	"math"

	"github.com/decker502/transitface/pkg/transit"
)

var (
	// ErrNoCount 消息中没有路线数量字段，整条消息被忽略
	ErrNoCount = errors.New("message has no route count")
	// ErrMissingField 记录字段缺失
	ErrMissingField = errors.New("missing field")
	// ErrWrongKind 字段类型不符
	ErrWrongKind = errors.New("wrong field kind")
	// ErrOutOfRange 整数字段超出取值范围
	ErrOutOfRange = errors.New("field out of range")
)

// Update 解码后的一次数据更新
// Status 为 OK 时 Records 非空；否则为状态更新，Records 为空
type Update struct {
	Status  transit.Status
	Records []transit.RouteRecord
}

// Decode 将消息解码为数据更新
//
// 规则：
//   - 缺少 NumRoutes：返回 ErrNoCount
//   - NumRoutes ≤ 0：状态更新，不读取任何记录字段
//   - NumRoutes > MaxRoutes：只解码前 MaxRoutes 条
//   - 任一字段缺失、类型不符或越界：返回 MessageDecodeFailure 状态以及包装后的错误
func Decode(d Dict) (Update, error) {
	countValue, ok := d[KeyNumRoutes]
	if !ok {
		return Update{}, ErrNoCount
	}
	count, ok := countValue.AsInt()
	if !ok {
		return decodeFailure(fmt.Errorf("%s: %w", KeyNumRoutes, ErrWrongKind))
	}
	if count <= 0 {
		return Update{Status: transit.StatusFromCount(count)}, nil
	}
	if count > transit.MaxRoutes {
		count = transit.MaxRoutes
	}

	records := make([]transit.RouteRecord, 0, count)
	for i := 0; i < count; i++ {
		rec, err := decodeRecord(d, i)
		if err != nil {
			return decodeFailure(fmt.Errorf("record %d: %w", i, err))
		}
		records = append(records, rec)
	}
	return Update{Status: transit.StatusOK, Records: records}, nil
}

func decodeFailure(err error) (Update, error) {
	return Update{Status: transit.StatusMessageDecodeFailure}, err
}

func decodeRecord(d Dict, i int) (transit.RouteRecord, error) {
	var rec transit.RouteRecord

	minutes, err := intField(d, KeyTime.Field(i), math.MinInt16, math.MaxInt16)
	if err != nil {
		return rec, err
	}
	rec.Time = int16(minutes)

	strFields := []struct {
		key Key
		dst *string
	}{
		{KeyUnit, &rec.Unit},
		{KeyStopName, &rec.StopName},
		{KeyDestName, &rec.DestName},
		{KeyRouteNumber, &rec.RouteNumber},
		{KeyRouteName, &rec.RouteName},
	}
	for _, f := range strFields {
		if *f.dst, err = stringField(d, f.key.Field(i)); err != nil {
			return rec, err
		}
	}

	vehicle, err := intField(d, KeyVehicle.Field(i), 0, int(transit.VehicleRegionalTrain))
	if err != nil {
		return rec, err
	}
	rec.Vehicle = transit.VehicleType(vehicle)

	clr, err := intField(d, KeyColor.Field(i), 0, math.MaxUint8)
	if err != nil {
		return rec, err
	}
	rec.Color = transit.Color(clr)

	shape, err := intField(d, KeyShape.Field(i), 0, int(transit.ShapeCircle))
	if err != nil {
		return rec, err
	}
	rec.Shape = transit.BadgeShape(shape)

	return rec.Normalized(), nil
}

func intField(d Dict, k Key, lo, hi int) (int, error) {
	v, ok := d[k]
	if !ok {
		return 0, fmt.Errorf("%s: %w", k, ErrMissingField)
	}
	n, ok := v.AsInt()
	if !ok {
		return 0, fmt.Errorf("%s: %w", k, ErrWrongKind)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%s=%d: %w", k, n, ErrOutOfRange)
	}
	return n, nil
}

func stringField(d Dict, k Key) (string, error) {
	v, ok := d[k]
	if !ok {
		return "", fmt.Errorf("%s: %w", k, ErrMissingField)
	}
	s, ok := v.AsString()
	if !ok {
		return "", fmt.Errorf("%s: %w", k, ErrWrongKind)
	}
	return s, nil
}
