package sprites

import (
	"fmt"

	"github.com/decker502/transitface/pkg/config"
	"github.com/decker502/transitface/pkg/transit"
)

// Sequences 车辆类型 → 帧序列
type Sequences struct {
	byVehicle map[transit.VehicleType]*Sequence
}

// NewSequences 根据车辆配置创建全部帧序列
// 每个车辆类型都必须有配置
func NewSequences(cfg *config.VehicleConfig) (*Sequences, error) {
	seqs := &Sequences{byVehicle: make(map[transit.VehicleType]*Sequence)}
	for _, vt := range transit.AllVehicleTypes() {
		spriteCfg, ok := cfg.Vehicles[vt.String()]
		if !ok {
			return nil, fmt.Errorf("missing sprite config for vehicle %s", vt)
		}
		seq, err := NewSequence(vt, spriteCfg)
		if err != nil {
			return nil, err
		}
		seqs.byVehicle[vt] = seq
	}
	return seqs, nil
}

// For 返回车辆类型对应的帧序列
// 未知类型回退到有轨电车
func (s *Sequences) For(vehicle transit.VehicleType) *Sequence {
	if seq, ok := s.byVehicle[vehicle]; ok {
		return seq
	}
	return s.byVehicle[transit.VehicleStreetcar]
}
