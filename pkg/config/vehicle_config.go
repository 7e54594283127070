package config

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// VehicleSpriteConfig 单个车辆类型的精灵配置
//
// 精灵序列的第 0 帧为车门全关，最后一帧为车门全开。
type VehicleSpriteConfig struct {
	// Frames 帧数（至少 2 帧）
	Frames int `yaml:"frames"`
	// Width/Height 车身尺寸（像素）
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Doors 车门数量（沿车身纵向均匀分布）
	Doors int `yaml:"doors"`
	// Body 车身颜色（rrggbb）
	Body string `yaml:"body"`
	// Door 车门洞开后露出的颜色（rrggbb）
	Door string `yaml:"door"`
	// Windows 车窗行数
	Windows int `yaml:"windows"`
	// OverheadWire 是否在侧栏绘制架空线（有轨电车）
	OverheadWire bool `yaml:"overheadWire"`
}

// VehicleConfig 全部车辆精灵配置
//
// 配置文件位置: data/vehicles.yaml
type VehicleConfig struct {
	// Vehicles key: 车辆类型名（streetcar/subway/bus/regional_train）
	Vehicles map[string]VehicleSpriteConfig `yaml:"vehicles"`
}

// LoadVehicleConfig 加载车辆精灵配置
func LoadVehicleConfig(fsys fs.FS, path string) (*VehicleConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vehicle config: %w", err)
	}

	var cfg VehicleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse vehicle config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid vehicle config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证每个车辆类型的配置
func (c *VehicleConfig) Validate() error {
	if len(c.Vehicles) == 0 {
		return fmt.Errorf("no vehicles configured")
	}
	for name, v := range c.Vehicles {
		if v.Frames < 2 {
			return fmt.Errorf("vehicle %s: frames must be >= 2, got %d", name, v.Frames)
		}
		if v.Width <= 0 || v.Height <= 0 {
			return fmt.Errorf("vehicle %s: invalid size %dx%d", name, v.Width, v.Height)
		}
		if v.Doors < 0 || v.Windows < 0 {
			return fmt.Errorf("vehicle %s: doors and windows must not be negative", name)
		}
	}
	return nil
}
