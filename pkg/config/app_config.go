package config

import (
	"fmt"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig 应用配置
//
// 配置文件位置: data/config.yaml
type AppConfig struct {
	// Window 桌面窗口设置
	Window WindowConfig `yaml:"window"`

	// Animation 动画参数（毫秒）
	Animation AnimationConfig `yaml:"animation"`

	// Source 到站数据来源
	Source SourceConfig `yaml:"source"`
}

// WindowConfig 窗口设置
type WindowConfig struct {
	// Title 窗口标题
	Title string `yaml:"title"`
	// Scale 逻辑屏幕放大倍数
	Scale int `yaml:"scale"`
	// Fullscreen 启动时是否全屏
	Fullscreen bool `yaml:"fullscreen"`
}

// AnimationConfig 动画设置
type AnimationConfig struct {
	// DoorReopenDelayMS 车门重新打开延迟（400-600）
	DoorReopenDelayMS int `yaml:"doorReopenDelayMs"`
	// RefreshIntervalSec 刷新请求间隔（秒）
	RefreshIntervalSec int `yaml:"refreshIntervalSec"`
}

// SourceConfig 到站数据来源设置
type SourceConfig struct {
	// Kind 来源类型："fixture"（YAML 到站列表）或 "gtfsrt"（GTFS-Realtime 文件）
	Kind string `yaml:"kind"`
	// Path 来源文件路径
	Path string `yaml:"path"`
	// Feeds 额外的 GTFS-Realtime 文件（每个运营商一个），与 Path 一起并发读取
	Feeds []string `yaml:"feeds"`
	// Catalog 站点/线路目录文件路径（gtfsrt 来源必填）
	Catalog string `yaml:"catalog"`
}

// 来源类型
const (
	SourceFixture = "fixture"
	SourceGTFSRT  = "gtfsrt"
)

// DefaultAppConfig 返回默认配置
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Title: "Transit Face",
			Scale: WindowScale,
		},
		Animation: AnimationConfig{
			DoorReopenDelayMS:  int(DoorReopenDelayMin / time.Millisecond),
			RefreshIntervalSec: int(RefreshInterval / time.Second),
		},
		Source: SourceConfig{
			Kind: SourceFixture,
			Path: "data/departures.yaml",
		},
	}
}

// LoadAppConfig 加载应用配置
//
// 未在文件中出现的字段保留默认值。
//
// 参数:
//   - fsys: 配置所在文件系统（嵌入资源或磁盘目录）
//   - path: 配置文件路径（如 "data/config.yaml"）
//
// 返回:
//   - *AppConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadAppConfig(fsys fs.FS, path string) (*AppConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read app config: %w", err)
	}

	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}

	return cfg, nil
}

// Timing 将配置转换为动画参数
func (c *AppConfig) Timing() Timing {
	return Timing{
		DoorReopenDelay: time.Duration(c.Animation.DoorReopenDelayMS) * time.Millisecond,
		RefreshInterval: time.Duration(c.Animation.RefreshIntervalSec) * time.Second,
	}
}

// Validate 验证配置有效性
func (c *AppConfig) Validate() error {
	if c.Window.Scale < 1 {
		return fmt.Errorf("window scale must be >= 1, got %d", c.Window.Scale)
	}
	if err := c.Timing().Validate(); err != nil {
		return err
	}
	switch c.Source.Kind {
	case SourceFixture:
		if c.Source.Path == "" {
			return fmt.Errorf("fixture source requires a path")
		}
	case SourceGTFSRT:
		if c.Source.Path == "" || c.Source.Catalog == "" {
			return fmt.Errorf("gtfsrt source requires both path and catalog")
		}
		for i, feed := range c.Source.Feeds {
			if feed == "" {
				return fmt.Errorf("gtfsrt feed %d has an empty path", i)
			}
		}
	default:
		return fmt.Errorf("unknown source kind %q", c.Source.Kind)
	}
	return nil
}
