// Package companion 本地伴侣端：读取到站数据并通过消息桥接发送给表盘
//
// 数据来源只读本地文件（YAML 到站列表或 GTFS-Realtime 文件），不访问网络。
package companion

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/decker502/transitface/pkg/transit"
)

// Catalog 站点与线路目录
//
// GTFS-Realtime 只携带 ID，名称、颜色和终点等显示信息由目录补全。
type Catalog struct {
	Stops  []CatalogStop  `yaml:"stops"`
	Routes []CatalogRoute `yaml:"routes"`

	stopsByID  map[string]*CatalogStop
	routesByID map[string]*CatalogRoute
}

// CatalogStop 站点
type CatalogStop struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Operator string `yaml:"operator"`
}

// CatalogRoute 线路
type CatalogRoute struct {
	ID       string `yaml:"id"`
	Number   string `yaml:"number"`
	Name     string `yaml:"name"`
	Color    string `yaml:"color"`    // rrggbb，留空为黑色
	Vehicle  string `yaml:"vehicle"`  // 留空为 bus
	Shape    string `yaml:"shape"`    // 留空为 roundrect
	Operator string `yaml:"operator"` // 修正规则按运营商选择
	// Destinations key: GTFS direction_id
	Destinations map[uint32]string `yaml:"destinations"`
}

// LoadCatalog 加载站点/线路目录
func LoadCatalog(fsys fs.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &c, nil
}

// Validate 检查目录并建立索引
func (c *Catalog) Validate() error {
	c.stopsByID = make(map[string]*CatalogStop, len(c.Stops))
	c.routesByID = make(map[string]*CatalogRoute, len(c.Routes))

	for i := range c.Stops {
		s := &c.Stops[i]
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("stop %d: id and name are required", i)
		}
		if _, dup := c.stopsByID[s.ID]; dup {
			return fmt.Errorf("duplicate stop id %q", s.ID)
		}
		c.stopsByID[s.ID] = s
	}

	for i := range c.Routes {
		r := &c.Routes[i]
		if r.ID == "" {
			return fmt.Errorf("route %d: id is required", i)
		}
		if _, dup := c.routesByID[r.ID]; dup {
			return fmt.Errorf("duplicate route id %q", r.ID)
		}
		if r.Color != "" {
			if _, err := transit.ColorFromHex(r.Color); err != nil {
				return fmt.Errorf("route %s: %w", r.ID, err)
			}
		}
		if r.Vehicle != "" {
			if _, err := transit.ParseVehicleType(r.Vehicle); err != nil {
				return fmt.Errorf("route %s: %w", r.ID, err)
			}
		}
		if _, err := transit.ParseBadgeShape(r.Shape); err != nil {
			return fmt.Errorf("route %s: %w", r.ID, err)
		}
		c.routesByID[r.ID] = r
	}
	return nil
}

// Stop 按 ID 查找站点
func (c *Catalog) Stop(id string) (*CatalogStop, bool) {
	s, ok := c.stopsByID[id]
	return s, ok
}

// Route 按 ID 查找线路
func (c *Catalog) Route(id string) (*CatalogRoute, bool) {
	r, ok := c.routesByID[id]
	return r, ok
}
