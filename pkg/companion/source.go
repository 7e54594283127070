package companion

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ErrSourceUnavailable 数据源文件无法打开
var ErrSourceUnavailable = errors.New("source unavailable")

// Source 到站数据来源
type Source interface {
	Departures(ctx context.Context) ([]Departure, error)
}

// FixtureSource 从 YAML 文件读取到站列表
type FixtureSource struct {
	fsys fs.FS
	path string
}

// NewFixtureSource 创建 YAML 数据源
func NewFixtureSource(fsys fs.FS, path string) *FixtureSource {
	return &FixtureSource{fsys: fsys, path: path}
}

type fixtureFile struct {
	Departures []Departure `yaml:"departures"`
}

// Departures 读取并解析到站列表
func (s *FixtureSource) Departures(ctx context.Context) ([]Departure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.fsys, s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, s.path, err)
	}
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", s.path, err)
	}
	return f.Departures, nil
}

// MultiSource 并发读取多个数据源并合并结果
// 任一数据源失败则整体失败
type MultiSource []Source

// Departures 合并全部数据源的到站列表，保持数据源顺序
func (m MultiSource) Departures(ctx context.Context) ([]Departure, error) {
	results := make([][]Departure, len(m))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range m {
		g.Go(func() error {
			deps, err := src.Departures(gctx)
			if err != nil {
				return err
			}
			results[i] = deps
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Departure
	for _, deps := range results {
		all = append(all, deps...)
	}
	return all, nil
}
