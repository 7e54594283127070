// Package app 提供表盘应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/transitface/pkg/config"
	"github.com/decker502/transitface/pkg/game"
	"github.com/decker502/transitface/pkg/scenes"
)

// SceneArrivals 到站表盘场景名
const SceneArrivals = "arrivals"

// DefaultConfigPath 默认应用配置文件
const DefaultConfigPath = "data/config.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// DataFS 数据文件系统（嵌入资源或 --data-dir 指定的目录）
	DataFS fs.FS
	// ConfigPath 应用配置文件路径，为空时使用 DefaultConfigPath
	ConfigPath string
}

// App 是表盘应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	appConfig                *config.AppConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化表盘应用
//
// 参数：
//   - cfg: 启动配置，DataFS 必填
//
// 返回：
//   - *App: 已加载到站场景的应用
//   - error: 配置、资源或数据源初始化失败
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.DataFS == nil {
		return nil, errors.New("data file system is required")
	}
	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	appConfig, err := config.LoadAppConfig(cfg.DataFS, configPath)
	if err != nil {
		return nil, fmt.Errorf("应用配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载应用配置: %s (source=%s)", configPath, appConfig.Source.Kind)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(cfg.DataFS)
	if _, err := resourceManager.LoadVehicleSprites(scenes.VehicleConfigPath); err != nil {
		return nil, fmt.Errorf("车辆精灵加载失败: %w", err)
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) (game.Scene, error) {
		switch name {
		case SceneArrivals:
			scene, err := scenes.NewArrivalsScene(resourceManager, appConfig)
			if err != nil {
				return nil, err
			}
			return scene, nil
		default:
			return nil, fmt.Errorf("unknown scene %q", name)
		}
	})

	if !sceneManager.LoadScene(SceneArrivals) {
		return nil, fmt.Errorf("场景 %s 创建失败", SceneArrivals)
	}
	log.Printf("[App] Started scene: %s", SceneArrivals)

	return &App{
		sceneManager: sceneManager,
		appConfig:    appConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// WindowSize 返回桌面窗口尺寸（逻辑屏幕乘以配置的放大倍数）
func (a *App) WindowSize() (int, int) {
	scale := a.appConfig.Window.Scale
	return config.ScreenWidth * scale, config.ScreenHeight * scale
}

// WindowConfig 返回窗口配置
func (a *App) WindowConfig() config.WindowConfig {
	return a.appConfig.Window
}

// Update 更新表盘逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制表盘
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，使用最近邻缩放保持像素风格
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回手表的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Close 关闭当前场景（停止数据源协程）
func (a *App) Close() {
	a.sceneManager.Close()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
