package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a watch face scene (e.g., the arrivals face).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Closable 是一个可选接口，用于在场景被替换或程序退出时释放后台资源
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - 切换到其他场景
//   - 游戏窗口关闭
type Closable interface {
	// Close 停止场景持有的后台任务（如数据源协程）
	Close() error
}
