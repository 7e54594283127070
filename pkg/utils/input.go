// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Button 手表的物理按键
type Button int

const (
	ButtonNone Button = iota
	ButtonUp
	ButtonDown
	ButtonSelect
)

func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonSelect:
		return "select"
	}
	return "none"
}

// JustPressedButton 获取本帧刚按下的按键
//
// 键盘：上/K = Up，下/J = Down，回车/空格 = Select。
// 触摸和鼠标点击按屏幕纵向三等分映射（上 = Up，中 = Select，下 = Down），
// 优先检测触摸。screenHeight 为逻辑屏幕高度。
func JustPressedButton(screenHeight int) Button {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyK):
		return ButtonUp
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyJ):
		return ButtonDown
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return ButtonSelect
	}

	// 首先检查触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		_, y := ebiten.TouchPosition(touchIDs[0])
		return ButtonAt(y, screenHeight)
	}

	// 其次检查鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		_, y := ebiten.CursorPosition()
		return ButtonAt(y, screenHeight)
	}
	return ButtonNone
}

// ButtonAt 把点击位置的 Y 坐标映射为按键
func ButtonAt(y, screenHeight int) Button {
	if screenHeight <= 0 || y < 0 || y >= screenHeight {
		return ButtonNone
	}
	switch third := y * 3 / screenHeight; third {
	case 0:
		return ButtonUp
	case 1:
		return ButtonSelect
	default:
		return ButtonDown
	}
}
