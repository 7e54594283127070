package transit

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color 8 位 ARGB 颜色，每个通道 2 位（0bAARRGGBB）
// 与手表端调色板一致，共 64 种不透明颜色
type Color uint8

// 常用颜色
const (
	ColorBlack    Color = 0b11000000
	ColorBlue     Color = 0b11000011
	ColorRed      Color = 0b11110000
	ColorLimerick Color = 0b11101000
	ColorWhite    Color = 0b11111111
	ColorClear    Color = 0b00000000
)

// Channels 拆分为 a, r, g, b 四个 2 位通道（0-3）
func (c Color) Channels() (a, r, g, b uint8) {
	return uint8(c>>6) & 0x3, uint8(c>>4) & 0x3, uint8(c>>2) & 0x3, uint8(c) & 0x3
}

// MakeColor 由 2 位通道组合颜色，超出范围的通道会被截断
func MakeColor(a, r, g, b uint8) Color {
	return Color((a&0x3)<<6 | (r&0x3)<<4 | (g&0x3)<<2 | b&0x3)
}

// ToRGBA 转换为标准库颜色（每个 2 位通道扩展为 0/85/170/255）
func (c Color) ToRGBA() color.RGBA {
	a, r, g, b := c.Channels()
	return color.RGBA{R: r * 85, G: g * 85, B: b * 85, A: a * 85}
}

// ColorFromHex 将 "rrggbb" 形式的十六进制颜色量化为 8 位调色板颜色
// 每个 8 位通道取高 2 位，alpha 固定为不透明
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return ColorBlack, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ColorBlack, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	quantize := func(ch uint64) uint8 {
		return uint8(ch >> 6)
	}
	r := quantize((v >> 16) & 0xff)
	g := quantize((v >> 8) & 0xff)
	b := quantize(v & 0xff)
	return MakeColor(0x3, r, g, b), nil
}

// LerpColor 按通道在 from 和 to 之间插值
// t=0 返回 from，t=1 返回 to
func LerpColor(from, to Color, t float64) Color {
	fa, fr, fg, fb := from.Channels()
	ta, tr, tg, tb := to.Channels()
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return MakeColor(mix(fa, ta), mix(fr, tr), mix(fg, tg), mix(fb, tb))
}
