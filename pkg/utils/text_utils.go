package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Ellipsis 截断文本时追加的省略号
const Ellipsis = "…"

// EllipsizeText 截断超出宽度的单行文本并追加省略号
// 参数:
//   - textStr: 要显示的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - string: 不超过 maxWidth 的文本；原文本已经放得下时原样返回
func EllipsizeText(textStr string, font *text.GoTextFace, maxWidth float64) string {
	if font == nil {
		return textStr
	}
	return ellipsize(textStr, maxWidth, func(s string) float64 {
		return measureTextWidth(s, font)
	})
}

// ellipsize 按字符逐个回退，直到 "前缀 + 省略号" 放得下
func ellipsize(textStr string, maxWidth float64, measure func(string) float64) string {
	if textStr == "" || measure(textStr) <= maxWidth {
		return textStr
	}
	if measure(Ellipsis) > maxWidth {
		return ""
	}

	prefix := textStr
	for len(prefix) > 0 {
		_, size := utf8.DecodeLastRuneInString(prefix)
		prefix = prefix[:len(prefix)-size]
		candidate := strings.TrimRight(prefix, " ") + Ellipsis
		if measure(candidate) <= maxWidth {
			return candidate
		}
	}
	return Ellipsis
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	// 使用 Measure 方法测量文本尺寸
	width, _ := text.Measure(textStr, font, 0)
	return width
}
