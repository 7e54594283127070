package utils

import (
	"testing"
	"unicode/utf8"
)

// 每个字符 6 像素的等宽测量
func monoWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s) * 6)
}

// TestEllipsize 测试文本截断
func TestEllipsize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     string
	}{
		{"放得下", "to Kipling", 100, "to Kipling"},
		{"刚好放下", "to Kipling", 60, "to Kipling"},
		{"需要截断", "to Kennedy Station", 60, "to Kenned…"},
		{"截断站点", "at Union Station", 42, "at Uni…"},
		{"去掉末尾空格再加省略号", "to A Station", 30, "to A…"},
		{"只放得下省略号", "Union", 8, "…"},
		{"省略号也放不下", "Union", 4, ""},
		{"空文本", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ellipsize(tt.input, tt.maxWidth, monoWidth); got != tt.want {
				t.Errorf("ellipsize(%q, %v) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestEllipsizeTextNilFont(t *testing.T) {
	if got := EllipsizeText("to Kipling", nil, 1); got != "to Kipling" {
		t.Errorf("EllipsizeText with nil font = %q", got)
	}
}
