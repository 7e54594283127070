package anim

import "math"

// Curve 动画曲线
//
// 所有曲线接受进度 t ∈ [0, 1]，返回缓动后的进度 ∈ [0, 1]。
// 参考：https://easings.net/
type Curve int

const (
	// CurveLinear 匀速
	CurveLinear Curve = iota
	// CurveEaseIn 三次方缓入：开始慢，结束快（用于滚出）
	CurveEaseIn
	// CurveEaseOut 三次方缓出：开始快，结束慢（用于滚入）
	CurveEaseOut
	// CurveEaseInOut 三次方缓入缓出
	CurveEaseInOut
)

// Apply 对进度应用曲线，输入会被限制在 [0, 1]
func (c Curve) Apply(t float64) float64 {
	t = clamp01(t)
	switch c {
	case CurveEaseIn:
		return t * t * t
	case CurveEaseOut:
		return 1 - math.Pow(1-t, 3)
	case CurveEaseInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	default:
		return t
	}
}

func (c Curve) String() string {
	switch c {
	case CurveEaseIn:
		return "ease-in"
	case CurveEaseOut:
		return "ease-out"
	case CurveEaseInOut:
		return "ease-in-out"
	default:
		return "linear"
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
