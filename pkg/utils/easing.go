package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// CubicBezier 与 CSS transition-timing-function 的 cubic-bezier() 语义一致。
//
// 参考：https://easings.net/ 、https://www.w3.org/TR/css-easing-1/

// TimingFunc 缓动函数类型
type TimingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// CubicBezier 返回 CSS cubic-bezier(x1, y1, x2, y2) 缓动函数
// x1、x2 会被截断到 [0, 1]，保证曲线在 x 方向单调
func CubicBezier(x1, y1, x2, y2 float64) TimingFunc {
	x1 = Clamp01(x1)
	x2 = Clamp01(x2)

	// 多项式系数：B(s) = ((a*s + b)*s + c)*s
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// 先用牛顿迭代求 s，使 B_x(s) = t
		s := t
		for i := 0; i < 8; i++ {
			dx := sampleX(s) - t
			if math.Abs(dx) < 1e-7 {
				return sampleY(s)
			}
			d := slopeX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= dx / d
		}

		// 牛顿法不收敛时退回二分
		lo, hi := 0.0, 1.0
		s = t
		for i := 0; i < 64; i++ {
			x := sampleX(s)
			if math.Abs(x-t) < 1e-7 {
				break
			}
			if x < t {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return sampleY(s)
	}
}

// CSS 预设缓动曲线
var (
	CSSEase      = CubicBezier(0.25, 0.1, 0.25, 1)
	CSSEaseIn    = CubicBezier(0.42, 0, 1, 1)
	CSSEaseOut   = CubicBezier(0, 0, 0.58, 1)
	CSSEaseInOut = CubicBezier(0.42, 0, 0.58, 1)
)

var timings = map[string]TimingFunc{
	"linear":            EaseLinear,
	"ease":              CSSEase,
	"ease-in":           CSSEaseIn,
	"ease-out":          CSSEaseOut,
	"ease-in-out":       CSSEaseInOut,
	"ease-out-cubic":    EaseOutCubic,
	"ease-in-out-cubic": EaseInOutCubic,
}

// TimingByName 按 CSS 关键字查找缓动函数，空字符串视为 "ease"
func TimingByName(name string) (TimingFunc, bool) {
	if name == "" {
		return CSSEase, true
	}
	f, ok := timings[name]
	return f, ok
}

// Clamp01 截断到 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
