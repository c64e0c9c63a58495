package scrollfx

import "math"

// 默认插值参数
const (
	DefaultEasing  = 0.1
	DefaultEpsilon = 0.01
)

// ScrollFraction 将滚动偏移换算为滚动比例
//
// maxOffset = 可滚动总高度 - 视口高度。maxOffset 非正或结果非有限值时返回 0，
// 不对 [0, 1] 范围做额外截断（帧映射自行截断）。
func ScrollFraction(offset, maxOffset float64) float64 {
	if maxOffset <= 0 || math.IsNaN(maxOffset) || math.IsInf(maxOffset, 0) {
		return 0
	}
	f := offset / maxOffset
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// TargetFrame 将滚动比例映射为目标帧索引，结果截断到 [0, count-1]
func TargetFrame(fraction float64, count int) int {
	if count <= 0 || math.IsNaN(fraction) {
		return 0
	}
	frame := math.Floor(fraction * float64(count))
	if frame < 0 {
		return 0
	}
	if frame > float64(count-1) {
		return count - 1
	}
	return int(frame)
}

// Interpolator 以指数平滑追踪目标帧
//
// 每个 tick：displayed += (target - displayed) * Easing。
// 只有当 |target - displayed| > Epsilon 时才需要重绘。
type Interpolator struct {
	Easing  float64
	Epsilon float64

	target    float64
	displayed float64
}

// NewInterpolator 创建插值器，非法参数回退到默认值
func NewInterpolator(easing, epsilon float64) *Interpolator {
	if easing <= 0 || easing > 1 {
		easing = DefaultEasing
	}
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	return &Interpolator{Easing: easing, Epsilon: epsilon}
}

// SetTarget 设置目标帧
func (ip *Interpolator) SetTarget(frame int) {
	ip.target = float64(frame)
}

// Target 返回目标帧
func (ip *Interpolator) Target() int {
	return int(ip.target)
}

// Displayed 返回当前显示帧位置（实数）
func (ip *Interpolator) Displayed() float64 {
	return ip.displayed
}

// Frame 返回当前显示帧位置四舍五入后的索引
func (ip *Interpolator) Frame() int {
	return int(math.Round(ip.displayed))
}

// Step 推进一个 tick，返回应绘制的帧索引以及是否需要重绘
func (ip *Interpolator) Step() (frame int, repaint bool) {
	ip.displayed += (ip.target - ip.displayed) * ip.Easing
	repaint = math.Abs(ip.target-ip.displayed) > ip.Epsilon
	return ip.Frame(), repaint
}

// Converged 当前显示位置是否已收敛到目标
func (ip *Interpolator) Converged() bool {
	return math.Abs(ip.target-ip.displayed) <= ip.Epsilon
}
