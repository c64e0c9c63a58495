package scrollfx

import (
	"image"
)

// Frame 帧句柄需要提供尺寸，*ebiten.Image 和 image.Image 都满足该接口
type Frame interface {
	Bounds() image.Rectangle
}

// Options 动画器参数
type Options struct {
	Easing       float64
	Epsilon      float64
	Choreography ChoreographyOptions
}

// DefaultOptions 返回默认参数
func DefaultOptions() Options {
	return Options{
		Easing:       DefaultEasing,
		Epsilon:      DefaultEpsilon,
		Choreography: DefaultChoreographyOptions(),
	}
}

// Stats 动画器运行状态，用于调试显示
type Stats struct {
	Fraction  float64
	Target    int
	Displayed float64
	Painted   int
	Paints    int
	Primed    bool
	Disposed  bool
	// Converged 显示帧已收敛到目标帧
	Converged bool
	// Heading 标题的停靠状态
	Heading   DockState
	Flags     Flags
}

// Animator 滚动驱动的帧序列动画器
//
// 所有状态归动画器所有，每次页面挂载创建一个实例。OnScroll 和 Tick 必须在同一个
// 协程（UI 线程）中调用；帧加载完成只修改帧存储自身的就绪标记。
//
// 同一次滚动通知中先计算目标帧再评估编排阈值；同一个 tick 中先插值再绘制。
type Animator[F Frame] struct {
	frames  FrameStore[F]
	surface Surface[F]
	geo     Geometry
	interp  *Interpolator
	chor    *Choreographer

	fraction float64
	sized    bool
	primed   bool
	painted  int
	paints   int

	disposed    bool
	unsubscribe func()
}

// NewAnimator 创建动画器
//
// Dispose 时会关闭实现了 Close() 的帧存储（例如 *Loader）。
func NewAnimator[F Frame](frames FrameStore[F], surface Surface[F], geo Geometry, style StylePort, opts Options) *Animator[F] {
	return &Animator[F]{
		frames:  frames,
		surface: surface,
		geo:     geo,
		interp:  NewInterpolator(opts.Easing, opts.Epsilon),
		chor:    NewChoreographer(geo, style, opts.Choreography),
		painted: -1,
	}
}

// Attach 订阅滚动源，替换之前的订阅
func (a *Animator[F]) Attach(src ScrollSource) {
	if a.disposed || src == nil {
		return
	}
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	a.unsubscribe = src.Subscribe(a.OnScroll)
}

// SetOptions 热更新插值和编排参数
func (a *Animator[F]) SetOptions(opts Options) {
	fresh := NewInterpolator(opts.Easing, opts.Epsilon)
	a.interp.Easing = fresh.Easing
	a.interp.Epsilon = fresh.Epsilon
	a.chor.SetOptions(opts.Choreography)
}

// OnScroll 处理一次滚动通知
func (a *Animator[F]) OnScroll(ev ScrollEvent) {
	if a.disposed {
		return
	}
	a.fraction = ScrollFraction(ev.Offset, ev.Limit)
	a.interp.SetTarget(TargetFrame(a.fraction, a.frames.Len()))
	a.chor.Update(a.fraction)
}

// Tick 推进一个显示帧；动画器已释放时返回 false
func (a *Animator[F]) Tick() bool {
	if a.disposed {
		return false
	}
	if !a.sized {
		// 画布尺寸取视口，不依赖首帧：首帧加载失败时其余帧照常绘制
		a.sized = true
		w, h := a.geo.Viewport()
		a.surface.SetSize(int(w), int(h))
	}
	if !a.primed && a.frames.IsReady(0) {
		// 首帧就绪：一次性绘制
		a.primed = true
		a.painted = -1
		a.paint(0)
	}
	frame, repaint := a.interp.Step()
	if repaint {
		a.paint(frame)
	}
	return true
}

// Resize 视口尺寸变化时调整画布并重绘当前帧
func (a *Animator[F]) Resize(width, height int) {
	if a.disposed {
		return
	}
	a.sized = true
	a.surface.SetSize(width, height)
	a.painted = -1
	a.paint(a.interp.Frame())
}

// ToggleNavItems 用户切换导航列表项的显示
func (a *Animator[F]) ToggleNavItems() bool {
	if a.disposed {
		return false
	}
	return a.chor.ToggleNavItems()
}

// paint 绘制第 index 帧；帧未就绪时静默跳过，画布保留上一帧
func (a *Animator[F]) paint(index int) bool {
	if index == a.painted {
		return false
	}
	f, ok := a.frames.Image(index)
	if !ok {
		return false
	}
	w, h := a.surface.Size()
	b := f.Bounds()
	p := CoverFit(float64(w), float64(h), float64(b.Dx()), float64(b.Dy()))
	if p.Empty() {
		return false
	}
	a.surface.Clear()
	a.surface.Draw(f, p)
	a.painted = index
	a.paints++
	return true
}

// Stats 返回运行状态快照
func (a *Animator[F]) Stats() Stats {
	return Stats{
		Fraction:  a.fraction,
		Target:    a.interp.Target(),
		Displayed: a.interp.Displayed(),
		Painted:   a.painted,
		Paints:    a.paints,
		Primed:    a.primed,
		Disposed:  a.disposed,
		Converged: a.interp.Converged(),
		Heading:   a.chor.State(ElementTitle),
		Flags:     a.chor.Flags(),
	}
}

// Dispose 停止动画：取消滚动订阅，关闭帧存储。之后的 Tick/OnScroll 均为空操作
func (a *Animator[F]) Dispose() {
	if a.disposed {
		return
	}
	a.disposed = true
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	if c, ok := any(a.frames).(interface{ Close() }); ok {
		c.Close()
	}
}
