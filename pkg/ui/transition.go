package ui

import (
	"time"

	ebimath "github.com/edwinsyarief/ebi-math"

	"github.com/decker502/movirte/pkg/config"
	"github.com/decker502/movirte/pkg/scrollfx"
	"github.com/decker502/movirte/pkg/utils"
)

// settleEpsilon 视觉属性差值小于该值视为相同
const settleEpsilon = 0.001

// Visual 元素当前的视觉属性
type Visual struct {
	Offset  ebimath.Vector
	Scale   float64
	Opacity float64
	// Dark 0 为浅色，1 为深色
	Dark float64
}

func (v Visual) near(o Visual) bool {
	return ebimath.Abs(v.Offset.X-o.Offset.X) < settleEpsilon &&
		ebimath.Abs(v.Offset.Y-o.Offset.Y) < settleEpsilon &&
		ebimath.Abs(v.Scale-o.Scale) < settleEpsilon &&
		ebimath.Abs(v.Opacity-o.Opacity) < settleEpsilon &&
		ebimath.Abs(v.Dark-o.Dark) < settleEpsilon
}

func lerpVisual(a, b Visual, t float64) Visual {
	return Visual{
		Offset: ebimath.V(
			utils.Lerp(a.Offset.X, b.Offset.X, t),
			utils.Lerp(a.Offset.Y, b.Offset.Y, t),
		),
		Scale:   utils.Lerp(a.Scale, b.Scale, t),
		Opacity: utils.Lerp(a.Opacity, b.Opacity, t),
		Dark:    utils.Lerp(a.Dark, b.Dark, t),
	}
}

// transition 一个元素的过渡状态
//
// 目标变化时从当前视觉值重新开始，先等待 delay 再在 duration 内按 CSS ease 插值。
type transition struct {
	visual Visual
	from   Visual
	to     Visual

	wait    time.Duration
	elapsed time.Duration
	running bool
}

func (t *transition) retarget(to Visual, delay time.Duration) {
	t.from = t.visual
	t.to = to
	t.wait = delay
	t.elapsed = 0
	t.running = true
}

func (t *transition) advance(dt, duration time.Duration, timing utils.TimingFunc) {
	if !t.running {
		return
	}
	if t.wait > 0 {
		if dt <= t.wait {
			t.wait -= dt
			return
		}
		dt -= t.wait
		t.wait = 0
	}
	t.elapsed += dt
	if t.elapsed >= duration {
		t.visual = t.to
		t.running = false
		return
	}
	p := float64(t.elapsed) / float64(duration)
	t.visual = lerpVisual(t.from, t.to, timing(p))
}

// Visual 返回元素 id 当前的视觉属性
func (s *Stage) Visual(id scrollfx.ElementID) (Visual, bool) {
	e, ok := s.elements[id]
	if !ok {
		return Visual{}, false
	}
	return e.visual, true
}

// Animating 是否有元素处于过渡中
func (s *Stage) Animating() bool {
	for _, e := range s.elements {
		if e.running {
			return true
		}
	}
	return false
}

// Update 推进所有元素的过渡
func (s *Stage) Update(dt time.Duration) {
	for _, id := range s.order {
		e := s.elements[id]
		to := s.target(e)
		if !to.near(e.to) {
			e.retarget(to, e.delay)
		}
		e.advance(dt, s.cfg.Transition, s.cfg.Timing)
	}
}

// target 根据类名和属性计算元素的目标视觉属性
func (s *Stage) target(e *Element) Visual {
	p := s.cfg.Presentation
	v := Visual{Offset: ebimath.V(0, 0), Scale: 1, Opacity: 1}
	fly := ebimath.V(e.Prop(scrollfx.PropFlyX, 0), e.Prop(scrollfx.PropFlyY, 0))
	darkText := s.elements[scrollfx.ElementNavContent].HasClass(p.DarkText)

	switch {
	case e.ID == scrollfx.ElementTitle:
		if e.HasClass(p.HeadingDocked) {
			v.Offset = fly
			v.Scale = s.cfg.TitleScale
		}
		v.Dark = boolf(darkText)
	case e.ID == scrollfx.ElementSubtitle:
		if e.HasClass(p.HeadingDocked) {
			v.Offset = fly
		}
		v.Dark = boolf(darkText)
	case e.ID == scrollfx.ElementNavContent:
		v.Opacity = e.Prop(scrollfx.PropFrameOpacity, 1)
		v.Dark = boolf(darkText)
	case e.ID == scrollfx.ElementTitleBar:
		v.Opacity = boolf(e.HasClass(p.Visible))
	case e.ID == scrollfx.ElementResults:
		if !e.HasClass(p.Visible) {
			v.Opacity = 0
			v.Offset = ebimath.V(0, config.ResultsHiddenOffset)
		}
	case e.ID == scrollfx.ElementToggle:
		v.Opacity = boolf(e.HasClass(p.Visible))
		v.Dark = boolf(e.HasClass(p.Dark))
	case e.ID == scrollfx.ElementBody || e.ID == scrollfx.ElementOverlay:
	case e.Kind == KindText:
		// 导航列表项
		if e.HasClass(p.ListDocked) {
			v.Offset = fly
		}
		if s.elements[scrollfx.ElementOverlay].HasClass(p.ItemsHidden) {
			v.Opacity = 0
		}
		v.Dark = boolf(darkText)
	}
	return v
}

func boolf(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
