package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/movirte/pkg/config"
	"github.com/decker502/movirte/pkg/scrollfx"
	"github.com/decker502/movirte/pkg/utils"
)

var (
	colorLight   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorDark    = color.RGBA{R: 17, G: 17, B: 17, A: 255}
	colorPanel   = color.RGBA{R: 250, G: 250, B: 248, A: 235}
	colorSidebar = color.RGBA{R: 12, G: 12, B: 14, A: 230}
	colorActive  = color.RGBA{R: 255, G: 196, B: 0, A: 255}
)

// Fonts 浮层使用的字体
type Fonts struct {
	Regular *text.GoTextFaceSource
	Bold    *text.GoTextFaceSource
}

// Measurer 返回基于常规字体的文本测量函数
func (f Fonts) Measurer() Measurer {
	return func(s string, size float64) (float64, float64) {
		return text.Measure(s, &text.GoTextFace{Source: f.Regular, Size: size}, size*1.3)
	}
}

func (f Fonts) face(bold bool, size float64) *text.GoTextFace {
	src := f.Regular
	if bold && f.Bold != nil {
		src = f.Bold
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// mix 按 t 在浅色和深色之间插值
func mix(t float64) color.RGBA {
	l := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{
		R: l(colorLight.R, colorDark.R),
		G: l(colorLight.G, colorDark.G),
		B: l(colorLight.B, colorDark.B),
		A: 255,
	}
}

func withAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	// 预乘 alpha
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// Draw 绘制浮层
func (s *Stage) Draw(screen *ebiten.Image, fonts Fonts) {
	if fonts.Regular == nil {
		return
	}
	s.drawSidebar(screen, fonts)
	s.drawFrame(screen)
	s.drawTitleBar(screen)
	s.drawText(screen, fonts, s.Element(scrollfx.ElementTitle), true)
	s.drawText(screen, fonts, s.Element(scrollfx.ElementSubtitle), false)
	for _, id := range s.navItems {
		s.drawText(screen, fonts, s.Element(id), false)
	}
	s.drawResults(screen, fonts)
	s.drawToggle(screen)
}

func (s *Stage) drawSidebar(screen *ebiten.Image, fonts Fonts) {
	sb := s.cfg.Sidebar
	if !sb.Enabled || s.SidebarCollapsed() {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(config.SidebarWidth), float32(s.vh), colorSidebar, false)

	x := config.SidebarPadding
	y := config.SidebarPadding
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorLight)
	text.Draw(screen, sb.Logo, fonts.face(true, config.SidebarLogoSize), op)
	y += config.SidebarLogoSize * 2

	for _, link := range sb.Links {
		clr := colorLight
		if link.Href == sb.Current {
			clr = colorActive
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, link.Label, fonts.face(link.Href == sb.Current, config.SidebarLinkSize), op)
		y += config.SidebarLinkSize + config.SidebarLinkSpacing
	}
}

func (s *Stage) drawFrame(screen *ebiten.Image) {
	e := s.Element(scrollfx.ElementNavContent)
	if e.visual.Opacity <= 0 {
		return
	}
	r := e.layout
	clr := withAlpha(mix(e.visual.Dark), e.visual.Opacity)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		float32(config.FrameBorderWidth), clr, true)
}

func (s *Stage) drawTitleBar(screen *ebiten.Image) {
	e := s.Element(scrollfx.ElementTitleBar)
	if e.visual.Opacity <= 0 {
		return
	}
	r := e.layout
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		withAlpha(colorPanel, e.visual.Opacity), false)
}

func (s *Stage) drawText(screen *ebiten.Image, fonts Fonts, e *Element, bold bool) {
	if e == nil || e.Text == "" || e.visual.Opacity <= 0 {
		return
	}
	// 缩放以左上角为原点
	op := &text.DrawOptions{}
	op.GeoM.Scale(e.visual.Scale, e.visual.Scale)
	op.GeoM.Translate(e.layout.X+e.visual.Offset.X, e.layout.Y+e.visual.Offset.Y)
	op.ColorScale.ScaleWithColor(mix(e.visual.Dark))
	op.ColorScale.ScaleAlpha(float32(e.visual.Opacity))
	text.Draw(screen, e.Text, fonts.face(bold, e.FontSize), op)
}

func (s *Stage) drawResults(screen *ebiten.Image, fonts Fonts) {
	e := s.Element(scrollfx.ElementResults)
	if e.visual.Opacity <= 0 {
		return
	}
	r := e.layout
	x := r.X + e.visual.Offset.X
	y := r.Y + e.visual.Offset.Y
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.W), float32(r.H),
		withAlpha(colorPanel, e.visual.Opacity), false)

	pad := config.ResultsPadding
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+pad, y+pad)
	op.ColorScale.ScaleWithColor(colorDark)
	op.ColorScale.ScaleAlpha(float32(e.visual.Opacity))
	text.Draw(screen, e.Text, fonts.face(true, e.FontSize), op)

	body := fonts.face(false, config.ResultsBodySize)
	lines := utils.WrapText(s.cfg.ResultsBody, r.W-2*pad, func(str string) float64 {
		w, _ := text.Measure(str, body, 0)
		return w
	})
	op = &text.DrawOptions{}
	op.GeoM.Translate(x+pad, y+pad+e.FontSize*1.6)
	op.LineSpacing = config.ResultsBodySize * 1.5
	op.ColorScale.ScaleWithColor(colorDark)
	op.ColorScale.ScaleAlpha(float32(e.visual.Opacity))
	text.Draw(screen, strings.Join(lines, "\n"), body, op)
}

func (s *Stage) drawToggle(screen *ebiten.Image) {
	e := s.Element(scrollfx.ElementToggle)
	if e.visual.Opacity <= 0 {
		return
	}
	r := e.layout
	clr := withAlpha(mix(e.visual.Dark), e.visual.Opacity)
	bars := 3
	if e.HasClass(s.cfg.Presentation.HiddenState) {
		bars = 1
	}
	barH := float32(2)
	step := float32(r.H) / float32(bars+1)
	for i := 1; i <= bars; i++ {
		y := float32(r.Y) + step*float32(i) - barH/2
		vector.DrawFilledRect(screen, float32(r.X)+6, y, float32(r.W)-12, barH, clr, true)
	}
}
