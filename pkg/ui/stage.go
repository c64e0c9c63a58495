// Package ui 提供导航浮层的 Ebitengine 实现
//
// Stage 保存各元素的自然布局、类名集合和自定义属性，实现 scrollfx.Geometry 和
// scrollfx.StylePort。类名和属性只描述目标状态，实际显示由 Update 中的过渡动画
// 逐帧逼近（相当于浏览器的 CSS transition）。
package ui

import (
	"time"

	"github.com/decker502/movirte/pkg/config"
	"github.com/decker502/movirte/pkg/scrollfx"
	"github.com/decker502/movirte/pkg/utils"
)

// Measurer 测量文本在指定字号下的宽高
type Measurer func(text string, size float64) (width, height float64)

// Kind 元素类型，决定绘制方式
type Kind uint8

const (
	KindBlock Kind = iota
	KindText
	KindFrame
	KindPanel
	KindButton
)

// StageConfig 浮层内容和表现参数
type StageConfig struct {
	Title          string
	Subtitle       string
	Items          []string
	ResultsHeading string
	ResultsBody    string

	Sidebar config.SidebarConfig

	TitleScale     float64
	TitleBarHeight float64
	Transition     time.Duration
	Timing         utils.TimingFunc
	Presentation   scrollfx.Presentation
}

// StageConfigFrom 从播放器配置构建浮层配置
func StageConfigFrom(cfg *config.PlayerConfig) StageConfig {
	return StageConfig{
		Title:          cfg.Nav.Title,
		Subtitle:       cfg.Nav.Subtitle,
		Items:          cfg.Nav.Items,
		ResultsHeading: cfg.Nav.ResultsHeading,
		ResultsBody:    cfg.Nav.ResultsBody,
		Sidebar:        cfg.Sidebar,
		TitleScale:     cfg.Choreography.TitleScale,
		TitleBarHeight: cfg.Choreography.TitleBarHeight,
		Transition:     cfg.TransitionDuration(),
		Timing:         cfg.TransitionTimingFunc(),
		Presentation:   scrollfx.DefaultPresentation(),
	}
}

// Element 浮层中的一个元素
type Element struct {
	ID       scrollfx.ElementID
	Kind     Kind
	Text     string
	FontSize float64

	layout  scrollfx.Rect
	classes map[string]bool
	props   map[string]float64
	delay   time.Duration

	transition
}

// HasClass 元素是否带有类名
func (e *Element) HasClass(class string) bool {
	return e.classes[class]
}

// Prop 返回自定义属性，未设置时返回 def
func (e *Element) Prop(name string, def float64) float64 {
	if v, ok := e.props[name]; ok {
		return v
	}
	return def
}

// Layout 返回元素自然布局位置
func (e *Element) Layout() scrollfx.Rect {
	return e.layout
}

// Stage 导航浮层
type Stage struct {
	cfg     StageConfig
	measure Measurer

	vw, vh float64

	elements map[scrollfx.ElementID]*Element
	order    []scrollfx.ElementID
	navItems []scrollfx.ElementID
}

// NewStage 创建浮层并按视口完成初始布局
func NewStage(cfg StageConfig, measure Measurer, viewportW, viewportH float64) *Stage {
	if cfg.Transition <= 0 {
		cfg.Transition = 900 * time.Millisecond
	}
	if cfg.Timing == nil {
		cfg.Timing = utils.CSSEase
	}
	if cfg.TitleScale <= 0 {
		cfg.TitleScale = 1
	}
	s := &Stage{
		cfg:      cfg,
		measure:  measure,
		elements: make(map[scrollfx.ElementID]*Element),
	}

	s.add(scrollfx.ElementBody, KindBlock, "", 0)
	s.add(scrollfx.ElementOverlay, KindBlock, "", 0)
	s.add(scrollfx.ElementNavContent, KindFrame, "", 0)
	s.add(scrollfx.ElementTitleBar, KindPanel, "", 0)
	s.add(scrollfx.ElementTitle, KindText, cfg.Title, 0)
	s.add(scrollfx.ElementSubtitle, KindText, cfg.Subtitle, config.SubtitleFontSize)
	for i, label := range cfg.Items {
		id := scrollfx.NavItemID(i)
		s.add(id, KindText, label, config.NavItemFontSize)
		s.navItems = append(s.navItems, id)
	}
	s.add(scrollfx.ElementResults, KindPanel, cfg.ResultsHeading, config.ResultsHeadingSize)
	s.add(scrollfx.ElementToggle, KindButton, "", 0)

	s.SetViewport(viewportW, viewportH)
	for _, id := range s.order {
		e := s.elements[id]
		e.visual = s.target(e)
		e.to = e.visual
	}
	return s
}

func (s *Stage) add(id scrollfx.ElementID, kind Kind, text string, fontSize float64) {
	s.elements[id] = &Element{
		ID:       id,
		Kind:     kind,
		Text:     text,
		FontSize: fontSize,
		classes:  make(map[string]bool),
		props:    make(map[string]float64),
	}
	rest := Visual{Scale: 1, Opacity: 1}
	s.elements[id].visual = rest
	s.elements[id].to = rest
	s.order = append(s.order, id)
}

// Element 返回元素，不存在时返回 nil
func (s *Stage) Element(id scrollfx.ElementID) *Element {
	return s.elements[id]
}

// SetViewport 视口尺寸变化时重新布局
func (s *Stage) SetViewport(w, h float64) {
	s.vw, s.vh = w, h
	s.relayout()
}

// SidebarCollapsed 侧边栏是否因列表隐藏而折叠
func (s *Stage) SidebarCollapsed() bool {
	return s.elements[scrollfx.ElementBody].HasClass(s.cfg.Presentation.Collapsed)
}

// relayout 计算所有元素的自然位置
func (s *Stage) relayout() {
	vw, vh := s.vw, s.vh
	x0 := config.ContentLeft(s.cfg.Sidebar.Enabled, s.SidebarCollapsed())

	full := scrollfx.Rect{W: vw, H: vh}
	s.elements[scrollfx.ElementBody].layout = full
	s.elements[scrollfx.ElementOverlay].layout = full
	s.elements[scrollfx.ElementTitleBar].layout = scrollfx.Rect{W: vw, H: s.cfg.TitleBarHeight}
	s.elements[scrollfx.ElementToggle].layout = scrollfx.Rect{
		X: config.ToggleX, Y: config.ToggleY, W: config.ToggleSize, H: config.ToggleSize,
	}

	frame := scrollfx.Rect{
		X: x0 + config.FrameInset,
		Y: config.FrameInset,
		W: vw - x0 - 2*config.FrameInset,
		H: vh - 2*config.FrameInset,
	}
	s.elements[scrollfx.ElementNavContent].layout = frame

	title := s.elements[scrollfx.ElementTitle]
	title.FontSize = config.TitleFontSize(vw - x0)
	tw, th := s.measure(title.Text, title.FontSize)
	title.layout = scrollfx.Rect{
		X: frame.X + (frame.W-tw)/2,
		Y: frame.Y + frame.H*config.TitleTopRatio,
		W: tw,
		H: th,
	}

	sub := s.elements[scrollfx.ElementSubtitle]
	sw, sh := s.measure(sub.Text, sub.FontSize)
	sub.layout = scrollfx.Rect{
		X: frame.X + (frame.W-sw)/2,
		Y: title.layout.Y + th + config.SubtitleGap,
		W: sw,
		H: sh,
	}

	y := frame.Y + frame.H*config.NavListTopRatio
	for _, id := range s.navItems {
		it := s.elements[id]
		w, h := s.measure(it.Text, it.FontSize)
		it.layout = scrollfx.Rect{X: frame.X + config.NavListLeft, Y: y, W: w, H: h}
		y += h + config.NavItemGap
	}

	s.elements[scrollfx.ElementResults].layout = scrollfx.Rect{
		X: x0 + config.FrameInset,
		Y: vh * config.ResultsTopRatio,
		W: vw - x0 - 2*config.FrameInset,
		H: vh * config.ResultsHeightRatio,
	}
}

// --- scrollfx.Geometry ---

// Viewport 返回视口尺寸
func (s *Stage) Viewport() (float64, float64) {
	return s.vw, s.vh
}

// Bounds 返回元素的布局位置（不含过渡中的平移）
func (s *Stage) Bounds(id scrollfx.ElementID) (scrollfx.Rect, bool) {
	e, ok := s.elements[id]
	if !ok {
		return scrollfx.Rect{}, false
	}
	return e.layout, true
}

// NavItems 按文档顺序返回导航列表项
func (s *Stage) NavItems() []scrollfx.ElementID {
	return s.navItems
}

// --- scrollfx.StylePort ---

// SetClass 设置或移除类名；折叠类名变化会触发重新布局
func (s *Stage) SetClass(id scrollfx.ElementID, class string, on bool) {
	e, ok := s.elements[id]
	if !ok {
		return
	}
	if e.classes[class] == on {
		return
	}
	if on {
		e.classes[class] = true
	} else {
		delete(e.classes, class)
	}
	if id == scrollfx.ElementBody && class == s.cfg.Presentation.Collapsed {
		s.relayout()
	}
}

// SetProperty 设置自定义属性
func (s *Stage) SetProperty(id scrollfx.ElementID, name string, value float64) {
	if e, ok := s.elements[id]; ok {
		e.props[name] = value
	}
}

// SetTransitionDelay 设置下一次过渡开始前的延迟
func (s *Stage) SetTransitionDelay(id scrollfx.ElementID, delay time.Duration) {
	if e, ok := s.elements[id]; ok {
		e.delay = delay
	}
}

// HitToggle 判断点击是否落在可见的折叠按钮上
func (s *Stage) HitToggle(x, y float64) bool {
	e := s.elements[scrollfx.ElementToggle]
	if !e.HasClass(s.cfg.Presentation.Visible) {
		return false
	}
	r := e.layout
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// SetConfig 应用新的浮层配置（热重载），已有元素的类名和过渡状态保持不变
func (s *Stage) SetConfig(cfg StageConfig) {
	if cfg.Transition <= 0 {
		cfg.Transition = s.cfg.Transition
	}
	if cfg.Timing == nil {
		cfg.Timing = s.cfg.Timing
	}
	if cfg.TitleScale <= 0 {
		cfg.TitleScale = s.cfg.TitleScale
	}
	s.cfg = cfg
	s.elements[scrollfx.ElementTitle].Text = cfg.Title
	s.elements[scrollfx.ElementSubtitle].Text = cfg.Subtitle
	s.elements[scrollfx.ElementResults].Text = cfg.ResultsHeading

	for i, label := range cfg.Items {
		id := scrollfx.NavItemID(i)
		if e, ok := s.elements[id]; ok {
			e.Text = label
			continue
		}
		s.add(id, KindText, label, config.NavItemFontSize)
		s.navItems = append(s.navItems, id)
	}
	for _, id := range s.navItems[len(cfg.Items):] {
		delete(s.elements, id)
		s.order = removeID(s.order, id)
	}
	s.navItems = s.navItems[:len(cfg.Items)]

	s.relayout()
}

func removeID(ids []scrollfx.ElementID, id scrollfx.ElementID) []scrollfx.ElementID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
