package scrollfx

import (
	"math"
	"time"
)

// DockState 编排元素的停靠状态
type DockState uint8

const (
	Natural DockState = iota
	Docked
)

func (s DockState) String() string {
	if s == Docked {
		return "docked"
	}
	return "natural"
}

// Thresholds 滚动比例阈值
type Thresholds struct {
	// Reveal 超过该比例显示结果面板、深色导航和折叠按钮
	Reveal float64
	// Heading 超过该比例标题和副标题停靠到左上角
	Heading float64
	// List 超过该比例导航列表项停靠到左下角
	List float64
	// FrameFade 导航边框透明度 = max(0, 1 - fraction*FrameFade)
	FrameFade float64
}

// DockLayout 停靠目标位置（视口坐标，单位像素）
type DockLayout struct {
	TitleX         float64
	TitleScale     float64
	TitleBarHeight float64
	SubtitleX      float64
	SubtitleY      float64
	ListLeft       float64
	ListBottom     float64
	ListGap        float64
}

// Delays 过渡延迟编排
type Delays struct {
	TitleDock      time.Duration
	SubtitleDock   time.Duration
	TitleUndock    time.Duration
	SubtitleUndock time.Duration
	ListDockStep   time.Duration
	ListUndockStep time.Duration
}

// ChoreographyOptions 编排引擎参数
type ChoreographyOptions struct {
	Thresholds   Thresholds
	Layout       DockLayout
	Delays       Delays
	Presentation Presentation
}

// DefaultChoreographyOptions 返回默认编排参数
func DefaultChoreographyOptions() ChoreographyOptions {
	return ChoreographyOptions{
		Thresholds: Thresholds{Reveal: 0.80, Heading: 0.30, List: 0.30, FrameFade: 5},
		Layout: DockLayout{
			TitleX:         68, // 给折叠按钮留出位置
			TitleScale:     0.38,
			TitleBarHeight: 50,
			SubtitleX:      32,
			SubtitleY:      24,
			ListLeft:       32,
			ListBottom:     32,
			ListGap:        6,
		},
		Delays: Delays{
			TitleDock:      0,
			SubtitleDock:   150 * time.Millisecond,
			TitleUndock:    120 * time.Millisecond,
			SubtitleUndock: 0,
			ListDockStep:   80 * time.Millisecond,
			ListUndockStep: 60 * time.Millisecond,
		},
		Presentation: DefaultPresentation(),
	}
}

// Flags 阈值驱动的可见性状态快照
type Flags struct {
	ResultsVisible bool
	ToggleVisible  bool
	NavItemsHidden bool
	FrameOpacity   float64
}

// Choreographer 根据滚动比例驱动元素停靠和可见性
//
// 每个元素只在跨越阈值时发生一次状态转换，重复通知是空操作。
// 停靠偏移在转换开始时根据元素当前布局位置重新计算。
type Choreographer struct {
	geo   Geometry
	style StylePort
	opts  ChoreographyOptions

	docks map[ElementID]DockState

	resultsVisible bool
	toggleVisible  bool
	navItemsHidden bool

	frameOpacity float64
	opacitySet   bool
}

// NewChoreographer 创建编排引擎
func NewChoreographer(geo Geometry, style StylePort, opts ChoreographyOptions) *Choreographer {
	return &Choreographer{
		geo:   geo,
		style: style,
		opts:  opts,
		docks: make(map[ElementID]DockState),
	}
}

// SetOptions 替换编排参数（热重载），已有停靠状态保持不变
func (c *Choreographer) SetOptions(opts ChoreographyOptions) {
	c.opts = opts
}

// State 返回元素的停靠状态
func (c *Choreographer) State(id ElementID) DockState {
	return c.docks[id]
}

// Flags 返回可见性状态快照
func (c *Choreographer) Flags() Flags {
	return Flags{
		ResultsVisible: c.resultsVisible,
		ToggleVisible:  c.toggleVisible,
		NavItemsHidden: c.navItemsHidden,
		FrameOpacity:   c.frameOpacity,
	}
}

// Update 根据本次滚动比例评估全部阈值
func (c *Choreographer) Update(fraction float64) {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		fraction = 0
	}
	c.updateReveal(fraction)
	c.updateFrameOpacity(fraction)
	c.updateHeading(fraction)
	c.updateList(fraction)
	c.updateToggle(fraction)
}

// ToggleNavItems 切换导航列表项的隐藏状态（用户点击折叠按钮），返回新状态
func (c *Choreographer) ToggleNavItems() bool {
	c.setNavItemsHidden(!c.navItemsHidden)
	return c.navItemsHidden
}

func (c *Choreographer) setNavItemsHidden(hidden bool) {
	c.navItemsHidden = hidden
	p := c.opts.Presentation
	c.setClass(ElementOverlay, p.ItemsHidden, hidden)
	c.setClass(ElementBody, p.Collapsed, hidden)
	c.setClass(ElementToggle, p.HiddenState, hidden)
}

func (c *Choreographer) updateReveal(fraction float64) {
	visible := fraction > c.opts.Thresholds.Reveal
	if visible == c.resultsVisible {
		return
	}
	c.resultsVisible = visible
	p := c.opts.Presentation
	c.setClass(ElementResults, p.Visible, visible)
	c.setClass(ElementNavContent, p.DarkText, visible)
	c.setClass(ElementToggle, p.Dark, visible)
	c.setClass(ElementTitleBar, p.Visible, visible)
}

func (c *Choreographer) updateToggle(fraction float64) {
	visible := fraction > c.opts.Thresholds.Reveal
	if visible != c.toggleVisible {
		c.toggleVisible = visible
		c.setClass(ElementToggle, c.opts.Presentation.Visible, visible)
	}
	// 回滚到阈值以下时恢复列表，不论用户上次的选择
	if !visible && c.navItemsHidden {
		c.setNavItemsHidden(false)
	}
}

func (c *Choreographer) updateFrameOpacity(fraction float64) {
	opacity := math.Max(0, 1-fraction*c.opts.Thresholds.FrameFade)
	changed := !c.opacitySet || opacity != c.frameOpacity
	c.frameOpacity = opacity
	if !changed || !c.present(ElementNavContent) {
		return
	}
	c.opacitySet = true
	c.style.SetProperty(ElementNavContent, PropFrameOpacity, opacity)
}

func (c *Choreographer) updateHeading(fraction float64) {
	dock := fraction > c.opts.Thresholds.Heading
	l := c.opts.Layout
	d := c.opts.Delays
	cls := c.opts.Presentation.HeadingDocked

	c.transition(ElementTitle, dock, cls, d.TitleDock, d.TitleUndock, func(r Rect) (float64, float64) {
		// 停靠后按 TitleScale 缩放，在标题栏内垂直居中
		scaled := r.H * l.TitleScale
		return l.TitleX - r.X, (l.TitleBarHeight/2 - scaled/2) - r.Y
	})
	c.transition(ElementSubtitle, dock, cls, d.SubtitleDock, d.SubtitleUndock, func(r Rect) (float64, float64) {
		return l.SubtitleX - r.X, l.SubtitleY - r.Y
	})
}

// transition 处理单个元素的 NATURAL/DOCKED 转换
func (c *Choreographer) transition(id ElementID, dock bool, class string, dockDelay, undockDelay time.Duration, target func(Rect) (float64, float64)) {
	r, ok := c.geo.Bounds(id)
	if !ok {
		return
	}
	switch {
	case dock && c.docks[id] == Natural:
		x, y := target(r)
		c.style.SetProperty(id, PropFlyX, x)
		c.style.SetProperty(id, PropFlyY, y)
		c.style.SetTransitionDelay(id, dockDelay)
		c.style.SetClass(id, class, true)
		c.docks[id] = Docked
	case !dock && c.docks[id] == Docked:
		c.style.SetTransitionDelay(id, undockDelay)
		c.style.SetClass(id, class, false)
		c.docks[id] = Natural
	}
}

func (c *Choreographer) updateList(fraction float64) {
	items := c.presentItems()
	if len(items) == 0 {
		return
	}
	l := c.opts.Layout
	d := c.opts.Delays
	cls := c.opts.Presentation.ListDocked

	if fraction > c.opts.Thresholds.List {
		pending := false
		for _, it := range items {
			if c.docks[it.id] == Natural {
				pending = true
				break
			}
		}
		if !pending {
			return
		}

		// 从视口底部向上堆叠：总高度包含项间距，但不含最后一项之后的间距
		total := -l.ListGap
		for _, it := range items {
			total += it.rect.H + l.ListGap
		}
		_, vh := c.geo.Viewport()
		y := vh - l.ListBottom - total

		for j, it := range items {
			if c.docks[it.id] == Natural {
				c.style.SetProperty(it.id, PropFlyX, l.ListLeft-it.rect.X)
				c.style.SetProperty(it.id, PropFlyY, y-it.rect.Y)
				c.style.SetTransitionDelay(it.id, time.Duration(j)*d.ListDockStep)
				c.style.SetClass(it.id, cls, true)
				c.docks[it.id] = Docked
			}
			y += it.rect.H + l.ListGap
		}
		return
	}

	n := len(items)
	for i, it := range items {
		if c.docks[it.id] != Docked {
			continue
		}
		// 反向动画的视觉顺序与正向相反
		c.style.SetTransitionDelay(it.id, time.Duration(n-1-i)*d.ListUndockStep)
		c.style.SetClass(it.id, cls, false)
		c.docks[it.id] = Natural
	}
}

type placedItem struct {
	id   ElementID
	rect Rect
}

func (c *Choreographer) presentItems() []placedItem {
	ids := c.geo.NavItems()
	items := make([]placedItem, 0, len(ids))
	for _, id := range ids {
		if r, ok := c.geo.Bounds(id); ok {
			items = append(items, placedItem{id: id, rect: r})
		}
	}
	return items
}

func (c *Choreographer) present(id ElementID) bool {
	_, ok := c.geo.Bounds(id)
	return ok
}

func (c *Choreographer) setClass(id ElementID, class string, on bool) {
	if class == "" || !c.present(id) {
		return
	}
	c.style.SetClass(id, class, on)
}
