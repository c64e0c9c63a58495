package scrollfx

import (
	"fmt"
	"time"
)

// ElementID 标识页面上参与编排的元素
type ElementID string

// 编排元素的角色 ID
const (
	ElementTitle      ElementID = "nav-title"
	ElementSubtitle   ElementID = "nav-subtitle"
	ElementResults    ElementID = "product-section"
	ElementToggle     ElementID = "nav-list-toggle"
	ElementNavContent ElementID = "nav-content"
	ElementTitleBar   ElementID = "nav-title-bg"
	ElementOverlay    ElementID = "nav-overlay"
	ElementBody       ElementID = "body"
)

// NavItemID 返回第 i 个导航列表项的 ID
func NavItemID(i int) ElementID {
	return ElementID(fmt.Sprintf("nav-item-%d", i))
}

// 编排写入的自定义属性
const (
	PropFlyX         = "--fly-x"
	PropFlyY         = "--fly-y"
	PropFrameOpacity = "--frame-opacity"
)

// Rect 屏幕坐标下的矩形，X/Y 为左上角
type Rect struct {
	X, Y float64
	W, H float64
}

// Geometry 读取元素几何信息的端口
type Geometry interface {
	// Viewport 返回视口尺寸
	Viewport() (width, height float64)

	// Bounds 返回元素当前布局位置；元素不存在时 ok 为 false
	Bounds(id ElementID) (r Rect, ok bool)

	// NavItems 按文档顺序返回导航列表项
	NavItems() []ElementID
}

// StylePort 写入元素表现状态的端口
type StylePort interface {
	SetClass(id ElementID, class string, on bool)
	SetProperty(id ElementID, name string, value float64)
	SetTransitionDelay(id ElementID, delay time.Duration)
}

// Presentation 将编排状态映射为表现层的类名
//
// 编排引擎只维护显式状态，类名是可替换的表现层约定。
type Presentation struct {
	HeadingDocked string
	ListDocked    string
	Visible       string
	DarkText      string
	Dark          string
	ItemsHidden   string
	Collapsed     string
	HiddenState   string
}

// DefaultPresentation 返回默认类名
func DefaultPresentation() Presentation {
	return Presentation{
		HeadingDocked: "fly-to-top",
		ListDocked:    "fly-to-corner",
		Visible:       "visible",
		DarkText:      "dark-text",
		Dark:          "dark",
		ItemsHidden:   "nav-items-hidden",
		Collapsed:     "nav-collapsed",
		HiddenState:   "hidden-state",
	}
}

// Surface 帧绘制表面
type Surface[F any] interface {
	Size() (width, height int)
	SetSize(width, height int)
	Clear()
	Draw(frame F, p Placement)
}

// ScrollEvent 一次滚动通知
//
// Limit 为最大滚动偏移（可滚动总高度 - 视口高度）。
type ScrollEvent struct {
	Offset float64
	Limit  float64
}

// ScrollSource 滚动通知来源，Subscribe 返回取消订阅函数
type ScrollSource interface {
	Subscribe(fn func(ScrollEvent)) (unsubscribe func())
}
