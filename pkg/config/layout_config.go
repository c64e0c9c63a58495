package config

// 布局配置常量
// 本文件定义了导航浮层各元素的自然布局参数（未停靠时的位置），单位为像素。
// 停靠目标位置属于编排参数，见 ChoreographyConfig。

const (
	// FrameInset 导航边框距内容区边缘的距离
	FrameInset = 48.0

	// FrameBorderWidth 导航边框线宽
	FrameBorderWidth = 2.0

	// TitleMaxFontSize 标题最大字号，窄窗口按宽度的 TitleFontRatio 缩小
	TitleMaxFontSize = 120.0
	TitleFontRatio   = 0.1

	// TitleTopRatio 标题顶部位于边框高度的比例处
	TitleTopRatio = 0.3

	// SubtitleFontSize 副标题字号，SubtitleGap 为与标题的间距
	SubtitleFontSize = 22.0
	SubtitleGap      = 12.0

	// NavItemFontSize 导航列表项字号
	NavItemFontSize = 18.0
	NavItemGap      = 10.0
	NavListLeft     = 40.0
	NavListTopRatio = 0.62

	// ResultsTopRatio 结果面板顶部位于视口高度的比例处
	ResultsTopRatio     = 0.55
	ResultsHeightRatio  = 0.4
	ResultsHiddenOffset = 40.0
	ResultsPadding      = 32.0
	ResultsHeadingSize  = 36.0
	ResultsBodySize     = 18.0

	// ToggleX/ToggleY/ToggleSize 折叠按钮位置（位于标题栏左侧）
	ToggleX    = 16.0
	ToggleY    = 9.0
	ToggleSize = 32.0

	// SidebarWidth 侧边栏展开宽度，折叠后为 0
	SidebarWidth       = 220.0
	SidebarPadding     = 24.0
	SidebarLogoSize    = 28.0
	SidebarLinkSize    = 16.0
	SidebarLinkSpacing = 14.0
)

// ContentLeft 返回内容区左边界（侧边栏右侧）
func ContentLeft(sidebarEnabled, collapsed bool) float64 {
	if !sidebarEnabled || collapsed {
		return 0
	}
	return SidebarWidth
}

// TitleFontSize 根据视口宽度计算标题字号
func TitleFontSize(viewportWidth float64) float64 {
	size := viewportWidth * TitleFontRatio
	if size > TitleMaxFontSize {
		return TitleMaxFontSize
	}
	if size < SubtitleFontSize {
		return SubtitleFontSize
	}
	return size
}
