package ui

import (
	"math"
	"testing"
	"time"

	"github.com/decker502/movirte/pkg/config"
	"github.com/decker502/movirte/pkg/scrollfx"
	"github.com/decker502/movirte/pkg/utils"
)

// fakeMeasure 每个字符宽 0.5 倍字号，高度等于字号
func fakeMeasure(s string, size float64) (float64, float64) {
	return float64(len(s)) * size * 0.5, size
}

func testStageConfig() StageConfig {
	return StageConfig{
		Title:          "MOVIRTE",
		Subtitle:       "move forward",
		Items:          []string{"one", "two", "three"},
		ResultsHeading: "Results",
		ResultsBody:    "body",
		TitleScale:     0.38,
		TitleBarHeight: 50,
		Transition:     900 * time.Millisecond,
		Presentation:   scrollfx.DefaultPresentation(),
	}
}

func newTestStage() *Stage {
	return NewStage(testStageConfig(), fakeMeasure, 1280, 800)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// settle 推进足够长时间让所有过渡完成
func settle(s *Stage) {
	for i := 0; i < 5; i++ {
		s.Update(time.Second)
	}
}

func TestStageLayout(t *testing.T) {
	s := newTestStage()

	w, h := s.Viewport()
	if w != 1280 || h != 800 {
		t.Fatalf("Viewport() = (%v, %v), 期望 (1280, 800)", w, h)
	}

	frame, ok := s.Bounds(scrollfx.ElementNavContent)
	if !ok {
		t.Fatal("nav-content 应存在")
	}
	if frame.X != config.FrameInset || frame.W != 1280-2*config.FrameInset {
		t.Errorf("边框 = %+v", frame)
	}

	title, _ := s.Bounds(scrollfx.ElementTitle)
	// 字号 120，7 个字符 -> 宽 420
	if !near(title.W, 420) || !near(title.H, 120) {
		t.Errorf("标题尺寸 = (%v, %v), 期望 (420, 120)", title.W, title.H)
	}
	if !near(title.X+title.W/2, frame.X+frame.W/2) {
		t.Errorf("标题应在边框内水平居中, X = %v", title.X)
	}

	sub, _ := s.Bounds(scrollfx.ElementSubtitle)
	if !near(sub.Y, title.Y+title.H+config.SubtitleGap) {
		t.Errorf("副标题 Y = %v", sub.Y)
	}

	items := s.NavItems()
	if len(items) != 3 {
		t.Fatalf("NavItems() 数量 = %d, 期望 3", len(items))
	}
	prev, _ := s.Bounds(items[0])
	for _, id := range items[1:] {
		r, _ := s.Bounds(id)
		if !near(r.Y, prev.Y+prev.H+config.NavItemGap) {
			t.Errorf("%s Y = %v, 期望紧随上一项", id, r.Y)
		}
		prev = r
	}

	if _, ok := s.Bounds("missing"); ok {
		t.Error("不存在的元素应返回 ok = false")
	}
}

func TestStageResize(t *testing.T) {
	s := newTestStage()
	s.SetViewport(600, 400)

	title, _ := s.Bounds(scrollfx.ElementTitle)
	// 600 * 0.1 = 60
	if s.Element(scrollfx.ElementTitle).FontSize != 60 || !near(title.H, 60) {
		t.Errorf("窄窗口标题字号 = %v, 期望 60", s.Element(scrollfx.ElementTitle).FontSize)
	}
	results, _ := s.Bounds(scrollfx.ElementResults)
	if !near(results.Y, 400*config.ResultsTopRatio) {
		t.Errorf("结果面板 Y = %v", results.Y)
	}
}

func TestStageStylePortMissingElement(t *testing.T) {
	s := newTestStage()
	// 不存在的元素均为空操作
	s.SetClass("missing", "visible", true)
	s.SetProperty("missing", scrollfx.PropFlyX, 1)
	s.SetTransitionDelay("missing", time.Second)
	if _, ok := s.Visual("missing"); ok {
		t.Error("不存在的元素不应有视觉属性")
	}
}

func TestStageInitialVisuals(t *testing.T) {
	s := newTestStage()

	tests := []struct {
		name    string
		id      scrollfx.ElementID
		opacity float64
		offsetY float64
	}{
		{"标题可见", scrollfx.ElementTitle, 1, 0},
		{"边框可见", scrollfx.ElementNavContent, 1, 0},
		{"结果面板隐藏并下移", scrollfx.ElementResults, 0, config.ResultsHiddenOffset},
		{"折叠按钮隐藏", scrollfx.ElementToggle, 0, 0},
		{"标题栏隐藏", scrollfx.ElementTitleBar, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := s.Visual(tt.id)
			if !ok {
				t.Fatal("元素应存在")
			}
			if v.Opacity != tt.opacity || v.Offset.Y != tt.offsetY {
				t.Errorf("visual = %+v, 期望 opacity %v offsetY %v", v, tt.opacity, tt.offsetY)
			}
		})
	}
	if s.Animating() {
		t.Error("初始状态不应有过渡")
	}
}

func TestStageFollowsChoreography(t *testing.T) {
	s := newTestStage()
	c := scrollfx.NewChoreographer(s, s, scrollfx.DefaultChoreographyOptions())
	p := s.cfg.Presentation

	c.Update(0.5)
	if !s.Element(scrollfx.ElementTitle).HasClass(p.HeadingDocked) {
		t.Fatal("0.5 时标题应停靠")
	}
	settle(s)

	title, _ := s.Bounds(scrollfx.ElementTitle)
	v, _ := s.Visual(scrollfx.ElementTitle)
	if !near(title.X+v.Offset.X, 68) {
		t.Errorf("停靠后标题 X = %v, 期望 68", title.X+v.Offset.X)
	}
	if !near(v.Scale, 0.38) {
		t.Errorf("停靠后标题缩放 = %v, 期望 0.38", v.Scale)
	}
	// 缩放后高度在 50px 标题栏内居中
	if !near(title.Y+v.Offset.Y+title.H*v.Scale/2, 25) {
		t.Errorf("停靠后标题中心 Y = %v, 期望 25", title.Y+v.Offset.Y+title.H*v.Scale/2)
	}

	sub, _ := s.Bounds(scrollfx.ElementSubtitle)
	sv, _ := s.Visual(scrollfx.ElementSubtitle)
	if !near(sub.X+sv.Offset.X, 32) || !near(sub.Y+sv.Offset.Y, 24) {
		t.Errorf("停靠后副标题 = (%v, %v), 期望 (32, 24)", sub.X+sv.Offset.X, sub.Y+sv.Offset.Y)
	}

	// 列表项底部对齐到视口底部 32px
	items := s.NavItems()
	last, _ := s.Bounds(items[len(items)-1])
	lv, _ := s.Visual(items[len(items)-1])
	if !near(last.Y+lv.Offset.Y+last.H, 800-32) {
		t.Errorf("最后一项底部 = %v, 期望 768", last.Y+lv.Offset.Y+last.H)
	}

	fv, _ := s.Visual(scrollfx.ElementNavContent)
	if fv.Opacity != 0 {
		t.Errorf("0.5 时边框透明度 = %v, 期望 0", fv.Opacity)
	}

	c.Update(0)
	settle(s)
	v, _ = s.Visual(scrollfx.ElementTitle)
	if !near(v.Offset.X, 0) || !near(v.Scale, 1) {
		t.Errorf("回滚后标题 visual = %+v, 期望回到自然位置", v)
	}
}

func TestStageTransitionDelay(t *testing.T) {
	s := newTestStage()
	c := scrollfx.NewChoreographer(s, s, scrollfx.DefaultChoreographyOptions())

	c.Update(0.5)
	s.Update(100 * time.Millisecond)

	title, _ := s.Visual(scrollfx.ElementTitle)
	sub, _ := s.Visual(scrollfx.ElementSubtitle)
	if title.Offset.X == 0 {
		t.Error("标题无延迟，100ms 后应已开始移动")
	}
	if sub.Offset.X != 0 || sub.Offset.Y != 0 {
		t.Errorf("副标题延迟 150ms，100ms 时不应移动, offset = %+v", sub.Offset)
	}
	if !s.Animating() {
		t.Error("过渡进行中 Animating() 应为 true")
	}

	s.Update(100 * time.Millisecond)
	sub, _ = s.Visual(scrollfx.ElementSubtitle)
	if sub.Offset.X == 0 {
		t.Error("200ms 后副标题应已开始移动")
	}

	settle(s)
	if s.Animating() {
		t.Error("过渡结束后 Animating() 应为 false")
	}
}

func TestStageRevealAndToggle(t *testing.T) {
	s := newTestStage()
	c := scrollfx.NewChoreographer(s, s, scrollfx.DefaultChoreographyOptions())

	if s.HitToggle(20, 20) {
		t.Fatal("折叠按钮隐藏时不应响应点击")
	}

	c.Update(0.9)
	settle(s)

	rv, _ := s.Visual(scrollfx.ElementResults)
	if rv.Opacity != 1 || rv.Offset.Y != 0 {
		t.Errorf("结果面板 visual = %+v, 期望完全显示", rv)
	}
	tv, _ := s.Visual(scrollfx.ElementTitle)
	if tv.Dark != 1 {
		t.Errorf("标题 Dark = %v, 期望 1", tv.Dark)
	}
	if !s.HitToggle(20, 20) {
		t.Error("折叠按钮显示后应响应点击")
	}
	if s.HitToggle(200, 200) {
		t.Error("按钮外的点击不应命中")
	}

	c.ToggleNavItems()
	settle(s)
	for _, id := range s.NavItems() {
		v, _ := s.Visual(id)
		if v.Opacity != 0 {
			t.Errorf("%s 隐藏后透明度 = %v, 期望 0", id, v.Opacity)
		}
	}

	c.Update(0.5)
	settle(s)
	for _, id := range s.NavItems() {
		v, _ := s.Visual(id)
		if v.Opacity != 1 {
			t.Errorf("%s 回滚后透明度 = %v, 期望 1", id, v.Opacity)
		}
	}
}

func TestStageSidebarCollapse(t *testing.T) {
	cfg := testStageConfig()
	cfg.Sidebar = config.SidebarConfig{Enabled: true, Logo: "M"}
	s := NewStage(cfg, fakeMeasure, 1280, 800)

	frame, _ := s.Bounds(scrollfx.ElementNavContent)
	if frame.X != config.SidebarWidth+config.FrameInset {
		t.Fatalf("侧边栏展开时边框 X = %v", frame.X)
	}

	s.SetClass(scrollfx.ElementBody, cfg.Presentation.Collapsed, true)
	if !s.SidebarCollapsed() {
		t.Fatal("SidebarCollapsed() 应为 true")
	}
	frame, _ = s.Bounds(scrollfx.ElementNavContent)
	if frame.X != config.FrameInset {
		t.Errorf("侧边栏折叠后边框 X = %v, 期望 %v", frame.X, config.FrameInset)
	}
}

func TestStageSetConfig(t *testing.T) {
	s := newTestStage()

	cfg := testStageConfig()
	cfg.Title = "NEW"
	cfg.Items = []string{"a", "b"}
	s.SetConfig(cfg)

	if s.Element(scrollfx.ElementTitle).Text != "NEW" {
		t.Error("标题文本未更新")
	}
	if len(s.NavItems()) != 2 {
		t.Fatalf("NavItems() 数量 = %d, 期望 2", len(s.NavItems()))
	}
	if _, ok := s.Bounds(scrollfx.NavItemID(2)); ok {
		t.Error("多余的列表项应被移除")
	}

	cfg.Items = []string{"a", "b", "c", "d"}
	s.SetConfig(cfg)
	if len(s.NavItems()) != 4 {
		t.Fatalf("NavItems() 数量 = %d, 期望 4", len(s.NavItems()))
	}
	v, _ := s.Visual(scrollfx.NavItemID(3))
	if v.Opacity != 1 || v.Scale != 1 {
		t.Errorf("新增列表项 visual = %+v, 期望静止可见", v)
	}
}

func TestStageTransitionTiming(t *testing.T) {
	cfg := testStageConfig()
	cfg.Timing = utils.EaseLinear
	s := NewStage(cfg, fakeMeasure, 1280, 800)

	s.SetProperty(scrollfx.ElementNavContent, scrollfx.PropFrameOpacity, 0.5)
	s.Update(450 * time.Millisecond)
	v, _ := s.Visual(scrollfx.ElementNavContent)
	if !near(v.Opacity, 0.75) {
		t.Errorf("线性过渡中点 opacity = %v, 期望 0.75", v.Opacity)
	}
	s.Update(450 * time.Millisecond)
	v, _ = s.Visual(scrollfx.ElementNavContent)
	if !near(v.Opacity, 0.5) || s.Animating() {
		t.Errorf("过渡结束 opacity = %v, 期望 0.5", v.Opacity)
	}
}
