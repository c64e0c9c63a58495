package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/decker502/movirte/pkg/scrollfx"
	"github.com/decker502/movirte/pkg/utils"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid config")

// DefaultConfigPath 内嵌默认配置的路径
const DefaultConfigPath = "data/movirte.yaml"

// PlayerConfig 滚动帧播放器配置
//
// 配置文件位置: data/movirte.yaml（内嵌），可通过 -config 覆盖
type PlayerConfig struct {
	Window       WindowConfig       `yaml:"window"`
	Frames       FramesConfig       `yaml:"frames"`
	Animation    AnimationConfig    `yaml:"animation"`
	Scroll       ScrollConfig       `yaml:"scroll"`
	Choreography ChoreographyConfig `yaml:"choreography"`
	Nav          NavConfig          `yaml:"nav"`
	Sidebar      SidebarConfig      `yaml:"sidebar"`
}

// WindowConfig 窗口设置
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// FramesConfig 帧序列设置
type FramesConfig struct {
	// Dir 帧所在目录（相对于帧根目录）
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Ext    string `yaml:"ext"`
	Digits int    `yaml:"digits"`
	Count  int    `yaml:"count"`

	// LoadConcurrency 同时解码的帧数，0 表示一次性全部发出
	LoadConcurrency int `yaml:"loadConcurrency"`

	// MaxDimension 解码后长边超过该值时缩小，0 表示不缩放
	MaxDimension int `yaml:"maxDimension"`
}

// AnimationConfig 帧插值参数
type AnimationConfig struct {
	Easing  float64 `yaml:"easing"`
	Epsilon float64 `yaml:"epsilon"`
}

// ScrollConfig 平滑滚动参数
type ScrollConfig struct {
	Lerp float64 `yaml:"lerp"`

	// LengthViewports 可滚动内容总高度（以视口高度为单位）
	LengthViewports float64 `yaml:"lengthViewports"`

	// WheelSpeed 每格滚轮滚动的像素数
	WheelSpeed float64 `yaml:"wheelSpeed"`

	// KeyStep 方向键每次滚动的像素数
	KeyStep float64 `yaml:"keyStep"`
}

// ChoreographyConfig 编排阈值、停靠位置和延迟（毫秒）
type ChoreographyConfig struct {
	Reveal    float64 `yaml:"reveal"`
	Heading   float64 `yaml:"heading"`
	List      float64 `yaml:"list"`
	FrameFade float64 `yaml:"frameFade"`

	TitleX         float64 `yaml:"titleX"`
	TitleScale     float64 `yaml:"titleScale"`
	TitleBarHeight float64 `yaml:"titleBarHeight"`
	SubtitleX      float64 `yaml:"subtitleX"`
	SubtitleY      float64 `yaml:"subtitleY"`
	ListLeft       float64 `yaml:"listLeft"`
	ListBottom     float64 `yaml:"listBottom"`
	ListGap        float64 `yaml:"listGap"`

	TitleDockMs      int `yaml:"titleDockMs"`
	SubtitleDockMs   int `yaml:"subtitleDockMs"`
	TitleUndockMs    int `yaml:"titleUndockMs"`
	SubtitleUndockMs int `yaml:"subtitleUndockMs"`
	ListDockStepMs   int `yaml:"listDockStepMs"`
	ListUndockStepMs int `yaml:"listUndockStepMs"`

	// TransitionMs 元素过渡动画时长
	TransitionMs int `yaml:"transitionMs"`
	// TransitionTiming 过渡缓动关键字（linear、ease、ease-in、ease-out、ease-in-out 等）
	TransitionTiming string `yaml:"transitionTiming"`
}

// NavConfig 导航浮层内容
type NavConfig struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle"`
	Items    []string `yaml:"items"`

	ResultsHeading string `yaml:"resultsHeading"`
	ResultsBody    string `yaml:"resultsBody"`
}

// SidebarLink 侧边栏链接
type SidebarLink struct {
	Href  string `yaml:"href"`
	Label string `yaml:"label"`
}

// SidebarConfig 左侧导航栏
type SidebarConfig struct {
	Enabled bool          `yaml:"enabled"`
	Logo    string        `yaml:"logo"`
	Current string        `yaml:"current"`
	Links   []SidebarLink `yaml:"links"`
}

// DefaultPlayerConfig 返回默认配置（与内嵌 yaml 一致）
func DefaultPlayerConfig() *PlayerConfig {
	return &PlayerConfig{
		Window: WindowConfig{Title: "MOVIRTE", Width: 1280, Height: 800},
		Frames: FramesConfig{
			Dir:          "scrolling fx",
			Prefix:       "Screen Recording 2026-02-18 at 6.28.17 PM",
			Ext:          ".jpg",
			Digits:       5,
			Count:        511,
			MaxDimension: 1920,
		},
		Animation: AnimationConfig{Easing: scrollfx.DefaultEasing, Epsilon: scrollfx.DefaultEpsilon},
		Scroll:    ScrollConfig{Lerp: 0.1, LengthViewports: 6, WheelSpeed: 100, KeyStep: 80},
		Choreography: ChoreographyConfig{
			Reveal: 0.80, Heading: 0.30, List: 0.30, FrameFade: 5,
			TitleX: 68, TitleScale: 0.38, TitleBarHeight: 50,
			SubtitleX: 32, SubtitleY: 24,
			ListLeft: 32, ListBottom: 32, ListGap: 6,
			SubtitleDockMs: 150, TitleUndockMs: 120,
			ListDockStepMs: 80, ListUndockStepMs: 60,
			TransitionMs: 900, TransitionTiming: "ease",
		},
		Nav: NavConfig{
			Title:          "MOVIRTE",
			Subtitle:       "Movement is a virtue",
			Items:          []string{"Men", "Women", "New In", "Best Sellers", "Sale", "Collections & Capsules", "Gifting"},
			ResultsHeading: "The Collection",
			ResultsBody:    "Engineered layers for every season.",
		},
		Sidebar: SidebarConfig{
			Logo:    "MOVIRTE",
			Current: "index.html",
			Links: []SidebarLink{
				{Href: "men.html", Label: "Men"},
				{Href: "women.html", Label: "Women"},
				{Href: "new-in.html", Label: "New In"},
				{Href: "best-sellers.html", Label: "Best Sellers"},
				{Href: "sale.html", Label: "Sale"},
				{Href: "collections.html", Label: "Collections & Capsules"},
				{Href: "gifting.html", Label: "Gifting"},
			},
		},
	}
}

// LoadPlayerConfig 从文件加载配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *PlayerConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败
func LoadPlayerConfig(path string) (*PlayerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read player config: %w", err)
	}
	return ParsePlayerConfig(data)
}

// ParsePlayerConfig 解析 yaml 配置，未出现的字段保留默认值
func ParsePlayerConfig(data []byte) (*PlayerConfig, error) {
	cfg := DefaultPlayerConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse player config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *PlayerConfig) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Frames.Count <= 0 {
		return invalid("frames.count must be positive, got %d", c.Frames.Count)
	}
	if c.Frames.Digits < 0 || c.Frames.LoadConcurrency < 0 || c.Frames.MaxDimension < 0 {
		return invalid("frames.digits/loadConcurrency/maxDimension must not be negative")
	}
	if c.Animation.Easing <= 0 || c.Animation.Easing > 1 {
		return invalid("animation.easing must be in (0, 1], got %v", c.Animation.Easing)
	}
	if c.Animation.Epsilon <= 0 {
		return invalid("animation.epsilon must be positive, got %v", c.Animation.Epsilon)
	}
	if c.Scroll.Lerp <= 0 || c.Scroll.Lerp > 1 {
		return invalid("scroll.lerp must be in (0, 1], got %v", c.Scroll.Lerp)
	}
	if c.Scroll.LengthViewports < 1 {
		return invalid("scroll.lengthViewports must be >= 1, got %v", c.Scroll.LengthViewports)
	}

	ch := c.Choreography
	for name, v := range map[string]float64{"reveal": ch.Reveal, "heading": ch.Heading, "list": ch.List} {
		if v < 0 || v > 1 {
			return invalid("choreography.%s must be in [0, 1], got %v", name, v)
		}
	}
	if ch.FrameFade < 0 || ch.TitleScale <= 0 {
		return invalid("choreography.frameFade must be >= 0 and titleScale > 0")
	}
	for name, v := range map[string]int{
		"titleDockMs": ch.TitleDockMs, "subtitleDockMs": ch.SubtitleDockMs,
		"titleUndockMs": ch.TitleUndockMs, "subtitleUndockMs": ch.SubtitleUndockMs,
		"listDockStepMs": ch.ListDockStepMs, "listUndockStepMs": ch.ListUndockStepMs,
		"transitionMs": ch.TransitionMs,
	} {
		if v < 0 {
			return invalid("choreography.%s must not be negative, got %d", name, v)
		}
	}
	if _, ok := utils.TimingByName(ch.TransitionTiming); !ok {
		return invalid("choreography.transitionTiming %q is not a known timing function", ch.TransitionTiming)
	}
	return nil
}

// Sequence 返回帧序列寻址
func (c *PlayerConfig) Sequence() scrollfx.Sequence {
	return scrollfx.Sequence{
		Dir:    c.Frames.Dir,
		Prefix: c.Frames.Prefix,
		Ext:    c.Frames.Ext,
		Digits: c.Frames.Digits,
		Count:  c.Frames.Count,
	}
}

// AnimatorOptions 转换为动画器参数
func (c *PlayerConfig) AnimatorOptions() scrollfx.Options {
	ch := c.Choreography
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }

	opts := scrollfx.DefaultOptions()
	opts.Easing = c.Animation.Easing
	opts.Epsilon = c.Animation.Epsilon
	opts.Choreography.Thresholds = scrollfx.Thresholds{
		Reveal:    ch.Reveal,
		Heading:   ch.Heading,
		List:      ch.List,
		FrameFade: ch.FrameFade,
	}
	opts.Choreography.Layout = scrollfx.DockLayout{
		TitleX:         ch.TitleX,
		TitleScale:     ch.TitleScale,
		TitleBarHeight: ch.TitleBarHeight,
		SubtitleX:      ch.SubtitleX,
		SubtitleY:      ch.SubtitleY,
		ListLeft:       ch.ListLeft,
		ListBottom:     ch.ListBottom,
		ListGap:        ch.ListGap,
	}
	opts.Choreography.Delays = scrollfx.Delays{
		TitleDock:      ms(ch.TitleDockMs),
		SubtitleDock:   ms(ch.SubtitleDockMs),
		TitleUndock:    ms(ch.TitleUndockMs),
		SubtitleUndock: ms(ch.SubtitleUndockMs),
		ListDockStep:   ms(ch.ListDockStepMs),
		ListUndockStep: ms(ch.ListUndockStepMs),
	}
	return opts
}

// TransitionTimingFunc 返回元素过渡缓动函数，未知关键字回退为 ease
func (c *PlayerConfig) TransitionTimingFunc() utils.TimingFunc {
	f, ok := utils.TimingByName(c.Choreography.TransitionTiming)
	if !ok {
		return utils.CSSEase
	}
	return f
}

// TransitionDuration 返回元素过渡时长
func (c *PlayerConfig) TransitionDuration() time.Duration {
	return time.Duration(c.Choreography.TransitionMs) * time.Millisecond
}
