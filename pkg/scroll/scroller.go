// Package scroll 提供平滑滚动源
//
// 输入（滚轮、键盘）只移动目标偏移，每个 tick 实际偏移按 Lerp 追赶目标，
// 偏移或滚动范围变化时通知订阅者。所有方法必须在游戏循环协程中调用。
package scroll

import (
	"math"

	"github.com/decker502/movirte/pkg/scrollfx"
)

const (
	// DefaultLerp 每个 tick 追赶剩余距离的比例
	DefaultLerp = 0.1

	// snapDistance 剩余距离小于该值（像素）时直接对齐目标
	snapDistance = 0.5
)

type subscriber struct {
	id int
	fn func(scrollfx.ScrollEvent)
}

// Scroller 平滑滚动器，实现 scrollfx.ScrollSource
type Scroller struct {
	Lerp float64

	offset float64
	target float64
	limit  float64

	subs   []subscriber
	nextID int
	dirty  bool
}

// New 创建平滑滚动器，lerp 不在 (0, 1] 内时使用默认值
func New(lerp float64) *Scroller {
	if lerp <= 0 || lerp > 1 {
		lerp = DefaultLerp
	}
	return &Scroller{Lerp: lerp}
}

// Subscribe 订阅滚动事件，返回取消订阅函数
func (s *Scroller) Subscribe(fn func(scrollfx.ScrollEvent)) func() {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// SetBounds 设置内容总高度和视口高度，最大偏移 = content - viewport（不小于 0）
func (s *Scroller) SetBounds(contentHeight, viewportHeight float64) {
	limit := math.Max(0, contentHeight-viewportHeight)
	if limit == s.limit {
		return
	}
	s.limit = limit
	s.target = s.clamp(s.target)
	s.offset = s.clamp(s.offset)
	s.dirty = true
}

// ScrollBy 目标偏移移动 delta 像素
func (s *Scroller) ScrollBy(delta float64) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return
	}
	s.target = s.clamp(s.target + delta)
}

// ScrollTo 滚动到指定偏移；immediate 为 true 时跳过平滑直接到位
func (s *Scroller) ScrollTo(offset float64, immediate bool) {
	s.target = s.clamp(offset)
	if immediate && s.offset != s.target {
		s.offset = s.target
		s.dirty = true
	}
}

// Update 推进一个 tick，偏移变化时通知订阅者
func (s *Scroller) Update() {
	if s.offset != s.target {
		s.offset += (s.target - s.offset) * s.Lerp
		if math.Abs(s.target-s.offset) < snapDistance {
			s.offset = s.target
		}
		s.dirty = true
	}
	if !s.dirty {
		return
	}
	s.dirty = false
	s.emit()
}

// Emit 立即以当前状态通知所有订阅者（例如初始化时同步一次）
func (s *Scroller) Emit() {
	s.dirty = false
	s.emit()
}

func (s *Scroller) emit() {
	ev := scrollfx.ScrollEvent{Offset: s.offset, Limit: s.limit}
	// 回调中可能取消订阅，先复制
	subs := append([]subscriber(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(ev)
	}
}

// Offset 返回当前偏移
func (s *Scroller) Offset() float64 { return s.offset }

// Target 返回目标偏移
func (s *Scroller) Target() float64 { return s.target }

// Limit 返回最大偏移
func (s *Scroller) Limit() float64 { return s.limit }

// IsScrolling 是否仍在向目标滑动
func (s *Scroller) IsScrolling() bool {
	return s.offset != s.target
}

func (s *Scroller) clamp(v float64) float64 {
	return math.Max(0, math.Min(v, s.limit))
}
