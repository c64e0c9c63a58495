package scroll

import (
	"math"
	"testing"

	"github.com/decker502/movirte/pkg/scrollfx"
)

// TestScrollerSmoothing 偏移按 lerp 逐步追赶目标并最终对齐
func TestScrollerSmoothing(t *testing.T) {
	s := New(0.1)
	s.SetBounds(5000, 1000)

	var events []scrollfx.ScrollEvent
	s.Subscribe(func(ev scrollfx.ScrollEvent) { events = append(events, ev) })

	s.ScrollBy(1000)
	s.Update()
	if math.Abs(s.Offset()-100) > 1e-9 {
		t.Errorf("第一个 tick 偏移 = %v, 期望 100", s.Offset())
	}

	for i := 0; i < 200 && s.IsScrolling(); i++ {
		s.Update()
	}
	if s.Offset() != 1000 {
		t.Errorf("最终偏移 = %v, 期望 1000", s.Offset())
	}

	last := events[len(events)-1]
	if last.Offset != 1000 || last.Limit != 4000 {
		t.Errorf("最后事件 = %+v, 期望 {1000 4000}", last)
	}

	n := len(events)
	s.Update()
	if len(events) != n {
		t.Error("静止时不应发出事件")
	}
}

// TestScrollerClamp 目标偏移截断到 [0, limit]
func TestScrollerClamp(t *testing.T) {
	s := New(1)
	s.SetBounds(2000, 800)

	tests := []struct {
		name  string
		delta float64
		want  float64
	}{
		{"向上越界", -500, 0},
		{"正常", 300, 300},
		{"向下越界", 5000, 1200},
		{"NaN 忽略", math.NaN(), 1200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.ScrollBy(tt.delta)
			s.Update()
			if s.Offset() != tt.want {
				t.Errorf("偏移 = %v, 期望 %v", s.Offset(), tt.want)
			}
		})
	}
}

// TestScrollerBoundsShrink 视口变大时偏移随最大值收缩，并通知订阅者
func TestScrollerBoundsShrink(t *testing.T) {
	s := New(1)
	s.SetBounds(3000, 1000)
	s.ScrollTo(2000, true)

	var got scrollfx.ScrollEvent
	s.Subscribe(func(ev scrollfx.ScrollEvent) { got = ev })

	s.SetBounds(3000, 2500)
	s.Update()
	if got.Offset != 500 || got.Limit != 500 {
		t.Errorf("事件 = %+v, 期望 {500 500}", got)
	}
	if f := scrollfx.ScrollFraction(s.Offset(), s.Limit()); f != 1 {
		t.Errorf("滚动比例 = %v, 期望 1", f)
	}
}

// TestScrollerShortPage 内容不足一屏时最大偏移为 0，比例为 0
func TestScrollerShortPage(t *testing.T) {
	s := New(0)
	if s.Lerp != DefaultLerp {
		t.Errorf("Lerp = %v, 期望默认值 %v", s.Lerp, DefaultLerp)
	}
	s.SetBounds(500, 800)
	s.ScrollBy(100)
	s.Update()
	if s.Offset() != 0 || s.Limit() != 0 {
		t.Errorf("Offset=%v Limit=%v, 期望全为 0", s.Offset(), s.Limit())
	}
}

// TestScrollerUnsubscribe 取消订阅后不再收到事件
func TestScrollerUnsubscribe(t *testing.T) {
	s := New(1)
	s.SetBounds(2000, 1000)

	var a, b int
	unsubA := s.Subscribe(func(scrollfx.ScrollEvent) { a++ })
	s.Subscribe(func(scrollfx.ScrollEvent) { b++ })

	s.Emit()
	unsubA()
	unsubA()
	s.ScrollTo(10, true)
	s.Update()

	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, 期望 a=1 b=2", a, b)
	}
	if len(s.subs) != 1 {
		t.Errorf("订阅数 = %d, 期望 1", len(s.subs))
	}
}
