package utils

import (
	"testing"
)

func TestDragManagerInitialState(t *testing.T) {
	dm := NewDragManager()

	// 验证初始状态
	if dm.GetInfo().State != DragStateNone {
		t.Errorf("Expected initial state to be DragStateNone, got %v", dm.GetInfo().State)
	}

	if dm.IsDragging() {
		t.Error("Expected IsDragging to be false initially")
	}

	if dm.JustEnded() {
		t.Error("Expected JustEnded to be false initially")
	}
}

func TestDragManagerReset(t *testing.T) {
	dm := NewDragManager()

	// 模拟一些状态
	dm.info.State = DragStateDragging
	dm.info.StartX = 100
	dm.info.StartY = 200
	dm.info.CurrentX = 150
	dm.info.CurrentY = 250

	// 重置
	dm.Reset()

	// 验证重置后的状态
	info := dm.GetInfo()
	if info.State != DragStateNone {
		t.Errorf("Expected state to be DragStateNone after reset, got %v", info.State)
	}

	if info.StartX != 0 || info.StartY != 0 {
		t.Errorf("Expected start position to be (0, 0) after reset, got (%d, %d)", info.StartX, info.StartY)
	}

	if info.CurrentX != 0 || info.CurrentY != 0 {
		t.Errorf("Expected current position to be (0, 0) after reset, got (%d, %d)", info.CurrentX, info.CurrentY)
	}

	if info.TouchID != -1 {
		t.Errorf("Expected TouchID to be -1 after reset, got %d", info.TouchID)
	}
}

func TestDragManagerGetDragDistance(t *testing.T) {
	dm := NewDragManager()

	// 设置起始和当前位置
	dm.info.StartX = 100
	dm.info.StartY = 200
	dm.info.CurrentX = 150
	dm.info.CurrentY = 280

	dx, dy := dm.GetDragDistance()

	if dx != 50 {
		t.Errorf("Expected dx to be 50, got %d", dx)
	}

	if dy != 80 {
		t.Errorf("Expected dy to be 80, got %d", dy)
	}
}

func TestDragManagerStateTransitions(t *testing.T) {
	dm := NewDragManager()
	dm.Reset()

	// 测试状态转换方法
	dm.info.State = DragStateStarted
	if dm.IsDragging() || dm.JustEnded() {
		t.Error("Expected only the started state when state is DragStateStarted")
	}

	dm.info.State = DragStateDragging
	if !dm.IsDragging() {
		t.Error("Expected IsDragging to be true when state is DragStateDragging")
	}

	dm.info.State = DragStateEnded
	if !dm.JustEnded() {
		t.Error("Expected JustEnded to be true when state is DragStateEnded")
	}

	// 清理
	dm.Reset()
}

func TestDragManagerIsTouchDrag(t *testing.T) {
	dm := NewDragManager()
	dm.Reset()

	// 默认不是触摸拖拽
	if dm.IsTouchDrag() {
		t.Error("Expected IsTouchDrag to be false initially")
	}

	// 设置为触摸输入
	dm.info.IsTouchInput = true
	if !dm.IsTouchDrag() {
		t.Error("Expected IsTouchDrag to be true when IsTouchInput is true")
	}

	// 清理
	dm.Reset()
}

func TestDragManagerGetInfo(t *testing.T) {
	dm := NewDragManager()
	dm.Reset()

	// 设置一些值
	dm.info.State = DragStateDragging
	dm.info.StartX = 10
	dm.info.StartY = 20
	dm.info.CurrentX = 30
	dm.info.CurrentY = 40
	dm.info.IsTouchInput = true

	info := dm.GetInfo()

	if info.State != DragStateDragging {
		t.Errorf("Expected State to be DragStateDragging, got %v", info.State)
	}

	if info.StartX != 10 || info.StartY != 20 {
		t.Errorf("Expected start position to be (10, 20), got (%d, %d)", info.StartX, info.StartY)
	}

	if info.CurrentX != 30 || info.CurrentY != 40 {
		t.Errorf("Expected current position to be (30, 40), got (%d, %d)", info.CurrentX, info.CurrentY)
	}

	if !info.IsTouchInput {
		t.Error("Expected IsTouchInput to be true")
	}

	// 清理
	dm.Reset()
}

func TestDragManagerFrameDelta(t *testing.T) {
	dm := NewDragManager()

	// 非拖拽状态没有位移
	dm.info.CurrentY = 100
	if _, dy := dm.FrameDelta(); dy != 0 {
		t.Errorf("Expected no delta outside dragging, got %d", dy)
	}

	dm.info.State = DragStateDragging
	dm.info.PrevX, dm.info.PrevY = 10, 120
	dm.info.CurrentX, dm.info.CurrentY = 14, 100

	dx, dy := dm.FrameDelta()
	if dx != 4 || dy != -20 {
		t.Errorf("Expected delta (4, -20), got (%d, %d)", dx, dy)
	}
}

func TestDragManagerTap(t *testing.T) {
	tests := []struct {
		name   string
		state  DragState
		touch  bool
		endX   int
		endY   int
		wantOK bool
	}{
		{"轻点", DragStateEnded, true, 103, 198, true},
		{"拖动超过阈值", DragStateEnded, true, 100, 240, false},
		{"仍在拖动", DragStateDragging, true, 100, 200, false},
		{"鼠标不算轻点", DragStateEnded, false, 100, 200, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dm := NewDragManager()
			dm.info.State = tt.state
			dm.info.IsTouchInput = tt.touch
			dm.info.StartX, dm.info.StartY = 100, 200
			dm.info.CurrentX, dm.info.CurrentY = tt.endX, tt.endY

			x, y, ok := dm.Tap(10)
			if ok != tt.wantOK {
				t.Fatalf("Tap() ok = %v, 期望 %v", ok, tt.wantOK)
			}
			if ok && (x != 100 || y != 200) {
				t.Errorf("Tap() = (%d, %d), 期望按下位置 (100, 200)", x, y)
			}
		})
	}
}
