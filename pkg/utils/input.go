// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ============================================================================
// 拖拽状态管理器 - 用于触摸屏上的拖动滚动
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标）
	CurrentX, CurrentY int
	// PrevX, PrevY 上一帧位置，用于计算每帧位移
	PrevX, PrevY int
	// TouchID 当前跟踪的触摸ID（-1 表示鼠标）
	TouchID ebiten.TouchID
	// IsTouchInput 是否为触摸输入（区分触摸和鼠标）
	IsTouchInput bool
}

// DragManager 拖拽管理器
// 跟踪触摸/鼠标的拖拽状态
type DragManager struct {
	info DragInfo
}

// NewDragManager 创建拖拽管理器
func NewDragManager() *DragManager {
	dm := &DragManager{}
	dm.Reset()
	return dm
}

// Update 更新拖拽状态（每帧调用一次）
func (dm *DragManager) Update() {
	currentTouchIDs := ebiten.AppendTouchIDs(nil)
	dm.info.PrevX, dm.info.PrevY = dm.info.CurrentX, dm.info.CurrentY

	switch dm.info.State {
	case DragStateNone:
		dm.checkDragStart()

	case DragStateStarted:
		dm.info.State = DragStateDragging
		dm.updateCurrentPosition(currentTouchIDs)

	case DragStateDragging:
		if dm.checkDragEnd(currentTouchIDs) {
			dm.info.State = DragStateEnded
		} else {
			dm.updateCurrentPosition(currentTouchIDs)
		}

	case DragStateEnded:
		// 结束状态只持续一帧，下一帧重置
		dm.Reset()
	}
}

// checkDragStart 检测拖拽开始
func (dm *DragManager) checkDragStart() {
	// 优先检测触摸输入
	justPressedTouchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(justPressedTouchIDs) > 0 {
		touchID := justPressedTouchIDs[0]
		x, y := ebiten.TouchPosition(touchID)
		dm.start(x, y, touchID, true)
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dm.start(x, y, -1, false)
	}
}

func (dm *DragManager) start(x, y int, id ebiten.TouchID, touch bool) {
	dm.info = DragInfo{
		State:        DragStateStarted,
		StartX:       x,
		StartY:       y,
		CurrentX:     x,
		CurrentY:     y,
		PrevX:        x,
		PrevY:        y,
		TouchID:      id,
		IsTouchInput: touch,
	}
}

// checkDragEnd 检测拖拽结束
func (dm *DragManager) checkDragEnd(currentTouchIDs []ebiten.TouchID) bool {
	if dm.info.IsTouchInput {
		for _, id := range currentTouchIDs {
			if id == dm.info.TouchID {
				return false // 触摸仍然活跃
			}
		}
		return true
	}
	return !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// updateCurrentPosition 更新当前位置
func (dm *DragManager) updateCurrentPosition(currentTouchIDs []ebiten.TouchID) {
	if dm.info.IsTouchInput {
		for _, id := range currentTouchIDs {
			if id == dm.info.TouchID {
				dm.info.CurrentX, dm.info.CurrentY = ebiten.TouchPosition(id)
				return
			}
		}
		return
	}
	dm.info.CurrentX, dm.info.CurrentY = ebiten.CursorPosition()
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{
		State:   DragStateNone,
		TouchID: -1,
	}
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// IsDragging 是否正在拖拽
func (dm *DragManager) IsDragging() bool {
	return dm.info.State == DragStateDragging
}

// JustEnded 是否刚结束拖拽（本帧）
func (dm *DragManager) JustEnded() bool {
	return dm.info.State == DragStateEnded
}

// GetDragDistance 获取拖拽距离（从起点到当前位置）
func (dm *DragManager) GetDragDistance() (dx, dy int) {
	return dm.info.CurrentX - dm.info.StartX, dm.info.CurrentY - dm.info.StartY
}

// FrameDelta 获取本帧的位移（拖拽中才有意义）
func (dm *DragManager) FrameDelta() (dx, dy int) {
	if dm.info.State != DragStateDragging {
		return 0, 0
	}
	return dm.info.CurrentX - dm.info.PrevX, dm.info.CurrentY - dm.info.PrevY
}

// Tap 触摸在本帧抬起且总位移不超过 slop 时视为轻点，返回按下位置
func (dm *DragManager) Tap(slop int) (x, y int, ok bool) {
	if !dm.JustEnded() || !dm.IsTouchDrag() {
		return 0, 0, false
	}
	dx, dy := dm.GetDragDistance()
	if abs(dx) > slop || abs(dy) > slop {
		return 0, 0, false
	}
	info := dm.GetInfo()
	return info.StartX, info.StartY, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// IsTouchDrag 是否为触摸拖拽
func (dm *DragManager) IsTouchDrag() bool {
	return dm.info.IsTouchInput
}
