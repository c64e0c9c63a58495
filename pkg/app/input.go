package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/movirte/pkg/config"
	"github.com/decker502/movirte/pkg/scroll"
	"github.com/decker502/movirte/pkg/utils"
)

const (
	// 按住方向键时的重复间隔（tick）
	keyRepeatDelay    = 24
	keyRepeatInterval = 4

	// pageRatio 翻页滚动的视口比例
	pageRatio = 0.9

	// tapSlop 触摸轻点允许的最大位移（像素），超过视为拖动滚动
	tapSlop = 10
)

// inputState 一个 tick 内的输入快照
type inputState struct {
	wheelY   float64
	lineDown bool
	lineUp   bool
	pageDown bool
	pageUp   bool
	home     bool
	end      bool
	// dragY 本帧触摸拖动的纵向位移，手指上移为负
	dragY float64

	click  bool
	clickX float64
	clickY float64

	quit       bool
	fullscreen bool
	debug      bool
}

// repeatingKeyPressed 按下时触发一次，按住超过延迟后按间隔重复
func repeatingKeyPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

// readInput 读取本 tick 的键盘、鼠标和触摸输入
func readInput(drag *utils.DragManager) inputState {
	var in inputState
	_, in.wheelY = ebiten.Wheel()

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	space := repeatingKeyPressed(ebiten.KeySpace)

	in.lineDown = repeatingKeyPressed(ebiten.KeyArrowDown)
	in.lineUp = repeatingKeyPressed(ebiten.KeyArrowUp)
	in.pageDown = repeatingKeyPressed(ebiten.KeyPageDown) || (space && !shift)
	in.pageUp = repeatingKeyPressed(ebiten.KeyPageUp) || (space && shift)
	in.home = inpututil.IsKeyJustPressed(ebiten.KeyHome)
	in.end = inpututil.IsKeyJustPressed(ebiten.KeyEnd)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.click, in.clickX, in.clickY = true, float64(x), float64(y)
	}
	drag.Update()
	if drag.IsTouchDrag() {
		if drag.IsDragging() {
			_, dy := drag.FrameDelta()
			in.dragY = float64(dy)
		}
		if x, y, ok := drag.Tap(tapSlop); ok {
			in.click, in.clickX, in.clickY = true, float64(x), float64(y)
		}
	}

	in.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.fullscreen = inpututil.IsKeyJustPressed(ebiten.KeyF11)
	in.debug = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	return in
}

// applyScroll 将滚动相关输入作用到滚动器
//
// 滚轮向下（wheelY < 0）增大偏移。
func (in inputState) applyScroll(s *scroll.Scroller, cfg config.ScrollConfig, viewportHeight float64) {
	if in.wheelY != 0 {
		s.ScrollBy(-in.wheelY * cfg.WheelSpeed)
	}
	if in.dragY != 0 {
		s.ScrollBy(-in.dragY)
	}
	if in.lineDown {
		s.ScrollBy(cfg.KeyStep)
	}
	if in.lineUp {
		s.ScrollBy(-cfg.KeyStep)
	}
	if in.pageDown {
		s.ScrollBy(viewportHeight * pageRatio)
	}
	if in.pageUp {
		s.ScrollBy(-viewportHeight * pageRatio)
	}
	if in.home {
		s.ScrollTo(0, false)
	}
	if in.end {
		s.ScrollTo(s.Limit(), false)
	}
}
