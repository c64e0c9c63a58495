package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/movirte/pkg/scrollfx"
)

// Canvas 帧绘制的离屏画布，实现 scrollfx.Surface
//
// 跳过的绘制不会清空画布，屏幕上保留最后一次成功绘制的帧。
type Canvas struct {
	img    *ebiten.Image
	width  int
	height int
}

var _ scrollfx.Surface[*ebiten.Image] = (*Canvas)(nil)

// NewCanvas 创建空画布，尺寸在首帧就绪时设置
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Size 返回画布尺寸
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// SetSize 调整画布尺寸；尺寸变化时重建离屏图像
func (c *Canvas) SetSize(width, height int) {
	if width == c.width && height == c.height && c.img != nil {
		return
	}
	c.width, c.height = width, height
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	if width > 0 && height > 0 {
		c.img = ebiten.NewImage(width, height)
	}
}

// Clear 清空画布
func (c *Canvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

// Draw 按 placement 缩放并平移帧图像
func (c *Canvas) Draw(frame *ebiten.Image, p scrollfx.Placement) {
	if c.img == nil || frame == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.Ratio, p.Ratio)
	op.GeoM.Translate(p.X, p.Y)
	op.Filter = ebiten.FilterLinear
	c.img.DrawImage(frame, op)
}

// Image 返回离屏图像，尚未设置尺寸时为 nil
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// Dispose 释放离屏图像
func (c *Canvas) Dispose() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	c.width, c.height = 0, 0
}
