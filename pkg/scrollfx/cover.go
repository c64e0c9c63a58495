package scrollfx

import "math"

// Placement 描述源图在目标表面上的绘制位置
//
// 源图整体按 Ratio 缩放后绘制到 (X, Y)，尺寸为 Width x Height。
// 对于 cover 适配，X/Y 不大于 0，超出部分在两侧对称裁剪。
type Placement struct {
	Ratio  float64
	X, Y   float64
	Width  float64
	Height float64
}

// CoverFit 计算 "object-fit: cover" 的绘制位置
//
// ratio = max(W/w, H/h)，缩放后居中。任一尺寸非正时返回零值（不绘制）。
func CoverFit(surfaceW, surfaceH, imageW, imageH float64) Placement {
	if surfaceW <= 0 || surfaceH <= 0 || imageW <= 0 || imageH <= 0 {
		return Placement{}
	}
	ratio := math.Max(surfaceW/imageW, surfaceH/imageH)
	w := imageW * ratio
	h := imageH * ratio
	return Placement{
		Ratio:  ratio,
		X:      (surfaceW - w) / 2,
		Y:      (surfaceH - h) / 2,
		Width:  w,
		Height: h,
	}
}

// Empty 是否为空位置（无需绘制）
func (p Placement) Empty() bool {
	return p.Ratio == 0
}
