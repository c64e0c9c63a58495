package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"

	"github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"

	"github.com/decker502/movirte/pkg/scrollfx"
)

// jpegQuality 输出帧的 JPEG 质量
const jpegQuality = 85

// renderFrame 生成第 index 帧的校准图像
//
// 背景是随帧号变化色相的渐变，中央是内容为帧号的二维码，左下角是帧号文字，
// 四角有定位方块用于检查 cover 裁剪。
func renderFrame(index, count, width, height int) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	hue := 0.0
	if count > 1 {
		hue = float64(index) / float64(count-1) * 300
	}
	for y := 0; y < height; y++ {
		light := 0.25 + 0.35*float64(y)/float64(max(1, height-1))
		c := hsl(hue, 0.6, light)
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	// 定位方块
	marker := max(4, min(width, height)/20)
	white := image.NewUniform(color.White)
	for _, p := range []image.Point{
		{0, 0},
		{width - marker, 0},
		{0, height - marker},
		{width - marker, height - marker},
	} {
		draw.Draw(img, image.Rect(p.X, p.Y, p.X+marker, p.Y+marker), white, image.Point{}, draw.Src)
	}

	size := min(width, height) / 2
	if size >= 32 {
		qr, err := qrcode.New(fmt.Sprintf("frame %d/%d", index+1, count), qrcode.Medium)
		if err != nil {
			return nil, fmt.Errorf("failed to encode qr code: %w", err)
		}
		code := qr.Image(size)
		at := image.Pt((width-size)/2, (height-size)/2)
		draw.Copy(img, at, code, code.Bounds(), draw.Src, nil)
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  white,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(marker+8, height-marker-8),
	}
	d.DrawString(fmt.Sprintf("%05d / %05d", index+1, count))
	return img, nil
}

// hsl 将 HSL 转为 RGBA，h 单位为度
func hsl(h, s, l float64) color.RGBA {
	c := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(h/60, 6)
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g = c, x
	case hp < 2:
		r, g = x, c
	case hp < 3:
		g, b = c, x
	case hp < 4:
		g, b = x, c
	case hp < 5:
		r, b = x, c
	default:
		r, b = c, x
	}
	m := l - c/2
	to := func(v float64) uint8 { return uint8(math.Round((v + m) * 255)) }
	return color.RGBA{R: to(r), G: to(g), B: to(b), A: 255}
}

// generate 按序列命名规则把全部帧写到 root 下，workers 为 0 时不限制并发
func generate(ctx context.Context, root string, seq scrollfx.Sequence, width, height, workers int) error {
	if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(seq.Dir)), 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 0; i < seq.Count; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writeFrame(filepath.Join(root, filepath.FromSlash(seq.Path(i))), i, seq.Count, width, height)
		})
	}
	return g.Wait()
}

func writeFrame(path string, index, count, width, height int) error {
	img, err := renderFrame(index, count, width, height)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create frame %s: %w", path, err)
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode frame %s: %w", path, err)
	}
	return f.Close()
}
