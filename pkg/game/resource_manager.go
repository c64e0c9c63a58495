package game

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/decker502/movirte/pkg/scrollfx"
)

// Built-in font names accepted by LoadFontSource.
const (
	FontRegular = "regular"
	FontBold    = "bold"
)

var builtinFonts = map[string][]byte{
	FontRegular: goregular.TTF,
	FontBold:    gobold.TTF,
}

// ResourceManager is responsible for decoding frame images and providing font sources.
// Frames are read from an fs.FS (os.DirFS for a frame directory, or an embedded FS),
// decoded (JPEG/PNG/WebP), optionally downscaled and converted to ebiten images.
//
// Thread Safety Note:
// DecodeFrame and FrameLoader are safe to call from multiple goroutines; the frame
// loader fans decoding out across goroutines. Font sources are cached behind a mutex.
//
// Usage:
//
//	rm := NewResourceManager(os.DirFS("assets/frames"), 1920)
//	loader := scrollfx.NewLoader(ctx, seq.Count, rm.FrameLoader(seq), scrollfx.LoaderOptions{})
type ResourceManager struct {
	fsys         fs.FS // Frame source
	maxDimension int   // Longest side after downscale, 0 keeps original size

	mu          sync.Mutex
	fontSources map[string]*text.GoTextFaceSource // Cache for parsed font sources: name -> source
}

// NewResourceManager creates a ResourceManager reading frames from fsys.
//
// Parameters:
//   - fsys: The file system holding the frame sequence.
//   - maxDimension: Frames whose longer side exceeds this value are downscaled; 0 disables.
func NewResourceManager(fsys fs.FS, maxDimension int) *ResourceManager {
	return &ResourceManager{
		fsys:         fsys,
		maxDimension: maxDimension,
		fontSources:  make(map[string]*text.GoTextFaceSource),
	}
}

// DecodeFrame reads and decodes a frame image, applying the downscale limit.
//
// Error handling:
//   - Returns an error if the file does not exist or cannot be read.
//   - Returns an error if the image format is not supported or the file is corrupted.
func (rm *ResourceManager) DecodeFrame(path string) (image.Image, error) {
	file, err := rm.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frame %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame %s: %w", path, err)
	}
	return Downscale(img, rm.maxDimension), nil
}

// FrameLoader returns a load function for the frame loader that resolves frame
// indices through seq.
func (rm *ResourceManager) FrameLoader(seq scrollfx.Sequence) scrollfx.LoadFunc[*ebiten.Image] {
	return func(ctx context.Context, index int) (*ebiten.Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !seq.Valid(index) {
			return nil, fmt.Errorf("frame index %d out of range [0, %d)", index, seq.Count)
		}
		img, err := rm.DecodeFrame(seq.Path(index))
		if err != nil {
			return nil, err
		}
		// Decoding can take a while; do not upload frames for a closed loader
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return ebiten.NewImageFromImage(img), nil
	}
}

// Downscale shrinks img so that its longer side is at most maxDimension,
// keeping the aspect ratio. Images already within the limit are returned as is.
func Downscale(img image.Image, maxDimension int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDimension <= 0 || (w <= maxDimension && h <= maxDimension) {
		return img
	}

	nw, nh := maxDimension, maxDimension
	if w >= h {
		nh = max(1, h*maxDimension/w)
	} else {
		nw = max(1, w*maxDimension/h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// LoadFontSource returns the parsed source of a built-in font and caches it.
//
// Parameters:
//   - name: FontRegular or FontBold.
func (rm *ResourceManager) LoadFontSource(name string) (*text.GoTextFaceSource, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if src, ok := rm.fontSources[name]; ok {
		return src, nil
	}
	data, ok := builtinFonts[name]
	if !ok {
		return nil, fmt.Errorf("unknown font %q", name)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	rm.fontSources[name] = src
	return src, nil
}

// GetFont returns a face of the given size for a previously loaded font source, or nil.
func (rm *ResourceManager) GetFont(name string, size float64) *text.GoTextFace {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	src, ok := rm.fontSources[name]
	if !ok {
		return nil
	}
	return &text.GoTextFace{Source: src, Size: size}
}
