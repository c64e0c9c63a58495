package app

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/decker502/movirte/pkg/scrollfx"
)

// rssSampleInterval 内存占用采样间隔
const rssSampleInterval = time.Second

// debugHUD F3 调试信息
type debugHUD struct {
	visible bool

	proc       *process.Process
	rss        uint64
	lastSample time.Time
}

func newDebugHUD(visible bool) *debugHUD {
	h := &debugHUD{visible: visible}
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Printf("[Debug] process info unavailable: %v", err)
		return h
	}
	h.proc = p
	return h
}

// sample 按间隔刷新 RSS
func (h *debugHUD) sample(now time.Time) {
	if h.proc == nil || now.Sub(h.lastSample) < rssSampleInterval {
		return
	}
	h.lastSample = now
	mem, err := h.proc.MemoryInfo()
	if err != nil {
		log.Printf("[Debug] memory info failed: %v", err)
		h.proc = nil
		return
	}
	h.rss = mem.RSS
}

type loadProgress struct {
	loaded, failed, total int
}

// text 生成调试文本
func (h *debugHUD) text(stats scrollfx.Stats, progress loadProgress, scrolling, animating bool, tps, fps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.1f  FPS %.1f\n", tps, fps)
	fmt.Fprintf(&b, "scroll %.3f", stats.Fraction)
	if scrolling {
		b.WriteString(" (scrolling)")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "frame %.2f -> %d (painted %d, %d paints)",
		stats.Displayed, stats.Target, stats.Painted, stats.Paints)
	if stats.Converged {
		b.WriteString(" converged")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "heading %s  results %t  items hidden %t  frame opacity %.2f\n",
		stats.Heading, stats.Flags.ResultsVisible, stats.Flags.NavItemsHidden, stats.Flags.FrameOpacity)
	fmt.Fprintf(&b, "frames %d/%d loaded, %d failed\n", progress.loaded, progress.total, progress.failed)
	if !stats.Primed {
		b.WriteString("first frame not ready\n")
	}
	if animating {
		b.WriteString("ui transitions running\n")
	}
	if h.rss > 0 {
		fmt.Fprintf(&b, "rss %.1f MiB\n", float64(h.rss)/(1<<20))
	}
	return b.String()
}

func (h *debugHUD) Draw(screen *ebiten.Image, s string) {
	if !h.visible {
		return
	}
	ebitenutil.DebugPrintAt(screen, s, 8, 60)
}
