// Package app 提供播放器应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载配置、启动帧加载、组装滚动器、
// 浮层和动画器，并实现 ebiten.Game 接口。
package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/movirte/pkg/config"
	"github.com/decker502/movirte/pkg/embedded"
	"github.com/decker502/movirte/pkg/game"
	"github.com/decker502/movirte/pkg/scroll"
	"github.com/decker502/movirte/pkg/scrollfx"
	"github.com/decker502/movirte/pkg/ui"
	"github.com/decker502/movirte/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 配置文件路径，为空则使用内嵌默认配置
	ConfigPath string
	// FramesDir 帧序列根目录，配置中的 frames.dir 相对于该目录
	FramesDir string
	// Watch 监听配置文件变化并热重载（需要 ConfigPath）
	Watch bool
	// Debug 启动时显示调试信息（F3 切换）
	Debug bool
	// Fullscreen 以全屏启动
	Fullscreen bool
}

// App 是播放器应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg *config.PlayerConfig

	cancel   context.CancelFunc
	loader   *scrollfx.Loader[*ebiten.Image]
	canvas   *Canvas
	scroller *scroll.Scroller
	stage    *ui.Stage
	fonts    ui.Fonts
	animator *scrollfx.Animator[*ebiten.Image]
	watcher  *config.Watcher
	hud      *debugHUD
	drag     *utils.DragManager

	width, height    int // 当前视口尺寸
	layoutW, layoutH int // 上一次 Layout 的尺寸

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	closed                   bool
}

// LoadConfig 读取播放器配置
//
// path 为空时使用内嵌的 data/movirte.yaml；内嵌资源未初始化时使用内置默认值。
func LoadConfig(path string) (*config.PlayerConfig, error) {
	if path != "" {
		return config.LoadPlayerConfig(path)
	}
	if !embedded.IsInitialized() || !embedded.Exists(config.DefaultConfigPath) {
		return config.DefaultPlayerConfig(), nil
	}
	data, err := embedded.ReadFile(config.DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	return config.ParsePlayerConfig(data)
}

// NewApp 创建并初始化播放器应用
//
// 帧加载在后台进行，NewApp 不等待任何帧就绪。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	pc, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	if cfg.Fullscreen {
		pc.Window.Fullscreen = true
	}
	log.Printf("[Config] %d frames, prefix %q, dir %q", pc.Frames.Count, pc.Frames.Prefix, pc.Frames.Dir)

	root := cfg.FramesDir
	if root == "" {
		root = "."
	}
	resources := game.NewResourceManager(os.DirFS(root), pc.Frames.MaxDimension)

	fonts, err := loadFonts(resources)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	seq := pc.Sequence()
	loader := scrollfx.NewLoader(ctx, seq.Count, resources.FrameLoader(seq), scrollfx.LoaderOptions{
		Limit: pc.Frames.LoadConcurrency,
		OnError: func(index int, err error) {
			log.Printf("[Frames] frame %d (%s) unavailable: %v", index, seq.URI(index), err)
		},
	})
	log.Printf("[Frames] loading %d frames from %s", seq.Count, root)

	w, h := float64(pc.Window.Width), float64(pc.Window.Height)
	stage := ui.NewStage(ui.StageConfigFrom(pc), fonts.Measurer(), w, h)
	canvas := NewCanvas()
	scroller := scroll.New(pc.Scroll.Lerp)
	scroller.SetBounds(pc.Scroll.LengthViewports*h, h)

	animator := scrollfx.NewAnimator[*ebiten.Image](loader, canvas, stage, stage, pc.AnimatorOptions())
	animator.Attach(scroller)
	// 初始同步一次，让编排层按滚动位置 0 建立状态
	scroller.Emit()

	a := &App{
		cfg:      pc,
		cancel:   cancel,
		loader:   loader,
		canvas:   canvas,
		scroller: scroller,
		stage:    stage,
		fonts:    fonts,
		animator: animator,
		hud:      newDebugHUD(cfg.Debug),
		drag:     utils.NewDragManager(),
		width:    pc.Window.Width,
		height:   pc.Window.Height,
		layoutW:  pc.Window.Width,
		layoutH:  pc.Window.Height,
	}

	if cfg.Watch {
		if cfg.ConfigPath == "" {
			log.Printf("[App] -watch ignored: no config file given")
		} else if err := a.startWatcher(ctx, cfg.ConfigPath); err != nil {
			a.Close()
			return nil, fmt.Errorf("配置监听启动失败: %w", err)
		}
	}

	return a, nil
}

func loadFonts(rm *game.ResourceManager) (ui.Fonts, error) {
	regular, err := rm.LoadFontSource(game.FontRegular)
	if err != nil {
		return ui.Fonts{}, err
	}
	bold, err := rm.LoadFontSource(game.FontBold)
	if err != nil {
		return ui.Fonts{}, err
	}
	return ui.Fonts{Regular: regular, Bold: bold}, nil
}

func (a *App) startWatcher(ctx context.Context, path string) error {
	w, err := config.NewWatcher(path, 0)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return err
	}
	a.watcher = w
	return nil
}

// PlayerConfig 返回当前生效的配置
func (a *App) PlayerConfig() *config.PlayerConfig {
	return a.cfg
}

// ApplyConfig 应用热重载的配置；帧序列相关字段需要重启才能生效
func (a *App) ApplyConfig(pc *config.PlayerConfig) {
	if pc.Sequence() != a.cfg.Sequence() || pc.Frames.MaxDimension != a.cfg.Frames.MaxDimension {
		log.Printf("[App] frame settings changed, restart to apply")
		pc.Frames = a.cfg.Frames
	}
	a.cfg = pc
	a.animator.SetOptions(pc.AnimatorOptions())
	a.stage.SetConfig(ui.StageConfigFrom(pc))
	a.scroller.Lerp = pc.Scroll.Lerp
	a.scroller.SetBounds(pc.Scroll.LengthViewports*float64(a.height), float64(a.height))
	ebiten.SetWindowTitle(pc.Window.Title)
	log.Printf("[App] config applied")
}

// resize 视口尺寸变化时更新浮层布局、滚动范围和画布
func (a *App) resize(width, height int) {
	if width <= 0 || height <= 0 || (width == a.width && height == a.height) {
		return
	}
	a.width, a.height = width, height
	w, h := float64(width), float64(height)
	a.stage.SetViewport(w, h)
	a.scroller.SetBounds(a.cfg.Scroll.LengthViewports*h, h)
	a.animator.Resize(width, height)
	log.Printf("[App] resize %dx%d", width, height)
}

// Update 更新播放器状态
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.closed {
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if a.watcher != nil {
		select {
		case pc := <-a.watcher.Updates():
			a.ApplyConfig(pc)
		default:
		}
	}

	a.resize(a.layoutW, a.layoutH)

	in := readInput(a.drag)
	if in.quit {
		a.Close()
		return ebiten.Termination
	}
	if in.fullscreen {
		a.toggleFullscreen()
	}
	if in.debug {
		a.hud.visible = !a.hud.visible
	}
	if in.click && a.stage.HitToggle(in.clickX, in.clickY) {
		hidden := a.animator.ToggleNavItems()
		log.Printf("[App] nav items hidden: %v", hidden)
	}
	in.applyScroll(a.scroller, a.cfg.Scroll, float64(a.height))

	// 滚动通知先于插值：目标帧和阈值在本 tick 内生效
	a.scroller.Update()
	a.animator.Tick()
	a.stage.Update(time.Second / time.Duration(ebiten.TPS()))

	if a.hud.visible {
		a.hud.sample(time.Now())
	}
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if img := a.canvas.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	a.drawLoadProgress(screen)
	a.stage.Draw(screen, a.fonts)

	if a.hud.visible {
		loaded, failed, total := a.loader.Progress()
		s := a.hud.text(a.animator.Stats(), loadProgress{loaded, failed, total}, a.scroller.IsScrolling(), a.stage.Animating(), ebiten.ActualTPS(), ebiten.ActualFPS())
		a.hud.Draw(screen, s)
	}
}

// drawLoadProgress 帧加载未完成时在底部绘制进度条
func (a *App) drawLoadProgress(screen *ebiten.Image) {
	loaded, failed, total := a.loader.Progress()
	if total == 0 || loaded+failed >= total {
		return
	}
	w := float32(a.width) * float32(loaded+failed) / float32(total)
	vector.DrawFilledRect(screen, 0, float32(a.height)-3, w, 3, color.RGBA{R: 255, G: 255, B: 255, A: 160}, false)
}

// Layout 返回逻辑屏幕尺寸，与窗口尺寸一致，浮层按视口重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.layoutW, a.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close 停止动画、帧加载和配置监听，可重复调用
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	// Dispose 会关闭帧加载器并等待加载协程退出
	a.animator.Dispose()
	if a.watcher != nil {
		a.watcher.Stop()
	}
	a.cancel()
	a.canvas.Dispose()
	log.Printf("[App] closed")
}

// Run 设置窗口并运行播放器，窗口关闭或 Esc 退出后释放资源
func (a *App) Run() error {
	ebiten.SetWindowTitle(a.cfg.Window.Title)
	ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(a.cfg.Window.Fullscreen)
	defer a.Close()

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
