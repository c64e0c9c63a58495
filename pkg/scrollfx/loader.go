package scrollfx

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// FrameState 单帧的加载状态
type FrameState int32

const (
	FrameUnloaded FrameState = iota
	FrameLoading
	FrameLoaded
	FrameFailed
)

func (s FrameState) String() string {
	switch s {
	case FrameUnloaded:
		return "unloaded"
	case FrameLoading:
		return "loading"
	case FrameLoaded:
		return "loaded"
	case FrameFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LoadFunc 加载第 index 帧并返回帧句柄
type LoadFunc[F any] func(ctx context.Context, index int) (F, error)

// FrameStore 动画器读取帧的最小接口
//
// 实现必须允许在任意子集尚未就绪时被查询。
type FrameStore[F any] interface {
	Len() int
	IsReady(index int) bool
	Image(index int) (F, bool)
}

// LoaderOptions 加载器选项
type LoaderOptions struct {
	// Limit 同时进行的加载数量上限，0 表示一次性发出全部请求
	Limit int

	// OnError 单帧加载失败时的回调（在加载协程中调用），可为 nil
	OnError func(index int, err error)
}

// Loader 异步加载整个帧序列
//
// 构造时立即在后台发出全部加载请求，不阻塞调用方。每帧独立完成，
// 只修改自己的状态位；失败的帧永久保持未就绪，不会重试。
type Loader[F any] struct {
	frames []F
	states []atomic.Int32

	loaded atomic.Int32
	failed atomic.Int32

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// NewLoader 创建加载器并开始加载 count 帧
func NewLoader[F any](ctx context.Context, count int, load LoadFunc[F], opts LoaderOptions) *Loader[F] {
	if count < 0 {
		count = 0
	}
	ctx, cancel := context.WithCancel(ctx)
	l := &Loader[F]{
		frames: make([]F, count),
		states: make([]atomic.Int32, count),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go l.run(ctx, load, opts)
	return l
}

func (l *Loader[F]) run(ctx context.Context, load LoadFunc[F], opts LoaderOptions) {
	defer close(l.done)

	var g errgroup.Group
	if opts.Limit > 0 {
		g.SetLimit(opts.Limit)
	}
	for i := range l.frames {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			l.loadOne(ctx, i, load, opts.OnError)
			return nil
		})
	}
	_ = g.Wait()
}

func (l *Loader[F]) loadOne(ctx context.Context, index int, load LoadFunc[F], onError func(int, error)) {
	if ctx.Err() != nil {
		return
	}
	l.states[index].Store(int32(FrameLoading))

	frame, err := load(ctx, index)
	if err != nil {
		if ctx.Err() != nil {
			// 关闭导致的中断不算失败
			l.states[index].Store(int32(FrameUnloaded))
			return
		}
		l.states[index].Store(int32(FrameFailed))
		l.failed.Add(1)
		if onError != nil {
			onError(index, err)
		}
		return
	}

	// frames[index] 必须在状态发布之前写入
	l.frames[index] = frame
	l.states[index].Store(int32(FrameLoaded))
	l.loaded.Add(1)
}

// Len 返回帧总数
func (l *Loader[F]) Len() int {
	return len(l.frames)
}

// State 返回第 index 帧的加载状态，越界索引视为未加载
func (l *Loader[F]) State(index int) FrameState {
	if index < 0 || index >= len(l.states) {
		return FrameUnloaded
	}
	return FrameState(l.states[index].Load())
}

// IsReady 第 index 帧是否已加载完成
func (l *Loader[F]) IsReady(index int) bool {
	return l.State(index) == FrameLoaded
}

// Image 返回第 index 帧；未就绪时返回零值和 false
func (l *Loader[F]) Image(index int) (F, bool) {
	var zero F
	if !l.IsReady(index) {
		return zero, false
	}
	return l.frames[index], true
}

// Progress 返回已加载、已失败的帧数和总帧数
func (l *Loader[F]) Progress() (loaded, failed, total int) {
	return int(l.loaded.Load()), int(l.failed.Load()), len(l.frames)
}

// Done 在所有已发出的加载结束后关闭
func (l *Loader[F]) Done() <-chan struct{} {
	return l.done
}

// Close 取消未完成的加载并等待后台协程退出，可重复调用
func (l *Loader[F]) Close() {
	l.closeOnce.Do(func() {
		l.cancel()
		<-l.done
	})
}
