package scrollfx

import (
	"image"
	"time"
)

// fakeFrame 固定尺寸的帧句柄
type fakeFrame struct {
	id   int
	w, h int
}

func (f fakeFrame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.w, f.h)
}

// fakeStore 手动控制就绪状态的帧存储
type fakeStore struct {
	count  int
	ready  map[int]bool
	closed int
}

func newFakeStore(count int) *fakeStore {
	return &fakeStore{count: count, ready: make(map[int]bool)}
}

func (s *fakeStore) Len() int               { return s.count }
func (s *fakeStore) IsReady(index int) bool { return s.ready[index] }
func (s *fakeStore) Close()                 { s.closed++ }

func (s *fakeStore) Image(index int) (fakeFrame, bool) {
	if !s.ready[index] {
		return fakeFrame{}, false
	}
	return fakeFrame{id: index, w: 1920, h: 1080}, true
}

// fakeSurface 记录绘制调用
type fakeSurface struct {
	w, h    int
	clears  int
	drawn   []int
	last    Placement
	content int // 当前画面上的帧，-1 表示空白
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{content: -1}
}

func (s *fakeSurface) Size() (int, int)     { return s.w, s.h }
func (s *fakeSurface) SetSize(w, h int)     { s.w, s.h = w, h }
func (s *fakeSurface) Clear()               { s.clears++; s.content = -1 }
func (s *fakeSurface) Draw(f fakeFrame, p Placement) {
	s.drawn = append(s.drawn, f.id)
	s.last = p
	s.content = f.id
}

type classKey struct {
	id    ElementID
	class string
}

// fakePage 内存中的页面：同时实现 Geometry 和 StylePort
type fakePage struct {
	vw, vh float64
	rects  map[ElementID]Rect
	items  []ElementID

	classes map[classKey]bool
	props   map[ElementID]map[string]float64
	delays  map[ElementID]time.Duration

	classCalls int
	propCalls  int
	delayCalls int
}

func newFakePage() *fakePage {
	p := &fakePage{
		vw:      1280,
		vh:      800,
		rects:   make(map[ElementID]Rect),
		classes: make(map[classKey]bool),
		props:   make(map[ElementID]map[string]float64),
		delays:  make(map[ElementID]time.Duration),
	}
	p.rects[ElementBody] = Rect{W: 1280, H: 800}
	p.rects[ElementOverlay] = Rect{W: 1280, H: 800}
	p.rects[ElementNavContent] = Rect{X: 200, Y: 100, W: 880, H: 600}
	p.rects[ElementTitleBar] = Rect{W: 1280, H: 50}
	p.rects[ElementResults] = Rect{Y: 800, W: 1280, H: 400}
	p.rects[ElementToggle] = Rect{X: 16, Y: 9, W: 32, H: 32}
	p.rects[ElementTitle] = Rect{X: 400, Y: 300, W: 480, H: 100}
	p.rects[ElementSubtitle] = Rect{X: 420, Y: 410, W: 300, H: 24}
	for i := 0; i < 3; i++ {
		id := NavItemID(i)
		p.items = append(p.items, id)
		p.rects[id] = Rect{X: 240, Y: 500 + float64(i)*30, W: 120, H: 20}
	}
	return p
}

func (p *fakePage) Viewport() (float64, float64) { return p.vw, p.vh }
func (p *fakePage) NavItems() []ElementID         { return p.items }

func (p *fakePage) Bounds(id ElementID) (Rect, bool) {
	r, ok := p.rects[id]
	return r, ok
}

func (p *fakePage) SetClass(id ElementID, class string, on bool) {
	p.classCalls++
	p.classes[classKey{id, class}] = on
}

func (p *fakePage) SetProperty(id ElementID, name string, value float64) {
	p.propCalls++
	if p.props[id] == nil {
		p.props[id] = make(map[string]float64)
	}
	p.props[id][name] = value
}

func (p *fakePage) SetTransitionDelay(id ElementID, d time.Duration) {
	p.delayCalls++
	p.delays[id] = d
}

func (p *fakePage) hasClass(id ElementID, class string) bool {
	return p.classes[classKey{id, class}]
}

// fakeSource 手动触发的滚动源
type fakeSource struct {
	subs map[int]func(ScrollEvent)
	next int
}

func newFakeSource() *fakeSource {
	return &fakeSource{subs: make(map[int]func(ScrollEvent))}
}

func (s *fakeSource) Subscribe(fn func(ScrollEvent)) func() {
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *fakeSource) emit(ev ScrollEvent) {
	for _, fn := range s.subs {
		fn(ev)
	}
}
