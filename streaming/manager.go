// Package streaming decides which photos to load, display and evict based on
// what the viewport currently shows. All state lives on the manager and is
// mutated only from the tick goroutine; the loader's completion channel is
// the single asynchronous edge.
package streaming

import (
	"log"

	"github.com/automoto/photowall/shared/viewmath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type LoadState int

const (
	Unloaded LoadState = iota
	Loading
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unloaded"
	}
}

// Options tunes the manager. EvictMargin must be larger than PreloadMargin;
// the band between them is the hysteresis zone where nothing happens.
type Options struct {
	PreloadMargin float64
	EvictMargin   float64
	MaxConcurrent int     // in-flight ceiling, immediate mode
	FadeDuration  float64 // seconds
	LoadTimeout   float64 // seconds; 0 disables the stuck-load timeout

	Batched     bool
	BatchSize   int
	SettleDelay float64 // seconds between batches
}

type resource struct {
	id  string
	box viewmath.Rect
	url string

	state   LoadState
	gen     uint64 // bumped on evict/timeout; stale-completion guard
	handle  Handle
	opacity float64
	fade    *gween.Tween
	loading float64 // seconds spent in Loading
	visible bool    // last tick, for visibility-enter edges (batched mode)
}

// View is the per-photo output pushed to the display layer each tick.
type View struct {
	ID      string
	State   LoadState
	Opacity float64
	Handle  Handle
}

// Stats summarizes manager state for the HUD.
type Stats struct {
	Total    int
	Loaded   int
	Loading  int
	Failed   int
	Inflight int
	Queued   int
}

type Manager struct {
	opts      Options
	loader    Loader
	resources map[string]*resource
	order     []string // catalog order, deterministic iteration
	inflight  int
	batch     *batcher // nil in immediate mode
}

func NewManager(loader Loader, opts Options) *Manager {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	m := &Manager{
		opts:      opts,
		loader:    loader,
		resources: make(map[string]*resource),
	}
	if opts.Batched {
		m.batch = newBatcher(opts.BatchSize, opts.SettleDelay)
	}
	return m
}

// Track registers a photo with its static world box and load URL. Tracking
// the same id twice is a no-op.
func (m *Manager) Track(id string, box viewmath.Rect, url string) {
	if _, ok := m.resources[id]; ok {
		return
	}
	m.resources[id] = &resource{id: id, box: box, url: url}
	m.order = append(m.order, id)
}

// Tick runs one streaming step against a frozen, post-clamp viewport rect.
// dt is the tick duration in seconds.
func (m *Manager) Tick(view viewmath.Rect, dt float64) {
	m.drainResults()
	m.advanceTimers(dt)
	m.advanceFades(dt)
	if m.batch != nil {
		m.tickBatched(view, dt)
	} else {
		m.tickImmediate(view)
	}
	m.evict(view)
}

// drainResults applies every completion the loader has produced since the
// last tick. Never blocks.
func (m *Manager) drainResults() {
	if m.loader == nil {
		return
	}
	for {
		select {
		case res := <-m.loader.Results():
			m.apply(res)
		default:
			return
		}
	}
}

func (m *Manager) apply(res Result) {
	r := m.resources[res.ID]
	if r == nil || r.state != Loading || r.gen != res.Gen {
		// Stale completion: the resource was evicted, timed out or reset
		// after this request was issued. Drop the result.
		if res.Handle != nil {
			res.Handle.Dispose()
		}
		return
	}
	m.inflight--
	r.loading = 0
	if res.Err != nil {
		r.state = Failed
		log.Printf("[streaming] load failed: %s: %v", res.ID, res.Err)
		if m.batch != nil {
			m.batch.markLoaded(res.ID, true) // failure skips the fade
		}
		return
	}
	r.state = Loaded
	r.handle = res.Handle
	r.opacity = 0
	r.fade = gween.New(0, 1, float32(m.opts.FadeDuration), ease.OutCubic)
	if m.batch != nil {
		m.batch.markLoaded(res.ID, false)
	}
}

// advanceTimers converts loads stuck past the timeout to Failed and bumps
// the generation so a late completion is dropped.
func (m *Manager) advanceTimers(dt float64) {
	if m.opts.LoadTimeout <= 0 {
		return
	}
	for _, id := range m.order {
		r := m.resources[id]
		if r.state != Loading {
			continue
		}
		r.loading += dt
		if r.loading < m.opts.LoadTimeout {
			continue
		}
		log.Printf("[streaming] load timed out: %s", r.id)
		r.state = Failed
		r.gen++
		r.loading = 0
		m.inflight--
		if m.batch != nil {
			m.batch.markLoaded(r.id, true)
		}
	}
}

// advanceFades samples every running fade. Opacity is monotonic per resource;
// only eviction resets it.
func (m *Manager) advanceFades(dt float64) {
	for _, id := range m.order {
		r := m.resources[id]
		if r.fade == nil {
			continue
		}
		v, done := r.fade.Update(float32(dt))
		r.opacity = float64(v)
		if done {
			r.opacity = 1
			r.fade = nil
			if m.batch != nil {
				m.batch.markFaded(r.id)
			}
		}
	}
}

// tickImmediate polls visibility for every photo and issues loads up to the
// concurrency ceiling. Failed counts as Unloaded for retry purposes.
func (m *Manager) tickImmediate(view viewmath.Rect) {
	for _, id := range m.order {
		r := m.resources[id]
		if r.state != Unloaded && r.state != Failed {
			continue
		}
		if !viewmath.Visible(view, r.box, m.opts.PreloadMargin) {
			continue
		}
		if m.inflight >= m.opts.MaxConcurrent {
			return // ceiling hit; the rest retry next tick
		}
		m.startLoad(r)
	}
}

// tickBatched turns visibility-enter edges into queue entries and advances
// the single active batch.
func (m *Manager) tickBatched(view viewmath.Rect, dt float64) {
	for _, id := range m.order {
		r := m.resources[id]
		vis := viewmath.Visible(view, r.box, m.opts.PreloadMargin)
		enter := vis && !r.visible
		r.visible = vis
		if !enter || r.state == Loaded || r.state == Loading {
			continue
		}
		m.batch.enqueue(id)
	}
	m.batch.step(m, dt)
}

func (m *Manager) startLoad(r *resource) {
	r.state = Loading
	r.loading = 0
	m.inflight++
	m.loader.Load(Request{ID: r.id, Gen: r.gen, URL: r.url})
}

// evict releases photos that fell outside the eviction margin. Members of an
// active batch are exempt so a mid-fade eviction cannot stall the quorum.
func (m *Manager) evict(view viewmath.Rect) {
	for _, id := range m.order {
		r := m.resources[id]
		if r.state != Loaded {
			continue
		}
		if m.batch != nil && m.batch.inActiveBatch(id) {
			continue
		}
		if viewmath.Visible(view, r.box, m.opts.EvictMargin) {
			continue
		}
		r.gen++
		if r.handle != nil {
			r.handle.Dispose()
			r.handle = nil
		}
		r.state = Unloaded
		r.opacity = 0
		r.fade = nil
	}
}

// ViewOf returns the display view for one photo.
func (m *Manager) ViewOf(id string) (View, bool) {
	r, ok := m.resources[id]
	if !ok {
		return View{}, false
	}
	return View{ID: r.id, State: r.state, Opacity: r.opacity, Handle: r.handle}, true
}

// Each visits every tracked photo in catalog order.
func (m *Manager) Each(fn func(View)) {
	for _, id := range m.order {
		r := m.resources[id]
		fn(View{ID: r.id, State: r.state, Opacity: r.opacity, Handle: r.handle})
	}
}

func (m *Manager) Stats() Stats {
	s := Stats{Total: len(m.order), Inflight: m.inflight}
	for _, id := range m.order {
		switch m.resources[id].state {
		case Loaded:
			s.Loaded++
		case Loading:
			s.Loading++
		case Failed:
			s.Failed++
		}
	}
	if m.batch != nil {
		s.Queued = len(m.batch.queue)
	}
	return s
}
