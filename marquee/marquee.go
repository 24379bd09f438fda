// Package marquee owns the lifecycle of a looping rail: sampling, timeline
// construction, interaction wiring, resize rebuilds and teardown
package marquee

import (
	"errors"
	"time"

	"github.com/lixenwraith/marquee/constants"
	"github.com/lixenwraith/marquee/engine"
	"github.com/lixenwraith/marquee/geometry"
	"github.com/lixenwraith/marquee/interaction"
	"github.com/lixenwraith/marquee/log"
	"github.com/lixenwraith/marquee/timeline"
)

// Options configures a Marquee
type Options struct {
	Timeline       timeline.Config
	ResizeDebounce time.Duration
	Clock          engine.TimeProvider
	Logger         *log.Logger

	// OnSettle runs when an index seek reaches its target
	OnSettle func(index int)
	// OnBurst runs when a wheel event spikes the rate
	OnBurst func(direction float64)
	// OnRebuild runs after every successful (re)build with the item count
	OnRebuild func(items int)
}

// Marquee is a single live rail instance
// Start always tears down first, so at most one timeline and one listener set exist
type Marquee struct {
	host Host
	opts Options
	log  *log.Logger

	tl       *timeline.LoopTimeline
	ctrl     *interaction.Controller
	elements []geometry.Element

	listeners  []ListenerID
	resize     *engine.Timer
	generation uint64

	pointerX  float64
	positions []float64
	builds    int
}

// New creates an inactive marquee bound to host
func New(host Host, opts Options) *Marquee {
	if opts.ResizeDebounce <= 0 {
		opts.ResizeDebounce = constants.ResizeDebounce
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewMonotonicTimeProvider()
	}
	if opts.Timeline.PixelsPerSecond == 0 {
		opts.Timeline.PixelsPerSecond = constants.DefaultPixelsPerSecond
	}

	m := &Marquee{
		host: host,
		opts: opts,
		log:  opts.Logger.With("marquee"),
	}
	m.resize = engine.NewTimer(opts.ResizeDebounce, m.rebuild)
	return m
}

// Start tears down any running instance and builds a new one
// A missing rail or an empty item list leaves the marquee inactive
func (m *Marquee) Start() {
	m.Stop()

	if m.host == nil {
		return
	}
	rail := m.host.Rail()
	if rail == nil {
		m.log.Debugf("rail container absent, not starting")
		return
	}
	elements := rail.Elements()
	// Offsets written by a previous run are not layout
	for _, el := range elements {
		el.SetTransform(0, 0)
	}
	items := geometry.Sample(elements, m.opts.Timeline.SnapIncrement)
	if len(items) == 0 {
		m.log.Debugf("no rail items, not starting")
		return
	}

	tl, err := timeline.Build(items, m.opts.Timeline)
	if err != nil {
		if !errors.Is(err, timeline.ErrNoItems) {
			m.log.Errorf("timeline build failed: %v", err)
		}
		return
	}

	m.tl = tl
	m.elements = elements
	m.ctrl = interaction.NewController(tl, interaction.Hooks{OnBurst: m.opts.OnBurst})
	m.builds++
	m.apply()

	m.log.Infof("built loop: %d items, width %.1f, duration %.2fs", tl.Len(), tl.TotalWidth(), tl.Duration())
	if m.opts.OnRebuild != nil {
		m.opts.OnRebuild(tl.Len())
	}

	// Listeners attach once layout has settled for this generation only
	gen := m.generation
	m.host.RequestFrame(func() {
		if gen != m.generation || m.tl == nil {
			return
		}
		m.attach()
	})
}

// Stop kills the timeline, detaches every listener and clears the pending rebuild
// Safe to call repeatedly
func (m *Marquee) Stop() {
	m.generation++

	if m.tl != nil {
		m.tl.Kill()
	}
	if m.ctrl != nil {
		m.ctrl.Reset()
	}
	m.detach()
	m.resize.Stop()

	m.tl = nil
	m.ctrl = nil
	m.elements = nil
	m.positions = nil
	m.pointerX = 0
}

// Destroy is the page-facing teardown
func (m *Marquee) Destroy() {
	m.Stop()
}

func (m *Marquee) attach() {
	if len(m.listeners) > 0 {
		return
	}
	add := func(target Target, kind EventKind, fn Listener) {
		m.listeners = append(m.listeners, m.host.AddListener(target, kind, fn))
	}

	add(TargetRail, EventMouseEnter, func(Event) { m.ctrl.HoverEnter() })
	add(TargetRail, EventMouseLeave, func(Event) { m.ctrl.HoverLeave() })
	add(TargetRail, EventPointerDown, m.onPointerDown)
	add(TargetWindow, EventPointerMove, m.onPointerMove)
	add(TargetWindow, EventPointerUp, func(Event) { m.ctrl.Release() })
	add(TargetWindow, EventWheel, func(ev Event) { m.ctrl.Wheel(ev.DeltaY) })
	add(TargetWindow, EventResize, m.onResize)

	m.log.Debugf("attached %d listeners", len(m.listeners))
}

func (m *Marquee) detach() {
	for _, id := range m.listeners {
		m.host.RemoveListener(id)
	}
	m.listeners = m.listeners[:0]
}

func (m *Marquee) onPointerDown(ev Event) {
	m.pointerX = ev.X
	m.ctrl.Press()
}

func (m *Marquee) onPointerMove(ev Event) {
	if !m.ctrl.Dragging() {
		return
	}
	dx := ev.X - m.pointerX
	m.pointerX = ev.X
	m.ctrl.Drag(dx)
}

func (m *Marquee) onResize(Event) {
	m.resize.Reset(m.opts.Clock.Now())
}

// rebuild runs when the resize quiet period elapses
// A rail that disappeared during the resize leaves the marquee stopped
func (m *Marquee) rebuild() {
	if m.host == nil || m.host.Rail() == nil {
		m.log.Debugf("rail gone after resize, stopping")
		m.Stop()
		return
	}
	m.log.Debugf("resize settled, rebuilding")
	m.Start()
}

// Frame advances transitions and playback by dt seconds and pushes positions to the elements
func (m *Marquee) Frame(dt float64) {
	if m.resize.Poll(m.opts.Clock.Now()) {
		// Rebuild already applied fresh positions
		return
	}
	if m.tl == nil {
		return
	}
	m.ctrl.Step(dt)
	m.tl.Advance(dt)
	m.apply()
}

func (m *Marquee) apply() {
	m.positions = m.tl.Positions(m.positions)
	for i, el := range m.elements {
		el.SetTransform(0, m.positions[i])
	}
}

func (m *Marquee) seekOptions() *timeline.SeekOptions {
	return &timeline.SeekOptions{OnSettle: m.opts.OnSettle}
}

// Next seeks to the following item; no-op while inactive
func (m *Marquee) Next() {
	if m.tl != nil {
		m.tl.Next(m.seekOptions())
	}
}

// Previous seeks to the preceding item; no-op while inactive
func (m *Marquee) Previous() {
	if m.tl != nil {
		m.tl.Previous(m.seekOptions())
	}
}

// ToIndex seeks to item i; no-op while inactive
func (m *Marquee) ToIndex(i int) {
	if m.tl != nil {
		m.tl.ToIndex(i, m.seekOptions())
	}
}

// Current returns the last requested index, or -1 while inactive
func (m *Marquee) Current() int {
	if m.tl == nil {
		return -1
	}
	return m.tl.Current()
}

// Active reports whether a timeline is running
func (m *Marquee) Active() bool {
	return m.tl != nil
}

// Timeline exposes the live timeline, nil while inactive
func (m *Marquee) Timeline() *timeline.LoopTimeline {
	return m.tl
}

// Controller exposes the live interaction controller, nil while inactive
func (m *Marquee) Controller() *interaction.Controller {
	return m.ctrl
}

// Builds returns how many timelines have been constructed
func (m *Marquee) Builds() int {
	return m.builds
}

// ListenerCount returns the number of attached listeners
func (m *Marquee) ListenerCount() int {
	return len(m.listeners)
}

// ResizePending reports whether a rebuild is waiting for the quiet period
func (m *Marquee) ResizePending() bool {
	return m.resize.Pending()
}

// Rate returns the playback rate, 0 while inactive
func (m *Marquee) Rate() float64 {
	if m.tl == nil {
		return 0
	}
	return m.tl.Rate()
}

// Time returns the playhead in seconds, 0 while inactive
func (m *Marquee) Time() float64 {
	if m.tl == nil {
		return 0
	}
	return m.tl.Time()
}

// Phase returns the rate transition phase, idle while inactive
func (m *Marquee) Phase() interaction.Phase {
	if m.ctrl == nil {
		return interaction.PhaseIdle
	}
	return m.ctrl.Phase()
}
