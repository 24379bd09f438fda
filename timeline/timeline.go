// Package timeline builds the self-repeating rail animation and navigates it by item index
package timeline

import (
	"errors"
	"math"

	"github.com/lixenwraith/marquee/geometry"
)

var (
	// ErrNoItems is returned when there is nothing to animate
	ErrNoItems = errors.New("timeline: no items")
	// ErrInvalidSpeed is returned for a non-positive or non-finite speed
	ErrInvalidSpeed = errors.New("timeline: pixels per second must be positive")
)

// Config controls loop construction
type Config struct {
	PixelsPerSecond float64
	PaddingRight    float64 // extra gap at the loop seam, px
	SnapIncrement   float64 // xPercent quantization, <= 0 disables
	Reversed        bool    // start playing backwards
	Paused          bool
}

// Segment is a linear xPercent motion over [Start, Start+Duration)
type Segment struct {
	Start    float64
	Duration float64
	From     float64
	To       float64
}

// End returns the time the segment finishes
func (s Segment) End() float64 {
	return s.Start + s.Duration
}

// At evaluates the segment at local timeline time t, clamped to its span
func (s Segment) At(t float64) float64 {
	if s.Duration <= 0 {
		return s.To
	}
	p := (t - s.Start) / s.Duration
	if p <= 0 {
		return s.From
	}
	if p >= 1 {
		return s.To
	}
	return s.From + (s.To-s.From)*p
}

// Schedule is the two-segment motion of one item
// Exit slides from home until the item leaves the span; Reenter starts at the
// wrap-around position exactly when Exit ends and returns home by the loop end
type Schedule struct {
	Index           int
	Home            float64 // resting xPercent
	DistanceToStart float64
	DistanceToLoop  float64
	StartTime       float64 // DistanceToStart / pps, the item's label time
	Exit            Segment
	Reenter         Segment
}

// At evaluates the item's xPercent at local time t in [0, duration)
func (s Schedule) At(t float64) float64 {
	if t < s.Reenter.Start {
		return s.Exit.At(t)
	}
	return s.Reenter.At(t)
}

// LoopTimeline is a perpetually repeating position timeline for a row of items
type LoopTimeline struct {
	items     []geometry.Item
	schedules []Schedule
	times     []float64

	pps        float64
	totalWidth float64
	duration   float64

	time   float64 // always in [0, duration)
	rate   float64
	paused bool
	killed bool

	curIndex int
	seek     *Seek
}

// Build constructs the loop from sampled items
func Build(items []geometry.Item, cfg Config) (*LoopTimeline, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	pps := cfg.PixelsPerSecond
	if pps <= 0 || math.IsNaN(pps) || math.IsInf(pps, 0) {
		return nil, ErrInvalidSpeed
	}

	padding := cfg.PaddingRight
	if math.IsNaN(padding) || math.IsInf(padding, 0) {
		padding = 0
	}

	snap := geometry.NewSnap(cfg.SnapIncrement)
	floor := geometry.MinWidth(cfg.SnapIncrement)

	own := make([]geometry.Item, len(items))
	copy(own, items)
	for i := range own {
		if !(own[i].Width >= floor) {
			own[i].Width = floor
		}
		if !(own[i].ScaleX > 0) {
			own[i].ScaleX = 1
		}
	}

	startX := own[0].OffsetLeft
	last := own[len(own)-1]
	totalWidth := last.OffsetLeft + last.Offset() - startX + last.Width*last.ScaleX + padding

	tl := &LoopTimeline{
		items:      own,
		schedules:  make([]Schedule, len(own)),
		times:      make([]float64, len(own)),
		pps:        pps,
		totalWidth: totalWidth,
		duration:   totalWidth / pps,
		rate:       1,
		paused:     cfg.Paused,
	}

	for i, it := range own {
		curX := it.Offset()
		distanceToStart := it.OffsetLeft + curX - startX
		distanceToLoop := distanceToStart + it.Width*it.ScaleX
		exitEnd := distanceToLoop / pps

		tl.schedules[i] = Schedule{
			Index:           i,
			Home:            it.XPercent,
			DistanceToStart: distanceToStart,
			DistanceToLoop:  distanceToLoop,
			StartTime:       distanceToStart / pps,
			Exit: Segment{
				Start:    0,
				Duration: exitEnd,
				From:     it.XPercent,
				To:       snap((curX - distanceToLoop) / it.Width * 100),
			},
			Reenter: Segment{
				Start:    exitEnd,
				Duration: (totalWidth - distanceToLoop) / pps,
				From:     snap((curX - distanceToLoop + totalWidth) / it.Width * 100),
				To:       it.XPercent,
			},
		}
		tl.times[i] = distanceToStart / pps
	}

	if cfg.Reversed {
		tl.rate = -1
	}

	return tl, nil
}

// Duration returns the loop duration in seconds
func (tl *LoopTimeline) Duration() float64 { return tl.duration }

// TotalWidth returns the loop width in pixels
func (tl *LoopTimeline) TotalWidth() float64 { return tl.totalWidth }

// PixelsPerSecond returns the natural speed
func (tl *LoopTimeline) PixelsPerSecond() float64 { return tl.pps }

// Len returns the number of scheduled items
func (tl *LoopTimeline) Len() int { return len(tl.schedules) }

// Schedule returns the motion of item i
func (tl *LoopTimeline) Schedule(i int) Schedule { return tl.schedules[i] }

// Times returns a copy of each item's label time
func (tl *LoopTimeline) Times() []float64 {
	out := make([]float64, len(tl.times))
	copy(out, tl.times)
	return out
}

// Time returns the playhead in [0, duration)
func (tl *LoopTimeline) Time() float64 { return tl.time }

// SetTime moves the playhead, wrapping into the loop
func (tl *LoopTimeline) SetTime(t float64) {
	tl.time = Wrap(t, tl.duration)
}

// Rate returns the signed playback rate
func (tl *LoopTimeline) Rate() float64 { return tl.rate }

// SetRate sets the signed playback rate
func (tl *LoopTimeline) SetRate(r float64) {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return
	}
	tl.rate = r
}

// Pause stops natural playback; seeks still run
func (tl *LoopTimeline) Pause() { tl.paused = true }

// Resume restarts natural playback
func (tl *LoopTimeline) Resume() { tl.paused = false }

// Paused reports natural playback state
func (tl *LoopTimeline) Paused() bool { return tl.paused }

// Kill permanently stops the timeline and any pending seek
func (tl *LoopTimeline) Kill() {
	tl.CancelSeek()
	tl.killed = true
}

// Killed reports whether Kill was called
func (tl *LoopTimeline) Killed() bool { return tl.killed }

// Advance moves the timeline by dt seconds of wall time
// An active seek owns the playhead; otherwise time moves by dt*rate
func (tl *LoopTimeline) Advance(dt float64) {
	if tl.killed || dt <= 0 {
		return
	}
	if tl.seek != nil {
		tl.stepSeek(dt)
		return
	}
	if tl.paused {
		return
	}
	tl.SetTime(tl.time + dt*tl.rate)
}

// XPercent returns item i's xPercent at the current playhead
func (tl *LoopTimeline) XPercent(i int) float64 {
	return tl.schedules[i].At(tl.time)
}

// XPercentAt returns item i's xPercent at arbitrary time t
func (tl *LoopTimeline) XPercentAt(i int, t float64) float64 {
	return tl.schedules[i].At(Wrap(t, tl.duration))
}

// Positions writes every item's current xPercent into dst, growing it as needed
func (tl *LoopTimeline) Positions(dst []float64) []float64 {
	if cap(dst) < len(tl.schedules) {
		dst = make([]float64, len(tl.schedules))
	}
	dst = dst[:len(tl.schedules)]
	for i := range tl.schedules {
		dst[i] = tl.schedules[i].At(tl.time)
	}
	return dst
}

// Wrap maps t into [0, d); d <= 0 yields 0
func Wrap(t, d float64) float64 {
	if d <= 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return 0
	}
	r := math.Mod(t, d)
	if r < 0 {
		r += d
	}
	if r >= d {
		r = 0
	}
	return r
}

// WrapIndex maps i into [0, n)
func WrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}
