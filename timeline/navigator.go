package timeline

import (
	"math"

	"github.com/lixenwraith/marquee/constants"
	"github.com/lixenwraith/marquee/tween"
)

// SeekOptions tunes a single index seek
type SeekOptions struct {
	Duration float64         // seconds; <= 0 derives it from distance and rate
	Ease     tween.Ease      // defaults to Linear
	OnSettle func(index int) // runs when the seek reaches its target
}

// Seek is a scheduled playhead move toward an item's label time
// To is unwrapped so the move travels monotonically in the requested direction
type Seek struct {
	Index int
	From  float64
	To    float64

	tw       *tween.Tween
	onSettle func(int)
}

// Target returns the wrapped time the seek lands on
func (s *Seek) Target(duration float64) float64 {
	return Wrap(s.To, duration)
}

// Distance returns the signed playhead travel
func (s *Seek) Distance() float64 {
	return s.To - s.From
}

// Duration returns the seek length in seconds
func (s *Seek) Duration() float64 {
	return s.tw.Duration()
}

// Active reports whether the seek is still moving
func (s *Seek) Active() bool {
	return s.tw.Active()
}

// Current returns the index of the last requested seek target
func (tl *LoopTimeline) Current() int {
	return tl.curIndex
}

// Next seeks to the following item
func (tl *LoopTimeline) Next(opts *SeekOptions) *Seek {
	return tl.ToIndex(tl.curIndex+1, opts)
}

// Previous seeks to the preceding item
func (tl *LoopTimeline) Previous(opts *SeekOptions) *Seek {
	return tl.ToIndex(tl.curIndex-1, opts)
}

// ToIndex schedules a seek to item index along the shortest way around the ring
// A delta of more than half the item count is wrapped the other way; an exact
// half keeps the requested direction
func (tl *LoopTimeline) ToIndex(index int, opts *SeekOptions) *Seek {
	if tl.killed || len(tl.times) == 0 {
		return nil
	}
	if opts == nil {
		opts = &SeekOptions{}
	}

	length := len(tl.times)
	target := index
	if math.Abs(float64(target-tl.curIndex)) > float64(length)/2 {
		if target > tl.curIndex {
			target -= length
		} else {
			target += length
		}
	}

	newIndex := WrapIndex(target, length)
	to := tl.times[newIndex]
	forward := target > tl.curIndex

	// Keep travel in the requested direction instead of snapping backward
	if target != tl.curIndex && (to > tl.time) != forward {
		if forward {
			to += tl.duration
		} else {
			to -= tl.duration
		}
	}

	tl.curIndex = newIndex
	return tl.startSeek(newIndex, to, opts)
}

func (tl *LoopTimeline) startSeek(index int, to float64, opts *SeekOptions) *Seek {
	tl.CancelSeek()

	from := tl.time
	duration := opts.Duration
	if duration <= 0 {
		duration = math.Abs(to-from) / math.Max(math.Abs(tl.rate), 1)
	}
	if duration < constants.MinSeekDuration {
		duration = constants.MinSeekDuration
	}

	s := &Seek{
		Index:    index,
		From:     from,
		To:       to,
		onSettle: opts.OnSettle,
	}
	s.tw = tween.New(from, to, duration, opts.Ease, tl.SetTime)
	tl.seek = s
	return s
}

func (tl *LoopTimeline) stepSeek(dt float64) {
	s := tl.seek
	if !s.tw.Step(dt) {
		return
	}
	if tl.seek == s {
		tl.seek = nil
	}
	if s.tw.Completed() && s.onSettle != nil {
		s.onSettle(s.Index)
	}
}

// Seeking reports whether a seek owns the playhead
func (tl *LoopTimeline) Seeking() bool {
	return tl.seek != nil && tl.seek.Active()
}

// ActiveSeek returns the running seek or nil
func (tl *LoopTimeline) ActiveSeek() *Seek {
	if !tl.Seeking() {
		return nil
	}
	return tl.seek
}

// CancelSeek abandons the running seek, leaving the playhead where it is
func (tl *LoopTimeline) CancelSeek() {
	if tl.seek != nil {
		tl.seek.tw.Kill()
		tl.seek = nil
	}
}
