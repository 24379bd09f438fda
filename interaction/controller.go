// Package interaction arbitrates hover, drag and wheel input over a loop timeline's playback rate
package interaction

import (
	"github.com/lixenwraith/marquee/constants"
	"github.com/lixenwraith/marquee/timeline"
	"github.com/lixenwraith/marquee/tween"
)

// Phase is the state of the single rate transition slot
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSettlingToZero
	PhaseSettlingToDirection
	PhaseBursting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSettlingToZero:
		return "settling-to-zero"
	case PhaseSettlingToDirection:
		return "settling-to-direction"
	case PhaseBursting:
		return "bursting"
	default:
		return "unknown"
	}
}

// Intent names the input source currently governing playback
type Intent uint8

const (
	IntentIdle Intent = iota
	IntentHovering
	IntentDragging
	IntentScrubbing
)

func (i Intent) String() string {
	switch i {
	case IntentIdle:
		return "idle"
	case IntentHovering:
		return "hovering"
	case IntentDragging:
		return "dragging"
	case IntentScrubbing:
		return "wheel-scrubbing"
	default:
		return "unknown"
	}
}

// Hooks are optional notifications for side effects such as audio
type Hooks struct {
	OnBurst func(direction float64)
}

// Controller retunes a timeline in response to user input
// Drag takes precedence over hover, hover over wheel; every new rate
// transition replaces the one in flight
type Controller struct {
	tl    *timeline.LoopTimeline
	slot  tween.Slot
	phase Phase
	hooks Hooks

	hovered   bool
	dragging  bool
	direction float64 // remembered unit rate, ±1
	dragDir   float64 // sign of the latest drag movement, 0 if none yet
}

// NewController attaches a controller to tl, inheriting its playback direction
func NewController(tl *timeline.LoopTimeline, hooks Hooks) *Controller {
	dir := 1.0
	if tl.Rate() < 0 {
		dir = -1
	}
	return &Controller{
		tl:        tl,
		hooks:     hooks,
		direction: dir,
	}
}

// Phase returns the rate transition state
func (c *Controller) Phase() Phase { return c.phase }

// Hovered reports whether the pointer is over the rail
func (c *Controller) Hovered() bool { return c.hovered }

// Dragging reports whether a drag gesture is in progress
func (c *Controller) Dragging() bool { return c.dragging }

// Direction returns the remembered signed unit rate
func (c *Controller) Direction() float64 { return c.direction }

// Intent returns the input currently governing playback
func (c *Controller) Intent() Intent {
	switch {
	case c.dragging:
		return IntentDragging
	case c.phase == PhaseBursting:
		return IntentScrubbing
	case c.hovered:
		return IntentHovering
	default:
		return IntentIdle
	}
}

// HoverEnter eases the rate to zero unless a drag is in progress
func (c *Controller) HoverEnter() {
	c.hovered = true
	if c.dragging {
		return
	}
	c.rateTo(0, constants.HoverEnterDuration, tween.Power2Out, PhaseSettlingToZero, nil)
}

// HoverLeave eases the rate back to the remembered direction unless dragging
func (c *Controller) HoverLeave() {
	c.hovered = false
	if c.dragging {
		return
	}
	c.rateTo(c.direction, constants.HoverLeaveDuration, tween.Power2In, PhaseSettlingToDirection, nil)
}

// Press begins direct manipulation: transitions and seeks are cancelled and the rate frozen at zero
func (c *Controller) Press() {
	c.dragging = true
	c.dragDir = 0
	c.slot.Kill()
	c.phase = PhaseIdle
	c.tl.CancelSeek()
	c.tl.SetRate(0)
}

// Drag scrubs the playhead by a pointer movement of dx pixels
func (c *Controller) Drag(dx float64) {
	if !c.dragging || dx == 0 {
		return
	}
	c.tl.SetTime(c.tl.Time() - dx/c.tl.PixelsPerSecond())

	// Pulling left plays forward
	if dx < 0 {
		c.dragDir = 1
	} else {
		c.dragDir = -1
	}
}

// Release ends the drag, adopting the gesture's terminal direction
func (c *Controller) Release() {
	if !c.dragging {
		return
	}
	c.dragging = false
	if c.dragDir != 0 {
		c.direction = c.dragDir
	}
	c.dragDir = 0

	if c.hovered {
		return
	}
	c.rateTo(c.direction, constants.ReleaseDuration, tween.Power1In, PhaseSettlingToDirection, nil)
}

// Wheel spikes the rate in the direction of deltaY, then settles to unit speed
// Ignored while hovered or dragging
func (c *Controller) Wheel(deltaY float64) {
	if c.hovered || c.dragging || deltaY == 0 {
		return
	}

	factor := constants.BurstFactor
	if deltaY < 0 {
		factor = -factor
	}
	if factor > 0 {
		c.direction = 1
	} else {
		c.direction = -1
	}

	c.rateTo(factor*constants.BurstMultiplier, constants.BurstDuration, tween.Linear, PhaseBursting, c.settleAfterBurst)

	if c.hooks.OnBurst != nil {
		c.hooks.OnBurst(c.direction)
	}
}

func (c *Controller) settleAfterBurst() {
	if c.hovered || c.dragging {
		return
	}
	c.rateTo(c.direction, constants.BurstSettleDuration, tween.Power1Out, PhaseSettlingToDirection, nil)
}

// rateTo replaces the in-flight transition with a new one toward target
func (c *Controller) rateTo(target, duration float64, ease tween.Ease, phase Phase, then func()) {
	tw := tween.New(c.tl.Rate(), target, duration, ease, c.tl.SetRate)
	tw.OnComplete(func() {
		c.phase = PhaseIdle
		if then != nil {
			then()
		}
	})
	c.slot.Start(tw)
	c.phase = phase
}

// Step advances the rate transition by dt seconds
func (c *Controller) Step(dt float64) {
	c.slot.Step(dt)
}

// Reset cancels transitions and clears all interaction state
func (c *Controller) Reset() {
	c.slot.Kill()
	c.phase = PhaseIdle
	c.hovered = false
	c.dragging = false
	c.dragDir = 0
}
