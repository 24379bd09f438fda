package tween

type state uint8

const (
	stateActive state = iota
	stateDone
	stateKilled
)

// Tween drives a setter from one value to another over a duration in seconds
type Tween struct {
	from, to   float64
	duration   float64
	elapsed    float64
	ease       Ease
	set        func(float64)
	onComplete func()
	state      state
}

// New creates an active tween; the setter is not called until the first Step
func New(from, to, duration float64, ease Ease, set func(float64)) *Tween {
	if ease == nil {
		ease = Linear
	}
	if duration < 0 {
		duration = 0
	}
	return &Tween{
		from:     from,
		to:       to,
		duration: duration,
		ease:     ease,
		set:      set,
	}
}

// OnComplete registers fn to run once when the tween reaches its end
func (tw *Tween) OnComplete(fn func()) *Tween {
	tw.onComplete = fn
	return tw
}

// Step advances the tween by dt seconds and returns true once it is finished or killed
func (tw *Tween) Step(dt float64) bool {
	if tw.state != stateActive {
		return true
	}

	tw.elapsed += dt
	p := 1.0
	if tw.duration > 0 && tw.elapsed < tw.duration {
		p = tw.elapsed / tw.duration
	}

	if p >= 1 {
		// Land exactly on the target regardless of ease rounding
		tw.apply(tw.to)
		tw.state = stateDone
		if tw.onComplete != nil {
			tw.onComplete()
		}
		return true
	}

	tw.apply(tw.from + (tw.to-tw.from)*tw.ease(p))
	return false
}

func (tw *Tween) apply(v float64) {
	if tw.set != nil {
		tw.set(v)
	}
}

// Kill stops the tween without completing it
func (tw *Tween) Kill() {
	if tw.state == stateActive {
		tw.state = stateKilled
	}
}

// Active reports whether the tween is still running
func (tw *Tween) Active() bool {
	return tw.state == stateActive
}

// Completed reports whether the tween reached its end
func (tw *Tween) Completed() bool {
	return tw.state == stateDone
}

// Progress returns linear progress in [0,1]
func (tw *Tween) Progress() float64 {
	if tw.duration <= 0 {
		if tw.state == stateDone {
			return 1
		}
		return 0
	}
	p := tw.elapsed / tw.duration
	if p > 1 {
		return 1
	}
	return p
}

// From returns the start value
func (tw *Tween) From() float64 { return tw.from }

// To returns the target value
func (tw *Tween) To() float64 { return tw.to }

// Duration returns the length in seconds
func (tw *Tween) Duration() float64 { return tw.duration }
