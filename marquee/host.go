package marquee

import "github.com/lixenwraith/marquee/geometry"

// Target is where a listener is attached
type Target uint8

const (
	TargetRail Target = iota
	TargetWindow
)

func (t Target) String() string {
	if t == TargetRail {
		return "rail"
	}
	return "window"
}

// EventKind enumerates the host events the engine consumes
type EventKind uint8

const (
	EventMouseEnter EventKind = iota
	EventMouseLeave
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventWheel
	EventResize
)

var eventKindNames = [...]string{
	EventMouseEnter:  "mouseenter",
	EventMouseLeave:  "mouseleave",
	EventPointerDown: "pointerdown",
	EventPointerMove: "pointermove",
	EventPointerUp:   "pointerup",
	EventWheel:       "wheel",
	EventResize:      "resize",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event is a host input event in rail pixel coordinates
type Event struct {
	Kind   EventKind
	X, Y   float64
	DeltaY float64 // wheel: negative scrolls up
}

// Listener receives host events
type Listener func(Event)

// ListenerID identifies an attached listener for removal
type ListenerID uint64

// Rail is the container of the animated elements
type Rail interface {
	Elements() []geometry.Element
}

// Host is the environment the engine runs in
// Rail returns nil when the container is absent
type Host interface {
	Rail() Rail
	AddListener(target Target, kind EventKind, fn Listener) ListenerID
	RemoveListener(id ListenerID)
	RequestFrame(fn func())
}
