// Package rail hosts a looping marquee on a tcell screen: it lays out labels
// as rail cells, turns terminal mouse and resize input into engine events and
// paints the cells where the engine positioned them
package rail

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/marquee/constants"
	"github.com/lixenwraith/marquee/geometry"
	"github.com/lixenwraith/marquee/marquee"
)

// Options configures a Host
type Options struct {
	// Row is the top row of the band; negative centers it above the status line
	Row       int
	ColorMode ColorMode
}

type binding struct {
	id     marquee.ListenerID
	target marquee.Target
	kind   marquee.EventKind
	fn     marquee.Listener
}

// Host implements marquee.Host and marquee.Rail over a tcell screen
// All methods must be called from the goroutine running the frame loop
type Host struct {
	screen  tcell.Screen
	opts    Options
	palette Palette
	cells   []*Cell

	bindings []binding
	nextID   marquee.ListenerID
	frames   []func()

	width, height int
	top           int

	hovered bool
	pressed bool
	mouseX  int
	current int
	status  string
}

// NewHost lays out labels as cells on screen
func NewHost(screen tcell.Screen, labels []string, opts Options) *Host {
	h := &Host{
		screen:  screen,
		opts:    opts,
		palette: NewPalette(opts.ColorMode),
		current: -1,
	}
	h.SetLabels(labels)
	h.measure()
	return h
}

// SetLabels replaces the rail content; the caller restarts the marquee afterwards
func (h *Host) SetLabels(labels []string) {
	h.cells = make([]*Cell, len(labels))
	for i, l := range labels {
		h.cells[i] = NewCell(l)
	}
	layout(h.cells)
}

// Rail returns nil while the screen is too short to hold the band
func (h *Host) Rail() marquee.Rail {
	if h.height < constants.RailHeight+constants.StatusBarHeight {
		return nil
	}
	return h
}

// Elements returns the cells as engine elements in layout order
func (h *Host) Elements() []geometry.Element {
	out := make([]geometry.Element, len(h.cells))
	for i, c := range h.cells {
		out[i] = c
	}
	return out
}

// Cells exposes the laid-out cells
func (h *Host) Cells() []*Cell {
	return h.cells
}

func (h *Host) AddListener(target marquee.Target, kind marquee.EventKind, fn marquee.Listener) marquee.ListenerID {
	h.nextID++
	h.bindings = append(h.bindings, binding{id: h.nextID, target: target, kind: kind, fn: fn})
	return h.nextID
}

func (h *Host) RemoveListener(id marquee.ListenerID) {
	for i, b := range h.bindings {
		if b.id == id {
			h.bindings = append(h.bindings[:i], h.bindings[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of attached listeners
func (h *Host) ListenerCount() int {
	return len(h.bindings)
}

// RequestFrame queues fn for the next RunFrames call
func (h *Host) RequestFrame(fn func()) {
	h.frames = append(h.frames, fn)
}

// RunFrames runs the callbacks queued before this call
// Callbacks queued while running wait for the following frame
func (h *Host) RunFrames() {
	pending := h.frames
	h.frames = nil
	for _, fn := range pending {
		fn()
	}
}

// Top returns the first row of the band
func (h *Host) Top() int {
	return h.top
}

// Hovered reports whether the pointer is over the band
func (h *Host) Hovered() bool {
	return h.hovered
}

// SetCurrent marks the item highlighted as the navigation target, -1 for none
func (h *Host) SetCurrent(i int) {
	h.current = i
}

// SetStatus sets the bottom status line text
func (h *Host) SetStatus(s string) {
	h.status = s
}

func (h *Host) measure() {
	h.width, h.height = h.screen.Size()
	h.top = h.opts.Row
	maxTop := h.height - constants.StatusBarHeight - constants.RailHeight
	if h.top < 0 || h.top > maxTop {
		h.top = max(maxTop/2, 0)
	}
}

func (h *Host) onRail(y int) bool {
	return y >= h.top && y < h.top+constants.RailHeight
}

func (h *Host) emit(target marquee.Target, kind marquee.EventKind, ev marquee.Event) {
	ev.Kind = kind
	var fns []marquee.Listener
	for _, b := range h.bindings {
		if b.target == target && b.kind == kind {
			fns = append(fns, b.fn)
		}
	}
	for _, fn := range fns {
		fn(ev)
	}
}

// Dispatch translates a tcell event into engine events
// Returns false for events the host does not consume, such as keys
func (h *Host) Dispatch(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.measure()
		w, ht := ev.Size()
		h.emit(marquee.TargetWindow, marquee.EventResize, marquee.Event{X: float64(w), Y: float64(ht)})
		return true

	case *tcell.EventMouse:
		h.dispatchMouse(ev)
		return true
	}
	return false
}

func (h *Host) dispatchMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	pos := marquee.Event{X: float64(x), Y: float64(y)}
	h.mouseX = x

	inside := h.onRail(y)
	if inside && !h.hovered {
		h.hovered = true
		h.emit(marquee.TargetRail, marquee.EventMouseEnter, pos)
	} else if !inside && h.hovered {
		h.hovered = false
		h.emit(marquee.TargetRail, marquee.EventMouseLeave, pos)
	}

	// Wheel reports arrive as button bits, one event per notch
	switch {
	case buttons&tcell.WheelUp != 0:
		pos.DeltaY = -1
		h.emit(marquee.TargetWindow, marquee.EventWheel, pos)
		return
	case buttons&tcell.WheelDown != 0:
		pos.DeltaY = 1
		h.emit(marquee.TargetWindow, marquee.EventWheel, pos)
		return
	}

	down := buttons&tcell.Button1 != 0
	switch {
	case down && !h.pressed:
		h.pressed = true
		if inside {
			h.emit(marquee.TargetRail, marquee.EventPointerDown, pos)
		}
	case !down && h.pressed:
		h.pressed = false
		h.emit(marquee.TargetWindow, marquee.EventPointerUp, pos)
	}

	h.emit(marquee.TargetWindow, marquee.EventPointerMove, pos)
}

// Draw paints the band, every visible cell and the status line
func (h *Host) Draw() {
	for row := h.top; row < h.top+constants.RailHeight && row < h.height; row++ {
		for col := 0; col < h.width; col++ {
			h.screen.SetContent(col, row, ' ', nil, h.palette.Band)
		}
	}

	labelRow := h.top + constants.RailHeight/2
	for i, c := range h.cells {
		left := c.VisualLeft()
		if left >= h.width || left+int(c.width) <= 0 {
			continue
		}
		style := h.palette.Text
		switch {
		case i == h.current:
			style = h.palette.Current
		case h.hovered && c.Contains(h.mouseX):
			style = h.palette.Hover
		}
		h.drawText(left+constants.RailItemPadding, labelRow, c.Label, style)
	}

	statusRow := h.height - constants.StatusBarHeight
	if statusRow >= 0 && statusRow != labelRow {
		for col := 0; col < h.width; col++ {
			h.screen.SetContent(col, statusRow, ' ', nil, tcell.StyleDefault)
		}
		h.drawText(0, statusRow, h.status, h.palette.Status)
	}
}

// drawText writes s from column x, clipping at both screen edges
func (h *Host) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= h.width {
			return
		}
		if x >= 0 && x+w <= h.width {
			h.screen.SetContent(x, y, r, nil, style)
		}
		x += w
	}
}
