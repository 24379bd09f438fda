package rail

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/marquee/engine"
	"github.com/lixenwraith/marquee/marquee"
	"github.com/lixenwraith/marquee/timeline"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

type recorded struct {
	target marquee.Target
	ev     marquee.Event
}

// recordAll attaches a listener for every target and kind
func recordAll(h *Host) *[]recorded {
	var got []recorded
	kinds := []marquee.EventKind{
		marquee.EventMouseEnter, marquee.EventMouseLeave, marquee.EventPointerDown,
		marquee.EventPointerMove, marquee.EventPointerUp, marquee.EventWheel, marquee.EventResize,
	}
	for _, target := range []marquee.Target{marquee.TargetRail, marquee.TargetWindow} {
		for _, k := range kinds {
			target := target
			h.AddListener(target, k, func(ev marquee.Event) {
				got = append(got, recorded{target: target, ev: ev})
			})
		}
	}
	return &got
}

func kindsOf(rs []recorded) []marquee.EventKind {
	out := make([]marquee.EventKind, len(rs))
	for i, r := range rs {
		out[i] = r.ev.Kind
	}
	return out
}

func sameKinds(a, b []marquee.EventKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCellMeasurement(t *testing.T) {
	s := newScreen(t, 60, 10)
	h := NewHost(s, []string{"Botox", "肉毒", "PRP"}, Options{Row: -1})

	cells := h.Cells()
	wantWidths := []float64{9, 8, 7}
	wantLefts := []float64{0, 9, 17}
	for i, c := range cells {
		if c.Width() != wantWidths[i] {
			t.Errorf("cell %d width = %v, want %v", i, c.Width(), wantWidths[i])
		}
		if c.OffsetLeft() != wantLefts[i] {
			t.Errorf("cell %d left = %v, want %v", i, c.OffsetLeft(), wantLefts[i])
		}
		if c.ScaleX() != 1 {
			t.Errorf("cell %d scale = %v", i, c.ScaleX())
		}
	}

	cells[1].SetTransform(0, -50)
	if got := cells[1].VisualLeft(); got != 5 {
		t.Errorf("VisualLeft = %d, want 5", got)
	}
	if !cells[1].Contains(5) || cells[1].Contains(13) {
		t.Error("Contains does not match the rendered extent")
	}
}

func TestRailAbsentOnShortScreen(t *testing.T) {
	s := newScreen(t, 40, 3)
	h := NewHost(s, []string{"Botox"}, Options{Row: -1})
	if h.Rail() != nil {
		t.Fatal("rail should be absent on a 3-row screen")
	}

	got := recordAll(h)
	s.SetSize(40, 10)
	h.Dispatch(tcell.NewEventResize(40, 10))

	if h.Rail() == nil {
		t.Fatal("rail should exist after growing the screen")
	}
	if len(*got) != 1 || (*got)[0].ev.Kind != marquee.EventResize || (*got)[0].target != marquee.TargetWindow {
		t.Fatalf("resize events = %+v", *got)
	}
	if h.Top() != 3 {
		t.Errorf("centered top = %d, want 3", h.Top())
	}
}

func TestRowOption(t *testing.T) {
	s := newScreen(t, 40, 10)
	if top := NewHost(s, nil, Options{Row: 1}).Top(); top != 1 {
		t.Errorf("top = %d, want 1", top)
	}
	// Out-of-range rows fall back to centering
	if top := NewHost(s, nil, Options{Row: 9}).Top(); top != 3 {
		t.Errorf("top = %d, want 3", top)
	}
}

func TestMouseTranslation(t *testing.T) {
	s := newScreen(t, 60, 10)
	h := NewHost(s, []string{"Botox", "Fillers"}, Options{Row: -1})
	got := recordAll(h)
	row := h.Top() + 1

	h.Dispatch(tcell.NewEventMouse(5, row, tcell.Button1, tcell.ModNone))
	want := []marquee.EventKind{marquee.EventMouseEnter, marquee.EventPointerDown, marquee.EventPointerMove}
	if !sameKinds(kindsOf(*got), want) {
		t.Fatalf("press on rail = %v, want %v", kindsOf(*got), want)
	}
	if !h.Hovered() {
		t.Error("host should be hovered")
	}
	if (*got)[1].target != marquee.TargetRail || (*got)[1].ev.X != 5 {
		t.Errorf("pointerdown = %+v", (*got)[1])
	}

	*got = nil
	h.Dispatch(tcell.NewEventMouse(3, row, tcell.Button1, tcell.ModNone))
	if !sameKinds(kindsOf(*got), []marquee.EventKind{marquee.EventPointerMove}) {
		t.Fatalf("drag = %v", kindsOf(*got))
	}
	if (*got)[0].target != marquee.TargetWindow || (*got)[0].ev.X != 3 {
		t.Errorf("move = %+v", (*got)[0])
	}

	*got = nil
	h.Dispatch(tcell.NewEventMouse(3, row, tcell.ButtonNone, tcell.ModNone))
	if !sameKinds(kindsOf(*got), []marquee.EventKind{marquee.EventPointerUp, marquee.EventPointerMove}) {
		t.Fatalf("release = %v", kindsOf(*got))
	}

	*got = nil
	h.Dispatch(tcell.NewEventMouse(3, 0, tcell.ButtonNone, tcell.ModNone))
	if !sameKinds(kindsOf(*got), []marquee.EventKind{marquee.EventMouseLeave, marquee.EventPointerMove}) {
		t.Fatalf("leave = %v", kindsOf(*got))
	}
	if h.Hovered() {
		t.Error("host should not be hovered")
	}
}

func TestPressOffRailReleasesOnWindow(t *testing.T) {
	s := newScreen(t, 60, 10)
	h := NewHost(s, []string{"Botox"}, Options{Row: -1})
	got := recordAll(h)

	h.Dispatch(tcell.NewEventMouse(1, 0, tcell.Button1, tcell.ModNone))
	h.Dispatch(tcell.NewEventMouse(1, 0, tcell.ButtonNone, tcell.ModNone))

	want := []marquee.EventKind{marquee.EventPointerMove, marquee.EventPointerUp, marquee.EventPointerMove}
	if !sameKinds(kindsOf(*got), want) {
		t.Errorf("off-rail press = %v, want %v", kindsOf(*got), want)
	}
}

func TestWheelTranslation(t *testing.T) {
	s := newScreen(t, 60, 10)
	h := NewHost(s, []string{"Botox"}, Options{Row: -1})
	got := recordAll(h)

	h.Dispatch(tcell.NewEventMouse(2, 0, tcell.WheelUp, tcell.ModNone))
	h.Dispatch(tcell.NewEventMouse(2, 0, tcell.WheelDown, tcell.ModNone))

	if !sameKinds(kindsOf(*got), []marquee.EventKind{marquee.EventWheel, marquee.EventWheel}) {
		t.Fatalf("wheel = %v", kindsOf(*got))
	}
	if (*got)[0].ev.DeltaY != -1 || (*got)[1].ev.DeltaY != 1 {
		t.Errorf("wheel deltas = %v, %v", (*got)[0].ev.DeltaY, (*got)[1].ev.DeltaY)
	}
}

func TestKeysNotConsumed(t *testing.T) {
	s := newScreen(t, 60, 10)
	h := NewHost(s, nil, Options{})
	if h.Dispatch(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)) {
		t.Error("key events belong to the caller")
	}
}

func TestListenersAndFrames(t *testing.T) {
	s := newScreen(t, 60, 10)
	h := NewHost(s, nil, Options{})

	calls := 0
	id := h.AddListener(marquee.TargetWindow, marquee.EventResize, func(marquee.Event) { calls++ })
	h.Dispatch(tcell.NewEventResize(60, 10))
	h.RemoveListener(id)
	h.Dispatch(tcell.NewEventResize(60, 10))
	if calls != 1 || h.ListenerCount() != 0 {
		t.Errorf("calls = %d, listeners = %d", calls, h.ListenerCount())
	}

	var order []int
	h.RequestFrame(func() {
		order = append(order, 1)
		h.RequestFrame(func() { order = append(order, 2) })
	})
	h.RunFrames()
	if len(order) != 1 {
		t.Fatalf("nested frame ran early: %v", order)
	}
	h.RunFrames()
	if len(order) != 2 || order[1] != 2 {
		t.Errorf("frames = %v", order)
	}
}

func contentAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestDrawClipsAndStatus(t *testing.T) {
	s := newScreen(t, 20, 10)
	h := NewHost(s, []string{"Botox", "Fillers", "Peels"}, Options{Row: -1})
	labelRow := h.Top() + 1

	h.Cells()[0].SetTransform(-4, 0)
	h.SetStatus("ready")
	h.Draw()

	// "Botox" starts at -4+2 = -2, so "tox" is visible from column 0
	if r := contentAt(s, 0, labelRow); r != 't' {
		t.Errorf("clipped label starts with %q, want 't'", r)
	}
	// Second cell is laid out from column 9 with two columns of padding
	if r := contentAt(s, 11, labelRow); r != 'F' {
		t.Errorf("second label at 11 = %q, want 'F'", r)
	}
	if r := contentAt(s, 0, 9); r != 'r' {
		t.Errorf("status line starts with %q, want 'r'", r)
	}
}

func TestMarqueeOnHost(t *testing.T) {
	s := newScreen(t, 60, 10)
	h := NewHost(s, []string{"Botox", "Fillers", "Peels", "Lasers"}, Options{Row: -1})
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))

	m := marquee.New(h, marquee.Options{
		Timeline: timeline.Config{PixelsPerSecond: 10, SnapIncrement: 1},
		Clock:    clock,
	})
	m.Start()
	if !m.Active() {
		t.Fatal("marquee should start on the host")
	}
	if h.ListenerCount() != 0 {
		t.Fatal("listeners attached before the next frame")
	}
	h.RunFrames()
	if h.ListenerCount() != 7 {
		t.Fatalf("listeners = %d, want 7", h.ListenerCount())
	}

	m.Frame(0.5)
	if got := h.Cells()[0].VisualLeft(); got != -5 {
		t.Errorf("first cell left after 0.5s = %d, want -5", got)
	}
	if got := h.Cells()[1].VisualLeft(); got != 4 {
		t.Errorf("second cell left after 0.5s = %d, want 4", got)
	}

	h.Dispatch(tcell.NewEventMouse(10, h.Top()+1, tcell.ButtonNone, tcell.ModNone))
	if !m.Controller().Hovered() {
		t.Error("hover did not reach the controller")
	}

	m.Destroy()
	if h.ListenerCount() != 0 {
		t.Errorf("listeners after destroy = %d", h.ListenerCount())
	}
}

func TestPalette(t *testing.T) {
	red, _ := colorful.Hex("#ff0000")
	if got := Nearest256(red); got != tcell.PaletteColor(196) {
		t.Errorf("Nearest256(red) = %v, want palette 196", got)
	}
	if ParseColorMode("256") != Color256 || ParseColorMode("auto") != ColorTrue {
		t.Error("ParseColorMode mapping")
	}

	p := NewPalette(ColorTrue)
	if p.Hover == p.Text || p.Current == p.Text {
		t.Error("highlight styles should differ from the text style")
	}
	p256 := NewPalette(Color256)
	if p256.Text == p.Text {
		t.Error("256-colour palette should use indexed colours")
	}
}
