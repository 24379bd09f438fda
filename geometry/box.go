package geometry

// Box is a plain in-memory Element with fixed layout
type Box struct {
	W, Left, Scale float64
	X, XPct        float64
}

// NewRow lays out boxes left to right starting at origin with no gaps
func NewRow(origin float64, widths ...float64) []*Box {
	boxes := make([]*Box, len(widths))
	left := origin
	for i, w := range widths {
		boxes[i] = &Box{W: w, Left: left, Scale: 1}
		left += w
	}
	return boxes
}

// Elements adapts boxes to the Element interface
func Elements(boxes []*Box) []Element {
	out := make([]Element, len(boxes))
	for i, b := range boxes {
		out[i] = b
	}
	return out
}

func (b *Box) Width() float64      { return b.W }
func (b *Box) OffsetLeft() float64 { return b.Left }
func (b *Box) ScaleX() float64     { return b.Scale }
func (b *Box) TranslateX() float64 { return b.X }
func (b *Box) XPercent() float64   { return b.XPct }

// SetTransform stores the engine-applied transform
func (b *Box) SetTransform(x, xPercent float64) {
	b.X = x
	b.XPct = xPercent
}

// VisualLeft returns the rendered left edge in pixels
func (b *Box) VisualLeft() float64 {
	return b.Left + b.X + b.XPct/100*b.W
}
