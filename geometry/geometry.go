// Package geometry samples the laid-out state of rail elements
package geometry

import (
	"math"

	"github.com/lixenwraith/marquee/constants"
)

// Element is one rendered item of the rail as seen by the engine
// Width, OffsetLeft and ScaleX describe static layout; TranslateX and XPercent
// are the transform the engine animates
type Element interface {
	Width() float64
	OffsetLeft() float64
	ScaleX() float64
	TranslateX() float64
	XPercent() float64
	SetTransform(x, xPercent float64)
}

// Item is the sampled geometry of one element
type Item struct {
	Index      int
	Width      float64
	OffsetLeft float64
	ScaleX     float64
	XPercent   float64 // horizontal offset as a percentage of Width
}

// Offset returns the item's transform offset in pixels
func (it Item) Offset() float64 {
	return it.XPercent / 100 * it.Width
}

// Snap quantizes a percentage value
type Snap func(float64) float64

// NewSnap rounds to the nearest multiple of increment; increment <= 0 returns identity
func NewSnap(increment float64) Snap {
	if increment <= 0 || math.IsNaN(increment) || math.IsInf(increment, 0) {
		return func(v float64) float64 { return v }
	}
	return func(v float64) float64 {
		return math.Round(v/increment) * increment
	}
}

// MinWidth is the floor applied to degenerate widths for a snap increment
func MinWidth(increment float64) float64 {
	if increment > 0 && !math.IsInf(increment, 0) {
		return increment
	}
	return constants.MinItemWidth
}

// Sample reads every element's geometry and then zeroes its pixel transform
// All reads happen before any write so the first element's reset cannot shift the others
// Returns nil for an empty collection
func Sample(elements []Element, increment float64) []Item {
	if len(elements) == 0 {
		return nil
	}

	snap := NewSnap(increment)
	floor := MinWidth(increment)
	items := make([]Item, len(elements))

	for i, el := range elements {
		w := sanitize(el.Width())
		if w < floor {
			w = floor
		}
		scale := el.ScaleX()
		if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
			scale = 1
		}

		items[i] = Item{
			Index:      i,
			Width:      w,
			OffsetLeft: sanitize(el.OffsetLeft()),
			ScaleX:     scale,
			XPercent:   snap(sanitize(el.TranslateX())/w*100 + sanitize(el.XPercent())),
		}
	}

	for i, el := range elements {
		el.SetTransform(0, items[i].XPercent)
	}

	return items
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
