package rail

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/marquee/constants"
)

// Cell is one label laid out on the rail band
// It implements geometry.Element with columns as pixels
type Cell struct {
	Label    string
	width    float64
	left     float64
	x        float64
	xPercent float64
}

// NewCell measures label by display width and pads it on both sides
func NewCell(label string) *Cell {
	return &Cell{
		Label: label,
		width: float64(runewidth.StringWidth(label) + 2*constants.RailItemPadding),
	}
}

func (c *Cell) Width() float64      { return c.width }
func (c *Cell) OffsetLeft() float64 { return c.left }
func (c *Cell) ScaleX() float64     { return 1 }
func (c *Cell) TranslateX() float64 { return c.x }
func (c *Cell) XPercent() float64   { return c.xPercent }

func (c *Cell) SetTransform(x, xPercent float64) {
	c.x = x
	c.xPercent = xPercent
}

// VisualLeft returns the rendered left column, rounded to the grid
func (c *Cell) VisualLeft() int {
	return int(math.Round(c.left + c.x + c.xPercent/100*c.width))
}

// Contains reports whether column col falls inside the rendered cell
func (c *Cell) Contains(col int) bool {
	left := c.VisualLeft()
	return col >= left && col < left+int(c.width)
}

// layout packs cells left to right from column 0
func layout(cells []*Cell) {
	left := 0.0
	for _, c := range cells {
		c.left = left
		left += c.width
	}
}
