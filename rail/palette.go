package rail

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/marquee/constants"
)

// ColorMode selects how RGB colours reach the terminal
type ColorMode uint8

const (
	ColorTrue ColorMode = iota
	Color256
)

// ParseColorMode maps a config value to a mode; auto and unknown values use truecolor
// and leave downsampling to tcell
func ParseColorMode(s string) ColorMode {
	if s == "256" {
		return Color256
	}
	return ColorTrue
}

// Palette holds the resolved rail styles
type Palette struct {
	Band    tcell.Style
	Text    tcell.Style
	Hover   tcell.Style
	Current tcell.Style
	Status  tcell.Style
}

// NewPalette resolves the rail colours for mode
// Hover is the text colour blended toward the hover accent in Lab space
func NewPalette(mode ColorMode) Palette {
	band := mustHex(constants.ColorRailBand)
	text := mustHex(constants.ColorRailText)
	hover := text.BlendLab(mustHex(constants.ColorRailHover), constants.HighlightBlend).Clamped()
	current := mustHex(constants.ColorRailCurrent)
	status := mustHex(constants.ColorStatusText)

	conv := func(c colorful.Color) tcell.Color {
		if mode == Color256 {
			return Nearest256(c)
		}
		return toTcell(c)
	}

	base := tcell.StyleDefault.Background(conv(band))
	return Palette{
		Band:    base,
		Text:    base.Foreground(conv(text)),
		Hover:   base.Foreground(conv(hover)).Bold(true),
		Current: base.Foreground(conv(current)).Bold(true),
		Status:  tcell.StyleDefault.Foreground(conv(status)),
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("rail: invalid colour constant " + s)
	}
	return c
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Nearest256 returns the xterm palette entry perceptually closest to c
// The 16 system colours are skipped since terminals redefine them
func Nearest256(c colorful.Color) tcell.Color {
	best := tcell.PaletteColor(16)
	bestDist := -1.0
	for i := 16; i < 256; i++ {
		pc := tcell.PaletteColor(i)
		r, g, b := pc.RGB()
		cand := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		if d := c.DistanceLab(cand); bestDist < 0 || d < bestDist {
			best, bestDist = pc, d
		}
	}
	return best
}
