// Package palette derives the editor's UI colors from a Chroma style, so a
// single theme name drives the text area, status bar, prompts and menus.
// Chroma is used only as a color source; text is never tokenized.
package palette

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// Palette holds UI chrome colors derived deterministically from a theme.
// The grayscale ramp is a linear interpolation from bg to fg; the accent is
// the most saturated token color; error comes from the Error token.
type Palette struct {
	Bg     string // text area background
	Fg     string // text
	Border string // 10% bg→fg: dividers, scrollbar track
	Bar    string // 7% bg→fg: status bar background
	Dim    string // 25% bg→fg: hints
	Muted  string // 45% bg→fg: status text, scrollbar thumb
	Accent string // cursor, selection, prompt label
	Error  string
}

// Known reports whether Chroma ships a style with this name.
func Known(theme string) bool {
	_, ok := styles.Registry[theme]
	return ok
}

// FromTheme derives a palette from a Chroma style name. Unknown names get
// the default palette.
func FromTheme(theme string) Palette {
	if !Known(theme) {
		return Default()
	}
	sty := styles.Get(theme)
	entry := sty.Get(chroma.Background)
	bg := "#000000"
	fg := "#c8c8c8"
	if entry.Background.IsSet() {
		bg = entry.Background.String()
	}
	if entry.Colour.IsSet() {
		fg = entry.Colour.String()
	}

	return Palette{
		Bg:     bg,
		Fg:     fg,
		Border: lerpHex(bg, fg, 0.10),
		Bar:    lerpHex(bg, fg, 0.07),
		Dim:    lerpHex(bg, fg, 0.25),
		Muted:  lerpHex(bg, fg, 0.45),
		Accent: pickAccent(sty, fg),
		Error:  pickError(sty, bg, fg),
	}
}

// Default is used when no theme is configured or the theme is unknown.
func Default() Palette {
	return Palette{
		Bg: "#000000", Fg: "#c8c8c8",
		Border: "#141414", Bar: "#0e0e0e",
		Dim: "#323232", Muted: "#5a5a5a",
		Accent: "#00dfff", Error: "#932e2e",
	}
}

// pickAccent returns the most saturated foreground color across all tokens.
// Ties go to the lowest hex string so map order never changes the result.
func pickAccent(sty *chroma.Style, fallback string) string {
	best := fallback
	bestSat := 0.0
	for tt := range chroma.StandardTypes {
		e := sty.Get(tt)
		if !e.Colour.IsSet() {
			continue
		}
		hex := e.Colour.String()
		sat := saturation(hex)
		if sat > bestSat || (sat > 0 && sat == bestSat && hex < best) {
			bestSat = sat
			best = hex
		}
	}
	return best
}

// pickError lerps the Error token color 45% from bg so it reads on the
// theme background without glaring.
func pickError(sty *chroma.Style, bg, fg string) string {
	e := sty.Get(chroma.Error)
	if !e.Colour.IsSet() {
		return lerpHex(bg, fg, 0.45)
	}
	return lerpHex(bg, e.Colour.String(), 0.45)
}

func saturation(hex string) float64 {
	r, g, b := hexToRGB(hex)
	mx := max(r, g, b)
	mn := min(r, g, b)
	if mx == 0 {
		return 0
	}
	return (mx - mn) / mx
}

// lerpHex linearly interpolates between two hex colors at fraction t.
func lerpHex(a, b string, t float64) string {
	ar, ag, ab := hexToRGB(a)
	br, bg, bb := hexToRGB(b)
	return fmt.Sprintf("#%02x%02x%02x",
		clampByte(ar+(br-ar)*t),
		clampByte(ag+(bg-ag)*t),
		clampByte(ab+(bb-ab)*t),
	)
}

func hexToRGB(hex string) (r, g, b float64) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	return float64(hexByte(hex[1], hex[2])),
		float64(hexByte(hex[3], hex[4])),
		float64(hexByte(hex[5], hex[6]))
}

func hexByte(hi, lo byte) int {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}

func clampByte(v float64) int {
	return int(min(max(v, 0), 255) + 0.5)
}
