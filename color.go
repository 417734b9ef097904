package paint

import "image/color"

// RGBA represents a shape color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Shapes are drawn opaque by
// default; alpha exists for preview rendering and integrations.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// WithAlpha returns the color with its alpha component replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Palette colors offered by the editor UI.
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(1, 1, 1)
	Red     = RGB(1, 0, 0)
	Green   = RGB(0, 1, 0)
	Blue    = RGB(0, 0, 1)
	Yellow  = RGB(1, 1, 0)
	Cyan    = RGB(0, 1, 1)
	Magenta = RGB(1, 0, 1)
	Orange  = RGB(1, 0.5, 0)
	Purple  = RGB(0.5, 0, 1)
	Pink    = RGB(1, 0.75, 0.8)
	Gray    = RGB(0.5, 0.5, 0.5)
)

// Palette returns the named standard colors in UI order.
func Palette() map[string]RGBA {
	return map[string]RGBA{
		"Red":     Red,
		"Green":   Green,
		"Blue":    Blue,
		"Yellow":  Yellow,
		"Cyan":    Cyan,
		"Magenta": Magenta,
		"White":   White,
		"Black":   Black,
	}
}
