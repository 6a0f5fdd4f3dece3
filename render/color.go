package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/gravwell/projectile"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack  = RGB{0, 0, 0}
	RGBWhite  = RGB{255, 255, 255}
	RGBPath   = RGB{90, 160, 255}
	RGBArrow  = RGB{120, 255, 140}
	RGBHUD    = RGB{200, 200, 210}
	RGBPaused = RGB{255, 200, 60}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Colorful converts to go-colorful space
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromColorful converts from go-colorful space, clamping out-of-gamut values
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// MassColor maps mass onto a white→red ramp between lo and hi
// Masses outside the bounds saturate at the ramp ends
func MassColor(mass, lo, hi float64) RGB {
	t := 0.0
	if hi > lo {
		t = (mass - lo) / (hi - lo)
	}
	if math.IsNaN(t) {
		t = 0
	}
	t = math.Max(0, math.Min(1, t))

	white := colorful.Color{R: 1, G: 1, B: 1}
	red := colorful.Color{R: 1, G: 0, B: 0}
	return FromColorful(white.BlendRgb(red, t))
}

// StateColor tints a base color for a projectile that just left the Active state
func StateColor(base RGB, state projectile.Lifecycle) RGB {
	switch state {
	case projectile.Crashed:
		return base.Blend(RGB{255, 80, 40}, 0.7)
	case projectile.Escaped:
		return base.Blend(RGB{120, 120, 140}, 0.7)
	case projectile.Orbited:
		return base.Blend(RGB{255, 215, 0}, 0.7)
	}
	return base
}
