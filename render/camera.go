package render

import (
	"math"

	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/vmath"
)

// Camera maps world coordinates to terminal cells, centered on a world point
type Camera struct {
	// Center is the world point shown at the middle of the screen
	Center vmath.Vec2
	Zoom   float64

	ScreenW, ScreenH int
}

// NewCamera returns a camera at default zoom
func NewCamera(center vmath.Vec2, screenW, screenH int) *Camera {
	return &Camera{
		Center:  center,
		Zoom:    parameter.ZoomDefault,
		ScreenW: screenW,
		ScreenH: screenH,
	}
}

// Resize updates the screen dimensions in cells
func (c *Camera) Resize(w, h int) {
	c.ScreenW, c.ScreenH = w, h
}

// ZoomIn increases zoom by one step, clamped
func (c *Camera) ZoomIn() float64 {
	return c.SetZoom(c.Zoom + parameter.ZoomStep)
}

// ZoomOut decreases zoom by one step, clamped
func (c *Camera) ZoomOut() float64 {
	return c.SetZoom(c.Zoom - parameter.ZoomStep)
}

// SetZoom stores z snapped to the step grid and clamped to the zoom range
func (c *Camera) SetZoom(z float64) float64 {
	if math.IsNaN(z) {
		z = parameter.ZoomDefault
	}
	z = math.Round(z/parameter.ZoomStep) * parameter.ZoomStep
	c.Zoom = math.Max(parameter.ZoomMin, math.Min(parameter.ZoomMax, z))
	return c.Zoom
}

func (c *Camera) cellSize() (w, h float64) {
	return parameter.CellWorldWidth / c.Zoom, parameter.CellWorldHeight / c.Zoom
}

// ToScreen converts a world point to a cell column and row
func (c *Camera) ToScreen(p vmath.Vec2) (x, y int) {
	cw, ch := c.cellSize()
	fx := (p.X-c.Center.X)/cw + float64(c.ScreenW)/2
	fy := (p.Y-c.Center.Y)/ch + float64(c.ScreenH)/2
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// ToWorld converts a cell to the world point at its center
func (c *Camera) ToWorld(x, y int) vmath.Vec2 {
	cw, ch := c.cellSize()
	return vmath.V(
		(float64(x)+0.5-float64(c.ScreenW)/2)*cw+c.Center.X,
		(float64(y)+0.5-float64(c.ScreenH)/2)*ch+c.Center.Y,
	)
}

// Visible reports whether a cell lies on screen
func (c *Camera) Visible(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.ScreenW && y < c.ScreenH
}

// CellRadius returns how many cells a world radius spans horizontally and vertically
func (c *Camera) CellRadius(r float64) (rx, ry int) {
	cw, ch := c.cellSize()
	return int(math.Round(r / cw)), int(math.Round(r / ch))
}
