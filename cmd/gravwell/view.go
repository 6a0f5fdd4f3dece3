package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravwell/projectile"
	"github.com/lixenwraith/gravwell/render"
	"github.com/lixenwraith/gravwell/settings"
	"github.com/lixenwraith/gravwell/vmath"
)

var flashGlyph = map[projectile.Lifecycle]rune{
	projectile.Crashed: 'x',
	projectile.Escaped: '^',
	projectile.Orbited: '*',
}

func style(c render.RGB) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(tcell.ColorBlack)
}

func (g *game) draw(now time.Time) {
	frame := render.BuildFrame(g.sim, g.preview(), g.selected)

	g.screen.Clear()

	g.drawDisk(frame.Well.Center, frame.Well.Radius, '█', style(frame.Well.Color))

	pathStyle := style(render.RGBPath)
	for _, p := range frame.Path {
		g.plot(p, '·', pathStyle)
	}
	if g.drag.Active() {
		start, end := g.drag.Points()
		g.drawLine(start, end, '-', style(render.RGBArrow.Blend(render.RGBBlack, 0.5)))
	}

	arrowStyle := style(render.RGBArrow)
	for _, sp := range frame.Projectiles {
		for _, a := range sp.Accel {
			tip := r2.Add(sp.Position, a)
			g.drawLine(sp.Position, tip, '·', arrowStyle)
			g.plot(tip, '+', arrowStyle)
		}
		if frame.View.ShowHeadTail {
			g.plot(sp.Tail, '.', style(sp.Color.Blend(render.RGBBlack, 0.5)))
			g.plot(sp.Head, 'o', style(sp.Color))
		}

		st := style(sp.Color)
		if sp.ID == g.selected {
			st = st.Reverse(true)
		}
		g.drawDisk(sp.Position, sp.Radius, '●', st)
	}

	live := g.flashes[:0]
	for _, f := range g.flashes {
		if now.After(f.until) {
			continue
		}
		live = append(live, f)
		g.plot(f.pos, flashGlyph[f.state], style(render.StateColor(render.RGBWhite, f.state)))
	}
	g.flashes = live

	g.drawHUD(frame, now)
	g.screen.Show()
}

func (g *game) drawHUD(frame render.Frame, now time.Time) {
	w, h := g.screen.Size()
	hud := style(render.RGBHUD)

	s := frame.Stats
	line := fmt.Sprintf("Objects %d  Oldest %.1fs  Score %d  Time %s  %s  mutual:%v  drag:%s  zoom %.1f",
		s.Count, s.OldestFlight, s.Score, s.PlayTime.Truncate(time.Second), s.Mode, s.Mutual, g.method.Name(), g.cam.Zoom)
	g.drawText(0, 0, line, hud)

	if frame.Paused {
		msg := "PAUSED"
		g.drawText((w-len(msg))/2, 1, msg, style(render.RGBPaused))
	}

	if info := frame.Selected; info != nil {
		line := fmt.Sprintf("#%d  pos %.0f,%.0f  dist %.1f  speed %.1f  age %.1fs  mass %.0f  friction %.0f%%  orbit %.0f%%",
			info.ID, info.Position.X, info.Position.Y, info.Distance, info.Speed, info.Age, info.Mass, info.Friction, info.Swept*100)
		g.drawText(0, h-1, line, hud)
	}

	if g.notice != "" && now.Before(g.noticeUntil) {
		g.drawText(w-len(g.notice)-1, h-1, g.notice, style(render.RGBPaused))
	}

	if g.menu {
		g.drawMenu()
	}
}

func (g *game) drawMenu() {
	st := g.sim.Settings()
	hud := style(render.RGBHUD)
	g.drawText(2, 2, "Settings  (j/k select, h/> adjust, e close)", hud)
	for i, f := range settings.Fields() {
		rng := f.Range()
		line := fmt.Sprintf("%-20s %6.0f   [%g..%g]", f.Label(), st.Get(f), rng.Min, rng.Max)
		row := hud
		if i == g.menuField {
			row = row.Reverse(true)
		}
		g.drawText(2, 4+i, line, row)
	}
}

func (g *game) drawText(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

func (g *game) plot(p vmath.Vec2, r rune, st tcell.Style) {
	x, y := g.cam.ToScreen(p)
	if g.cam.Visible(x, y) {
		g.screen.SetContent(x, y, r, nil, st)
	}
}

// drawDisk fills the cells covered by a circle, at least one cell
func (g *game) drawDisk(center vmath.Vec2, radius float64, r rune, st tcell.Style) {
	cx, cy := g.cam.ToScreen(center)
	rx, ry := g.cam.CellRadius(radius)
	if rx == 0 || ry == 0 {
		if g.cam.Visible(cx, cy) {
			g.screen.SetContent(cx, cy, r, nil, st)
		}
		return
	}
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			fx, fy := float64(dx)/float64(rx), float64(dy)/float64(ry)
			if fx*fx+fy*fy > 1 {
				continue
			}
			if x, y := cx+dx, cy+dy; g.cam.Visible(x, y) {
				g.screen.SetContent(x, y, r, nil, st)
			}
		}
	}
}

// drawLine rasterizes a world segment with Bresenham stepping in cell space
func (g *game) drawLine(a, b vmath.Vec2, r rune, st tcell.Style) {
	x0, y0 := g.cam.ToScreen(a)
	x1, y1 := g.cam.ToScreen(b)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		if g.cam.Visible(x0, y0) {
			g.screen.SetContent(x0, y0, r, nil, st)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
