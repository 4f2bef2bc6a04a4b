package tui

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/vovakirdan/tui-brawl/internal/core"
	"github.com/vovakirdan/tui-brawl/internal/fight"
)

// Arena screen layout, in terminal rows.
const (
	headerRows = 2 // title bar + message line
	panelRows  = 2 // one stats line per fighter
	healthBarW = 12
)

// Layout maps the arena's pixel space onto a region of the terminal.
type Layout struct {
	Width  int       // screen width in cells
	Height int       // screen height in cells
	Box    core.Rect // arena border, inclusive
	CellW  int       // pixels per cell horizontally
	CellH  int       // pixels per cell vertically
}

// NewLayout computes the arena box for a screen of the given size.
func NewLayout(width, height, cellW, cellH int) Layout {
	boxH := max(0, height-headerRows-panelRows)
	return Layout{
		Width:  width,
		Height: height,
		Box:    core.NewRect(0, headerRows, max(0, width), boxH),
		CellW:  max(1, cellW),
		CellH:  max(1, cellH),
	}
}

// Inner returns the drawable area inside the arena border.
func (l Layout) Inner() core.Rect {
	return core.NewRect(l.Box.X+1, l.Box.Y+1, max(0, l.Box.W-2), max(0, l.Box.H-2))
}

// ArenaSize returns the pixel bounds that exactly fill the inner area.
func (l Layout) ArenaSize() fight.Arena {
	in := l.Inner()
	return fight.Arena{
		Width:  float64(in.W * l.CellW),
		Height: float64(in.H * l.CellH),
	}
}

// PixelToCell maps an arena pixel to a screen cell.
func (l Layout) PixelToCell(px, py float64) (x, y int) {
	in := l.Inner()
	return in.X + int(math.Floor(px/float64(l.CellW))), in.Y + int(math.Floor(py/float64(l.CellH)))
}

// FighterRect returns the cells covered by a fighter's box, at least one
// cell in each direction, clipped to the inner area.
func (l Layout) FighterRect(s fight.FighterSnapshot) core.Rect {
	x0, y0 := l.PixelToCell(s.X, s.Y)
	in := l.Inner()
	w := max(1, int(math.Ceil((s.X+s.Width)/float64(l.CellW)))-(x0-in.X))
	h := max(1, int(math.Ceil((s.Y+s.Height)/float64(l.CellH)))-(y0-in.Y))

	x1 := min(x0+w, in.Right())
	y1 := min(y0+h, in.Bottom())
	x0 = max(x0, in.X)
	y0 = max(y0, in.Y)
	return core.NewRect(x0, y0, max(0, x1-x0), max(0, y1-y0))
}

// DrawFrame renders a match frame onto screen.
func DrawFrame(screen *core.Screen, l Layout, fr fight.Frame) {
	screen.Clear()

	drawHeader(screen, l, fr)
	screen.DrawBox(l.Box, core.ColorGray)

	for _, f := range fr.Fighters {
		if f.ID != 0 {
			drawFighter(screen, l, f)
		}
	}

	if fr.State == fight.StateEnded {
		drawResult(screen, l, fr)
	}

	for i, f := range fr.Fighters {
		drawPanel(screen, l.Box.Bottom()+i, l.Width, f)
	}
}

func drawHeader(screen *core.Screen, l Layout, fr fight.Frame) {
	status := strings.ToUpper(fr.State.String())
	header := fmt.Sprintf(" BRAWL  tick %d  %s  %s", fr.Tick, formatElapsed(fr.Elapsed), status)
	screen.DrawText(0, 0, header, core.ColorWhite)
	screen.DrawTextCentered(1, fr.Message, core.ColorYellow)
}

func drawFighter(screen *core.Screen, l Layout, f fight.FighterSnapshot) {
	r := l.FighterRect(f)
	if r.W == 0 || r.H == 0 {
		return
	}

	color := core.FighterColor(f.ID)
	fill := '█'
	if !f.Active {
		color = core.ColorGray
		fill = '░'
	}
	screen.FillRect(r, fill, color)
	screen.Set(r.X+r.W/2, r.Y+r.H/2, initial(f.Name), core.ColorWhite)

	// Mini health bar just above the fighter, inside the arena
	if f.Active && r.Y-1 >= l.Inner().Y {
		drawBar(screen, r.X, r.Y-1, r.W, f.HealthFraction(), false)
	}
}

func drawResult(screen *core.Screen, l Layout, fr fight.Frame) {
	lines := []string{"MATCH STOPPED"}
	if fr.Winner != 0 {
		w := fr.Fighters[fr.Winner-1]
		lines = []string{
			fmt.Sprintf("%s WINS!", strings.ToUpper(w.Name)),
			"by " + fr.Reason.String(),
		}
	}
	lines = append(lines, "r: rematch  q: quit")

	mid := l.Box.Y + l.Box.H/2 - len(lines)/2
	for i, line := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorOrange
			if fr.Winner != 0 {
				color = core.FighterColor(fr.Winner)
			}
		}
		screen.DrawTextCentered(mid+i, line, color)
	}
}

// drawPanel writes one fighter's stats line.
func drawPanel(screen *core.Screen, y, width int, f fight.FighterSnapshot) {
	if f.ID == 0 {
		return
	}

	x := 1
	name := fmt.Sprintf("%-12s", truncate(f.Name, 12))
	screen.DrawText(x, y, name, core.FighterColor(f.ID))
	x += 13

	drawBar(screen, x, y, healthBarW, f.HealthFraction(), true)
	x += healthBarW + 3

	hp := fmt.Sprintf("%3d/%-3d", f.DisplayHealth(), int(f.MaxHealth))
	screen.DrawText(x, y, hp, core.HealthColor(f.HealthFraction()))
	x += len(hp) + 2

	stats := fmt.Sprintf("STR %3d  DEF %3d  SPD %3d", f.Strength, f.Defense, f.Speed)
	if !f.Active {
		stats += "  (out)"
	}
	if x+len(stats) <= width {
		screen.DrawText(x, y, stats, core.ColorGray)
	}
}

// drawBar draws a health bar of width cells, optionally framed in brackets.
func drawBar(screen *core.Screen, x, y, width int, fraction float64, framed bool) {
	if framed {
		screen.Set(x, y, '[', core.ColorGray)
		screen.Set(x+width+1, y, ']', core.ColorGray)
		x++
	}
	filled := int(math.Round(core.ClampF(fraction, 0, 1) * float64(width)))
	color := core.HealthColor(fraction)
	for i := range width {
		if i < filled {
			screen.Set(x+i, y, '█', color)
		} else {
			screen.Set(x+i, y, '░', core.ColorGray)
		}
	}
}

func initial(name string) rune {
	for _, r := range name {
		if !unicode.IsSpace(r) {
			return unicode.ToUpper(r)
		}
	}
	return '?'
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

func formatElapsed(d time.Duration) string {
	d = d.Truncate(100 * time.Millisecond)
	m := int(d / time.Minute)
	s := (d % time.Minute).Seconds()
	return fmt.Sprintf("%02d:%04.1f", m, s)
}
