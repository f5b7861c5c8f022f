package linkfall

import (
	"fmt"

	"github.com/linkfall-game/linkfall/internal/core"
	"github.com/linkfall-game/linkfall/internal/games/linkfall/engine"
)

// Each field cell is two screen columns wide so blocks look square.
const cellW = 2

const hudHeight = 2

// cellColors maps engine colors to screen colors.
var cellColors = map[engine.Color]core.Color{
	engine.ColorBlue:   core.ColorBlue,
	engine.ColorYellow: core.ColorYellow,
	engine.ColorGreen:  core.ColorGreen,
	engine.ColorPurple: core.ColorMagenta,
	engine.ColorRed:    core.ColorRed,
	engine.ColorFloor:  core.ColorGray,
}

// screenColor returns the screen color for an engine color.
func screenColor(c engine.Color) core.Color {
	if sc, ok := cellColors[c]; ok {
		return sc
	}
	return core.ColorDefault
}

// boardRect returns the outline of the board, the floor row drawn as its bottom edge.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	p := g.state.Params
	w := p.Width*cellW + 2
	h := p.Height + 2
	r := core.CenteredRect(dst.Width(), dst.Height()-hudHeight, w, h)
	r.Y += hudHeight
	return r
}

// fits reports whether the board and HUD fit on the screen.
func (g *Game) fits(dst *core.Screen) bool {
	p := g.state.Params
	return dst.Width() >= p.Width*cellW+2 && dst.Height() >= p.Height+2+hudHeight
}

// Render draws the game to the screen.
// A screen too small for the board pauses the simulation until it grows.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.state == nil {
		g.renderOverlay(dst, "Cannot start game", g.errLine(), "Press R to retry")
		return
	}

	g.renderHUD(dst)

	g.tooSmall = !g.fits(dst)
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	board := g.boardRect(dst)
	dst.DrawBox(board, core.ColorGray)

	g.renderField(dst, board)
	g.renderTargets(dst, board)
	if !g.state.Status.Terminal() {
		g.renderPiece(dst, board)
	}
	g.renderLegend(dst, board)

	switch {
	case g.state.Status == engine.StatusWon:
		g.renderOverlay(dst, "All targets linked!", fmt.Sprintf("Rows cleared: %d", g.lines), "Press R to play again")
	case g.state.Status == engine.StatusLost:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Targets left: %d", len(g.state.Targets)), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) errLine() string {
	if g.err == nil {
		return ""
	}
	return g.err.Error()
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	p := g.state.Piece
	hud := fmt.Sprintf(" %s | Targets: %d | Rows: %d | Piece: %s %s",
		g.Title(), len(g.state.Targets), g.lines, p.Kind, p.Color)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	for x := range dst.Width() {
		dst.SetCell(x, 1, '─', core.ColorDim)
	}
}

// setCell draws a two-column field cell at board coordinates.
func setCell(dst *core.Screen, board core.Rect, c engine.Coord, glyph string, color core.Color) {
	x := board.X + 1 + c.X*cellW
	y := board.Y + 1 + c.Y
	dst.DrawTextColored(x, y, glyph, color)
}

// highlighted collects the cells of regions grown from each unsolved target.
// The first endpoint's region is always shown, the second only while the
// pair is still apart.
func (g *Game) highlighted() map[engine.Coord]bool {
	cells := make(map[engine.Coord]bool)
	for _, conn := range g.state.Connections {
		for _, c := range conn.RegionA {
			cells[c] = true
		}
		if !conn.Connected {
			for _, c := range conn.RegionB {
				cells[c] = true
			}
		}
	}
	return cells
}

// renderField draws locked blocks.
func (g *Game) renderField(dst *core.Screen, board core.Rect) {
	f := g.state.Field
	lit := g.highlighted()
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := engine.C(x, y)
			color := f.Get(c)
			switch {
			case color == engine.ColorNone:
				setCell(dst, board, c, " ·", core.ColorDim)
			case lit[c]:
				setCell(dst, board, c, "▓▓", screenColor(color))
			default:
				setCell(dst, board, c, "██", screenColor(color))
			}
		}
	}
}

// renderTargets marks target endpoints. Covered endpoints keep the block
// color and are drawn in brackets.
func (g *Game) renderTargets(dst *core.Screen, board core.Rect) {
	f := g.state.Field
	for _, t := range g.state.Targets {
		for _, c := range []engine.Coord{t.A, t.B} {
			if f.Get(c) == engine.ColorNone {
				setCell(dst, board, c, "<>", screenColor(t.Color))
			} else {
				setCell(dst, board, c, "[]", screenColor(f.Get(c)))
			}
		}
	}
}

// renderPiece draws the falling piece.
func (g *Game) renderPiece(dst *core.Screen, board core.Rect) {
	f := g.state.Field
	p := g.state.Piece
	for _, c := range p.Cells() {
		if !f.InPlayfield(c) {
			continue
		}
		setCell(dst, board, c, "██", screenColor(p.Color))
	}
}

// renderLegend lists the targets beside the board when there is room.
func (g *Game) renderLegend(dst *core.Screen, board core.Rect) {
	x := board.Right() + 2
	const legendW = 26
	if x+legendW > dst.Width() {
		return
	}
	dst.DrawTextColored(x, board.Y+1, "Targets", core.ColorBrightWhite)
	for i, conn := range g.state.Connections {
		status := "open"
		if conn.Connected {
			status = "linked"
		}
		t := conn.Target
		line := fmt.Sprintf("%-6s %v-%v %s", t.Color, t.A, t.B, status)
		dst.DrawTextColored(x, board.Y+2+i, line, screenColor(t.Color))
	}
}

// renderOverlay draws a centered box with one line of text per argument.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = core.Max(maxLen, len([]rune(l)))
	}
	box := core.CenteredRect(dst.Width(), dst.Height(), maxLen+4, len(lines)+4)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, l := range lines {
		dst.DrawTextCentered(box.Y+2+i, l, core.ColorBrightWhite)
	}
}
