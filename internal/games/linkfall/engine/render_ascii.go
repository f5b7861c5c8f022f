package engine

import (
	"fmt"
	"strings"
)

// RenderASCII draws the state as plain text for debugging and headless runs.
//
// Format:
//   - placed blocks: uppercase color letter, empty: '.', floor: '='
//   - active piece: '#'
//   - uncovered target endpoints: lowercase color letter
func RenderASCII(s *State) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Tick: %d | Status: %s | Targets: %d | Piece: %s %s\n",
		s.Ticks, s.Status, len(s.Targets), s.Piece.Kind, s.Piece.Color))
	sb.WriteString(strings.Repeat("-", s.Field.Width) + "\n")

	endpoints := make(map[Coord]Color, 2*len(s.Targets))
	for _, t := range s.Targets {
		endpoints[t.A] = t.Color
		endpoints[t.B] = t.Color
	}

	var pieceCells [CellsPerPiece]Coord
	if !s.Status.Terminal() {
		pieceCells = s.Piece.Cells()
	}

	for y := 0; y <= s.Field.Height; y++ {
		for x := 0; x < s.Field.Width; x++ {
			c := C(x, y)
			ch := s.Field.Get(c).Char()
			if color, ok := endpoints[c]; ok && s.Field.Get(c) == ColorNone {
				ch = color.LowerChar()
			}
			if !s.Status.Terminal() && containsCoord(pieceCells[:], c) {
				ch = '#'
			}
			sb.WriteRune(ch)
		}
		sb.WriteString("\n")
	}

	for _, conn := range s.Connections {
		sb.WriteString(fmt.Sprintf("%s %v-%v connected=%v region=%d\n",
			conn.Target.Color, conn.Target.A, conn.Target.B, conn.Connected, len(conn.RegionA)))
	}
	return sb.String()
}
