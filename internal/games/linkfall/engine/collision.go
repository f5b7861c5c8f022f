package engine

// Collides reports whether any cell of the piece is blocked.
// Cells outside the field, above row 0 included, count as blocked.
func Collides(p Piece, f *Field) bool {
	for _, c := range p.Cells() {
		if f.Occupied(c) {
			return true
		}
	}
	return false
}

// Lock writes the piece color into the field one row above its current row.
// It is called once a collision is detected on p.Y, so the row above is the
// last position the piece occupied without overlapping anything.
// Returns the cells that were written.
func Lock(p Piece, f *Field) []Coord {
	written := make([]Coord, 0, CellsPerPiece)
	for _, c := range p.Cells() {
		rest := c.Add(0, -1)
		if !f.InPlayfield(rest) {
			continue
		}
		f.Set(rest, p.Color)
		written = append(written, rest)
	}
	return written
}

// CanPlace reports whether every cell of p lies in the playfield on an empty cell.
// Player moves and rotations are validated with it before they are applied.
func CanPlace(p Piece, f *Field) bool {
	for _, c := range p.Cells() {
		if !f.InPlayfield(c) || f.Get(c) != ColorNone {
			return false
		}
	}
	return true
}
