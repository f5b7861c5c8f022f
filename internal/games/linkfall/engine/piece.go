package engine

import "math"

// DefaultFallSpeed is the fall speed in rows per second.
const DefaultFallSpeed = 2.4

// Piece is the active falling piece.
type Piece struct {
	Kind      Kind
	Rotation  int
	X         int
	Y         int
	YF        float64 // Sub-row fall progress; Y == floor(YF) after every tick
	Color     Color
	FallSpeed float64 // Rows per second
}

// Spawn creates a new piece with a uniformly random kind and palette color,
// centered horizontally on row 0.
func Spawn(rng Rand, nx int, fallSpeed float64) Piece {
	kind := Kind(rng.Intn(int(KindCount)))
	color := Palette[rng.Intn(PaletteSize)]
	return Piece{
		Kind:      kind,
		Rotation:  0,
		X:         nx / 2,
		Y:         0,
		YF:        0,
		Color:     color,
		FallSpeed: fallSpeed,
	}
}

// Shape returns the offsets of the piece's current rotation.
func (p Piece) Shape() Shape {
	return Offsets(p.Kind, p.Rotation)
}

// Cells returns the absolute cells the piece covers.
func (p Piece) Cells() [CellsPerPiece]Coord {
	var cells [CellsPerPiece]Coord
	for i, off := range p.Shape() {
		cells[i] = C(p.X+off.X, p.Y+off.Y)
	}
	return cells
}

// Moved returns a copy shifted by (dx, dy). YF follows Y.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	p.YF += float64(dy)
	return p
}

// Rotated returns a copy turned one step.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % Rotations
	return p
}

// AtRow returns a copy positioned on row y, keeping YF.
func (p Piece) AtRow(y int) Piece {
	p.Y = y
	return p
}

// row returns floor(YF) as an int.
func (p Piece) row() int {
	return int(math.Floor(p.YF))
}
