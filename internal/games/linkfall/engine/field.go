package engine

// Field is the board: Height playable rows plus one floor row, Width columns.
// Cells are stored row-major, index = y*Width + x.
// Rows 0..Height-1 are playable; row Height is the floor and always occupied.
type Field struct {
	Width  int
	Height int
	Cells  []Color
}

// NewField creates an initialized field with nx columns and ny playable rows.
func NewField(nx, ny int) *Field {
	f := &Field{
		Width:  nx,
		Height: ny,
		Cells:  make([]Color, nx*(ny+1)),
	}
	f.Initialize()
	return f
}

// Initialize empties every playable cell and fills the floor row.
func (f *Field) Initialize() {
	for i := range f.Cells {
		f.Cells[i] = ColorNone
	}
	for x := 0; x < f.Width; x++ {
		f.Cells[f.index(C(x, f.Height))] = ColorFloor
	}
}

func (f *Field) index(c Coord) int {
	return c.Y*f.Width + c.X
}

// InBounds reports whether c addresses a cell, floor row included.
func (f *Field) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y <= f.Height
}

// InPlayfield reports whether c addresses a playable (non-floor) cell.
func (f *Field) InPlayfield(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

// Get returns the cell color at c.
// Out-of-bounds positions read as ColorNone.
func (f *Field) Get(c Coord) Color {
	if !f.InBounds(c) {
		return ColorNone
	}
	return f.Cells[f.index(c)]
}

// Occupied reports whether c is blocked. Anything outside the field is blocked.
func (f *Field) Occupied(c Coord) bool {
	if !f.InBounds(c) {
		return true
	}
	return f.Cells[f.index(c)] != ColorNone
}

// Set writes a color into a playable cell. The floor row and
// out-of-bounds positions are left untouched.
func (f *Field) Set(c Coord, color Color) {
	if f.InPlayfield(c) {
		f.Cells[f.index(c)] = color
	}
}

// Clear empties a playable cell.
func (f *Field) Clear(c Coord) {
	f.Set(c, ColorNone)
}

// FilledCount returns the number of occupied playable cells.
func (f *Field) FilledCount() int {
	count := 0
	for _, c := range f.Cells[:f.Width*f.Height] {
		if c != ColorNone {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the field.
func (f *Field) Clone() *Field {
	cells := make([]Color, len(f.Cells))
	copy(cells, f.Cells)
	return &Field{
		Width:  f.Width,
		Height: f.Height,
		Cells:  cells,
	}
}

// Equal returns true if both fields have the same dimensions and contents.
func (f *Field) Equal(other *Field) bool {
	if f.Width != other.Width || f.Height != other.Height {
		return false
	}
	for i, c := range f.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}
