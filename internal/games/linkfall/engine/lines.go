package engine

// IsRowCompleted reports whether every cell of row y is occupied.
func IsRowCompleted(f *Field, y int) bool {
	if y < 0 || y > f.Height {
		return false
	}
	for x := 0; x < f.Width; x++ {
		if f.Get(C(x, y)) == ColorNone {
			return false
		}
	}
	return true
}

// CompletedRows returns the indices of all completed playable rows, top to bottom.
func CompletedRows(f *Field) []int {
	var rows []int
	for y := 0; y < f.Height; y++ {
		if IsRowCompleted(f, y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearCompletedRows empties every completed row and drops the rows above
// into the freed space. Returns the cleared row indices (nil when none).
func ClearCompletedRows(f *Field) []int {
	cleared := CompletedRows(f)
	if len(cleared) == 0 {
		return nil
	}

	completed := make([]bool, f.Height)
	for _, y := range cleared {
		completed[y] = true
		for x := 0; x < f.Width; x++ {
			f.Clear(C(x, y))
		}
	}

	// Walk bottom to top so a row is always moved before anything lands on it.
	// below counts completed rows strictly below y.
	below := 0
	for y := f.Height - 1; y >= 0; y-- {
		if completed[y] {
			below++
			continue
		}
		if below == 0 {
			continue
		}
		for x := 0; x < f.Width; x++ {
			f.Set(C(x, y+below), f.Get(C(x, y)))
			f.Clear(C(x, y))
		}
	}

	return cleared
}
