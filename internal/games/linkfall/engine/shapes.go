package engine

// Kind identifies one of the seven piece shapes.
type Kind uint8

const (
	KindT Kind = iota
	KindL
	KindJ
	KindO
	KindS
	KindZ
	KindI
	KindCount // Sentinel value for iteration
)

// Rotations is the number of orientations per kind.
const Rotations = 4

// CellsPerPiece is the number of cells every piece occupies.
const CellsPerPiece = 4

// Shape is the set of cell offsets of one orientation, relative to the piece origin.
type Shape [CellsPerPiece]Coord

// baseShapes holds rotation 0 of every kind.
var baseShapes = [KindCount]Shape{
	KindT: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
	KindL: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
	KindJ: {{-1, 0}, {0, 0}, {1, 0}, {-1, 1}},
	KindO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	KindS: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
	KindZ: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
	KindI: {{-2, 0}, {-1, 0}, {0, 0}, {1, 0}},
}

// rotationTable is filled once at init and never written again.
var rotationTable = buildRotationTable(baseShapes)

// RotateShape turns every offset by 90 degrees: (dx, dy) -> (dy, -dx).
func RotateShape(s Shape) Shape {
	var out Shape
	for i, c := range s {
		out[i] = Coord{X: c.Y, Y: -c.X}
	}
	return out
}

// buildRotationTable derives rotation i from rotation i-1 for every kind.
func buildRotationTable(base [KindCount]Shape) [KindCount][Rotations]Shape {
	var table [KindCount][Rotations]Shape
	for k := range base {
		table[k][0] = base[k]
		for r := 1; r < Rotations; r++ {
			table[k][r] = RotateShape(table[k][r-1])
		}
	}
	return table
}

// Offsets returns the cell offsets of kind k at the given rotation.
// The rotation is taken modulo 4; negative values wrap around.
func Offsets(k Kind, rotation int) Shape {
	r := ((rotation % Rotations) + Rotations) % Rotations
	return rotationTable[k%KindCount][r]
}

// BaseShape returns rotation 0 of kind k.
func BaseShape(k Kind) Shape {
	return baseShapes[k%KindCount]
}

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	switch k {
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindI:
		return "I"
	default:
		return "?"
	}
}

// AllKinds returns every piece kind in catalog order.
func AllKinds() []Kind {
	return []Kind{KindT, KindL, KindJ, KindO, KindS, KindZ, KindI}
}
