package engine

import "github.com/kamstrup/intmap"

// Connection is the connectivity result for one target.
// It is derived from the field after every lock and never stored across ticks.
type Connection struct {
	Target    Target
	Connected bool
	RegionA   []Coord // Region grown from Target.A
	RegionB   []Coord // Region grown from Target.B
}

// Neighbors returns the axis-adjacent playable cells of pos holding color.
func Neighbors(f *Field, pos Coord, color Color) []Coord {
	candidates := [4]Coord{
		pos.Add(-1, 0),
		pos.Add(1, 0),
		pos.Add(0, -1),
		pos.Add(0, 1),
	}
	result := make([]Coord, 0, len(candidates))
	for _, c := range candidates {
		if f.InPlayfield(c) && f.Get(c) == color {
			result = append(result, c)
		}
	}
	return result
}

// ConnectedRegion flood-fills the 4-connected region of color containing start.
// Returns nil if start is outside the playfield or does not hold color.
func ConnectedRegion(f *Field, start Coord, color Color) []Coord {
	if !f.InPlayfield(start) || f.Get(start) != color {
		return nil
	}

	// seen covers both the region and the pending stack.
	seen := intmap.New[int, struct{}](16)
	seen.Put(f.index(start), struct{}{})

	var region []Coord
	stack := []Coord{start}
	for len(stack) > 0 {
		head := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, head)

		for _, n := range Neighbors(f, head, color) {
			idx := f.index(n)
			if _, ok := seen.Get(idx); ok {
				continue
			}
			seen.Put(idx, struct{}{})
			stack = append(stack, n)
		}
	}
	return region
}

// Evaluate computes the connection state of every target.
// A target is connected when the region grown from A reaches B.
func Evaluate(f *Field, targets []Target) []Connection {
	conns := make([]Connection, 0, len(targets))
	for _, t := range targets {
		regionA := ConnectedRegion(f, t.A, t.Color)
		regionB := ConnectedRegion(f, t.B, t.Color)
		conns = append(conns, Connection{
			Target:    t,
			Connected: containsCoord(regionA, t.B),
			RegionA:   regionA,
			RegionB:   regionB,
		})
	}
	return conns
}

// RemoveCompleted clears the region of every connected target from the field
// and returns the targets and connections that remain, in their original order,
// plus the solved targets. targets and conns are index-aligned, as returned by Evaluate.
func RemoveCompleted(f *Field, targets []Target, conns []Connection) ([]Target, []Connection, []Target) {
	keptTargets := make([]Target, 0, len(targets))
	keptConns := make([]Connection, 0, len(conns))
	var solved []Target

	for i, t := range targets {
		if i >= len(conns) {
			keptTargets = append(keptTargets, t)
			continue
		}
		conn := conns[i]
		if !conn.Connected {
			keptTargets = append(keptTargets, t)
			keptConns = append(keptConns, conn)
			continue
		}
		for _, c := range conn.RegionA {
			f.Clear(c)
		}
		solved = append(solved, t)
	}
	return keptTargets, keptConns, solved
}
