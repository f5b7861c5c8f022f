package engine_test

import (
	"math/rand"

	"github.com/linkfall-game/linkfall/internal/games/linkfall/engine"
)

// scriptedRand replays fixed values, then returns 0 forever.
type scriptedRand struct {
	values []int
	pos    int
}

func (r *scriptedRand) Intn(n int) int {
	if r.pos >= len(r.values) {
		return 0
	}
	v := r.values[r.pos] % n
	r.pos++
	return v
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// fillRow occupies row y of f except the listed columns.
func fillRow(f *engine.Field, y int, color engine.Color, holes ...int) {
	for x := 0; x < f.Width; x++ {
		skip := false
		for _, h := range holes {
			if h == x {
				skip = true
			}
		}
		if !skip {
			f.Set(engine.C(x, y), color)
		}
	}
}
