package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linkfall-game/linkfall/internal/games/linkfall/engine"
)

func TestRotationClosure(t *testing.T) {
	for _, k := range engine.AllKinds() {
		t.Run(k.String(), func(t *testing.T) {
			base := engine.BaseShape(k)
			s := base
			for range 4 {
				s = engine.RotateShape(s)
			}
			assert.ElementsMatch(t, base[:], s[:])
		})
	}
}

func TestOffsetsRotationModulo(t *testing.T) {
	for _, k := range engine.AllKinds() {
		assert.Equal(t, engine.Offsets(k, 0), engine.Offsets(k, 4), "kind %s", k)
		assert.Equal(t, engine.Offsets(k, 3), engine.Offsets(k, -1), "kind %s", k)
		assert.Equal(t, engine.BaseShape(k), engine.Offsets(k, 0), "kind %s", k)
	}
}

func TestOffsetsTRotation(t *testing.T) {
	expected := engine.Shape{{X: 0, Y: 1}, {X: 0, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: 0}}
	assert.Equal(t, expected, engine.Offsets(engine.KindT, 1))
}

func TestEveryShapeHasOrigin(t *testing.T) {
	// Spawn collision detection relies on every orientation 0 covering the origin.
	for _, k := range engine.AllKinds() {
		base := engine.BaseShape(k)
		assert.Contains(t, base[:], engine.C(0, 0), "kind %s", k)
	}
}
