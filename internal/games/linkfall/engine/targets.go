package engine

import (
	"errors"
	"fmt"
)

// DefaultTargetCount is the number of targets placed on reset.
const DefaultTargetCount = 2

// DefaultMaxAttempts bounds the rejection sampling of a single target.
const DefaultMaxAttempts = 10000

var (
	// ErrTooManyTargets is returned when the requested targets cannot all fit
	// with distinct colors and endpoints.
	ErrTooManyTargets = errors.New("engine: too many targets for board and palette")

	// ErrTargetSpaceExhausted is returned when sampling gives up after max attempts.
	ErrTargetSpaceExhausted = errors.New("engine: no valid target found")
)

// Target is a pair of cells that must be joined by blocks of Color.
type Target struct {
	Color Color
	A     Coord
	B     Coord
}

// HasEndpoint reports whether c is one of the target's endpoints.
func (t Target) HasEndpoint(c Coord) bool {
	return t.A == c || t.B == c
}

// targetRows returns the range of rows endpoints are sampled from: the lower
// half of the playable rows. The floor row is never used.
func targetRows(ny int) (top, span int) {
	span = ny / 2
	if span < 1 {
		span = 1
	}
	return ny - span, span
}

// sampleTarget draws one candidate. Draw order is x0, y0, x1, y1, color.
func sampleTarget(rng Rand, nx, ny int) Target {
	top, span := targetRows(ny)
	x0 := rng.Intn(nx)
	y0 := top + rng.Intn(span)
	x1 := rng.Intn(nx)
	y1 := top + rng.Intn(span)
	color := Palette[rng.Intn(PaletteSize)]
	return Target{Color: color, A: C(x0, y0), B: C(x1, y1)}
}

// conflicts reports whether candidate breaks uniqueness against existing.
func conflicts(candidate Target, existing []Target) bool {
	if candidate.A == candidate.B {
		return true
	}
	for _, t := range existing {
		if t.Color == candidate.Color {
			return true
		}
		if t.HasEndpoint(candidate.A) || t.HasEndpoint(candidate.B) {
			return true
		}
	}
	return false
}

// GenerateTarget rejection-samples a target that shares neither color nor
// endpoint with existing. It gives up after maxAttempts candidates.
func GenerateTarget(rng Rand, nx, ny int, existing []Target, maxAttempts int) (Target, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	for range maxAttempts {
		candidate := sampleTarget(rng, nx, ny)
		if conflicts(candidate, existing) {
			continue
		}
		return candidate, nil
	}
	return Target{}, fmt.Errorf("after %d attempts: %w", maxAttempts, ErrTargetSpaceExhausted)
}

// CheckTargetCapacity reports whether n targets fit on an nx by ny board.
// Each target needs its own palette color and two endpoints of its own.
func CheckTargetCapacity(nx, ny, n int) error {
	if n < 0 {
		return fmt.Errorf("negative target count %d: %w", n, ErrTooManyTargets)
	}
	if n > PaletteSize {
		return fmt.Errorf("%d targets, %d colors: %w", n, PaletteSize, ErrTooManyTargets)
	}
	_, span := targetRows(ny)
	if cells := nx * span; 2*n > cells {
		return fmt.Errorf("%d targets, %d candidate cells: %w", n, cells, ErrTooManyTargets)
	}
	return nil
}

// RegenerateTargets returns n freshly generated targets.
func RegenerateTargets(rng Rand, nx, ny, n, maxAttempts int) ([]Target, error) {
	if err := CheckTargetCapacity(nx, ny, n); err != nil {
		return nil, err
	}
	targets := make([]Target, 0, n)
	for i := range n {
		t, err := GenerateTarget(rng, nx, ny, targets, maxAttempts)
		if err != nil {
			return nil, fmt.Errorf("target %d: %w", i, err)
		}
		targets = append(targets, t)
	}
	return targets, nil
}
