// Package engine implements the Linkfall simulation: a falling-block board where
// pairs of same-colored target cells must be joined by landed blocks of that color.
//
// The package is UI-agnostic and deterministic for a given Rand. It holds the
// field, the rotation catalog, collision and locking, row clearing, flood-fill
// connectivity and the tick/input state machine.
package engine
