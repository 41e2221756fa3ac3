// Package engine provides the simulation core: per-player state, the
// economy tick, the construction queue, the fleet mission lifecycle and the
// tick orchestrator that sequences them.
package engine

import "errors"

// Command validation errors. All are detected before any state mutation and
// surfaced synchronously to the caller; nothing in the core retries.
var (
	// ErrInsufficientResources rejects an enqueue, unit build, trade or
	// dispatch the planet cannot pay for.
	ErrInsufficientResources = errors.New("insufficient resources")

	// ErrQueueFull rejects an enqueue when two items are already queued.
	ErrQueueFull = errors.New("construction queue full")

	// ErrInvalidPlacement rejects a building that violates moon/planet
	// constraints or exceeds the planet's field capacity.
	ErrInvalidPlacement = errors.New("invalid building placement")

	// ErrInsufficientFuel rejects a mission dispatch the source planet
	// cannot fuel.
	ErrInsufficientFuel = errors.New("insufficient fuel")

	// ErrUnknownEntity rejects a command referencing an id that is not in
	// the static catalog or not owned by the player.
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrInvalidThrottle rejects a production setting outside 0-100 or not
	// a multiple of ten.
	ErrInvalidThrottle = errors.New("invalid production throttle")

	// ErrInsufficientFleet rejects a dispatch asking for more units than
	// are stationed on the planet.
	ErrInsufficientFleet = errors.New("insufficient fleet")
)
