package settings

import (
	"math"
	"sync/atomic"
)

// Shared holds the tuning knobs and flags that every character in a process observes.
// A single Shared is created by the host and injected into each controller, so changing
// the sensitivity multiplier affects all characters immediately.
//
// The moving flag is last-writer-wins: with several characters ticking, it reflects
// whichever one ticked last. This mirrors the single-player convention it came from.
type Shared interface {
	// SensitivityMultiplier returns the global mouse sensitivity multiplier.
	//
	// Returns:
	//   - float32: the multiplier applied on top of each character's own sensitivity
	SensitivityMultiplier() float32

	// SetSensitivityMultiplier replaces the global mouse sensitivity multiplier.
	//
	// Parameters:
	//   - multiplier: the new multiplier
	SetSensitivityMultiplier(multiplier float32)

	// Alive reports whether the player is alive.
	//
	// Returns:
	//   - bool: true while alive
	Alive() bool

	// SetAlive updates the liveness flag.
	//
	// Parameters:
	//   - alive: the new liveness state
	SetAlive(alive bool)

	// Moving reports whether a character received directional input while grounded on its last tick.
	//
	// Returns:
	//   - bool: the last written moving state
	Moving() bool

	// SetMoving records the moving state of the character that just ticked.
	//
	// Parameters:
	//   - moving: the new moving state
	SetMoving(moving bool)
}

type sharedImpl struct {
	sensitivityBits atomic.Uint32
	alive           atomic.Bool
	moving          atomic.Bool
}

var _ Shared = &sharedImpl{}

// NewShared creates a Shared handle with a sensitivity multiplier of 1, alive, not moving.
//
// Returns:
//   - Shared: the new handle
func NewShared() Shared {
	s := &sharedImpl{}
	s.sensitivityBits.Store(math.Float32bits(1))
	s.alive.Store(true)
	return s
}

func (s *sharedImpl) SensitivityMultiplier() float32 {
	return math.Float32frombits(s.sensitivityBits.Load())
}

func (s *sharedImpl) SetSensitivityMultiplier(multiplier float32) {
	s.sensitivityBits.Store(math.Float32bits(multiplier))
}

func (s *sharedImpl) Alive() bool {
	return s.alive.Load()
}

func (s *sharedImpl) SetAlive(alive bool) {
	s.alive.Store(alive)
}

func (s *sharedImpl) Moving() bool {
	return s.moving.Load()
}

func (s *sharedImpl) SetMoving(moving bool) {
	s.moving.Store(moving)
}
