package stamina

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-fps/engine/locomotion"
	"go.uber.org/zap"
)

// Pool is a stamina reserve that drains while running and regenerates otherwise.
// Amounts are per tick, matching the fixed-step cadence of the locomotion controller.
// Once the reserve empties the pool is exhausted and refuses to run until it has
// recovered to the recovery threshold.
type Pool interface {
	locomotion.Stamina

	// Current returns the remaining stamina.
	//
	// Returns:
	//   - float32: stamina in [0, Max]
	Current() float32

	// Max returns the stamina capacity.
	//
	// Returns:
	//   - float32: the capacity
	Max() float32

	// Exhausted reports whether running is locked out until recovery.
	//
	// Returns:
	//   - bool: true while exhausted
	Exhausted() bool

	// Refill restores the pool to full capacity and clears exhaustion.
	Refill()
}

type poolImpl struct {
	mu *sync.Mutex

	current   float32
	max       float32
	exhausted bool

	runCost       float32
	walkRegen     float32
	restRegen     float32
	recoveryLevel float32

	logger *zap.Logger
}

var _ Pool = &poolImpl{}

// NewPool creates a full stamina pool with sensible defaults.
//
// Parameters:
//   - options: functional options to configure the pool
//
// Returns:
//   - Pool: the newly created pool
func NewPool(options ...PoolOption) Pool {
	p := &poolImpl{
		mu:            &sync.Mutex{},
		max:           100,
		runCost:       0.5,
		walkRegen:     0.1,
		restRegen:     0.25,
		recoveryLevel: 25,
		logger:        zap.NewNop(),
	}

	for _, option := range options {
		option(p)
	}

	p.current = p.max
	if p.recoveryLevel > p.max {
		p.recoveryLevel = p.max
	}
	return p
}

func (p *poolImpl) TryRun() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.exhausted || p.current < p.runCost {
		p.setExhausted(true)
		return false
	}
	p.current -= p.runCost
	if p.current <= 0 {
		p.current = 0
		p.setExhausted(true)
	}
	return true
}

func (p *poolImpl) Walk() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.regen(p.walkRegen)
}

func (p *poolImpl) Rest() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.regen(p.restRegen)
}

// regen adds amount up to max and clears exhaustion at the recovery level.
// Caller must hold the mutex.
func (p *poolImpl) regen(amount float32) {
	p.current = min(p.current+amount, p.max)
	if p.exhausted && p.current >= p.recoveryLevel {
		p.setExhausted(false)
	}
}

// setExhausted updates the exhaustion flag, logging transitions.
// Caller must hold the mutex.
func (p *poolImpl) setExhausted(exhausted bool) {
	if exhausted != p.exhausted {
		p.logger.Debug("stamina exhaustion changed",
			zap.Bool("exhausted", exhausted),
			zap.Float32("current", p.current),
		)
	}
	p.exhausted = exhausted
}

func (p *poolImpl) Current() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *poolImpl) Max() float32 {
	return p.max
}

func (p *poolImpl) Exhausted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exhausted
}

func (p *poolImpl) Refill() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = p.max
	p.setExhausted(false)
}
