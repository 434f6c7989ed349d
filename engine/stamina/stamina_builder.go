package stamina

import (
	"github.com/Carmen-Shannon/oxy-fps/config"
	"go.uber.org/zap"
)

// PoolOption is a functional option for configuring a stamina Pool.
type PoolOption func(*poolImpl)

// WithMax sets the stamina capacity. The pool starts full.
//
// Parameters:
//   - max: the capacity
//
// Returns:
//   - PoolOption: functional option to set the capacity
func WithMax(max float32) PoolOption {
	return func(p *poolImpl) {
		p.max = max
	}
}

// WithRunCost sets the stamina spent per running tick.
//
// Parameters:
//   - cost: stamina per tick
//
// Returns:
//   - PoolOption: functional option to set the run cost
func WithRunCost(cost float32) PoolOption {
	return func(p *poolImpl) {
		p.runCost = cost
	}
}

// WithRegen sets the stamina regained per walking and per resting tick.
//
// Parameters:
//   - walk: stamina per walking tick
//   - rest: stamina per idle or airborne tick
//
// Returns:
//   - PoolOption: functional option to set regeneration
func WithRegen(walk, rest float32) PoolOption {
	return func(p *poolImpl) {
		p.walkRegen = walk
		p.restRegen = rest
	}
}

// WithRecoveryLevel sets the stamina an exhausted pool must regain before running again.
//
// Parameters:
//   - level: the recovery threshold
//
// Returns:
//   - PoolOption: functional option to set the recovery threshold
func WithRecoveryLevel(level float32) PoolOption {
	return func(p *poolImpl) {
		p.recoveryLevel = level
	}
}

// WithLogger sets the logger used for exhaustion messages.
//
// Parameters:
//   - logger: the zap logger
//
// Returns:
//   - PoolOption: functional option to set the logger
func WithLogger(logger *zap.Logger) PoolOption {
	return func(p *poolImpl) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// FromConfig creates a pool from configuration, or returns nil when stamina is disabled
// so the character runs without a stamina collaborator.
//
// Parameters:
//   - cfg: the stamina configuration
//   - options: extra options applied after the configuration
//
// Returns:
//   - Pool: the configured pool, or nil
func FromConfig(cfg config.StaminaConfig, options ...PoolOption) Pool {
	if !cfg.Enabled {
		return nil
	}
	base := []PoolOption{
		WithMax(cfg.Max),
		WithRunCost(cfg.RunCost),
		WithRegen(cfg.WalkRegen, cfg.RestRegen),
		WithRecoveryLevel(cfg.RecoveryLevel),
	}
	return NewPool(append(base, options...)...)
}
