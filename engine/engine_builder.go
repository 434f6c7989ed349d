package engine

import (
	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/config"
	"github.com/Carmen-Shannon/oxy-fps/engine/character"
	"github.com/Carmen-Shannon/oxy-fps/engine/settings"
	"github.com/Carmen-Shannon/oxy-fps/engine/window"
	"go.uber.org/zap"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled.Store(enabled)
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// Values <= 0 will be treated as DefaultTickRate.
//
// Parameters:
//   - fps: target ticks per second
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate = tickDuration(fps)
	}
}

// WithWindow sets the window whose message loop Run drives.
//
// Parameters:
//   - w: a spawned Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithWorkers sets how many workers tick characters in parallel. One or fewer ticks
// characters on the engine goroutine.
//
// Parameters:
//   - n: maximum number of workers
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWorkers(n int) EngineBuilderOption {
	return func(e *engine) {
		e.workers = max(n, 1)
	}
}

// WithShared sets the settings handle shared by every character.
//
// Parameters:
//   - shared: the shared settings
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithShared(shared settings.Shared) EngineBuilderOption {
	return func(e *engine) {
		e.shared = shared
	}
}

// WithCharacter registers a character during engine construction.
//
// Parameters:
//   - c: the character to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCharacter(c character.Character) EngineBuilderOption {
	return func(e *engine) {
		e.characters[c.ID()] = c
	}
}

// WithConfig applies the engine section of a configuration. Zero fields keep the defaults.
// The sensitivity multiplier is written to the shared settings once NewEngine has them.
//
// Parameters:
//   - cfg: the engine configuration
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfig(cfg config.EngineConfig) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate = tickDuration(common.Coalesce(cfg.TickRate, DefaultTickRate))
		e.workers = max(common.Coalesce(cfg.Workers, 1), 1)
		e.profilingEnabled.Store(cfg.Profiling)
		e.sensitivity = cfg.SensitivityMultiplier
	}
}

// WithLogger sets the logger for engine lifecycle events.
//
// Parameters:
//   - logger: the zap logger
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
