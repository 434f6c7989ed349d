package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-fps/engine/character"
	"github.com/Carmen-Shannon/oxy-fps/engine/profiler"
	"github.com/Carmen-Shannon/oxy-fps/engine/settings"
	"github.com/Carmen-Shannon/oxy-fps/engine/window"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTickRate is the tick rate in ticks per second used when none is configured.
const DefaultTickRate = 50.0

// engine implements the Engine interface.
// Coordinates the fixed-rate tick goroutine with the window thread.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window
	shared settings.Shared

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	// stepMu serializes Step so a tick never overlaps the previous one.
	stepMu sync.Mutex

	mu         sync.RWMutex
	characters map[uuid.UUID]character.Character

	workers int
	pool    worker.DynamicWorkerPool

	// sensitivity seeds the shared multiplier when > 0.
	sensitivity float32

	logger *zap.Logger
}

// Engine is the main entry point for the engine.
// It owns the character registry and drives every character at a fixed tick rate.
type Engine interface {
	// Window returns the window the engine runs against, or nil for a headless engine.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Shared returns the settings handle common to every character.
	//
	// Returns:
	//   - settings.Shared: the shared settings
	Shared() settings.Shared

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to DefaultTickRate if <= 0)
	SetTickRate(fps float64)

	// TickRate returns the fixed step duration.
	//
	// Returns:
	//   - time.Duration: the step duration
	TickRate() time.Duration

	// SetTickCallback registers a function called after each engine tick.
	//
	// Parameters:
	//   - callback: function receiving the fixed step in seconds
	SetTickCallback(callback func(deltaTime float32))

	// AddCharacter registers a character. Registering the same ID again replaces it.
	//
	// Parameters:
	//   - c: the character to register
	AddCharacter(c character.Character)

	// RemoveCharacter removes the character with the given ID.
	//
	// Parameters:
	//   - id: the character ID
	RemoveCharacter(id uuid.UUID)

	// Character retrieves a registered character. Returns nil if not found.
	//
	// Parameters:
	//   - id: the character ID
	//
	// Returns:
	//   - character.Character: the character, or nil
	Character(id uuid.UUID) character.Character

	// Characters returns a copy of the registry.
	//
	// Returns:
	//   - map[uuid.UUID]character.Character: a copy of the characters map
	Characters() map[uuid.UUID]character.Character

	// Step ticks every registered character once with the given step and blocks until all
	// of them finish. Characters tick in parallel on the worker pool when more than one
	// worker is configured.
	//
	// Parameters:
	//   - dt: step duration in seconds
	//
	// Returns:
	//   - map[uuid.UUID]character.TickResult: each character's result
	Step(dt float32) map[uuid.UUID]character.TickResult

	// Run starts the fixed-rate tick loop and blocks. With a window it processes window
	// messages on the calling goroutine until the window closes; headless it blocks until Quit.
	Run()

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		characters:      make(map[uuid.UUID]character.Character),
		engineTickRate:  tickDuration(DefaultTickRate),
		workers:         1,
		logger:          zap.NewNop(),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.shared == nil {
		e.shared = settings.NewShared()
	}
	if e.sensitivity > 0 {
		e.shared.SetSensitivityMultiplier(e.sensitivity)
	}
	e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger.Named("profiler")))
	if e.workers > 1 {
		e.pool = worker.NewDynamicWorkerPool(e.workers, 256, 1*time.Second)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Shared() settings.Shared {
	return e.shared
}

func (e *engine) Run() {
	e.logger.Info("engine starting",
		zap.Duration("tick", e.TickRate()),
		zap.Int("workers", e.workers),
		zap.Int("characters", len(e.Characters())),
	)
	e.running.Store(true)
	e.wg.Add(1)
	go e.handleEngine()

	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}

	e.wg.Wait()

	// Steps after Run returns tick inline.
	e.stepMu.Lock()
	if e.pool != nil {
		e.pool.Stop()
		e.pool = nil
	}
	e.stepMu.Unlock()
	e.logger.Info("engine stopped")
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.quitChannel)
	})
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Every tick steps all characters by the configured fixed step, then fires the tick callback.
// Listens for dynamic rate changes via tickRateChannel and exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	rate := e.TickRate()
	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			dt := float32(rate.Seconds())
			e.Step(dt)

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
			if e.profilingEnabled.Load() {
				e.profiler.Tick()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			rate = newRate
			e.logger.Debug("tick rate changed", zap.Duration("tick", newRate))
		}
	}
}

func (e *engine) Step(dt float32) map[uuid.UUID]character.TickResult {
	e.stepMu.Lock()
	defer e.stepMu.Unlock()

	e.mu.RLock()
	chars := make([]character.Character, 0, len(e.characters))
	for _, c := range e.characters {
		chars = append(chars, c)
	}
	e.mu.RUnlock()

	results := make([]character.TickResult, len(chars))
	if e.pool == nil || len(chars) < 2 {
		for i, c := range chars {
			results[i] = c.Tick(dt)
		}
	} else {
		var wg sync.WaitGroup
		for i, c := range chars {
			wg.Add(1)
			e.pool.SubmitTask(worker.Task{
				ID: i,
				Do: func() (any, error) {
					defer wg.Done()
					results[i] = c.Tick(dt)
					return nil, nil
				},
			})
		}
		wg.Wait()
	}

	out := make(map[uuid.UUID]character.TickResult, len(chars))
	for i, c := range chars {
		out[c.ID()] = results[i]
	}
	return out
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickDuration(fps)

	e.mu.Lock()
	e.engineTickRate = newRate
	e.mu.Unlock()

	if e.running.Load() {
		// Non-blocking send; a pending value is replaced.
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	}
}

func (e *engine) TickRate() time.Duration {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.engineTickRate
}

// SetTickCallback registers the function called after each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) AddCharacter(c character.Character) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.characters[c.ID()] = c
	e.logger.Debug("character added", zap.Stringer("character", c.ID()))
}

func (e *engine) RemoveCharacter(id uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.characters[id]; ok {
		delete(e.characters, id)
		e.logger.Debug("character removed", zap.Stringer("character", id))
	}
}

func (e *engine) Character(id uuid.UUID) character.Character {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.characters[id]
}

func (e *engine) Characters() map[uuid.UUID]character.Character {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cp := make(map[uuid.UUID]character.Character, len(e.characters))
	for k, v := range e.characters {
		cp[k] = v
	}
	return cp
}

// tickDuration converts ticks per second to a step duration.
func tickDuration(fps float64) time.Duration {
	if fps <= 0 {
		fps = DefaultTickRate
	}
	return time.Duration(float64(time.Second) / fps)
}
