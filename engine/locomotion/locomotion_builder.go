package locomotion

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/settings"
	"go.uber.org/zap"
)

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controllerImpl)

// WithWalking sets the walking speed profile.
//
// Parameters:
//   - speed: target walking speed in units per second
//   - acceleration: walking acceleration in units per second squared
//
// Returns:
//   - ControllerOption: functional option to set the walking profile
func WithWalking(speed, acceleration float32) ControllerOption {
	return func(c *controllerImpl) {
		c.walking = SpeedProfile{Speed: speed, Acceleration: acceleration}
	}
}

// WithRunning sets the running speed profile.
//
// Parameters:
//   - speed: target running speed in units per second
//   - acceleration: running acceleration in units per second squared
//
// Returns:
//   - ControllerOption: functional option to set the running profile
func WithRunning(speed, acceleration float32) ControllerOption {
	return func(c *controllerImpl) {
		c.running = SpeedProfile{Speed: speed, Acceleration: acceleration}
	}
}

// WithStamina attaches the optional stamina collaborator. Passing nil leaves the
// controller without one, so running is never vetoed.
//
// Parameters:
//   - stamina: the stamina collaborator, or nil
//
// Returns:
//   - ControllerOption: functional option to set the stamina collaborator
func WithStamina(stamina Stamina) ControllerOption {
	return func(c *controllerImpl) {
		c.stamina = stamina
	}
}

// WithShared attaches the shared settings handle that receives the moving flag.
//
// Parameters:
//   - shared: the process-wide settings handle
//
// Returns:
//   - ControllerOption: functional option to set the shared handle
func WithShared(shared settings.Shared) ControllerOption {
	return func(c *controllerImpl) {
		c.shared = shared
	}
}

// WithInitialVelocity seeds the controller's velocity.
//
// Parameters:
//   - x, y, z: the starting world-space velocity
//
// Returns:
//   - ControllerOption: functional option to set the initial velocity
func WithInitialVelocity(x, y, z float32) ControllerOption {
	return func(c *controllerImpl) {
		c.velocity[0], c.velocity[1], c.velocity[2] = x, y, z
	}
}

// WithLogger sets the logger used for state transition messages.
//
// Parameters:
//   - logger: the zap logger
//
// Returns:
//   - ControllerOption: functional option to set the logger
func WithLogger(logger *zap.Logger) ControllerOption {
	return func(c *controllerImpl) {
		if logger != nil {
			c.logger = logger
		}
	}
}
