package look

import (
	"github.com/Carmen-Shannon/oxy-fps/engine/settings"
	"go.uber.org/zap"
)

// ControllerOption is a functional option for configuring a look Controller.
type ControllerOption func(*controllerImpl)

// WithRotationSpeed sets the fixed per-tick angular step in degrees. Zero snaps the
// current rotation to the target every tick.
//
// Parameters:
//   - degreesPerTick: largest angular change per tick
//
// Returns:
//   - ControllerOption: functional option to set the rotation speed
func WithRotationSpeed(degreesPerTick float32) ControllerOption {
	return func(c *controllerImpl) {
		c.rotationSpeed = degreesPerTick
	}
}

// WithMaxVerticalAngle sets the pitch limit in degrees, applied symmetrically.
//
// Parameters:
//   - degrees: the pitch limit
//
// Returns:
//   - ControllerOption: functional option to set the pitch limit
func WithMaxVerticalAngle(degrees float32) ControllerOption {
	return func(c *controllerImpl) {
		c.maxVerticalAngle = degrees
	}
}

// WithSmoothRotation sets the orientation smoothing factor. Zero disables smoothing.
//
// Parameters:
//   - factor: blend rate per second
//
// Returns:
//   - ControllerOption: functional option to set the smoothing factor
func WithSmoothRotation(factor float32) ControllerOption {
	return func(c *controllerImpl) {
		c.smoothRotation = factor
	}
}

// WithDeadRotationMultiplier sets the rotation damping applied while dead.
//
// Parameters:
//   - multiplier: value in [0, 1]
//
// Returns:
//   - ControllerOption: functional option to set the dead-state multiplier
func WithDeadRotationMultiplier(multiplier float32) ControllerOption {
	return func(c *controllerImpl) {
		c.deadRotationMultiplier = multiplier
	}
}

// WithMouseSensitivity sets the per-character mouse sensitivity.
//
// Parameters:
//   - sensitivity: multiplier for pointer deltas
//
// Returns:
//   - ControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) ControllerOption {
	return func(c *controllerImpl) {
		c.mouseSensitivity = sensitivity
	}
}

// WithWrapAt sets the viewport margin that triggers a pointer re-center.
//
// Parameters:
//   - margin: fraction of the viewport, e.g. 0.05
//
// Returns:
//   - ControllerOption: functional option to set the wrap margin
func WithWrapAt(margin float32) ControllerOption {
	return func(c *controllerImpl) {
		c.wrapAt = margin
	}
}

// WithShared attaches the shared settings handle providing the global sensitivity multiplier.
//
// Parameters:
//   - shared: the process-wide settings handle
//
// Returns:
//   - ControllerOption: functional option to set the shared handle
func WithShared(shared settings.Shared) ControllerOption {
	return func(c *controllerImpl) {
		if shared != nil {
			c.shared = shared
		}
	}
}

// WithLogger sets the logger used for cursor state messages.
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
