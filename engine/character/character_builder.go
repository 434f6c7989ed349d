package character

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/config"
	"github.com/Carmen-Shannon/oxy-fps/engine/ground"
	"github.com/Carmen-Shannon/oxy-fps/engine/locomotion"
	"github.com/Carmen-Shannon/oxy-fps/engine/look"
	"github.com/Carmen-Shannon/oxy-fps/engine/settings"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Defaults applied by NewCharacter before options.
const (
	DefaultRunKey     = common.KeyLeftShift
	DefaultFeetRadius = 0.3
)

// CharacterOption is a functional option for configuring a Character.
type CharacterOption func(*characterImpl)

// WithBody sets the kinematic body. Its position and orientations seed both controllers.
//
// Parameters:
//   - body: the body actuator
//
// Returns:
//   - CharacterOption: functional option to set the body
func WithBody(body Body) CharacterOption {
	return func(c *characterImpl) {
		c.body = body
	}
}

// WithSpawn creates a body at the given feet position facing the given yaw.
//
// Parameters:
//   - position: feet position in world space
//   - yawDegrees: initial heading in degrees, positive turns right
//
// Returns:
//   - CharacterOption: functional option to spawn the body
func WithSpawn(position mgl32.Vec3, yawDegrees float32) CharacterOption {
	return func(c *characterImpl) {
		c.body = NewBody(position, common.YawRotation(yawDegrees), mgl32.QuatIdent())
	}
}

// WithAnimationSink sets the sink receiving the speed each tick.
//
// Parameters:
//   - sink: the animation sink
//
// Returns:
//   - CharacterOption: functional option to set the animation sink
func WithAnimationSink(sink locomotion.AnimationSink) CharacterOption {
	return func(c *characterImpl) {
		c.sink = sink
	}
}

// WithStamina attaches the optional stamina collaborator.
//
// Parameters:
//   - stamina: the stamina collaborator, or nil for none
//
// Returns:
//   - CharacterOption: functional option to set stamina
func WithStamina(stamina locomotion.Stamina) CharacterOption {
	return func(c *characterImpl) {
		c.stamina = stamina
	}
}

// WithShared sets the shared settings handle common to all characters.
//
// Parameters:
//   - shared: the process-wide settings handle
//
// Returns:
//   - CharacterOption: functional option to set the shared handle
func WithShared(shared settings.Shared) CharacterOption {
	return func(c *characterImpl) {
		c.shared = shared
	}
}

// WithRunKey sets the key that selects the running profile.
//
// Parameters:
//   - keyCode: the virtual key code
//
// Returns:
//   - CharacterOption: functional option to set the run key
func WithRunKey(keyCode uint32) CharacterOption {
	return func(c *characterImpl) {
		c.runKey = keyCode
	}
}

// WithFeetCheck configures the ground probe.
//
// Parameters:
//   - radius: sphere radius of the check
//   - mask: walkable layers
//   - offset: offset from the feet position to the sphere center
//
// Returns:
//   - CharacterOption: functional option to configure the probe
func WithFeetCheck(radius float32, mask ground.LayerMask, offset mgl32.Vec3) CharacterOption {
	return func(c *characterImpl) {
		c.feetRadius = radius
		c.feetMask = mask
		c.feetOffset = offset
	}
}

// WithLocomotionOptions forwards options to the locomotion controller.
//
// Parameters:
//   - options: locomotion controller options
//
// Returns:
//   - CharacterOption: functional option to forward the options
func WithLocomotionOptions(options ...locomotion.ControllerOption) CharacterOption {
	return func(c *characterImpl) {
		c.locoOptions = append(c.locoOptions, options...)
	}
}

// WithLookOptions forwards options to the look controller.
//
// Parameters:
//   - options: look controller options
//
// Returns:
//   - CharacterOption: functional option to forward the options
func WithLookOptions(options ...look.ControllerOption) CharacterOption {
	return func(c *characterImpl) {
		c.lookOptions = append(c.lookOptions, options...)
	}
}

// WithConfig applies a validated character configuration. An unknown run key name
// panics; config.Validate reports it first.
//
// Parameters:
//   - cfg: the character configuration
//
// Returns:
//   - CharacterOption: functional option applying the configuration
func WithConfig(cfg config.CharacterConfig) CharacterOption {
	return func(c *characterImpl) {
		key, err := cfg.RunKeyCode()
		if err != nil {
			panic(fmt.Sprintf("character: invalid run key: %v", err))
		}
		c.runKey = key
		c.feetRadius = cfg.FeetRadius
		c.feetMask = ground.MaskOf(cfg.WalkableLayers...)

		c.locoOptions = append(c.locoOptions,
			locomotion.WithWalking(cfg.Walking.Speed, cfg.Walking.Acceleration),
			locomotion.WithRunning(cfg.Running.Speed, cfg.Running.Acceleration),
		)
		c.lookOptions = append(c.lookOptions,
			look.WithRotationSpeed(cfg.RotationSpeed),
			look.WithMaxVerticalAngle(cfg.MaxVerticalAngle),
			look.WithSmoothRotation(cfg.SmoothRotation),
			look.WithDeadRotationMultiplier(cfg.DeadRotationMultiplier),
			look.WithMouseSensitivity(cfg.MouseSensitivity),
			look.WithWrapAt(cfg.WrapAt),
		)
	}
}

// WithLogger sets the logger; controllers receive named children of it.
//
// Parameters:
//   - logger: the zap logger
//
// Returns:
//   - CharacterOption: functional option to set the logger
func WithLogger(logger *zap.Logger) CharacterOption {
	return func(c *characterImpl) {
		if logger != nil {
			c.logger = logger
		}
	}
}
