package locomotion

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/settings"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Default speed profiles used when no option overrides them.
var (
	DefaultWalking = SpeedProfile{Speed: 5, Acceleration: 25}
	DefaultRunning = SpeedProfile{Speed: 9, Acceleration: 30}
)

// Result is the outcome of a single locomotion tick.
type Result struct {
	// Velocity is the world-space velocity after blending.
	Velocity mgl32.Vec3
	// Speed is the magnitude of Velocity, as forwarded to the animation sink.
	Speed float32
	// Moving is true when the character was grounded and received directional input.
	Moving bool
	// Running is true when the running profile was selected this tick.
	Running bool
	// Grounded echoes the grounded input of the tick.
	Grounded bool
}

// Controller turns movement axes into an acceleration-limited world-space velocity.
// It owns the character's current velocity; the caller pushes the result to its
// velocity actuator.
type Controller interface {
	// Tick advances the controller by one fixed step.
	// When not grounded the velocity is left untouched and stamina rests.
	// Axes are (horizontal, vertical): horizontal maps to the facing's right axis,
	// vertical to its forward axis. The vertical world component is always zero.
	//
	// Parameters:
	//   - dt: step duration in seconds
	//   - axes: raw (horizontal, vertical) input
	//   - runHeld: whether the run key is held
	//   - grounded: whether the ground sensor found walkable ground
	//   - facing: the body orientation used as the movement basis
	//
	// Returns:
	//   - Result: the velocity, speed and moving state after the step
	Tick(dt float32, axes mgl32.Vec2, runHeld, grounded bool, facing mgl32.Quat) Result

	// Velocity returns the current world-space velocity.
	//
	// Returns:
	//   - mgl32.Vec3: the current velocity
	Velocity() mgl32.Vec3

	// SetVelocity overwrites the current velocity, e.g. after the actuator resolved a collision.
	//
	// Parameters:
	//   - v: the new world-space velocity
	SetVelocity(v mgl32.Vec3)

	// Moving reports the moving state of the last tick.
	//
	// Returns:
	//   - bool: true if the last tick had grounded directional input
	Moving() bool

	// Walking returns the walking speed profile.
	//
	// Returns:
	//   - SpeedProfile: the walking profile
	Walking() SpeedProfile

	// Running returns the running speed profile.
	//
	// Returns:
	//   - SpeedProfile: the running profile
	Running() SpeedProfile

	// HasStamina reports whether a stamina collaborator is attached.
	//
	// Returns:
	//   - bool: true if running can be vetoed
	HasStamina() bool
}

type controllerImpl struct {
	mu *sync.Mutex

	walking SpeedProfile
	running SpeedProfile

	velocity mgl32.Vec3
	moving   bool
	wasRun   bool

	stamina Stamina
	sink    AnimationSink
	shared  settings.Shared
	logger  *zap.Logger
}

var _ Controller = &controllerImpl{}

// NewController creates a locomotion controller. The animation sink is required and
// NewController panics if it is nil.
//
// Parameters:
//   - sink: the animation sink receiving the speed each tick (must not be nil)
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(sink AnimationSink, options ...ControllerOption) Controller {
	if sink == nil {
		panic("locomotion: NewController requires a non-nil AnimationSink")
	}

	c := &controllerImpl{
		mu:      &sync.Mutex{},
		walking: DefaultWalking,
		running: DefaultRunning,
		sink:    sink,
		logger:  zap.NewNop(),
	}

	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controllerImpl) Tick(dt float32, axes mgl32.Vec2, runHeld, grounded bool, facing mgl32.Quat) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := Result{Grounded: grounded}

	if !grounded {
		c.setMoving(false)
		if c.stamina != nil {
			c.stamina.Rest()
		}
		res.Velocity = c.velocity
		res.Speed = c.velocity.Len()
		c.sink.SetSpeed(res.Speed)
		return res
	}

	profile := c.walking
	if axes.X() == 0 && axes.Y() == 0 {
		c.setMoving(false)
		if c.stamina != nil {
			c.stamina.Rest()
		}
	} else {
		c.setMoving(true)
		if runHeld && (c.stamina == nil || c.stamina.TryRun()) {
			profile = c.running
			res.Running = true
		} else if c.stamina != nil {
			if runHeld {
				c.logger.Debug("run vetoed by stamina")
			}
			c.stamina.Walk()
		}
	}
	if res.Running != c.wasRun {
		c.logger.Debug("speed profile changed", zap.Bool("running", res.Running))
		c.wasRun = res.Running
	}

	desired := desiredVelocity(axes, profile.Speed, facing)
	c.velocity = common.MoveTowardsVec3(c.velocity, desired, profile.Acceleration*dt)

	res.Velocity = c.velocity
	res.Speed = c.velocity.Len()
	res.Moving = c.moving
	c.sink.SetSpeed(res.Speed)
	return res
}

// setMoving updates the local and shared moving flags, logging transitions.
// Caller must hold the mutex.
func (c *controllerImpl) setMoving(moving bool) {
	if moving != c.moving {
		c.logger.Debug("moving state changed", zap.Bool("moving", moving))
	}
	c.moving = moving
	if c.shared != nil {
		c.shared.SetMoving(moving)
	}
}

// desiredVelocity maps input axes onto the horizontal plane of the facing orientation.
func desiredVelocity(axes mgl32.Vec2, speed float32, facing mgl32.Quat) mgl32.Vec3 {
	local := common.RightAxis.Mul(axes.X() * speed).Add(common.ForwardAxis.Mul(axes.Y() * speed))
	world := facing.Rotate(local)
	world[1] = 0
	return world
}

func (c *controllerImpl) Velocity() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.velocity
}

func (c *controllerImpl) SetVelocity(v mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.velocity = v
}

func (c *controllerImpl) Moving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.moving
}

func (c *controllerImpl) Walking() SpeedProfile {
	return c.walking
}

func (c *controllerImpl) Running() SpeedProfile {
	return c.running
}

func (c *controllerImpl) HasStamina() bool {
	return c.stamina != nil
}
