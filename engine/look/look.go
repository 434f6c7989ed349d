package look

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/settings"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Defaults applied by NewController before options.
const (
	DefaultRotationSpeed          = 0
	DefaultMaxVerticalAngle       = 80
	DefaultSmoothRotation         = 0
	DefaultDeadRotationMultiplier = 0.5
	DefaultMouseSensitivity       = 1
	DefaultWrapAt                 = 0.05
)

// Result is the outcome of a single look tick.
type Result struct {
	// Current is the rotation after the angular step, in degrees.
	Current Angles
	// Target is the accumulated, pitch-clamped target rotation, in degrees.
	Target Angles
	// Body is the world orientation of the body (yaw only).
	Body mgl32.Quat
	// Head is the local orientation of the head relative to the body (pitch only).
	Head mgl32.Quat
	// Cursor is the cursor state the input layer should apply.
	Cursor CursorState
	// Recentered is true when this tick reset the sampling baseline.
	Recentered bool
}

// Controller converts viewport-normalized pointer positions into body yaw and head pitch.
// Yaw is unbounded; the pointer is re-centered near the viewport edges so dragging never runs out.
type Controller interface {
	// Tick advances the controller by one fixed step.
	// The angular step toward the target is a fixed amount per tick and is not scaled by dt;
	// only the orientation smoothing uses dt.
	//
	// Parameters:
	//   - dt: step duration in seconds
	//   - pointer: pointer position in [0,1]², y = 0 at the bottom
	//   - alive: liveness, dead characters rotate at the dead multiplier
	//
	// Returns:
	//   - Result: angles, orientations and cursor state after the step
	Tick(dt float32, pointer mgl32.Vec2, alive bool) Result

	// Current returns the current (pitch, yaw) in degrees.
	//
	// Returns:
	//   - Angles: the current rotation
	Current() Angles

	// Target returns the target (pitch, yaw) in degrees.
	//
	// Returns:
	//   - Angles: the target rotation
	Target() Angles

	// Body returns the current body orientation.
	//
	// Returns:
	//   - mgl32.Quat: yaw about the up axis
	Body() mgl32.Quat

	// Head returns the current local head orientation.
	//
	// Returns:
	//   - mgl32.Quat: pitch about the local right axis
	Head() mgl32.Quat

	// Cursor returns the cursor state requested by the last tick.
	//
	// Returns:
	//   - CursorState: confined or locked
	Cursor() CursorState

	// MaxVerticalAngle returns the pitch limit in degrees.
	//
	// Returns:
	//   - float32: the pitch limit
	MaxVerticalAngle() float32

	// MouseSensitivity returns the per-character sensitivity.
	//
	// Returns:
	//   - float32: the sensitivity multiplier
	MouseSensitivity() float32
}

type controllerImpl struct {
	mu *sync.Mutex

	current    Angles
	target     Angles
	lastSample Angles
	primed     bool

	body mgl32.Quat
	head mgl32.Quat

	cursor CursorState

	rotationSpeed          float32
	maxVerticalAngle       float32
	smoothRotation         float32
	deadRotationMultiplier float32
	mouseSensitivity       float32
	wrapAt                 float32

	shared settings.Shared
	logger *zap.Logger
}

var _ Controller = &controllerImpl{}

// NewController creates a look controller starting from the given body and head orientations.
// Yaw is read from the body's heading and pitch from the head's tilt; both current and
// target rotations start there. The first tick only establishes the pointer baseline.
//
// Parameters:
//   - body: initial world orientation of the body
//   - head: initial local orientation of the head
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(body, head mgl32.Quat, options ...ControllerOption) Controller {
	c := &controllerImpl{
		mu:                     &sync.Mutex{},
		body:                   body,
		head:                   head,
		cursor:                 CursorConfined,
		rotationSpeed:          DefaultRotationSpeed,
		maxVerticalAngle:       DefaultMaxVerticalAngle,
		smoothRotation:         DefaultSmoothRotation,
		deadRotationMultiplier: DefaultDeadRotationMultiplier,
		mouseSensitivity:       DefaultMouseSensitivity,
		wrapAt:                 DefaultWrapAt,
		logger:                 zap.NewNop(),
	}

	for _, option := range options {
		option(c)
	}
	if c.shared == nil {
		c.shared = settings.NewShared()
	}

	c.current = Angles{
		Pitch: common.PitchFromRotation(head),
		Yaw:   common.YawFromRotation(body),
	}
	c.target = c.current
	return c
}

func (c *controllerImpl) Tick(dt float32, pointer mgl32.Vec2, alive bool) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	sample := pointerSample(pointer, c.maxVerticalAngle)

	cursor, rebase := nextCursorState(c.cursor, pointer, c.wrapAt)
	if cursor != c.cursor {
		c.logger.Debug("cursor state changed",
			zap.Stringer("from", c.cursor),
			zap.Stringer("to", cursor),
		)
		c.cursor = cursor
	}
	if rebase || !c.primed {
		c.lastSample = sample
		c.primed = true
		rebase = true
	}

	delta := sample.Sub(c.lastSample)
	c.lastSample = sample

	c.target = c.target.Add(delta.Scale(c.mouseSensitivity * c.shared.SensitivityMultiplier()))
	c.target.Pitch = mgl32.Clamp(c.target.Pitch, -c.maxVerticalAngle, c.maxVerticalAngle)

	multiplier := float32(1)
	if !alive {
		multiplier = c.deadRotationMultiplier
	}

	if c.rotationSpeed > 0 {
		step := c.rotationSpeed * multiplier
		c.current = Angles{
			Pitch: common.MoveTowardsAngle(c.current.Pitch, c.target.Pitch, step),
			Yaw:   common.MoveTowardsAngle(c.current.Yaw, c.target.Yaw, step),
		}
	} else {
		c.current = c.target
	}

	bodyTarget := common.YawRotation(c.current.Yaw)
	headTarget := common.PitchRotation(c.current.Pitch)

	if c.smoothRotation > 0 {
		t := common.Clamp01(dt * c.smoothRotation * multiplier)
		c.body = common.Slerp(c.body, bodyTarget, t)
		c.head = common.Slerp(c.head, headTarget, t)
	} else {
		c.body = bodyTarget
		c.head = headTarget
	}

	return Result{
		Current:    c.current,
		Target:     c.target,
		Body:       c.body,
		Head:       c.head,
		Cursor:     c.cursor,
		Recentered: rebase,
	}
}

func (c *controllerImpl) Current() Angles {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *controllerImpl) Target() Angles {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *controllerImpl) Body() mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.body
}

func (c *controllerImpl) Head() mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.head
}

func (c *controllerImpl) Cursor() CursorState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

func (c *controllerImpl) MaxVerticalAngle() float32 {
	return c.maxVerticalAngle
}

func (c *controllerImpl) MouseSensitivity() float32 {
	return c.mouseSensitivity
}
