package character

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-fps/engine/ground"
	"github.com/Carmen-Shannon/oxy-fps/engine/locomotion"
	"github.com/Carmen-Shannon/oxy-fps/engine/look"
	"github.com/Carmen-Shannon/oxy-fps/engine/settings"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TickResult is everything a single character tick produced.
type TickResult struct {
	// Locomotion is the locomotion controller's result.
	Locomotion locomotion.Result
	// Look is the look controller's result.
	Look look.Result
	// Position is the feet position after the body stepped.
	Position mgl32.Vec3
}

// Character composes a locomotion controller, a look controller and their collaborators
// into one first-person character updated once per fixed tick.
type Character interface {
	// ID returns the character's unique identifier.
	//
	// Returns:
	//   - uuid.UUID: the identifier
	ID() uuid.UUID

	// Tick polls input, checks the ground, runs locomotion then look, and steps the body.
	//
	// Parameters:
	//   - dt: step duration in seconds
	//
	// Returns:
	//   - TickResult: the outcome of the tick
	Tick(dt float32) TickResult

	// Body returns the kinematic body.
	//
	// Returns:
	//   - Body: the body actuator
	Body() Body

	// Locomotion returns the locomotion controller.
	//
	// Returns:
	//   - locomotion.Controller: the controller
	Locomotion() locomotion.Controller

	// Look returns the look controller.
	//
	// Returns:
	//   - look.Controller: the controller
	Look() look.Controller

	// Stamina returns the stamina collaborator, or nil when none is attached.
	//
	// Returns:
	//   - locomotion.Stamina: the stamina collaborator
	Stamina() locomotion.Stamina

	// Shared returns the shared settings handle.
	//
	// Returns:
	//   - settings.Shared: the handle
	Shared() settings.Shared

	// Grounded returns the ground state observed by the last tick.
	//
	// Returns:
	//   - bool: true if the last tick found ground
	Grounded() bool
}

type characterImpl struct {
	mu *sync.Mutex

	id uuid.UUID

	input  InputSource
	probe  *ground.Probe
	body   Body
	sink   locomotion.AnimationSink
	shared settings.Shared

	stamina locomotion.Stamina
	runKey  uint32

	feetRadius float32
	feetMask   ground.LayerMask
	feetOffset mgl32.Vec3

	locoOptions []locomotion.ControllerOption
	lookOptions []look.ControllerOption

	loco locomotion.Controller
	look look.Controller

	grounded bool

	logger *zap.Logger
}

var _ Character = &characterImpl{}

// NewCharacter creates a character reading from input and standing on sensor geometry.
// Both are required and NewCharacter panics if either is nil. Without WithBody the
// character gets a kinematic body at the origin; without WithAnimationSink it gets a
// SpeedParameter.
//
// Parameters:
//   - input: the input source polled each tick (must not be nil)
//   - sensor: the ground sensor (must not be nil)
//   - options: functional options to configure the character
//
// Returns:
//   - Character: the newly created character
func NewCharacter(input InputSource, sensor ground.Sensor, options ...CharacterOption) Character {
	if input == nil {
		panic("character: NewCharacter requires a non-nil InputSource")
	}
	if sensor == nil {
		panic("character: NewCharacter requires a non-nil ground Sensor")
	}

	c := &characterImpl{
		mu:         &sync.Mutex{},
		id:         uuid.New(),
		input:      input,
		runKey:     DefaultRunKey,
		feetRadius: DefaultFeetRadius,
		feetMask:   ground.MaskOf(0),
		logger:     zap.NewNop(),
	}

	for _, option := range options {
		option(c)
	}

	if c.body == nil {
		c.body = NewBody(mgl32.Vec3{}, mgl32.QuatIdent(), mgl32.QuatIdent())
	}
	if c.sink == nil {
		c.sink = &SpeedParameter{}
	}
	if c.shared == nil {
		c.shared = settings.NewShared()
	}
	c.logger = c.logger.With(zap.Stringer("character", c.id))

	c.probe = ground.NewProbe(sensor, c.feetRadius, c.feetMask, c.feetOffset)

	locoOptions := append([]locomotion.ControllerOption{
		locomotion.WithStamina(c.stamina),
		locomotion.WithShared(c.shared),
		locomotion.WithInitialVelocity(c.body.Velocity().Elem()),
		locomotion.WithLogger(c.logger.Named("locomotion")),
	}, c.locoOptions...)
	c.loco = locomotion.NewController(c.sink, locoOptions...)

	lookOptions := append([]look.ControllerOption{
		look.WithShared(c.shared),
		look.WithLogger(c.logger.Named("look")),
	}, c.lookOptions...)
	c.look = look.NewController(c.body.Orientation(), c.body.Head(), lookOptions...)

	return c
}

func (c *characterImpl) Tick(dt float32) TickResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	axes := c.input.Axes()
	pointer := c.input.Pointer()
	run := c.input.KeyHeld(c.runKey)

	grounded := c.probe.Grounded(c.body.Position())
	if grounded != c.grounded {
		c.logger.Debug("grounded state changed", zap.Bool("grounded", grounded))
		c.grounded = grounded
	}

	locoRes := c.loco.Tick(dt, axes, run, grounded, c.body.Orientation())
	c.body.SetVelocity(locoRes.Velocity)

	lookRes := c.look.Tick(dt, pointer, c.shared.Alive())
	c.body.SetOrientation(lookRes.Body)
	c.body.SetHead(lookRes.Head)
	c.input.SetCursorState(lookRes.Cursor)

	c.body.Step(dt)

	return TickResult{
		Locomotion: locoRes,
		Look:       lookRes,
		Position:   c.body.Position(),
	}
}

func (c *characterImpl) ID() uuid.UUID {
	return c.id
}

func (c *characterImpl) Body() Body {
	return c.body
}

func (c *characterImpl) Locomotion() locomotion.Controller {
	return c.loco
}

func (c *characterImpl) Look() look.Controller {
	return c.look
}

func (c *characterImpl) Stamina() locomotion.Stamina {
	return c.stamina
}

func (c *characterImpl) Shared() settings.Shared {
	return c.shared
}

func (c *characterImpl) Grounded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grounded
}
