package character

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/config"
	"github.com/Carmen-Shannon/oxy-fps/engine/ground"
	"github.com/Carmen-Shannon/oxy-fps/engine/locomotion"
	"github.com/Carmen-Shannon/oxy-fps/engine/look"
	"github.com/Carmen-Shannon/oxy-fps/engine/settings"
	"github.com/Carmen-Shannon/oxy-fps/engine/stamina"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = float32(0.02)

func newFloor() ground.Colliders {
	return ground.NewColliders(ground.Box{
		Min:   mgl32.Vec3{-100, -1, -100},
		Max:   mgl32.Vec3{100, 0, 100},
		Layer: 0,
	})
}

func TestNewCharacterPanicsWithoutCollaborators(t *testing.T) {
	assert.Panics(t, func() { NewCharacter(nil, newFloor()) })
	assert.Panics(t, func() { NewCharacter(NewManualInput(), nil) })
}

func TestWalkForwardOnFloor(t *testing.T) {
	in := NewManualInput()
	in.SetAxes(0, 1)
	sink := &SpeedParameter{}
	shared := settings.NewShared()
	c := NewCharacter(in, newFloor(),
		WithAnimationSink(sink),
		WithShared(shared),
		WithLocomotionOptions(locomotion.WithWalking(15, 25)),
	)

	var res TickResult
	for i := 0; i < 40; i++ {
		res = c.Tick(dt)
	}

	assert.True(t, c.Grounded())
	assert.True(t, res.Locomotion.Moving)
	assert.True(t, shared.Moving())
	assert.InDelta(t, 15, res.Locomotion.Speed, 1e-3)
	assert.InDelta(t, 15, sink.Speed(), 1e-3)
	assert.Less(t, res.Position.Z(), float32(-5))
	assert.InDelta(t, 0, res.Position.X(), 1e-4)
	assert.Equal(t, res.Position, c.Body().Position())
}

func TestAirborneCharacterDoesNotAccelerate(t *testing.T) {
	in := NewManualInput()
	in.SetAxes(1, 1)
	c := NewCharacter(in, ground.NewColliders(), WithSpawn(mgl32.Vec3{0, 5, 0}, 0))

	res := c.Tick(dt)
	assert.False(t, c.Grounded())
	assert.False(t, res.Locomotion.Moving)
	assert.Equal(t, mgl32.Vec3{}, res.Locomotion.Velocity)
	assert.Equal(t, mgl32.Vec3{0, 5, 0}, res.Position)
}

func TestRunKeyWithStamina(t *testing.T) {
	in := NewManualInput()
	in.SetAxes(0, 1)
	in.SetKey(common.KeyLeftShift, true)
	pool := stamina.NewPool(stamina.WithMax(2), stamina.WithRunCost(1), stamina.WithRegen(0, 0))

	c := NewCharacter(in, newFloor(), WithStamina(pool))

	assert.True(t, c.Tick(dt).Locomotion.Running)
	assert.True(t, c.Tick(dt).Locomotion.Running)
	assert.False(t, c.Tick(dt).Locomotion.Running)
	assert.True(t, pool.Exhausted())
	assert.Equal(t, pool, c.Stamina())
}

func TestLookTurnsMovementBasis(t *testing.T) {
	in := NewManualInput()
	c := NewCharacter(in, newFloor(), WithLocomotionOptions(locomotion.WithWalking(4, 1000)))

	c.Tick(dt)
	// a quarter of the viewport is 90 degrees of yaw
	in.SetPointer(0.75, 0.5)
	c.Tick(dt)
	assert.InDelta(t, 90, c.Look().Current().Yaw, 1e-3)

	in.SetAxes(0, 1)
	res := c.Tick(dt)
	assert.InDelta(t, 0, res.Locomotion.Velocity.Sub(mgl32.Vec3{4, 0, 0}).Len(), 1e-3, "got %v", res.Locomotion.Velocity)
	assert.InDelta(t, 0, c.Body().Orientation().Sub(common.YawRotation(90)).Len(), 1e-5)
}

func TestHeadPitchFollowsPointer(t *testing.T) {
	in := NewManualInput()
	c := NewCharacter(in, newFloor(), WithLookOptions(look.WithMaxVerticalAngle(90)))

	c.Tick(dt)
	in.SetPointer(0.5, 0.8)
	c.Tick(dt)

	assert.InDelta(t, 27, common.PitchFromRotation(c.Body().Head()), 1e-3)
}

func TestEdgeLocksAndWarpsCursor(t *testing.T) {
	in := NewManualInput()
	c := NewCharacter(in, newFloor())

	c.Tick(dt)
	in.SetPointer(0.99, 0.5)
	res := c.Tick(dt)

	assert.Equal(t, look.CursorLocked, res.Look.Cursor)
	assert.Equal(t, look.CursorLocked, in.Cursor())
	assert.Equal(t, mgl32.Vec2{0.5, 0.5}, in.Pointer())

	res = c.Tick(dt)
	assert.Equal(t, look.CursorConfined, in.Cursor())
	assert.Zero(t, res.Look.Target.Yaw)
}

func TestDeadCharacterTurnsSlower(t *testing.T) {
	turn := func(alive bool) float32 {
		in := NewManualInput()
		shared := settings.NewShared()
		shared.SetAlive(alive)
		c := NewCharacter(in, newFloor(), WithShared(shared),
			WithLookOptions(look.WithRotationSpeed(10), look.WithDeadRotationMultiplier(0.5)))
		c.Tick(dt)
		in.SetPointer(0.7, 0.5)
		return c.Tick(dt).Look.Current.Yaw
	}
	assert.InDelta(t, 10, turn(true), 1e-4)
	assert.InDelta(t, 5, turn(false), 1e-4)
}

func TestWithConfig(t *testing.T) {
	cfg := config.Default().Character
	cfg.Walking = config.SpeedConfig{Speed: 3, Acceleration: 1000}
	cfg.RunKey = "left_control"
	cfg.WalkableLayers = []int{2}

	in := NewManualInput()
	in.SetAxes(0, 1)
	in.SetKey(common.KeyLeftControl, true)

	layered := ground.NewColliders(ground.Box{Min: mgl32.Vec3{-5, -1, -5}, Max: mgl32.Vec3{5, 0, 5}, Layer: 2})
	c := NewCharacter(in, layered, WithConfig(cfg))

	res := c.Tick(dt)
	assert.True(t, c.Grounded())
	assert.True(t, res.Locomotion.Running)
	assert.Equal(t, float32(3), c.Locomotion().Walking().Speed)
	assert.Equal(t, cfg.MaxVerticalAngle, c.Look().MaxVerticalAngle())

	// the default layer is not walkable under this configuration
	other := NewCharacter(NewManualInput(), newFloor(), WithConfig(cfg))
	other.Tick(dt)
	assert.False(t, other.Grounded())
}

func TestWithConfigPanicsOnUnknownRunKey(t *testing.T) {
	cfg := config.Default().Character
	cfg.RunKey = "nope"
	assert.Panics(t, func() { NewCharacter(NewManualInput(), newFloor(), WithConfig(cfg)) })
}

func TestCharactersHaveDistinctIDs(t *testing.T) {
	a := NewCharacter(NewManualInput(), newFloor())
	b := NewCharacter(NewManualInput(), newFloor())
	require.NotEqual(t, a.ID(), b.ID())
}

func TestBodyStep(t *testing.T) {
	b := NewBody(mgl32.Vec3{1, 0, 0}, mgl32.QuatIdent(), mgl32.QuatIdent())
	b.SetVelocity(mgl32.Vec3{2, 0, -4})
	b.Step(0.5)
	assert.Equal(t, mgl32.Vec3{2, 0, -2}, b.Position())
}
