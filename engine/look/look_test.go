package look

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/settings"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var center = mgl32.Vec2{0.5, 0.5}

func newIdentController(options ...ControllerOption) Controller {
	return NewController(mgl32.QuatIdent(), mgl32.QuatIdent(), options...)
}

func TestFirstTickOnlyPrimesBaseline(t *testing.T) {
	c := newIdentController()
	res := c.Tick(0.02, mgl32.Vec2{0.7, 0.6}, true)
	assert.True(t, res.Recentered)
	assert.Equal(t, Angles{}, res.Target)
}

func TestInitialRotationFromOrientation(t *testing.T) {
	c := NewController(common.YawRotation(30), common.PitchRotation(-10))
	cur := c.Current()
	assert.InDelta(t, -10, cur.Pitch, 1e-3)
	assert.InDelta(t, 30, cur.Yaw, 1e-3)
	assert.Equal(t, cur, c.Target())
}

func TestPointerDeltaAccumulates(t *testing.T) {
	c := newIdentController(WithMaxVerticalAngle(90))
	c.Tick(0.02, center, true)

	res := c.Tick(0.02, mgl32.Vec2{0.6, 0.7}, true)
	assert.InDelta(t, 36, res.Target.Yaw, 1e-3)
	assert.InDelta(t, 18, res.Target.Pitch, 1e-3)
	assert.Equal(t, res.Target, res.Current)
	assert.False(t, res.Recentered)
}

func TestPitchClampInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, maxAngle := range []float32{0, 15, 80, 180} {
		c := newIdentController(WithMaxVerticalAngle(maxAngle), WithMouseSensitivity(4), WithRotationSpeed(3))
		for i := 0; i < 2000; i++ {
			p := mgl32.Vec2{rng.Float32(), rng.Float32()}
			res := c.Tick(1.0/60.0, p, true)
			require.GreaterOrEqual(t, res.Target.Pitch, -maxAngle)
			require.LessOrEqual(t, res.Target.Pitch, maxAngle)
			require.False(t, math.IsNaN(float64(res.Current.Pitch)))
		}
	}
}

func TestZeroVerticalAngleCollapsesPitch(t *testing.T) {
	c := newIdentController(WithMaxVerticalAngle(0), WithSmoothRotation(10))
	c.Tick(0.02, center, true)
	res := c.Tick(0.02, mgl32.Vec2{0.5, 0.9}, true)
	assert.Zero(t, res.Target.Pitch)
	assert.Zero(t, res.Current.Pitch)
}

func TestUnboundedYawWithRecentering(t *testing.T) {
	c := newIdentController()
	x := float32(0.5)
	lastYaw := float32(0)
	recenters := 0

	for i := 0; i < 600; i++ {
		res := c.Tick(0.02, mgl32.Vec2{x, 0.5}, true)
		require.GreaterOrEqual(t, res.Current.Yaw, lastYaw)
		lastYaw = res.Current.Yaw

		// the input layer warps a locked pointer back to the center
		if res.Cursor == CursorLocked {
			recenters++
			x = 0.5
		} else {
			x += 0.02
		}
	}

	assert.Greater(t, recenters, 10)
	assert.Greater(t, lastYaw, float32(1000))
}

func TestRecenterDoesNotCountWarp(t *testing.T) {
	c := newIdentController()
	c.Tick(0.02, center, true)

	res := c.Tick(0.02, mgl32.Vec2{0.97, 0.5}, true)
	assert.Equal(t, CursorLocked, res.Cursor)
	assert.True(t, res.Recentered)
	assert.Zero(t, res.Target.Yaw)

	res = c.Tick(0.02, center, true)
	assert.Equal(t, CursorConfined, res.Cursor)
	assert.True(t, res.Recentered)
	assert.Zero(t, res.Target.Yaw)

	res = c.Tick(0.02, mgl32.Vec2{0.55, 0.5}, true)
	assert.InDelta(t, 18, res.Target.Yaw, 1e-3)
}

func TestDeadStateDampsAngularStep(t *testing.T) {
	step := func(alive bool) float32 {
		c := newIdentController(WithRotationSpeed(10), WithDeadRotationMultiplier(0.5))
		c.Tick(0.02, center, alive)
		res := c.Tick(0.02, mgl32.Vec2{0.6, 0.5}, alive)
		return res.Current.Yaw
	}

	assert.InDelta(t, 10, step(true), 1e-4)
	assert.InDelta(t, 5, step(false), 1e-4)
}

func TestAngularStepIsNotScaledByDt(t *testing.T) {
	for _, dt := range []float32{0.001, 0.02, 0.5} {
		c := newIdentController(WithRotationSpeed(4))
		c.Tick(dt, center, true)
		res := c.Tick(dt, mgl32.Vec2{0.7, 0.5}, true)
		assert.InDelta(t, 4, res.Current.Yaw, 1e-4)
	}
}

func TestSharedSensitivityMultiplier(t *testing.T) {
	shared := settings.NewShared()
	a := newIdentController(WithShared(shared), WithMouseSensitivity(0.5))
	b := newIdentController(WithShared(shared))

	shared.SetSensitivityMultiplier(2)
	a.Tick(0.02, center, true)
	b.Tick(0.02, center, true)

	resA := a.Tick(0.02, mgl32.Vec2{0.6, 0.5}, true)
	resB := b.Tick(0.02, mgl32.Vec2{0.6, 0.5}, true)
	assert.InDelta(t, 36, resA.Target.Yaw, 1e-3)
	assert.InDelta(t, 72, resB.Target.Yaw, 1e-3)

	shared.SetSensitivityMultiplier(1)
	resB = b.Tick(0.02, mgl32.Vec2{0.7, 0.5}, true)
	assert.InDelta(t, 108, resB.Target.Yaw, 1e-3)
}

func TestSnapWithoutSmoothing(t *testing.T) {
	c := newIdentController()
	c.Tick(0.02, center, true)
	res := c.Tick(0.02, mgl32.Vec2{0.625, 0.5}, true)

	assert.InDelta(t, 45, res.Current.Yaw, 1e-3)
	assert.InDelta(t, 0, res.Body.Sub(common.YawRotation(45)).Len(), 1e-5, "got %v", res.Body)
	assert.InDelta(t, 0, res.Head.Sub(mgl32.QuatIdent()).Len(), 1e-5, "got %v", res.Head)
}

func TestSmoothingBlendsTowardTarget(t *testing.T) {
	c := newIdentController(WithSmoothRotation(5))
	c.Tick(0.02, center, true)
	res := c.Tick(0.02, mgl32.Vec2{0.625, 0.5}, true)

	yaw := common.YawFromRotation(res.Body)
	assert.Greater(t, yaw, float32(0))
	assert.Less(t, yaw, float32(45))

	for i := 0; i < 400; i++ {
		res = c.Tick(0.02, mgl32.Vec2{0.625, 0.5}, true)
	}
	assert.InDelta(t, 45, common.YawFromRotation(res.Body), 0.05)
}

func TestDeadStateSlowsSmoothing(t *testing.T) {
	yawAfter := func(alive bool) float32 {
		c := newIdentController(WithSmoothRotation(5), WithDeadRotationMultiplier(0.25))
		c.Tick(0.02, center, alive)
		res := c.Tick(0.02, mgl32.Vec2{0.625, 0.5}, alive)
		return common.YawFromRotation(res.Body)
	}
	assert.Less(t, yawAfter(false), yawAfter(true))
}

func TestNextCursorState(t *testing.T) {
	tests := []struct {
		name       string
		current    CursorState
		pointer    mgl32.Vec2
		wantState  CursorState
		wantRebase bool
	}{
		{"center stays confined", CursorConfined, center, CursorConfined, false},
		{"left edge locks", CursorConfined, mgl32.Vec2{0.01, 0.5}, CursorLocked, true},
		{"right edge locks", CursorConfined, mgl32.Vec2{0.99, 0.5}, CursorLocked, true},
		{"bottom edge locks", CursorConfined, mgl32.Vec2{0.5, 0.04}, CursorLocked, true},
		{"top edge locks", CursorConfined, mgl32.Vec2{0.5, 0.96}, CursorLocked, true},
		{"just inside the margin", CursorConfined, mgl32.Vec2{0.06, 0.94}, CursorConfined, false},
		{"release from lock", CursorLocked, center, CursorConfined, true},
		{"release from lock at edge", CursorLocked, mgl32.Vec2{0.99, 0.5}, CursorConfined, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, rebase := nextCursorState(tt.current, tt.pointer, 0.05)
			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, tt.wantRebase, rebase)
		})
	}
}

func TestCursorStateString(t *testing.T) {
	assert.Equal(t, "confined", CursorConfined.String())
	assert.Equal(t, "locked", CursorLocked.String())
	assert.Equal(t, "unknown", CursorState(9).String())
}
