package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/look"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestAxesFromBindings(t *testing.T) {
	tests := []struct {
		name string
		keys []uint32
		want mgl32.Vec2
	}{
		{"none", nil, mgl32.Vec2{0, 0}},
		{"forward", []uint32{common.KeyW}, mgl32.Vec2{0, 1}},
		{"back", []uint32{common.KeyS}, mgl32.Vec2{0, -1}},
		{"strafe left", []uint32{common.KeyA}, mgl32.Vec2{-1, 0}},
		{"diagonal", []uint32{common.KeyW, common.KeyD}, mgl32.Vec2{1, 1}},
		{"opposites cancel", []uint32{common.KeyW, common.KeyS, common.KeyA}, mgl32.Vec2{-1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(800, 600, DefaultBindings)
			for _, k := range tt.keys {
				s.KeyDown(k)
			}
			assert.Equal(t, tt.want, s.Axes())
		})
	}
}

func TestKeyUpReleases(t *testing.T) {
	s := NewState(800, 600, DefaultBindings)
	s.KeyDown(common.KeyLeftShift)
	assert.True(t, s.KeyHeld(common.KeyLeftShift))
	s.KeyUp(common.KeyLeftShift)
	assert.False(t, s.KeyHeld(common.KeyLeftShift))
}

func TestPointerIsNormalizedWithYUp(t *testing.T) {
	s := NewState(800, 400, DefaultBindings)
	assert.Equal(t, mgl32.Vec2{0.5, 0.5}, s.Pointer())

	s.CursorMoved(200, 100)
	assert.Equal(t, mgl32.Vec2{0.25, 0.75}, s.Pointer())

	s.CursorMoved(-50, 900)
	assert.Equal(t, mgl32.Vec2{0, 0}, s.Pointer())

	s.Resized(0, 0)
	assert.Equal(t, mgl32.Vec2{0.5, 0.5}, s.Pointer())
}

func TestLockQueuesWarpAndIgnoresMotionUntilTaken(t *testing.T) {
	s := NewState(800, 600, DefaultBindings)
	s.CursorMoved(790, 300)

	_, _, ok := s.TakeWarp()
	assert.False(t, ok)

	s.SetCursorState(look.CursorLocked)
	assert.Equal(t, look.CursorLocked, s.Cursor())
	assert.Equal(t, mgl32.Vec2{0.5, 0.5}, s.Pointer())

	s.CursorMoved(795, 300)
	assert.Equal(t, mgl32.Vec2{0.5, 0.5}, s.Pointer())

	x, y, ok := s.TakeWarp()
	assert.True(t, ok)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)

	s.CursorMoved(600, 300)
	assert.Equal(t, mgl32.Vec2{0.75, 0.5}, s.Pointer())

	s.SetCursorState(look.CursorConfined)
	_, _, ok = s.TakeWarp()
	assert.False(t, ok)
}
