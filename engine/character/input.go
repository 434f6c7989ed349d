package character

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-fps/engine/look"
	"github.com/go-gl/mathgl/mgl32"
)

// InputSource is polled once per tick for the player's intent.
type InputSource interface {
	// Axes returns (horizontal, vertical) movement input in [-1, 1]².
	//
	// Returns:
	//   - mgl32.Vec2: the movement axes
	Axes() mgl32.Vec2

	// Pointer returns the pointer position, viewport-normalized with y = 0 at the bottom.
	//
	// Returns:
	//   - mgl32.Vec2: the pointer position in [0, 1]²
	Pointer() mgl32.Vec2

	// KeyHeld reports whether a key is currently held.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	//
	// Returns:
	//   - bool: true while the key is down
	KeyHeld(keyCode uint32) bool

	// SetCursorState applies the cursor state requested by the look controller.
	// A locked cursor is warped back to the viewport center.
	//
	// Parameters:
	//   - state: the requested cursor state
	SetCursorState(state look.CursorState)
}

// ManualInput is an InputSource driven by code, used for headless hosts, replays and tests.
// Locking the cursor warps the pointer to the center just like a platform window would.
type ManualInput struct {
	mu      sync.Mutex
	axes    mgl32.Vec2
	pointer mgl32.Vec2
	keys    map[uint32]bool
	cursor  look.CursorState
}

var _ InputSource = &ManualInput{}

// NewManualInput creates a ManualInput with the pointer centered and no keys held.
//
// Returns:
//   - *ManualInput: the new input source
func NewManualInput() *ManualInput {
	return &ManualInput{
		pointer: mgl32.Vec2{0.5, 0.5},
		keys:    make(map[uint32]bool),
	}
}

// SetAxes sets the movement axes.
func (m *ManualInput) SetAxes(horizontal, vertical float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.axes = mgl32.Vec2{horizontal, vertical}
}

// SetPointer sets the pointer position.
func (m *ManualInput) SetPointer(x, y float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pointer = mgl32.Vec2{x, y}
}

// MovePointer offsets the pointer position.
func (m *ManualInput) MovePointer(dx, dy float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pointer = m.pointer.Add(mgl32.Vec2{dx, dy})
}

// SetKey marks a key as held or released.
func (m *ManualInput) SetKey(keyCode uint32, held bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[keyCode] = held
}

// Cursor returns the last applied cursor state.
func (m *ManualInput) Cursor() look.CursorState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursor
}

func (m *ManualInput) Axes() mgl32.Vec2 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.axes
}

func (m *ManualInput) Pointer() mgl32.Vec2 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pointer
}

func (m *ManualInput) KeyHeld(keyCode uint32) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keys[keyCode]
}

func (m *ManualInput) SetCursorState(state look.CursorState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursor = state
	if state == look.CursorLocked {
		m.pointer = mgl32.Vec2{0.5, 0.5}
	}
}
