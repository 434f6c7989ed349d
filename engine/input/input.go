package input

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-fps/common"
	"github.com/Carmen-Shannon/oxy-fps/engine/character"
	"github.com/Carmen-Shannon/oxy-fps/engine/look"
	"github.com/go-gl/mathgl/mgl32"
)

// Bindings maps the four movement directions to key codes.
type Bindings struct {
	Forward uint32
	Back    uint32
	Left    uint32
	Right   uint32
}

// DefaultBindings is the WASD layout.
var DefaultBindings = Bindings{
	Forward: common.KeyW,
	Back:    common.KeyS,
	Left:    common.KeyA,
	Right:   common.KeyD,
}

// State caches platform input events between ticks and serves them as a character.InputSource.
// Event methods are called from the platform thread; the InputSource methods from the tick goroutine.
//
// Cursor positions arrive in window coordinates with y growing downward and are served
// viewport-normalized with y = 0 at the bottom. Locking the cursor moves the served pointer
// to the center immediately and queues a warp for the platform thread; motion events are
// ignored until that warp has been taken so the jump is never seen as pointer motion.
type State struct {
	mu sync.Mutex

	bindings Bindings
	keys     map[uint32]bool

	cursorX, cursorY float64
	width, height    int

	cursor      look.CursorState
	warpPending bool
}

var _ character.InputSource = &State{}

// NewState creates an input state for a viewport of the given size in window coordinates.
//
// Parameters:
//   - width: viewport width
//   - height: viewport height
//   - bindings: movement key bindings
//
// Returns:
//   - *State: the input state with the cursor centered
func NewState(width, height int, bindings Bindings) *State {
	return &State{
		bindings: bindings,
		keys:     make(map[uint32]bool),
		cursorX:  float64(width) / 2,
		cursorY:  float64(height) / 2,
		width:    width,
		height:   height,
	}
}

// KeyDown records a key press.
func (s *State) KeyDown(keyCode uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[keyCode] = true
}

// KeyUp records a key release.
func (s *State) KeyUp(keyCode uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, keyCode)
}

// CursorMoved records a cursor position in window coordinates.
func (s *State) CursorMoved(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.warpPending {
		return
	}
	s.cursorX, s.cursorY = x, y
}

// Resized records a new viewport size in window coordinates.
func (s *State) Resized(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
}

// TakeWarp returns the pending warp target in window coordinates and clears it.
//
// Returns:
//   - float64: target x
//   - float64: target y
//   - bool: true if a warp was pending
func (s *State) TakeWarp() (float64, float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.warpPending {
		return 0, 0, false
	}
	s.warpPending = false
	return s.cursorX, s.cursorY, true
}

// Cursor returns the last cursor state applied by the look controller.
func (s *State) Cursor() look.CursorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

func (s *State) Axes() mgl32.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mgl32.Vec2{
		axis(s.keys[s.bindings.Right], s.keys[s.bindings.Left]),
		axis(s.keys[s.bindings.Forward], s.keys[s.bindings.Back]),
	}
}

func (s *State) Pointer() mgl32.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width <= 0 || s.height <= 0 {
		return mgl32.Vec2{0.5, 0.5}
	}
	return mgl32.Vec2{
		common.Clamp01(float32(s.cursorX / float64(s.width))),
		common.Clamp01(1 - float32(s.cursorY/float64(s.height))),
	}
}

func (s *State) KeyHeld(keyCode uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[keyCode]
}

func (s *State) SetCursorState(state look.CursorState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = state
	if state == look.CursorLocked {
		s.cursorX = float64(s.width) / 2
		s.cursorY = float64(s.height) / 2
		s.warpPending = true
	}
}

func axis(positive, negative bool) float32 {
	var v float32
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
