package look

import "github.com/go-gl/mathgl/mgl32"

// CursorState is the pointer confinement state driven by the look controller.
// The input layer warps the pointer to the viewport center while the state is CursorLocked.
type CursorState int

const (
	// CursorConfined keeps the pointer inside the viewport and free to move.
	CursorConfined CursorState = iota
	// CursorLocked asks the input layer to warp the pointer back to the center.
	CursorLocked
)

func (s CursorState) String() string {
	switch s {
	case CursorConfined:
		return "confined"
	case CursorLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Angles is a (pitch, yaw) pair in degrees.
type Angles struct {
	Pitch float32
	Yaw   float32
}

// Add returns the component-wise sum of a and b.
func (a Angles) Add(b Angles) Angles {
	return Angles{Pitch: a.Pitch + b.Pitch, Yaw: a.Yaw + b.Yaw}
}

// Sub returns the component-wise difference a - b.
func (a Angles) Sub(b Angles) Angles {
	return Angles{Pitch: a.Pitch - b.Pitch, Yaw: a.Yaw - b.Yaw}
}

// Scale multiplies both components by s.
func (a Angles) Scale(s float32) Angles {
	return Angles{Pitch: a.Pitch * s, Yaw: a.Yaw * s}
}

// pointerSample converts a viewport-normalized pointer position to an angle sample.
// Pitch scales the vertical offset from center by maxVerticalAngle; yaw maps the full
// horizontal span to 360 degrees.
func pointerSample(pointer mgl32.Vec2, maxVerticalAngle float32) Angles {
	return Angles{
		Pitch: (pointer.Y() - 0.5) * maxVerticalAngle,
		Yaw:   pointer.X() * 360,
	}
}

// nearEdge reports whether the pointer lies within wrapAt of any viewport edge.
func nearEdge(pointer mgl32.Vec2, wrapAt float32) bool {
	x, y := pointer.X(), pointer.Y()
	return x < wrapAt || x > 1-wrapAt || y < wrapAt || y > 1-wrapAt
}

// nextCursorState returns the cursor state for this tick and whether the sample
// baseline must be reset. A pointer returning from a lock is re-baselined so the warp
// is not counted as movement; a pointer reaching an edge is locked and re-baselined.
func nextCursorState(current CursorState, pointer mgl32.Vec2, wrapAt float32) (CursorState, bool) {
	if current == CursorLocked {
		return CursorConfined, true
	}
	if nearEdge(pointer, wrapAt) {
		return CursorLocked, true
	}
	return CursorConfined, false
}
