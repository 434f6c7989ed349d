package character

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Body is the kinematic actuator that displaces a character and carries its orientation.
// Locomotion hands it a desired velocity; the look controller hands it body and head
// orientations.
type Body interface {
	// Position returns the feet position in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the feet position
	Position() mgl32.Vec3

	// SetPosition teleports the body.
	//
	// Parameters:
	//   - p: the new feet position
	SetPosition(p mgl32.Vec3)

	// Velocity returns the velocity applied on the next Step.
	//
	// Returns:
	//   - mgl32.Vec3: world-space velocity
	Velocity() mgl32.Vec3

	// SetVelocity sets the velocity applied on the next Step.
	//
	// Parameters:
	//   - v: world-space velocity
	SetVelocity(v mgl32.Vec3)

	// Orientation returns the body's world orientation.
	//
	// Returns:
	//   - mgl32.Quat: body orientation
	Orientation() mgl32.Quat

	// SetOrientation replaces the body's world orientation.
	//
	// Parameters:
	//   - q: body orientation
	SetOrientation(q mgl32.Quat)

	// Head returns the head's orientation relative to the body.
	//
	// Returns:
	//   - mgl32.Quat: local head orientation
	Head() mgl32.Quat

	// SetHead replaces the head's local orientation.
	//
	// Parameters:
	//   - q: local head orientation
	SetHead(q mgl32.Quat)

	// Step integrates the position by velocity over dt.
	//
	// Parameters:
	//   - dt: step duration in seconds
	Step(dt float32)
}

type bodyImpl struct {
	mu *sync.Mutex

	position    mgl32.Vec3
	velocity    mgl32.Vec3
	orientation mgl32.Quat
	head        mgl32.Quat
}

var _ Body = &bodyImpl{}

// NewBody creates a kinematic body at rest.
//
// Parameters:
//   - position: initial feet position
//   - orientation: initial body orientation
//   - head: initial local head orientation
//
// Returns:
//   - Body: the new body
func NewBody(position mgl32.Vec3, orientation, head mgl32.Quat) Body {
	return &bodyImpl{
		mu:          &sync.Mutex{},
		position:    position,
		orientation: orientation,
		head:        head,
	}
}

func (b *bodyImpl) Position() mgl32.Vec3 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.position
}

func (b *bodyImpl) SetPosition(p mgl32.Vec3) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.position = p
}

func (b *bodyImpl) Velocity() mgl32.Vec3 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.velocity
}

func (b *bodyImpl) SetVelocity(v mgl32.Vec3) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.velocity = v
}

func (b *bodyImpl) Orientation() mgl32.Quat {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.orientation
}

func (b *bodyImpl) SetOrientation(q mgl32.Quat) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orientation = q
}

func (b *bodyImpl) Head() mgl32.Quat {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.head
}

func (b *bodyImpl) SetHead(q mgl32.Quat) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.head = q
}

func (b *bodyImpl) Step(dt float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.position = b.position.Add(b.velocity.Mul(dt))
}
