package ground

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// LayerMask is a bit set of collider layers, one bit per layer index 0..31.
type LayerMask uint32

// AllLayers matches every layer.
const AllLayers LayerMask = ^LayerMask(0)

// MaskOf builds a mask from layer indices. Indices outside 0..31 are ignored.
//
// Parameters:
//   - layers: the layer indices to include
//
// Returns:
//   - LayerMask: the combined mask
func MaskOf(layers ...int) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l >= 0 && l < 32 {
			m |= 1 << uint(l)
		}
	}
	return m
}

// Contains reports whether the layer index is part of the mask.
func (m LayerMask) Contains(layer int) bool {
	return layer >= 0 && layer < 32 && m&(1<<uint(layer)) != 0
}

// Box is an axis-aligned collider on a single layer.
type Box struct {
	Min   mgl32.Vec3
	Max   mgl32.Vec3
	Layer int
}

// ClosestPoint returns the point of the box nearest to p.
func (b Box) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(p.X(), b.Min.X(), b.Max.X()),
		mgl32.Clamp(p.Y(), b.Min.Y(), b.Max.Y()),
		mgl32.Clamp(p.Z(), b.Min.Z(), b.Max.Z()),
	}
}

// OverlapsSphere reports whether a sphere touches or intersects the box.
func (b Box) OverlapsSphere(center mgl32.Vec3, radius float32) bool {
	d := center.Sub(b.ClosestPoint(center))
	return d.Dot(d) <= radius*radius
}

// Sensor answers sphere overlap queries against walkable geometry.
type Sensor interface {
	// Overlap counts colliders on the masked layers touching the sphere.
	//
	// Parameters:
	//   - origin: sphere center in world space
	//   - radius: sphere radius
	//   - mask: layers to test
	//
	// Returns:
	//   - int: number of overlapping colliders, 0 when none
	Overlap(origin mgl32.Vec3, radius float32, mask LayerMask) int
}

// Colliders is a Sensor over a static set of boxes. It is safe for concurrent queries.
type Colliders interface {
	Sensor

	// Add registers a box collider.
	//
	// Parameters:
	//   - box: the collider to add
	Add(box Box)

	// Len returns the number of registered colliders.
	//
	// Returns:
	//   - int: collider count
	Len() int
}

type collidersImpl struct {
	mu    *sync.RWMutex
	boxes []Box
}

var _ Colliders = &collidersImpl{}

// NewColliders creates a collider set holding the given boxes.
//
// Parameters:
//   - boxes: initial colliders
//
// Returns:
//   - Colliders: the new collider set
func NewColliders(boxes ...Box) Colliders {
	return &collidersImpl{
		mu:    &sync.RWMutex{},
		boxes: append([]Box(nil), boxes...),
	}
}

func (c *collidersImpl) Add(box Box) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.boxes = append(c.boxes, box)
}

func (c *collidersImpl) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.boxes)
}

func (c *collidersImpl) Overlap(origin mgl32.Vec3, radius float32, mask LayerMask) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	hits := 0
	for _, b := range c.boxes {
		if mask.Contains(b.Layer) && b.OverlapsSphere(origin, radius) {
			hits++
		}
	}
	return hits
}

// Probe checks for ground under a character's feet.
type Probe struct {
	sensor Sensor
	radius float32
	offset mgl32.Vec3
	mask   LayerMask
}

// NewProbe creates a feet probe over a sensor. The sensor is required and NewProbe
// panics if it is nil.
//
// Parameters:
//   - sensor: the overlap sensor (must not be nil)
//   - radius: sphere radius of the check
//   - mask: walkable layers
//   - offset: offset from the character position to the sphere center
//
// Returns:
//   - *Probe: the new probe
func NewProbe(sensor Sensor, radius float32, mask LayerMask, offset mgl32.Vec3) *Probe {
	if sensor == nil {
		panic("ground: NewProbe requires a non-nil Sensor")
	}
	return &Probe{sensor: sensor, radius: radius, offset: offset, mask: mask}
}

// Grounded reports whether any walkable collider touches the feet sphere.
//
// Parameters:
//   - feet: the character's feet position in world space
//
// Returns:
//   - bool: true when at least one collider overlaps
func (p *Probe) Grounded(feet mgl32.Vec3) bool {
	return p.sensor.Overlap(feet.Add(p.offset), p.radius, p.mask) > 0
}

// Radius returns the probe's sphere radius.
func (p *Probe) Radius() float32 {
	return p.radius
}
