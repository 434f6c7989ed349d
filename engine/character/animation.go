package character

import (
	"math"
	"sync/atomic"
)

// SpeedParameter is an animation sink that stores the latest speed for any reader.
type SpeedParameter struct {
	bits atomic.Uint32
}

// SetSpeed stores the speed.
func (p *SpeedParameter) SetSpeed(speed float32) {
	p.bits.Store(math.Float32bits(speed))
}

// Speed returns the last stored speed.
func (p *SpeedParameter) Speed() float32 {
	return math.Float32frombits(p.bits.Load())
}
