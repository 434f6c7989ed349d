package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Basis vectors for the right-handed, Y-up world used by every controller.
// A character with identity orientation faces ForwardAxis.
var (
	UpAxis      = mgl32.Vec3{0, 1, 0}
	RightAxis   = mgl32.Vec3{1, 0, 0}
	ForwardAxis = mgl32.Vec3{0, 0, -1}
)

// Clamp01 clamps a value to the [0, 1] range.
//
// Parameters:
//   - v: the value to clamp
//
// Returns:
//   - float32: v limited to [0, 1]
func Clamp01(v float32) float32 {
	return mgl32.Clamp(v, 0, 1)
}

// MoveTowards moves current toward target by at most maxDelta.
// The target is returned exactly once it is within maxDelta.
//
// Parameters:
//   - current: the starting value
//   - target: the value to approach
//   - maxDelta: the largest change allowed in this call
//
// Returns:
//   - float32: the stepped value
func MoveTowards(current, target, maxDelta float32) float32 {
	if float32(math.Abs(float64(target-current))) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// MoveTowardsVec3 moves the current vector toward the target by at most maxDistance units of length.
// The target is returned exactly once the remaining distance is within maxDistance.
//
// Parameters:
//   - current: the starting vector
//   - target: the vector to approach
//   - maxDistance: the largest length of the change allowed in this call
//
// Returns:
//   - mgl32.Vec3: the stepped vector
func MoveTowardsVec3(current, target mgl32.Vec3, maxDistance float32) mgl32.Vec3 {
	diff := target.Sub(current)
	dist := diff.Len()
	if dist == 0 || (maxDistance >= 0 && dist <= maxDistance) {
		return target
	}
	return current.Add(diff.Mul(maxDistance / dist))
}

// Repeat wraps t into the range [0, length).
//
// Parameters:
//   - t: the value to wrap
//   - length: the period, must be > 0
//
// Returns:
//   - float32: t wrapped into [0, length)
func Repeat(t, length float32) float32 {
	return mgl32.Clamp(t-float32(math.Floor(float64(t/length)))*length, 0, length)
}

// DeltaAngle returns the shortest signed difference from current to target in degrees.
//
// Parameters:
//   - current: the starting angle in degrees
//   - target: the destination angle in degrees
//
// Returns:
//   - float32: the difference in (-180, 180]
func DeltaAngle(current, target float32) float32 {
	delta := Repeat(target-current, 360)
	if delta > 180 {
		delta -= 360
	}
	return delta
}

// MoveTowardsAngle is MoveTowards for angles in degrees, travelling the short way around.
// The unwrapped target is returned once it is within maxDelta so accumulated angles
// never snap back into [0, 360).
//
// Parameters:
//   - current: the starting angle in degrees
//   - target: the destination angle in degrees
//   - maxDelta: the largest angular change allowed in this call
//
// Returns:
//   - float32: the stepped angle
func MoveTowardsAngle(current, target, maxDelta float32) float32 {
	delta := DeltaAngle(current, target)
	if -maxDelta < delta && delta < maxDelta {
		return target
	}
	return MoveTowards(current, current+delta, maxDelta)
}

// YawRotation builds the body orientation for a yaw angle in degrees.
// Positive yaw turns to the right when seen from above, which is a negative
// rotation about UpAxis in this right-handed world.
//
// Parameters:
//   - yawDegrees: the yaw angle in degrees
//
// Returns:
//   - mgl32.Quat: the rotation about UpAxis
func YawRotation(yawDegrees float32) mgl32.Quat {
	return mgl32.QuatRotate(-mgl32.DegToRad(yawDegrees), UpAxis)
}

// PitchRotation builds the head tilt for a pitch angle in degrees.
// Positive pitch looks up.
//
// Parameters:
//   - pitchDegrees: the pitch angle in degrees
//
// Returns:
//   - mgl32.Quat: the rotation about RightAxis
func PitchRotation(pitchDegrees float32) mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(pitchDegrees), RightAxis)
}

// YawFromRotation extracts the yaw in degrees (YawRotation convention) from an orientation.
// Only the horizontal heading of the rotated ForwardAxis is considered.
//
// Parameters:
//   - q: the orientation to read
//
// Returns:
//   - float32: yaw in degrees, in (-180, 180]
func YawFromRotation(q mgl32.Quat) float32 {
	f := q.Rotate(ForwardAxis)
	return mgl32.RadToDeg(float32(math.Atan2(float64(f.X()), float64(-f.Z()))))
}

// PitchFromRotation extracts the pitch in degrees (PitchRotation convention) from a head tilt.
//
// Parameters:
//   - q: the local head orientation to read
//
// Returns:
//   - float32: pitch in degrees, in [-90, 90]
func PitchFromRotation(q mgl32.Quat) float32 {
	f := q.Rotate(ForwardAxis)
	horizontal := math.Hypot(float64(f.X()), float64(f.Z()))
	return mgl32.RadToDeg(float32(math.Atan2(float64(f.Y()), horizontal)))
}

// Slerp spherically interpolates between two orientations along the shortest arc.
//
// Parameters:
//   - from: the starting orientation
//   - to: the destination orientation
//   - t: interpolation factor in [0, 1]
//
// Returns:
//   - mgl32.Quat: the interpolated orientation
func Slerp(from, to mgl32.Quat, t float32) mgl32.Quat {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	// q and -q encode the same rotation; flip so the arc is the short one.
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl32.QuatSlerp(from, to, t)
}
