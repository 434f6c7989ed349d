package locomotion

// Stamina is the optional capability that can veto running.
// A Controller built without one behaves as if every TryRun succeeds.
type Stamina interface {
	// TryRun spends stamina for one running tick.
	//
	// Returns:
	//   - bool: true if running is allowed this tick
	TryRun() bool

	// Walk records one walking tick.
	Walk()

	// Rest records one idle or airborne tick.
	Rest()
}

// AnimationSink receives the character's speed every tick.
type AnimationSink interface {
	// SetSpeed forwards the current velocity magnitude.
	//
	// Parameters:
	//   - speed: velocity magnitude in units per second
	SetSpeed(speed float32)
}

// SpeedProfile is a (speed, acceleration) pair selected per tick.
type SpeedProfile struct {
	// Speed is the target speed in units per second.
	Speed float32 `yaml:"speed"`
	// Acceleration is the largest velocity change in units per second squared.
	Acceleration float32 `yaml:"acceleration"`
}
