package movement

// Tuning holds every numeric knob of the movement simulation. Values are in
// world units and seconds; angles are in degrees.
type Tuning struct {
	Gravity               float64 `json:"gravity" mapstructure:"gravity"`
	Friction              float64 `json:"friction" mapstructure:"friction"`
	AirFriction           float64 `json:"airFriction" mapstructure:"airFriction"`
	Acceleration          float64 `json:"acceleration" mapstructure:"acceleration"`
	AirAcceleration       float64 `json:"airAcceleration" mapstructure:"airAcceleration"`
	SlopeAcceleration     float64 `json:"slopeAcceleration" mapstructure:"slopeAcceleration"`
	MaxMovement           float64 `json:"maxMovement" mapstructure:"maxMovement"`
	MaxAirMovement        float64 `json:"maxAirMovement" mapstructure:"maxAirMovement"`
	JumpVelocity          float64 `json:"jumpVelocity" mapstructure:"jumpVelocity"`
	JumpReleaseMultiplier float64 `json:"jumpReleaseMultiplier" mapstructure:"jumpReleaseMultiplier"`
	JumpFrameForgiveness  int     `json:"jumpFrameForgiveness" mapstructure:"jumpFrameForgiveness"`
	XTerminalVelocity     float64 `json:"xTerminalVelocity" mapstructure:"xTerminalVelocity"`
	YTerminalVelocity     float64 `json:"yTerminalVelocity" mapstructure:"yTerminalVelocity"`
	GroundCheckDistance   float64 `json:"groundCheckDistance" mapstructure:"groundCheckDistance"`
	MaxWalkableSlopeAngle float64 `json:"maxWalkableSlopeAngle" mapstructure:"maxWalkableSlopeAngle"`
	SlowSlope             float64 `json:"slowSlope" mapstructure:"slowSlope"`
}

// Clamp forces the constrained knobs into their valid ranges.
func (t *Tuning) Clamp() {
	t.Gravity = clampRange(t.Gravity, 0, 50)
	t.Friction = clampRange(t.Friction, 0, 50)
	t.JumpReleaseMultiplier = clampRange(t.JumpReleaseMultiplier, 0, 1)
	if t.JumpFrameForgiveness < 0 {
		t.JumpFrameForgiveness = 0
	}
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
