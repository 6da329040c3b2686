package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// settingsName is the optional JSON tuning override file, looked up in the
// working directory as settingsName + ".json".
const settingsName = "crestwalker.cfg"

// LoadSettings reads the optional settings file over the built-in defaults
// and clamps the constrained knobs. A missing file is not an error.
func LoadSettings(configDir string) error {
	v := viper.New()

	v.SetDefault("movement.gravity", Movement.Gravity)
	v.SetDefault("movement.friction", Movement.Friction)
	v.SetDefault("movement.airFriction", Movement.AirFriction)
	v.SetDefault("movement.acceleration", Movement.Acceleration)
	v.SetDefault("movement.airAcceleration", Movement.AirAcceleration)
	v.SetDefault("movement.slopeAcceleration", Movement.SlopeAcceleration)
	v.SetDefault("movement.maxMovement", Movement.MaxMovement)
	v.SetDefault("movement.maxAirMovement", Movement.MaxAirMovement)
	v.SetDefault("movement.jumpVelocity", Movement.JumpVelocity)
	v.SetDefault("movement.jumpReleaseMultiplier", Movement.JumpReleaseMultiplier)
	v.SetDefault("movement.jumpFrameForgiveness", Movement.JumpFrameForgiveness)
	v.SetDefault("movement.xTerminalVelocity", Movement.XTerminalVelocity)
	v.SetDefault("movement.yTerminalVelocity", Movement.YTerminalVelocity)
	v.SetDefault("movement.groundCheckDistance", Movement.GroundCheckDistance)
	v.SetDefault("movement.maxWalkableSlopeAngle", Movement.MaxWalkableSlopeAngle)
	v.SetDefault("movement.slowSlope", Movement.SlowSlope)
	v.SetDefault("physics.stepHz", Physics.StepHz)

	v.SetConfigName(settingsName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read settings: %w", err)
		}
	}

	if err := v.UnmarshalKey("movement", &Movement); err != nil {
		return fmt.Errorf("parse movement settings: %w", err)
	}
	Movement.Clamp()

	if hz := v.GetFloat64("physics.stepHz"); hz > 0 {
		Physics.StepHz = hz
	}

	return nil
}
