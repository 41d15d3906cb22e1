package gamedata

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/windrider/internal/locomotion"
)

// MovementTuning holds ground and jump values, in engine units (cm, cm/s).
type MovementTuning struct {
	WalkSpeed        float64 `json:"walkSpeed" yaml:"walkSpeed"`
	SprintSpeed      float64 `json:"sprintSpeed" yaml:"sprintSpeed"`
	ExhaustedSpeed   float64 `json:"exhaustedSpeed" yaml:"exhaustedSpeed"`
	GroundAirControl float64 `json:"groundAirControl" yaml:"groundAirControl"`
	GlideAirControl  float64 `json:"glideAirControl" yaml:"glideAirControl"`
	JumpImpulse      float64 `json:"jumpImpulse" yaml:"jumpImpulse"`
	Gravity          float64 `json:"gravity" yaml:"gravity"`
}

// StaminaTuning holds the stamina pool. DepletionRate is in seconds.
type StaminaTuning struct {
	Max             float64 `json:"max" yaml:"max"`
	DepletionAmount float64 `json:"depletionAmount" yaml:"depletionAmount"`
	DepletionRate   float64 `json:"depletionRate" yaml:"depletionRate"`
}

// GlideTuning holds the simulated glide fall. Interval is in seconds.
type GlideTuning struct {
	Impulse   float64 `json:"impulse" yaml:"impulse"`
	Interval  float64 `json:"interval" yaml:"interval"`
	Clearance float64 `json:"clearance" yaml:"clearance"`
	Drag      float64 `json:"drag" yaml:"drag"`
}

// WindTunnelTuning holds wind tunnel defaults. TemporaryLifespan is in seconds.
type WindTunnelTuning struct {
	PushPerFrame      float64 `json:"pushPerFrame" yaml:"pushPerFrame"`
	TemporaryLifespan float64 `json:"temporaryLifespan" yaml:"temporaryLifespan"`
}

// Tuning is the full set of designer values, loaded from tuning.json.
type Tuning struct {
	Movement   MovementTuning   `json:"movement" yaml:"movement"`
	Stamina    StaminaTuning    `json:"stamina" yaml:"stamina"`
	Glide      GlideTuning      `json:"glide" yaml:"glide"`
	WindTunnel WindTunnelTuning `json:"windTunnel" yaml:"windTunnel"`
}

// LoadTuning loads the embedded tuning.json.
func LoadTuning() (Tuning, error) {
	t, err := Load[Tuning]("tuning.json")
	if err != nil {
		return Tuning{}, err
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning.json: %w", err)
	}
	return t, nil
}

// LoadTuningFile loads the embedded defaults and overlays the YAML file at
// path. Keys missing from the file keep their default. An empty path returns
// the defaults.
func LoadTuningFile(path string) (Tuning, error) {
	t, err := LoadTuning()
	if err != nil {
		return Tuning{}, err
	}
	if path == "" {
		return t, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse YAML from %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning file %s: %w", path, err)
	}
	return t, nil
}

// Validate checks the values the state machine and timers rely on.
func (t Tuning) Validate() error {
	var errs []error
	if t.Stamina.Max <= 0 {
		errs = append(errs, errors.New("stamina.max must be positive"))
	}
	if t.Stamina.DepletionAmount <= 0 {
		errs = append(errs, errors.New("stamina.depletionAmount must be positive"))
	}
	if t.Stamina.DepletionRate <= 0 {
		errs = append(errs, errors.New("stamina.depletionRate must be positive"))
	}
	if t.Glide.Interval <= 0 {
		errs = append(errs, errors.New("glide.interval must be positive"))
	}
	if t.Glide.Clearance < 0 {
		errs = append(errs, errors.New("glide.clearance must not be negative"))
	}
	if t.Movement.WalkSpeed <= 0 || t.Movement.SprintSpeed <= 0 || t.Movement.ExhaustedSpeed <= 0 {
		errs = append(errs, errors.New("movement speeds must be positive"))
	}
	return errors.Join(errs...)
}

// Params converts the tuning into locomotion parameters.
func (t Tuning) Params() locomotion.Params {
	return locomotion.Params{
		WalkSpeed:        t.Movement.WalkSpeed,
		SprintSpeed:      t.Movement.SprintSpeed,
		ExhaustedSpeed:   t.Movement.ExhaustedSpeed,
		GroundAirControl: t.Movement.GroundAirControl,
		GlideAirControl:  t.Movement.GlideAirControl,
		JumpImpulse:      t.Movement.JumpImpulse,
		GlideImpulse:     t.Glide.Impulse,
		GlideInterval:    Seconds(t.Glide.Interval),
		GlideClearance:   t.Glide.Clearance,
		StaminaMax:       t.Stamina.Max,
		DepletionAmount:  t.Stamina.DepletionAmount,
		DepletionRate:    Seconds(t.Stamina.DepletionRate),
	}
}

// Seconds converts fractional seconds to a duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
