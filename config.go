package pong

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) for every configuration problem.
var ErrInvalidConfig = errors.New("invalid config")

// Variant names accepted by [Preset] and the "variant" config key.
const (
	VariantClassic = "classic"
	VariantCurve   = "curve"
)

// ControlMode selects how paddle velocity is driven.
type ControlMode uint8

const (
	// ControlManual adds the held keys to the damped paddle velocity.
	ControlManual ControlMode = iota
	// ControlAutopilot moves both paddles together towards the pointer
	// while it is inside the play area. It is never the default.
	ControlAutopilot
)

var controlModeName = map[ControlMode]string{
	ControlManual:    "manual",
	ControlAutopilot: "autopilot",
}

func (m ControlMode) String() string {
	return controlModeName[m]
}

// MarshalText implements encoding.TextMarshaler.
func (m ControlMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ControlMode) UnmarshalText(text []byte) error {
	for mode, name := range controlModeName {
		if name == string(text) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("%w: unknown control mode %q", ErrInvalidConfig, text)
}

// Theme describes how hosts should present the match. The simulation never
// reads it. Colors are "#rrggbb" strings.
type Theme struct {
	Background string  `yaml:"background"`
	Ball       string  `yaml:"ball"`
	Red        string  `yaml:"red"`
	Blue       string  `yaml:"blue"`
	Text       string  `yaml:"text"`
	FontSize   float64 `yaml:"font_size"`

	// Optional image files. When set, hosts that can draw images stretch
	// them over the simulated sizes.
	BackgroundImage string `yaml:"background_image,omitempty"`
	BallImage       string `yaml:"ball_image,omitempty"`
	PaddleImage     string `yaml:"paddle_image,omitempty"`
}

// Config parameterizes a Session. Both game variants are presets
// of the same simulation; see [ClassicConfig] and [CurveConfig].
type Config struct {
	Variant string `yaml:"variant"`

	// Bounds is the play area used to place the paddles and the ball before
	// the first frame. Later frames use the bounds passed to Update.
	Bounds Bounds `yaml:"bounds"`

	BallSize   Vec2    `yaml:"ball_size"`
	BallMass   float64 `yaml:"ball_mass"`
	PaddleSize Vec2    `yaml:"paddle_size"`
	PaddleMass float64 `yaml:"paddle_mass"`

	// StartSpeed is the horizontal speed of every serve.
	StartSpeed float64 `yaml:"start_speed"`
	// PaddleDamping multiplies paddle velocity every frame.
	PaddleDamping float64 `yaml:"paddle_damping"`
	// Speedup multiplies the ball's horizontal velocity every frame.
	Speedup float64 `yaml:"speedup"`

	// Curve enables the spin mechanic.
	Curve bool `yaml:"curve"`
	// CurveFactor scales paddle velocity into ball curve on contact.
	CurveFactor float64 `yaml:"curve_factor"`
	// CurveDamping multiplies the ball's curve every frame.
	CurveDamping float64 `yaml:"curve_damping"`
	// CurveTurn scales curve into the per-frame velocity rotation angle.
	CurveTurn float64      `yaml:"curve_turn"`
	Rotation  RotationMode `yaml:"rotation"`

	Shape   CollisionShape `yaml:"shape"`
	Control ControlMode    `yaml:"control"`
	// AutopilotSpeed scales pointer distance into paddle speed.
	AutopilotSpeed float64 `yaml:"autopilot_speed"`

	// OutOfBoundsMargin is how far the ball may stray past an edge before
	// it is recentered unconditionally.
	OutOfBoundsMargin float64 `yaml:"out_of_bounds_margin"`

	Theme Theme `yaml:"theme"`
}

// ClassicConfig returns the plain variant: box collisions, slow speedup and
// no curve.
func ClassicConfig() Config {
	return Config{
		Variant:           VariantClassic,
		Bounds:            Bounds{W: 800, H: 600},
		BallSize:          Vec2{40, 40},
		BallMass:          3,
		PaddleSize:        Vec2{30, 150},
		PaddleMass:        1,
		StartSpeed:        3,
		PaddleDamping:     0.95,
		Speedup:           1.0001,
		CurveFactor:       0,
		CurveDamping:      1,
		CurveTurn:         0,
		Rotation:          RotateLegacy,
		Shape:             ShapeBox,
		Control:           ControlManual,
		AutopilotSpeed:    0.03,
		OutOfBoundsMargin: 30,
		Theme: Theme{
			Background: "#111111",
			Ball:       "#00ff00",
			Red:        "#ff0000",
			Blue:       "#0000bb",
			Text:       "#4a1850",
			FontSize:   156,
		},
	}
}

// CurveConfig returns the spin variant: circle collisions, faster speedup
// and paddle-imparted curve.
func CurveConfig() Config {
	cfg := ClassicConfig()
	cfg.Variant = VariantCurve
	cfg.Speedup = 1.001
	cfg.Curve = true
	cfg.CurveFactor = 0.02
	cfg.CurveDamping = 0.98
	cfg.CurveTurn = 0.05
	cfg.Shape = ShapeCircle
	cfg.Theme = Theme{
		Background: "#0b1d2a",
		Ball:       "#ffffff",
		Red:        "#e63946",
		Blue:       "#457b9d",
		Text:       "#1d3557",
		FontSize:   156,
	}
	return cfg
}

// Preset returns the configuration for a variant name. The empty name
// selects the classic variant.
func Preset(variant string) (Config, error) {
	switch variant {
	case "", VariantClassic:
		return ClassicConfig(), nil
	case VariantCurve:
		return CurveConfig(), nil
	}
	return Config{}, fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, variant)
}

// LoadConfig reads a YAML configuration. The "variant" key picks the preset
// and every other key present in the document overrides it.
func LoadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var head struct {
		Variant string `yaml:"variant"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg, err := Preset(head.Variant)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if name, ok := c.firstNonFinite(); ok {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidConfig, name)
	}
	switch {
	case c.Bounds.W <= 0 || c.Bounds.H <= 0:
		return fmt.Errorf("%w: bounds must be positive, got %vx%v", ErrInvalidConfig, c.Bounds.W, c.Bounds.H)
	case c.BallSize.X <= 0 || c.BallSize.Y <= 0:
		return fmt.Errorf("%w: ball_size must be positive", ErrInvalidConfig)
	case c.PaddleSize.X <= 0 || c.PaddleSize.Y <= 0:
		return fmt.Errorf("%w: paddle_size must be positive", ErrInvalidConfig)
	case c.StartSpeed <= 0:
		return fmt.Errorf("%w: start_speed must be positive", ErrInvalidConfig)
	case c.PaddleDamping <= 0 || c.PaddleDamping > 1:
		return fmt.Errorf("%w: paddle_damping must be in (0, 1], got %v", ErrInvalidConfig, c.PaddleDamping)
	case c.Speedup < 1:
		return fmt.Errorf("%w: speedup must be at least 1, got %v", ErrInvalidConfig, c.Speedup)
	case c.Curve && (c.CurveDamping <= 0 || c.CurveDamping > 1):
		return fmt.Errorf("%w: curve_damping must be in (0, 1], got %v", ErrInvalidConfig, c.CurveDamping)
	case c.OutOfBoundsMargin < 0:
		return fmt.Errorf("%w: out_of_bounds_margin must not be negative", ErrInvalidConfig)
	}
	return nil
}

// firstNonFinite returns the key of the first float field that is NaN or
// infinite. The range checks in Validate are all false for NaN.
func (c Config) firstNonFinite() (string, bool) {
	fields := []struct {
		name string
		v    float64
	}{
		{"bounds", c.Bounds.W}, {"bounds", c.Bounds.H},
		{"ball_size", c.BallSize.X}, {"ball_size", c.BallSize.Y},
		{"ball_mass", c.BallMass},
		{"paddle_size", c.PaddleSize.X}, {"paddle_size", c.PaddleSize.Y},
		{"paddle_mass", c.PaddleMass},
		{"start_speed", c.StartSpeed},
		{"paddle_damping", c.PaddleDamping},
		{"speedup", c.Speedup},
		{"curve_factor", c.CurveFactor},
		{"curve_damping", c.CurveDamping},
		{"curve_turn", c.CurveTurn},
		{"autopilot_speed", c.AutopilotSpeed},
		{"out_of_bounds_margin", c.OutOfBoundsMargin},
		{"theme.font_size", c.Theme.FontSize},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return f.name, true
		}
	}
	return "", false
}
