package hero

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid hero config")

// Config holds every tunable of the showcase controller.
//
// A YAML file only needs the fields it overrides; missing fields keep their defaults.
// Durations use Go duration strings such as "3s" or "1500ms".
type Config struct {
	Scene      SceneConfig      `yaml:"scene"`
	Follower   FollowerConfig   `yaml:"follower"`
	IdleReturn IdleReturnConfig `yaml:"idleReturn"`
	Orbit      OrbitConfig      `yaml:"orbit"`
	Device     DeviceConfig     `yaml:"device"`
}

// SceneConfig places the camera and focal node.
type SceneConfig struct {
	// CameraPosition is the camera's initial (home) position.
	CameraPosition [3]float32 `yaml:"cameraPosition"`
	// FovDegrees is the vertical field of view.
	FovDegrees float32 `yaml:"fovDegrees"`
	// FocalPosition is the position of the group holding the focal node.
	FocalPosition [3]float32 `yaml:"focalPosition"`
	// FocalRadius is the bounding radius of the focal node used for hover picking.
	FocalRadius float32 `yaml:"focalRadius"`
}

// FollowerConfig tunes the orientation follower.
type FollowerConfig struct {
	HoverScale     float32 `yaml:"hoverScale"`
	RestScale      float32 `yaml:"restScale"`
	HoverDamping   float32 `yaml:"hoverDamping"`
	RestDamping    float32 `yaml:"restDamping"`
	ScaleDamping   float32 `yaml:"scaleDamping"`
	RestYawDegrees float32 `yaml:"restYawDegrees"`
}

// IdleReturnConfig tunes the idle-return state machine.
type IdleReturnConfig struct {
	// InactivityTimeout is armed when hover ends.
	InactivityTimeout time.Duration `yaml:"inactivityTimeout"`
	// ReturnDuration is the length of the return animation.
	ReturnDuration time.Duration `yaml:"returnDuration"`
	// WatchdogInterval is the period of the fallback idle check.
	WatchdogInterval time.Duration `yaml:"watchdogInterval"`
	// IdleThreshold is the idle time after which the watchdog requests a return.
	IdleThreshold time.Duration `yaml:"idleThreshold"`
}

// OrbitConfig is the static orbit and zoom configuration.
type OrbitConfig struct {
	Target          [3]float32 `yaml:"target"`
	MinDistance     float32    `yaml:"minDistance"`
	MaxDistance     float32    `yaml:"maxDistance"`
	MinPolarDegrees float32    `yaml:"minPolarDegrees"`
	MaxPolarDegrees float32    `yaml:"maxPolarDegrees"`
	DampingFactor   float32    `yaml:"dampingFactor"`
	RotateSpeed     float32    `yaml:"rotateSpeed"`
	ZoomStep        float32    `yaml:"zoomStep"`
}

// DeviceConfig holds the viewport breakpoints used for device classification.
type DeviceConfig struct {
	MobileMaxWidth int     `yaml:"mobileMaxWidth"`
	TabletMaxWidth int     `yaml:"tabletMaxWidth"`
	MobileScale    float32 `yaml:"mobileScale"`
}

// DefaultConfig returns the stock showcase tuning.
//
// Returns:
//   - Config: the default configuration
func DefaultConfig() Config {
	return Config{
		Scene: SceneConfig{
			CameraPosition: [3]float32{0, 0, 15},
			FovDegrees:     45,
			FocalPosition:  [3]float32{0, -3.5, 0},
			FocalRadius:    2.5,
		},
		Follower: FollowerConfig{
			HoverScale:     1.02,
			RestScale:      1.0,
			HoverDamping:   0.05,
			RestDamping:    0.03,
			ScaleDamping:   0.10,
			RestYawDegrees: -45,
		},
		IdleReturn: IdleReturnConfig{
			InactivityTimeout: 3000 * time.Millisecond,
			ReturnDuration:    2000 * time.Millisecond,
			WatchdogInterval:  1000 * time.Millisecond,
			IdleThreshold:     5000 * time.Millisecond,
		},
		Orbit: OrbitConfig{
			MinDistance:     5,
			MaxDistance:     20,
			MinPolarDegrees: 36, // π/5
			MaxPolarDegrees: 90, // π/2
			DampingFactor:   0.05,
			RotateSpeed:     0.5,
			ZoomStep:        0.1,
		},
		Device: DeviceConfig{
			MobileMaxWidth: 768,
			TabletMaxWidth: 1024,
			MobileScale:    0.7,
		},
	}
}

// LoadConfig reads a YAML file and overlays it on DefaultConfig.
// The result is validated before it is returned.
//
// Parameters:
//   - path: path to the YAML file
//
// Returns:
//   - Config: the merged configuration
//   - error: read, parse or validation failure
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig writes c to path as YAML.
//
// Parameters:
//   - path: destination file
//
// Returns:
//   - error: marshal or write failure
func (c Config) WriteConfig(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// Marshal encodes c as YAML.
//
// Returns:
//   - []byte: the YAML document
//   - error: marshal failure
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Validate checks that every value is usable. All failures wrap ErrInvalidConfig.
//
// Returns:
//   - error: the first problem found, or nil
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if c.Scene.FovDegrees <= 0 || c.Scene.FovDegrees >= 180 {
		return invalid("scene.fovDegrees must be in (0, 180), got %g", c.Scene.FovDegrees)
	}
	if c.Scene.FocalRadius <= 0 {
		return invalid("scene.focalRadius must be positive, got %g", c.Scene.FocalRadius)
	}

	f := c.Follower
	for _, d := range []struct {
		name string
		v    float32
	}{
		{"hoverDamping", f.HoverDamping},
		{"restDamping", f.RestDamping},
		{"scaleDamping", f.ScaleDamping},
	} {
		if d.v <= 0 || d.v > 1 {
			return invalid("follower.%s must be in (0, 1], got %g", d.name, d.v)
		}
	}
	if f.HoverScale <= 0 || f.RestScale <= 0 {
		return invalid("follower scales must be positive")
	}

	ir := c.IdleReturn
	if ir.InactivityTimeout <= 0 || ir.ReturnDuration <= 0 || ir.WatchdogInterval <= 0 || ir.IdleThreshold <= 0 {
		return invalid("idleReturn durations must be positive")
	}

	o := c.Orbit
	if o.MinDistance <= 0 || o.MinDistance > o.MaxDistance {
		return invalid("orbit distance bounds [%g, %g] are not a positive range", o.MinDistance, o.MaxDistance)
	}
	if o.MinPolarDegrees < 0 || o.MinPolarDegrees > o.MaxPolarDegrees || o.MaxPolarDegrees > 180 {
		return invalid("orbit polar bounds [%g, %g] must lie within [0, 180]", o.MinPolarDegrees, o.MaxPolarDegrees)
	}
	if o.DampingFactor < 0 || o.DampingFactor > 1 {
		return invalid("orbit.dampingFactor must be in [0, 1], got %g", o.DampingFactor)
	}
	if o.RotateSpeed <= 0 {
		return invalid("orbit.rotateSpeed must be positive, got %g", o.RotateSpeed)
	}
	if o.ZoomStep <= 0 || o.ZoomStep >= 1 {
		return invalid("orbit.zoomStep must be in (0, 1), got %g", o.ZoomStep)
	}

	d := c.Device
	if d.MobileMaxWidth <= 0 || d.MobileMaxWidth > d.TabletMaxWidth {
		return invalid("device breakpoints mobile=%d tablet=%d are out of order", d.MobileMaxWidth, d.TabletMaxWidth)
	}
	if d.MobileScale <= 0 {
		return invalid("device.mobileScale must be positive, got %g", d.MobileScale)
	}
	return nil
}

// MinPolarAngle returns the lower polar bound in radians.
func (o OrbitConfig) MinPolarAngle() float32 {
	return mgl32.DegToRad(o.MinPolarDegrees)
}

// MaxPolarAngle returns the upper polar bound in radians.
func (o OrbitConfig) MaxPolarAngle() float32 {
	return mgl32.DegToRad(o.MaxPolarDegrees)
}

// TargetVec returns the orbit target as a vector.
func (o OrbitConfig) TargetVec() mgl32.Vec3 {
	return mgl32.Vec3(o.Target)
}
