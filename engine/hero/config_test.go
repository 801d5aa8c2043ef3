package hero

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hero.yaml")
	doc := `
idleReturn:
  inactivityTimeout: 1500ms
  returnDuration: 4s
orbit:
  maxDistance: 30
device:
  tabletMaxWidth: 1280
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	def := DefaultConfig()
	if cfg.IdleReturn.InactivityTimeout != 1500*time.Millisecond {
		t.Errorf("inactivityTimeout = %v", cfg.IdleReturn.InactivityTimeout)
	}
	if cfg.IdleReturn.ReturnDuration != 4*time.Second {
		t.Errorf("returnDuration = %v", cfg.IdleReturn.ReturnDuration)
	}
	if cfg.IdleReturn.WatchdogInterval != def.IdleReturn.WatchdogInterval {
		t.Errorf("watchdogInterval lost its default: %v", cfg.IdleReturn.WatchdogInterval)
	}
	if cfg.Orbit.MaxDistance != 30 || cfg.Orbit.MinDistance != def.Orbit.MinDistance {
		t.Errorf("orbit distances = [%v, %v]", cfg.Orbit.MinDistance, cfg.Orbit.MaxDistance)
	}
	if cfg.Device.TabletMaxWidth != 1280 || cfg.Device.MobileMaxWidth != 768 {
		t.Errorf("device = %+v", cfg.Device)
	}
	if cfg.Follower != def.Follower {
		t.Errorf("follower changed: %+v", cfg.Follower)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, doc string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	tests := []struct {
		name    string
		path    string
		invalid bool
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), false},
		{"bad yaml", write("bad.yaml", "orbit: [1, 2"), false},
		{"integer duration", write("int.yaml", "idleReturn:\n  returnDuration: 2000\n"), false},
		{"inverted distances", write("dist.yaml", "orbit:\n  minDistance: 50\n"), true},
		{"polar beyond 180", write("polar.yaml", "orbit:\n  maxPolarDegrees: 200\n"), true},
		{"zero damping", write("damp.yaml", "follower:\n  hoverDamping: 0\n"), true},
		{"breakpoints out of order", write("dev.yaml", "device:\n  mobileMaxWidth: 2000\n"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestWriteConfigLoadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.IdleReturn.IdleThreshold = 7 * time.Second
	cfg.Orbit.ZoomStep = 0.25

	if err := cfg.WriteConfig(path); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != cfg {
		t.Errorf("loaded %+v, want %+v", got, cfg)
	}
}
