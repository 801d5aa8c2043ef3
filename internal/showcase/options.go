package showcase

import (
	"fmt"
	"io"

	"github.com/Carmen-Shannon/oxy-hero/common"
	"github.com/Carmen-Shannon/oxy-hero/engine/hero"
	"github.com/spf13/cobra"
)

// Options holds the command-line settings shared by every showcase host.
type Options struct {
	ConfigPath string
	Title      string
	Width      int
	Height     int
	FPS        float64
	Profile    bool
	Verbose    bool
	DumpConfig bool
}

// DefaultOptions returns the settings used when no flags are given.
//
// Returns:
//   - Options: the defaults
func DefaultOptions() Options {
	return Options{
		Title:  "oxy-hero",
		Width:  1280,
		Height: 720,
		FPS:    60,
	}
}

// BindFlags registers the shared flags on cmd, writing into o.
//
// Parameters:
//   - cmd: the command to register flags on
//   - o: destination for parsed values; its current fields are the flag defaults
func BindFlags(cmd *cobra.Command, o *Options) {
	flags := cmd.Flags()
	flags.StringVarP(&o.ConfigPath, "config", "c", o.ConfigPath, "YAML tuning file overlaid on the built-in defaults")
	flags.StringVar(&o.Title, "title", o.Title, "window title prefix")
	flags.IntVar(&o.Width, "width", o.Width, "initial viewport width in pixels")
	flags.IntVar(&o.Height, "height", o.Height, "initial viewport height in pixels")
	flags.Float64Var(&o.FPS, "fps", o.FPS, "frame rate of the engine loop")
	flags.BoolVar(&o.Profile, "profile", o.Profile, "log frame rate and memory statistics every second")
	flags.BoolVarP(&o.Verbose, "verbose", "v", o.Verbose, "log controller state transitions")
	flags.BoolVar(&o.DumpConfig, "dump-config", o.DumpConfig, "print the effective configuration as YAML and exit")
}

// Validate checks the viewport and frame rate settings.
//
// Returns:
//   - error: a description of the first invalid setting, or nil
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %v", o.FPS)
	}
	return nil
}

// LoadConfig returns the configuration named by ConfigPath, or the defaults when it is empty.
//
// Returns:
//   - hero.Config: the effective configuration
//   - error: error if the file cannot be read or is invalid
func (o Options) LoadConfig() (hero.Config, error) {
	if o.ConfigPath == "" {
		return hero.DefaultConfig(), nil
	}
	return hero.LoadConfig(o.ConfigPath)
}

// WindowTitle returns the configured title prefix, falling back to the default.
func (o Options) WindowTitle() string {
	return common.Coalesce(o.Title, DefaultOptions().Title)
}

// DumpConfig writes cfg to w as YAML.
//
// Parameters:
//   - w: destination
//   - cfg: the configuration to print
//
// Returns:
//   - error: error if encoding or writing fails
func DumpConfig(w io.Writer, cfg hero.Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
