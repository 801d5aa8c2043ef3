package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/oxy-hero/internal/showcase"
	"github.com/spf13/cobra"
)

var opts = showcase.DefaultOptions()

var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Hero showcase camera in a native window",
	Long: `showcase opens a window with a focal node that turns toward the camera while the
cursor hovers it. Drag orbits the camera, the wheel zooms, and after a few seconds
without interaction the camera glides back to its home pose.

Keys: R returns home, Z toggles wheel zoom, Esc quits.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := opts.LoadConfig()
		if err != nil {
			return err
		}
		if opts.DumpConfig {
			return showcase.DumpConfig(cmd.OutOrStdout(), cfg)
		}
		if err := opts.Validate(); err != nil {
			return err
		}
		return run(opts, cfg)
	},
}

func init() {
	// GLFW must be driven from the main OS thread.
	runtime.LockOSThread()
	showcase.BindFlags(rootCmd, &opts)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
