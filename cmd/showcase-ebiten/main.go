package main

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-hero/internal/showcase"
	"github.com/spf13/cobra"
)

var opts = showcase.DefaultOptions()

var rootCmd = &cobra.Command{
	Use:   "showcase-ebiten",
	Short: "Hero showcase camera with a wireframe preview",
	Long: `showcase-ebiten runs the hero showcase inside an ebiten game loop and draws the
focal node, the orbit target and a floor grid as a wireframe, with the controller
state printed in the corner.

Keys: R returns home, Z toggles wheel zoom, Space counts as an interaction, Esc quits.`,
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
	showcase.BindFlags(rootCmd, &opts)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
