// Package cli wires the lvpack commands: solving a problem document (the
// root command) and generating random problems.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpack/internal/config"
)

// Streams carries the process standard streams so commands can be driven
// from tests.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// NewRootCommand builds the lvpack command tree.
func NewRootCommand(s Streams) *cobra.Command {
	var configFile string
	v := config.NewViper()

	root := &cobra.Command{
		Use:   "lvpack",
		Short: "Solve multi-dimensional bounded knapsack problems",
		Long: `lvpack reads a problem (bound vector plus item types with value, max
count and per-dimension cost) and prints the quantity of each item that
maximizes total value without exceeding any bound.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			return runSolve(cmd.Context(), cfg, s)
		},
	}
	root.SetIn(s.In)
	root.SetOut(s.Out)
	root.SetErr(s.Err)

	root.Flags().StringVar(&configFile, "config", "", "config file (toml, yaml or json)")
	// BindFlags only fails on a nil flag set.
	_ = config.BindFlags(root.Flags(), v)

	root.AddCommand(newGenerateCommand(s))

	return root
}
