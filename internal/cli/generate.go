package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpack/codec"
	"github.com/katalvlaran/lvpack/knapsack"
)

func newGenerateCommand(s Streams) *cobra.Command {
	var (
		seed   int64
		format string
		cfg    = knapsack.DefaultRandomConfig()
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a deterministic random problem",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			f, err := codec.ParseFormat(format)
			if err != nil {
				return err
			}
			p, err := knapsack.Random(seed, cfg)
			if err != nil {
				return err
			}

			return codec.EncodeProblem(s.Out, f, p)
		},
	}

	fs := cmd.Flags()
	fs.Int64Var(&seed, "seed", 0, "random seed (0 selects the fixed default)")
	fs.StringVar(&format, "format", string(codec.TOML), "output format: toml, yaml or json")
	fs.IntVar(&cfg.Dims, "dims", cfg.Dims, "number of resource dimensions")
	fs.IntVar(&cfg.Items, "items", cfg.Items, "number of item types")
	fs.IntVar(&cfg.MaxBound, "max-bound", cfg.MaxBound, "largest bound per dimension")
	fs.IntVar(&cfg.MaxCost, "max-cost", cfg.MaxCost, "largest per-unit cost")
	fs.IntVar(&cfg.MaxCount, "max-count", cfg.MaxCount, "largest max count")
	fs.Float64Var(&cfg.MaxValue, "max-value", cfg.MaxValue, "largest per-unit value")

	return cmd
}
