package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	log "github.com/goose121/bimultimap/internal/logging"
	"github.com/goose121/bimultimap/pkg/cmd/bench"
)

func RegisterBenchFlags(cmd *cobra.Command, config *bench.Config) {
	defaults := bench.NewConfigWithOptionsAndDefaults()

	cmd.Flags().Uint64Var(&config.Rows, "rows", defaults.Rows, "number of rows in the bucket grid (selected by key hash)")
	cmd.Flags().Uint64Var(&config.Cols, "cols", defaults.Cols, "number of columns in the bucket grid (selected by value hash)")
	cmd.Flags().Uint64Var(&config.Relations, "relations", defaults.Relations, "number of random relations to insert")
	cmd.Flags().Uint64Var(&config.KeySpace, "key-space", defaults.KeySpace, "number of distinct keys to draw from")
	cmd.Flags().Uint64Var(&config.ValueSpace, "value-space", defaults.ValueSpace, "number of distinct values to draw from")
	cmd.Flags().Uint64Var(&config.Lookups, "lookups", defaults.Lookups, "number of lookups to time in each direction")
	cmd.Flags().StringVar(&config.Hasher, "hasher", defaults.Hasher, `hasher to use for keys and values ("`+strings.Join(bench.Hashers, `", "`)+`")`)
	cmd.Flags().Uint64Var(&config.Seed, "seed", defaults.Seed, "seed for the workload generator; 0 picks a random seed")
	cmd.Flags().BoolVar(&config.Verify, "verify", defaults.Verify, "check every lookup against a reference model")
	cmd.Flags().BoolVar(&config.Progress, "progress", isatty.IsTerminal(os.Stderr.Fd()), "render a progress bar while inserting")
}

func NewBenchCommand(programName string, config *bench.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "bench",
		Short:   "insert random relations and time lookups by key and by value",
		Example: BenchExample(programName),
		Args:    cobra.NoArgs,
		PreRunE: DefaultPreRunE(programName),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Ctx(ctx).Debug().Interface("config", config.DebugMap()).Msg("configuration")

			b, err := config.Complete()
			if err != nil {
				return err
			}

			report, err := b.Run(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			report.Print(cmd.OutOrStdout())
			return nil
		},
	}
}
