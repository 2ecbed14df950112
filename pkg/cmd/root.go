package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jzelinskie/cobrautil/v2/cobrazerolog"
	"github.com/spf13/cobra"
)

func RegisterRootFlags(cmd *cobra.Command) {
	cobrazerolog.New().RegisterFlags(cmd.PersistentFlags())
}

// BenchExample creates an example usage string with the provided program name.
func BenchExample(programName string) string {
	return fmt.Sprintf(`	%[1]s:
		%[3]s bench --rows 64 --cols 64 --relations 100000

	%[2]s:
		%[3]s bench --hasher xxhash --seed 42 --verify
`,
		color.YellowString("Small grid with a random seed"),
		color.GreenString("Reproducible run checked against a reference model"),
		programName,
	)
}

func NewRootCommand(programName string) *cobra.Command {
	return &cobra.Command{
		Use:           programName,
		Short:         "A bidirectional multimap backed by a grid of hash buckets",
		Long:          "Exercise and measure a many-to-many map that answers lookups by key or by value",
		Example:       BenchExample(programName),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
}
