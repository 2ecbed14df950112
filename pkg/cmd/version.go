package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "(unknown)"

// Version returns the main module version and Go toolchain recorded in the
// running binary.
func Version() (version, goVersion string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion, unknownVersion
	}

	version = info.Main.Version
	if version == "" {
		version = unknownVersion
	}
	return version, info.GoVersion
}

func NewVersionCommand(programName string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "displays the version of " + programName,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, goVersion := Version()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", programName, version, goVersion)
			return err
		},
	}
}
