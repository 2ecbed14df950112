package main

import (
	"context"
	"os"

	log "github.com/goose121/bimultimap/internal/logging"
	"github.com/goose121/bimultimap/pkg/cmd"
	"github.com/goose121/bimultimap/pkg/cmd/bench"
)

func main() {
	rootCmd := cmd.NewRootCommand("bimultimap")
	cmd.RegisterRootFlags(rootCmd)

	benchConfig := bench.NewConfigWithOptionsAndDefaults()
	benchCmd := cmd.NewBenchCommand(rootCmd.Use, benchConfig)
	cmd.RegisterBenchFlags(benchCmd, benchConfig)
	rootCmd.AddCommand(benchCmd)

	rootCmd.AddCommand(cmd.NewVersionCommand(rootCmd.Use))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Err(err).Msg("terminated with errors")
		os.Exit(1)
	}
}
