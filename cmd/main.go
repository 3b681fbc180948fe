package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.toml"

func main() {
	var configPath string

	root := &cobra.Command{
		Use:           "sports-booking",
		Short:         "Sports facility booking service",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Без подкоманды запускаем сервер
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to config.toml")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run HTTP server",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runServer(cmd.Context(), configPath)
			},
		},
		&cobra.Command{
			Use:       "migrate [up|down|status|version]",
			Short:     "Run database migrations",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"up", "down", "status", "version"},
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd.Context(), configPath, args[0])
			},
		},
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
