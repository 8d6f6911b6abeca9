package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"insurance-portal/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		port string
		env  string
	)
	load := func() config.Config {
		cfg := config.Load()
		if port != "" {
			cfg.Port = port
		}
		if env != "" {
			cfg.Env = env
		}
		return cfg
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the portal API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), load())
		},
	}
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the demo sign-in accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listAccounts(cmd.OutOrStdout())
		},
	}

	root := &cobra.Command{
		Use:           "portal",
		Short:         "Insurance agency portal",
		SilenceUsage:  true,
		SilenceErrors: true,
		// bare "portal" serves
		RunE: serveCmd.RunE,
	}
	root.PersistentFlags().StringVar(&port, "port", "", "listen port (overrides API_PORT)")
	root.PersistentFlags().StringVar(&env, "env", "", "environment name (overrides APP_ENV)")
	root.AddCommand(serveCmd, accountsCmd)
	return root
}
