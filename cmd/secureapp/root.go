package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/secureapp/secureapp-cli/internal/client/cli"
	"github.com/secureapp/secureapp-cli/internal/client/config"
	"github.com/secureapp/secureapp-cli/internal/logging"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the SecureApp client. Running it
// without a subcommand starts the interactive session at the root route.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secureapp",
		Short: "SecureApp - terminal client for the SecureApp authentication service",
		Long: `SecureApp is a terminal client for the SecureApp authentication service.
It signs in, registers accounts, verifies emails with a one-time code, and
shows the authenticated profile. Tokens are kept in a local state file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	cmd.PersistentFlags().String("server", "", "base URL of the SecureApp server")
	cmd.PersistentFlags().Duration("timeout", 0, "per-request timeout")
	cmd.PersistentFlags().String("token-file", "", "path of the token state file")
	cmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "", "log format (console, json)")

	cmd.AddCommand(NewLoginCmd())
	cmd.AddCommand(NewRegisterCmd())
	cmd.AddCommand(NewVerifyCmd())
	cmd.AddCommand(NewWhoamiCmd())
	cmd.AddCommand(NewLogoutCmd())

	return cmd
}

// newApp loads configuration with the command's flags bound and builds the
// fully wired client application.
func newApp(cmd *cobra.Command) (*cli.App, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	return cli.NewApp(cfg, log), nil
}
