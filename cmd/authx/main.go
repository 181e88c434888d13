package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("authx failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "authx",
		Short:         "Issue and verify bearer tokens for local development and debugging",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts.envFile)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env", defaultEnvPath(), "Optional path to .env file (env AUTHX_ENV_FILE)")
	cmd.AddCommand(newIssueCommand(opts), newVerifyCommand(opts))
	return cmd
}

type rootOptions struct {
	envFile string
	cfg     config
	logger  *slog.Logger
}

func defaultEnvPath() string {
	if path := os.Getenv("AUTHX_ENV_FILE"); path != "" {
		return path
	}
	return ".env"
}
