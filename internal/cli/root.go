// Package cli implements hrctl, an interactive console for the employee
// directory.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"hr-directory/internal/app"
	"hr-directory/internal/config"
	"hr-directory/internal/seed"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "hrctl",
		Short:         "Employee directory console",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log directory events to stderr")

	logger := func() *slog.Logger {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	}

	rootCmd.AddCommand(newShellCmd(logger), newCheckSeedCmd())
	return rootCmd
}

func newShellCmd(logger func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session against a fresh directory",
		Long: `Start an interactive session. The directory is built from the
environment (ADMIN_PASSWORD, ADMIN_NAME, SEED_FILE, DB_DSN) and lives
only as long as the shell.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a, err := app.Bootstrap(cfg, logger())
			if err != nil {
				return err
			}

			var passwords PasswordReader
			if cmd.InOrStdin() == os.Stdin && IsTTY() {
				passwords = newTerminalPasswords(cmd.OutOrStdout())
			}
			fmt.Fprintln(cmd.OutOrStdout(), "type help for commands, quit to exit")
			return NewShell(a.Directory, cmd.InOrStdin(), cmd.OutOrStdout(), passwords).Run()
		},
	}
}

func newCheckSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-seed <file>",
		Short: "Validate a YAML roster without applying it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := seed.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d administrators, %d employees\n",
				args[0], len(r.Administrators), len(r.Employees))
			return nil
		},
	}
}
