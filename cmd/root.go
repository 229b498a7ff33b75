package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
	"github.com/thenoetrevino/focusflow/internal/cli/board"
	"github.com/thenoetrevino/focusflow/internal/cli/list"
	"github.com/thenoetrevino/focusflow/internal/cli/reset"
	"github.com/thenoetrevino/focusflow/internal/cli/task"
	"github.com/thenoetrevino/focusflow/internal/config"
	"github.com/thenoetrevino/focusflow/internal/logging"
)

// NewRootCommand builds the focusflow command tree
func NewRootCommand() *cobra.Command {
	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:   "focusflow",
		Short: "focusflow - a kanban board for focused work",
		Long: `focusflow keeps boards of ordered lists and tasks in a local SQLite
database. Moves are applied immediately and saved in the background; a failed
save is rolled back.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				err = fmt.Errorf("failed to load config: %w", err)
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return &cli.ExitCodeError{Code: cli.ExitDataErr, Err: err}
			}
			closer, err := logging.Init(cfg.Log.Path, cfg.Log.Level)
			if err != nil {
				// Logging is best effort; commands still work without a log file
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging disabled: %v\n", err)
				return nil
			}
			logCloser = closer
			slog.Debug("command started", "command", cmd.CommandPath())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				_ = logCloser.Close()
			}
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		reportUsageError(err)
		return &cli.ExitCodeError{Code: cli.ExitUsage, Err: err}
	})

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(list.ListCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(reset.ResetCmd())

	return rootCmd
}

// ExitCode translates the error returned by the root command into a process
// exit code. Errors cobra produced before a command ran (missing required
// flags, unknown commands) are reported here.
func ExitCode(err error) int {
	if err == nil {
		return cli.ExitSuccess
	}

	// ExitCodeErrors were reported where they were created
	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	reportUsageError(err)
	return cli.ExitUsage
}

func reportUsageError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	fmt.Fprintln(os.Stderr, "Run 'focusflow --help' for usage.")
}

// Execute runs the CLI and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return ExitCode(NewRootCommand().ExecuteContext(ctx))
}
