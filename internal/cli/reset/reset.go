// Package reset implements the reset command
package reset

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
)

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every board, list and task",
		Long: `Delete all data. This cannot be undone.

Examples:
  focusflow reset
  focusflow reset --force --json
`,
		RunE: runReset,
	}

	cli.AddForceFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	ok, err := cli.Confirm(cmd, formatter, "Delete ALL boards, lists and tasks?", "This cannot be undone.")
	if err != nil {
		return formatter.Fail(err)
	}
	if !ok {
		formatter.Println("Cancelled")
		return nil
	}

	if err := cliInstance.App.ResetAll(ctx); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"reset": true})
	}
	formatter.Println("All data deleted")
	return nil
}
