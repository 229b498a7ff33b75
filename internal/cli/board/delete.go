package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a board with all of its lists and tasks",
		Long: `Delete a board. Its lists and tasks are deleted with it.

Examples:
  focusflow board delete --id board-...
  focusflow board delete --id board-... --force --json
`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Board ID (required)")
	cli.MarkRequired(cmd, "id")

	cli.AddForceFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	id, _ := cmd.Flags().GetString("id")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	board, err := cliInstance.App.BoardService.GetBoard(ctx, id)
	if err != nil {
		return formatter.Fail(err)
	}

	ok, err := cli.Confirm(cmd, formatter,
		fmt.Sprintf("Delete board '%s'?", board.Title),
		"All of its lists and tasks are deleted too.")
	if err != nil {
		return formatter.Fail(err)
	}
	if !ok {
		formatter.Println("Cancelled")
		return nil
	}

	if err := cliInstance.App.BoardService.DeleteBoard(ctx, id); err != nil {
		return formatter.Fail(err)
	}

	if formatter.Machine() {
		return formatter.Success(board)
	}
	formatter.Printf("Board '%s' deleted\n", board.Title)
	return nil
}
