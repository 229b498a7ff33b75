package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
)

// PinCmd returns the board pin subcommand
func PinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Toggle whether a board is pinned",
		RunE:  runPin,
	}

	cmd.Flags().String("id", "", "Board ID (required)")
	cli.MarkRequired(cmd, "id")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runPin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	id, _ := cmd.Flags().GetString("id")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	board, err := cliInstance.App.BoardService.TogglePin(ctx, id)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Machine() {
		return formatter.Success(board)
	}
	if board.IsPinned {
		formatter.Printf("Board '%s' pinned\n", board.Title)
	} else {
		formatter.Printf("Board '%s' unpinned\n", board.Title)
	}
	return nil
}
