package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
	"github.com/thenoetrevino/focusflow/internal/cli/styles"
)

// ReorderCmd returns the board reorder subcommand
func ReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Move a board to another position",
		Long: `Move a board to a position in the board list. Positions start at 1.
Every board gets an explicit position afterwards.

Examples:
  focusflow board reorder --id board-... --position 1
`,
		RunE: runReorder,
	}

	cmd.Flags().String("id", "", "Board ID (required)")
	cmd.Flags().Int("position", 0, "Target position, 1 is first (required)")
	cli.MarkRequired(cmd, "id", "position")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runReorder(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	id, _ := cmd.Flags().GetString("id")
	position, _ := cmd.Flags().GetInt("position")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	boards, err := cliInstance.App.BoardService.MoveBoard(ctx, id, position-1)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		formatter.Println(id)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(boards)
	}
	for i, b := range boards {
		formatter.Printf("%d. %s\n", i+1, styles.RenderBoardLine(b))
	}
	return nil
}
