package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
	"github.com/thenoetrevino/focusflow/internal/cli/styles"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards in display order",
		Long: `List all boards. Boards that were never reordered come last.

Examples:
  focusflow board list
  focusflow board list --json
  focusflow board list --quiet
`,
		RunE: runList,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	boards, err := cliInstance.App.BoardService.ListBoards(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		ids := make([]string, len(boards))
		for i, b := range boards {
			ids[i] = b.ID
		}
		return formatter.Success(ids)
	}
	if formatter.JSON {
		return formatter.Success(boards)
	}

	if len(boards) == 0 {
		formatter.Println("No boards yet. Create one with: focusflow board create --title <title>")
		return nil
	}
	for _, b := range boards {
		formatter.Println(styles.RenderBoardLine(b))
	}
	return nil
}
