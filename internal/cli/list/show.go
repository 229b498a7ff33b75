package list

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
	"github.com/thenoetrevino/focusflow/internal/cli/styles"
)

// ShowCmd returns the "list list" subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the lists of a board in display order",
		Long: `List the lists of a board.

Examples:
  focusflow list list --board board-...
  focusflow list list --board board-... --json
`,
		RunE: runShow,
	}

	cmd.Flags().String("board", "", "Board ID (required)")
	cli.MarkRequired(cmd, "board")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	boardID, _ := cmd.Flags().GetString("board")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	if _, err := cliInstance.App.BoardService.GetBoard(ctx, boardID); err != nil {
		return formatter.Fail(err)
	}
	lists, err := cliInstance.App.ListService.ListLists(ctx, boardID)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		ids := make([]string, len(lists))
		for i, l := range lists {
			ids[i] = l.ID
		}
		return formatter.Success(ids)
	}
	if formatter.JSON {
		return formatter.Success(lists)
	}

	for i, l := range lists {
		formatter.Printf("%d. %s  %s\n", i+1, styles.TitleStyle.Render(l.Title), styles.SubtitleStyle.Render(l.ID))
	}
	return nil
}
