package list

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
	listservice "github.com/thenoetrevino/focusflow/internal/services/list"
)

// CreateCmd returns the list create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Append a list to a board",
		Long: `Append a list to the end of a board.

Examples:
  focusflow list create --board board-... --title "Review"
  LIST_ID=$(focusflow list create --board board-... --title "Review" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("board", "", "Board ID (required)")
	cmd.Flags().String("title", "", "List title (required)")
	cli.MarkRequired(cmd, "board", "title")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	boardID, _ := cmd.Flags().GetString("board")
	title, _ := cmd.Flags().GetString("title")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	list, err := cliInstance.App.ListService.CreateList(ctx, listservice.CreateListRequest{
		BoardID: boardID,
		Title:   title,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Machine() {
		return formatter.Success(list)
	}
	formatter.Printf("List '%s' created at position %d (ID: %s)\n", list.Title, list.Order+1, list.ID)
	return nil
}
