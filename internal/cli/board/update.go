package board

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
	boardservice "github.com/thenoetrevino/focusflow/internal/services/board"
)

// UpdateCmd returns the board update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename a board or change its type",
		Long: `Update a board. Only the flags given are changed.

Examples:
  focusflow board update --id board-... --title "Side projects"
  focusflow board update --id board-... --type personal
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Board ID (required)")
	cli.MarkRequired(cmd, "id")

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("type", "", "New type")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	req := boardservice.UpdateBoardRequest{}
	req.ID, _ = cmd.Flags().GetString("id")
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
	}
	if cmd.Flags().Changed("type") {
		boardType, _ := cmd.Flags().GetString("type")
		req.Type = &boardType
	}
	if req.Title == nil && req.Type == nil {
		return formatter.FailWithSuggestion(
			&cli.ExitCodeError{Code: cli.ExitUsage, Err: errors.New("nothing to update")},
			"Pass --title and/or --type")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	board, err := cliInstance.App.BoardService.UpdateBoard(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Machine() {
		return formatter.Success(board)
	}
	formatter.Printf("Board %s updated\n", board.ID)
	return nil
}
