package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
	boardservice "github.com/thenoetrevino/focusflow/internal/services/board"
)

// DefaultLists are the lists a new board starts with unless --lists is given
var DefaultLists = []string{"Todo", "Doing", "Done"}

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a board with an initial set of lists.

Examples:
  # Board with Todo, Doing and Done
  focusflow board create --title "Work"

  # Custom lists
  focusflow board create --title "Reading" --lists "Queue,Reading,Finished"

  # No lists at all
  focusflow board create --title "Scratch" --lists ""

  # Quiet mode for bash capture
  BOARD_ID=$(focusflow board create --title "Work" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Board title (required)")
	cli.MarkRequired(cmd, "title")

	cmd.Flags().String("type", "", "Free-form board type (e.g. kanban, personal)")
	cmd.Flags().Bool("pinned", false, "Pin the board")
	cmd.Flags().StringSlice("lists", DefaultLists, "Comma separated titles of the initial lists")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	title, _ := cmd.Flags().GetString("title")
	boardType, _ := cmd.Flags().GetString("type")
	pinned, _ := cmd.Flags().GetBool("pinned")
	lists, _ := cmd.Flags().GetStringSlice("lists")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	board, err := cliInstance.App.BoardService.CreateBoard(ctx, boardservice.CreateBoardRequest{
		Title:    title,
		Type:     boardType,
		IsPinned: pinned,
		Lists:    lists,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Machine() {
		return formatter.Success(board)
	}

	formatter.Printf("Board '%s' created (ID: %s)\n", board.Title, board.ID)
	if len(lists) > 0 {
		formatter.Printf("  Lists: %v\n", lists)
	}
	return nil
}
