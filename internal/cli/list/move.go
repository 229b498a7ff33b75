package list

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
	"github.com/thenoetrevino/focusflow/internal/ordering"
)

// MoveCmd returns the list move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a list to another position on its board",
		Long: `Move a list to a position on its board. Positions start at 1.
The move is applied optimistically and waits until it is saved.

Examples:
  focusflow list move --id list-... --position 1
`,
		RunE: runMove,
	}

	cmd.Flags().String("id", "", "List ID (required)")
	cmd.Flags().Int("position", 0, "Target position, 1 is first (required)")
	cli.MarkRequired(cmd, "id", "position")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	id, _ := cmd.Flags().GetString("id")
	position, _ := cmd.Flags().GetInt("position")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	list, err := cliInstance.App.ListService.GetList(ctx, id)
	if err != nil {
		return formatter.Fail(err)
	}

	session, err := cliInstance.App.OpenBoard(ctx, list.BoardID)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() { _ = session.Close() }()

	from := ordering.IndexOf(session.Lists(), id)
	pending, err := session.MoveList(from, position-1)
	if err != nil {
		return formatter.Fail(err)
	}
	if err := pending.Wait(ctx); err != nil {
		return formatter.Fail(err)
	}

	lists := session.Lists()
	if formatter.Quiet {
		formatter.Println(id)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(lists)
	}
	formatter.Printf("List '%s' moved to position %d\n", list.Title, ordering.IndexOf(lists, id)+1)
	return nil
}
