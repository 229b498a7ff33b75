package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
	"github.com/thenoetrevino/focusflow/internal/cli/styles"
	"github.com/thenoetrevino/focusflow/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tasks of a board",
		Long: `List tasks grouped by list, in display order.

Examples:
  focusflow task list --board board-...
  focusflow task list --board board-... --list Doing
  focusflow task list --board board-... --json
`,
		RunE: runList,
	}

	cmd.Flags().String("board", "", "Board ID (required)")
	cli.MarkRequired(cmd, "board")
	cmd.Flags().String("list", "", "Only show this list (ID or title)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	boardID, _ := cmd.Flags().GetString("board")
	listRef, _ := cmd.Flags().GetString("list")

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
	if listRef != "" {
		l, err := cli.FindList(lists, listRef)
		if err != nil {
			return formatter.FailWithSuggestion(err, "Available lists: "+cli.FormatAvailableLists(lists))
		}
		lists = []*models.List{l}
	}

	var all []*models.Task
	byList := make(map[string][]*models.Task, len(lists))
	for _, l := range lists {
		tasks, err := cliInstance.App.TaskService.ListTasksByList(ctx, l.ID)
		if err != nil {
			return formatter.Fail(err)
		}
		byList[l.ID] = tasks
		all = append(all, tasks...)
	}

	if formatter.Quiet {
		ids := make([]string, len(all))
		for i, t := range all {
			ids[i] = t.ID
		}
		return formatter.Success(ids)
	}
	if formatter.JSON {
		if all == nil {
			all = []*models.Task{}
		}
		return formatter.Success(all)
	}

	for _, l := range lists {
		formatter.Println(styles.SectionStyle.Render(fmt.Sprintf("%s (%d)", l.Title, len(byList[l.ID]))))
		for _, t := range byList[l.ID] {
			formatter.Println("  " + styles.RenderTaskLine(t))
		}
	}
	return nil
}
