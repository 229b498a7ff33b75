package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
	"github.com/thenoetrevino/focusflow/internal/models"
)

// TransferCmd returns the task transfer subcommand
func TransferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move a task to another list",
		Long: `Move a task into another list of the same board, by list ID or title
(case-insensitive). Without --position the task goes to the end.
Both lists are renumbered and saved together; a failed save rolls back both.

Examples:
  focusflow task transfer --id task-... --to Done
  focusflow task transfer --id task-... --to "Doing" --position 1
  focusflow task transfer --id task-... --to list-... --json
`,
		RunE: runTransfer,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	cmd.Flags().String("to", "", "Target list ID or title (required)")
	cli.MarkRequired(cmd, "id", "to")
	cmd.Flags().Int("position", 0, "Target position, 1 is first (default: end)")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runTransfer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	id, _ := cmd.Flags().GetString("id")
	target, _ := cmd.Flags().GetString("to")
	position, _ := cmd.Flags().GetInt("position")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	task, session, err := openTaskBoard(ctx, cliInstance, id)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() { _ = session.Close() }()

	lists := session.Lists()
	dest, err := cli.FindList(lists, target)
	if err != nil {
		return formatter.FailWithSuggestion(err, fmt.Sprintf("Task is currently in: %s\nAvailable lists: %s",
			cli.ListTitle(lists, task.ListID), cli.FormatAvailableLists(lists)))
	}

	toIndex := len(session.Tasks(dest.ID))
	if dest.ID == task.ListID {
		toIndex-- // the task itself is already counted
	}
	if cmd.Flags().Changed("position") {
		toIndex = position - 1
	}
	from := cli.TaskIndex(session.Tasks(task.ListID), id)

	pending, err := session.TransferTask(task.ListID, dest.ID, from, toIndex)
	if err != nil {
		return formatter.Fail(err)
	}
	if err := pending.Wait(ctx); err != nil {
		return formatter.Fail(err)
	}

	tasks := session.Tasks(dest.ID)
	moved := tasks[cli.TaskIndex(tasks, id)]
	if formatter.JSON {
		return formatter.Success(map[string]any{
			"task":      moved,
			"from_list": cli.ListTitle(lists, task.ListID),
			"to_list":   dest.Title,
		})
	}
	return printTaskResult(formatter, moved, transferMessage(moved, dest.Title, task.ListID == dest.ID))
}

func transferMessage(moved *models.Task, listTitle string, sameList bool) string {
	if sameList {
		return fmt.Sprintf("Task '%s' moved within '%s' (position %d)", moved.Title, listTitle, moved.Order+1)
	}
	return fmt.Sprintf("Task '%s' moved to '%s' (position %d)", moved.Title, listTitle, moved.Order+1)
}
