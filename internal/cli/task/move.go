package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Reorder a task within its list",
		Long: `Move a task to another position in the same list. Positions start at 1.
The move is applied optimistically and waits until it is saved.

Examples:
  focusflow task move --id task-... --position 1
`,
		RunE: runMove,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
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

	task, session, err := openTaskBoard(ctx, cliInstance, id)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() { _ = session.Close() }()

	from := cli.TaskIndex(session.Tasks(task.ListID), id)
	pending, err := session.MoveTask(task.ListID, from, position-1)
	if err != nil {
		return formatter.Fail(err)
	}
	if err := pending.Wait(ctx); err != nil {
		return formatter.Fail(err)
	}

	tasks := session.Tasks(task.ListID)
	moved := tasks[cli.TaskIndex(tasks, id)]
	return printTaskResult(formatter, moved,
		fmt.Sprintf("Task '%s' moved to position %d", moved.Title, moved.Order+1))
}
