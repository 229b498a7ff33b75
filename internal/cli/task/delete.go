package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long: `Delete a task. The remaining tasks of its list are renumbered.

Examples:
  focusflow task delete --id task-...
`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	cli.MarkRequired(cmd, "id")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	id, _ := cmd.Flags().GetString("id")

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

	pending, err := session.RemoveTask(id)
	if err != nil {
		return formatter.Fail(err)
	}
	if err := pending.Wait(ctx); err != nil {
		return formatter.Fail(err)
	}

	return printTaskResult(formatter, task, fmt.Sprintf("Task '%s' deleted", task.Title))
}
