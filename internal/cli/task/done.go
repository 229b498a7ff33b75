package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done",
		Short: "Toggle whether a task is completed",
		RunE:  runDone,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	cli.MarkRequired(cmd, "id")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	id, _ := cmd.Flags().GetString("id")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	task, err := cliInstance.App.TaskService.ToggleCompleted(ctx, id)
	if err != nil {
		return formatter.Fail(err)
	}

	state := "reopened"
	if task.IsCompleted {
		state = "completed"
	}
	return printTaskResult(formatter, task, fmt.Sprintf("Task '%s' %s", task.Title, state))
}
