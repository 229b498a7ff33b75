package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
)

// PomodoroCmd returns the task pomodoro subcommand
func PomodoroCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Record a finished pomodoro on a task",
		RunE:  runPomodoro,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	cli.MarkRequired(cmd, "id")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runPomodoro(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	id, _ := cmd.Flags().GetString("id")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	task, err := cliInstance.App.TaskService.IncrementPomodoro(ctx, id)
	if err != nil {
		return formatter.Fail(err)
	}
	return printTaskResult(formatter, task,
		fmt.Sprintf("Task '%s' now has %d pomodoro(s)", task.Title, task.PomodoroCount))
}
