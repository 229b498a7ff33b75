package task

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
	taskservice "github.com/thenoetrevino/focusflow/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update task fields",
		Long: `Update a task. Only the flags given are changed.
Use "task transfer" to move a task to another list.

Examples:
  focusflow task update --id task-... --title "New title"
  focusflow task update --id task-... --description - < notes.md
  focusflow task update --id task-... --repeated=false
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	cli.MarkRequired(cmd, "id")

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().Bool("repeated", false, "Whether the task repeats")
	cmd.Flags().Bool("completed", false, "Whether the task is completed")
	cmd.Flags().Int("pomodoros", 0, "Set the pomodoro count")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	flags := cmd.Flags()

	req := taskservice.UpdateTaskRequest{}
	req.ID, _ = flags.GetString("id")
	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		req.Title = &title
	}
	if flags.Changed("description") {
		description, _ := flags.GetString("description")
		description, err := cli.ReadDescription(description, cmd.InOrStdin())
		if err != nil {
			return formatter.Fail(&cli.ExitCodeError{Code: cli.ExitDataErr, Err: err})
		}
		req.Description = &description
	}
	if flags.Changed("repeated") {
		repeated, _ := flags.GetBool("repeated")
		req.IsRepeated = &repeated
	}
	if flags.Changed("completed") {
		completed, _ := flags.GetBool("completed")
		req.IsCompleted = &completed
	}
	if flags.Changed("pomodoros") {
		count, _ := flags.GetInt("pomodoros")
		req.PomodoroCount = &count
	}

	if req.Title == nil && req.Description == nil && req.IsRepeated == nil &&
		req.IsCompleted == nil && req.PomodoroCount == nil {
		return formatter.FailWithSuggestion(
			&cli.ExitCodeError{Code: cli.ExitUsage, Err: errors.New("nothing to update")},
			"Pass at least one of --title, --description, --repeated, --completed, --pomodoros")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	task, err := cliInstance.App.TaskService.UpdateTask(ctx, req)
	if err != nil {
		return formatter.Fail(err)
	}

	return printTaskResult(formatter, task, fmt.Sprintf("Task %s updated", task.ID))
}
