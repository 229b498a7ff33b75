package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
	taskservice "github.com/thenoetrevino/focusflow/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Append a task to a list",
		Long: `Create a task at the end of a list.

Examples:
  focusflow task create --list list-... --title "Write report"

  # Description from stdin (markdown)
  cat notes.md | focusflow task create --list list-... --title "Notes" --description -

  # Quiet mode for bash capture
  TASK_ID=$(focusflow task create --list list-... --title "Write report" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("list", "", "List ID (required)")
	cmd.Flags().String("title", "", "Task title (required)")
	cli.MarkRequired(cmd, "list", "title")

	cmd.Flags().String("description", "", "Task description in markdown (use - for stdin)")
	cmd.Flags().Bool("repeated", false, "Mark the task as repeating")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	listID, _ := cmd.Flags().GetString("list")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	repeated, _ := cmd.Flags().GetBool("repeated")

	description, err := cli.ReadDescription(description, cmd.InOrStdin())
	if err != nil {
		return formatter.Fail(&cli.ExitCodeError{Code: cli.ExitDataErr, Err: err})
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	task, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		ListID:      listID,
		Title:       title,
		Description: description,
		IsRepeated:  repeated,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	return printTaskResult(formatter, task,
		fmt.Sprintf("Task '%s' created (ID: %s)", task.Title, task.ID))
}
