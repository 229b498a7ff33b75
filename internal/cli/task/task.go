// Package task implements the task subcommands
package task

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
	"github.com/thenoetrevino/focusflow/internal/models"
	"github.com/thenoetrevino/focusflow/internal/reconcile"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(TransferCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(PomodoroCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// openTaskBoard looks up a task and opens a session on its board
func openTaskBoard(ctx context.Context, cliInstance *cli.CLI, taskID string) (*models.Task, *reconcile.Session, error) {
	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}
	session, err := cliInstance.App.OpenBoard(ctx, task.BoardID)
	if err != nil {
		return nil, nil, err
	}
	return task, session, nil
}

// printTaskResult prints the outcome of a command that changed one task
func printTaskResult(formatter *cli.OutputFormatter, task *models.Task, message string) error {
	if formatter.Machine() {
		return formatter.Success(task)
	}
	formatter.Println(message)
	return nil
}
