package list

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
	"github.com/thenoetrevino/focusflow/internal/models"
)

// DeleteCmd returns the list delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an empty list",
		Long: `Delete a list. Lists that still hold tasks are refused; move or
delete the tasks first.

Examples:
  focusflow list delete --id list-...
  focusflow list delete --id list-... --force --json
`,
		RunE: runDelete,
	}

	cmd.Flags().String("id", "", "List ID (required)")
	cli.MarkRequired(cmd, "id")

	cli.AddForceFlag(cmd)
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

	list, err := cliInstance.App.ListService.GetList(ctx, id)
	if err != nil {
		return formatter.Fail(err)
	}

	session, err := cliInstance.App.OpenBoard(ctx, list.BoardID)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() { _ = session.Close() }()

	// Refuse before prompting
	if n := len(session.Tasks(id)); n > 0 {
		return formatter.FailWithSuggestion(models.ErrListNotEmpty,
			fmt.Sprintf("List '%s' still has %d task(s); move or delete them first", list.Title, n))
	}

	ok, err := cli.Confirm(cmd, formatter, fmt.Sprintf("Delete list '%s'?", list.Title), "")
	if err != nil {
		return formatter.Fail(err)
	}
	if !ok {
		formatter.Println("Cancelled")
		return nil
	}

	pending, err := session.RemoveList(id)
	if err == nil {
		err = pending.Wait(ctx)
	}
	if err != nil {
		if errors.Is(err, models.ErrListNotEmpty) {
			return formatter.FailWithSuggestion(err, "Move or delete the list's tasks first")
		}
		return formatter.Fail(err)
	}

	if formatter.Machine() {
		return formatter.Success(list)
	}
	formatter.Printf("List '%s' deleted\n", list.Title)
	return nil
}
