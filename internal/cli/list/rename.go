package list

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
	listservice "github.com/thenoetrevino/focusflow/internal/services/list"
)

// RenameCmd returns the list rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a list",
		RunE:  runRename,
	}

	cmd.Flags().String("id", "", "List ID (required)")
	cmd.Flags().String("title", "", "New title (required)")
	cli.MarkRequired(cmd, "id", "title")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	id, _ := cmd.Flags().GetString("id")
	title, _ := cmd.Flags().GetString("title")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	list, err := cliInstance.App.ListService.UpdateList(ctx, listservice.UpdateListRequest{
		ID:    id,
		Title: &title,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Machine() {
		return formatter.Success(list)
	}
	formatter.Printf("List %s renamed to '%s'\n", list.ID, list.Title)
	return nil
}
