package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli"
	"github.com/thenoetrevino/focusflow/internal/cli/styles"
	"github.com/thenoetrevino/focusflow/internal/models"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a task card with its rendered description",
		Long: `Show a task. The description is rendered as markdown.

Examples:
  focusflow task show --id task-...
  focusflow task show --id task-... --json
`,
		RunE: runShow,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	cli.MarkRequired(cmd, "id")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	id, _ := cmd.Flags().GetString("id")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cliInstance.CloseOrLog()

	task, err := cliInstance.App.TaskService.GetTask(ctx, id)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Machine() {
		return formatter.Success(task)
	}

	list, err := cliInstance.App.ListService.GetList(ctx, task.ListID)
	if err != nil {
		return formatter.Fail(err)
	}
	formatter.Println(styles.RenderCard(renderCard(task, list)))
	return nil
}

func renderCard(task *models.Task, list *models.List) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(task.Title))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(task.ID))
	b.WriteString("\n\n")

	field := func(label, value string) {
		b.WriteString(styles.LabelStyle.Render(label+":") + " " + styles.ValueStyle.Render(value) + "\n")
	}
	field("List", list.Title)
	field("Position", fmt.Sprintf("%d", task.Order+1))
	field("Completed", yesNo(task.IsCompleted))
	field("Repeats", yesNo(task.IsRepeated))
	field("Pomodoros", fmt.Sprintf("%d", task.PomodoroCount))
	field("Updated", task.UpdatedAt.Local().Format("2006-01-02 15:04"))

	b.WriteString(styles.SectionStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(styles.RenderDescription(task.Description, styles.CardWidth-6))

	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
