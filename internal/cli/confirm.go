package cli

import (
	"charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/cli/styles"
)

// AddForceFlag registers --force on a destructive command
func AddForceFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("force", false, "Skip confirmation prompt")
}

// Confirm asks the user to approve a destructive action. --force and machine
// output modes skip the prompt.
func Confirm(cmd *cobra.Command, formatter *OutputFormatter, title, description string) (bool, error) {
	force, _ := cmd.Flags().GetBool("force")
	if force {
		return true, nil
	}
	if formatter.Machine() {
		return false, &ExitCodeError{Code: ExitUsage, Err: errConfirmationRequired}
	}

	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(title).
			Description(description).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	)).WithTheme(styles.ConfirmTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
