package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/app"
	"github.com/thenoetrevino/focusflow/internal/cli"
)

// Result is what a command wrote while it ran
type Result struct {
	Stdout string
	Stderr string
}

// ExecuteCLICommand runs cmd with args against testApp and returns its stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	res, err := Run(t, context.Background(), testApp, cmd, args, "")
	return res.Stdout, err
}

// Run executes cmd with args and stdin against testApp, capturing the
// command's stdout and stderr writers
func Run(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string, stdin string) (Result, error) {
	t.Helper()
	if testApp == nil {
		t.Fatal("Run needs an app from SetupCLITest")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(bytes.NewBufferString(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.ContextWithApp(ctx, testApp))
	return Result{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
