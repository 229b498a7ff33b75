package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/focusflow/internal/app"
	"github.com/thenoetrevino/focusflow/internal/cli/styles"
	"github.com/thenoetrevino/focusflow/internal/config"
	"github.com/thenoetrevino/focusflow/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	owned    bool // App was built here and is closed with the CLI
	notifier *Notifier
}

// NewCLI loads the configuration, opens the database and builds the app
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(database.NewRepository(db),
		app.WithLogger(slog.Default()),
		app.WithSyncConfig(cfg.Sync),
	)

	c := &CLI{App: application, Config: cfg, owned: true}
	c.notifier, err = StartNotifier(application.Events(), os.Stderr, slog.Default())
	if err != nil {
		slog.Warn("background save notices disabled", "error", err)
	}
	return c, nil
}

// Close cleans up CLI resources. Closing the app settles open board sessions,
// so their outcome notices are printed before Close returns. The shared
// database handle stays open for the process lifetime.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	err := c.App.Close()
	if c.notifier != nil {
		c.notifier.Stop()
	}
	return err
}

// CloseOrLog closes the CLI and logs instead of returning a failure
func (c *CLI) CloseOrLog() {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}

// MarkRequired marks flags as required and logs cobra's error if a flag is unknown
func MarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}
}
