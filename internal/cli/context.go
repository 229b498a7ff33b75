package cli

import (
	"context"

	"github.com/thenoetrevino/focusflow/internal/app"
	"github.com/thenoetrevino/focusflow/internal/config"
)

type appKey struct{}

// ContextWithApp returns a context carrying an already built app. Commands
// run with it use that app instead of opening the configured database.
func ContextWithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// GetCLIFromContext returns the CLI for a command: the app injected with
// ContextWithApp, or a new CLI built from the user's config.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if injected, ok := ctx.Value(appKey{}).(*app.App); ok && injected != nil {
		return &CLI{App: injected, Config: config.Default()}, nil
	}
	return NewCLI(ctx)
}
