package list

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcli "github.com/thenoetrevino/focusflow/internal/cli"
	"github.com/thenoetrevino/focusflow/internal/testutil/cli"
)

func titles(t *testing.T, data any) []string {
	t.Helper()
	items := data.([]any)
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.(map[string]any)["title"].(string)
	}
	return out
}

func TestShowLists(t *testing.T) {
	repo, app := cli.SetupCLITest(t)
	b, _ := cli.CreateTestBoard(t, repo, "Work")

	out, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"list", "--board", b.ID, "--json"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Todo", "Doing", "Done"}, titles(t, cli.ParseJSONData(t, out)))

	_, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"list", "--board", "board-missing"})
	require.Error(t, err)
	assert.Equal(t, appcli.ExitNotFound, appcli.ExitCodeFor(err))
}

func TestCreateAndRenameList(t *testing.T) {
	repo, app := cli.SetupCLITest(t)
	ctx := context.Background()
	b, _ := cli.CreateTestBoard(t, repo, "Work")

	out, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"create", "--board", b.ID, "--title", "Review", "--quiet"})
	require.NoError(t, err)
	id := strings.TrimSpace(out)

	created, err := repo.GetList(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, created.Order)

	_, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"rename", "--id", id, "--title", "QA", "--quiet"})
	require.NoError(t, err)

	renamed, err := repo.GetList(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "QA", renamed.Title)
	assert.Equal(t, 3, renamed.Order)

	_, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"create", "--board", "board-missing", "--title", "X"})
	require.Error(t, err)
	assert.Equal(t, appcli.ExitNotFound, appcli.ExitCodeFor(err))
}

func TestMoveList(t *testing.T) {
	repo, app := cli.SetupCLITest(t)
	ctx := context.Background()
	b, lists := cli.CreateTestBoard(t, repo, "Work")

	out, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"move", "--id", lists[2].ID, "--position", "1", "--json"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Done", "Todo", "Doing"}, titles(t, cli.ParseJSONData(t, out)))

	stored, err := repo.GetLists(ctx, b.ID)
	require.NoError(t, err)
	for i, l := range stored {
		assert.Equal(t, i, l.Order)
	}
	assert.Equal(t, lists[2].ID, stored[0].ID)

	_, err = cli.ExecuteCLICommand(t, app, ListCmd(), []string{"move", "--id", lists[0].ID, "--position", "7"})
	require.Error(t, err)
	assert.Equal(t, appcli.ExitValidation, appcli.ExitCodeFor(err))
}

func TestDeleteList(t *testing.T) {
	repo, app := cli.SetupCLITest(t)
	ctx := context.Background()
	b, lists := cli.CreateTestBoard(t, repo, "Work")
	cli.CreateTestTask(t, repo, lists[0], "still here")

	t.Run("refuses a list with tasks", func(t *testing.T) {
		out, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"delete", "--id", lists[0].ID, "--force", "--json"})
		require.Error(t, err)
		assert.Equal(t, appcli.ExitValidation, appcli.ExitCodeFor(err))

		result := cli.ParseJSON(t, out)
		assert.Equal(t, "LIST_NOT_EMPTY", result["error"].(map[string]any)["code"])
	})

	t.Run("deletes an empty list and renumbers", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"delete", "--id", lists[1].ID, "--force", "--quiet"})
		require.NoError(t, err)

		stored, err := repo.GetLists(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, stored, 2)
		assert.Equal(t, lists[0].ID, stored[0].ID)
		assert.Equal(t, lists[2].ID, stored[1].ID)
		assert.Equal(t, 1, stored[1].Order)
	})
}
