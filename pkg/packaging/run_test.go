package packaging_test

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferdium/ferdium-themes/pkg/config"
	"github.com/ferdium/ferdium-themes/pkg/errors"
	"github.com/ferdium/ferdium-themes/pkg/filesystem"
	"github.com/ferdium/ferdium-themes/pkg/packaging"
	"github.com/ferdium/ferdium-themes/pkg/testutil"
	"github.com/ferdium/ferdium-themes/pkg/types"
	"github.com/ferdium/ferdium-themes/pkg/vcs"
)

const root = "/repo"

func memOptions(t *testing.T) (*testutil.ThemeTree, packaging.Options) {
	t.Helper()

	fs := filesystem.NewMemory()
	tree := testutil.NewThemeTree(t, fs, root)
	return tree, packaging.Options{
		Root:   root,
		Config: config.Default(),
		FS:     fs,
		Repo:   vcs.Unavailable(),
	}
}

func exists(fs types.FS, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

func TestRunValidTheme(t *testing.T) {
	tree, opts := memOptions(t)
	tree.AddTheme(t, "whatsapp", map[string]any{
		"id": "whatsapp", "name": "WhatsApp", "version": "1.0.0",
	}, nil)

	summary, err := packaging.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 0, summary.Failed)
	assert.True(t, summary.OK())
	require.Len(t, summary.Catalog, 1)
	assert.Equal(t, types.CatalogEntry{
		ID:      "whatsapp",
		Name:    "WhatsApp",
		Version: "1.0.0",
		Preview: "https://cdn.jsdelivr.net/gh/ferdium/ferdium-themes/themes/whatsapp/preview.png",
	}, summary.Catalog[0])

	assert.Equal(t, "/repo/archives/whatsapp.tar.gz", summary.Results[0].Archive)
	assert.True(t, exists(opts.FS, "/repo/archives/whatsapp.tar.gz"))
	assert.Equal(t, "/repo/all.json", summary.CatalogPath)
	assert.NoError(t, packaging.FailureError(summary))
}

func TestRunPartialSuccess(t *testing.T) {
	tree, opts := memOptions(t)
	tree.AddValidTheme(t, "slack")
	tree.AddTheme(t, "correct-id", map[string]any{"id": "wrong-id", "name": "X", "version": "1.0.0"}, nil)
	tree.AddTheme(t, "broken-version", map[string]any{"id": "broken-version", "name": "X", "version": "not-a-version"}, nil)
	tree.AddValidTheme(t, "nocss")
	tree.Remove(t, "nocss", "custom.css")

	summary, err := packaging.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Processed)
	assert.Equal(t, 3, summary.Failed)
	assert.Equal(t, 1, summary.Succeeded())

	byTheme := map[string]types.ThemeResult{}
	for _, r := range summary.Results {
		byTheme[r.Theme] = r
	}
	require.Len(t, byTheme["correct-id"].Errors, 1)
	assert.Contains(t, byTheme["correct-id"].Errors[0], "does not match the folder name")
	require.Len(t, byTheme["broken-version"].Errors, 1)
	assert.Contains(t, byTheme["broken-version"].Errors[0], "invalid version number")
	assert.Equal(t, []string{`Folder doesn't contain a "custom.css".`}, byTheme["nocss"].Errors)

	// accepted theme is still persisted
	assert.True(t, exists(opts.FS, "/repo/archives/slack.tar.gz"))
	assert.False(t, exists(opts.FS, "/repo/archives/correct-id.tar.gz"))
	data, err := opts.FS.ReadFile("/repo/all.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id": "slack"`)
	assert.NotContains(t, string(data), "broken-version")

	err = packaging.FailureError(summary)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackagingFailed))
}

func TestRunRejectsManifestsThatWouldCorruptTheCatalog(t *testing.T) {
	tree, opts := memOptions(t)
	tree.AddValidTheme(t, "slack")
	tree.AddTheme(t, "blank-name", map[string]any{"id": "blank-name", "name": "   ", "version": "1.0.0"}, nil)
	tree.AddTheme(t, "string-config", map[string]any{
		"id": "string-config", "name": "X", "version": "1.0.0", "config": "nope",
	}, nil)

	summary, err := packaging.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Failed)
	require.Len(t, summary.Catalog, 1)
	assert.Equal(t, "slack", summary.Catalog[0].ID)
	assert.False(t, exists(opts.FS, "/repo/archives/blank-name.tar.gz"))
	assert.False(t, exists(opts.FS, "/repo/archives/string-config.tar.gz"))
}

func TestRunIsIdempotent(t *testing.T) {
	tree, opts := memOptions(t)
	tree.AddValidTheme(t, "Zulip")
	tree.AddValidTheme(t, "apple")
	tree.AddValidTheme(t, "mattermost")

	_, err := packaging.Run(context.Background(), opts)
	require.NoError(t, err)
	first, err := opts.FS.ReadFile("/repo/all.json")
	require.NoError(t, err)

	_, err = packaging.Run(context.Background(), opts)
	require.NoError(t, err)
	second, err := opts.FS.ReadFile("/repo/all.json")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunCatalogIndependentOfConcurrency(t *testing.T) {
	var outputs [][]byte
	for _, workers := range []int{1, 8} {
		tree, opts := memOptions(t)
		for _, name := range []string{"e", "D", "c", "b", "A", "f", "g"} {
			tree.AddValidTheme(t, name)
		}
		opts.Concurrency = workers

		_, err := packaging.Run(context.Background(), opts)
		require.NoError(t, err)
		data, err := opts.FS.ReadFile("/repo/all.json")
		require.NoError(t, err)
		outputs = append(outputs, data)
	}
	assert.Equal(t, outputs[0], outputs[1])
}

func TestRunResetsOutputs(t *testing.T) {
	tree, opts := memOptions(t)
	tree.AddValidTheme(t, "slack")
	require.NoError(t, opts.FS.MkdirAll("/repo/archives", 0755))
	require.NoError(t, opts.FS.WriteFile("/repo/archives/stale.tar.gz", []byte("old"), 0644))
	require.NoError(t, opts.FS.WriteFile("/repo/all.json", []byte("stale"), 0644))

	_, err := packaging.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.False(t, exists(opts.FS, "/repo/archives/stale.tar.gz"))
	data, err := opts.FS.ReadFile("/repo/all.json")
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(data))
}

func TestRunEmptyThemesDirectory(t *testing.T) {
	_, opts := memOptions(t)

	summary, err := packaging.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Zero(t, summary.Processed)

	data, err := opts.FS.ReadFile("/repo/all.json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestRunMissingThemesDirectory(t *testing.T) {
	opts := packaging.Options{Root: root, Config: config.Default(), FS: filesystem.NewMemory(), Repo: vcs.Unavailable()}

	_, err := packaging.Run(context.Background(), opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestValidateWritesNothing(t *testing.T) {
	tree, opts := memOptions(t)
	tree.AddValidTheme(t, "slack")
	require.NoError(t, opts.FS.WriteFile("/repo/all.json", []byte("previous"), 0644))

	summary, err := packaging.Validate(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, summary.DryRun)
	assert.Len(t, summary.Catalog, 1)
	assert.Empty(t, summary.Results[0].Archive)
	assert.Empty(t, summary.CatalogPath)

	assert.False(t, exists(opts.FS, "/repo/archives"))
	data, err := opts.FS.ReadFile("/repo/all.json")
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestRunOnlySelectedThemes(t *testing.T) {
	tree, opts := memOptions(t)
	tree.AddValidTheme(t, "slack")
	tree.AddValidTheme(t, "discord")
	opts.Only = []string{"discord"}

	summary, err := packaging.Run(context.Background(), opts)
	require.NoError(t, err)
	require.Equal(t, 1, summary.Processed)
	assert.Equal(t, "discord", summary.Results[0].Theme)

	opts.Only = []string{"teams"}
	_, err = packaging.Run(context.Background(), opts)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestRunAbortsOnArchiveFailure(t *testing.T) {
	tree, opts := memOptions(t)
	tree.AddValidTheme(t, "slack")
	tree.AddValidTheme(t, "discord")

	failing := testutil.NewFailingFS(opts.FS)
	failing.FailWrite("/repo/archives/slack.tar.gz", stderrors.New("disk full"))
	opts.FS = failing

	_, err := packaging.Run(context.Background(), opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrArchiveWrite))
	assert.False(t, exists(opts.FS, "/repo/all.json"))
}

func TestRunCancelled(t *testing.T) {
	tree, opts := memOptions(t)
	tree.AddValidTheme(t, "slack")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := packaging.Run(ctx, opts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunHistoryPolicy(t *testing.T) {
	g := testutil.InitGitRepo(t)
	fs := filesystem.NewOS()
	tree := testutil.NewThemeTree(t, fs, g.Dir)
	tree.AddValidTheme(t, "slack")
	tree.AddValidTheme(t, "discord")
	g.CommitAll(t, "initial")

	// stylesheet edited without a version bump
	tree.WriteFile(t, "slack", "custom.css", "body { color: red; }\n")
	// stylesheet edited with a version bump
	tree.WriteFile(t, "discord", "custom.css", "body { color: blue; }\n")
	bumped := testutil.ValidManifest("discord")
	bumped["version"] = "1.0.1"
	tree.WriteManifest(t, "discord", bumped)

	opts := packaging.Options{Root: g.Dir, Config: config.Default(), FS: fs}
	summary, err := packaging.Validate(context.Background(), opts)
	require.NoError(t, err)

	byTheme := map[string]types.ThemeResult{}
	for _, r := range summary.Results {
		byTheme[r.Theme] = r
	}
	require.Len(t, byTheme["slack"].Errors, 1)
	assert.Contains(t, byTheme["slack"].Errors[0], "without the corresponding version bump")
	assert.Contains(t, byTheme["slack"].Errors[0], filepath.ToSlash(filepath.Join("themes", "slack", "theme.json")))
	assert.Empty(t, byTheme["discord"].Errors)

	// disabling the policy accepts both
	opts.Config.Package.CheckHistory = false
	summary, err = packaging.Validate(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, summary.OK())
}
