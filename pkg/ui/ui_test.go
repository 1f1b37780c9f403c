package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ferdium/ferdium-themes/pkg/errors"
	"github.com/ferdium/ferdium-themes/pkg/types"
	"github.com/ferdium/ferdium-themes/pkg/ui"
)

func sampleSummary() *types.RunSummary {
	return &types.RunSummary{
		Processed: 3,
		Failed:    1,
		Results: []types.ThemeResult{
			{Theme: "slack", Archive: "archives/slack.tar.gz"},
			{Theme: "broken", Errors: []string{"first problem", "second problem"}},
			{Theme: "discord", Archive: "archives/discord.tar.gz"},
		},
		Catalog: []types.CatalogEntry{
			{ID: "discord", Name: "Discord", Version: "1.0.0", Preview: "p"},
			{ID: "slack", Name: "Slack", Version: "1.0.0", Preview: "p"},
		},
	}
}

func TestTextSummary(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleSummary()))
	assert.Equal(t, `⚠️ Couldn't package "broken":
  first problem
  second problem
✅ Successfully packaged and added 2 themes (1 unsuccessful themes)
`, buf.String())
}

func TestTextSummaryDryRun(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&types.RunSummary{Processed: 2, DryRun: true}))
	assert.Equal(t, "✅ Successfully validated 2 themes (0 unsuccessful themes)\n", buf.String())
}

func TestAutoFormatOnBufferIsPlain(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&ui.ThemeList{Root: "themes", Themes: []string{"a", "b"}}))
	assert.Equal(t, "a\nb\n", buf.String())
}

func TestTerminalRendererKeepsText(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleSummary()))
	assert.Contains(t, buf.String(), "first problem")
	assert.Contains(t, buf.String(), "Successfully packaged and added 2 themes")
}

func TestJSONSummary(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(sampleSummary()))

	var decoded types.RunSummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded.Processed)
	assert.Equal(t, []string{"first problem", "second problem"}, decoded.Results[1].Errors)
	assert.Len(t, decoded.Catalog, 2)
}

func TestYAMLSummary(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatYAML, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(sampleSummary()))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded["failed"])
	assert.Contains(t, buf.String(), "theme: broken")
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderError(errors.New(errors.ErrNotFound, "missing")))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "NOT_FOUND", decoded["code"])

	buf.Reset()
	r, err = ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderError(errors.New(errors.ErrNotFound, "missing")))
	assert.Equal(t, "Error: [NOT_FOUND] missing\n", buf.String())
}

func TestLoadStyles(t *testing.T) {
	styles, err := ui.LoadStyles([]byte(`
colors:
  red: {light: "#ff0000", dark: "#ff5555"}
styles:
  Alert: {bold: true, foreground: red}
`))
	require.NoError(t, err)
	assert.Contains(t, styles, "Alert")
	assert.Equal(t, "plain", styles.Render("Unknown", "plain"))

	_, err = ui.LoadStyles([]byte("styles:\n  X: {foreground: nope}\n"))
	assert.Error(t, err)

	_, err = ui.LoadStyles([]byte("colors: ["))
	assert.Error(t, err)

	for _, name := range []string{"Success", "Warning", "Error", "Theme", "Muted"} {
		assert.Contains(t, ui.DefaultStyles, name)
	}
}
