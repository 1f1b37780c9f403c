// Package catalog builds the all.json index of every successfully packaged
// theme.
package catalog

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ferdium/ferdium-themes/pkg/errors"
	"github.com/ferdium/ferdium-themes/pkg/logging"
	"github.com/ferdium/ferdium-themes/pkg/types"
)

// PreviewFile is appended to the base URL when a manifest has no preview
const PreviewFile = "preview.png"

// NewEntry projects a validated manifest onto its catalog entry. String
// values are trimmed; an absent preview falls back to <base><id>/preview.png.
func NewEntry(m types.ThemeManifest, previewBaseURL string) types.CatalogEntry {
	e := types.CatalogEntry{
		ID:          strings.TrimSpace(m.ID),
		Name:        strings.TrimSpace(m.Name),
		Description: strings.TrimSpace(m.Description),
		Author:      strings.TrimSpace(m.Author),
		Version:     strings.TrimSpace(m.Version),
		Preview:     strings.TrimSpace(m.Preview),
	}
	if e.Preview == "" {
		e.Preview = previewBaseURL + e.ID + "/" + PreviewFile
	}
	return e
}

// Builder accumulates entries from accepted themes. Callers add entries
// after the per-theme workers have joined.
type Builder struct {
	entries []types.CatalogEntry
}

// NewBuilder returns an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends an entry
func (b *Builder) Add(e types.CatalogEntry) {
	b.entries = append(b.entries, e)
}

// Len returns the number of entries
func (b *Builder) Len() int {
	return len(b.entries)
}

// Entries returns the entries ordered by lower-cased id. Entries whose ids
// compare equal keep the order in which they were added.
func (b *Builder) Entries() []types.CatalogEntry {
	out := make([]types.CatalogEntry, len(b.entries))
	copy(out, b.entries)

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].ID) < strings.ToLower(out[j].ID)
	})
	return out
}

// Marshal renders the catalog as a JSON array indented with two spaces,
// "\n" line endings and a trailing newline
func (b *Builder) Marshal() ([]byte, error) {
	entries := b.Entries()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode catalog")
	}
	return buf.Bytes(), nil
}

// Write marshals the catalog to path
func (b *Builder) Write(fs types.FS, path string) error {
	data, err := b.Marshal()
	if err != nil {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrCatalogWrite, "failed to create catalog directory").
			WithDetail("path", path)
	}
	if err := fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrCatalogWrite, "failed to write catalog").
			WithDetail("path", path)
	}
	logger := logging.GetLogger("catalog")
	logger.Info().Str("path", path).Int("count", b.Len()).Msg("Wrote catalog")
	return nil
}
