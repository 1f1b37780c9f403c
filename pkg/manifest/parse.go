package manifest

import (
	"bytes"
	"encoding/json"

	"github.com/ferdium/ferdium-themes/pkg/errors"
	"github.com/ferdium/ferdium-themes/pkg/types"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse decodes a manifest document. The document must be a JSON object.
func Parse(data []byte) (types.RawManifest, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "manifest is not valid JSON")
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrManifestParse, "manifest must be a JSON object")
	}
	return types.RawManifest(obj), nil
}

// ToManifest converts a raw manifest that passed Validate into its typed form
func ToManifest(raw types.RawManifest) (types.ThemeManifest, error) {
	var m types.ThemeManifest
	for _, key := range []string{KeyID, KeyName, KeyVersion} {
		if s, ok := raw.String(key); !ok || s == "" {
			return m, errors.Newf(errors.ErrThemeInvalid, "manifest has no usable %q field", key).
				WithDetail("key", key)
		}
	}

	m.ID, _ = raw.String(KeyID)
	m.Name, _ = raw.String(KeyName)
	m.Version, _ = raw.String(KeyVersion)
	m.Description, _ = raw.String(KeyDescription)
	m.Author, _ = raw.String(KeyAuthor)
	m.Preview, _ = raw.String(KeyPreview)
	m.Config, _ = raw[KeyConfig].(map[string]any)
	m.Aliases, _ = raw[KeyAliases].(map[string]any)
	return m, nil
}
