package types

// RawManifest is a manifest as parsed from text, before any validation
type RawManifest map[string]any

// Has reports whether key is present with a non-null value
func (r RawManifest) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// String returns the value of key when it is a string
func (r RawManifest) String(key string) (string, bool) {
	v, ok := r[key].(string)
	return v, ok
}

// ThemeManifest is the typed form of a manifest that passed validation
type ThemeManifest struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description,omitempty"`
	Author      string         `json:"author,omitempty"`
	Preview     string         `json:"preview,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
	Aliases     map[string]any `json:"aliases,omitempty"`
}
