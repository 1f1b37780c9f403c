package types

// CatalogEntry is the public projection of a valid theme written to the catalog
type CatalogEntry struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Author      string `json:"author,omitempty" yaml:"author,omitempty"`
	Version     string `json:"version" yaml:"version"`
	Preview     string `json:"preview" yaml:"preview"`
}
