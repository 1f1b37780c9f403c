package types

// ThemeResult is the outcome of processing a single theme folder
type ThemeResult struct {
	Theme   string        `json:"theme" yaml:"theme"`
	Errors  []string      `json:"errors,omitempty" yaml:"errors,omitempty"`
	Archive string        `json:"archive,omitempty" yaml:"archive,omitempty"`
	Entry   *CatalogEntry `json:"-" yaml:"-"`
}

// Succeeded reports whether the theme was accepted
func (r ThemeResult) Succeeded() bool {
	return len(r.Errors) == 0
}

// RunSummary aggregates a packaging run
type RunSummary struct {
	Processed   int            `json:"processed" yaml:"processed"`
	Failed      int            `json:"failed" yaml:"failed"`
	Results     []ThemeResult  `json:"results" yaml:"results"`
	Catalog     []CatalogEntry `json:"catalog" yaml:"catalog"`
	CatalogPath string         `json:"catalogPath,omitempty" yaml:"catalogPath,omitempty"`
	DryRun      bool           `json:"dryRun" yaml:"dryRun"`
}

// Succeeded returns the number of accepted themes
func (s *RunSummary) Succeeded() int {
	return s.Processed - s.Failed
}

// OK reports whether every theme was accepted
func (s *RunSummary) OK() bool {
	return s.Failed == 0
}

// FailedResults returns the results of rejected themes in processing order
func (s *RunSummary) FailedResults() []ThemeResult {
	var failed []ThemeResult
	for _, r := range s.Results {
		if !r.Succeeded() {
			failed = append(failed, r)
		}
	}
	return failed
}
