package themes

import (
	"github.com/ferdium/ferdium-themes/pkg/errors"
	"github.com/ferdium/ferdium-themes/pkg/logging"
)

// Select filters candidate names. An empty selection keeps everything; an
// unknown name is an error listing the available folders.
func Select(candidates, selected []string) ([]string, error) {
	if len(selected) == 0 {
		return candidates, nil
	}

	known := make(map[string]bool, len(candidates))
	for _, name := range candidates {
		known[name] = true
	}

	var notFound []string
	wanted := make(map[string]bool, len(selected))
	for _, name := range selected {
		if !known[name] {
			notFound = append(notFound, name)
		}
		wanted[name] = true
	}
	if len(notFound) > 0 {
		return nil, errors.Newf(errors.ErrNotFound, "theme(s) not found: %v", notFound).
			WithDetail("notFound", notFound).
			WithDetail("available", candidates)
	}

	// keep discovery order
	var result []string
	for _, name := range candidates {
		if wanted[name] {
			result = append(result, name)
		}
	}
	logger := logging.GetLogger("themes.selection")
	logger.Debug().
		Int("selected", len(result)).
		Int("total", len(candidates)).
		Msg("Selected themes")
	return result, nil
}
